// Package debug implements the assertion path used for programming errors.
// A failed assertion is never a runtime condition: it is logged with the
// failed expression and the caller's location, optionally breaks into the
// debugger and then terminates the process through the logger's exit path.
package debug

import (
	"fmt"
	"runtime"

	"go-base/util/logger"

	"github.com/sirupsen/logrus"
)

// Defect describes a failed assertion.
type Defect struct {
	Expr string
	File string
	Line int
}

func (d *Defect) Error() string {
	return fmt.Sprintf("Assertion failed: %s at %s:%d", d.Expr, d.File, d.Line)
}

// LastAssertion records the most recent assertion failure.
var LastAssertion Defect

// Assert aborts the process when cond is false.
func Assert(cond bool, expr string) {
	if cond {
		return
	}
	fail(expr, 2)
}

// Fail aborts the process unconditionally.
func Fail(expr string) {
	fail(expr, 2)
}

// Reset clears the recorded assertion.
func Reset() {
	LastAssertion = Defect{}
}

func fail(expr string, skip int) {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		file = "???"
	}

	d := &Defect{Expr: expr, File: file, Line: line}
	LastAssertion = *d

	logger.WithPrefix("assert").WithFields(logrus.Fields{
		"expr": expr,
		"file": file,
		"line": line,
	}).Error(d.Error())

	debugBreak()
	logger.L.Exit(1)

	// ExitFunc is replaceable; a defect must never fall through to the caller.
	panic(d)
}
