// Package platform classifies the toolchain, operating system and
// architecture the binary was built for.
package platform

import (
	"runtime"
	"strings"

	"github.com/pkg/errors"
)

const nullName = "(null)"

type Compiler uint8

const (
	CompilerNull Compiler = iota
	CompilerGC
	CompilerGCCGo

	CompilerCount
)

type OS uint8

const (
	OSNull OS = iota
	OSWindows
	OSLinux
	OSMac

	OSCount
)

type Arch uint8

const (
	ArchNull Arch = iota
	ArchX64
	ArchX86
	ArchArm
	ArchArm64

	ArchCount
)

var compilerNames = [CompilerCount]string{nullName, "gc", "gccgo"}
var osNames = [OSCount]string{nullName, "Windows", "Linux", "Mac"}
var archNames = [ArchCount]string{nullName, "X64", "X86", "Arm", "Arm64"}

func (c Compiler) String() string { return name(compilerNames[:], int(c)) }
func (o OS) String() string       { return name(osNames[:], int(o)) }
func (a Arch) String() string     { return name(archNames[:], int(a)) }

func name(names []string, i int) string {
	if i <= 0 || i >= len(names) {
		return nullName
	}
	return names[i]
}

// CompilerFromContext reports the toolchain that built the running binary.
func CompilerFromContext() Compiler {
	return compilerFromGo(runtime.Compiler)
}

// OSFromContext reports the operating system the binary targets.
func OSFromContext() OS {
	return osFromGo(runtime.GOOS)
}

// ArchFromContext reports the architecture the binary targets.
func ArchFromContext() Arch {
	return archFromGo(runtime.GOARCH)
}

func compilerFromGo(compiler string) Compiler {
	switch compiler {
	case "gc":
		return CompilerGC
	case "gccgo":
		return CompilerGCCGo
	}
	return CompilerNull
}

func osFromGo(goos string) OS {
	switch goos {
	case "windows":
		return OSWindows
	case "linux", "android":
		return OSLinux
	case "darwin", "ios":
		return OSMac
	}
	return OSNull
}

func archFromGo(goarch string) Arch {
	switch goarch {
	case "amd64":
		return ArchX64
	case "386":
		return ArchX86
	case "arm":
		return ArchArm
	case "arm64":
		return ArchArm64
	}
	return ArchNull
}

// ParseOS accepts either a display name ("Linux") or a GOOS value ("linux").
func ParseOS(s string) (OS, error) {
	for i := OSWindows; i < OSCount; i++ {
		if strings.EqualFold(s, i.String()) {
			return i, nil
		}
	}
	if o := osFromGo(strings.ToLower(s)); o != OSNull {
		return o, nil
	}
	return OSNull, errors.Errorf("unknown operating system %q", s)
}

// ParseArch accepts either a display name ("X64") or a GOARCH value ("amd64").
func ParseArch(s string) (Arch, error) {
	for i := ArchX64; i < ArchCount; i++ {
		if strings.EqualFold(s, i.String()) {
			return i, nil
		}
	}
	if a := archFromGo(strings.ToLower(s)); a != ArchNull {
		return a, nil
	}
	return ArchNull, errors.Errorf("unknown architecture %q", s)
}

// Context bundles the three classifications of the running binary.
type Context struct {
	Compiler Compiler
	OS       OS
	Arch     Arch
}

func Current() Context {
	return Context{
		Compiler: CompilerFromContext(),
		OS:       OSFromContext(),
		Arch:     ArchFromContext(),
	}
}

func (c Context) String() string {
	return c.OS.String() + "/" + c.Arch.String() + " (" + c.Compiler.String() + ")"
}
