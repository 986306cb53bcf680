package allocator

import (
	"strconv"

	"github.com/pkg/errors"
)

// Mode selects the operation a Proc performs.
type Mode uint8

const (
	Allocate Mode = iota
	Resize
	Free
	FreeAll

	modeCount
)

var modeNames = [modeCount]string{"allocate", "resize", "free", "free_all"}

func (m Mode) Valid() bool {
	return m < modeCount
}

func (m Mode) String() string {
	if !m.Valid() {
		return "mode(" + strconv.Itoa(int(m)) + ")"
	}
	return modeNames[m]
}

func ParseMode(s string) (Mode, error) {
	for m := Allocate; m < modeCount; m++ {
		if modeNames[m] == s {
			return m, nil
		}
	}
	return 0, errors.Errorf("unknown allocator mode %q", s)
}
