package types

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

func Bit[T constraints.Integer](n T) T { return 1 << n }

func KB[T constraints.Integer](n T) T { return n << 10 }
func MB[T constraints.Integer](n T) T { return n << 20 }
func GB[T constraints.Integer](n T) T { return n << 30 }
func TB[T constraints.Integer](n T) T { return n << 40 }

// SizeOf reports the in-memory size of T in bytes.
func SizeOf[T any]() S64 {
	var v T
	return S64(unsafe.Sizeof(v))
}
