package allocator

import (
	"math"
	"unsafe"

	"go-base/util/debug"
)

// The typed forms reinterpret raw blocks. Block memory is not scanned by the
// garbage collector, so T must be pointer-free, and T must have a non-zero
// size so that a nil result always means exhaustion. Either violation is a
// defect and aborts the process.
func checkType[T any]() {
	var zero T
	debug.Assert(unsafe.Sizeof(zero) > 0, "T has non-zero size")
	debug.Assert(pointerFree[T](), "T contains no pointers")
}

// New allocates room for one T. The value is not guaranteed to be zeroed.
func New[T any](a Allocator) *T {
	checkType[T]()

	var zero T
	block := a.Allocate(int(unsafe.Sizeof(zero)))
	if block == nil {
		return nil
	}
	p := unsafe.Pointer(unsafe.SliceData(block))
	debug.Assert(uintptr(p)%unsafe.Alignof(zero) == 0, "block aligned for T")
	return (*T)(p)
}

// NewArray allocates room for count values of T.
func NewArray[T any](a Allocator, count int) []T {
	checkType[T]()

	var zero T
	size := int(unsafe.Sizeof(zero))
	if count <= 0 || count > math.MaxInt/size {
		return nil
	}

	block := a.Allocate(size * count)
	if block == nil {
		return nil
	}
	p := unsafe.Pointer(unsafe.SliceData(block))
	debug.Assert(uintptr(p)%unsafe.Alignof(zero) == 0, "block aligned for T")
	return unsafe.Slice((*T)(p), count)
}

// Delete frees a value obtained from New. A nil v is forwarded as a nil block.
func Delete[T any](a Allocator, v *T) {
	if v == nil {
		a.Free(nil)
		return
	}
	a.Free(unsafe.Slice((*byte)(unsafe.Pointer(v)), unsafe.Sizeof(*v)))
}

// DeleteArray frees a slice obtained from NewArray.
func DeleteArray[T any](a Allocator, s []T) {
	if s == nil {
		a.Free(nil)
		return
	}
	var zero T
	n := uintptr(cap(s)) * unsafe.Sizeof(zero)
	a.Free(unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), n))
}
