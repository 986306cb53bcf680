package heap

import "go-base/pkg/allocator"

// Alloc allocates one T from Default.
func Alloc[T any]() *T {
	return allocator.New[T](Default)
}

// AllocArray allocates count values of T from Default.
func AllocArray[T any](count int) []T {
	return allocator.NewArray[T](Default, count)
}

// AllocFree returns v to Default.
func AllocFree[T any](v *T) {
	allocator.Delete(Default, v)
}
