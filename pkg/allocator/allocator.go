// Package allocator defines the allocation protocol used by the base layer
// instead of calling the Go heap directly.
//
// The protocol has two equivalent forms. Proc is a single entry point that
// takes the operation as a Mode; Allocator is the same contract as a closed
// method set. Bind turns a Proc into an Allocator and Dispatch routes a tagged
// call to an Allocator, so either form can be used wherever the other is
// expected.
//
// Blocks are byte slices. A nil block is the null result: on Allocate and
// Resize it means the request could not be satisfied and the caller must
// check for it. Passing an invalid Mode, or FreeAll to an allocator that does
// not support bulk release, is a programming error and aborts the process.
//
// Nothing in the protocol is synchronized.
package allocator

import "go-base/util/debug"

// Proc is the single-entry allocation procedure.
//
//	Allocate: size bytes, oldSize and oldMemory unused.
//	Resize:   a block of size bytes whose first min(size, oldSize) bytes equal
//	          oldMemory's. oldMemory is invalid once the result is non-nil; on
//	          nil it is untouched and still owned by the caller. A nil
//	          oldMemory makes Resize behave as Allocate.
//	Free:     releases oldMemory; nil is a no-op. The result is always nil.
//	FreeAll:  releases every block issued by the allocator instance.
//
// data is the caller-owned context of the implementation and is never
// interpreted by generic code.
type Proc[D any] func(mode Mode, size, oldSize int, oldMemory []byte, data D, opts Options) []byte

// Allocator is the method form of Proc.
type Allocator interface {
	Allocate(size int) []byte
	Resize(size, oldSize int, oldMemory []byte) []byte
	Free(oldMemory []byte)
	FreeAll()
}

// Bind pairs a procedure with its context.
func Bind[D any](proc Proc[D], data D, opts Options) Allocator {
	return &bound[D]{proc: proc, data: data, opts: opts}
}

type bound[D any] struct {
	proc Proc[D]
	data D
	opts Options
}

func (b *bound[D]) Allocate(size int) []byte {
	return b.proc(Allocate, size, 0, nil, b.data, b.opts)
}

func (b *bound[D]) Resize(size, oldSize int, oldMemory []byte) []byte {
	return b.proc(Resize, size, oldSize, oldMemory, b.data, b.opts)
}

func (b *bound[D]) Free(oldMemory []byte) {
	b.proc(Free, 0, 0, oldMemory, b.data, b.opts)
}

func (b *bound[D]) FreeAll() {
	b.proc(FreeAll, 0, 0, nil, b.data, b.opts)
}

// Dispatch performs mode on a.
func Dispatch(a Allocator, mode Mode, size, oldSize int, oldMemory []byte) []byte {
	switch mode {
	case Allocate:
		return a.Allocate(size)
	case Resize:
		return a.Resize(size, oldSize, oldMemory)
	case Free:
		a.Free(oldMemory)
		return nil
	case FreeAll:
		a.FreeAll()
		return nil
	}

	debug.Fail("mode.Valid()")
	return nil
}
