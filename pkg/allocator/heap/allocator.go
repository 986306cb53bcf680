// Package heap is the default implementation of the allocator protocol,
// backed by the Go heap.
//
// Resize never grows a block in place: it allocates a new block, copies the
// preserved prefix and frees the old one. Bulk release is not supported;
// FreeAll aborts the process.
package heap

import (
	"math"

	"go-base/pkg/allocator"
	"go-base/util/debug"
	"go-base/util/helpers"
	"go-base/util/osutil"

	"github.com/pkg/errors"
)

const poisonByte = 0xdd

// Default is the allocator used by Proc when no context is supplied.
var Default = mustNew(&DefaultOptions)

func New(opts *Options) (*Allocator, error) {
	if opts == nil {
		opts = &DefaultOptions
	}
	if opts.MaxAllocSize < 0 {
		return nil, errors.Errorf("invalid max alloc size %d", opts.MaxAllocSize)
	}

	maxAllocSize := opts.MaxAllocSize
	if maxAllocSize == 0 {
		maxAllocSize = processMemory()
	}

	return &Allocator{maxAllocSize: maxAllocSize}, nil
}

func mustNew(opts *Options) *Allocator {
	a, err := New(opts)
	if err != nil {
		panic(errors.Wrap(err, "failed to create default heap allocator"))
	}
	return a
}

func processMemory() int {
	total := osutil.TotalMemory()
	if total == 0 || total > math.MaxInt {
		return math.MaxInt
	}
	return int(total)
}

// Allocator hands out blocks from the Go heap. It holds no mutable state.
type Allocator struct {
	maxAllocSize int
}

var _ allocator.Allocator = (*Allocator)(nil)

func (a *Allocator) MaxAllocSize() int {
	return a.maxAllocSize
}

// Allocate returns a block of exactly size bytes, or nil when size is not
// positive or cannot be satisfied.
func (a *Allocator) Allocate(size int) []byte {
	if size <= 0 || size > a.maxAllocSize {
		return nil
	}
	return alloc(size)
}

// Resize moves the first min(size, oldSize) bytes of oldMemory into a new
// block and frees oldMemory. When the new block cannot be allocated the result
// is nil and oldMemory is left untouched.
func (a *Allocator) Resize(size, oldSize int, oldMemory []byte) []byte {
	if oldMemory != nil {
		debug.Assert(oldSize >= 0 && oldSize <= cap(oldMemory), "0 <= old_size <= cap(old_memory)")
	}

	block := a.Allocate(size)
	if block == nil {
		return nil
	}

	if oldMemory != nil {
		if oldSize > 0 {
			copy(block, oldMemory[:helpers.Min(size, oldSize)])
		}
		a.Free(oldMemory)
	}
	return block
}

// Free releases oldMemory. Debug builds overwrite the block so stale
// references read garbage.
func (a *Allocator) Free(oldMemory []byte) {
	if oldMemory == nil {
		return
	}
	if debug.Enabled {
		poison(oldMemory[:cap(oldMemory)])
	}
}

// FreeAll is not supported by the Go heap and aborts the process.
func (a *Allocator) FreeAll() {
	debug.Fail("heap allocator supports free_all")
}

// Proc is the single-entry form of the heap allocator. data selects the
// instance; nil means Default.
func Proc(mode allocator.Mode, size, oldSize int, oldMemory []byte, data *Allocator, _ allocator.Options) []byte {
	if data == nil {
		data = Default
	}
	return allocator.Dispatch(data, mode, size, oldSize, oldMemory)
}

func alloc(size int) (block []byte) {
	defer func() {
		if recover() != nil {
			block = nil
		}
	}()

	block = make([]byte, size)
	return block[:size:size]
}

func poison(b []byte) {
	for i := range b {
		b[i] = poisonByte
	}
}
