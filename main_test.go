package main

import (
	"testing"

	"go-base/pkg/allocator"
	"go-base/pkg/allocator/heap"

	"github.com/stretchr/testify/require"
)

func TestSelfCheck(t *testing.T) {
	h, err := heap.New(&heap.Options{MaxAllocSize: 4096})
	require.NoError(t, err)
	require.NoError(t, selfCheck(allocator.Bind(heap.Proc, h, 0)))
	require.NoError(t, selfCheck(h))
}

func TestSelfCheckExhausted(t *testing.T) {
	h, err := heap.New(&heap.Options{MaxAllocSize: 512})
	require.NoError(t, err)

	err = selfCheck(h)
	require.Error(t, err)
	require.Contains(t, err.Error(), "exhausted")
}
