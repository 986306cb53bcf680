package osutil

import (
	"testing"

	"github.com/pbnjay/memory"
	"github.com/stretchr/testify/require"
)

func TestParseCgroupLimit(t *testing.T) {
	for _, tc := range []struct {
		raw   string
		limit uint64
		ok    bool
	}{
		{"536870912\n", 536870912, true},
		{"max\n", 0, false},
		{"9223372036854771712\n", 0, false},
		{"", 0, false},
		{"garbage", 0, false},
		{"0", 0, false},
	} {
		limit, ok := parseCgroupLimit(tc.raw)
		require.Equal(t, tc.ok, ok, tc.raw)
		require.Equal(t, tc.limit, limit, tc.raw)
	}
}

func TestTotalMemory(t *testing.T) {
	total := TotalMemory()
	if host := memory.TotalMemory(); host > 0 {
		require.NotZero(t, total)
		require.LessOrEqual(t, total, host)
	}
}
