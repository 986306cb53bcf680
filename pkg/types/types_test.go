package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLimits(t *testing.T) {
	require.Equal(t, S8(-128), MinS8)
	require.Equal(t, S8(127), MaxS8)
	require.Equal(t, S16(-32768), MinS16)
	require.Equal(t, S32(2147483647), MaxS32)
	require.Equal(t, U8(255), MaxU8)
	require.Equal(t, U16(65535), MaxU16)
	require.Equal(t, U32(4294967295), MaxU32)
	require.Equal(t, ^U64(0), MaxU64)
	require.Less(t, F32(0), F32Min)
	require.Less(t, F64(0), F64Min)
}

func TestUnits(t *testing.T) {
	require.Equal(t, 8, Bit(3))
	require.Equal(t, 1024, KB(1))
	require.Equal(t, 3<<20, MB(3))
	require.Equal(t, S64(1)<<30, GB(S64(1)))
	require.Equal(t, U64(2)<<40, TB(U64(2)))
}

func TestSizeOf(t *testing.T) {
	require.Equal(t, S64(1), SizeOf[S8]())
	require.Equal(t, S64(2), SizeOf[U16]())
	require.Equal(t, S64(4), SizeOf[F32]())
	require.Equal(t, S64(8), SizeOf[F64]())
	require.Equal(t, S64(16), SizeOf[[4]U32]())
	require.Equal(t, S64(16), SizeOf[struct {
		a U64
		b U8
	}]())
}
