package types

import "math"

const (
	MinS8  S8  = math.MinInt8
	MaxS8  S8  = math.MaxInt8
	MinS16 S16 = math.MinInt16
	MaxS16 S16 = math.MaxInt16
	MinS32 S32 = math.MinInt32
	MaxS32 S32 = math.MaxInt32
	MinS64 S64 = math.MinInt64
	MaxS64 S64 = math.MaxInt64

	MaxU8  U8  = math.MaxUint8
	MaxU16 U16 = math.MaxUint16
	MaxU32 U32 = math.MaxUint32
	MaxU64 U64 = math.MaxUint64
)

// Smallest normal and largest finite values.
const (
	F32Min F32 = 1.17549435e-38
	F32Max F32 = math.MaxFloat32

	F64Min F64 = 2.2250738585072014e-308
	F64Max F64 = math.MaxFloat64
)
