// Package types holds the fixed-width numeric names and size helpers shared by
// the rest of the base layer.
package types

type (
	S8  = int8
	S16 = int16
	S32 = int32
	S64 = int64

	U8  = uint8
	U16 = uint16
	U32 = uint32
	U64 = uint64

	F32 = float32
	F64 = float64
)
