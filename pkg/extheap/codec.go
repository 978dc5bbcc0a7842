package extheap

import (
	"encoding/binary"
	"math"
)

// Codec serialises T to and from a fixed-width byte record. The width
// (Size) must be constant for a given Codec value: the heap computes block
// offsets as i * B * codec.Size(), so a Codec whose width varies between
// calls would silently corrupt the file layout.
type Codec[T any] interface {
	// Size returns the fixed width in bytes of one encoded element.
	Size() int

	// Put encodes v into dst, which is exactly Size() bytes long.
	Put(dst []byte, v T)

	// Get decodes one element from src, which is exactly Size() bytes long.
	Get(src []byte) T
}

// Int64Codec encodes int64 as 8 little-endian bytes.
type Int64Codec struct{}

func (Int64Codec) Size() int { return 8 }

func (Int64Codec) Put(dst []byte, v int64) {
	binary.LittleEndian.PutUint64(dst, uint64(v))
}

func (Int64Codec) Get(src []byte) int64 {
	return int64(binary.LittleEndian.Uint64(src))
}

// Uint64Codec encodes uint64 as 8 little-endian bytes.
type Uint64Codec struct{}

func (Uint64Codec) Size() int { return 8 }

func (Uint64Codec) Put(dst []byte, v uint64) {
	binary.LittleEndian.PutUint64(dst, v)
}

func (Uint64Codec) Get(src []byte) uint64 {
	return binary.LittleEndian.Uint64(src)
}

// Float64Codec encodes float64 as 8 little-endian bytes (IEEE 754 bits).
type Float64Codec struct{}

func (Float64Codec) Size() int { return 8 }

func (Float64Codec) Put(dst []byte, v float64) {
	binary.LittleEndian.PutUint64(dst, math.Float64bits(v))
}

func (Float64Codec) Get(src []byte) float64 {
	return math.Float64frombits(binary.LittleEndian.Uint64(src))
}
