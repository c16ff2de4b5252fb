// Package jmath holds the small amount of numeric plumbing the pixel
// pipeline needs.
package jmath

import (
	"golang.org/x/exp/constraints"
)

// AlignUp rounds len up to the next multiple of alignment. alignment has to
// be a power of two.
func AlignUp[T constraints.Integer](len T, alignment T) T {
	return (len + alignment - 1) & -alignment
}

// Unorm8 converts a normalized float channel to its 8-bit representation,
// clamping to [0, 1].
func Unorm8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// UnormF32 converts an 8-bit channel to its normalized float value.
func UnormF32(v uint8) float32 {
	return float32(v) / 255
}
