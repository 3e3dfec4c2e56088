// Package g711 - ITU-T G.711 A-law and µ-law companding
// https://www.itu.int/rec/T-REC-G.711
//
// All functions are pure and safe for concurrent use. Batch functions never
// allocate output: the caller owns both buffers, and an undersized or
// mismatched buffer is rejected before anything is written.
package g711

import (
	"errors"
	"fmt"
)

const (
	signBit = 0x80 // set for positive A-law and negative µ-law (before line inversion)

	alawInvert   = 0x55 // A-law has alternate bits inverted for transmission
	alawHalfStep = 0x08 // places decoded value in the middle of the interval

	ulawInvert = 0xFF   // µ-law has all bits inverted for transmission
	ulawBias   = 0x84   // 132 or 1000 0100
	ulawClip   = 0x7F00 // biased magnitude limit (15 bits)
)

var ErrInvalidArgument = errors.New("g711: invalid argument")

var (
	ErrShortBuffer = fmt.Errorf("%w: short destination buffer", ErrInvalidArgument)
	ErrOddLength   = fmt.Errorf("%w: odd length of 16-bit sample buffer", ErrInvalidArgument)
)
