// Package pcm - transcoding between linear PCM and G.711 payloads
package pcm

import (
	"errors"

	"github.com/AlexxIT/go711/pkg/core"
	"github.com/AlexxIT/go711/pkg/g711"
)

var ErrResample = errors.New("pcm: resampling and channel mixing are not supported")

func FlipEndian(src []byte) (dst []byte) {
	var i, j int
	n := len(src) &^ 1
	dst = make([]byte, n)
	for i < n {
		x := src[i]
		i++
		dst[j] = src[i]
		j++
		i++
		dst[j] = x
		j++
	}
	return
}

// Transcode - return converter of raw payloads from src codec to dst codec.
// Sample rate and channels must be the same (zero means any).
func Transcode(dst, src *core.Codec) (func([]byte) []byte, error) {
	if !sameFormat(dst, src) {
		return nil, ErrResample
	}

	// same sample size, without linear PCM
	switch {
	case src.Name == dst.Name:
		if BytesPerSample(src) == 0 {
			break
		}
		return func(b []byte) []byte {
			return append([]byte(nil), b...)
		}, nil
	case src.Name == core.CodecPCMA && dst.Name == core.CodecPCMU:
		return lookup(g711.TranscodePCMAtoPCMU), nil
	case src.Name == core.CodecPCMU && dst.Name == core.CodecPCMA:
		return lookup(g711.TranscodePCMUtoPCMA), nil
	case src.Name == core.CodecPCML && dst.Name == core.CodecPCM,
		src.Name == core.CodecPCM && dst.Name == core.CodecPCML:
		return FlipEndian, nil
	}

	var reader func([]byte) []int16
	var writer func([]int16) []byte

	switch src.Name {
	case core.CodecPCML:
		reader = func(src []byte) (dst []int16) {
			var i, j int
			n := len(src) &^ 1
			dst = make([]int16, n/2)
			for i < n {
				lo := src[i]
				i++
				hi := src[i]
				i++
				dst[j] = int16(hi)<<8 | int16(lo)
				j++
			}
			return
		}
	case core.CodecPCM:
		reader = func(src []byte) (dst []int16) {
			var i, j int
			n := len(src) &^ 1
			dst = make([]int16, n/2)
			for i < n {
				hi := src[i]
				i++
				lo := src[i]
				i++
				dst[j] = int16(hi)<<8 | int16(lo)
				j++
			}
			return
		}
	case core.CodecPCMU:
		reader = func(src []byte) (dst []int16) {
			dst = make([]int16, len(src))
			_, _ = g711.DecodePCMU(dst, src) // sized above
			return
		}
	case core.CodecPCMA:
		reader = func(src []byte) (dst []int16) {
			dst = make([]int16, len(src))
			_, _ = g711.DecodePCMA(dst, src) // sized above
			return
		}
	default:
		return nil, errors.New("pcm: unsupported source codec: " + src.Name)
	}

	switch dst.Name {
	case core.CodecPCML:
		writer = func(src []int16) (dst []byte) {
			var i int
			dst = make([]byte, len(src)*2)
			for _, sample := range src {
				dst[i] = byte(sample)
				i++
				dst[i] = byte(sample >> 8)
				i++
			}
			return
		}
	case core.CodecPCM:
		writer = func(src []int16) (dst []byte) {
			var i int
			dst = make([]byte, len(src)*2)
			for _, sample := range src {
				dst[i] = byte(sample >> 8)
				i++
				dst[i] = byte(sample)
				i++
			}
			return
		}
	case core.CodecPCMU:
		writer = func(src []int16) (dst []byte) {
			dst = make([]byte, len(src))
			_, _ = g711.EncodePCMU(dst, src) // sized above
			return
		}
	case core.CodecPCMA:
		writer = func(src []int16) (dst []byte) {
			dst = make([]byte, len(src))
			_, _ = g711.EncodePCMA(dst, src) // sized above
			return
		}
	default:
		return nil, errors.New("pcm: unsupported destination codec: " + dst.Name)
	}

	return func(b []byte) []byte {
		return writer(reader(b))
	}, nil
}

func lookup(f func(dst, src []byte) (int, error)) func([]byte) []byte {
	return func(src []byte) (dst []byte) {
		dst = make([]byte, len(src))
		_, _ = f(dst, src) // sized above
		return
	}
}

func sameFormat(dst, src *core.Codec) bool {
	if dst.ClockRate != 0 && src.ClockRate != 0 && dst.ClockRate != src.ClockRate {
		return false
	}
	return channels(dst) == channels(src)
}

func channels(codec *core.Codec) uint16 {
	if codec.Channels == 0 {
		return 1
	}
	return codec.Channels
}
