package g711

import "encoding/binary"

// EncodePCMA encodes src samples into dst and returns the number of codes.
func EncodePCMA(dst []byte, src []int16) (int, error) {
	return encode(dst, src, PCMtoPCMA)
}

// EncodePCMU encodes src samples into dst and returns the number of codes.
func EncodePCMU(dst []byte, src []int16) (int, error) {
	return encode(dst, src, PCMtoPCMU)
}

// DecodePCMA decodes src codes into dst and returns the number of samples.
func DecodePCMA(dst []int16, src []byte) (int, error) {
	return decode(dst, src, PCMAtoPCM)
}

// DecodePCMU decodes src codes into dst and returns the number of samples.
func DecodePCMU(dst []int16, src []byte) (int, error) {
	return decode(dst, src, PCMUtoPCM)
}

// TranscodePCMAtoPCMU converts A-law codes to µ-law codes without linear PCM.
func TranscodePCMAtoPCMU(dst, src []byte) (int, error) {
	return lookup(dst, src, &pcmaToPCMU)
}

// TranscodePCMUtoPCMA converts µ-law codes to A-law codes without linear PCM.
func TranscodePCMUtoPCMA(dst, src []byte) (int, error) {
	return lookup(dst, src, &pcmuToPCMA)
}

// EncodePCMABytes works like EncodePCMA, but src holds 16-bit samples in
// machine byte order. len(src) must be even, returns len(src)/2.
func EncodePCMABytes(dst, src []byte) (int, error) {
	return encodeBytes(dst, src, PCMtoPCMA)
}

func EncodePCMUBytes(dst, src []byte) (int, error) {
	return encodeBytes(dst, src, PCMtoPCMU)
}

// DecodePCMABytes works like DecodePCMA, but writes 16-bit samples in
// machine byte order. Returns the number of bytes, 2*len(src).
func DecodePCMABytes(dst, src []byte) (int, error) {
	return decodeBytes(dst, src, PCMAtoPCM)
}

func DecodePCMUBytes(dst, src []byte) (int, error) {
	return decodeBytes(dst, src, PCMUtoPCM)
}

func encode(dst []byte, src []int16, f func(int16) byte) (int, error) {
	n := len(src)
	if len(dst) < n {
		return 0, ErrShortBuffer
	}

	parallel(n, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			dst[i] = f(src[i])
		}
	})

	return n, nil
}

func decode(dst []int16, src []byte, f func(byte) int16) (int, error) {
	n := len(src)
	if len(dst) < n {
		return 0, ErrShortBuffer
	}

	parallel(n, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			dst[i] = f(src[i])
		}
	})

	return n, nil
}

func lookup(dst, src []byte, table *[256]byte) (int, error) {
	n := len(src)
	if len(dst) < n {
		return 0, ErrShortBuffer
	}

	parallel(n, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			dst[i] = table[src[i]]
		}
	})

	return n, nil
}

func encodeBytes(dst, src []byte, f func(int16) byte) (int, error) {
	if len(src)%2 != 0 {
		return 0, ErrOddLength
	}

	n := len(src) / 2
	if len(dst) < n {
		return 0, ErrShortBuffer
	}

	parallel(n, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			sample := int16(binary.NativeEndian.Uint16(src[2*i:]))
			dst[i] = f(sample)
		}
	})

	return n, nil
}

func decodeBytes(dst, src []byte, f func(byte) int16) (int, error) {
	n := 2 * len(src)
	if len(dst) < n {
		return 0, ErrShortBuffer
	}

	parallel(len(src), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			binary.NativeEndian.PutUint16(dst[2*i:], uint16(f(src[i])))
		}
	})

	return n, nil
}
