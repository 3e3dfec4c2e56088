package g711

// PCMtoPCMU encodes one linear sample into a µ-law code.
// Like A-law, negative samples use ones' complement.
func PCMtoPCMU(pcm int16) byte {
	p := int(pcm)

	var ulaw byte
	if p < 0 {
		p = ^p
		ulaw = signBit
	}

	p += ulawBias
	if p > ulawClip {
		p = ulawClip
	}

	// down to 13 bits, then segment and interval numbers
	p >>= 3
	if p >= 0x100 {
		p >>= 4
		ulaw += 0x40
	}
	if p >= 0x40 {
		p >>= 2
		ulaw += 0x20
	}
	if p >= 0x20 {
		p >>= 1
		ulaw += 0x10
	}

	// p is in 0x10..0x1F here, 0x10 is the implicit MSB
	ulaw += byte(p) & 0x0F

	return ulaw ^ ulawInvert
}

func PCMUtoPCM(ulaw byte) int16 {
	ulaw ^= ulawInvert

	// MSB (0x80) and half bit (0x04) come with the bias
	data := int16(ulaw&0x0F)<<3 | ulawBias
	data <<= (ulaw >> 4) & 0x07
	data -= ulawBias

	// sign
	if ulaw&signBit != 0 {
		return -data
	}
	return data
}
