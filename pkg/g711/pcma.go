package g711

// PCMtoPCMA encodes one linear sample into an A-law code.
// Negative samples use ones' complement, so the quantization stays
// symmetric around zero: PCMtoPCMA(^s) == PCMtoPCMA(s) ^ 0x80.
func PCMtoPCMA(pcm int16) byte {
	p := int(pcm)

	var alaw byte
	if p < 0 {
		p = ^p
	} else {
		alaw = signBit
	}

	// segment and interval numbers
	p >>= 4
	if p >= 0x20 {
		if p >= 0x100 {
			p >>= 4
			alaw += 0x40
		}
		if p >= 0x40 {
			p >>= 2
			alaw += 0x20
		}
		if p >= 0x20 {
			p >>= 1
			alaw += 0x10
		}
	}

	// alaw&0x70 holds the segment, p the interval
	alaw += byte(p)

	return alaw ^ alawInvert
}

func PCMAtoPCM(alaw byte) int16 {
	alaw ^= alawInvert

	data := int16(alaw&0x1F)<<4 + alawHalfStep

	if seg := alaw & 0x7F; seg >= 0x20 {
		data |= 0x100 // MSB
		data <<= seg>>4 - 1
	}

	// sign
	if alaw&signBit == 0 {
		return -data
	}
	return data
}
