package g711

// Direct A-law <-> µ-law tables. Each entry is the composition of the scalar
// decoder and encoder, so converting a code never differs from a round trip
// through linear PCM.
var (
	pcmaToPCMU [256]byte
	pcmuToPCMA [256]byte
)

func init() {
	for i := 0; i < 256; i++ {
		pcmaToPCMU[i] = PCMtoPCMU(PCMAtoPCM(byte(i)))
		pcmuToPCMA[i] = PCMtoPCMA(PCMUtoPCM(byte(i)))
	}
}

func PCMAtoPCMU(alaw byte) byte {
	return pcmaToPCMU[alaw]
}

func PCMUtoPCMA(ulaw byte) byte {
	return pcmuToPCMA[ulaw]
}
