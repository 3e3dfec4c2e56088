package core

import "github.com/pion/rtp"

const (
	CodecPCMU = "PCMU" // payloadType: 0
	CodecPCMA = "PCMA" // payloadType: 8
	CodecPCM  = "L16"  // Linear PCM (big endian)

	CodecPCML = "PCML" // Linear PCM (little endian)
)

const PayloadTypeRAW byte = 255

type HandlerFunc func(packet *rtp.Packet)
