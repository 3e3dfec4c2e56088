package pcm

import (
	"time"

	"github.com/AlexxIT/go711/pkg/core"
	"github.com/pion/rtp"
)

// TranscodeHandler - transcode payload of every packet, timestamp counts frames
func TranscodeHandler(dst, src *core.Codec, handler core.HandlerFunc) (core.HandlerFunc, error) {
	f, err := Transcode(dst, src)
	if err != nil {
		return nil, err
	}

	var ts uint32
	size := BytesPerFrame(src)

	return func(packet *rtp.Packet) {
		clone := *packet
		clone.Payload = f(packet.Payload)
		clone.Timestamp = ts
		if dst.IsRTP() {
			clone.PayloadType = dst.PayloadType
		}
		handler(&clone)

		ts += uint32(len(packet.Payload) / size)
	}, nil
}

func BytesPerSample(codec *core.Codec) int {
	switch codec.Name {
	case core.CodecPCML, core.CodecPCM:
		return 2
	case core.CodecPCMU, core.CodecPCMA:
		return 1
	}
	return 0
}

func BytesPerFrame(codec *core.Codec) int {
	if codec.Channels <= 1 {
		return BytesPerSample(codec)
	}
	return int(codec.Channels) * BytesPerSample(codec)
}

func FramesPerDuration(codec *core.Codec, duration time.Duration) int {
	return int(time.Duration(codec.ClockRate) * duration / time.Second)
}

func BytesPerDuration(codec *core.Codec, duration time.Duration) int {
	return BytesPerFrame(codec) * FramesPerDuration(codec, duration)
}
