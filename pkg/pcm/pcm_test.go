package pcm

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/AlexxIT/go711/pkg/core"
	"github.com/pion/rtp"
	"github.com/stretchr/testify/require"
)

func TestTranscode(t *testing.T) {
	tests := []struct {
		name   string
		src    core.Codec
		dst    core.Codec
		source string
		expect string
	}{
		{
			name:   "s16be->s16be",
			src:    core.Codec{Name: core.CodecPCM, ClockRate: 8000, Channels: 1},
			dst:    core.Codec{Name: core.CodecPCM, ClockRate: 8000, Channels: 1},
			source: "FCCA00130343062808130B510D9E0F7610DA111113EA15BD16F2168215D41561",
			expect: "FCCA00130343062808130B510D9E0F7610DA111113EA15BD16F2168215D41561",
		},
		{
			name:   "s16be->s16le",
			src:    core.Codec{Name: core.CodecPCM, ClockRate: 8000, Channels: 1},
			dst:    core.Codec{Name: core.CodecPCML, ClockRate: 8000, Channels: 1},
			source: "FCCA00130343062808130B510D9E0F7610DA111113EA15BD16F2168215D41561",
			expect: "CAFC1300430328061308510B9E0D760FDA101111EA13BD15F2168216D4156115",
		},
		{
			name:   "s16be->mulaw",
			src:    core.Codec{Name: core.CodecPCM, ClockRate: 8000, Channels: 1},
			dst:    core.Codec{Name: core.CodecPCMU, ClockRate: 8000, Channels: 1},
			source: "FCCA00130343062808130B510D9E0F7610DA111113EA15BD16F2168215D41561",
			expect: "52FDD1C5BEB8B3B0AEAEABA9A8A8A9AA",
		},
		{
			name:   "s16be->alaw",
			src:    core.Codec{Name: core.CodecPCM, ClockRate: 8000, Channels: 1},
			dst:    core.Codec{Name: core.CodecPCMA, ClockRate: 8000, Channels: 1},
			source: "FCCA00130343062808130B510D9E0F7610DA111113EA15BD16F2168215D41561",
			expect: "7CD4FFED95939E9B8584868083838080",
		},
		{
			name:   "alaw->s16be",
			src:    core.Codec{Name: core.CodecPCMA, ClockRate: 8000},
			dst:    core.Codec{Name: core.CodecPCM, ClockRate: 8000},
			source: "7CD4FFED95939E9B8584868083838080",
			expect: "FCD000180350062008400B400DC00F4010801180138015801680168015801580",
		},
		{
			name:   "alaw->mulaw",
			src:    core.Codec{Name: core.CodecPCMA, ClockRate: 8000},
			dst:    core.Codec{Name: core.CodecPCMU, ClockRate: 8000},
			source: "7CD4FFED95939E9B8584868083838080",
			expect: "52FCD1C5BEB8B3B0AEADABA9A8A8A9A9",
		},
		{
			name:   "mulaw->alaw",
			src:    core.Codec{Name: core.CodecPCMU, ClockRate: 8000},
			dst:    core.Codec{Name: core.CodecPCMA, ClockRate: 8000},
			source: "52FDD1C5BEB8B3B0AEAEABA9A8A8A9AA",
			expect: "7CD4FFED95939E9B8585868083838081",
		},
		{
			name:   "mulaw->mulaw",
			src:    core.Codec{Name: core.CodecPCMU, ClockRate: 8000},
			dst:    core.Codec{Name: core.CodecPCMU},
			source: "52FDD1C5",
			expect: "52FDD1C5",
		},
		{
			name:   "s16le odd tail",
			src:    core.Codec{Name: core.CodecPCML, ClockRate: 8000},
			dst:    core.Codec{Name: core.CodecPCMA, ClockRate: 8000},
			source: "0000FFFF01",
			expect: "D555",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f, err := Transcode(&test.dst, &test.src)
			require.Nil(t, err)
			b, _ := hex.DecodeString(test.source)
			b = f(b)
			s := fmt.Sprintf("%X", b)
			require.Equal(t, test.expect, s)
		})
	}
}

func TestTranscodeErrors(t *testing.T) {
	tests := []struct {
		name string
		src  core.Codec
		dst  core.Codec
	}{
		{
			name: "16khz->8khz",
			src:  core.Codec{Name: core.CodecPCM, ClockRate: 16000, Channels: 1},
			dst:  core.Codec{Name: core.CodecPCM, ClockRate: 8000, Channels: 1},
		},
		{
			name: "2ch->1ch",
			src:  core.Codec{Name: core.CodecPCM, ClockRate: 8000, Channels: 2},
			dst:  core.Codec{Name: core.CodecPCMA, ClockRate: 8000, Channels: 1},
		},
		{
			name: "opus->alaw",
			src:  core.Codec{Name: "OPUS", ClockRate: 8000},
			dst:  core.Codec{Name: core.CodecPCMA, ClockRate: 8000},
		},
		{
			name: "alaw->opus",
			src:  core.Codec{Name: core.CodecPCMA, ClockRate: 8000},
			dst:  core.Codec{Name: "OPUS", ClockRate: 8000},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f, err := Transcode(&test.dst, &test.src)
			require.Error(t, err)
			require.Nil(t, f)
		})
	}

	_, err := Transcode(&core.Codec{Name: core.CodecPCMA}, &core.Codec{Name: core.CodecPCMA, Channels: 2})
	require.True(t, errors.Is(err, ErrResample))
}

func TestFlipEndian(t *testing.T) {
	require.Equal(t, []byte{2, 1, 4, 3}, FlipEndian([]byte{1, 2, 3, 4}))
	require.Equal(t, []byte{2, 1}, FlipEndian([]byte{1, 2, 3}))

	// s16le <-> s16be never goes through int16 samples
	le := &core.Codec{Name: core.CodecPCML, ClockRate: 8000}
	be := &core.Codec{Name: core.CodecPCM, ClockRate: 8000}

	f, err := Transcode(be, le)
	require.Nil(t, err)
	require.Equal(t, []byte{0x34, 0x12}, f([]byte{0x12, 0x34, 0x56}))

	f, err = Transcode(le, be)
	require.Nil(t, err)
	require.Equal(t, []byte{0x34, 0x12, 0x78, 0x56}, f([]byte{0x12, 0x34, 0x56, 0x78}))
}

func TestBytesPerDuration(t *testing.T) {
	pcma := &core.Codec{Name: core.CodecPCMA, ClockRate: 8000}
	require.Equal(t, 160, BytesPerDuration(pcma, 20*time.Millisecond))

	s16 := &core.Codec{Name: core.CodecPCML, ClockRate: 16000, Channels: 2}
	require.Equal(t, 4, BytesPerFrame(s16))
	require.Equal(t, 1280, BytesPerDuration(s16, 20*time.Millisecond))

	require.Zero(t, BytesPerSample(&core.Codec{Name: "OPUS"}))
}

func TestTranscodeHandler(t *testing.T) {
	src := &core.Codec{Name: core.CodecPCML, ClockRate: 8000}
	dst := &core.Codec{Name: core.CodecPCMU, ClockRate: 8000}

	var packets []*rtp.Packet
	handler, err := TranscodeHandler(dst, src, func(packet *rtp.Packet) {
		packets = append(packets, packet)
	})
	require.Nil(t, err)

	handler(&rtp.Packet{Payload: make([]byte, 320)})
	handler(&rtp.Packet{Payload: make([]byte, 320)})

	require.Len(t, packets, 2)
	require.Len(t, packets[0].Payload, 160)
	require.Equal(t, byte(0xFF), packets[0].Payload[0])
	require.Equal(t, uint32(0), packets[0].Timestamp)
	require.Equal(t, uint32(160), packets[1].Timestamp)
	require.Equal(t, uint8(0), packets[1].PayloadType)

	_, err = TranscodeHandler(dst, &core.Codec{Name: core.CodecPCML, ClockRate: 16000}, nil)
	require.Error(t, err)
}

func TestProducerConsumer(t *testing.T) {
	src := &core.Codec{Name: core.CodecPCMA, ClockRate: 8000, PayloadType: 8}
	dst := &core.Codec{Name: core.CodecPCMU, ClockRate: 8000, PayloadType: 0}

	input := bytes.Repeat([]byte{0xD5, 0x55}, 250) // 500 bytes

	prod, err := Open(bytes.NewReader(input), src)
	require.Nil(t, err)
	require.Equal(t, 160, prod.PacketSize())

	var out bytes.Buffer
	cons := NewConsumer(&out)

	var timestamps []uint32
	handler, err := TranscodeHandler(dst, src, func(packet *rtp.Packet) {
		timestamps = append(timestamps, packet.Timestamp)
		cons.WriteRTP(packet)
	})
	require.Nil(t, err)

	prod.Handle(handler)
	require.Nil(t, prod.Start())
	require.Nil(t, cons.Err())

	require.Equal(t, 500, prod.Recv)
	require.Equal(t, 500, cons.Send)
	require.Equal(t, bytes.Repeat([]byte{0xFE, 0x7E}, 250), out.Bytes())
	require.Equal(t, []uint32{0, 160, 320, 480}, timestamps)
}

type errWriter struct{}

func (errWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestConsumerError(t *testing.T) {
	cons := NewConsumer(errWriter{})
	cons.WriteRTP(&rtp.Packet{Payload: []byte{1}})
	cons.WriteRTP(&rtp.Packet{Payload: []byte{2}})
	require.EqualError(t, cons.Err(), "closed")
	require.Zero(t, cons.Send)
}

func TestOpenUnsupported(t *testing.T) {
	_, err := Open(bytes.NewReader(nil), &core.Codec{Name: "OPUS"})
	require.Error(t, err)
}
