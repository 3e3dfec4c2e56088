package pcm

import (
	"errors"
	"io"
	"time"

	"github.com/AlexxIT/go711/pkg/core"
	"github.com/pion/rtp"
)

// Producer - split raw stream into RTP packets of 20ms
type Producer struct {
	Codec *core.Codec
	Recv  int

	rd      io.Reader
	handler core.HandlerFunc
}

func Open(rd io.Reader, codec *core.Codec) (*Producer, error) {
	if BytesPerSample(codec) == 0 {
		return nil, errors.New("pcm: unsupported codec: " + codec.Name)
	}
	return &Producer{Codec: codec, rd: rd}, nil
}

func (c *Producer) Handle(handler core.HandlerFunc) {
	c.handler = handler
}

func (c *Producer) PacketSize() int {
	if n := BytesPerDuration(c.Codec, 20*time.Millisecond); n > 0 {
		return n
	}
	return 1024
}

// Start - read until EOF, tail shorter than one frame is dropped
func (c *Producer) Start() error {
	frame := BytesPerFrame(c.Codec)
	size := c.PacketSize()

	var seq uint16
	var ts uint32

	for {
		payload := make([]byte, size)
		n, err := io.ReadFull(c.rd, payload)
		n -= n % frame

		c.Recv += n

		if n > 0 && c.handler != nil {
			pkt := &rtp.Packet{
				Header: rtp.Header{
					Version:        2,
					SequenceNumber: seq,
					Timestamp:      ts,
				},
				Payload: payload[:n],
			}
			if c.Codec.IsRTP() {
				pkt.PayloadType = c.Codec.PayloadType
			}
			c.handler(pkt)
		}

		seq++
		ts += uint32(n / frame)

		switch err {
		case nil:
			continue
		case io.EOF, io.ErrUnexpectedEOF:
			return nil
		}
		return err
	}
}
