package pcm

import (
	"io"

	"github.com/pion/rtp"
)

// Consumer - write packet payloads to raw stream, stops on first error
type Consumer struct {
	Send int

	wr  io.Writer
	err error
}

func NewConsumer(wr io.Writer) *Consumer {
	return &Consumer{wr: wr}
}

func (c *Consumer) WriteRTP(packet *rtp.Packet) {
	if c.err != nil {
		return
	}
	n, err := c.wr.Write(packet.Payload)
	c.Send += n
	c.err = err
}

func (c *Consumer) Err() error {
	return c.err
}
