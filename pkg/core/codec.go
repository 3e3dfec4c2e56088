package core

import (
	"fmt"
	"strconv"
	"strings"
)

type Codec struct {
	Name        string // PCMU, PCMA, L16, PCML
	ClockRate   uint32 // 8000, 16000...
	Channels    uint16 // 0, 1, 2
	PayloadType uint8
}

func (c *Codec) String() string {
	s := fmt.Sprintf("%d %s", c.PayloadType, c.Name)
	if c.ClockRate != 0 {
		s = fmt.Sprintf("%s/%d", s, c.ClockRate)
	}
	if c.Channels > 0 {
		s = fmt.Sprintf("%s/%d", s, c.Channels)
	}
	return s
}

func (c *Codec) Text() string {
	s := c.Name
	if c.ClockRate != 0 {
		s += "/" + strconv.Itoa(int(c.ClockRate))
	}
	if c.Channels > 0 {
		s += "/" + strconv.Itoa(int(c.Channels))
	}
	return s
}

func (c *Codec) IsRTP() bool {
	return c.PayloadType != PayloadTypeRAW
}

// ParseCodecString - parse `name[/clock_rate[/channels]]`, ex. `pcma/8000`, `s16le/16000/1`
func ParseCodecString(s string) *Codec {
	ss := strings.Split(s, "/")

	codec := &Codec{PayloadType: PayloadTypeRAW}

	switch strings.ToLower(ss[0]) {
	case "pcm_s16be", "s16be", "pcm", "l16":
		codec.Name = CodecPCM
	case "pcm_s16le", "s16le", "pcml":
		codec.Name = CodecPCML
	case "pcm_alaw", "alaw", "pcma":
		codec.Name = CodecPCMA
		codec.PayloadType = 8
	case "pcm_mulaw", "mulaw", "ulaw", "pcmu":
		codec.Name = CodecPCMU
		codec.PayloadType = 0
	default:
		return nil
	}

	if len(ss) > 1 {
		codec.ClockRate = uint32(atoi(ss[1]))
	}
	if len(ss) > 2 {
		codec.Channels = uint16(atoi(ss[2]))
	}

	return codec
}

func atoi(s string) (i int) {
	i, _ = strconv.Atoi(s)
	return
}
