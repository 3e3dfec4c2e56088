// Package wav - minimal RIFF/WAVE container for linear PCM and G.711
package wav

import (
	"encoding/binary"
	"errors"
	"io"

	"github.com/AlexxIT/go711/pkg/core"
)

// Header - WAV header with unknown (streaming) sizes, nil for unsupported codec
func Header(codec *core.Codec) []byte {
	var fmt, size, extra byte

	switch codec.Name {
	case core.CodecPCML:
		fmt = 1
		size = 2
	case core.CodecPCMA:
		fmt = 6
		size = 1
		extra = 2
	case core.CodecPCMU:
		fmt = 7
		size = 1
		extra = 2
	default:
		return nil
	}

	channels := byte(codec.Channels)
	if channels == 0 {
		channels = 1
	}

	b := make([]byte, 0, 46) // cap with extra
	b = append(b, "RIFF\xFF\xFF\xFF\xFFWAVEfmt "...)

	b = append(b, 0x10+extra, 0, 0, 0)
	b = append(b, fmt, 0)
	b = append(b, channels, 0)
	b = binary.LittleEndian.AppendUint32(b, codec.ClockRate)
	b = binary.LittleEndian.AppendUint32(b, uint32(size*channels)*codec.ClockRate)
	b = append(b, size*channels, 0)
	b = append(b, size*8, 0)
	if extra > 0 {
		b = append(b, 0, 0) // ExtraParamSize (if PCM, then doesn't exist)
	}

	b = append(b, "data\xFF\xFF\xFF\xFF"...)

	return b
}

var ErrUnsupportedFormat = errors.New("wav: unsupported format")

// fmt chunk is 16 to 40 bytes (WAVE_FORMAT_EXTENSIBLE)
const maxFormatSize = 64

// ReadHeader - read header until data chunk, r is positioned on the first sample
func ReadHeader(r io.Reader) (*core.Codec, error) {
	// skip Master RIFF chunk
	b := make([]byte, 12)
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, err
	}

	if string(b[:4]) != "RIFF" || string(b[8:]) != "WAVE" {
		return nil, ErrUnsupportedFormat
	}

	codec := core.Codec{PayloadType: core.PayloadTypeRAW}

	for {
		chunkID, data, err := readChunk(r)
		if err != nil {
			return nil, err
		}

		if chunkID == "data" {
			break
		}

		if chunkID == "fmt " {
			if len(data) < 16 {
				return nil, ErrUnsupportedFormat
			}

			bits := binary.LittleEndian.Uint16(data[14:])

			// https://audiocoding.cc/articles/2008-05-22-wav-file-structure/wav_formats.txt
			switch {
			case data[0] == 1 && bits == 16:
				codec.Name = core.CodecPCML
			case data[0] == 6 && bits == 8:
				codec.Name = core.CodecPCMA
				codec.PayloadType = 8
			case data[0] == 7 && bits == 8:
				codec.Name = core.CodecPCMU
				codec.PayloadType = 0
			default:
				return nil, ErrUnsupportedFormat
			}

			codec.Channels = uint16(data[2])
			codec.ClockRate = binary.LittleEndian.Uint32(data[4:])
		}
	}

	if codec.Name == "" {
		return nil, ErrUnsupportedFormat
	}

	return &codec, nil
}

// readChunk - return body only for fmt chunk, other chunks are skipped
func readChunk(r io.Reader) (chunkID string, data []byte, err error) {
	b := make([]byte, 8)
	if _, err = io.ReadFull(r, b); err != nil {
		return
	}

	chunkID = string(b[:4])
	if chunkID == "data" {
		return
	}

	size := int64(binary.LittleEndian.Uint32(b[4:]))
	size += size & 1 // pad byte

	if chunkID == "fmt " {
		if size > maxFormatSize {
			return "", nil, ErrUnsupportedFormat
		}
		data = make([]byte, size)
		_, err = io.ReadFull(r, data)
		return
	}

	_, err = io.CopyN(io.Discard, r, size)
	return
}
