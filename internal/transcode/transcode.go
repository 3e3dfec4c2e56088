package transcode

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/AlexxIT/go711/internal/app"
	"github.com/AlexxIT/go711/pkg/core"
	"github.com/AlexxIT/go711/pkg/pcm"
	"github.com/AlexxIT/go711/pkg/wav"
	"github.com/pion/rtp"
	"github.com/rs/zerolog"
)

type Job struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
	From   string `yaml:"from"` // ex. pcmu/8000, wav (format from header)
	To     string `yaml:"to"`   // ex. s16le/8000, output *.wav gets header
}

type Stats struct {
	Recv     int
	Send     int
	Packets  int
	Duration time.Duration
}

func Init() {
	var cfg struct {
		Mod struct {
			Jobs []Job `yaml:"jobs"`
		} `yaml:"transcode"`
	}

	app.LoadConfig(&cfg)

	log = app.GetLogger("transcode")

	if len(cfg.Mod.Jobs) == 0 {
		log.Info().Msg("[transcode] no jobs")
		return
	}

	for _, job := range cfg.Mod.Jobs {
		stats, err := Run(job)
		if err != nil {
			log.Error().Err(err).Str("input", job.Input).Msg("[transcode]")
			continue
		}

		log.Info().Str("input", job.Input).Str("output", job.Output).
			Int("recv", stats.Recv).Int("send", stats.Send).
			Dur("duration", stats.Duration).Msg("[transcode] done")
	}
}

var log = zerolog.Nop()

var ErrUnsupportedCodec = errors.New("transcode: unsupported codec")

// Run - convert raw (or WAV) input file to raw (or WAV) output file
func Run(job Job) (stats Stats, err error) {
	rd, err := os.Open(job.Input)
	if err != nil {
		return
	}
	defer rd.Close()

	var src *core.Codec
	if strings.ToLower(job.From) == "wav" {
		src, err = wav.ReadHeader(rd)
	} else {
		src, err = parseCodec(job.From)
	}
	if err != nil {
		return
	}

	dst, err := parseCodec(job.To)
	if err != nil {
		return
	}
	if dst.ClockRate == 0 {
		dst.ClockRate = src.ClockRate
	}

	log.Debug().Str("src", src.String()).Str("dst", dst.String()).
		Msgf("[transcode] %s => %s", job.Input, job.Output)

	prod, err := pcm.Open(rd, src)
	if err != nil {
		return
	}

	var header []byte
	if strings.EqualFold(filepath.Ext(job.Output), ".wav") {
		if header = wav.Header(dst); header == nil {
			return stats, fmt.Errorf("%w: %s in wav", ErrUnsupportedCodec, dst.Text())
		}
	}

	// codec pair is checked before the output file exists
	var cons *pcm.Consumer

	handler, err := pcm.TranscodeHandler(dst, src, func(packet *rtp.Packet) {
		cons.WriteRTP(packet)
	})
	if err != nil {
		return
	}

	wr, err := os.Create(job.Output)
	if err != nil {
		return
	}
	defer func() {
		_ = wr.Close()
		if err != nil {
			_ = os.Remove(job.Output)
		}
	}()

	if _, err = wr.Write(header); err != nil {
		return
	}

	cons = pcm.NewConsumer(wr)

	prod.Handle(func(packet *rtp.Packet) {
		stats.Packets++
		handler(packet)
	})

	t0 := time.Now()

	if err = prod.Start(); err != nil {
		return
	}
	if err = cons.Err(); err != nil {
		return
	}

	stats.Recv = prod.Recv
	stats.Send = cons.Send
	stats.Duration = time.Since(t0)

	log.Trace().Int("packets", stats.Packets).Msg("[transcode]")

	err = wr.Close()
	return
}

func parseCodec(s string) (*core.Codec, error) {
	if codec := core.ParseCodecString(s); codec != nil {
		return codec, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedCodec, s)
}
