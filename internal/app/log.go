package app

import (
	"bytes"
	"io"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// MemoryLog - tail of the log output, saved to `log.dump` file on exit
var MemoryLog = newRingLog(1 << 20)

func GetLogger(module string) zerolog.Logger {
	if s, ok := modules[module]; ok {
		lvl, err := zerolog.ParseLevel(s)
		if err == nil {
			return Logger.Level(lvl)
		}
		Logger.Warn().Err(err).Caller().Send()
	}

	return Logger
}

// initLogger support:
// - output: empty (only to memory), stderr, stdout
// - format: empty (autodetect color support), color, json, text
// - time:   empty (disable timestamp), UNIXMS, UNIXMICRO, UNIXNANO
// - level:  disabled, trace, debug, info, warn, error...
// - dump:   empty (disabled), path to save MemoryLog on exit
func initLogger() {
	var cfg struct {
		Mod map[string]string `yaml:"log"`
	}

	cfg.Mod = modules // defaults

	LoadConfig(&cfg)

	Logger = newLogger(modules["output"], modules["format"], modules["time"], modules["level"])
}

func newLogger(output, format, timeFormat, level string) zerolog.Logger {
	var writer io.Writer = MemoryLog

	var file *os.File
	switch output {
	case "stderr":
		file = os.Stderr
	case "stdout":
		file = os.Stdout
	}

	if file != nil {
		if format == "json" {
			writer = zerolog.MultiLevelWriter(file, MemoryLog)
		} else {
			writer = zerolog.MultiLevelWriter(newConsole(file, format, timeFormat), MemoryLog)
		}
	}

	lvl, _ := zerolog.ParseLevel(level)
	logger := zerolog.New(writer).Level(lvl)

	if timeFormat != "" {
		zerolog.TimeFieldFormat = timeFormat
		logger = logger.With().Timestamp().Logger()
	}

	return logger
}

func newConsole(file *os.File, format, timeFormat string) *zerolog.ConsoleWriter {
	console := &zerolog.ConsoleWriter{Out: file}

	switch format {
	case "text":
		console.NoColor = true
	case "color":
	default:
		console.NoColor = !isatty.IsTerminal(file.Fd())
	}

	if timeFormat != "" {
		console.TimeFormat = "15:04:05.000"
	} else {
		console.PartsOrder = []string{
			zerolog.LevelFieldName,
			zerolog.MessageFieldName,
		}
	}

	return console
}

var Logger zerolog.Logger

// modules log levels
var modules = map[string]string{
	"format": "",
	"level":  "info",
	"output": "stderr",
	"time":   zerolog.TimeFormatUnixMs,
}

// DumpLog - save MemoryLog to the file from `log.dump` config, if any
func DumpLog() error {
	path := modules["dump"]
	if path == "" {
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if _, err = MemoryLog.WriteTo(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// ringLog keeps last size bytes of the log, oldest lines are dropped first
type ringLog struct {
	buf  []byte
	size int
	mu   sync.Mutex
}

func newRingLog(size int) *ringLog {
	return &ringLog{size: size}
}

func (r *ringLog) Write(p []byte) (int, error) {
	r.mu.Lock()

	r.buf = append(r.buf, p...)

	if over := len(r.buf) - r.size; over > 0 {
		// cut after the end of the line
		if i := bytes.IndexByte(r.buf[over-1:], '\n'); i >= 0 {
			over += i
		}
		r.buf = r.buf[over:]
	}

	r.mu.Unlock()

	return len(p), nil
}

func (r *ringLog) WriteTo(w io.Writer) (int64, error) {
	b := r.Bytes()
	n, err := w.Write(b)
	return int64(n), err
}

func (r *ringLog) Bytes() []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]byte(nil), r.buf...)
}

func (r *ringLog) Reset() {
	r.mu.Lock()
	r.buf = nil
	r.mu.Unlock()
}
