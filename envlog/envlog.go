// file: envx/envlog/envlog.go

// Package envlog assembles zerolog loggers from environment
// configuration read through envx. The accessors themselves never log;
// this package is the opt-in consumer that turns LOG_* variables into
// a ready logger with styled console output and rotating file outputs.
package envlog

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/rskv-p/envx"
)

// DefaultPrefix is prepended to key names when FromEnv gets "".
const DefaultPrefix = "LOG_"

// Output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config holds the logger settings readable from the environment.
type Config struct {
	Level          string   // debug, info, warn, error, ...
	Format         string   // console or json
	TimeFormat     string   // console timestamp layout
	Outputs        []string // stdout, stderr or file paths
	FileMaxSize    int64    // rotation threshold in bytes
	FileMaxBackups int      // rotated files to keep
	FileMaxAge     int      // days to keep rotated files
	FileCompress   bool     // gzip rotated files
	Color          bool     // colored console output on a terminal
}

// Default returns the settings used when the environment says nothing.
func Default() Config {
	return Config{
		Level:          "info",
		Format:         FormatConsole,
		TimeFormat:     "01-02 15:04:05",
		Outputs:        []string{"stdout"},
		FileMaxSize:    10 << 20,
		FileMaxBackups: 5,
		FileMaxAge:     7,
		FileCompress:   true,
		Color:          true,
	}
}

// FromEnv reads the configuration from the process environment. Keys
// are prefix+LEVEL, prefix+FORMAT, prefix+TIME_FORMAT, prefix+OUTPUTS
// (comma list), prefix+FILE_MAX_SIZE (memory size such as 10MB),
// prefix+FILE_MAX_BACKUPS, prefix+FILE_MAX_AGE (days) and
// prefix+FILE_COMPRESS / prefix+COLOR (truthy tokens). An empty prefix
// means DefaultPrefix. Unset or malformed values keep their defaults.
func FromEnv(prefix string) Config {
	return FromSource(envx.System(), prefix)
}

// FromSource is FromEnv against an explicit envx.Source.
func FromSource(src envx.Source, prefix string) Config {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	env := envx.Prefixed(src, prefix)

	cfg := Default()
	cfg.Level = envx.GetOrFrom(env, "LEVEL", cfg.Level)
	cfg.Format = envx.GetOrFrom(env, "FORMAT", cfg.Format)
	cfg.TimeFormat = envx.GetOrFrom(env, "TIME_FORMAT", cfg.TimeFormat)
	if outputs := envx.ListFrom(env, "OUTPUTS"); len(outputs) > 0 {
		cfg.Outputs = outputs
	}
	if size, err := envx.MemorySizeFrom(env, "FILE_MAX_SIZE"); err == nil {
		cfg.FileMaxSize = size
	}
	cfg.FileMaxBackups = envx.ParsedOrFrom(env, "FILE_MAX_BACKUPS", cfg.FileMaxBackups)
	cfg.FileMaxAge = envx.ParsedOrFrom(env, "FILE_MAX_AGE", cfg.FileMaxAge)
	cfg.FileCompress = envx.BoolOrFrom(env, "FILE_COMPRESS", cfg.FileCompress)
	cfg.Color = envx.BoolOrFrom(env, "COLOR", cfg.Color)
	return cfg
}

// ----------------------------------------------------
// Logger construction
// ----------------------------------------------------

// New builds a logger writing to every configured output: stdout and
// stderr stream through the console or JSON format, anything else is a
// file path behind size-based rotation. File outputs always carry
// JSON; the console format applies to terminal streams only.
func New(cfg Config) (zerolog.Logger, error) {
	lvl, err := parseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), err
	}
	if !knownFormat(cfg.Format) {
		return zerolog.Nop(), fmt.Errorf("unknown log format %q", cfg.Format)
	}

	ws := make([]io.Writer, 0, len(cfg.Outputs))
	for _, out := range cfg.Outputs {
		switch out {
		case "":
			continue
		case "stdout":
			ws = append(ws, stream(cfg, os.Stdout))
		case "stderr":
			ws = append(ws, stream(cfg, os.Stderr))
		default:
			ws = append(ws, rotated(cfg, out))
		}
	}
	if len(ws) == 0 {
		ws = append(ws, stream(cfg, os.Stdout))
	}

	return zerolog.New(zerolog.MultiLevelWriter(ws...)).Level(lvl).With().Timestamp().Logger(), nil
}

// NewWithOutput builds a logger against a caller-supplied writer,
// applying the same level and format rules as New.
func NewWithOutput(cfg Config, w io.Writer) (zerolog.Logger, error) {
	lvl, err := parseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), err
	}
	switch {
	case strings.EqualFold(cfg.Format, FormatConsole):
		if cfg.Color {
			w = styledConsole(w, cfg.TimeFormat)
		} else {
			w = zerolog.ConsoleWriter{Out: w, TimeFormat: cfg.TimeFormat, NoColor: true}
		}
	case strings.EqualFold(cfg.Format, FormatJSON):
	default:
		return zerolog.Nop(), fmt.Errorf("unknown log format %q", cfg.Format)
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}

// stream wraps a terminal stream, styling console output only when the
// stream really is a terminal.
func stream(cfg Config, f *os.File) io.Writer {
	if !strings.EqualFold(cfg.Format, FormatConsole) {
		return f
	}
	if cfg.Color && isatty.IsTerminal(f.Fd()) {
		return styledConsole(f, cfg.TimeFormat)
	}
	return zerolog.ConsoleWriter{Out: f, TimeFormat: cfg.TimeFormat, NoColor: true}
}

// rotated wraps a file path in a size-based rotating writer.
func rotated(cfg Config, path string) io.Writer {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    megabytes(cfg.FileMaxSize),
		MaxBackups: cfg.FileMaxBackups,
		MaxAge:     cfg.FileMaxAge,
		Compress:   cfg.FileCompress,
	}
}

// megabytes converts a byte count to whole megabytes, rounding up so a
// sub-megabyte threshold still rotates.
func megabytes(n int64) int {
	mb := (n + (1 << 20) - 1) >> 20
	if mb < 1 {
		return 1
	}
	return int(mb)
}

// parseLevel maps a level name to zerolog; empty means info.
func parseLevel(s string) (zerolog.Level, error) {
	if s == "" {
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(s))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("unknown log level %q", s)
	}
	return lvl, nil
}

func knownFormat(f string) bool {
	return strings.EqualFold(f, FormatConsole) || strings.EqualFold(f, FormatJSON)
}
