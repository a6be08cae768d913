package envlog_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rskv-p/envx"
	"github.com/rskv-p/envx/envlog"
)

//---------------------
// Config
//---------------------

func TestDefault(t *testing.T) {
	cfg := envlog.Default()
	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, envlog.FormatConsole, cfg.Format)
	assert.Equal(t, []string{"stdout"}, cfg.Outputs)
	assert.Equal(t, int64(10<<20), cfg.FileMaxSize)
}

func TestFromSource(t *testing.T) {
	src := envx.Map{
		"LOG_LEVEL":            "debug",
		"LOG_FORMAT":           "json",
		"LOG_OUTPUTS":          "stdout, /var/log/app.log",
		"LOG_FILE_MAX_SIZE":    "5MB",
		"LOG_FILE_MAX_BACKUPS": "3",
		"LOG_FILE_MAX_AGE":     "14",
		"LOG_FILE_COMPRESS":    "no",
		"LOG_COLOR":            "off",
	}

	cfg := envlog.FromSource(src, "")
	assert.Equal(t, "debug", cfg.Level)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, []string{"stdout", "/var/log/app.log"}, cfg.Outputs)
	assert.Equal(t, int64(5<<20), cfg.FileMaxSize)
	assert.Equal(t, 3, cfg.FileMaxBackups)
	assert.Equal(t, 14, cfg.FileMaxAge)
	assert.False(t, cfg.FileCompress)
	assert.False(t, cfg.Color)
}

func TestFromSourceDefaults(t *testing.T) {
	cfg := envlog.FromSource(envx.Map{}, "")
	assert.Equal(t, envlog.Default(), cfg)

	// malformed values keep their defaults
	cfg = envlog.FromSource(envx.Map{
		"LOG_FILE_MAX_SIZE":    "huge",
		"LOG_FILE_MAX_BACKUPS": "many",
	}, "")
	assert.Equal(t, envlog.Default(), cfg)
}

func TestFromSourcePrefix(t *testing.T) {
	src := envx.Map{"MYAPP_LEVEL": "warn"}
	cfg := envlog.FromSource(src, "MYAPP_")
	assert.Equal(t, "warn", cfg.Level)
}

func TestFromEnv(t *testing.T) {
	_ = os.Setenv("LOG_LEVEL", "error")
	cfg := envlog.FromEnv("")
	assert.Equal(t, "error", cfg.Level)

	_ = os.Unsetenv("LOG_LEVEL")
	cfg = envlog.FromEnv("")
	assert.Equal(t, "info", cfg.Level)
}

//---------------------
// Logger construction
//---------------------

func TestNewWithOutputJSON(t *testing.T) {
	cfg := envlog.Default()
	cfg.Format = envlog.FormatJSON

	var buf bytes.Buffer
	log, err := envlog.NewWithOutput(cfg, &buf)
	require.NoError(t, err)

	log.Info().Str("step", "boot").Msg("started")
	out := buf.String()
	assert.Contains(t, out, `"level":"info"`)
	assert.Contains(t, out, `"step":"boot"`)
	assert.Contains(t, out, `"message":"started"`)
}

func TestNewWithOutputLevelFilter(t *testing.T) {
	cfg := envlog.Default()
	cfg.Format = envlog.FormatJSON
	cfg.Level = "warn"

	var buf bytes.Buffer
	log, err := envlog.NewWithOutput(cfg, &buf)
	require.NoError(t, err)

	log.Info().Msg("quiet")
	assert.Empty(t, buf.String())

	log.Warn().Msg("loud")
	assert.Contains(t, buf.String(), "loud")
}

func TestNewWithOutputConsole(t *testing.T) {
	cfg := envlog.Default()
	cfg.Color = false

	var buf bytes.Buffer
	log, err := envlog.NewWithOutput(cfg, &buf)
	require.NoError(t, err)

	log.Info().Str("module", "envlog").Msg("hello")
	out := buf.String()
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "module")
}

func TestNewWithOutputStyled(t *testing.T) {
	cfg := envlog.Default()

	var buf bytes.Buffer
	log, err := envlog.NewWithOutput(cfg, &buf)
	require.NoError(t, err)

	log.Info().Msg("styled")
	assert.Contains(t, buf.String(), "styled")
}

func TestNewWithOutputRejects(t *testing.T) {
	cfg := envlog.Default()
	cfg.Level = "shout"
	_, err := envlog.NewWithOutput(cfg, &bytes.Buffer{})
	assert.ErrorContains(t, err, "unknown log level")

	cfg = envlog.Default()
	cfg.Format = "xml"
	_, err = envlog.NewWithOutput(cfg, &bytes.Buffer{})
	assert.ErrorContains(t, err, "unknown log format")
}

func TestNewFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	cfg := envlog.Default()
	cfg.Outputs = []string{path}

	log, err := envlog.New(cfg)
	require.NoError(t, err)

	log.Info().Str("file", path).Msg("rotated output")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "rotated output")
	assert.Contains(t, string(data), `"level":"info"`)
}

func TestNewRejects(t *testing.T) {
	cfg := envlog.Default()
	cfg.Level = "loudest"
	_, err := envlog.New(cfg)
	assert.ErrorContains(t, err, "unknown log level")

	cfg = envlog.Default()
	cfg.Format = "xml"
	_, err = envlog.New(cfg)
	assert.ErrorContains(t, err, "unknown log format")
}
