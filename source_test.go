package envx_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rskv-p/envx"
)

func TestMap(t *testing.T) {
	src := envx.Map{"A": "1", "EMPTY": ""}

	v, ok := src.Lookup("A")
	assert.True(t, ok)
	assert.Equal(t, "1", v)

	v, ok = src.Lookup("EMPTY")
	assert.True(t, ok)
	assert.Equal(t, "", v)

	_, ok = src.Lookup("B")
	assert.False(t, ok)
}

func TestSourceFunc(t *testing.T) {
	src := envx.SourceFunc(func(key string) (string, bool) {
		if key == "ONLY" {
			return "value", true
		}
		return "", false
	})

	v, ok := src.Lookup("ONLY")
	assert.True(t, ok)
	assert.Equal(t, "value", v)

	_, ok = src.Lookup("OTHER")
	assert.False(t, ok)
}

func TestSystem(t *testing.T) {
	_ = os.Setenv("ENVX_SYS", "live")
	v, ok := envx.System().Lookup("ENVX_SYS")
	assert.True(t, ok)
	assert.Equal(t, "live", v)

	_ = os.Unsetenv("ENVX_SYS")
	_, ok = envx.System().Lookup("ENVX_SYS")
	assert.False(t, ok)
}

func TestPrefixed(t *testing.T) {
	src := envx.Prefixed(envx.Map{"APP_PORT": "8080"}, "APP_")

	v, ok := src.Lookup("PORT")
	assert.True(t, ok)
	assert.Equal(t, "8080", v)

	_, ok = src.Lookup("APP_PORT") // looked up as APP_APP_PORT
	assert.False(t, ok)

	port, err := envx.ParsedFrom[uint16](src, "PORT")
	require.NoError(t, err)
	assert.Equal(t, uint16(8080), port)
}
