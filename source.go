// file: envx/source.go
package envx

import "os"

var (
	_ Source = SourceFunc(nil)
	_ Source = Map(nil)
)

// Source is a read-only string key-value lookup. The process
// environment is the canonical Source; tests substitute a Map.
type Source interface {
	// Lookup returns the value for key and whether key is set.
	Lookup(key string) (string, bool)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(key string) (string, bool)

// Lookup calls f.
func (f SourceFunc) Lookup(key string) (string, bool) { return f(key) }

// Map is an in-memory Source, mainly for tests.
type Map map[string]string

// Lookup returns the mapped value for key.
func (m Map) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// System returns the Source backed by the process environment.
func System() Source {
	return SourceFunc(os.LookupEnv)
}

// Prefixed returns a Source that prepends prefix to every key before
// consulting src, so Prefixed(src, "APP_").Lookup("PORT") reads APP_PORT.
func Prefixed(src Source, prefix string) Source {
	return SourceFunc(func(key string) (string, bool) {
		return src.Lookup(prefix + key)
	})
}
