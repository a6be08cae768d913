// file: envx/parse.go
package envx

import (
	"strconv"
	"time"
)

// Value enumerates the types Parse understands. Each converts with its
// canonical textual rules: strconv for numbers and booleans (integers
// base 10, bit width checked), time.ParseDuration for durations,
// strings verbatim.
type Value interface {
	string | bool |
		int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64 |
		time.Duration
}

// Parsed looks up key and converts its value to T. Unset variables
// yield ErrNotSet, unconvertible values ErrParse; a parse failure is
// never silently defaulted.
func Parsed[T Value](key string) (T, error) {
	return ParsedFrom[T](System(), key)
}

// ParsedOr is Parsed with a fallback: unset or unparseable values yield
// def instead of an error.
func ParsedOr[T Value](key string, def T) T {
	return ParsedOrFrom(System(), key, def)
}

// ParsedFrom is Parsed against an explicit Source.
func ParsedFrom[T Value](src Source, key string) (T, error) {
	var zero T
	raw, ok := src.Lookup(key)
	if !ok {
		return zero, notSet(key)
	}
	v, err := Parse[T](raw)
	if err != nil {
		return zero, unparseable(key, raw)
	}
	return v, nil
}

// ParsedOrFrom is ParsedOr against an explicit Source.
func ParsedOrFrom[T Value](src Source, key string, def T) T {
	raw, ok := src.Lookup(key)
	if !ok {
		return def
	}
	v, err := Parse[T](raw)
	if err != nil {
		return def
	}
	return v
}

// Parse converts s to T. Unlike Bool, boolean parsing here is strict
// strconv.ParseBool: "yes" and "on" do not convert.
func Parse[T Value](s string) (T, error) {
	var v T
	var err error
	switch p := any(&v).(type) {
	case *string:
		*p = s
	case *bool:
		*p, err = strconv.ParseBool(s)
	case *int:
		*p, err = strconv.Atoi(s)
	case *int8:
		*p, err = parseInt[int8](s, 8)
	case *int16:
		*p, err = parseInt[int16](s, 16)
	case *int32:
		*p, err = parseInt[int32](s, 32)
	case *int64:
		*p, err = strconv.ParseInt(s, 10, 64)
	case *uint:
		var n uint64
		n, err = strconv.ParseUint(s, 10, strconv.IntSize)
		*p = uint(n)
	case *uint8:
		*p, err = parseUint[uint8](s, 8)
	case *uint16:
		*p, err = parseUint[uint16](s, 16)
	case *uint32:
		*p, err = parseUint[uint32](s, 32)
	case *uint64:
		*p, err = strconv.ParseUint(s, 10, 64)
	case *float32:
		var f float64
		f, err = strconv.ParseFloat(s, 32)
		*p = float32(f)
	case *float64:
		*p, err = strconv.ParseFloat(s, 64)
	case *time.Duration:
		*p, err = time.ParseDuration(s)
	}
	if err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

func parseInt[T int8 | int16 | int32](s string, bits int) (T, error) {
	n, err := strconv.ParseInt(s, 10, bits)
	return T(n), err
}

func parseUint[T uint8 | uint16 | uint32](s string, bits int) (T, error) {
	n, err := strconv.ParseUint(s, 10, bits)
	return T(n), err
}
