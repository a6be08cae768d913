// file: envx/env.go

// Package envx provides typed access to process environment variables:
// required and defaultable string reads, generic parsing into Go types,
// truthy-token booleans, separated lists and memory sizes. Accessors
// never log and never touch anything beyond the variables they are
// asked about; failures come back as error values carrying the variable
// name. Every accessor has a ...From variant reading an injectable
// Source, so tests can run against a Map instead of mutating the real
// environment.
package envx

import "strings"

// DefaultListSeparator splits list values when no separator is given.
const DefaultListSeparator = ","

// truthy is the fixed token set recognized by Bool and BoolOr,
// compared case-insensitively.
var truthy = map[string]bool{
	"true": true,
	"1":    true,
	"yes":  true,
	"on":   true,
}

// ----------------------------------------------------
// Process environment accessors
// ----------------------------------------------------

// Required returns the value of key, or an ErrNotSet error when the
// variable is unset. The value comes back byte-for-byte; a variable set
// to the empty string counts as set.
func Required(key string) (string, error) {
	return RequiredFrom(System(), key)
}

// GetOr returns the value of key, or def when the variable is unset.
func GetOr(key, def string) string {
	return GetOrFrom(System(), key, def)
}

// Bool reports whether key is set to a truthy token: "true", "1",
// "yes" or "on", in any case. Unset, empty and unrecognized values are
// all false.
func Bool(key string) bool {
	return BoolFrom(System(), key)
}

// BoolOr is Bool with a fallback for the unset case. A variable set to
// an unrecognized value is still false, regardless of def.
func BoolOr(key string, def bool) bool {
	return BoolOrFrom(System(), key, def)
}

// List splits the value of key on a separator (DefaultListSeparator
// unless a non-empty sep is given) and trims surrounding whitespace
// from each element. An unset variable yields an empty list; a variable
// set to the empty string yields a single empty element.
func List(key string, sep ...string) []string {
	return ListFrom(System(), key, sep...)
}

// ----------------------------------------------------
// Source-explicit accessors
// ----------------------------------------------------

// RequiredFrom is Required against an explicit Source.
func RequiredFrom(src Source, key string) (string, error) {
	v, ok := src.Lookup(key)
	if !ok {
		return "", notSet(key)
	}
	return v, nil
}

// GetOrFrom is GetOr against an explicit Source.
func GetOrFrom(src Source, key, def string) string {
	if v, ok := src.Lookup(key); ok {
		return v
	}
	return def
}

// BoolFrom is Bool against an explicit Source.
func BoolFrom(src Source, key string) bool {
	return BoolOrFrom(src, key, false)
}

// BoolOrFrom is BoolOr against an explicit Source.
func BoolOrFrom(src Source, key string, def bool) bool {
	v, ok := src.Lookup(key)
	if !ok {
		return def
	}
	return truthy[strings.ToLower(v)]
}

// ListFrom is List against an explicit Source.
func ListFrom(src Source, key string, sep ...string) []string {
	v, ok := src.Lookup(key)
	if !ok {
		return nil
	}
	s := DefaultListSeparator
	if len(sep) > 0 && sep[0] != "" {
		s = sep[0]
	}
	parts := strings.Split(v, s)
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
