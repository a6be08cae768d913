// file: envx/expand.go
package envx

import "os"

// Expand substitutes ${VAR} and $VAR references in s with values from
// the process environment. References to unset variables expand to the
// empty string.
func Expand(s string) string {
	return ExpandFrom(System(), s)
}

// ExpandFrom is Expand against an explicit Source.
func ExpandFrom(src Source, s string) string {
	return os.Expand(s, func(key string) string {
		v, _ := src.Lookup(key)
		return v
	})
}
