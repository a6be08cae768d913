// file: envx/size.go
package envx

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Binary multipliers recognized by ParseMemorySize.
const (
	kilobyte = int64(1) << 10
	megabyte = int64(1) << 20
	gigabyte = int64(1) << 30
)

// MemorySize looks up key and parses its value as a memory size.
// Unset variables yield ErrNotSet, malformed sizes ErrParse.
func MemorySize(key string) (int64, error) {
	return MemorySizeFrom(System(), key)
}

// MemorySizeFrom is MemorySize against an explicit Source.
func MemorySizeFrom(src Source, key string) (int64, error) {
	raw, err := RequiredFrom(src, key)
	if err != nil {
		return 0, err
	}
	n, err := ParseMemorySize(raw)
	if err != nil {
		return 0, unparseable(key, raw)
	}
	return n, nil
}

// ParseMemorySize converts strings like "512KB", "10MB" or "1GB" to a
// byte count; a bare number such as "4096" is already bytes. Suffixes
// are case-insensitive binary multiples (1024-based). Malformed input,
// negative numbers and sizes past int64 all yield errors matching
// ErrParse.
func ParseMemorySize(s string) (int64, error) {
	in := strings.ToUpper(strings.TrimSpace(s))

	num, multiplier := in, int64(1)
	switch {
	case strings.HasSuffix(in, "KB"):
		num, multiplier = in[:len(in)-2], kilobyte
	case strings.HasSuffix(in, "MB"):
		num, multiplier = in[:len(in)-2], megabyte
	case strings.HasSuffix(in, "GB"):
		num, multiplier = in[:len(in)-2], gigabyte
	}

	n, err := strconv.ParseUint(num, 10, 63)
	if err != nil {
		return 0, fmt.Errorf("memory size %q: %w", s, ErrParse)
	}
	if n > math.MaxInt64/uint64(multiplier) {
		return 0, fmt.Errorf("memory size %q: too large: %w", s, ErrParse)
	}
	return int64(n) * multiplier, nil
}
