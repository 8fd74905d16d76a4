package pyx

import (
	"errors"
	"strconv"
)

var (
	errEmptyInt            = errors.New("empty integer")
	errUnexpectedFirstChar = errors.New("unexpected first char found, expecting 0-9")
	errTrailingChar        = errors.New("unexpected trailing char found, expecting 0-9")
)

// parseUint parses a base-10, non-negative integer out of s, same
// strictness as the teacher's ParseUint: every byte must be a digit.
func parseUint(s string) (int, error) {
	if len(s) == 0 {
		return -1, errEmptyInt
	}
	v := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			if i == 0 {
				return -1, errUnexpectedFirstChar
			}
			return -1, errTrailingChar
		}
		v = v*10 + int(c-'0')
	}
	return v, nil
}

// appendUint appends n in base 10 to dst.
func appendUint(dst []byte, n int) []byte {
	return strconv.AppendInt(dst, int64(n), 10)
}
