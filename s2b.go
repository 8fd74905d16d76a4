package pyx

import "unsafe"

// s2b converts a string to a byte slice without allocating.
func s2b(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
