package pyx

import "unsafe"

// b2s converts a byte slice to a string without allocating, the same
// trick the teacher corpus leans on throughout its header and URI code.
func b2s(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}
