package pyxio

import "fmt"

// IncompleteReadError is returned by ReadExactly when the underlying source
// runs out of data (or hits a multipart boundary) before the requested
// number of bytes could be produced.
type IncompleteReadError struct {
	Expected int
	Got      int
}

func (e *IncompleteReadError) Error() string {
	return fmt.Sprintf("pyxio: incomplete read: expected %d bytes, got %d", e.Expected, e.Got)
}
