package pyx

import "fmt"

// BadRequestError reports a malformed request line, or a path segment
// whose percent-encoding cannot be decoded. A request-line failure is
// logged and the connection is closed without a response; one returned
// during resource traversal is rendered as a 400 error page.
type BadRequestError struct {
	Reason string
}

func (e *BadRequestError) Error() string {
	return fmt.Sprintf("pyx: bad request: %s", e.Reason)
}

// BadHeaderError reports a header line with no ':' after its first byte,
// or whose key is blank once whitespace is trimmed.
type BadHeaderError struct {
	Line string
}

func (e *BadHeaderError) Error() string {
	return fmt.Sprintf("pyx: bad header line: %q", e.Line)
}

// HTTPError is an explicit status/message pair a handler can return to
// have RequestHandler frame a specific error response instead of
// the generic 500 page.
type HTTPError struct {
	Code int
	Msg  string
}

func NewHTTPError(code int, msg string) *HTTPError {
	return &HTTPError{Code: code, Msg: msg}
}

func (e *HTTPError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("pyx: http error %d", e.Code)
	}
	return fmt.Sprintf("pyx: http error %d: %s", e.Code, e.Msg)
}
