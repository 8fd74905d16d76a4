package pyx

import "fmt"

// Status codes this server knows how to frame a response for. Reaching
// for a code outside this table is a programming error, not a runtime
// one — the set is fixed by the wire-format contract in spec §4.7.
const (
	StatusOK                  = 200
	StatusSeeOther            = 303
	StatusBadRequest          = 400
	StatusNotFound            = 404
	StatusInternalServerError = 500
	StatusNotImplemented      = 501
)

var statusReasons = map[int]string{
	StatusOK:                  "OK",
	StatusSeeOther:            "See Other",
	StatusBadRequest:          "Bad Request",
	StatusNotFound:            "Not Found",
	StatusInternalServerError: "Internal Error",
	StatusNotImplemented:      "Not Implemented",
}

// reasonPhrase returns the canonical reason phrase for code. It panics on
// an unsupported code: callers must only ever construct responses with
// codes from the table above.
func reasonPhrase(code int) string {
	r, ok := statusReasons[code]
	if !ok {
		panic(fmt.Sprintf("pyx: unsupported status code %d", code))
	}
	return r
}
