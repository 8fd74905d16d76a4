package pyx

import "fmt"

// renderErrorPage produces the fixed HTML error body: the numeric code
// and its canonical reason phrase, nothing application-specific.
func renderErrorPage(code int) []byte {
	reason := reasonPhrase(code)
	body := fmt.Sprintf(
		"<html><head><title>%d %s</title></head><body><h1>%d %s</h1></body></html>",
		code, reason, code, reason,
	)
	return s2b(body)
}
