package pyx

import (
	"strings"

	"github.com/yourusername/pyx/pyxio"
)

// Request is a parsed HTTP request line plus headers.
type Request struct {
	Message

	Method   string
	Path     string
	Query    string
	HasQuery bool

	Protocol     string
	VersionMajor int
	VersionMinor int

	Responded bool

	bodyReader      *pyxio.LengthReader
	multipartReader *pyxio.BoundaryReader
}

// parseRequest reads one request line and its header block from conn's
// reader. A malformed request line is fatal (*BadRequestError); a
// malformed header line is logged and skipped, parsing continues.
func parseRequest(conn *Connection) (*Request, error) {
	raw, err := conn.readLine()
	if err != nil {
		return nil, err
	}
	line := strings.TrimSpace(b2s(raw))
	if line == "" {
		return nil, &BadRequestError{Reason: "empty request line"}
	}

	tokens := strings.Split(line, " ")
	if len(tokens) != 3 {
		return nil, &BadRequestError{Reason: "request line must have exactly 3 tokens"}
	}

	req := &Request{Message: Message{conn: conn}}
	req.Method = strings.ToUpper(tokens[0])

	target := tokens[1]
	if idx := strings.IndexByte(target, '?'); idx >= 0 {
		req.Path = target[:idx]
		req.Query = target[idx+1:]
		req.HasQuery = true
	} else {
		req.Path = target
	}

	if err := req.parseProtocolToken(tokens[2]); err != nil {
		return nil, err
	}

	if err := req.parseHeaders(); err != nil {
		return nil, err
	}

	return req, nil
}

// parseProtocolToken splits the third request-line token on its first
// "/" into protocol and version. Per the resolved Open Question, a
// token with no "/" is a bad request rather than a silent (1,1) default.
func (r *Request) parseProtocolToken(tok string) error {
	idx := strings.IndexByte(tok, '/')
	if idx < 0 {
		return &BadRequestError{Reason: "protocol token missing '/'"}
	}
	r.Protocol = strings.ToUpper(tok[:idx])

	versionStr := tok[idx+1:]
	major, minor := 1, 1
	if dot := strings.IndexByte(versionStr, '.'); dot >= 0 {
		majorVal, err := parseUint(versionStr[:dot])
		if err != nil {
			return &BadRequestError{Reason: "malformed version major"}
		}
		minorVal, err := parseUint(versionStr[dot+1:])
		if err != nil {
			return &BadRequestError{Reason: "malformed version minor"}
		}
		major, minor = majorVal, minorVal
	} else {
		majorVal, err := parseUint(versionStr)
		if err != nil {
			return &BadRequestError{Reason: "malformed version"}
		}
		major, minor = majorVal, 0
	}
	r.VersionMajor = major
	r.VersionMinor = minor
	return nil
}

// parseHeaders reads header lines until a blank line or a zero-length
// read (client disconnect). A malformed line is logged and skipped.
func (r *Request) parseHeaders() error {
	for {
		raw, err := r.conn.readLine()
		if err != nil {
			return err
		}
		if len(raw) == 0 {
			return nil
		}
		line := strings.TrimRight(b2s(raw), "\r\n")
		if line == "" {
			return nil
		}

		idx := strings.IndexByte(line, ':')
		if idx < 1 {
			r.conn.logBadHeader(&BadHeaderError{Line: line})
			continue
		}
		key := strings.TrimSpace(line[:idx])
		value := strings.TrimSpace(line[idx+1:])
		if key == "" {
			r.conn.logBadHeader(&BadHeaderError{Line: line})
			continue
		}
		r.AddHeader(key, value)
	}
}

// ContentLength parses the Content-Length header, if present. A missing
// or malformed header reports ok=false.
func (r *Request) ContentLength() (n int, ok bool) {
	v, present := r.GetFirstHeader(hdrContentLength)
	if !present {
		return 0, false
	}
	n, err := parseUint(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

// BodyReader returns the request body as a LengthReader bounded to
// Content-Length bytes, wrapping the connection's shared BufferedReader.
// ok is false when there is no (valid) Content-Length, i.e. no body to
// read. The reader is built once and cached: repeated calls return the
// same LengthReader, so its remaining-byte budget is shared across
// callers the way spec.md's single-task-at-a-time model assumes.
func (r *Request) BodyReader() (*pyxio.LengthReader, bool) {
	if r.bodyReader != nil {
		return r.bodyReader, true
	}
	n, ok := r.ContentLength()
	if !ok {
		return nil, false
	}
	r.bodyReader = pyxio.NewLengthReader(r.conn.Reader(), n)
	return r.bodyReader, true
}

// multipartBoundary extracts the boundary parameter from a
// "multipart/form-data; boundary=..." Content-Type header.
func (r *Request) multipartBoundary() (string, bool) {
	ct, ok := r.GetFirstHeader(hdrContentType)
	if !ok {
		return "", false
	}
	parts := strings.Split(ct, ";")
	if !strings.EqualFold(strings.TrimSpace(parts[0]), "multipart/form-data") {
		return "", false
	}
	for _, p := range parts[1:] {
		p = strings.TrimSpace(p)
		if v, found := strings.CutPrefix(p, "boundary="); found {
			return strings.Trim(v, `"`), true
		}
	}
	return "", false
}

// MultipartReader returns a BoundaryReader over the request body, reading
// up to the multipart boundary declared in Content-Type. ok is false when
// the request has no Content-Length body or isn't multipart/form-data.
// The reader is cached the same way BodyReader is.
func (r *Request) MultipartReader() (*pyxio.BoundaryReader, bool) {
	if r.multipartReader != nil {
		return r.multipartReader, true
	}
	boundary, ok := r.multipartBoundary()
	if !ok {
		return nil, false
	}
	body, ok := r.BodyReader()
	if !ok {
		return nil, false
	}
	r.multipartReader = pyxio.NewBoundaryReader(body, s2b(boundary))
	return r.multipartReader, true
}
