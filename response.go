package pyx

import (
	"github.com/valyala/bytebufferpool"
)

// Response is a status code plus an ordered header sequence, serialized
// against the protocol/version of the request it answers (or HTTP/1.1
// by default for a response with no originating request).
type Response struct {
	Message

	Code         int
	Protocol     string
	VersionMajor int
	VersionMinor int

	Request *Request
}

// NewResponse builds a response mirroring req's protocol/version (or
// defaulting to HTTP/1.1 when req is nil), pre-populated with a Server
// header identifying this implementation.
func NewResponse(conn *Connection, req *Request) *Response {
	resp := &Response{
		Message:      Message{conn: conn},
		Code:         StatusOK,
		Protocol:     "HTTP",
		VersionMajor: 1,
		VersionMinor: 1,
		Request:      req,
	}
	if req != nil {
		resp.Protocol = req.Protocol
		resp.VersionMajor = req.VersionMajor
		resp.VersionMinor = req.VersionMinor
	}
	resp.AddHeader("Server", defaultServerName)
	return resp
}

// Write serializes the status line and header block and flushes it to
// the connection. It marks the originating request (if any) as
// responded, matching the Python original's HttpResponse.send.
func (r *Response) Write() error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	buf.B = append(buf.B, r.Protocol...)
	buf.B = append(buf.B, '/')
	buf.B = appendUint(buf.B, r.VersionMajor)
	buf.B = append(buf.B, '.')
	buf.B = appendUint(buf.B, r.VersionMinor)
	buf.B = append(buf.B, ' ')
	buf.B = appendUint(buf.B, r.Code)
	buf.B = append(buf.B, ' ')
	buf.B = append(buf.B, reasonPhrase(r.Code)...)
	buf.B = append(buf.B, strCRLF...)

	for _, h := range r.headers {
		buf.B = append(buf.B, h.Key...)
		buf.B = append(buf.B, ':', ' ')
		buf.B = append(buf.B, h.Value...)
		buf.B = append(buf.B, strCRLF...)
	}
	buf.B = append(buf.B, strCRLF...)

	if _, err := r.conn.Write(buf.B); err != nil {
		return err
	}
	if err := r.conn.Flush(); err != nil {
		return err
	}
	if r.Request != nil {
		r.Request.Responded = true
	}
	return nil
}

// SendBody writes body bytes and flushes them to the connection. Callers
// are expected to have set Content-Length before calling Write.
func (r *Response) SendBody(data []byte) error {
	if _, err := r.conn.Write(data); err != nil {
		return err
	}
	return r.conn.Flush()
}

// SetContentLength is a convenience for the common case of a fully
// buffered body.
func (r *Response) SetContentLength(n int) {
	r.AddHeader(hdrContentLength, string(appendUint(nil, n)))
}
