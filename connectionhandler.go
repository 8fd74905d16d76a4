package pyx

import "strings"

// ConnectionHandler drives the request/response loop for one accepted
// connection: parse, dispatch, keep-alive decision, repeat or close.
type ConnectionHandler struct {
	requestHandler *RequestHandler
	logger         Logger
}

// NewConnectionHandler builds a handler that serves requests through rh.
func NewConnectionHandler(rh *RequestHandler, logger Logger) *ConnectionHandler {
	if logger == nil {
		logger = defaultLogger
	}
	return &ConnectionHandler{requestHandler: rh, logger: logger}
}

// Serve runs the loop to completion, always leaving conn closed on
// return.
func (ch *ConnectionHandler) Serve(conn *Connection) {
	defer conn.Close()

	for !conn.Closed() {
		req, err := parseRequest(conn)
		if err != nil {
			ch.logger.Printf("pyx: %v", err)
			return
		}

		if err := ch.requestHandler.Handle(conn, req); err != nil {
			ch.logger.Printf("pyx: request handling failed: %v", err)
			return
		}
		if conn.Closed() {
			return
		}

		if err := ch.drainBody(req); err != nil {
			ch.logger.Printf("pyx: draining request body: %v", err)
			return
		}

		if !ch.keepAlive(req) {
			return
		}
	}
}

// drainBody consumes any request body bytes the handler left unread, so
// a keep-alive connection's next readLine starts at the next request
// line instead of mid-body. A multipart body is first read through its
// BoundaryReader up to the boundary; whatever is left of any body with a
// Content-Length is then drained through the LengthReader directly.
func (ch *ConnectionHandler) drainBody(req *Request) error {
	if mr, ok := req.MultipartReader(); ok {
		for {
			b, err := mr.Read(-1)
			if err != nil {
				return err
			}
			if len(b) == 0 {
				break
			}
		}
	}
	if br, ok := req.BodyReader(); ok {
		for br.Remaining() > 0 {
			b, err := br.Read(-1)
			if err != nil {
				return err
			}
			if len(b) == 0 {
				return nil
			}
		}
	}
	return nil
}

// keepAlive implements the §4.8 decision: HTTP/1.0 (or older) always
// closes; HTTP/1.1+ reuses the socket unless Connection names anything
// other than keep-alive.
func (ch *ConnectionHandler) keepAlive(req *Request) bool {
	if req.VersionMajor < 1 || (req.VersionMajor == 1 && req.VersionMinor < 1) {
		return false
	}
	value, ok := req.GetFirstHeader(hdrConnection)
	if !ok {
		return true
	}
	return strings.EqualFold(value, connKeepAlive)
}
