package pyx

import "fmt"

// RootFactory produces the root resource for a single request. It is
// re-invoked per request (not shared), so the root can depend on
// request state such as a virtual path prefix.
type RootFactory func(req *Request) (Resource, error)

// ErrorHandler renders code/msg as a response to req over conn. The
// default implementation serves the fixed HTML error page.
type ErrorHandler func(conn *Connection, req *Request, code int, msg string) error

// RequestHandler resolves one parsed request against a root factory,
// the resource tree, and its dispatched handler, converting any error
// into a rendered HTTP error response unless a response has already
// started, in which case the error is logged and the connection closed.
type RequestHandler struct {
	rootFactory  RootFactory
	errorHandler ErrorHandler
	logger       Logger
}

// Option configures a RequestHandler.
type Option func(*RequestHandler)

// WithErrorHandler overrides the default error-page renderer.
func WithErrorHandler(h ErrorHandler) Option {
	return func(rh *RequestHandler) { rh.errorHandler = h }
}

// WithLogger overrides the logger used for unexpected-error reporting.
func WithLogger(l Logger) Option {
	return func(rh *RequestHandler) { rh.logger = l }
}

// NewRequestHandler builds a RequestHandler over the given root factory.
func NewRequestHandler(root RootFactory, opts ...Option) *RequestHandler {
	rh := &RequestHandler{
		rootFactory: root,
		logger:      defaultLogger,
	}
	rh.errorHandler = rh.defaultErrorHandler
	for _, opt := range opts {
		opt(rh)
	}
	return rh
}

// Handle resolves and invokes req, localizing every error from the root
// factory, traversal, and handler execution into an HTTP response. It is
// the sole catch-all the connection loop relies on: a parse failure
// never reaches here, only resolution/handler failures do.
func (rh *RequestHandler) Handle(conn *Connection, req *Request) error {
	err := rh.dispatch(conn, req)
	if err == nil {
		return nil
	}

	code, msg := classifyError(err)
	if req.Responded {
		rh.logger.Printf("pyx: error after response started: %v", err)
		return conn.Close()
	}
	if herr := rh.errorHandler(conn, req, code, msg); herr != nil {
		rh.logger.Printf("pyx: error handler failed: %v", herr)
		return conn.Close()
	}
	if code == StatusInternalServerError {
		return conn.Close()
	}
	return nil
}

func (rh *RequestHandler) dispatch(conn *Connection, req *Request) error {
	root, err := rh.rootFactory(req)
	if err != nil {
		return err
	}
	resource, err := Traverse(root, req.Path)
	if err != nil {
		return err
	}
	handler, err := resource.Dispatch(req.Method)
	if err != nil {
		return err
	}
	resp := NewResponse(conn, req)
	return handler(conn, req, resp)
}

// classifyError maps an error from resolution/dispatch into a status
// code and message. An *HTTPError passes through verbatim; a
// *BadRequestError maps to 400; anything else is an unexpected failure
// mapped to 500.
func classifyError(err error) (int, string) {
	if herr, ok := err.(*HTTPError); ok {
		return herr.Code, herr.Msg
	}
	if _, ok := err.(*BadRequestError); ok {
		return StatusBadRequest, err.Error()
	}
	return StatusInternalServerError, fmt.Sprintf("%v", err)
}

// defaultErrorHandler renders the fixed HTML error page.
func (rh *RequestHandler) defaultErrorHandler(conn *Connection, req *Request, code int, msg string) error {
	rh.logger.Printf("pyx: %d %s: %s", code, reasonPhrase(code), msg)

	body := renderErrorPage(code)
	resp := NewResponse(conn, req)
	resp.Code = code
	resp.SetContentLength(len(body))
	resp.AddHeader(hdrContentType, "text/html; charset=utf-8")
	if err := resp.Write(); err != nil {
		return err
	}
	return resp.SendBody(body)
}
