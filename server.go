package pyx

import "net"

// Server accepts connections on a listener and drives each one through
// a ConnectionHandler, admission-controlled by a workerPool.
type Server struct {
	// RootFactory supplies the resource tree root for each request.
	RootFactory RootFactory
	// ErrorHandler overrides the default HTML error page, if non-nil.
	ErrorHandler ErrorHandler
	// Logger receives connection- and request-level diagnostics.
	Logger Logger
	// Concurrency bounds the number of connections served at once; 0
	// means unbounded.
	Concurrency int

	connHandler *ConnectionHandler
	pool        *workerPool
}

func (s *Server) init() {
	if s.Logger == nil {
		s.Logger = defaultLogger
	}
	var opts []Option
	if s.ErrorHandler != nil {
		opts = append(opts, WithErrorHandler(s.ErrorHandler))
	}
	opts = append(opts, WithLogger(s.Logger))
	rh := NewRequestHandler(s.RootFactory, opts...)
	s.connHandler = NewConnectionHandler(rh, s.Logger)

	s.pool = &workerPool{
		WorkerFunc: s.connHandler.Serve,
		MaxWorkers: s.Concurrency,
		Logger:     s.Logger,
	}
	s.pool.Start()
}

// Serve accepts connections from ln until it returns an error (e.g. on
// Close), handing each one to the worker pool.
func (s *Server) Serve(ln net.Listener) error {
	s.init()
	defer s.pool.Stop()

	for {
		conn, err := ln.Accept()
		if err != nil {
			return err
		}
		s.pool.Serve(conn, s.Logger)
	}
}
