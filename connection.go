package pyx

import (
	"bufio"
	"io"
	"net"

	"github.com/yourusername/pyx/pyxio"
)

// netSource adapts a buffered net.Conn into the pyxio.Source interface
// the reader stack is built on.
type netSource struct {
	br *bufio.Reader
}

func (s *netSource) Read(n int) ([]byte, error) {
	if n == 0 {
		return nil, nil
	}
	if n < 0 {
		return io.ReadAll(s.br)
	}
	buf := make([]byte, n)
	got, err := io.ReadFull(s.br, buf)
	if err == io.ErrUnexpectedEOF || err == io.EOF {
		return buf[:got], nil
	}
	if err != nil {
		return buf[:got], err
	}
	return buf, nil
}

func (s *netSource) ReadLine() ([]byte, error) {
	line, err := s.br.ReadBytes('\n')
	if err == io.EOF {
		return line, nil
	}
	return line, err
}

func (s *netSource) ReadExactly(n int) ([]byte, error) {
	buf := make([]byte, n)
	got, err := io.ReadFull(s.br, buf)
	if err == io.ErrUnexpectedEOF || err == io.EOF {
		return buf[:got], &pyxio.IncompleteReadError{Expected: n, Got: got}
	}
	if err != nil {
		return buf[:got], err
	}
	return buf, nil
}

// Connection wraps one accepted socket: a pushback-buffered reader and a
// buffered writer, plus the closed flag the connection loop consults.
type Connection struct {
	raw    net.Conn
	reader *pyxio.BufferedReader
	writer *bufio.Writer
	logger Logger
	closed bool
}

func newConnection(raw net.Conn, logger Logger) *Connection {
	if logger == nil {
		logger = defaultLogger
	}
	return &Connection{
		raw:    raw,
		reader: pyxio.NewBufferedReader(&netSource{br: bufio.NewReader(raw)}),
		writer: bufio.NewWriter(raw),
		logger: logger,
	}
}

func (c *Connection) readLine() ([]byte, error) {
	return c.reader.ReadLine()
}

// Reader exposes the connection's pushback-buffered reader so request
// bodies and multipart parts can be read through the same reader stack
// request-line/header parsing uses — LengthReader and BoundaryReader
// both wrap it (see Request.BodyReader / Request.MultipartReader).
func (c *Connection) Reader() *pyxio.BufferedReader {
	return c.reader
}

func (c *Connection) logBadHeader(err *BadHeaderError) {
	c.logger.Printf("pyx: skipping header line: %v", err)
}

// Write implements io.Writer against the connection's buffered writer.
func (c *Connection) Write(p []byte) (int, error) {
	return c.writer.Write(p)
}

// Flush pushes any buffered output to the underlying socket.
func (c *Connection) Flush() error {
	return c.writer.Flush()
}

// Closed reports whether Close has already run.
func (c *Connection) Closed() bool {
	return c.closed
}

// Close is idempotent: later calls after the first are no-ops.
func (c *Connection) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	return c.raw.Close()
}

// RemoteAddr reports the peer address, used only for logging.
func (c *Connection) RemoteAddr() net.Addr {
	return c.raw.RemoteAddr()
}
