package pyxio

import (
	"context"
	"io"
	"os"
)

// DefaultBlockSize is the chunk size AsyncFile reads in while
// draining an unbounded Read(-1) or serving a Read(n) that would otherwise
// require a single huge syscall.
const DefaultBlockSize = 8192

// AsyncFile wraps a local file for non-blocking-style reads and writes.
// There is no separate "blocked" state to manage explicitly the way the
// original asyncio implementation needed: each Read/Write loop iteration
// is a plain blocking *os.File call, and the calling goroutine is what
// yields to the rest of the program while that call is in flight — the
// same suspend/resume shape the spec describes, provided for free by the
// Go scheduler instead of hand-rolled fd-readiness callbacks.
//
// Passing a ctx whose Done channel fires between iterations causes the
// read or write loop to stop and return ctx.Err(), mirroring task
// cancellation deregistering any pending fd interest.
type AsyncFile struct {
	f *os.File
}

// OpenAsyncFile opens name for reading in binary mode. There is no text
// mode in Go's os.File, so unlike the Python original there is nothing to
// reject here — binary is the only mode that exists.
func OpenAsyncFile(name string) (*AsyncFile, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	return &AsyncFile{f: f}, nil
}

// NewAsyncFile adopts an already-open *os.File.
func NewAsyncFile(f *os.File) *AsyncFile {
	return &AsyncFile{f: f}
}

// File exposes the underlying *os.File, e.g. for sendfileAsync.
func (af *AsyncFile) File() *os.File {
	return af.f
}

// Read returns up to n bytes, buffering in DefaultBlockSize chunks. n<0
// reads until EOF. Fewer than n bytes are returned only at EOF.
func (af *AsyncFile) Read(ctx context.Context, n int) ([]byte, error) {
	if n == 0 {
		return nil, nil
	}

	block := DefaultBlockSize
	if n > 0 && n < block {
		block = n
	}

	var buf []byte
	for {
		if err := ctx.Err(); err != nil {
			return buf, err
		}

		chunk := make([]byte, block)
		nr, err := af.f.Read(chunk)
		if nr > 0 {
			buf = append(buf, chunk[:nr]...)
		}
		if err != nil {
			if err == io.EOF {
				return buf, nil
			}
			return buf, err
		}

		if n > 0 {
			if len(buf) >= n {
				return buf[:n], nil
			}
			if remaining := n - len(buf); remaining < block {
				block = remaining
			}
		}
	}
}

// Write writes all of data, looping over partial writes.
func (af *AsyncFile) Write(ctx context.Context, data []byte) (int, error) {
	written := 0
	for written < len(data) {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		n, err := af.f.Write(data[written:])
		written += n
		if err != nil {
			return written, err
		}
	}
	return written, nil
}

func (af *AsyncFile) Seek(offset int64, whence int) (int64, error) {
	return af.f.Seek(offset, whence)
}

func (af *AsyncFile) Tell() (int64, error) {
	return af.f.Seek(0, io.SeekCurrent)
}

func (af *AsyncFile) Stat() (os.FileInfo, error) {
	return af.f.Stat()
}

func (af *AsyncFile) Fd() uintptr {
	return af.f.Fd()
}

// Close releases the file handle. There are no registered fd interests to
// deregister explicitly in this implementation — Read/Write never leave
// one pending across a Close, since each iteration is a single blocking
// call that either completes or returns control via ctx cancellation.
func (af *AsyncFile) Close() error {
	return af.f.Close()
}
