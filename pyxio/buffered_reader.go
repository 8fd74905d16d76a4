package pyxio

import "bytes"

// BufferedReader adds a pushback stack in front of a line-capable Source.
// It is the base of the reader stack: requests are parsed directly off
// one, and LengthReader/BoundaryReader both wrap one (or each other) to
// bound what a handler can read from a request body.
//
// A BufferedReader is not safe for concurrent use: the connection it backs
// is driven by a single goroutine at a time (see the Connection loop).
type BufferedReader struct {
	inner Source
	pb    pushback
}

// NewBufferedReader wraps inner with a pushback buffer.
func NewBufferedReader(inner Source) *BufferedReader {
	return &BufferedReader{inner: inner}
}

// Put pushes b onto the pushback stack; it will be the next bytes read.
func (r *BufferedReader) Put(b []byte) {
	r.pb.push(b)
}

// Read drains the pushback stack first (whole chunks, LIFO order), then
// falls through to the inner source for whatever is still needed.
func (r *BufferedReader) Read(n int) ([]byte, error) {
	if n == 0 {
		return nil, nil
	}
	if n < 0 {
		out := r.pb.take(-1)
		rest, err := r.inner.Read(-1)
		return append(out, rest...), err
	}
	out := r.pb.take(n)
	if len(out) >= n {
		return out, nil
	}
	rest, err := r.inner.Read(n - len(out))
	return append(out, rest...), err
}

// ReadLine flushes the pushback stack into one contiguous buffer and looks
// for '\n' in it. If found, the prefix up to and including '\n' is
// returned and the tail is re-pushed. Otherwise the flushed buffer is
// concatenated with a single ReadLine() from the inner source.
func (r *BufferedReader) ReadLine() ([]byte, error) {
	flushed := r.pb.take(-1)
	if i := bytes.IndexByte(flushed, '\n'); i >= 0 {
		line := flushed[:i+1]
		if tail := flushed[i+1:]; len(tail) > 0 {
			r.pb.push(tail)
		}
		return line, nil
	}
	line, err := r.inner.ReadLine()
	return append(flushed, line...), err
}

// ReadExactly drains up to n from the pushback stack; if short, the exact
// remainder is requested from the inner source.
func (r *BufferedReader) ReadExactly(n int) ([]byte, error) {
	out := r.pb.take(n)
	if len(out) >= n {
		return out, nil
	}
	rest, err := r.inner.ReadExactly(n - len(out))
	return append(out, rest...), err
}
