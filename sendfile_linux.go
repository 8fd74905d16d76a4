//go:build linux

package pyx

import (
	"context"
	"io"
	"syscall"

	"golang.org/x/sys/unix"

	"github.com/yourusername/pyx/pyxio"
)

// sendfileAsync transfers count bytes from af's current file position to
// conn using the kernel's zero-copy sendfile(2), looping a partial
// transfer at a time and yielding to the connection's writability
// whenever the syscall would block — the suspend/resume contract from
// the design notes, expressed through syscall.RawConn.Write instead of
// an explicit readiness callback.
func sendfileAsync(ctx context.Context, conn *Connection, af *pyxio.AsyncFile, count int64) error {
	sc, ok := conn.raw.(syscall.Conn)
	if !ok {
		return sendfileCopy(ctx, conn, af, count)
	}
	rawConn, err := sc.SyscallConn()
	if err != nil {
		return sendfileCopy(ctx, conn, af, count)
	}

	srcFd := int(af.Fd())
	remaining := count

	for remaining > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}

		var opErr error
		writeErr := rawConn.Write(func(fd uintptr) bool {
			n, err := unix.Sendfile(int(fd), srcFd, nil, int(remaining))
			if n > 0 {
				remaining -= int64(n)
			}
			if err != nil {
				if err == unix.EAGAIN || err == unix.EINTR {
					return false
				}
				opErr = err
				return true
			}
			if n == 0 {
				opErr = io.ErrUnexpectedEOF
				return true
			}
			return remaining <= 0
		})
		if writeErr != nil {
			return writeErr
		}
		if opErr != nil {
			return opErr
		}
	}
	return nil
}
