package pyx

import (
	"context"
	"io"

	"github.com/yourusername/pyx/pyxio"
)

// sendfileCopy is the portable fallback: read/write in AsyncFile's
// blocking-call-per-iteration style, checking ctx between blocks instead
// of relying on a zero-copy syscall.
func sendfileCopy(ctx context.Context, conn *Connection, af *pyxio.AsyncFile, count int64) error {
	remaining := count
	for remaining > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
		want := pyxio.DefaultBlockSize
		if int64(want) > remaining {
			want = int(remaining)
		}
		chunk, err := af.Read(ctx, want)
		if err != nil {
			return err
		}
		if len(chunk) == 0 {
			return io.ErrUnexpectedEOF
		}
		if _, err := conn.Write(chunk); err != nil {
			return err
		}
		remaining -= int64(len(chunk))
	}
	return conn.Flush()
}
