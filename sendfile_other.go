//go:build !linux

package pyx

import (
	"context"

	"github.com/yourusername/pyx/pyxio"
)

// sendfileAsync falls back to a plain copy loop on platforms without a
// zero-copy sendfile(2) equivalent wired up.
func sendfileAsync(ctx context.Context, conn *Connection, af *pyxio.AsyncFile, count int64) error {
	return sendfileCopy(ctx, conn, af, count)
}
