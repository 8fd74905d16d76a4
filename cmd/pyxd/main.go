// Command pyxd serves a directory tree over plain HTTP/1.x.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"os"

	"github.com/valyala/tcplisten"

	"github.com/yourusername/pyx"
)

var logLevels = map[string]int{
	"debug":    0,
	"info":     1,
	"warning":  2,
	"error":    3,
	"fatal":    4,
	"critical": 5,
}

// levelLogger passes every pyx.Logger.Printf call through unfiltered,
// since pyx itself only ever logs at a single implicit level; the
// threshold only filters the few diagnostic lines this command prints
// directly through logAt.
type levelLogger struct {
	inner     *log.Logger
	threshold int
}

func (l *levelLogger) Printf(format string, args ...interface{}) {
	l.inner.Printf(format, args...)
}

func (l *levelLogger) logAt(level string, format string, args ...interface{}) {
	if logLevels[level] < l.threshold {
		return
	}
	l.inner.Printf(format, args...)
}

func main() {
	root := flag.String("root", ".", "directory to serve")
	bind := flag.String("bind", "", "address to bind (default all interfaces)")
	port := flag.Int("port", 8000, "port to listen on")
	backlog := flag.Int("backlog", 128, "listen backlog")
	loglevel := flag.String("loglevel", "info", "one of critical|fatal|error|warning|info|debug")
	flag.Parse()

	threshold, ok := logLevels[*loglevel]
	if !ok {
		fmt.Fprintf(os.Stderr, "pyxd: unknown loglevel %q\n", *loglevel)
		os.Exit(1)
	}
	logger := &levelLogger{inner: log.New(os.Stderr, "pyxd: ", log.LstdFlags), threshold: threshold}

	cfg := tcplisten.Config{Backlog: *backlog}
	addr := fmt.Sprintf("%s:%d", *bind, *port)
	ln, err := cfg.NewListener("tcp4", addr)
	if err != nil {
		logger.logAt("fatal", "bind failed on %s: %v", addr, err)
		os.Exit(1)
	}

	staticRoot := pyx.NewStaticRoot(*root)
	server := &pyx.Server{
		RootFactory: func(req *pyx.Request) (pyx.Resource, error) {
			return staticRoot, nil
		},
		Logger: logger,
	}

	logger.logAt("info", "serving %s on %s", *root, addr)
	if err := server.Serve(ln); err != nil {
		if isNormalShutdown(err) {
			os.Exit(0)
		}
		logger.logAt("error", "serve failed: %v", err)
		os.Exit(1)
	}
}

func isNormalShutdown(err error) bool {
	var opErr *net.OpError
	return errors.As(err, &opErr) && errors.Is(opErr.Err, net.ErrClosed)
}
