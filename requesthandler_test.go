package pyx

import (
	"bufio"
	"errors"
	"io"
	"net"
	"testing"
)

func TestRequestHandlerRendersHttpErrorFromTraversal(t *testing.T) {
	server, client := net.Pipe()
	defer client.Close()

	conn := newConnection(server, nil)
	defer conn.Close()

	rh := NewRequestHandler(func(req *Request) (Resource, error) {
		return nil, NewHTTPError(StatusNotFound, "nope")
	})

	req := &Request{Message: Message{conn: conn}, Method: "GET", Path: "/", Protocol: "HTTP", VersionMajor: 1, VersionMinor: 1}

	done := make(chan string, 1)
	go func() {
		r := bufio.NewReader(client)
		line, _ := r.ReadString('\n')
		io.Copy(io.Discard, r)
		done <- line
	}()

	if err := rh.Handle(conn, req); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	conn.Close()

	statusLine := <-done
	want := "HTTP/1.1 404 Not Found\r\n"
	if statusLine != want {
		t.Fatalf("status line = %q, want %q", statusLine, want)
	}
}

func TestRequestHandlerSkipsErrorPageIfAlreadyResponded(t *testing.T) {
	server, client := net.Pipe()
	defer client.Close()
	go io.Copy(io.Discard, client)

	conn := newConnection(server, nil)

	root := &fixedChildResource{}
	root.Dispatcher = SingleHandler(func(conn *Connection, req *Request, resp *Response) error {
		resp.SetContentLength(0)
		if err := resp.Write(); err != nil {
			return err
		}
		return errors.New("boom after response started")
	})

	rh := NewRequestHandler(func(req *Request) (Resource, error) { return root, nil })
	req := &Request{Message: Message{conn: conn}, Method: "GET", Path: "/", Protocol: "HTTP", VersionMajor: 1, VersionMinor: 1}

	if err := rh.Handle(conn, req); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if !conn.Closed() {
		t.Fatalf("connection should be closed after a post-response error")
	}
}

func TestClassifyErrorMapsUnknownErrorsTo500(t *testing.T) {
	code, _ := classifyError(errors.New("whatever"))
	if code != StatusInternalServerError {
		t.Fatalf("code = %d, want 500", code)
	}
}

func TestClassifyErrorPassesThroughHTTPError(t *testing.T) {
	code, msg := classifyError(NewHTTPError(StatusNotImplemented, "nope"))
	if code != StatusNotImplemented || msg != "nope" {
		t.Fatalf("classifyError = (%d,%q), want (501,nope)", code, msg)
	}
}
