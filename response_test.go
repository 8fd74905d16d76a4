package pyx

import (
	"bufio"
	"io"
	"net"
	"testing"
)

func TestResponseWriteFraming(t *testing.T) {
	server, client := net.Pipe()
	defer client.Close()

	conn := newConnection(server, nil)
	defer conn.Close()

	resp := NewResponse(conn, nil)
	resp.Code = StatusOK
	resp.headers = nil
	resp.AddHeader("Server", "Pyx")
	resp.AddHeader("Connection", "keep-alive")

	done := make(chan struct{})
	var got []byte
	go func() {
		defer close(done)
		r := bufio.NewReader(client)
		buf := make([]byte, 4096)
		n, _ := r.Read(buf)
		got = buf[:n]
		io.Copy(io.Discard, r)
	}()

	if err := resp.Write(); err != nil {
		t.Fatalf("Write: %v", err)
	}
	conn.Close()
	<-done

	want := "HTTP/1.1 200 OK\r\nServer: Pyx\r\nConnection: keep-alive\r\n\r\n"
	if string(got) != want {
		t.Fatalf("framing = %q, want %q", got, want)
	}
}

func TestResponseWriteMarksRequestResponded(t *testing.T) {
	server, client := net.Pipe()
	defer client.Close()
	go io.Copy(io.Discard, client)

	conn := newConnection(server, nil)
	defer conn.Close()

	req := &Request{Message: Message{conn: conn}}
	resp := NewResponse(conn, req)

	if req.Responded {
		t.Fatalf("Responded should start false")
	}
	if err := resp.Write(); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !req.Responded {
		t.Fatalf("Responded should be true after Write")
	}
}
