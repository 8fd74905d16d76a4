package pyx

import (
	"net"
	"testing"
)

func TestConnectionReadLine(t *testing.T) {
	server, client := net.Pipe()
	defer client.Close()
	conn := newConnection(server, nil)
	defer conn.Close()

	go client.Write([]byte("hello\r\n"))

	line, err := conn.readLine()
	if err != nil {
		t.Fatalf("readLine: %v", err)
	}
	if string(line) != "hello\r\n" {
		t.Fatalf("line = %q, want %q", line, "hello\r\n")
	}
}

func TestConnectionCloseIsIdempotent(t *testing.T) {
	server, client := net.Pipe()
	defer client.Close()
	conn := newConnection(server, nil)

	if err := conn.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := conn.Close(); err != nil {
		t.Fatalf("second Close should be a no-op, got: %v", err)
	}
	if !conn.Closed() {
		t.Fatalf("Closed() should report true")
	}
}

func TestConnectionWriteAndFlush(t *testing.T) {
	server, client := net.Pipe()
	defer client.Close()
	conn := newConnection(server, nil)
	defer conn.Close()

	done := make(chan []byte, 1)
	go func() {
		buf := make([]byte, 16)
		n, _ := client.Read(buf)
		done <- buf[:n]
	}()

	if _, err := conn.Write([]byte("ping")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := conn.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	got := <-done
	if string(got) != "ping" {
		t.Fatalf("got %q, want ping", got)
	}
}
