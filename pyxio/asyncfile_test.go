package pyxio

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestAsyncFileReadExactCount(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "f.bin")
	want := []byte("hello, async file")
	if err := os.WriteFile(name, want, 0o644); err != nil {
		t.Fatal(err)
	}

	af, err := OpenAsyncFile(name)
	if err != nil {
		t.Fatal(err)
	}
	defer af.Close()

	got, err := af.Read(context.Background(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != "hello" {
		t.Fatalf("Read(5) = %q, want %q", got, "hello")
	}
}

func TestAsyncFileReadToEOF(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "f.bin")
	want := make([]byte, DefaultBlockSize*3+17)
	for i := range want {
		want[i] = byte(i)
	}
	if err := os.WriteFile(name, want, 0o644); err != nil {
		t.Fatal(err)
	}

	af, err := OpenAsyncFile(name)
	if err != nil {
		t.Fatal(err)
	}
	defer af.Close()

	got, err := af.Read(context.Background(), -1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("len(got) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("byte %d mismatch: got %d want %d", i, got[i], want[i])
		}
	}
}

func TestAsyncFileWriteThenRead(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "out.bin")
	f, err := os.Create(name)
	if err != nil {
		t.Fatal(err)
	}
	af := NewAsyncFile(f)

	n, err := af.Write(context.Background(), []byte("payload"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != len("payload") {
		t.Fatalf("Write() wrote %d bytes, want %d", n, len("payload"))
	}
	af.Close()

	got, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "payload" {
		t.Fatalf("file contents = %q", got)
	}
}

func TestAsyncFileReadRespectsCancellation(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "f.bin")
	if err := os.WriteFile(name, []byte("data"), 0o644); err != nil {
		t.Fatal(err)
	}
	af, err := OpenAsyncFile(name)
	if err != nil {
		t.Fatal(err)
	}
	defer af.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = af.Read(ctx, -1)
	if err == nil {
		t.Fatal("expected cancellation error")
	}
}
