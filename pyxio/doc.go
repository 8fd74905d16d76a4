// Package pyxio provides the layered byte-stream reader toolkit the HTTP
// request parser and multipart body reader are built on: pushback
// buffering (BufferedReader), byte-count-bounded slicing (LengthReader),
// multipart boundary detection (BoundaryReader), and a non-blocking local
// file wrapper (AsyncFile).
//
// Every reader in this package exposes the same trio of operations —
// Read, ReadLine, ReadExactly — plus Put for pushback, so the layers
// compose: a LengthReader or BoundaryReader can itself be the inner source
// of another layer.
package pyxio
