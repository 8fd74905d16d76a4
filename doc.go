// Package pyx implements an HTTP/1.x server core: a connection loop that
// parses one or more requests per keep-alive connection, a URL-resource
// tree for dispatching parsed requests to application handlers, and a
// static-file resource for serving a directory tree safely.
//
// The byte-stream reader toolkit the request parser and multipart bodies
// are built on lives in the sibling package pyxio.
//
// pyx is a Go port of the Python reference implementation l04m33/pyx.
package pyx
