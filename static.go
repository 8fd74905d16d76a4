package pyx

import (
	"context"
	"mime"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/yourusername/pyx/pyxio"
)

// StaticRoot serves a directory tree. Unlike the Python original, it
// does not mutate itself during traversal: GetChild returns a new
// StaticRoot carrying the extended segment list, so one root is safe to
// reuse across concurrent requests.
type StaticRoot struct {
	root     string
	segments []string
}

// NewStaticRoot builds a resource rooted at dir.
func NewStaticRoot(dir string) *StaticRoot {
	return &StaticRoot{root: dir}
}

// GetChild percent-decodes key, splits the decoded text on "/", and
// folds ".." segments against the accumulated path — popping one
// element, or doing nothing against an empty list. The result can never
// lexically escape root.
func (s *StaticRoot) GetChild(key string) (Resource, error) {
	decoded, err := url.PathUnescape(key)
	if err != nil {
		return nil, &BadRequestError{Reason: "malformed percent-encoding in path segment"}
	}

	segments := append([]string(nil), s.segments...)
	for _, sub := range strings.Split(decoded, "/") {
		switch sub {
		case "":
			continue
		case "..":
			if len(segments) > 0 {
				segments = segments[:len(segments)-1]
			}
		default:
			segments = append(segments, sub)
		}
	}
	return &StaticRoot{root: s.root, segments: segments}, nil
}

// Dispatch registers only GET; every other method is 501.
func (s *StaticRoot) Dispatch(method string) (HandlerFunc, error) {
	if strings.ToUpper(method) != "GET" {
		return nil, NewHTTPError(StatusNotImplemented, "method not implemented: "+method)
	}
	return s.handleGet, nil
}

// buildRealPath joins the root with the accumulated, already-traversed
// segment list.
func (s *StaticRoot) buildRealPath() string {
	parts := append([]string{s.root}, s.segments...)
	return filepath.Join(parts...)
}

func (s *StaticRoot) handleGet(conn *Connection, req *Request, resp *Response) error {
	realPath := s.buildRealPath()

	af, err := pyxio.OpenAsyncFile(realPath)
	if err != nil {
		return NewHTTPError(StatusNotFound, "not found")
	}
	defer af.Close()

	info, err := af.Stat()
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return NewHTTPError(StatusNotFound, "not found")
	}

	resp.SetContentLength(int(info.Size()))
	if ct := mime.TypeByExtension(filepath.Ext(realPath)); ct != "" {
		resp.AddHeader(hdrContentType, ct)
	}
	if err := resp.Write(); err != nil {
		return err
	}
	if info.Size() == 0 {
		return nil
	}
	return sendfileAsync(context.Background(), conn, af, info.Size())
}
