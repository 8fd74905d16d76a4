package pyx

import "testing"

type fixedChildResource struct {
	Dispatcher
}

func (r *fixedChildResource) GetChild(segment string) (Resource, error) {
	return r, nil
}

func TestDispatcherSingleHandlerAnswersAnyMethod(t *testing.T) {
	called := false
	d := SingleHandler(func(conn *Connection, req *Request, resp *Response) error {
		called = true
		return nil
	})

	h, err := d.Dispatch("DELETE")
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	h(nil, nil, nil)
	if !called {
		t.Fatalf("handler was not invoked")
	}
}

func TestDispatcherMethodTableRejectsUnknownMethod(t *testing.T) {
	d := MethodTable(map[string]HandlerFunc{
		"GET": func(conn *Connection, req *Request, resp *Response) error { return nil },
	})

	if _, err := d.Dispatch("get"); err != nil {
		t.Fatalf("lowercase method should still match via uppercasing: %v", err)
	}

	_, err := d.Dispatch("POST")
	herr, ok := err.(*HTTPError)
	if !ok || herr.Code != StatusNotImplemented {
		t.Fatalf("err = %v, want *HTTPError{501}", err)
	}
}

func TestTraverseCollapsesEmptySegments(t *testing.T) {
	root := &fixedChildResource{}
	visited := 0
	root.Dispatcher = SingleHandler(func(conn *Connection, req *Request, resp *Response) error {
		visited++
		return nil
	})

	resource, err := Traverse(root, "//a//b/")
	if err != nil {
		t.Fatalf("Traverse: %v", err)
	}
	if resource != Resource(root) {
		t.Fatalf("Traverse returned a different resource")
	}
}
