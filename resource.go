package pyx

import "strings"

// HandlerFunc answers one dispatched request.
type HandlerFunc func(conn *Connection, req *Request, resp *Response) error

// Resource is a node in the URL resource tree: it can produce a child
// for the next path segment, and it can dispatch an incoming method to
// a handler.
type Resource interface {
	GetChild(segment string) (Resource, error)
	Dispatch(method string) (HandlerFunc, error)
}

// Dispatcher implements Resource's method-dispatch half as the tagged
// variant from the design notes: either a single catch-all handler or a
// per-method table, never both populated at once. Embed it in a
// concrete resource type alongside a GetChild implementation.
type Dispatcher struct {
	Single HandlerFunc
	Table  map[string]HandlerFunc
}

// SingleHandler builds a Dispatcher that answers every method the same
// way.
func SingleHandler(f HandlerFunc) Dispatcher {
	return Dispatcher{Single: f}
}

// MethodTable builds a Dispatcher keyed by uppercase method name. A
// method absent from the table fails with 501 Not Implemented.
func MethodTable(table map[string]HandlerFunc) Dispatcher {
	return Dispatcher{Table: table}
}

func (d Dispatcher) Dispatch(method string) (HandlerFunc, error) {
	if d.Table != nil {
		h, ok := d.Table[strings.ToUpper(method)]
		if !ok {
			return nil, NewHTTPError(StatusNotImplemented, "method not implemented: "+method)
		}
		return h, nil
	}
	if d.Single != nil {
		return d.Single, nil
	}
	return nil, NewHTTPError(StatusNotImplemented, "method not implemented: "+method)
}

// Traverse splits path on "/", discarding empty segments (a leading
// slash and repeated slashes collapse), and walks root.GetChild
// segment by segment, returning the final resource.
func Traverse(root Resource, path string) (Resource, error) {
	current := root
	for _, seg := range strings.Split(path, "/") {
		if seg == "" {
			continue
		}
		next, err := current.GetChild(seg)
		if err != nil {
			return nil, err
		}
		current = next
	}
	return current, nil
}
