package routes

import (
	"slices"
)

// Param is a path parameter bound during dispatch.
type Param struct {
	Name  string
	Value string
}

// Match is the result of a successful dispatch.
type Match struct {
	Entry  *Entry
	Params []Param
}

// Param returns the value bound to name, or "" if the pattern has no such parameter.
func (m *Match) Param(name string) string {
	for _, p := range m.Params {
		if p.Name == name {
			return p.Value
		}
	}
	return ""
}

// Table is an immutable dispatch table. It is safe for concurrent use.
//
// Resolution walks the path one segment at a time and prefers a literal
// segment over a parameter at the same position, backtracking when the
// literal branch dead-ends. Patterns of identical shape resolve to the
// first registered.
type Table struct {
	root    *node
	entries []*Entry
}

type node struct {
	literal map[string]*node
	param   *node
	routes  map[string][]*Entry
}

func newTable(entries []*Entry) *Table {
	t := &Table{
		root:    &node{},
		entries: slices.Clone(entries),
	}
	for _, e := range t.entries {
		t.insert(e)
	}
	return t
}

func (t *Table) insert(e *Entry) {
	n := t.root
	for _, seg := range e.segments {
		if _, ok := ParamName(seg); ok {
			if n.param == nil {
				n.param = &node{}
			}
			n = n.param
			continue
		}
		if n.literal == nil {
			n.literal = make(map[string]*node)
		}
		child, ok := n.literal[seg]
		if !ok {
			child = &node{}
			n.literal[seg] = child
		}
		n = child
	}
	if n.routes == nil {
		n.routes = make(map[string][]*Entry)
	}
	n.routes[e.Method] = append(n.routes[e.Method], e)
}

// Dispatch resolves method and path to the most specific mounted operation.
// It returns ErrNotFound when no pattern matches.
func (t *Table) Dispatch(method, path string) (*Match, error) {
	segs := Segments(path)
	e := find(t.root, segs, 0, method)
	if e == nil {
		return nil, ErrNotFound
	}

	m := &Match{Entry: e}
	for i, seg := range e.segments {
		if name, ok := ParamName(seg); ok {
			m.Params = append(m.Params, Param{Name: name, Value: segs[i]})
		}
	}
	return m, nil
}

// Allowed returns the methods, in canonical order, under which path resolves.
func (t *Table) Allowed(path string) []string {
	segs := Segments(path)
	var methods []string
	for _, method := range Methods {
		if find(t.root, segs, 0, method) != nil {
			methods = append(methods, method)
		}
	}
	return methods
}

// Entries returns the mounted operations in registration order.
func (t *Table) Entries() []*Entry {
	return slices.Clone(t.entries)
}

// Len returns the number of mounted operations.
func (t *Table) Len() int {
	return len(t.entries)
}

func find(n *node, segs []string, i int, method string) *Entry {
	if i == len(segs) {
		if routes := n.routes[method]; len(routes) > 0 {
			return routes[0]
		}
		return nil
	}

	if child, ok := n.literal[segs[i]]; ok {
		if e := find(child, segs, i+1, method); e != nil {
			return e
		}
	}
	if n.param != nil && segs[i] != "" {
		return find(n.param, segs, i+1, method)
	}
	return nil
}
