package routes

import (
	"fmt"
	"slices"
	"strings"
)

// Entry is one mounted operation: a route qualified by its mount prefix.
type Entry struct {
	Method string
	Path   string
	Route  Route

	// Mount is the index of the originating mount in registration order.
	Mount int

	segments []string
}

// Registry accepts route groups in mount order, rejects collisions, and
// builds the dispatch table. It is written by a single goroutine during
// startup and frozen once Table is called.
type Registry struct {
	mounts  []Mount
	entries []*Entry
	index   map[string]*Entry
	frozen  bool
}

// NewRegistry creates an empty mount registry.
func NewRegistry() *Registry {
	return &Registry{
		index: make(map[string]*Entry),
	}
}

// Register mounts group under prefix. Registration order is dispatch
// priority among equally specific patterns, so groups must be registered
// in their documented order. The group is validated in full before any of
// its routes are added.
func (r *Registry) Register(prefix string, group Group) error {
	if r.frozen {
		return ErrRegistryFrozen
	}
	if err := ValidatePrefix(prefix); err != nil {
		return err
	}

	name := group.Name
	if name == "" {
		name = prefix
	}

	mountIdx := len(r.mounts)
	pending := make([]*Entry, 0, len(group.Routes))
	local := make(map[string]bool, len(group.Routes))

	for _, route := range group.Routes {
		method := strings.ToUpper(route.Method)
		if !validMethod(method) {
			return fmt.Errorf("%w: %q in group %s", ErrInvalidMethod, route.Method, name)
		}
		if route.Pattern != "" && !strings.HasPrefix(route.Pattern, "/") {
			return fmt.Errorf("%w: %q in group %s must start with '/'", ErrInvalidPattern, route.Pattern, name)
		}

		path := Join(prefix, route.Pattern)
		if err := validatePattern(path); err != nil {
			return fmt.Errorf("group %s: %w", name, err)
		}
		if route.Handler == nil {
			return fmt.Errorf("%w: %s %s in group %s", ErrNilHandler, method, path, name)
		}

		key := method + " " + path
		if existing, ok := r.index[key]; ok {
			return fmt.Errorf(
				"%w: %s in group %s already mounted by group %s",
				ErrCollision, key, name, r.groupName(existing.Mount),
			)
		}
		if local[key] {
			return fmt.Errorf("%w: %s declared twice in group %s", ErrCollision, key, name)
		}
		local[key] = true

		pending = append(pending, &Entry{
			Method:   method,
			Path:     path,
			Route:    route,
			Mount:    mountIdx,
			segments: Segments(path),
		})
	}

	r.mounts = append(r.mounts, Mount{Prefix: prefix, Group: group})
	for _, e := range pending {
		r.index[e.Method+" "+e.Path] = e
		r.entries = append(r.entries, e)
	}
	return nil
}

// Mounts returns the registered mounts in registration order.
func (r *Registry) Mounts() []Mount {
	return slices.Clone(r.mounts)
}

// Len returns the number of mounted operations.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Table freezes the registry and builds its immutable dispatch table.
func (r *Registry) Table() *Table {
	r.frozen = true
	return newTable(r.entries)
}

func (r *Registry) groupName(idx int) string {
	m := r.mounts[idx]
	if m.Group.Name != "" {
		return m.Group.Name
	}
	return m.Prefix
}
