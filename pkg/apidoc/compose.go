// Package apidoc composes the API description document from mounted route
// groups and publishes it over HTTP.
package apidoc

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"

	"github.com/JaimeStill/delta/pkg/openapi"
	"github.com/JaimeStill/delta/pkg/routes"
)

// TagGroupsExtension is the extension key carrying the tag group taxonomy.
const TagGroupsExtension = "x-tagGroups"

// Metadata is the process-wide static document header.
type Metadata struct {
	Info         *openapi.Info
	Servers      []*openapi.Server
	ExternalDocs *openapi.ExternalDocs
	Extensions   map[string]any
}

// WarningCode identifies a non-fatal documentation gap.
type WarningCode string

const (
	// WarnUngroupedTag marks a tag used by an operation but absent from every tag group.
	WarnUngroupedTag WarningCode = "ungrouped_tag"

	// WarnTagInMultipleGroups marks a tag listed by more than one tag group.
	WarnTagInMultipleGroups WarningCode = "tag_in_multiple_groups"
)

// Warning is an advisory issue found during composition.
// The composed document is valid even when warnings exist.
type Warning struct {
	Code    WarningCode
	Tag     string
	Message string
}

// Warnings is the list of warnings produced by one composition.
type Warnings []Warning

// Has reports whether any warning carries code.
func (w Warnings) Has(code WarningCode) bool {
	return slices.ContainsFunc(w, func(x Warning) bool { return x.Code == code })
}

// Result is the outcome of a successful composition.
type Result struct {
	Spec     *openapi.Spec
	Warnings Warnings
}

// Compose merges the documentation of every mounted group into one document.
//
// Mounts are consumed in order. Each operation is qualified with its mount
// prefix, its tags are resolved against tags, and it is inserted at
// paths[path][method]. Tag order follows groups; tags outside every group
// follow in the order operations first use them, then in declaration order.
// Compose does not modify its inputs and yields identical output for
// identical inputs.
func Compose(meta Metadata, tags []openapi.Tag, groups []openapi.TagGroup, mounts []routes.Mount) (*Result, error) {
	if meta.Info == nil || meta.Info.Title == "" {
		return nil, fmt.Errorf("%w: title required", ErrInvalidMetadata)
	}

	c := &composer{
		known: make(map[string]openapi.Tag, len(tags)),
		spec: &openapi.Spec{
			OpenAPI:      openapi.Version,
			Info:         cloneInfo(meta.Info),
			Servers:      cloneServers(meta.Servers),
			ExternalDocs: meta.ExternalDocs,
			Paths:        make(map[string]*openapi.PathItem),
			Components:   openapi.NewComponents(),
			Extensions:   make(map[string]any),
		},
		used:   make(map[string]bool),
		listed: make(map[string]bool),
	}

	if err := c.extensions(meta.Extensions); err != nil {
		return nil, err
	}
	if err := c.declareTags(tags); err != nil {
		return nil, err
	}
	if err := c.declareGroups(groups); err != nil {
		return nil, err
	}
	for _, m := range mounts {
		if err := c.mount(m); err != nil {
			return nil, err
		}
	}
	c.orderTags(groups)

	if len(c.spec.Components.Schemas) == 0 && len(c.spec.Components.Responses) == 0 {
		c.spec.Components = nil
	}

	return &Result{Spec: c.spec, Warnings: c.warnings}, nil
}

type composer struct {
	spec     *openapi.Spec
	known    map[string]openapi.Tag
	declared []string
	grouped  map[string]string
	used     map[string]bool
	usedSeq  []string
	listed   map[string]bool
	warnings Warnings
}

func (c *composer) extensions(ext map[string]any) error {
	for _, key := range slices.Sorted(maps.Keys(ext)) {
		if err := openapi.ValidateExtensionKey(key); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidExtension, err)
		}
		if key == TagGroupsExtension {
			return fmt.Errorf("%w: %s is derived from tag groups", ErrInvalidExtension, key)
		}
		c.spec.Extensions[key] = ext[key]
	}
	return nil
}

func (c *composer) declareTags(tags []openapi.Tag) error {
	for _, tag := range tags {
		if tag.Name == "" {
			return fmt.Errorf("%w: empty tag name", ErrUnknownTag)
		}
		if prev, ok := c.known[tag.Name]; ok {
			if prev.Description != tag.Description {
				return fmt.Errorf("%w: %q", ErrDuplicateTag, tag.Name)
			}
			continue
		}
		c.known[tag.Name] = tag
		c.declared = append(c.declared, tag.Name)
	}
	return nil
}

func (c *composer) declareGroups(groups []openapi.TagGroup) error {
	c.grouped = make(map[string]string)
	if len(groups) == 0 {
		return nil
	}

	taxonomy := make([]openapi.TagGroup, 0, len(groups))
	for _, g := range groups {
		for _, name := range g.Tags {
			if _, ok := c.known[name]; !ok {
				return fmt.Errorf("%w: %q in tag group %q", ErrUnknownTag, name, g.Name)
			}
			if first, ok := c.grouped[name]; ok {
				c.warnings = append(c.warnings, Warning{
					Code:    WarnTagInMultipleGroups,
					Tag:     name,
					Message: fmt.Sprintf("tag %q listed by tag groups %q and %q", name, first, g.Name),
				})
				continue
			}
			c.grouped[name] = g.Name
		}
		taxonomy = append(taxonomy, openapi.TagGroup{Name: g.Name, Tags: slices.Clone(g.Tags)})
	}

	c.spec.Extensions[TagGroupsExtension] = taxonomy
	return nil
}

func (c *composer) mount(m routes.Mount) error {
	for _, route := range m.Group.Routes {
		if route.Hidden {
			continue
		}

		method := strings.ToUpper(route.Method)
		path := routes.Join(m.Prefix, route.Pattern)
		op := operation(route, m.Group, method, path)

		for _, name := range op.Tags {
			if _, ok := c.known[name]; !ok {
				return fmt.Errorf("%w: %q on %s %s", ErrUnknownTag, name, method, path)
			}
			if !c.used[name] {
				c.used[name] = true
				c.usedSeq = append(c.usedSeq, name)
			}
		}

		item, ok := c.spec.Paths[path]
		if !ok {
			item = &openapi.PathItem{}
			c.spec.Paths[path] = item
		}
		if item.Lookup(method) != nil {
			return fmt.Errorf("%w: %s %s", ErrDuplicatePath, method, path)
		}
		if !item.Set(method, op) {
			return fmt.Errorf("%w: %s %s", routes.ErrInvalidMethod, method, path)
		}
	}

	schemas := c.spec.Components.Schemas
	for _, name := range slices.Sorted(maps.Keys(m.Group.Schemas)) {
		schema := m.Group.Schemas[name]
		if existing, ok := schemas[name]; ok && !reflect.DeepEqual(existing, schema) {
			return fmt.Errorf("%w: %q", ErrSchemaConflict, name)
		}
		schemas[name] = schema
	}
	return nil
}

func (c *composer) orderTags(groups []openapi.TagGroup) {
	for _, g := range groups {
		for _, name := range g.Tags {
			c.list(name)
		}
	}
	for _, name := range c.usedSeq {
		if len(groups) > 0 && c.grouped[name] == "" {
			c.warnings = append(c.warnings, Warning{
				Code:    WarnUngroupedTag,
				Tag:     name,
				Message: fmt.Sprintf("tag %q is used by operations but belongs to no tag group", name),
			})
		}
		c.list(name)
	}
	for _, name := range c.declared {
		c.list(name)
	}
}

func (c *composer) list(name string) {
	if c.listed[name] {
		return
	}
	c.listed[name] = true
	tag := c.known[name]
	c.spec.Tags = append(c.spec.Tags, &tag)
}

// operation derives the document entry for one route without touching the
// route's own operation value.
func operation(route routes.Route, group routes.Group, method, path string) *openapi.Operation {
	var op openapi.Operation
	if route.OpenAPI != nil {
		op = *route.OpenAPI
	} else {
		op.Summary = method + " " + path
	}

	op.Tags = uniqueTags(op.Tags)
	if len(op.Tags) == 0 {
		op.Tags = uniqueTags(group.Tags)
	}

	declared := make(map[string]bool)
	for _, p := range op.Parameters {
		if p.In == "path" {
			declared[p.Name] = true
		}
	}
	op.Parameters = slices.Clone(op.Parameters)
	for _, name := range routes.Params(path) {
		if !declared[name] {
			op.Parameters = append(op.Parameters, openapi.PathParam(name, ""))
		}
	}

	if len(op.Responses) == 0 {
		op.Responses = map[int]*openapi.Response{
			200: {Description: "Success"},
		}
	}
	return &op
}

// uniqueTags copies tags, keeping the first occurrence of each name.
func uniqueTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, name := range tags {
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	return out
}

func cloneInfo(info *openapi.Info) *openapi.Info {
	out := *info
	return &out
}

func cloneServers(servers []*openapi.Server) []*openapi.Server {
	out := make([]*openapi.Server, 0, len(servers))
	for _, s := range servers {
		copied := *s
		out = append(out, &copied)
	}
	return out
}
