// Package routes provides route groups, the mount registry that validates and
// orders them, and the immutable dispatch table the registry produces.
package routes

import (
	"net/http"

	"github.com/JaimeStill/delta/pkg/openapi"
)

// Route represents an HTTP route with method, pattern, and handler.
// Pattern is relative to the group's mount prefix and may contain
// whole-segment parameters such as "/{target}".
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
	OpenAPI *openapi.Operation

	// Hidden routes are dispatched but left out of the API document.
	Hidden bool
}

// Group represents an ordered collection of routes produced by one feature module.
// Operations without explicit tags inherit Tags when the document is composed.
type Group struct {
	Name        string
	Tags        []string
	Description string
	Routes      []Route
	Schemas     map[string]*openapi.Schema
}

// Mount pairs a group with the prefix it is registered under.
type Mount struct {
	Prefix string
	Group  Group
}
