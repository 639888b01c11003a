package routes

import "errors"

// Registration errors. These are authoring mistakes in statically declared
// route groups and are fatal at startup.
var (
	// ErrInvalidPrefix indicates a mount prefix that is empty or not a literal path.
	ErrInvalidPrefix = errors.New("routes: invalid mount prefix")

	// ErrInvalidPattern indicates a route pattern with malformed segments or parameters.
	ErrInvalidPattern = errors.New("routes: invalid route pattern")

	// ErrInvalidMethod indicates an HTTP method the registry does not dispatch.
	ErrInvalidMethod = errors.New("routes: invalid method")

	// ErrNilHandler indicates a route declared without a handler.
	ErrNilHandler = errors.New("routes: route has no handler")

	// ErrCollision indicates the (method, path) pair is already mounted.
	ErrCollision = errors.New("routes: route collision")

	// ErrRegistryFrozen indicates registration after the dispatch table was built.
	ErrRegistryFrozen = errors.New("routes: registry frozen")
)

// ErrNotFound indicates no mounted pattern matches a request.
// It is a routine outcome, answered with a standard "no route" response.
var ErrNotFound = errors.New("routes: no matching route")
