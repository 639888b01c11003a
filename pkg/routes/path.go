package routes

import (
	"fmt"
	"slices"
	"strings"
)

// Methods lists the HTTP methods a registry accepts, in canonical order.
var Methods = []string{"GET", "HEAD", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}

func validMethod(method string) bool {
	return slices.Contains(Methods, method)
}

// Join qualifies a route pattern with its mount prefix.
// The root prefix "/" contributes nothing, an empty or "/" pattern resolves
// to the prefix itself, and trailing slashes are dropped.
func Join(prefix, pattern string) string {
	base := strings.TrimSuffix(prefix, "/")
	pattern = strings.TrimSuffix(pattern, "/")
	if full := base + pattern; full != "" {
		return full
	}
	return "/"
}

// Segments splits a path into its slash-separated segments.
// The root path has no segments.
func Segments(path string) []string {
	path = strings.TrimPrefix(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}

// ParamName returns the parameter name of a "{name}" segment.
func ParamName(segment string) (string, bool) {
	if len(segment) > 2 && segment[0] == '{' && segment[len(segment)-1] == '}' {
		return segment[1 : len(segment)-1], true
	}
	return "", false
}

// Params returns the parameter names of a qualified pattern in path order.
func Params(pattern string) []string {
	var names []string
	for _, seg := range Segments(pattern) {
		if name, ok := ParamName(seg); ok {
			names = append(names, name)
		}
	}
	return names
}

// ValidatePrefix checks that prefix is "/" or a slash-led sequence of
// literal segments.
func ValidatePrefix(prefix string) error {
	if prefix == "" {
		return fmt.Errorf("%w: empty", ErrInvalidPrefix)
	}
	if prefix == "/" {
		return nil
	}
	if !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("%w: %q must start with '/'", ErrInvalidPrefix, prefix)
	}
	for _, seg := range Segments(strings.TrimSuffix(prefix, "/")) {
		if !validLiteral(seg) {
			return fmt.Errorf("%w: %q has invalid segment %q", ErrInvalidPrefix, prefix, seg)
		}
	}
	return nil
}

// validatePattern checks a qualified pattern: literal or "{name}" segments,
// no empty segments, and no parameter name used twice.
func validatePattern(path string) error {
	seen := make(map[string]bool)
	for _, seg := range Segments(path) {
		if name, ok := ParamName(seg); ok {
			if !validParamName(name) {
				return fmt.Errorf("%w: %q has invalid parameter %q", ErrInvalidPattern, path, seg)
			}
			if seen[name] {
				return fmt.Errorf("%w: %q repeats parameter %q", ErrInvalidPattern, path, name)
			}
			seen[name] = true
			continue
		}
		if !validLiteral(seg) {
			return fmt.Errorf("%w: %q has invalid segment %q", ErrInvalidPattern, path, seg)
		}
	}
	return nil
}

func validLiteral(seg string) bool {
	if seg == "" {
		return false
	}
	for _, r := range seg {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case strings.ContainsRune("-._~@:!$&'()*+,;=", r):
		default:
			return false
		}
	}
	return true
}

func validParamName(name string) bool {
	for i, r := range name {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return name != ""
}
