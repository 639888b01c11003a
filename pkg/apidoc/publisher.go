package apidoc

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"
	"sync/atomic"

	"github.com/JaimeStill/delta/pkg/handlers"
	"github.com/JaimeStill/delta/pkg/openapi"
	"github.com/JaimeStill/delta/pkg/routes"
)

// Well-known document paths.
const (
	JSONPath = "/openapi.json"
	YAMLPath = "/openapi.yaml"
)

// Document is a composed specification together with its serialized forms.
// Each form carries the entity tag of its own bytes. It is immutable once
// created.
type Document struct {
	Spec     *openapi.Spec
	JSON     []byte
	YAML     []byte
	JSONETag string
	YAMLETag string
}

// NewDocument serializes spec. Identical compositions share entity tags.
func NewDocument(spec *openapi.Spec) (*Document, error) {
	data, err := openapi.MarshalJSON(spec)
	if err != nil {
		return nil, fmt.Errorf("marshal json: %w", err)
	}
	yml, err := openapi.MarshalYAML(spec)
	if err != nil {
		return nil, fmt.Errorf("marshal yaml: %w", err)
	}

	return &Document{
		Spec:     spec,
		JSON:     data,
		YAML:     yml,
		JSONETag: etag(data),
		YAMLETag: etag(yml),
	}, nil
}

func etag(data []byte) string {
	sum := sha256.Sum256(data)
	return `"` + hex.EncodeToString(sum[:16]) + `"`
}

// Publisher exposes the most recently published document.
// Publish swaps the held document atomically; readers observe either the
// previous or the new document, never a mix.
type Publisher struct {
	current atomic.Pointer[Document]
}

// NewPublisher creates a publisher with no document.
func NewPublisher() *Publisher {
	return &Publisher{}
}

// Publish makes doc the served document.
func (p *Publisher) Publish(doc *Document) {
	p.current.Store(doc)
}

// Current returns the served document, or nil before the first Publish.
func (p *Publisher) Current() *Document {
	return p.current.Load()
}

// Routes returns the hidden route group serving the document.
func (p *Publisher) Routes() routes.Group {
	return routes.Group{
		Name:        "openapi",
		Description: "API description document",
		Routes: []routes.Route{
			{Method: "GET", Pattern: JSONPath, Handler: p.ServeJSON, Hidden: true},
			{Method: "GET", Pattern: YAMLPath, Handler: p.ServeYAML, Hidden: true},
		},
	}
}

// ServeJSON writes the document as JSON.
func (p *Publisher) ServeJSON(w http.ResponseWriter, r *http.Request) {
	p.serve(w, r, "application/json; charset=utf-8", func(d *Document) ([]byte, string) { return d.JSON, d.JSONETag })
}

// ServeYAML writes the document as YAML.
func (p *Publisher) ServeYAML(w http.ResponseWriter, r *http.Request) {
	p.serve(w, r, "application/yaml; charset=utf-8", func(d *Document) ([]byte, string) { return d.YAML, d.YAMLETag })
}

func (p *Publisher) serve(w http.ResponseWriter, r *http.Request, contentType string, form func(*Document) ([]byte, string)) {
	doc := p.Current()
	if doc == nil {
		handlers.RespondJSON(w, http.StatusServiceUnavailable, map[string]string{"error": ErrNotPublished.Error()})
		return
	}

	body, tag := form(doc)
	w.Header().Set("ETag", tag)
	w.Header().Set("Cache-Control", "no-cache")
	if matchesETag(r.Header.Get("If-None-Match"), tag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

// matchesETag reports whether an If-None-Match header value names tag.
// The header is a comma-separated list compared weakly, so a W/ prefix is
// ignored, and "*" matches any current representation.
func matchesETag(header, tag string) bool {
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" {
			return true
		}
		if strings.TrimPrefix(candidate, "W/") == tag {
			return true
		}
	}
	return false
}
