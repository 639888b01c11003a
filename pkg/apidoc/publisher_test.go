package apidoc_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/delta/pkg/apidoc"
	"github.com/JaimeStill/delta/pkg/openapi"
)

func document(t *testing.T) *apidoc.Document {
	t.Helper()
	result, err := apidoc.Compose(meta, tags, tagGroups, mounts())
	require.NoError(t, err)
	doc, err := apidoc.NewDocument(result.Spec)
	require.NoError(t, err)
	return doc
}

func TestNewDocument(t *testing.T) {
	doc := document(t)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(doc.JSON, &decoded))
	assert.Equal(t, openapi.Version, decoded["openapi"])
	assert.Contains(t, decoded, "x-tagGroups")
	assert.Contains(t, decoded, "x-logo")

	assert.Contains(t, string(doc.YAML), "openapi: 3.0.0")
	assert.Regexp(t, `^"[0-9a-f]{32}"$`, doc.JSONETag)
	assert.Regexp(t, `^"[0-9a-f]{32}"$`, doc.YAMLETag)
	assert.NotEqual(t, doc.JSONETag, doc.YAMLETag)

	again := document(t)
	assert.Equal(t, doc.JSONETag, again.JSONETag)
	assert.Equal(t, doc.YAMLETag, again.YAMLETag)
}

func TestPublisher_Unpublished(t *testing.T) {
	p := apidoc.NewPublisher()
	assert.Nil(t, p.Current())

	rec := httptest.NewRecorder()
	p.ServeJSON(rec, httptest.NewRequest(http.MethodGet, apidoc.JSONPath, nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), apidoc.ErrNotPublished.Error())
}

func TestPublisher_Serve(t *testing.T) {
	doc := document(t)
	p := apidoc.NewPublisher()
	p.Publish(doc)

	tests := []struct {
		name        string
		serve       http.HandlerFunc
		contentType string
		body        []byte
		etag        string
	}{
		{"json", p.ServeJSON, "application/json; charset=utf-8", doc.JSON, doc.JSONETag},
		{"yaml", p.ServeYAML, "application/yaml; charset=utf-8", doc.YAML, doc.YAMLETag},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.serve(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.contentType, rec.Header().Get("Content-Type"))
			assert.Equal(t, tt.etag, rec.Header().Get("ETag"))
			assert.Equal(t, tt.body, rec.Body.Bytes())
		})
	}
}

func TestPublisher_NotModified(t *testing.T) {
	doc := document(t)
	p := apidoc.NewPublisher()
	p.Publish(doc)

	tests := []struct {
		name        string
		serve       http.HandlerFunc
		ifNoneMatch string
		status      int
	}{
		{"json current", p.ServeJSON, doc.JSONETag, http.StatusNotModified},
		{"yaml current", p.ServeYAML, doc.YAMLETag, http.StatusNotModified},
		{"stale", p.ServeJSON, `"stale"`, http.StatusOK},
		{"json tag on yaml", p.ServeYAML, doc.JSONETag, http.StatusOK},
		{"yaml tag on json", p.ServeJSON, doc.YAMLETag, http.StatusOK},
		{"list", p.ServeJSON, `"stale", ` + doc.JSONETag, http.StatusNotModified},
		{"weak", p.ServeYAML, "W/" + doc.YAMLETag, http.StatusNotModified},
		{"wildcard", p.ServeJSON, "*", http.StatusNotModified},
		{"empty", p.ServeJSON, "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.ifNoneMatch != "" {
				req.Header.Set("If-None-Match", tt.ifNoneMatch)
			}
			rec := httptest.NewRecorder()
			tt.serve(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusNotModified {
				assert.Empty(t, rec.Body.Bytes())
			} else {
				assert.NotEmpty(t, rec.Body.Bytes())
			}
		})
	}
}

func TestPublisher_Routes(t *testing.T) {
	g := apidoc.NewPublisher().Routes()
	require.Len(t, g.Routes, 2)
	for _, r := range g.Routes {
		assert.True(t, r.Hidden, r.Pattern)
		assert.Equal(t, http.MethodGet, r.Method)
	}
}
