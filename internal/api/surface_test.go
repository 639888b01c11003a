package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/delta/internal/api"
	"github.com/JaimeStill/delta/internal/root"
	"github.com/JaimeStill/delta/pkg/apidoc"
	"github.com/JaimeStill/delta/pkg/logging"
	"github.com/JaimeStill/delta/pkg/metrics"
	"github.com/JaimeStill/delta/pkg/openapi"
	"github.com/JaimeStill/delta/pkg/routes"
)

func metadata(t *testing.T) apidoc.Metadata {
	t.Helper()
	var cfg openapi.Config
	require.NoError(t, cfg.Finalize(nil))
	return api.Metadata(&cfg)
}

func newSurface(t *testing.T, recorder *metrics.Recorder) *api.Surface {
	t.Helper()
	logger := logging.Discard()
	s := api.New(api.Mounts(logger, root.NewInfo("0.5.3-rc.1")), logger, recorder)
	require.NoError(t, s.Build(metadata(t)))
	return s
}

func serve(s *api.Surface, method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestSurface_Build(t *testing.T) {
	s := newSurface(t, nil)

	assert.Equal(t, api.Ready, s.State())
	assert.True(t, s.Ready())
	require.NotNil(t, s.Table())
	require.NotNil(t, s.Document())

	doc := s.Document().Spec
	assert.Equal(t, "Revolt API", doc.Info.Title)
	assert.Len(t, doc.Tags, len(api.Tags))
	assert.Equal(t, api.TagGroups, doc.Extensions[apidoc.TagGroupsExtension])
	assert.Contains(t, doc.Extensions, "x-logo")
}

func TestSurface_TableAndDocumentAgree(t *testing.T) {
	s := newSurface(t, nil)
	doc := s.Document().Spec

	documented := 0
	for _, e := range s.Table().Entries() {
		if e.Route.Hidden {
			assert.NotContains(t, doc.Paths, e.Path)
			continue
		}
		documented++
		item, ok := doc.Paths[e.Path]
		require.True(t, ok, "missing path %s", e.Path)
		assert.NotNil(t, item.Lookup(e.Method), "missing %s %s", e.Method, e.Path)
	}

	operations := 0
	for _, item := range doc.Paths {
		for _, method := range routes.Methods {
			if item.Lookup(method) != nil {
				operations++
			}
		}
	}
	assert.Equal(t, documented, operations)
}

func TestSurface_TaxonomyComplete(t *testing.T) {
	logger := logging.Discard()
	result, err := apidoc.Compose(
		metadata(t),
		api.Tags,
		api.TagGroups,
		api.Mounts(logger, root.NewInfo("test")),
	)
	require.NoError(t, err)
	assert.Empty(t, result.Warnings)

	used := make(map[string]bool)
	for _, item := range result.Spec.Paths {
		for _, method := range routes.Methods {
			if op := item.Lookup(method); op != nil {
				for _, tag := range op.Tags {
					used[tag] = true
				}
			}
		}
	}
	for _, tag := range api.Tags {
		assert.True(t, used[tag.Name], "tag %q has no operations", tag.Name)
	}
}

func TestSurface_Dispatch(t *testing.T) {
	s := newSurface(t, nil)

	tests := []struct {
		name   string
		method string
		path   string
		status int
	}{
		{"root", "GET", "/", http.StatusOK},
		{"ping", "GET", "/ping", http.StatusOK},
		{"self", "GET", "/users/@me", http.StatusNotImplemented},
		{"user", "GET", "/users/01F", http.StatusNotImplemented},
		{"nested account root", "GET", "/auth/account", http.StatusNotImplemented},
		{"bulk delete", "DELETE", "/channels/c/messages/bulk", http.StatusNotImplemented},
		{"document", "GET", "/openapi.json", http.StatusOK},
		{"yaml", "GET", "/openapi.yaml", http.StatusOK},
		{"head falls back to get", "HEAD", "/ping", http.StatusOK},
		{"unknown", "GET", "/nope", http.StatusNotFound},
		{"wrong method", "POST", "/users/@me", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(s, tt.method, tt.path)
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
		})
	}
}

func TestSurface_Dispatch_Operation(t *testing.T) {
	s := newSurface(t, nil)

	var body map[string]string
	rec := serve(s, "GET", "/users/@me")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "users.fetch_self", body["operation"])

	rec = serve(s, "GET", "/users/abc")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "users.fetch_user", body["operation"])

	rec = serve(s, "DELETE", "/channels/c/messages/bulk")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "channels.bulk_delete", body["operation"])
}

func TestSurface_Dispatch_PathValues(t *testing.T) {
	logger := logging.Discard()
	var got string
	mounts := []routes.Mount{{Prefix: "/users", Group: routes.Group{
		Name: "users",
		Tags: []string{"User Information"},
		Routes: []routes.Route{{
			Method:  "GET",
			Pattern: "/{target}",
			Handler: func(w http.ResponseWriter, r *http.Request) { got = r.PathValue("target") },
		}},
	}}}

	s := api.New(mounts, logger, nil)
	require.NoError(t, s.Build(metadata(t)))

	serve(s, "GET", "/users/01FHGJ")
	assert.Equal(t, "01FHGJ", got)
}

func TestSurface_MethodNotAllowed(t *testing.T) {
	s := newSurface(t, nil)

	rec := serve(s, "PUT", "/invites/abc")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "GET, HEAD, POST, DELETE", rec.Header().Get("Allow"))
}

func TestSurface_Document(t *testing.T) {
	s := newSurface(t, nil)

	rec := serve(s, "GET", apidoc.JSONPath)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, s.Document().JSON, rec.Body.Bytes())
	assert.Equal(t, s.Document().JSONETag, rec.Header().Get("ETag"))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	paths := decoded["paths"].(map[string]any)
	assert.Contains(t, paths, "/users/@me")
	assert.Contains(t, paths, "/channels/{target}/messages/{msg}")
	assert.NotContains(t, paths, apidoc.JSONPath)
}

func TestSurface_BuildErrors(t *testing.T) {
	logger := logging.Discard()
	noop := func(w http.ResponseWriter, r *http.Request) {}

	t.Run("collision", func(t *testing.T) {
		mounts := api.Mounts(logger, root.NewInfo("test"))
		mounts = append(mounts, routes.Mount{Prefix: "/users", Group: routes.Group{
			Name:   "shadow",
			Routes: []routes.Route{{Method: "GET", Pattern: "/@me", Handler: noop}},
		}})

		s := api.New(mounts, logger, nil)
		err := s.Build(metadata(t))
		assert.ErrorIs(t, err, routes.ErrCollision)
		assert.Equal(t, api.Uninitialized, s.State())
		assert.False(t, s.Ready())

		rec := serve(s, "GET", "/ping")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("document route collision", func(t *testing.T) {
		mounts := []routes.Mount{{Prefix: "/", Group: routes.Group{
			Name:   "spoof",
			Routes: []routes.Route{{Method: "GET", Pattern: apidoc.JSONPath, Handler: noop, Hidden: true}},
		}}}

		err := api.New(mounts, logger, nil).Build(metadata(t))
		assert.ErrorIs(t, err, routes.ErrCollision)
	})

	t.Run("unknown tag", func(t *testing.T) {
		mounts := []routes.Mount{{Prefix: "/extra", Group: routes.Group{
			Name:   "extra",
			Tags:   []string{"Nonexistent"},
			Routes: []routes.Route{{Method: "GET", Pattern: "/", Handler: noop}},
		}}}

		err := api.New(mounts, logger, nil).Build(metadata(t))
		assert.ErrorIs(t, err, apidoc.ErrUnknownTag)
	})

	t.Run("built twice", func(t *testing.T) {
		s := newSurface(t, nil)
		assert.ErrorIs(t, s.Build(metadata(t)), api.ErrAlreadyBuilt)
	})
}

func TestSurface_Reload(t *testing.T) {
	s := newSurface(t, nil)
	before := s.Document()

	meta := metadata(t)
	meta.Info.Title = "Revolt API (staging)"
	require.NoError(t, s.Reload(meta))

	after := s.Document()
	assert.NotEqual(t, before.JSONETag, after.JSONETag)
	assert.Equal(t, "Revolt API (staging)", after.Spec.Info.Title)
	assert.Equal(t, api.Ready, s.State())

	rec := serve(s, "GET", apidoc.JSONPath)
	assert.Equal(t, after.JSONETag, rec.Header().Get("ETag"))
	assert.Contains(t, rec.Body.String(), "Revolt API (staging)")
}

func TestSurface_Reload_FailureKeepsSnapshot(t *testing.T) {
	s := newSurface(t, nil)
	before := s.Document()

	meta := metadata(t)
	meta.Extensions = map[string]any{apidoc.TagGroupsExtension: "override"}
	assert.ErrorIs(t, s.Reload(meta), apidoc.ErrInvalidExtension)

	assert.Equal(t, api.Ready, s.State())
	assert.Same(t, before, s.Document())
	assert.Equal(t, http.StatusOK, serve(s, "GET", "/ping").Code)
}

func TestSurface_Reload_NotReady(t *testing.T) {
	s := api.New(nil, logging.Discard(), nil)
	assert.ErrorIs(t, s.Reload(metadata(t)), api.ErrNotReady)
}

func TestSurface_ConcurrentReload(t *testing.T) {
	s := newSurface(t, nil)
	titles := []string{"A", "B", "C", "D"}

	metas := make([]apidoc.Metadata, len(titles))
	for i, title := range titles {
		metas[i] = metadata(t)
		metas[i].Info.Title = title
	}

	var wg sync.WaitGroup
	for _, meta := range metas {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, s.Reload(meta))
		}()
	}
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				rec := httptest.NewRecorder()
				s.ServeHTTP(rec, httptest.NewRequest("GET", apidoc.JSONPath, nil))
				if assert.Equal(t, http.StatusOK, rec.Code) {
					assert.True(t, strings.HasPrefix(rec.Body.String(), "{"))
				}
			}
		}()
	}
	wg.Wait()

	assert.Contains(t, titles, s.Document().Spec.Info.Title)
}

func TestSurface_Metrics(t *testing.T) {
	recorder := metrics.New("test")
	s := newSurface(t, recorder)

	serve(s, "GET", "/ping")
	serve(s, "GET", "/users/abc")
	serve(s, "GET", "/missing")

	count, err := testutil.GatherAndCount(recorder.Registry(), "test_dispatch_total")
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	count, err = testutil.GatherAndCount(recorder.Registry(), "test_mounted_routes")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "uninitialized", api.Uninitialized.String())
	assert.Equal(t, "mounting", api.Mounting.String())
	assert.Equal(t, "composing", api.Composing.String())
	assert.Equal(t, "ready", api.Ready.String())
}
