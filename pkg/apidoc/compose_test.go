package apidoc_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/delta/pkg/apidoc"
	"github.com/JaimeStill/delta/pkg/openapi"
	"github.com/JaimeStill/delta/pkg/routes"
)

func noop(w http.ResponseWriter, r *http.Request) {}

var meta = apidoc.Metadata{
	Info: &openapi.Info{Title: "Test API", Version: "1.0.0"},
	Servers: []*openapi.Server{
		{URL: "https://api.example.com", Description: "Production"},
	},
	Extensions: map[string]any{
		"x-logo": map[string]string{"url": "https://example.com/logo.png"},
	},
}

var tags = []openapi.Tag{
	{Name: "Core", Description: "Node information"},
	{Name: "User Information", Description: "Query users"},
	{Name: "Relationships", Description: "Friends"},
	{Name: "Bots", Description: "Bots"},
}

var tagGroups = []openapi.TagGroup{
	{Name: "Revolt", Tags: []string{"Core"}},
	{Name: "Users", Tags: []string{"User Information", "Relationships"}},
	{Name: "Bots", Tags: []string{"Bots"}},
}

func mounts() []routes.Mount {
	return []routes.Mount{
		{Prefix: "/", Group: routes.Group{
			Name: "root",
			Tags: []string{"Core"},
			Routes: []routes.Route{
				{Method: "GET", Pattern: "/", Handler: noop, OpenAPI: &openapi.Operation{Summary: "Query Node"}},
				{Method: "GET", Pattern: "/openapi.json", Handler: noop, Hidden: true},
			},
		}},
		{Prefix: "/users", Group: routes.Group{
			Name: "users",
			Tags: []string{"User Information"},
			Routes: []routes.Route{
				{Method: "GET", Pattern: "/@me", Handler: noop, OpenAPI: &openapi.Operation{
					Summary:   "Fetch Self",
					Responses: map[int]*openapi.Response{200: openapi.ResponseJSON("User", "User")},
				}},
				{Method: "GET", Pattern: "/{target}", Handler: noop, OpenAPI: &openapi.Operation{Summary: "Fetch User"}},
				{Method: "PUT", Pattern: "/{target}/friend", Handler: noop, OpenAPI: &openapi.Operation{
					Summary: "Add Friend",
					Tags:    []string{"Relationships"},
				}},
			},
			Schemas: map[string]*openapi.Schema{
				"User": {Type: "object", Properties: map[string]*openapi.Schema{"_id": {Type: "string"}}},
			},
		}},
		{Prefix: "/bots", Group: routes.Group{
			Name: "bots",
			Tags: []string{"Bots"},
			Routes: []routes.Route{
				{Method: "GET", Pattern: "/{bot}", Handler: noop},
			},
		}},
	}
}

func TestCompose(t *testing.T) {
	result, err := apidoc.Compose(meta, tags, tagGroups, mounts())
	require.NoError(t, err)
	assert.Empty(t, result.Warnings)

	spec := result.Spec
	assert.Equal(t, openapi.Version, spec.OpenAPI)
	assert.Equal(t, "Test API", spec.Info.Title)
	require.Len(t, spec.Servers, 1)

	assert.Len(t, spec.Paths, 5)
	for _, path := range []string{"/", "/users/@me", "/users/{target}", "/users/{target}/friend", "/bots/{bot}"} {
		assert.Contains(t, spec.Paths, path)
	}
	assert.NotContains(t, spec.Paths, "/openapi.json")

	t.Run("group tags inherited", func(t *testing.T) {
		assert.Equal(t, []string{"User Information"}, spec.Paths["/users/{target}"].Get.Tags)
		assert.Equal(t, []string{"Relationships"}, spec.Paths["/users/{target}/friend"].Put.Tags)
	})

	t.Run("path params filled", func(t *testing.T) {
		params := spec.Paths["/users/{target}"].Get.Parameters
		require.Len(t, params, 1)
		assert.Equal(t, "target", params[0].Name)
		assert.Equal(t, "path", params[0].In)
		assert.True(t, params[0].Required)
	})

	t.Run("undocumented route gets minimal operation", func(t *testing.T) {
		op := spec.Paths["/bots/{bot}"].Get
		require.NotNil(t, op)
		assert.Equal(t, "GET /bots/{bot}", op.Summary)
		assert.Equal(t, []string{"Bots"}, op.Tags)
		assert.Contains(t, op.Responses, 200)
	})

	t.Run("schemas merged", func(t *testing.T) {
		require.NotNil(t, spec.Components)
		assert.Contains(t, spec.Components.Schemas, "User")
	})

	t.Run("tag groups extension", func(t *testing.T) {
		groups, ok := spec.Extensions[apidoc.TagGroupsExtension].([]openapi.TagGroup)
		require.True(t, ok)
		assert.Equal(t, tagGroups, groups)
		assert.Contains(t, spec.Extensions, "x-logo")
	})

	t.Run("tags ordered by groups", func(t *testing.T) {
		var names []string
		for _, tag := range spec.Tags {
			names = append(names, tag.Name)
		}
		assert.Equal(t, []string{"Core", "User Information", "Relationships", "Bots"}, names)
	})
}

func TestCompose_PathCardinality(t *testing.T) {
	result, err := apidoc.Compose(meta, tags, tagGroups, mounts())
	require.NoError(t, err)

	operations := 0
	for _, item := range result.Spec.Paths {
		for _, method := range routes.Methods {
			if item.Lookup(method) != nil {
				operations++
			}
		}
	}

	visible := 0
	for _, m := range mounts() {
		for _, r := range m.Group.Routes {
			if !r.Hidden {
				visible++
			}
		}
	}
	assert.Equal(t, visible, operations)
}

func TestCompose_Deterministic(t *testing.T) {
	first, err := apidoc.Compose(meta, tags, tagGroups, mounts())
	require.NoError(t, err)
	second, err := apidoc.Compose(meta, tags, tagGroups, mounts())
	require.NoError(t, err)

	a, err := openapi.MarshalJSON(first.Spec)
	require.NoError(t, err)
	b, err := openapi.MarshalJSON(second.Spec)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestCompose_DoesNotMutateInputs(t *testing.T) {
	ms := mounts()
	before, err := json.Marshal(ms[1].Group.Routes[1].OpenAPI)
	require.NoError(t, err)

	_, err = apidoc.Compose(meta, tags, tagGroups, ms)
	require.NoError(t, err)

	after, err := json.Marshal(ms[1].Group.Routes[1].OpenAPI)
	require.NoError(t, err)
	assert.JSONEq(t, string(before), string(after))
	assert.Empty(t, ms[1].Group.Routes[1].OpenAPI.Tags)
	assert.Empty(t, ms[1].Group.Routes[1].OpenAPI.Parameters)
}

func TestCompose_RepeatedTags(t *testing.T) {
	ms := mounts()
	ms[0].Group.Routes[0].OpenAPI = &openapi.Operation{
		Summary: "Query Node",
		Tags:    []string{"Core", "Core"},
	}
	ms[1].Group.Routes[2].OpenAPI.Tags = []string{"Relationships", "User Information", "Relationships"}
	ms[2].Group.Tags = []string{"Bots", "Bots"}

	result, err := apidoc.Compose(meta, tags, tagGroups, ms)
	require.NoError(t, err)

	paths := result.Spec.Paths
	assert.Equal(t, []string{"Core"}, paths["/"].Get.Tags)
	assert.Equal(t, []string{"Relationships", "User Information"}, paths["/users/{target}/friend"].Put.Tags)
	assert.Equal(t, []string{"Bots"}, paths["/bots/{bot}"].Get.Tags)
}

func TestCompose_UnknownTag(t *testing.T) {
	ms := mounts()
	ms[2].Group.Tags = []string{"Robots"}

	_, err := apidoc.Compose(meta, tags, tagGroups, ms)
	require.ErrorIs(t, err, apidoc.ErrUnknownTag)
	assert.Contains(t, err.Error(), "Robots")
}

func TestCompose_UnknownTagInGroup(t *testing.T) {
	groups := append([]openapi.TagGroup{}, tagGroups...)
	groups = append(groups, openapi.TagGroup{Name: "Extra", Tags: []string{"Missing"}})

	_, err := apidoc.Compose(meta, tags, groups, mounts())
	assert.ErrorIs(t, err, apidoc.ErrUnknownTag)
}

func TestCompose_DuplicatePath(t *testing.T) {
	ms := mounts()
	ms = append(ms, routes.Mount{Prefix: "/users", Group: routes.Group{
		Name: "again",
		Tags: []string{"User Information"},
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/@me", Handler: noop},
		},
	}})

	_, err := apidoc.Compose(meta, tags, tagGroups, ms)
	require.ErrorIs(t, err, apidoc.ErrDuplicatePath)
	assert.Contains(t, err.Error(), "GET /users/@me")
}

func TestCompose_DuplicateTag(t *testing.T) {
	dup := append([]openapi.Tag{}, tags...)
	dup = append(dup, openapi.Tag{Name: "Bots", Description: "Bots"})

	_, err := apidoc.Compose(meta, dup, tagGroups, mounts())
	require.NoError(t, err, "identical redeclaration is deduplicated")

	dup = append(dup, openapi.Tag{Name: "Bots", Description: "Automated accounts"})
	_, err = apidoc.Compose(meta, dup, tagGroups, mounts())
	assert.ErrorIs(t, err, apidoc.ErrDuplicateTag)
}

func TestCompose_SchemaConflict(t *testing.T) {
	ms := mounts()
	ms[2].Group.Schemas = map[string]*openapi.Schema{
		"User": {Type: "string"},
	}

	_, err := apidoc.Compose(meta, tags, tagGroups, ms)
	assert.ErrorIs(t, err, apidoc.ErrSchemaConflict)

	ms[2].Group.Schemas = map[string]*openapi.Schema{
		"User": {Type: "object", Properties: map[string]*openapi.Schema{"_id": {Type: "string"}}},
	}
	_, err = apidoc.Compose(meta, tags, tagGroups, ms)
	assert.NoError(t, err)
}

func TestCompose_UngroupedTags(t *testing.T) {
	all := append([]openapi.Tag{}, tags...)
	all = append(all,
		openapi.Tag{Name: "Unused", Description: "Declared only"},
		openapi.Tag{Name: "Voice", Description: "Calls"},
	)

	ms := mounts()
	ms = append(ms, routes.Mount{Prefix: "/voice", Group: routes.Group{
		Name: "voice",
		Tags: []string{"Voice"},
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/join", Handler: noop},
		},
	}})

	result, err := apidoc.Compose(meta, all, tagGroups, ms)
	require.NoError(t, err)

	require.Len(t, result.Warnings, 1)
	assert.Equal(t, apidoc.WarnUngroupedTag, result.Warnings[0].Code)
	assert.Equal(t, "Voice", result.Warnings[0].Tag)

	var names []string
	for _, tag := range result.Spec.Tags {
		names = append(names, tag.Name)
	}
	assert.Equal(t, []string{"Core", "User Information", "Relationships", "Bots", "Voice", "Unused"}, names)
}

func TestCompose_TagInMultipleGroups(t *testing.T) {
	groups := append([]openapi.TagGroup{}, tagGroups...)
	groups = append(groups, openapi.TagGroup{Name: "Automation", Tags: []string{"Bots"}})

	result, err := apidoc.Compose(meta, tags, groups, mounts())
	require.NoError(t, err)
	assert.True(t, result.Warnings.Has(apidoc.WarnTagInMultipleGroups))
	assert.False(t, result.Warnings.Has(apidoc.WarnUngroupedTag))
}

func TestCompose_ReservedExtension(t *testing.T) {
	m := meta
	m.Extensions = map[string]any{apidoc.TagGroupsExtension: []string{}}

	_, err := apidoc.Compose(m, tags, tagGroups, mounts())
	assert.ErrorIs(t, err, apidoc.ErrInvalidExtension)

	m.Extensions = map[string]any{"logo": "nope"}
	_, err = apidoc.Compose(m, tags, tagGroups, mounts())
	assert.ErrorIs(t, err, apidoc.ErrInvalidExtension)
}

func TestCompose_MissingTitle(t *testing.T) {
	_, err := apidoc.Compose(apidoc.Metadata{Info: &openapi.Info{}}, tags, tagGroups, nil)
	assert.ErrorIs(t, err, apidoc.ErrInvalidMetadata)
}
