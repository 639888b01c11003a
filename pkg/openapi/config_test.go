package openapi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/delta/pkg/openapi"
)

var testEnv = &openapi.ConfigEnv{
	Title:   "TEST_OPENAPI_TITLE",
	Version: "TEST_OPENAPI_VERSION",
}

func TestConfig_Finalize_Defaults(t *testing.T) {
	var cfg openapi.Config
	require.NoError(t, cfg.Finalize(nil))

	info := cfg.Info()
	assert.Equal(t, "Revolt API", info.Title)
	assert.Equal(t, "0.5.3-rc.1", info.Version)
	require.NotNil(t, info.Contact)
	assert.Equal(t, "contact@revolt.chat", info.Contact.Email)
	require.NotNil(t, info.License)
	assert.Equal(t, "AGPLv3", info.License.Name)

	servers := cfg.ServerList()
	require.Len(t, servers, 2)
	assert.Equal(t, "https://api.revolt.chat", servers[0].URL)

	require.NotNil(t, cfg.Docs())
	assert.Equal(t, "https://developers.revolt.chat", cfg.Docs().URL)

	logo, ok := cfg.Extensions()["x-logo"].(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "Revolt Header", logo["altText"])
}

func TestConfig_Finalize_KeepsValues(t *testing.T) {
	cfg := openapi.Config{
		Title:   "Custom",
		Servers: []openapi.ServerConfig{{URL: "http://localhost:8000"}},
	}
	require.NoError(t, cfg.Finalize(nil))

	assert.Equal(t, "Custom", cfg.Title)
	assert.Len(t, cfg.ServerList(), 1)
}

func TestConfig_Finalize_Env(t *testing.T) {
	t.Setenv("TEST_OPENAPI_TITLE", "From Env")
	t.Setenv("TEST_OPENAPI_VERSION", "9.9.9")

	cfg := openapi.Config{Title: "From File"}
	require.NoError(t, cfg.Finalize(testEnv))

	assert.Equal(t, "From Env", cfg.Title)
	assert.Equal(t, "9.9.9", cfg.Version)
}
