package openapi

import "os"

// ConfigEnv maps environment variable names for document metadata overrides.
type ConfigEnv struct {
	Title          string
	Description    string
	Version        string
	TermsOfService string
}

// Config holds the static metadata published at the top of the API document.
type Config struct {
	Title          string             `toml:"title"`
	Description    string             `toml:"description"`
	Version        string             `toml:"version"`
	TermsOfService string             `toml:"terms_of_service"`
	Contact        ContactConfig      `toml:"contact"`
	License        LicenseConfig      `toml:"license"`
	Servers        []ServerConfig     `toml:"servers"`
	ExternalDocs   ExternalDocsConfig `toml:"external_docs"`
	Logo           LogoConfig         `toml:"logo"`
}

type ContactConfig struct {
	Name  string `toml:"name"`
	URL   string `toml:"url"`
	Email string `toml:"email"`
}

type LicenseConfig struct {
	Name string `toml:"name"`
	URL  string `toml:"url"`
}

type ServerConfig struct {
	URL         string `toml:"url"`
	Description string `toml:"description"`
}

type ExternalDocsConfig struct {
	URL         string `toml:"url"`
	Description string `toml:"description"`
}

// LogoConfig feeds the x-logo extension understood by ReDoc-style renderers.
type LogoConfig struct {
	URL     string `toml:"url"`
	AltText string `toml:"alt_text"`
}

// Finalize applies defaults and loads environment overrides.
func (c *Config) Finalize(env *ConfigEnv) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return nil
}

// Info projects the configuration onto the document info object.
func (c *Config) Info() *Info {
	info := &Info{
		Title:          c.Title,
		Description:    c.Description,
		TermsOfService: c.TermsOfService,
		Version:        c.Version,
	}
	if c.Contact != (ContactConfig{}) {
		info.Contact = &Contact{Name: c.Contact.Name, URL: c.Contact.URL, Email: c.Contact.Email}
	}
	if c.License.Name != "" {
		info.License = &License{Name: c.License.Name, URL: c.License.URL}
	}
	return info
}

// ServerList projects the configured servers onto document servers.
func (c *Config) ServerList() []*Server {
	servers := make([]*Server, 0, len(c.Servers))
	for _, s := range c.Servers {
		servers = append(servers, &Server{URL: s.URL, Description: s.Description})
	}
	return servers
}

// Docs returns the external documentation link, or nil when unset.
func (c *Config) Docs() *ExternalDocs {
	if c.ExternalDocs.URL == "" {
		return nil
	}
	return &ExternalDocs{URL: c.ExternalDocs.URL, Description: c.ExternalDocs.Description}
}

// Extensions returns the configured document extensions.
func (c *Config) Extensions() map[string]any {
	ext := make(map[string]any)
	if c.Logo.URL != "" {
		ext["x-logo"] = map[string]string{
			"url":     c.Logo.URL,
			"altText": c.Logo.AltText,
		}
	}
	return ext
}

func (c *Config) loadDefaults() {
	if c.Title == "" {
		c.Title = "Revolt API"
	}
	if c.Description == "" {
		c.Description = "User-first privacy focused chat platform."
	}
	if c.Version == "" {
		c.Version = "0.5.3-rc.1"
	}
	if c.TermsOfService == "" {
		c.TermsOfService = "https://revolt.chat/terms"
	}
	if c.Contact == (ContactConfig{}) {
		c.Contact = ContactConfig{
			Name:  "Revolt Support",
			URL:   "https://revolt.chat",
			Email: "contact@revolt.chat",
		}
	}
	if c.License.Name == "" {
		c.License = LicenseConfig{
			Name: "AGPLv3",
			URL:  "https://github.com/revoltchat/delta/blob/master/LICENSE",
		}
	}
	if len(c.Servers) == 0 {
		c.Servers = []ServerConfig{
			{URL: "https://api.revolt.chat", Description: "Revolt API"},
			{URL: "http://local.revolt.chat:8000", Description: "Local Revolt Environment"},
		}
	}
	if c.ExternalDocs.URL == "" {
		c.ExternalDocs = ExternalDocsConfig{
			URL:         "https://developers.revolt.chat",
			Description: "Revolt Developer Documentation",
		}
	}
	if c.Logo.URL == "" {
		c.Logo = LogoConfig{
			URL:     "https://revolt.chat/header.png",
			AltText: "Revolt Header",
		}
	}
}

func (c *Config) loadEnv(env *ConfigEnv) {
	if env.Title != "" {
		if v := os.Getenv(env.Title); v != "" {
			c.Title = v
		}
	}
	if env.Description != "" {
		if v := os.Getenv(env.Description); v != "" {
			c.Description = v
		}
	}
	if env.Version != "" {
		if v := os.Getenv(env.Version); v != "" {
			c.Version = v
		}
	}
	if env.TermsOfService != "" {
		if v := os.Getenv(env.TermsOfService); v != "" {
			c.TermsOfService = v
		}
	}
}
