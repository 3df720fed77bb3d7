package parsers

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
sources:
  hh:
    parse_url: https://api.hh.ru/vacancies/
    is_active: true
  superjob:
    parse_url: https://api.superjob.ru
    is_active: true
    secret_key: ${TEST_SUPERJOB_KEY}
    version: "2.33"
  farpost:
    parse_url: https://www.farpost.ru/khabarovsk/job/vacancy
    is_active: false
    user_agent: custom-agent
  vk:
    parse_url: https://api.vk.com/method/newsfeed.search
    is_active: true
    access_token: vk-token
    version: "5.95"
`

func TestLoadConfig(t *testing.T) {
	t.Setenv("TEST_SUPERJOB_KEY", "sj-secret")

	path := filepath.Join(t.TempDir(), "sources.yml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, DefaultUserAgent, cfg.UserAgent)
	assert.Equal(t, []string{"farpost", "hh", "superjob", "vk"}, cfg.Names())
	assert.Equal(t, "sj-secret", cfg.Sources[SourceSuperjob].SecretKey)
	assert.Equal(t, DefaultUserAgent, cfg.Sources[SourceHH].UserAgent)
	assert.Equal(t, "custom-agent", cfg.Sources[SourceFarpost].UserAgent)
	assert.False(t, cfg.Sources[SourceFarpost].IsActive)
}

func TestParseConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		err  error
	}{
		{"UnknownSource", "sources:\n  linkedin:\n    parse_url: https://x\n", ErrUnknownSource},
		{"MissingURL", "sources:\n  hh:\n    is_active: true\n", ErrMissingOption},
		{"UnknownField", "sources:\n  hh:\n    parse_url: https://x\n    colour: red\n", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.raw))
			require.Error(t, err)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
			}
		})
	}
}

func TestParseConfig_Empty(t *testing.T) {
	cfg, err := ParseConfig(nil)
	require.NoError(t, err)
	assert.Empty(t, cfg.Sources)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestRegistry_Select(t *testing.T) {
	t.Setenv("TEST_SUPERJOB_KEY", "sj-secret")

	cfg, err := ParseConfig([]byte(sampleConfig))
	require.NoError(t, err)

	registry, err := NewRegistry(http.DefaultClient, cfg)
	require.NoError(t, err)

	names := func(ps []Parser) []string {
		out := make([]string, 0, len(ps))
		for _, p := range ps {
			out = append(out, p.Name())
		}
		return out
	}

	all, err := registry.Select(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"hh", "superjob", "vk"}, names(all))

	some, err := registry.Select([]string{"vk", "farpost", "vk"})
	require.NoError(t, err)
	assert.Equal(t, []string{"vk"}, names(some))

	_, err = registry.Select([]string{"linkedin"})
	assert.ErrorIs(t, err, ErrUnknownSource)
}

func TestNewRegistry_InvalidSource(t *testing.T) {
	cfg := &Config{Sources: map[Source]SourceConfig{
		SourceVK: {ParseURL: "https://api.vk.com/method/newsfeed.search"},
	}}

	_, err := NewRegistry(http.DefaultClient, cfg)
	assert.ErrorIs(t, err, ErrMissingOption)
}
