package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "console.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
baseUrl: https://vtn.example/openadr3/3.0.1
oauth:
  tokenUrl: https://vtn.example/auth/token
  clientId: ven-1
  clientSecret: hunter2
  scopes: [read_all, write_reports]
tokenCache: /tmp/oadr-token.json
wireLog: /tmp/oadr-wire.jsonl
`), 0o644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "https://vtn.example/openadr3/3.0.1", cfg.BaseURL)
	assert.Equal(t, "https://vtn.example/auth/token", cfg.OAuth.TokenURL)
	assert.Equal(t, "ven-1", cfg.OAuth.ClientID)
	assert.Equal(t, []string{"read_all", "write_reports"}, cfg.OAuth.Scopes)
	assert.Equal(t, "/tmp/oadr-wire.jsonl", cfg.WireLog)
}

func TestLoadConfig_Missing(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("OADR_BASE_URL", "http://localhost:8080")
	t.Setenv("OADR_CLIENT_SECRET", "from-env")

	cfg := &Config{BaseURL: "https://vtn.example", OAuth: OAuthConfig{ClientSecret: "from-file"}}
	cfg.applyEnv()

	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
	assert.Equal(t, "from-env", cfg.OAuth.ClientSecret)
}
