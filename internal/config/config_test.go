package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"upstream_url": "https://talento.example.com",
		"database_url": "postgres://localhost:5432/talentohub",
		"port": 8090,
		"timeout_seconds": 15,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "https://talento.example.com", cfg.UpstreamURL)
	assert.Equal(t, "postgres://localhost:5432/talentohub", cfg.DatabaseURL)
	assert.Equal(t, 8090, cfg.Port)
	assert.Equal(t, 15, cfg.TimeoutSeconds)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_BadUpstreamURL(t *testing.T) {
	cfg := &Config{UpstreamURL: "ftp://talento.example.com"}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "upstream_url")
}

func TestValidate_NegativeTimeout(t *testing.T) {
	cfg := &Config{TimeoutSeconds: -1}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "timeout_seconds")
}

func TestValidate_BadPort(t *testing.T) {
	cfg := &Config{Port: 70000}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "port")
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Port: 9000}
	defaults := Config{
		UpstreamURL:    "https://talento.example.com",
		Port:           8080,
		TimeoutSeconds: 30,
	}

	merged := cfg.MergeWithDefaults(defaults)
	assert.Equal(t, 9000, merged.Port)
	assert.Equal(t, "https://talento.example.com", merged.UpstreamURL)
	assert.Equal(t, 30, merged.TimeoutSeconds)
}

func TestCredentialsRoundTrip(t *testing.T) {
	t.Setenv("TALENTOHUB_HOME", t.TempDir())

	creds, err := LoadCredentials()
	require.NoError(t, err)
	assert.Nil(t, creds)

	err = SaveCredentials(&Credentials{Token: "tok-123", Email: "ana@x.com"})
	require.NoError(t, err)

	creds, err = LoadCredentials()
	require.NoError(t, err)
	require.NotNil(t, creds)
	assert.Equal(t, "tok-123", creds.Token)
	assert.Equal(t, "ana@x.com", creds.Email)

	require.NoError(t, ClearCredentials())
	creds, err = LoadCredentials()
	require.NoError(t, err)
	assert.Nil(t, creds)

	// Clearing twice is fine
	require.NoError(t, ClearCredentials())
}

func TestNewJWTConfig(t *testing.T) {
	t.Setenv("JWT_SECRET", "secreto-de-prueba")
	t.Setenv("JWT_EXPIRATION_HOURS", "")

	cfg, err := NewJWTConfig()
	require.NoError(t, err)
	assert.Equal(t, "secreto-de-prueba", cfg.Secret)
	assert.Equal(t, 24, cfg.ExpirationHours)
}

func TestNewJWTConfig_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	cfg, err := NewJWTConfig()
	assert.Error(t, err)
	assert.Nil(t, cfg)
}
