package main

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JavierGuerrero99/talento-hub/internal/config"
	"github.com/JavierGuerrero99/talento-hub/internal/upstream"
)

func TestCommandsRegistered(t *testing.T) {
	expected := []string{"serve", "login", "logout", "vacancies", "applications", "comment", "set-status", "favorite", "export"}

	registered := map[string]bool{}
	for _, cmd := range rootCmd.Commands() {
		registered[cmd.Name()] = true
	}

	for _, name := range expected {
		assert.True(t, registered[name], "command %q should be registered", name)
	}
}

func TestUpstreamBaseURL_FlagWins(t *testing.T) {
	t.Setenv("UPSTREAM_URL", "https://env.example.com")

	url, _, err := upstreamBaseURL("https://flag.example.com", "")
	require.NoError(t, err)
	assert.Equal(t, "https://flag.example.com", url)
}

func TestUpstreamBaseURL_EnvFallback(t *testing.T) {
	t.Setenv("UPSTREAM_URL", "https://env.example.com")

	url, _, err := upstreamBaseURL("", "")
	require.NoError(t, err)
	assert.Equal(t, "https://env.example.com", url)
}

func TestUpstreamBaseURL_ConfigFile(t *testing.T) {
	t.Setenv("UPSTREAM_URL", "")

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"upstream_url": "https://file.example.com", "timeout_seconds": 5}`), 0644))

	url, timeout, err := upstreamBaseURL("", path)
	require.NoError(t, err)
	assert.Equal(t, "https://file.example.com", url)
	assert.Equal(t, "5s", timeout.String())
}

func TestUpstreamBaseURL_Missing(t *testing.T) {
	t.Setenv("UPSTREAM_URL", "")

	_, _, err := upstreamBaseURL("", "")
	assert.Error(t, err)
}

func TestAuthedClient_NoSession(t *testing.T) {
	t.Setenv("TALENTOHUB_HOME", t.TempDir())

	_, err := authedClient("https://talento.example.com", 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "login")
}

func TestReportError_ClearsCredentialsOn401(t *testing.T) {
	t.Setenv("TALENTOHUB_HOME", t.TempDir())
	require.NoError(t, config.SaveCredentials(&config.Credentials{Token: "tok"}))

	wrapped := &upstream.Error{URL: "/api/vacantes/", Message: "HTTP status 401", Cause: upstream.ErrUnauthorized}
	err := reportError(fmt.Errorf("listing vacancies: %w", wrapped))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sesión")

	creds, loadErr := config.LoadCredentials()
	require.NoError(t, loadErr)
	assert.Nil(t, creds, "credentials should be cleared after a 401")
}

func TestReportError_UpstreamFailure(t *testing.T) {
	err := reportError(&upstream.Error{URL: "/api/vacantes/", Message: "HTTP status 502"})
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "502", "raw upstream details stay out of user messages")
}
