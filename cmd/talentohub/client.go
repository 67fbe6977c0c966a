package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/JavierGuerrero99/talento-hub/internal/config"
	"github.com/JavierGuerrero99/talento-hub/internal/upstream"
)

// upstreamBaseURL resolves the backend URL from flag, config file or
// environment, in that order.
func upstreamBaseURL(flagValue, configPath string) (string, time.Duration, error) {
	cfg := config.Config{UpstreamURL: flagValue}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return "", 0, err
		}
		if err := loaded.Validate(); err != nil {
			return "", 0, err
		}
		cfg = cfg.MergeWithDefaults(*loaded)
	}
	cfg = cfg.MergeWithDefaults(config.FromEnv())

	if cfg.UpstreamURL == "" {
		return "", 0, fmt.Errorf("no hay URL del backend: usa --upstream-url o la variable UPSTREAM_URL")
	}
	return cfg.UpstreamURL, time.Duration(cfg.TimeoutSeconds) * time.Second, nil
}

// newClient builds an unauthenticated upstream client.
func newClient(baseURL string, timeout time.Duration) *upstream.Client {
	opts := upstream.DefaultOptions()
	if timeout > 0 {
		opts.Timeout = timeout
	}
	return upstream.New(baseURL, opts)
}

// authedClient builds a client carrying the stored access token.
func authedClient(baseURL string, timeout time.Duration) (*upstream.Client, error) {
	creds, err := config.LoadCredentials()
	if err != nil {
		return nil, err
	}
	if creds == nil {
		return nil, fmt.Errorf("no has iniciado sesión: ejecuta 'talentohub login'")
	}
	return newClient(baseURL, timeout).WithToken(creds.Token), nil
}

// reportError prints one short message per failure path. A 401 clears
// the stored token so the next command asks for a fresh login.
func reportError(err error) error {
	if errors.Is(err, upstream.ErrUnauthorized) {
		if clearErr := config.ClearCredentials(); clearErr != nil {
			fmt.Fprintf(os.Stderr, "Aviso: no se pudo limpiar la sesión local: %v\n", clearErr)
		}
		return fmt.Errorf("la sesión expiró; inicia sesión de nuevo")
	}
	var upErr *upstream.Error
	if errors.As(err, &upErr) {
		return fmt.Errorf("el servidor de Talento-Hub no respondió correctamente")
	}
	return err
}
