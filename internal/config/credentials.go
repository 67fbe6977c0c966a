package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Credentials is the CLI's stored bearer token for the gateway. It is
// cleared on logout and whenever the gateway rejects the token.
type Credentials struct {
	Token string `json:"token"`
	Email string `json:"email,omitempty"`
}

// credentialsPath returns the on-disk location of the credentials file,
// ~/.talentohub/credentials.json by default.
func credentialsPath() (string, error) {
	if dir := os.Getenv("TALENTOHUB_HOME"); dir != "" {
		return filepath.Join(dir, "credentials.json"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}
	return filepath.Join(home, ".talentohub", "credentials.json"), nil
}

// SaveCredentials writes the credentials file, creating its directory if
// needed. The file is private to the user.
func SaveCredentials(creds *Credentials) error {
	path, err := credentialsPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create credentials directory: %w", err)
	}

	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode credentials: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write credentials file: %w", err)
	}
	return nil
}

// LoadCredentials reads the stored credentials. A missing file yields
// nil credentials and no error.
func LoadCredentials() (*Credentials, error) {
	path, err := credentialsPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("failed to parse credentials file: %w", err)
	}
	if creds.Token == "" {
		return nil, nil
	}
	return &creds, nil
}

// ClearCredentials removes the stored credentials. Clearing when nothing
// is stored is not an error.
func ClearCredentials() error {
	path, err := credentialsPath()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove credentials file: %w", err)
	}
	return nil
}
