// file: internal/config/state.go
// version: 1.0.0
// guid: 1c2d3e4f-5a6b-7c8d-9e0f-1a2b3c4d5e6f

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// File names under StateDir. The token is the only credential the
// client persists; there is no server-side session beyond it.
const (
	tokenFile    = "token"
	languageFile = "language"
)

// SaveToken persists the auth token to durable client storage.
func SaveToken(token string) error {
	return writeStateFile(tokenFile, token, 0600)
}

// LoadToken returns the persisted auth token, empty when none is held.
func LoadToken() string {
	return readStateFile(tokenFile)
}

// ClearToken removes the persisted auth token, forcing re-authentication.
func ClearToken() error {
	path := filepath.Join(AppConfig.StateDir, tokenFile)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear token: %w", err)
	}
	return nil
}

// SaveLanguage persists the selected display language code.
func SaveLanguage(code string) error {
	return writeStateFile(languageFile, code, 0644)
}

// LoadLanguage returns the persisted language code, falling back to the
// configured default when none was saved.
func LoadLanguage() string {
	if code := readStateFile(languageFile); code != "" {
		return code
	}
	return AppConfig.Language
}

func writeStateFile(name, value string, mode os.FileMode) error {
	if err := os.MkdirAll(AppConfig.StateDir, 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}
	path := filepath.Join(AppConfig.StateDir, name)
	if err := os.WriteFile(path, []byte(value+"\n"), mode); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

func readStateFile(name string) string {
	data, err := os.ReadFile(filepath.Join(AppConfig.StateDir, name))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
