// file: internal/config/state_test.go
// version: 1.0.0
// guid: 6e7f8a9b-0c1d-2e3f-4a5b-6c7d8e9f0a1b

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func withTempStateDir(t *testing.T) {
	t.Helper()
	saved := AppConfig
	AppConfig.StateDir = t.TempDir()
	AppConfig.Language = "en"
	t.Cleanup(func() { AppConfig = saved })
}

func TestTokenRoundTrip(t *testing.T) {
	withTempStateDir(t)

	if got := LoadToken(); got != "" {
		t.Errorf("expected no token initially, got %q", got)
	}
	if err := SaveToken("jwt-token"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if got := LoadToken(); got != "jwt-token" {
		t.Errorf("expected jwt-token, got %q", got)
	}

	info, err := os.Stat(filepath.Join(AppConfig.StateDir, "token"))
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("token file must be 0600, got %v", info.Mode().Perm())
	}

	if err := ClearToken(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if got := LoadToken(); got != "" {
		t.Errorf("expected token cleared, got %q", got)
	}
}

func TestClearToken_MissingFileIsFine(t *testing.T) {
	withTempStateDir(t)
	if err := ClearToken(); err != nil {
		t.Errorf("clearing absent token must not fail: %v", err)
	}
}

func TestLanguagePersistence(t *testing.T) {
	withTempStateDir(t)

	if got := LoadLanguage(); got != "en" {
		t.Errorf("expected configured default, got %q", got)
	}
	if err := SaveLanguage("ar"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if got := LoadLanguage(); got != "ar" {
		t.Errorf("expected persisted ar, got %q", got)
	}
}
