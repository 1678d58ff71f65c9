// file: internal/config/config.go
// version: 1.1.0
// guid: 0b1c2d3e-4f5a-6b7c-8d9e-0f1a2b3c4d5e

package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	APIBaseURL string
	Language   string
	StateDir   string // durable client state: auth token, language choice
	LangDir    string // optional on-disk language catalog overrides
}

var AppConfig Config

// InitConfig initializes the application configuration
func InitConfig() {
	viper.SetDefault("api_url", "http://localhost:5000")
	viper.SetDefault("language", "en")

	AppConfig = Config{
		APIBaseURL: viper.GetString("api_url"),
		Language:   viper.GetString("language"),
		StateDir:   viper.GetString("state_dir"),
		LangDir:    viper.GetString("lang_dir"),
	}

	if AppConfig.StateDir == "" {
		AppConfig.StateDir = defaultStateDir()
	}
	if AppConfig.Language == "" {
		AppConfig.Language = "en"
	}
}

func defaultStateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".library-console"
	}
	return filepath.Join(home, ".library-console")
}
