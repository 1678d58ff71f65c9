// file: cmd/root.go
// version: 1.2.0
// guid: 6f7a8b9c-0d1e-2f3a-4b5c-6d7e8f9a0b1c

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jdfalk/library-console/internal/api"
	"github.com/jdfalk/library-console/internal/config"
	"github.com/jdfalk/library-console/internal/i18n"
)

var cfgFile string
var apiURL string
var langCode string
var stateDir string
var langDir string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "library-console",
	Short: "Administer a library catalog backend from the terminal",
	Long: `Library Console is a terminal client for the library management API.

It browses and edits the book catalog, members, categories and
publishers, handles issue/return workflows and bulk operations, and
imports or exports the catalog as CSV.`,
}

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.library-console.yaml)")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "base URL of the library backend")
	rootCmd.PersistentFlags().StringVar(&langCode, "lang", "", "display language (en, ar)")
	rootCmd.PersistentFlags().StringVar(&stateDir, "state-dir", "", "directory for persisted client state")
	rootCmd.PersistentFlags().StringVar(&langDir, "lang-dir", "", "directory with language catalog overrides")

	viper.BindPFlag("api_url", rootCmd.PersistentFlags().Lookup("api-url"))
	viper.BindPFlag("language", rootCmd.PersistentFlags().Lookup("lang"))
	viper.BindPFlag("state_dir", rootCmd.PersistentFlags().Lookup("state-dir"))
	viper.BindPFlag("lang_dir", rootCmd.PersistentFlags().Lookup("lang-dir"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".library-console")
	}

	viper.SetEnvPrefix("LIBRARY_CONSOLE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}

	config.InitConfig()
}

// newClient builds an API client carrying the persisted token, if any.
func newClient() *api.Client {
	client := api.NewClient(config.AppConfig.APIBaseURL)
	if token := config.LoadToken(); token != "" {
		client.SetToken(token)
	}
	return client
}

// newTranslator loads the persisted (or flag-selected) language.
func newTranslator() (*i18n.Translator, error) {
	tr := i18n.New(config.AppConfig.LangDir, config.SaveLanguage)
	code := config.AppConfig.Language
	if persisted := config.LoadLanguage(); langCode == "" && persisted != "" {
		code = persisted
	}
	if err := tr.Load(code); err != nil {
		return nil, fmt.Errorf("failed to load language %q: %w", code, err)
	}
	return tr, nil
}
