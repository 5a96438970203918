package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/textsoap/soap/internal/model"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage soap configuration",
	Long: `Manage soap configuration files and settings.

Settings are resolved in order: CLI flags, environment variables
(SOAP_*), the config file (~/.soap/config.yaml), built-in defaults.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if file := viper.ConfigFileUsed(); file != "" {
			fmt.Fprintf(os.Stderr, "Configuration file: %s\n", file)
		} else {
			fmt.Fprintln(os.Stderr, "No configuration file found (using defaults)")
		}

		data, err := yaml.Marshal(model.DefaultConfig())
		if err != nil {
			return fmt.Errorf("marshal config: %w", err)
		}
		fmt.Print(string(data))
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file to ~/.soap/config.yaml",
	RunE: func(cmd *cobra.Command, args []string) error {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("find home directory: %w", err)
		}
		configPath := filepath.Join(home, ".soap", "config.yaml")

		if _, err := os.Stat(configPath); err == nil {
			return fmt.Errorf("config file already exists: %s", configPath)
		}

		if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}

		data, err := yaml.Marshal(model.DefaultConfig())
		if err != nil {
			return fmt.Errorf("marshal config: %w", err)
		}

		header := "# soap configuration. Flags and SOAP_* environment variables\n" +
			"# override these values. Keep API keys out of this file:\n" +
			"#   export OPENAI_API_KEY=sk-...\n" +
			"#   export OLLAMA_BASE_URL=http://localhost:11434\n"
		if err := os.WriteFile(configPath, append([]byte(header), data...), 0644); err != nil {
			return fmt.Errorf("write config file: %w", err)
		}

		fmt.Printf("Created %s\n", configPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}
