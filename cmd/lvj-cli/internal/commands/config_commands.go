package commands

import (
	"fmt"

	"github.com/Khaledaun/LVJAPP/internal/pkg/config"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Output formats of config show.
const (
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// renderConfig prints cfg with credentials masked. TOML output reuses the YAML keys.
func renderConfig(cfg *config.RestConfig, format string) ([]byte, error) {
	redacted := cfg.Redacted()

	data, err := yaml.Marshal(&redacted)
	if err != nil {
		return nil, fmt.Errorf("failed to render config as yaml: %w", err)
	}

	switch format {
	case FormatYAML:
		return data, nil
	case FormatTOML:
		var tree map[string]interface{}
		if err := yaml.Unmarshal(data, &tree); err != nil {
			return nil, fmt.Errorf("failed to convert config: %w", err)
		}
		out, err := toml.Marshal(tree)
		if err != nil {
			return nil, fmt.Errorf("failed to render config as toml: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported format %q (want %s or %s)", format, FormatYAML, FormatTOML)
	}
}

func initConfigCommands(rootCmd *cobra.Command, env *environment) {
	var configCmd = &cobra.Command{
		Use:   "config",
		Short: "Inspect the effective configuration",
	}

	var showCmd = &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration with secrets masked",
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, _ := cmd.Flags().GetString("format")

			if err := env.load(); err != nil {
				return err
			}

			out, err := renderConfig(env.cfg, format)
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	showCmd.Flags().StringP("format", "", FormatYAML, "Output format: yaml or toml")
	configCmd.AddCommand(showCmd)

	rootCmd.AddCommand(configCmd)
}
