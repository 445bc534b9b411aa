package cmd

import (
	"fmt"
)

func init() {
	RegisterCommand(&Command{
		Name:  "config",
		Short: "Print the resolved configuration",
		Long: `Print the configuration the other commands would use, with every default
filled in. The output is a complete config file.

Flags:
  --config FILE   YAML or TOML configuration (default: built-in palette)
  --format FMT    yaml or toml (default: yaml)`,
		Usage: "borderglow config [--config FILE] [--format yaml|toml]",
		Run:   runConfig,
	})
}

func runConfig(args []string) error {
	var cfgFile string
	format := "yaml"
	fs := flagSet{values: map[string]*string{"--config": &cfgFile, "--format": &format}}
	if _, err := fs.parse(args); err != nil {
		return err
	}
	if format != "yaml" && format != "toml" {
		return fmt.Errorf("--format must be yaml or toml, got %q", format)
	}
	cfg, err := loadConfig(cfgFile)
	if err != nil {
		return err
	}
	return cfg.Write(stdout, format)
}
