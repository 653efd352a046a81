package main

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/microarcade/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config <name>",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game or the gauntlet would run with, as YAML.

Configs are looked up in this order:
  1. --config <path>
  2. ~/.arcade/configs/<name>.yaml
  3. ./configs/<name>.yaml
  4. built-in defaults

Values missing from a file keep their defaults, so the output is a good
starting point for a custom config.

Examples:
  arcade config dodge
  arcade config gauntlet > ~/.arcade/configs/gauntlet.yaml
  arcade config water --config ./my-water.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
}

func runConfig(_ *cobra.Command, args []string) error {
	name := args[0]
	if !slices.Contains(config.Names(), name) {
		return fmt.Errorf("unknown config %q, expected one of: %s", name, strings.Join(config.Names(), ", "))
	}

	out, err := config.Effective(name, flagConfig)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(out)
	return err
}
