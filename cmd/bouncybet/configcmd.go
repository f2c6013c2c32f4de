package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/bouncybet/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective physics tuning",
	Long: `Print the tuning that 'play' and 'serve' would use, as YAML.

The output can be saved to ~/.bouncybet/configs/bouncybet.yaml and edited.

Examples:
  bouncybet config
  bouncybet config --defaults > bouncybet.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults with comments")
}

func runConfig(cmd *cobra.Command, _ []string) {
	if flagDefaults {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	tuning, err := config.LoadTuning(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading tuning: %v\n", err)
		os.Exit(1)
	}

	out, err := yaml.Marshal(tuning)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding tuning: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(out)
}
