package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/coerce/cmd/coerce/commands"
	"github.com/teranos/coerce/logger"
)

var (
	jsonOutput bool
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "coerce",
	Short: "Inspect the runtime type-coercion convention",
	Long: `coerce - developer tooling for the runtime type-coercion convention.

Types participate in coercion by defining methods that follow a naming
convention: a push method ("__as_" + flattened target name) declares that
a type can become the target, a pull method ("__from_" + flattened source
name) declares that a type accepts a source. This CLI derives those names,
validates identifiers, and dry-runs conversion resolution over a TOML
type manifest.

Examples:
  coerce names Math::Vector        # Derive the conversion method names
  coerce check type Math::Vector   # Validate a type name
  coerce check method _Vector      # Validate a method name
  coerce plan -m types.toml        # Resolve every declared type pair`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := logger.Initialize(jsonOutput); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger.SetDebug(verbose)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output machine-readable JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(commands.NamesCmd)
	rootCmd.AddCommand(commands.CheckCmd)
	rootCmd.AddCommand(commands.PlanCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
