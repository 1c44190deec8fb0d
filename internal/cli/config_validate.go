package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rshade/bisko/internal/bisko"
	"github.com/rshade/bisko/internal/config"
	"github.com/rshade/bisko/internal/refdata"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the effective configuration (global file, project overlay and
environment overrides) for semantic correctness.

This includes:
- output format and precision
- logging level and format
- engine concurrency and cache TTL
- readability of the configured facts and assumptions tables, and that they
  hold every fact and assumption the transport sector reads`,
		Example: `  # Validate current configuration
  bisko config validate

  # Validate a specific file and show details
  bisko --config ./bisko.yaml config validate --verbose`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

// runConfigValidate executes the configuration validation logic.
func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	cfg := config.GetGlobalConfig()

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	if cfg.Data.Facts != "" || cfg.Data.Assumptions != "" {
		fa, err := loadReference(cfg.Data.Facts, cfg.Data.Assumptions)
		if err != nil {
			return fmt.Errorf("configuration validation failed: %w", err)
		}
		if err := checkReferenceKeys(fa); err != nil {
			return fmt.Errorf("configuration validation failed: %w", err)
		}
		if verbose {
			printTableDetails(cmd, fa)
		}
	}

	cmd.Printf("Configuration is valid\n")

	if verbose {
		printVerboseDetails(cmd, cfg)
	}

	return nil
}

// checkReferenceKeys looks up every fact and assumption the engine reads and
// joins the failures.
func checkReferenceKeys(lookup refdata.Lookup) error {
	var errs []error
	for _, key := range bisko.TransportFactKeys() {
		if _, err := lookup.Fact(key); err != nil {
			errs = append(errs, err)
		}
	}
	for _, key := range bisko.TransportAssumptionKeys() {
		if _, err := lookup.Ass(key); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func printTableDetails(cmd *cobra.Command, lookup refdata.Lookup) {
	fa, ok := lookup.(*refdata.FactsAndAssumptions)
	if !ok {
		return
	}
	facts, assumptions := fa.Tables()
	cmd.Printf("Reference tables: %d facts, %d assumptions\n", facts.Len(), assumptions.Len())
}

// printVerboseDetails prints detailed configuration information.
func printVerboseDetails(cmd *cobra.Command, cfg *config.Config) {
	cmd.Println()
	cmd.Println("Configuration details:")
	cmd.Printf("  Config file: %s\n", cfg.ConfigPath())
	if dir := config.GetResolvedProjectDir(); dir != "" {
		cmd.Printf("  Project dir: %s\n", dir)
	}
	cmd.Printf("  Output format: %s\n", cfg.Output.DefaultFormat)
	cmd.Printf("  Output precision: %d\n", cfg.Output.Precision)
	cmd.Printf("  Logging level: %s\n", cfg.Logging.Level)
	cmd.Printf("  Log file: %s\n", cfg.Logging.File)
	cmd.Printf("  Parallel sectors: %t (concurrency %d)\n", cfg.Calc.Parallel, cfg.Calc.Concurrency)
	cmd.Printf("  Cache: %t (ttl %ds)\n", cfg.Cache.Enabled, cfg.Cache.TTLSeconds)
}

// NewConfigShowCmd creates the config show command, which prints the
// effective configuration as YAML.
func NewConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Example: `  bisko config show
  BISKO_OUTPUT_FORMAT=json bisko config show`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2) //nolint:mnd // YAML indentation.
			if err := enc.Encode(config.GetGlobalConfig()); err != nil {
				return fmt.Errorf("encoding configuration: %w", err)
			}
			return enc.Close()
		},
	}
}
