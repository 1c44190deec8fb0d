package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/bisko/internal/config"
	"github.com/rshade/bisko/internal/engine/cache"
	"github.com/rshade/bisko/internal/logging"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the bisko CLI.
// It loads the configuration, wires up logging and tracing, and registers
// the calc, batch, diff and config subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:          "bisko",
		Short:        "BISKO greenhouse gas balances for municipalities",
		Long:         "bisko computes BISKO energy and emission balances from influence balance documents.",
		Version:      ver,
		Example:      rootCmdExample,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(cmd); err != nil {
				return err
			}
			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return cleanupLogging(logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "configuration file (default $BISKO_HOME/config.yaml)")
	cmd.PersistentFlags().String("project-dir", "", "project directory holding a .bisko config overlay")
	cmd.PersistentFlags().
		String("cache-ttl", "", "result cache TTL in seconds or as a duration such as 6h (overrides config)")
	cmd.AddCommand(NewCalcCmd(), NewBatchCmd(), NewDiffCmd(), newConfigCmd())

	return cmd
}

// loadConfig resolves the configuration for this invocation: --config when
// given, otherwise the global file merged with the project overlay, then
// the --cache-ttl override.
func loadConfig(cmd *cobra.Command) error {
	ctx := cmd.Context()

	var cfg *config.Config
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := config.NewFromFile(path)
		if err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}
		cfg = loaded
		config.SetResolvedProjectDir("")
	} else {
		flagDir, _ := cmd.Flags().GetString("project-dir")
		cwd, err := os.Getwd()
		if err != nil {
			cwd = "."
		}
		projectDir := config.ResolveProjectDir(ctx, flagDir, cwd)
		config.SetResolvedProjectDir(projectDir)
		cfg = config.NewWithProjectDir(ctx, projectDir)
	}

	if ttl, _ := cmd.Flags().GetString("cache-ttl"); ttl != "" {
		seconds, err := cache.ParseTTL(ttl)
		if err != nil {
			return fmt.Errorf("invalid --cache-ttl: %w", err)
		}
		cfg.Cache.TTLSeconds = seconds
	}

	config.SetGlobalConfig(cfg)
	return nil
}

const rootCmdExample = `  # Compute a region's balance and browse it
  bisko calc --input goettingen.yaml

  # Use reference tables and write JSON
  bisko calc --input goettingen.yaml --facts facts.csv --assumptions assumptions.csv -o json

  # Export a spreadsheet
  bisko calc --input goettingen.yaml -o xlsx --out goettingen.xlsx

  # Compute every document in a directory
  bisko batch --dir regions/ --concurrency 8 --out-dir results/

  # Compare a result with a reference dump
  bisko diff result.json expected.json --rel 1e-6

  # Initialize configuration
  bisko config init`

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigValidateCmd(), NewConfigShowCmd())
	return cmd
}
