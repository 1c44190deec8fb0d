package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/bisko/internal/engine"
	"github.com/rshade/bisko/internal/logging"
)

// DiffExitError is returned by the diff command when the trees differ. The
// process exits with ExitCode instead of the generic failure code.
type DiffExitError struct {
	ExitCode    int
	Differences int
}

func (e *DiffExitError) Error() string {
	return fmt.Sprintf("%d difference(s) found", e.Differences)
}

// NewDiffCmd creates the diff command, which compares two result dumps.
func NewDiffCmd() *cobra.Command {
	var rel float64

	cmd := &cobra.Command{
		Use:   "diff ACTUAL EXPECTED",
		Short: "Compare two BISKO result dumps",
		Long: `Compares two JSON or YAML result trees leaf by leaf. Numbers match when they are
within the relative tolerance of each other or both below 1e-12; NaN matches NaN.
Keys present on one side only are reported against "nothing".`,
		Example: `  bisko diff result.json expected.json
  bisko diff result.json expected.json --rel 1e-6`,
		Args: cobra.ExactArgs(2), //nolint:mnd // ACTUAL and EXPECTED.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd, args[0], args[1], rel)
		},
	}

	cmd.Flags().Float64Var(&rel, "rel", engine.DefaultRelTolerance, "relative tolerance for numeric leaves")

	return cmd
}

func runDiff(cmd *cobra.Command, actualPath, expectedPath string, rel float64) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	if rel < 0 {
		return fmt.Errorf("--rel must be >= 0, got %g", rel)
	}

	diffs, err := engine.DiffFiles(actualPath, expectedPath, rel)
	if err != nil {
		return fmt.Errorf("comparing results: %w", err)
	}

	log.Debug().
		Ctx(ctx).
		Str("actual", actualPath).
		Str("expected", expectedPath).
		Int("differences", len(diffs)).
		Msg("diff complete")

	out := cmd.OutOrStdout()
	if len(diffs) == 0 {
		fmt.Fprintln(out, "no differences")
		return nil
	}
	for _, d := range diffs {
		fmt.Fprintln(out, d.String())
	}
	return &DiffExitError{ExitCode: 1, Differences: len(diffs)}
}
