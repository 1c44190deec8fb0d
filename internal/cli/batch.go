package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/rshade/bisko/internal/config"
	"github.com/rshade/bisko/internal/engine"
	"github.com/rshade/bisko/internal/engine/batch"
	"github.com/rshade/bisko/internal/logging"
	"github.com/rshade/bisko/internal/metrics"
)

type batchParams struct {
	dir         string
	outDir      string
	facts       string
	assumptions string
	metricsFile string
	concurrency int
	sequential  bool
}

// NewBatchCmd creates the batch command, which computes every input
// document in a directory.
func NewBatchCmd() *cobra.Command {
	var params batchParams

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Compute the balances of every document in a directory",
		Long: `Computes every *.yaml, *.yml and *.json document in a directory and prints a
per-region summary. A failing region does not stop the others; the command
exits with an error if any region failed.`,
		Example: `  # Compute all regions, eight at a time, and keep the JSON results
  bisko batch --dir regions/ --concurrency 8 --out-dir results/`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBatch(cmd, params)
		},
	}

	cmd.Flags().StringVar(&params.dir, "dir", "", "directory holding the input documents")
	cmd.Flags().StringVar(&params.outDir, "out-dir", "", "write each region's JSON result into this directory")
	cmd.Flags().StringVar(&params.facts, "facts", "", "facts CSV table")
	cmd.Flags().StringVar(&params.assumptions, "assumptions", "", "assumptions CSV table")
	cmd.Flags().StringVar(&params.metricsFile, "metrics-file", "", "write Prometheus metrics to this textfile")
	cmd.Flags().IntVar(&params.concurrency, "concurrency", 0, "regions computed at once (default from config)")
	cmd.Flags().BoolVar(&params.sequential, "sequential", false, "evaluate each region's sectors one after another")
	_ = cmd.MarkFlagRequired("dir")

	return cmd
}

func runBatch(cmd *cobra.Command, p batchParams) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)
	cfg := config.GetGlobalConfig()

	concurrency := p.concurrency
	if concurrency == 0 {
		concurrency = cfg.Calc.Concurrency
	}
	proc, err := batch.NewProcessor(concurrency)
	if err != nil {
		return err
	}

	paths, err := batch.Discover(p.dir)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no input documents in %s", p.dir)
	}

	base, err := loadReference(referencePaths(cfg, p.facts, p.assumptions))
	if err != nil {
		return err
	}

	if p.outDir != "" {
		if err := os.MkdirAll(p.outDir, 0o750); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	m := metrics.New()
	compute := batch.Compute(base, engine.Options{Sequential: p.sequential || !cfg.Calc.Parallel})
	region := func(ctx context.Context, path string) (*engine.Result, error) {
		start := time.Now()
		res, runErr := compute(ctx, path)
		m.ObserveRun(res, runErr, time.Since(start))
		if runErr != nil {
			return nil, runErr
		}
		if p.outDir != "" {
			if writeErr := writeRegionJSON(p.outDir, path, res); writeErr != nil {
				return nil, writeErr
			}
		}
		return res, nil
	}

	proc.WithProgressCallback(func(progress *batch.Progress) {
		snap := progress.Snapshot()
		log.Debug().
			Ctx(ctx).
			Int("processed", snap.ProcessedItems).
			Int("total", snap.TotalItems).
			Msg("batch progress")
	})

	outcomes, err := proc.Process(ctx, paths, region)

	if p.metricsFile != "" {
		if mErr := m.WriteTextfile(p.metricsFile); mErr != nil {
			log.Warn().Ctx(ctx).Err(mErr).Str("path", p.metricsFile).Msg("could not write metrics")
		}
	}
	if outcomes != nil {
		if renderErr := renderBatchSummary(cmd.OutOrStdout(), outcomes, cfg.Output.Precision); renderErr != nil {
			return fmt.Errorf("rendering batch summary: %w", renderErr)
		}
	}
	if err != nil {
		return fmt.Errorf("batch interrupted: %w", err)
	}

	if failed := lo.CountBy(outcomes, batch.Outcome.Failed); failed > 0 {
		return fmt.Errorf("%d of %d regions failed", failed, len(outcomes))
	}
	return nil
}

// writeRegionJSON stores res as <name>.bisko.json in dir, named after the
// input document. Discover skips these files, so dir may be the input
// directory.
func writeRegionJSON(dir, inputPath string, res *engine.Result) (err error) {
	name := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath)) + batch.ResultSuffix
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return fmt.Errorf("creating result file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing result file: %w", closeErr)
		}
	}()
	return engine.RenderJSON(f, res)
}

func renderBatchSummary(w io.Writer, outcomes []batch.Outcome, precision int) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0) //nolint:mnd // Standard tabwriter padding.
	fmt.Fprintln(tw, "FILE\tREGION\tENERGY\tCO2E_CB\tCO2E_PB\tSTATUS")
	for _, o := range outcomes {
		file := filepath.Base(o.Path)
		if o.Failed() {
			fmt.Fprintf(tw, "%s\t-\t-\t-\t-\tERROR: %v\n", file, o.Err)
			continue
		}
		b := o.Result.Bisko
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\tok\n",
			file,
			o.Result.Region,
			engine.FormatFloat(b.Total.Energy, precision),
			engine.FormatFloat(b.Total.CO2eCb, precision),
			engine.FormatFloat(b.Total.CO2ePb, precision),
		)
	}
	return tw.Flush()
}
