package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rshade/bisko/internal/config"
	"github.com/rshade/bisko/internal/engine"
	"github.com/rshade/bisko/internal/engine/cache"
	"github.com/rshade/bisko/internal/influence"
	"github.com/rshade/bisko/internal/logging"
	"github.com/rshade/bisko/internal/metrics"
)

type calcParams struct {
	input       string
	facts       string
	assumptions string
	output      string
	out         string
	metricsFile string
	sequential  bool
	noCache     bool
	plain       bool
}

// NewCalcCmd creates the calc command, which computes the BISKO balance of
// one input document.
func NewCalcCmd() *cobra.Command {
	var params calcParams

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Compute the BISKO balance of one region",
		Long: `Computes the BISKO energy and emission balance of an influence balance document.

Reference values are looked up in the document's facts and assumptions first,
then in the CSV tables given by --facts/--assumptions or the data section of
the configuration. Results are cached by input and table contents.`,
		Example: `  # Browse the balance interactively
  bisko calc --input goettingen.yaml

  # Write JSON with metrics
  bisko calc --input goettingen.yaml -o json --metrics-file bisko.prom

  # Export a PDF report
  bisko calc --input goettingen.yaml -o pdf --out goettingen.pdf`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCalc(cmd, params)
		},
	}

	cmd.Flags().StringVarP(&params.input, "input", "i", "", "influence balance document (YAML or JSON)")
	cmd.Flags().StringVar(&params.facts, "facts", "", "facts CSV table")
	cmd.Flags().StringVar(&params.assumptions, "assumptions", "", "assumptions CSV table")
	cmd.Flags().StringVarP(&params.output, "output", "o", "",
		"output format: table, json, ndjson, xlsx or pdf (default from config)")
	cmd.Flags().StringVar(&params.out, "out", "", "write output to this file instead of stdout")
	cmd.Flags().StringVar(&params.metricsFile, "metrics-file", "", "write Prometheus metrics to this textfile")
	cmd.Flags().BoolVar(&params.sequential, "sequential", false, "evaluate sectors one after another")
	cmd.Flags().BoolVar(&params.noCache, "no-cache", false, "bypass the result cache")
	cmd.Flags().BoolVar(&params.plain, "plain", false, "plain table output even on a terminal")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func runCalc(cmd *cobra.Command, p calcParams) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)
	cfg := config.GetGlobalConfig()

	format, err := resolveFormat(p.output, cfg)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(p.input)
	if err != nil {
		return fmt.Errorf("reading input document: %w", err)
	}
	doc, err := influence.Parse(data)
	if err != nil {
		return fmt.Errorf("%s: %w", p.input, err)
	}

	factsPath, assumptionsPath := referencePaths(cfg, p.facts, p.assumptions)
	base, err := loadReference(factsPath, assumptionsPath)
	if err != nil {
		return err
	}

	m := metrics.New()
	opts := engine.Options{Sequential: p.sequential || !cfg.Calc.Parallel}
	compute := func(ctx context.Context) (*engine.Result, error) {
		start := time.Now()
		res, runErr := engine.Run(ctx, doc, engine.Lookup(doc, base), opts)
		m.ObserveRun(res, runErr, time.Since(start))
		return res, runErr
	}

	var res *engine.Result
	store := openCache(ctx, cfg, p.noCache)
	if store != nil {
		res, err = cachedRun(ctx, store, m, compute, data, factsPath, assumptionsPath)
	} else {
		res, err = compute(ctx)
	}

	if p.metricsFile != "" {
		if mErr := m.WriteTextfile(p.metricsFile); mErr != nil {
			log.Warn().Ctx(ctx).Err(mErr).Str("path", p.metricsFile).Msg("could not write metrics")
		}
	}

	if err != nil {
		log.Error().Ctx(ctx).Err(err).Str("input", p.input).Msg("calculation failed")
		return fmt.Errorf("calculating %s: %w", p.input, err)
	}

	return writeResult(cmd, res, format, p.out, cfg.Output.Precision, p.plain)
}

// openCache returns the result store, or nil when caching is off or the
// store cannot be opened.
func openCache(ctx context.Context, cfg *config.Config, noCache bool) *cache.FileStore {
	if noCache || !cfg.Cache.Enabled {
		return nil
	}
	log := logging.FromContext(ctx)

	dir, err := config.GetCacheDir()
	if err != nil {
		log.Warn().Ctx(ctx).Err(err).Msg("no cache directory, caching disabled")
		return nil
	}
	store, err := cache.NewFileStore(dir, true, cfg.Cache.TTLSeconds)
	if err != nil {
		log.Warn().Ctx(ctx).Err(err).Str("dir", dir).Msg("could not open cache, caching disabled")
		return nil
	}
	return store
}

// cachedRun answers from store when an unexpired entry for the input and
// reference tables exists and stores fresh results otherwise.
func cachedRun(
	ctx context.Context,
	store *cache.FileStore,
	m *metrics.Metrics,
	compute func(context.Context) (*engine.Result, error),
	input []byte,
	refPaths ...string,
) (*engine.Result, error) {
	log := logging.FromContext(ctx)

	key, err := cache.Key(input, refPaths...)
	if err != nil {
		log.Warn().Ctx(ctx).Err(err).Msg("could not derive cache key")
		return compute(ctx)
	}

	res, err := store.GetResult(key)
	if err == nil {
		m.ObserveCache(true)
		log.Debug().Ctx(ctx).Str("key", key).Str("run_id", res.RunID).Msg("cache hit")
		return res, nil
	}
	m.ObserveCache(false)
	if !errors.Is(err, cache.ErrCacheNotFound) && !errors.Is(err, cache.ErrCacheExpired) {
		log.Warn().Ctx(ctx).Err(err).Str("key", key).Msg("cache read failed")
	}

	res, err = compute(ctx)
	if err != nil {
		return nil, err
	}
	if putErr := store.PutResult(key, res); putErr != nil {
		log.Warn().Ctx(ctx).Err(putErr).Msg("could not cache result")
	}
	return res, nil
}
