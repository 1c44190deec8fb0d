// Package engine runs BISKO computations over input documents and renders
// or compares the resulting trees.
package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"golang.org/x/sync/errgroup"

	"github.com/rshade/bisko/internal/bisko"
	"github.com/rshade/bisko/internal/influence"
	"github.com/rshade/bisko/internal/logging"
	"github.com/rshade/bisko/internal/refdata"
)

// ErrNilDocument is returned when Run is called without a document.
var ErrNilDocument = errors.New("input document cannot be nil")

// ErrNoResult is returned by renderers given an empty result.
var ErrNoResult = errors.New("no result to render")

// Options controls a single engine run.
type Options struct {
	// Sequential evaluates the sector builders one after another instead
	// of concurrently.
	Sequential bool
}

// Result is one region's computed balance and the run metadata.
type Result struct {
	RunID       string        `json:"run_id"`
	Region      string        `json:"region"`
	Year        int           `json:"year,omitempty"`
	GeneratedAt time.Time     `json:"generated_at"`
	Duration    time.Duration `json:"-"`
	Bisko       *bisko.Bisko  `json:"bisko"`
}

// Lookup resolves the values doc needs: values in the document itself take
// precedence over base, which may be nil.
func Lookup(doc *influence.Document, base refdata.Lookup) refdata.Lookup {
	chain := refdata.Chain{}
	if len(doc.Facts) > 0 || len(doc.Assumptions) > 0 {
		chain = append(chain, refdata.MapLookup{Facts: doc.Facts, Assumptions: doc.Assumptions})
	}
	if base != nil {
		chain = append(chain, base)
	}
	return chain
}

// Run computes the BISKO balance of doc. Reference values are resolved
// through lookup; callers combine document and table values with Lookup.
// A lookup failure aborts the whole run.
func Run(ctx context.Context, doc *influence.Document, lookup bisko.Lookup, opts Options) (*Result, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}
	log := logging.FromContext(ctx)
	start := time.Now()
	runID := ulid.Make().String()

	log.Debug().
		Ctx(ctx).
		Str("component", "engine").
		Str("operation", "run").
		Str("run_id", runID).
		Str("region", doc.Region()).
		Bool("sequential", opts.Sequential).
		Msg("starting bisko computation")

	var (
		sectors bisko.Sectors
		err     error
	)
	if opts.Sequential {
		sectors, err = runSequential(ctx, doc.Balance, lookup)
	} else {
		sectors, err = runParallel(ctx, doc.Balance, lookup)
	}
	if err != nil {
		log.Error().
			Ctx(ctx).
			Str("component", "engine").
			Str("region", doc.Region()).
			Err(err).
			Msg("bisko computation failed")
		return nil, fmt.Errorf("calculating bisko for %s: %w", doc.Region(), err)
	}

	b := bisko.Aggregate(sectors)
	elapsed := time.Since(start)

	log.Info().
		Ctx(ctx).
		Str("component", "engine").
		Str("run_id", runID).
		Str("region", doc.Region()).
		Float64("energy", b.Total.Energy).
		Float64("co2e_cb", b.Total.CO2eCb).
		Float64("co2e_pb", b.Total.CO2ePb).
		Dur("duration", elapsed).
		Msg("bisko computation complete")

	return &Result{
		RunID:       runID,
		Region:      doc.Region(),
		Year:        doc.Year,
		GeneratedAt: time.Now().UTC(),
		Duration:    elapsed,
		Bisko:       &b,
	}, nil
}

// sectorStep builds one sector into the shared Sectors value. Each step
// writes a distinct field.
type sectorStep struct {
	name  string
	build func() error
}

func steps(balance influence.Balance, lookup bisko.Lookup, out *bisko.Sectors) []sectorStep {
	return []sectorStep{
		{"priv_residences", func() error {
			out.PrivateResidences = bisko.CalcPrivateResidences(
				balance.Residences, balance.Heat, balance.Fuels, balance.Electricity)
			return nil
		}},
		{"buissenesses", func() error {
			out.Businesses = bisko.CalcBusinesses(
				balance.Business, balance.Heat, balance.Fuels, balance.Electricity, balance.Agriculture)
			return nil
		}},
		{"transport", func() error {
			t, err := bisko.CalcTransport(lookup, balance.Transport, balance.Heat, balance.Fuels, balance.Electricity)
			if err != nil {
				return err
			}
			out.Transport = t
			return nil
		}},
		{"industry", func() error {
			out.Industry = bisko.CalcIndustry(balance.Industry, balance.Heat, balance.Fuels, balance.Electricity)
			return nil
		}},
		{"agri", func() error {
			out.Agriculture = bisko.CalcAgriculture(balance.Agriculture)
			return nil
		}},
		{"lulucf", func() error {
			out.LULUCF = bisko.CalcLULUCF(balance.LULUCF)
			return nil
		}},
	}
}

func runSequential(ctx context.Context, balance influence.Balance, lookup bisko.Lookup) (bisko.Sectors, error) {
	var sectors bisko.Sectors
	for _, step := range steps(balance, lookup, &sectors) {
		if err := ctx.Err(); err != nil {
			return bisko.Sectors{}, err
		}
		if err := timed(ctx, step); err != nil {
			return bisko.Sectors{}, err
		}
	}
	return sectors, nil
}

func runParallel(ctx context.Context, balance influence.Balance, lookup bisko.Lookup) (bisko.Sectors, error) {
	var sectors bisko.Sectors
	g, gCtx := errgroup.WithContext(ctx)
	for _, step := range steps(balance, lookup, &sectors) {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			return timed(gCtx, step)
		})
	}
	if err := g.Wait(); err != nil {
		return bisko.Sectors{}, err
	}
	return sectors, nil
}

func timed(ctx context.Context, step sectorStep) error {
	start := time.Now()
	err := step.build()
	log := logging.FromContext(ctx)
	log.Debug().
		Ctx(ctx).
		Str("component", "engine").
		Str("sector", step.name).
		Dur("duration", time.Since(start)).
		Bool("failed", err != nil).
		Msg("sector built")
	return err
}
