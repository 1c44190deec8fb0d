package batch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/rshade/bisko/internal/engine"
	"github.com/rshade/bisko/internal/influence"
	"github.com/rshade/bisko/internal/logging"
	"github.com/rshade/bisko/internal/refdata"
)

// Concurrency bounds.
const (
	// DefaultConcurrency is the number of regions computed at once when
	// nothing else is configured.
	DefaultConcurrency = 4

	// MaxConcurrency is the maximum allowed number of concurrent regions.
	MaxConcurrency = 256
)

// Common batch processing errors.
var (
	ErrInvalidConcurrency = errors.New("concurrency must be between 1 and 256")
	ErrNilCallback        = errors.New("region callback cannot be nil")
	ErrEmptyItems         = errors.New("no input documents to process")
)

// RegionFunc computes the result of the document at path.
type RegionFunc func(ctx context.Context, path string) (*engine.Result, error)

// ProgressCallback is invoked after each region finishes, successfully or
// not.
type ProgressCallback func(progress *Progress)

// Outcome is the result of one document. Exactly one of Result and Err is
// set.
type Outcome struct {
	Path   string
	Result *engine.Result
	Err    error
}

// Failed reports whether the region could not be computed.
func (o Outcome) Failed() bool {
	return o.Err != nil
}

// Processor runs a RegionFunc over many documents.
type Processor struct {
	concurrency int
	onProgress  ProgressCallback

	// mu serializes progress callbacks.
	mu sync.Mutex
}

// NewProcessor creates a processor computing up to concurrency regions at
// once.
func NewProcessor(concurrency int) (*Processor, error) {
	if concurrency < 1 || concurrency > MaxConcurrency {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidConcurrency, concurrency)
	}
	return &Processor{concurrency: concurrency}, nil
}

// NewProcessorWithDefaults creates a processor with DefaultConcurrency.
func NewProcessorWithDefaults() *Processor {
	return &Processor{concurrency: DefaultConcurrency}
}

// WithProgressCallback sets a progress callback for the processor.
func (p *Processor) WithProgressCallback(callback ProgressCallback) *Processor {
	p.onProgress = callback
	return p
}

// Concurrency returns the configured concurrency limit.
func (p *Processor) Concurrency() int {
	return p.concurrency
}

// Process computes every path with fn. Outcomes are returned in the order
// of paths. Region failures are recorded in their Outcome and never abort
// the batch; the returned error is only set for invalid arguments or when
// ctx is cancelled, in which case regions not yet started carry ctx's
// error.
func (p *Processor) Process(ctx context.Context, paths []string, fn RegionFunc) ([]Outcome, error) {
	if len(paths) == 0 {
		return nil, ErrEmptyItems
	}
	if fn == nil {
		return nil, ErrNilCallback
	}

	log := logging.FromContext(ctx)
	progress := NewProgress(len(paths))
	outcomes := make([]Outcome, len(paths))

	var g errgroup.Group
	g.SetLimit(p.concurrency)

	for i, path := range paths {
		outcomes[i].Path = path
		if err := ctx.Err(); err != nil {
			outcomes[i].Err = err
			continue
		}

		g.Go(func() error {
			res, err := fn(ctx, path)
			outcomes[i].Result, outcomes[i].Err = res, err

			if err != nil {
				log.Warn().
					Ctx(ctx).
					Str("component", "batch").
					Str("path", path).
					Err(err).
					Msg("region failed")
			}

			progress.AddProcessed(err != nil)
			p.notify(progress)
			return nil
		})
	}
	_ = g.Wait()

	snap := progress.Snapshot()
	log.Info().
		Ctx(ctx).
		Str("component", "batch").
		Int("regions", snap.TotalItems).
		Int("failed", snap.FailedItems).
		Dur("duration", snap.ElapsedTime).
		Msg("batch complete")

	return outcomes, ctx.Err()
}

func (p *Processor) notify(progress *Progress) {
	if p.onProgress == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onProgress(progress)
}

// ResultSuffix names the per-region result files written next to, or
// instead of, the inputs. Discover never picks them up.
const ResultSuffix = ".bisko.json"

// inputExtensions are the file types Discover picks up.
//
//nolint:gochecknoglobals // Read-only lookup table.
var inputExtensions = []string{".yaml", ".yml", ".json"}

// Discover lists the input documents directly inside dir, sorted by name.
// Result files ending in ResultSuffix are skipped.
func Discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading input directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || strings.HasSuffix(strings.ToLower(entry.Name()), ResultSuffix) {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if slices.Contains(inputExtensions, ext) {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	return paths, nil
}

// Compute returns a RegionFunc that loads a document and runs the engine,
// resolving reference values from the document first and base second.
func Compute(base refdata.Lookup, opts engine.Options) RegionFunc {
	return func(ctx context.Context, path string) (*engine.Result, error) {
		doc, err := influence.Load(path)
		if err != nil {
			return nil, err
		}
		return engine.Run(ctx, doc, engine.Lookup(doc, base), opts)
	}
}
