package batch

import (
	"sync"
	"time"
)

// percentMultiplier is used to convert a ratio to percentage (0-100).
const percentMultiplier = 100

// Progress tracks how many regions of a batch are done.
// It is safe for concurrent use.
type Progress struct {
	// TotalItems is the number of regions in the batch.
	TotalItems int

	// ProcessedItems is the number of finished regions, failed or not.
	ProcessedItems int

	// FailedItems is the number of regions that returned an error.
	FailedItems int

	StartTime      time.Time
	LastUpdateTime time.Time

	mu sync.RWMutex
}

// NewProgress creates a progress tracker for totalItems regions.
func NewProgress(totalItems int) *Progress {
	now := time.Now()
	return &Progress{
		TotalItems:     totalItems,
		StartTime:      now,
		LastUpdateTime: now,
	}
}

// AddProcessed records one finished region.
func (p *Progress) AddProcessed(failed bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.ProcessedItems++
	if failed {
		p.FailedItems++
	}
	p.LastUpdateTime = time.Now()
}

// PercentComplete returns the completion percentage (0-100).
func (p *Progress) PercentComplete() float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.percentCompleteUnsafe()
}

// IsComplete returns true if all regions have finished.
func (p *Progress) IsComplete() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.ProcessedItems >= p.TotalItems
}

// EstimatedTimeRemaining extrapolates from the average time per finished
// region. Returns 0 before the first region finishes.
func (p *Progress) EstimatedTimeRemaining() time.Duration {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.ProcessedItems == 0 {
		return 0
	}
	avg := time.Since(p.StartTime) / time.Duration(p.ProcessedItems)
	return avg * time.Duration(p.TotalItems-p.ProcessedItems)
}

// Snapshot returns a copy of the current progress state.
func (p *Progress) Snapshot() ProgressSnapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return ProgressSnapshot{
		TotalItems:      p.TotalItems,
		ProcessedItems:  p.ProcessedItems,
		FailedItems:     p.FailedItems,
		StartTime:       p.StartTime,
		LastUpdateTime:  p.LastUpdateTime,
		PercentComplete: p.percentCompleteUnsafe(),
		ElapsedTime:     time.Since(p.StartTime),
	}
}

// ProgressSnapshot is an immutable snapshot of progress state.
type ProgressSnapshot struct {
	TotalItems      int
	ProcessedItems  int
	FailedItems     int
	StartTime       time.Time
	LastUpdateTime  time.Time
	PercentComplete float64
	ElapsedTime     time.Duration
}

// percentCompleteUnsafe must be called with the lock held.
func (p *Progress) percentCompleteUnsafe() float64 {
	if p.TotalItems == 0 {
		return 0
	}
	return (float64(p.ProcessedItems) / float64(p.TotalItems)) * percentMultiplier
}
