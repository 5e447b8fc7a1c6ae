package stylist

import (
	"context"
	"math/rand/v2"

	"outfiter/models"
)

const (
	// DefaultMaxAttempts bounds the retry loop
	DefaultMaxAttempts = 40

	// ShortsMinTemperature is the lowest temperature (°C) at which shorts are proposed
	ShortsMinTemperature = 25
	// LayerMaxTemperature: below this temperature (°C) a layer is requested
	LayerMaxTemperature = 20
	// WarmTemperature and ColdTemperature bound the range where temperature tokens are checked
	WarmTemperature = 25
	ColdTemperature = 0
)

// Catalog categories
const (
	CategoryTop    = "top"
	CategoryBottom = "bottom"
	CategoryShoes  = "shoes"
	CategoryLayer  = "layer"
)

// Rand is the random source used for picks
// *rand.Rand from math/rand/v2 satisfies it
type Rand interface {
	IntN(n int) int
}

// globalRand uses the goroutine-safe top-level generator of math/rand/v2
type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// Recorder receives counters about generation runs
type Recorder interface {
	Inc(ctx context.Context, name string, labels map[string]string, n int64)
}

// Engine composes outfits from an immutable catalog
// It holds no per-request state and is safe for concurrent use as long as its Rand is
type Engine struct {
	items       []models.Item
	rng         Rand
	maxAttempts int
	recorder    Recorder
}

// Option configures an Engine
type Option func(*Engine)

// WithRand sets the random source
func WithRand(r Rand) Option {
	return func(e *Engine) {
		if r != nil {
			e.rng = r
		}
	}
}

// WithMaxAttempts sets the retry loop bound; values below 1 keep the default
func WithMaxAttempts(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxAttempts = n
		}
	}
}

// WithRecorder sets the counters sink
func WithRecorder(r Recorder) Option {
	return func(e *Engine) {
		e.recorder = r
	}
}

// NewEngine creates a new Engine over a copy of the catalog items
func NewEngine(items []models.Item, opts ...Option) *Engine {
	owned := make([]models.Item, len(items))
	copy(owned, items)

	e := &Engine{
		items:       owned,
		rng:         globalRand{},
		maxAttempts: DefaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Items returns the catalog items in load order
// Callers must treat them as read-only
func (e *Engine) Items() []models.Item {
	return e.items
}

// MaxAttempts returns the retry loop bound
func (e *Engine) MaxAttempts() int {
	return e.maxAttempts
}

func (e *Engine) inc(ctx context.Context, name string, labels map[string]string) {
	if e.recorder != nil {
		e.recorder.Inc(ctx, name, labels, 1)
	}
}
