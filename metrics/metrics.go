package metrics

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Registry counts outfit generations and HTTP requests.
// Values are kept in memory for GET /metrics and also added to OTel counters.
type Registry struct {
	mu       sync.Mutex
	values   map[string]int64
	meter    metric.Meter
	counters map[string]metric.Int64Counter
}

// NewRegistry creates a Registry on the global OTel meter provider
func NewRegistry() *Registry {
	return &Registry{
		values:   make(map[string]int64),
		meter:    otel.GetMeterProvider().Meter("outfiter"),
		counters: make(map[string]metric.Int64Counter),
	}
}

// fullKey renders name{k=v,...} with labels sorted by key
func fullKey(name string, labels map[string]string) string {
	if len(labels) == 0 {
		return name
	}
	pairs := make([]string, 0, len(labels))
	for k, v := range labels {
		pairs = append(pairs, k+"="+v)
	}
	sort.Strings(pairs)
	return name + "{" + strings.Join(pairs, ",") + "}"
}

// Inc adds n to the counter identified by name and labels
func (r *Registry) Inc(ctx context.Context, name string, labels map[string]string, n int64) {
	r.mu.Lock()
	r.values[fullKey(name, labels)] += n
	counter, ok := r.counters[name]
	if !ok {
		var err error
		counter, err = r.meter.Int64Counter(name)
		if err != nil {
			log.Warn().Err(err).Str("counter", name).Msg("⚠️  Could not create OTel counter")
		}
		r.counters[name] = counter
	}
	r.mu.Unlock()

	if counter == nil {
		return
	}
	attrs := make([]attribute.KeyValue, 0, len(labels))
	for k, v := range labels {
		attrs = append(attrs, attribute.String(k, v))
	}
	counter.Add(ctx, n, metric.WithAttributes(attrs...))
}

// Value returns the current value of a counter, 0 when it was never incremented
func (r *Registry) Value(name string, labels map[string]string) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.values[fullKey(name, labels)]
}

// Snapshot returns a copy of every counter keyed by name{labels}
func (r *Registry) Snapshot() map[string]int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]int64, len(r.values))
	for k, v := range r.values {
		out[k] = v
	}
	return out
}

// Handler handles GET /metrics
func (r *Registry) Handler(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(r.Snapshot()); err != nil {
		log.Error().Err(err).Msg("❌ Metrics: Error encoding response")
	}
}
