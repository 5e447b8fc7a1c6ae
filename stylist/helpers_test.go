package stylist

import (
	"context"
	"math/rand/v2"
	"testing"

	"outfiter/models"
	"outfiter/utils"
)

// row is a compact constructor for test catalog rows
func row(name, category, style, variant, temp, season, colors string) models.CatalogRow {
	return models.CatalogRow{
		Name:         name,
		Category:     category,
		Style:        style,
		StyleVariant: variant,
		Temperature:  temp,
		Season:       season,
		Colors:       colors,
	}
}

func sampleRows() []models.CatalogRow {
	return []models.CatalogRow{
		row("White Tee", "Top", "Casual", "", "+20°", "Summer", "White"),
		row("Red Polo", "Top", "Casual, Chic", "", "", "Summer, Others", "Red"),
		row("Wool Sweater", "Layer, Top", "Chic", "", "-20°", "Winter", "Grey"),
		row("RedJacket", "Layer", "Casual", "", "-20°", "Winter", "Red"),
		row("Slim Chinos", "Bottom", "Chic", "", "", "Others", "Beige"),
		row("Wide Jeans", "Bottom", "Casual", "Baggy", "", "Others, Winter", "Blue"),
		row("Cargo Shorts", "Bottom", "Casual", "", "+20°", "Summer", "Green"),
		row("Stan Smith", "Shoes", "Casual, Chic", "", "", "Others", "White"),
		row("Bape ERL Vamp", "Shoes", "Casual", "", "", "Others", "Black"),
	}
}

func newTestEngine(t *testing.T, rows []models.CatalogRow, seed uint64, opts ...Option) *Engine {
	t.Helper()
	opts = append([]Option{WithRand(rand.New(rand.NewPCG(seed, seed+1)))}, opts...)
	return NewEngine(utils.BuildItems(rows), opts...)
}

func names(items []*models.Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Name)
	}
	return out
}

// fixedRand always returns the same index, clamped to the range
type fixedRand int

func (f fixedRand) IntN(n int) int {
	if int(f) >= n {
		return n - 1
	}
	return int(f)
}

// scriptedRand replays a fixed sequence of draws, wrapping around at the end
type scriptedRand struct {
	draws []int
	next  int
}

func (s *scriptedRand) IntN(n int) int {
	d := s.draws[s.next%len(s.draws)]
	s.next++
	return d % n
}

// countingRecorder collects counters in memory
type countingRecorder struct {
	counts map[string]int64
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{counts: make(map[string]int64)}
}

func (r *countingRecorder) Inc(_ context.Context, name string, labels map[string]string, n int64) {
	r.counts[name+"/"+labels["result"]] += n
}
