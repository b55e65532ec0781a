package aggregator

import (
	"context"

	"github.com/Kamar-Folarin/github-commit-graph/internal/models"
)

// Counter is the counting surface of a commit source, such as *collector.Collector.
type Counter interface {
	CountDaily(ctx context.Context) (models.DailyCountTable, error)
	CountTotals(ctx context.Context) (models.TotalCountTable, error)
}

// Aggregator sits between the commit source and its consumers so the graph
// renderer never depends on the collector directly.
type Aggregator struct {
	counter Counter
}

// NewAggregator creates a new aggregator
func NewAggregator(counter Counter) *Aggregator {
	return &Aggregator{counter: counter}
}

// Daily returns commit counts per user and day.
func (a *Aggregator) Daily(ctx context.Context) (models.DailyCountTable, error) {
	return a.counter.CountDaily(ctx)
}

// Totals returns commit counts per user.
func (a *Aggregator) Totals(ctx context.Context) (models.TotalCountTable, error) {
	return a.counter.CountTotals(ctx)
}
