// Package history stores a bounded record of recent simulation runs.
//
// The engine hands back an immutable result; whether and how it is kept is
// this package's concern alone. Records hold parameters and statistics but
// not paths: the path set for a 10k-run batch is tens of megabytes and is
// only ever consumed by the caller that requested it.
package history

import (
	"context"
	"time"

	"portfolio-analyzer/internal/model"
	"portfolio-analyzer/internal/montecarlo"
)

// DefaultKeep bounds a store when the caller does not choose a limit.
const DefaultKeep = 50

// Record is one stored simulation run.
type Record struct {
	ID         string                  `json:"id"`
	CreatedAt  time.Time               `json:"created_at"`
	Parameters model.SimulationRequest `json:"parameters"`
	Statistics montecarlo.Statistics   `json:"statistics"`
}

// Store keeps the most recent runs, newest first.
type Store interface {
	Record(ctx context.Context, rec Record) error
	Recent(ctx context.Context, limit int) ([]Record, error)
	Close() error
}

// RecordResult adapts an engine result into a stored record.
func RecordResult(res *montecarlo.Result) Record {
	return Record{
		ID:         res.ID,
		CreatedAt:  res.CreatedAt,
		Parameters: res.Request,
		Statistics: res.Stats,
	}
}
