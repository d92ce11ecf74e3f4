package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"fx_dashboard/internal/feature/fxrates/domain/entity"
	"fx_dashboard/internal/feature/fxrates/domain/series"
)

// RateSource abstracts the external FX API.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type RateSource interface {
	History(ctx context.Context, pair entity.Pair, start, end string) ([]entity.RawPoint, error)
	Predict(ctx context.Context, pair entity.Pair, horizon int) ([]entity.RawPoint, error)
}

// Dashboard owns the single in-memory view state.
//
// One busy flag covers both actions: while a history or prediction request is
// outstanding, every other action is refused with ErrBusy. The lock is never
// held across the upstream call.
type Dashboard struct {
	source RateSource
	logger *slog.Logger

	mu    sync.Mutex
	state entity.State
}

// NewDashboard creates a Dashboard whose selection defaults to
// DefaultSelection(now).
func NewDashboard(source RateSource, logger *slog.Logger, now time.Time) *Dashboard {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dashboard{
		source: source,
		logger: logger,
		state:  entity.State{Selection: DefaultSelection(now)},
	}
}

// Snapshot returns a copy of the current state.
func (d *Dashboard) Snapshot() entity.State {
	d.mu.Lock()
	defer d.mu.Unlock()

	s := d.state
	s.History = append(entity.Series(nil), d.state.History...)
	s.Prediction = append(entity.Series(nil), d.state.Prediction...)
	return s
}

// View derives the view model from the current state.
func (d *Dashboard) View() View {
	return BuildView(d.Snapshot())
}

// FetchHistory applies sel and loads its history series. Any previously
// loaded prediction is discarded once the request is sent.
func (d *Dashboard) FetchHistory(ctx context.Context, sel entity.Selection) error {
	d.mu.Lock()
	if d.state.Busy {
		d.mu.Unlock()
		return ErrBusy
	}
	d.state.Selection = cleanSelection(sel)
	if msg := ValidateSelection(d.state.Selection); msg != "" {
		d.mu.Unlock()
		return &ValidationError{Message: msg}
	}
	cur := d.state.Selection
	d.state.Busy = true
	d.state.Error = ""
	d.state.Prediction = nil
	d.mu.Unlock()

	pair := cur.Pair()
	raw, err := d.source.History(ctx, pair, cur.Start, cur.End)

	d.mu.Lock()
	defer d.mu.Unlock()
	d.state.Busy = false
	if err != nil {
		d.logger.Warn("history fetch failed", "pair", pair, "error", err)
		d.state.Error = err.Error()
		d.state.History = nil
		return fmt.Errorf("fetch history %s: %w", pair, err)
	}

	d.state.History = series.Normalize(raw)
	valid := series.ValidCount(d.state.History)
	d.logger.Info("loaded history points", "pair", pair, "points", len(d.state.History), "valid", valid)
	if valid == 0 && len(d.state.History) > 0 {
		d.logger.Warn("no valid history data in range", "pair", pair, "start", cur.Start, "end", cur.End)
	}
	return nil
}

// FetchPrediction applies sel and loads the forecast for its pair and
// horizon. It requires a loaded history series.
func (d *Dashboard) FetchPrediction(ctx context.Context, sel entity.Selection) error {
	d.mu.Lock()
	if d.state.Busy {
		d.mu.Unlock()
		return ErrBusy
	}
	d.state.Selection = cleanSelection(sel)
	if len(d.state.History) == 0 {
		d.mu.Unlock()
		return ErrNoHistory
	}
	cur := d.state.Selection
	d.state.Busy = true
	d.state.Error = ""
	d.mu.Unlock()

	pair := cur.Pair()
	raw, err := d.source.Predict(ctx, pair, cur.Horizon)

	d.mu.Lock()
	defer d.mu.Unlock()
	d.state.Busy = false
	if err != nil {
		d.logger.Warn("prediction fetch failed", "pair", pair, "horizon", cur.Horizon, "error", err)
		d.state.Error = err.Error()
		d.state.Prediction = nil
		return fmt.Errorf("fetch prediction %s: %w", pair, err)
	}

	d.state.Prediction = series.Normalize(raw)
	d.logger.Info("loaded prediction points", "pair", pair, "points", len(d.state.Prediction))
	return nil
}

func cleanSelection(sel entity.Selection) entity.Selection {
	sel.Base = entity.Currency(strings.ToUpper(strings.TrimSpace(string(sel.Base))))
	sel.Target = entity.Currency(strings.ToUpper(strings.TrimSpace(string(sel.Target))))
	sel.Start = strings.TrimSpace(sel.Start)
	sel.End = strings.TrimSpace(sel.End)
	sel.Horizon = ClampHorizon(sel.Horizon)
	return sel
}
