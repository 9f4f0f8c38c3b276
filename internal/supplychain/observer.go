package supplychain

import (
	"log/slog"

	"github.com/SataStrike/Highlighter/pkg/contracts/domain"
)

// Observer receives match decisions and row failures so callers can audit a
// reconciliation run without the engine being coupled to any output. The
// engine is single-threaded, so implementations need no locking.
type Observer interface {
	// Decision is called once per classified candidate line.
	Decision(rowIndex int, normalized string, result domain.Classification)
	// RowFailure is called when processing one report row failed and the
	// row degraded to a zero-count summary.
	RowFailure(rowIndex int, dom, name string, err error)
}

// NopObserver discards all events.
type NopObserver struct{}

// Decision implements Observer.
func (NopObserver) Decision(int, string, domain.Classification) {}

// RowFailure implements Observer.
func (NopObserver) RowFailure(int, string, string, error) {}

// SlogObserver logs match decisions at debug level and row failures at warn
// level, replacing the ad hoc trace printing of earlier tooling.
type SlogObserver struct {
	Logger *slog.Logger
}

// NewSlogObserver wraps a logger as an Observer. Nil falls back to the slog
// default.
func NewSlogObserver(logger *slog.Logger) *SlogObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogObserver{Logger: logger}
}

// Decision implements Observer.
func (o *SlogObserver) Decision(rowIndex int, normalized string, result domain.Classification) {
	o.Logger.Debug("line classified",
		slog.Int("row", rowIndex),
		slog.String("line", result.Line),
		slog.String("normalized", normalized),
		slog.String("category", string(result.Category)),
		slog.String("match_type", string(result.Match)))
}

// RowFailure implements Observer.
func (o *SlogObserver) RowFailure(rowIndex int, dom, name string, err error) {
	o.Logger.Warn("row processing failed, emitting zero-count summary",
		slog.Int("row", rowIndex),
		slog.String("domain", dom),
		slog.String("name", name),
		slog.Any("error", err))
}
