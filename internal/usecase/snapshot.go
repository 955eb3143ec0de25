package usecase

import (
	"context"
	"fmt"
	"time"

	"MarketLens/internal/catalog"
	"MarketLens/internal/domain/models"
	"MarketLens/internal/domain/repository"
	xlogger "MarketLens/pkg/logger"
)

// Outcome is the tagged result of a snapshot request: either a live-merged
// snapshot or the untouched fallback. The distinction surfaces only in
// provenance metadata, never as an error.
type Outcome struct {
	Snapshot models.MarketSnapshot
	Live     bool
}

// SnapshotService is the degrading fetch orchestrator. It never returns an
// error: any upstream failure downgrades to catalog data.
type SnapshotService struct {
	catalog       *catalog.Registry
	source        repository.QuoteSource
	metrics       repository.Metrics
	logger        *xlogger.Logger
	fetchTimeout  time.Duration
	defaultSymbol string
}

// NewSnapshotService creates the orchestrator. fetchTimeout bounds the single
// upstream call; defaultSymbol answers requests for unknown symbols and must
// exist in the catalog, otherwise the unknown-symbol path could produce a
// zero-valued snapshot. The registry is fixed at startup, so this is checked
// once here and panics on misconfiguration.
func NewSnapshotService(
	reg *catalog.Registry,
	source repository.QuoteSource,
	metrics repository.Metrics,
	logger *xlogger.Logger,
	fetchTimeout time.Duration,
	defaultSymbol string,
) *SnapshotService {
	if !reg.Has(defaultSymbol) {
		panic(fmt.Sprintf("catalog has no entry for default symbol %q", defaultSymbol))
	}
	if fetchTimeout <= 0 {
		fetchTimeout = 4 * time.Second
	}
	return &SnapshotService{
		catalog:       reg,
		source:        source,
		metrics:       metrics,
		logger:        logger,
		fetchTimeout:  fetchTimeout,
		defaultSymbol: defaultSymbol,
	}
}

// GetSnapshot builds the snapshot for symbol. The fallback catalog entry is
// the working result; one deadline-bounded live fetch may overwrite fields.
// A response arriving after the deadline is discarded by the context, not
// awaited further.
func (s *SnapshotService) GetSnapshot(ctx context.Context, symbol string) Outcome {
	fallback, ok := s.catalog.Snapshot(symbol)
	if !ok {
		fallback, _ = s.catalog.Snapshot(s.defaultSymbol)
	}

	fetchCtx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	start := time.Now()
	delta, err := s.source.FetchQuote(fetchCtx, fallback.Symbol)
	s.metrics.RecordLatency("quote_fetch", time.Since(start).Seconds())

	now := time.Now().UTC()
	if err != nil || !PriceOverwritten(delta) {
		if err != nil {
			s.logger.Warn("live quote unavailable, serving fallback",
				xlogger.String("symbol", fallback.Symbol),
				xlogger.Error(err),
			)
			s.metrics.RecordError("quote_fetch")
		}
		s.metrics.RecordFetchOutcome(fallback.Symbol, false)

		snap := fallback
		snap.Provenance = models.Provenance{
			IsLiveData:   false,
			Source:       catalog.SourceName,
			CalculatedAt: now,
		}
		return Outcome{Snapshot: snap}
	}

	merged := Normalize(fallback, delta)
	merged.Provenance = models.Provenance{
		IsLiveData:   true,
		Source:       s.source.Name(),
		CalculatedAt: now,
	}

	s.logger.Debug("live quote merged",
		xlogger.String("symbol", merged.Symbol),
		xlogger.Float64("price", merged.CurrentPrice),
		xlogger.Duration("fetch", time.Since(start)),
	)
	s.metrics.RecordFetchOutcome(merged.Symbol, true)
	s.metrics.RecordLastPrice(merged.Symbol, merged.CurrentPrice)

	return Outcome{Snapshot: merged, Live: true}
}
