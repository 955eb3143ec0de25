package usecase

import (
	"context"

	"MarketLens/internal/catalog"
	"MarketLens/internal/domain/models"
)

// NewsService assembles the news feed: a fixed article list from the catalog
// plus a market ticker that rides the same degrading fetch as the snapshot
// endpoint.
type NewsService struct {
	catalog   *catalog.Registry
	snapshots *SnapshotService
}

// NewNewsService creates the news feed assembler.
func NewNewsService(reg *catalog.Registry, snapshots *SnapshotService) *NewsService {
	return &NewsService{catalog: reg, snapshots: snapshots}
}

// GetFeed returns the feed and whether the ticker carries live data. Articles
// are always catalog content; only the ticker has live provenance.
func (s *NewsService) GetFeed(ctx context.Context) (models.NewsFeed, bool) {
	ticker := s.catalog.Ticker()

	out := s.snapshots.GetSnapshot(ctx, ticker.Symbol)
	ticker.Price = out.Snapshot.CurrentPrice
	ticker.Change24h = out.Snapshot.PriceChange24h
	ticker.IsLive = out.Live

	status := models.APIStatus{Status: "operational", Provider: s.snapshots.source.Name()}
	if !out.Live {
		status.Status = "degraded"
		status.Message = "serving cached market data"
	}

	return models.NewsFeed{
		Articles:     s.catalog.Articles(),
		MarketTicker: ticker,
		APIStatus:    status,
	}, out.Live
}
