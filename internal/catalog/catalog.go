package catalog

import (
	"time"

	"MarketLens/internal/domain/models"
)

// SourceName is the provenance label stamped on degraded responses.
const SourceName = "fallback-catalog"

// Registry is the read-only fallback data set. It is constructed once at
// startup and never mutated; accessors hand out copies so callers can safely
// overwrite fields during normalization.
type Registry struct {
	snapshots map[string]models.MarketSnapshot
	articles  []models.NewsArticle
	ticker    models.MarketTicker
	builtAt   time.Time
}

// NewRegistry builds the catalog. Article timestamps are anchored before the
// construction time so publishedAt is always in the past at request time.
func NewRegistry() *Registry {
	now := time.Now().UTC()
	return &Registry{
		snapshots: map[string]models.MarketSnapshot{
			"BTC": btcSnapshot(now),
			"ETH": ethSnapshot(now),
		},
		articles: articles(now),
		ticker: models.MarketTicker{
			Symbol:    "BTC",
			Price:     43250.0,
			Change24h: 1.8,
			IsLive:    false,
		},
		builtAt: now,
	}
}

// Snapshot returns a copy of the fallback snapshot for symbol.
func (r *Registry) Snapshot(symbol string) (models.MarketSnapshot, bool) {
	s, ok := r.snapshots[symbol]
	if !ok {
		return models.MarketSnapshot{}, false
	}
	return copySnapshot(s), true
}

// Has reports whether the catalog knows symbol.
func (r *Registry) Has(symbol string) bool {
	_, ok := r.snapshots[symbol]
	return ok
}

// Articles returns a copy of the fixed news list.
func (r *Registry) Articles() []models.NewsArticle {
	out := make([]models.NewsArticle, len(r.articles))
	copy(out, r.articles)
	return out
}

// Ticker returns the fallback market ticker.
func (r *Registry) Ticker() models.MarketTicker {
	return r.ticker
}

func copySnapshot(s models.MarketSnapshot) models.MarketSnapshot {
	out := s
	out.SupplyDemandZones.Supply = append([]models.Zone(nil), s.SupplyDemandZones.Supply...)
	out.SupplyDemandZones.Demand = append([]models.Zone(nil), s.SupplyDemandZones.Demand...)
	out.Predictions = make(map[string]models.Prediction, len(s.Predictions))
	for k, v := range s.Predictions {
		out.Predictions[k] = v
	}
	return out
}

func btcSnapshot(now time.Time) models.MarketSnapshot {
	return models.MarketSnapshot{
		Symbol:         "BTC",
		CurrentPrice:   43250.0,
		PriceChange24h: 1.8,
		Volume24h:      28_400_000_000,
		MarketCap:      847_000_000_000,
		TechnicalIndicators: models.TechnicalIndicators{
			RSI:   56.4,
			MACD:  models.MACDBullish,
			EMA20: 42780.0,
			EMA50: 41950.0,
			Trend: models.TrendBullish,
		},
		SupplyDemandZones: models.SupplyDemandZones{
			// Resistance above the current price, strongest first
			Supply: []models.Zone{
				{Level: 44800.0, Strength: models.ZoneStrong, Confidence: 82, Source: models.ZoneSourceHistorical},
				{Level: 43900.0, Strength: models.ZoneMedium, Confidence: 67, Source: models.ZoneSourceOrderbook},
				{Level: 43500.0, Strength: models.ZoneWeak, Confidence: 51, Source: models.ZoneSourceOrderbook},
			},
			// Support below the current price
			Demand: []models.Zone{
				{Level: 42600.0, Strength: models.ZoneMedium, Confidence: 64, Source: models.ZoneSourceOrderbook},
				{Level: 41800.0, Strength: models.ZoneStrong, Confidence: 79, Source: models.ZoneSourceHistorical},
				{Level: 40500.0, Strength: models.ZoneStrong, Confidence: 85, Source: models.ZoneSourceHistorical},
			},
		},
		MarketConditions: models.MarketConditions{
			Volatility: "moderate",
			Volume:     "above-average",
			Sentiment:  "cautiously-optimistic",
			Phase:      "accumulation",
		},
		Predictions: map[string]models.Prediction{
			"1h":  {Direction: models.TrendNeutral, Confidence: 55, TargetPrice: 43300.0, Timeframe: "1h"},
			"24h": {Direction: models.TrendBullish, Confidence: 62, TargetPrice: 44100.0, Timeframe: "24h"},
			"7d":  {Direction: models.TrendBullish, Confidence: 58, TargetPrice: 45800.0, Timeframe: "7d"},
		},
		Provenance: models.Provenance{
			IsLiveData:   false,
			Source:       SourceName,
			CalculatedAt: now,
		},
	}
}

func ethSnapshot(now time.Time) models.MarketSnapshot {
	return models.MarketSnapshot{
		Symbol:         "ETH",
		CurrentPrice:   2285.0,
		PriceChange24h: -0.6,
		Volume24h:      11_900_000_000,
		MarketCap:      274_000_000_000,
		TechnicalIndicators: models.TechnicalIndicators{
			RSI:   48.1,
			MACD:  models.MACDNeutral,
			EMA20: 2301.0,
			EMA50: 2264.0,
			Trend: models.TrendNeutral,
		},
		SupplyDemandZones: models.SupplyDemandZones{
			Supply: []models.Zone{
				{Level: 2420.0, Strength: models.ZoneStrong, Confidence: 80, Source: models.ZoneSourceHistorical},
				{Level: 2350.0, Strength: models.ZoneMedium, Confidence: 63, Source: models.ZoneSourceOrderbook},
			},
			Demand: []models.Zone{
				{Level: 2240.0, Strength: models.ZoneMedium, Confidence: 61, Source: models.ZoneSourceOrderbook},
				{Level: 2150.0, Strength: models.ZoneStrong, Confidence: 77, Source: models.ZoneSourceHistorical},
			},
		},
		MarketConditions: models.MarketConditions{
			Volatility: "low",
			Volume:     "average",
			Sentiment:  "neutral",
			Phase:      "consolidation",
		},
		Predictions: map[string]models.Prediction{
			"1h":  {Direction: models.TrendNeutral, Confidence: 52, TargetPrice: 2288.0, Timeframe: "1h"},
			"24h": {Direction: models.TrendNeutral, Confidence: 54, TargetPrice: 2310.0, Timeframe: "24h"},
			"7d":  {Direction: models.TrendBullish, Confidence: 56, TargetPrice: 2390.0, Timeframe: "7d"},
		},
		Provenance: models.Provenance{
			IsLiveData:   false,
			Source:       SourceName,
			CalculatedAt: now,
		},
	}
}

func articles(now time.Time) []models.NewsArticle {
	return []models.NewsArticle{
		{
			ID:          "fb-001",
			Headline:    "Institutional inflows lift Bitcoin above key moving averages",
			Summary:     "Spot ETF volumes picked up through the week as BTC reclaimed its 20-day EMA, with desks reporting steady accumulation on dips.",
			Source:      "Market Desk",
			PublishedAt: now.Add(-2 * time.Hour),
			Category:    "markets",
			Sentiment:   models.SentimentBullish,
			IsLive:      false,
		},
		{
			ID:          "fb-002",
			Headline:    "Ethereum staking ratio hits new high as withdrawals stay muted",
			Summary:     "More than a quarter of ETH supply is now staked, tightening liquid float while validator exit queues remain near zero.",
			Source:      "Chain Metrics",
			PublishedAt: now.Add(-5 * time.Hour),
			Category:    "on-chain",
			Sentiment:   models.SentimentBullish,
			IsLive:      false,
		},
		{
			ID:          "fb-003",
			Headline:    "Derivatives funding flips negative ahead of options expiry",
			Summary:     "Perp funding across major venues turned mildly negative, a setup that has preceded short squeezes in past expiry weeks.",
			Source:      "Derivatives Watch",
			PublishedAt: now.Add(-9 * time.Hour),
			Category:    "derivatives",
			Sentiment:   models.SentimentNeutral,
			IsLive:      false,
		},
		{
			ID:          "fb-004",
			Headline:    "Regulators signal tighter reporting rules for offshore exchanges",
			Summary:     "A joint statement flagged new disclosure requirements for venues serving domestic clients, with a comment period open until quarter end.",
			Source:      "Policy Brief",
			PublishedAt: now.Add(-14 * time.Hour),
			Category:    "regulation",
			Sentiment:   models.SentimentBearish,
			IsLive:      false,
		},
		{
			ID:          "fb-005",
			Headline:    "Miner reserves drift lower for a sixth straight week",
			Summary:     "Aggregate miner balances continue to decline gradually, consistent with routine treasury sales rather than capitulation.",
			Source:      "Chain Metrics",
			PublishedAt: now.Add(-20 * time.Hour),
			Category:    "on-chain",
			Sentiment:   models.SentimentNeutral,
			IsLive:      false,
		},
		{
			ID:          "fb-006",
			Headline:    "Stablecoin supply expansion accelerates across major issuers",
			Summary:     "Net issuance grew for the fourth consecutive week, historically a leading indicator of spot buying power entering the market.",
			Source:      "Market Desk",
			PublishedAt: now.Add(-26 * time.Hour),
			Category:    "markets",
			Sentiment:   models.SentimentBullish,
			IsLive:      false,
		},
	}
}
