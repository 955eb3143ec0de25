package models

import "time"

// Zone strength levels.
const (
	ZoneStrong = "Strong"
	ZoneMedium = "Medium"
	ZoneWeak   = "Weak"
)

// Zone origin markers.
const (
	ZoneSourceHistorical = "historical"
	ZoneSourceOrderbook  = "orderbook"
)

// MACD signal values.
const (
	MACDBullish = "BULLISH"
	MACDBearish = "BEARISH"
	MACDNeutral = "NEUTRAL"
)

// Trend values.
const (
	TrendBullish = "bullish"
	TrendBearish = "bearish"
	TrendNeutral = "neutral"
)

// Zone is a supply or demand price level. Immutable once constructed.
type Zone struct {
	Level      float64 `json:"level"`
	Strength   string  `json:"strength"`
	Confidence int     `json:"confidence"`
	Source     string  `json:"source"`
}

// TechnicalIndicators carries the indicator block of a snapshot.
type TechnicalIndicators struct {
	RSI   float64 `json:"rsi"`
	MACD  string  `json:"macd"`
	EMA20 float64 `json:"ema20"`
	EMA50 float64 `json:"ema50"`
	Trend string  `json:"trend"`
}

// SupplyDemandZones holds the two ordered zone sequences. Supply levels sit
// above the current price, demand levels below.
type SupplyDemandZones struct {
	Supply []Zone `json:"supply"`
	Demand []Zone `json:"demand"`
}

// MarketConditions is the categorical market state block.
type MarketConditions struct {
	Volatility string `json:"volatility"`
	Volume     string `json:"volume"`
	Sentiment  string `json:"sentiment"`
	Phase      string `json:"phase"`
}

// Prediction is a per-horizon forecast entry.
type Prediction struct {
	Direction   string  `json:"direction"`
	Confidence  int     `json:"confidence"`
	TargetPrice float64 `json:"targetPrice"`
	Timeframe   string  `json:"timeframe"`
}

// Provenance indicates where the snapshot values came from. IsLiveData is
// true only when the live fetch succeeded and at least the current price was
// overwritten.
type Provenance struct {
	IsLiveData   bool      `json:"isLiveData"`
	Source       string    `json:"source"`
	CalculatedAt time.Time `json:"calculatedAt"`
}

// MarketSnapshot is the full market-data payload for one symbol. Constructed
// fresh per request and never mutated after being placed into an envelope.
type MarketSnapshot struct {
	Symbol              string                `json:"symbol"`
	CurrentPrice        float64               `json:"currentPrice"`
	PriceChange24h      float64               `json:"priceChange24h"`
	Volume24h           float64               `json:"volume24h"`
	MarketCap           float64               `json:"marketCap"`
	TechnicalIndicators TechnicalIndicators   `json:"technicalIndicators"`
	SupplyDemandZones   SupplyDemandZones     `json:"supplyDemandZones"`
	MarketConditions    MarketConditions      `json:"marketConditions"`
	Predictions         map[string]Prediction `json:"predictions"`
	Provenance          Provenance            `json:"provenance"`
}

// QuoteDelta is the partial snapshot a live fetch may return. Nil fields mean
// "not provided"; the normalizer keeps the fallback value for those.
type QuoteDelta struct {
	CurrentPrice   *float64
	PriceChange24h *float64
	Volume24h      *float64
	MarketCap      *float64
	RSI            *float64
}
