package usecase

import (
	"math"

	"MarketLens/internal/domain/models"
)

// Normalize merges a live delta into the fallback snapshot. Pure function:
// every present and sane field of delta replaces the fallback value, anything
// absent or out of bounds keeps the fallback. Provenance is left untouched;
// the orchestrator owns that stamp.
func Normalize(fallback models.MarketSnapshot, delta *models.QuoteDelta) models.MarketSnapshot {
	out := fallback
	if delta == nil {
		return out
	}

	if validMagnitude(delta.CurrentPrice) {
		out.CurrentPrice = *delta.CurrentPrice
	}
	// 24h change may legitimately be negative, only NaN/Inf are rejected
	if validFinite(delta.PriceChange24h) {
		out.PriceChange24h = *delta.PriceChange24h
	}
	if validMagnitude(delta.Volume24h) {
		out.Volume24h = *delta.Volume24h
	}
	if validMagnitude(delta.MarketCap) {
		out.MarketCap = *delta.MarketCap
	}
	if delta.RSI != nil && validFinite(delta.RSI) && *delta.RSI >= 0 && *delta.RSI <= 100 {
		out.TechnicalIndicators.RSI = *delta.RSI
	}

	return out
}

// PriceOverwritten reports whether Normalize would replace the current price,
// which is the minimum condition for marking a snapshot live.
func PriceOverwritten(delta *models.QuoteDelta) bool {
	return delta != nil && validMagnitude(delta.CurrentPrice)
}

func validFinite(v *float64) bool {
	return v != nil && !math.IsNaN(*v) && !math.IsInf(*v, 0)
}

func validMagnitude(v *float64) bool {
	return validFinite(v) && *v > 0
}
