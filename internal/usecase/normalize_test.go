package usecase

import (
	"math"
	"reflect"
	"testing"

	"MarketLens/internal/catalog"
	"MarketLens/internal/domain/models"
)

func fallbackBTC(t *testing.T) models.MarketSnapshot {
	t.Helper()
	s, ok := catalog.NewRegistry().Snapshot("BTC")
	if !ok {
		t.Fatalf("catalog missing BTC")
	}
	return s
}

func f64(v float64) *float64 { return &v }

func TestNormalizeNilDeltaIsIdentity(t *testing.T) {
	fb := fallbackBTC(t)
	got := Normalize(fb, nil)
	if !reflect.DeepEqual(got, fb) {
		t.Fatalf("normalize(f, nil) != f")
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	fb := fallbackBTC(t)
	delta := &models.QuoteDelta{CurrentPrice: f64(45000.5), RSI: f64(61.2)}

	once := Normalize(fb, delta)
	twice := Normalize(once, delta)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("normalize not idempotent: %+v vs %+v", once, twice)
	}
}

func TestNormalizeOverwritesValidFields(t *testing.T) {
	fb := fallbackBTC(t)
	delta := &models.QuoteDelta{
		CurrentPrice:   f64(45000.5),
		PriceChange24h: f64(-2.4),
		Volume24h:      f64(30_000_000_000),
		RSI:            f64(61.2),
	}

	got := Normalize(fb, delta)
	if got.CurrentPrice != 45000.5 {
		t.Fatalf("price not overwritten: %v", got.CurrentPrice)
	}
	if got.PriceChange24h != -2.4 {
		t.Fatalf("negative change must be accepted: %v", got.PriceChange24h)
	}
	if got.Volume24h != 30_000_000_000 {
		t.Fatalf("volume not overwritten: %v", got.Volume24h)
	}
	if got.TechnicalIndicators.RSI != 61.2 {
		t.Fatalf("rsi not overwritten: %v", got.TechnicalIndicators.RSI)
	}
	// untouched fields keep fallback values
	if got.MarketCap != fb.MarketCap {
		t.Fatalf("marketCap changed without delta")
	}
	if !reflect.DeepEqual(got.SupplyDemandZones, fb.SupplyDemandZones) {
		t.Fatalf("zones changed without delta")
	}
}

func TestNormalizeRejectsInsaneValues(t *testing.T) {
	fb := fallbackBTC(t)

	cases := []struct {
		name  string
		delta *models.QuoteDelta
	}{
		{"nan price", &models.QuoteDelta{CurrentPrice: f64(math.NaN())}},
		{"inf price", &models.QuoteDelta{CurrentPrice: f64(math.Inf(1))}},
		{"negative price", &models.QuoteDelta{CurrentPrice: f64(-100)}},
		{"zero price", &models.QuoteDelta{CurrentPrice: f64(0)}},
		{"rsi above 100", &models.QuoteDelta{RSI: f64(120)}},
		{"rsi below 0", &models.QuoteDelta{RSI: f64(-5)}},
		{"negative volume", &models.QuoteDelta{Volume24h: f64(-1)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Normalize(fb, tc.delta)
			if !reflect.DeepEqual(got, fb) {
				t.Fatalf("invalid field must be treated as absent")
			}
		})
	}
}

func TestPriceOverwritten(t *testing.T) {
	if PriceOverwritten(nil) {
		t.Fatalf("nil delta cannot overwrite")
	}
	if PriceOverwritten(&models.QuoteDelta{}) {
		t.Fatalf("nil price cannot overwrite")
	}
	if PriceOverwritten(&models.QuoteDelta{CurrentPrice: f64(0)}) {
		t.Fatalf("zero price must be a parse failure, not live data")
	}
	if !PriceOverwritten(&models.QuoteDelta{CurrentPrice: f64(45000.5)}) {
		t.Fatalf("valid price must overwrite")
	}
}
