package pricing

import (
	"math"
	"testing"

	"github.com/tsmithofficiating/rules-backend/internal/dto"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-12
}

func TestEstimate(t *testing.T) {
	usage := &dto.Usage{
		InputTokens:  1000,
		OutputTokens: 500,
		InputTokensDetails: &dto.InputTokensDetail{
			CachedTokens: 200,
		},
	}

	c := Estimate("gpt-4.1-mini", usage)

	if !almostEqual(c.InputUSD, 800*0.0000004) {
		t.Fatalf("input cost mismatch: %v", c.InputUSD)
	}
	if !almostEqual(c.CachedUSD, 200*0.0000001) {
		t.Fatalf("cached cost mismatch: %v", c.CachedUSD)
	}
	if !almostEqual(c.OutputUSD, 500*0.0000016) {
		t.Fatalf("output cost mismatch: %v", c.OutputUSD)
	}
	if !almostEqual(c.TotalUSD, c.InputUSD+c.CachedUSD+c.OutputUSD) {
		t.Fatalf("total mismatch: %v", c.TotalUSD)
	}
}

func TestEstimateNoDetails(t *testing.T) {
	c := Estimate("gpt-4.1-mini", &dto.Usage{InputTokens: 100, OutputTokens: 10})
	if !almostEqual(c.InputUSD, 100*0.0000004) {
		t.Fatalf("input cost mismatch: %v", c.InputUSD)
	}
	if c.CachedUSD != 0 {
		t.Fatalf("expected zero cached cost, got %v", c.CachedUSD)
	}
}

func TestEstimateCachedClamped(t *testing.T) {
	// cached tokens reported above input tokens should not go negative
	usage := &dto.Usage{
		InputTokens:        100,
		InputTokensDetails: &dto.InputTokensDetail{CachedTokens: 150},
	}
	c := Estimate("gpt-4.1-mini", usage)
	if c.InputUSD < 0 {
		t.Fatalf("input cost went negative: %v", c.InputUSD)
	}
	if !almostEqual(c.CachedUSD, 100*0.0000001) {
		t.Fatalf("cached cost mismatch: %v", c.CachedUSD)
	}
}

func TestEstimateNilUsage(t *testing.T) {
	if c := Estimate("gpt-4.1-mini", nil); c.TotalUSD != 0 {
		t.Fatalf("expected zero cost for nil usage, got %v", c.TotalUSD)
	}
}

func TestRatesForUnknownModel(t *testing.T) {
	if RatesFor("some-future-model") != RatesFor("gpt-4.1-mini") {
		t.Fatal("unknown model should fall back to gpt-4.1-mini rates")
	}
}
