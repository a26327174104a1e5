package pricing

import "github.com/tsmithofficiating/rules-backend/internal/dto"

// Per-token USD rates for a model. Cached input tokens bill at the cached
// rate and are subtracted from the full-rate input amount.
type Rates struct {
	InputPerToken  float64
	CachedPerToken float64
	OutputPerToken float64
}

var modelRates = map[string]Rates{
	"gpt-4.1-mini": {
		InputPerToken:  0.0000004,
		CachedPerToken: 0.0000001,
		OutputPerToken: 0.0000016,
	},
	"gpt-4.1": {
		InputPerToken:  0.000002,
		CachedPerToken: 0.0000005,
		OutputPerToken: 0.000008,
	},
}

// RatesFor returns the rate card for a model. Unknown models fall back to
// gpt-4.1-mini so a misconfigured model name still yields an estimate.
func RatesFor(model string) Rates {
	if r, ok := modelRates[model]; ok {
		return r
	}
	return modelRates["gpt-4.1-mini"]
}

type Cost struct {
	InputUSD  float64
	CachedUSD float64
	OutputUSD float64
	TotalUSD  float64
}

// Estimate prices one call from its usage counters. A nil usage costs zero.
func Estimate(model string, usage *dto.Usage) Cost {
	if usage == nil {
		return Cost{}
	}

	rates := RatesFor(model)

	cached := 0
	if usage.InputTokensDetails != nil {
		cached = usage.InputTokensDetails.CachedTokens
	}
	if cached > usage.InputTokens {
		cached = usage.InputTokens
	}

	c := Cost{
		InputUSD:  float64(usage.InputTokens-cached) * rates.InputPerToken,
		CachedUSD: float64(cached) * rates.CachedPerToken,
		OutputUSD: float64(usage.OutputTokens) * rates.OutputPerToken,
	}
	c.TotalUSD = c.InputUSD + c.CachedUSD + c.OutputUSD
	return c
}
