package dto

type LookupRequest struct {
	Query string `json:"query"`
}

type LookupResponse struct {
	Query  string           `json:"query"`
	Answer string           `json:"answer"`
	Cached bool             `json:"cached"`
	Debug  *LookupDebugInfo `json:"debug,omitempty"`
}

// LookupDebugInfo carries token usage and the estimated call cost. Only
// populated for debug-mode requests; it never changes the answer itself.
type LookupDebugInfo struct {
	InputTokens              int     `json:"inputTokens"`
	OutputTokens             int     `json:"outputTokens"`
	CachedInputTokens        int     `json:"cachedInputTokens"`
	CacheCreationInputTokens int     `json:"cacheCreationInputTokens"`
	InputCostUSD             float64 `json:"inputCostUsd"`
	CachedCostUSD            float64 `json:"cachedCostUsd"`
	OutputCostUSD            float64 `json:"outputCostUsd"`
	TotalCostUSD             float64 `json:"totalCostUsd"`
}
