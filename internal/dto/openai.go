package dto

// Wire types for the OpenAI Responses API. Only the fields this service
// sends or reads are modeled; everything else passes through undecoded.

type ResponsesRequest struct {
	Prompt          *ResponsesPrompt `json:"prompt,omitempty"`
	Input           []InputMessage   `json:"input"`
	Tools           []ResponsesTool  `json:"tools,omitempty"`
	Text            *ResponsesText   `json:"text,omitempty"`
	MaxOutputTokens int              `json:"max_output_tokens,omitempty"`
	Store           bool             `json:"store"`
}

type ResponsesPrompt struct {
	ID      string `json:"id"`
	Version string `json:"version,omitempty"`
}

type InputMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ResponsesTool struct {
	Type           string   `json:"type"`
	VectorStoreIDs []string `json:"vector_store_ids,omitempty"`
}

type ResponsesText struct {
	Format ResponsesTextFormat `json:"format"`
}

type ResponsesTextFormat struct {
	Type string `json:"type"`
}

// ResponsesResult is the decoded response. Output items come in two
// documented shapes: a direct text value, or a list of content blocks.
type ResponsesResult struct {
	ID     string       `json:"id,omitempty"`
	Output []OutputItem `json:"output"`
	Usage  *Usage       `json:"usage,omitempty"`
}

type OutputItem struct {
	Type    string         `json:"type,omitempty"`
	Text    *OutputText    `json:"text,omitempty"`
	Content []ContentBlock `json:"content,omitempty"`
}

type OutputText struct {
	Value string `json:"value"`
}

type ContentBlock struct {
	Type string `json:"type,omitempty"`
	Text string `json:"text,omitempty"`
}

type Usage struct {
	InputTokens        int                `json:"input_tokens"`
	OutputTokens       int                `json:"output_tokens"`
	TotalTokens        int                `json:"total_tokens"`
	InputTokensDetails *InputTokensDetail `json:"input_tokens_details,omitempty"`
}

type InputTokensDetail struct {
	CachedTokens             int `json:"cached_tokens"`
	CacheCreationInputTokens int `json:"cache_creation_input_tokens"`
}

// APIError is the error envelope the provider returns on non-2xx statuses.
type APIError struct {
	Error struct {
		Type    string `json:"type"`
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
