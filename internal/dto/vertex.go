package dto

type VertexGenerateRequest struct {
	Model           string
	System          string
	Contents        []VertexContent
	Temperature     *float32
	MaxOutputTokens *int32
}

// VertexContent is one conversation turn. Role is "user" or "model".
type VertexContent struct {
	Role string
	Text string
}

type VertexGenerateResponse struct {
	Text string
	Raw  any
}
