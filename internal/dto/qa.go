package dto

type QARequest struct {
	SessionID string `json:"sessionId"`
	Question  string `json:"question"`
}

type QAResponse struct {
	SessionID string `json:"sessionId"`
	Answer    string `json:"answer"`
}
