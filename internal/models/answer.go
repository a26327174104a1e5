package models

import "time"

// CachedAnswer is one resolved rule lookup persisted in Firestore. The
// document id is the SHA-256 hash of the normalized query.
type CachedAnswer struct {
	Query        string    `firestore:"query" json:"query"`
	Answer       string    `firestore:"answer" json:"answer"`
	Model        string    `firestore:"model" json:"model"`
	InputTokens  int       `firestore:"inputTokens" json:"inputTokens"`
	OutputTokens int       `firestore:"outputTokens" json:"outputTokens"`
	CreatedAt    time.Time `firestore:"createdAt" json:"createdAt"`
	ExpiresAt    time.Time `firestore:"expiresAt,omitempty" json:"expiresAt,omitempty"`
}
