package models

import "time"

// QAMessage is one turn of a general Q&A session. Content is stored
// KMS-encrypted; the store decrypts on read.
type QAMessage struct {
	Role      string    `firestore:"role" json:"role"`
	Content   string    `firestore:"content,omitempty" json:"content,omitempty"`
	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
	ExpiresAt time.Time `firestore:"expiresAt,omitempty" json:"expiresAt,omitempty"`
}
