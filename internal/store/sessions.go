package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/tsmithofficiating/rules-backend/internal/errs"
	"github.com/tsmithofficiating/rules-backend/internal/models"
)

type kmsHelper interface {
	KmsEncrypt(ctx context.Context, plaintext string) (string, error)
	KmsDecrypt(ctx context.Context, ciphertext string) (string, error)
}

// sessionStore keeps Q&A turns per session. Message content is encrypted
// with KMS before it reaches Firestore.
type sessionStore struct {
	client *firestore.Client
	kms    kmsHelper
}

func NewSessionStore(client *firestore.Client, kms kmsHelper) *sessionStore {
	return &sessionStore{client: client, kms: kms}
}

func (s *sessionStore) messagesCollection(sessionID string) *firestore.CollectionRef {
	return s.client.Collection("qa_sessions").Doc(sessionID).Collection("messages")
}

func (s *sessionStore) SaveMessage(ctx context.Context, sessionID string, msg models.QAMessage) error {
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now()
	}

	if msg.Content != "" {
		enc, err := s.kms.KmsEncrypt(ctx, msg.Content)
		if err != nil {
			return errs.NewEncryptionError("failed to encrypt message content", err)
		}
		msg.Content = enc
	}

	_, _, err := s.messagesCollection(sessionID).Add(ctx, msg)
	if err != nil {
		return errs.NewDatabaseError("create", "failed to save QA message", err)
	}
	return nil
}

// ListMessages returns up to limit most recent turns in chronological order.
func (s *sessionStore) ListMessages(ctx context.Context, sessionID string, limit int) ([]models.QAMessage, error) {
	query := s.messagesCollection(sessionID).Query.OrderBy("createdAt", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var out []models.QAMessage
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errs.NewDatabaseError("read", "failed to list QA messages", err)
		}
		var msg models.QAMessage
		if err := doc.DataTo(&msg); err != nil {
			return nil, errs.NewDatabaseError("read", "failed to parse QA message data", err)
		}

		if msg.Content != "" {
			plain, err := s.kms.KmsDecrypt(ctx, msg.Content)
			if err != nil {
				return nil, errs.NewEncryptionError("failed to decrypt message content", err)
			}
			msg.Content = plain
		}

		out = append(out, msg)
	}

	reverseMessages(out)
	return out, nil
}

func reverseMessages(msgs []models.QAMessage) {
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
}
