package store

import (
	"context"
	"crypto/sha256"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/tsmithofficiating/rules-backend/internal/errs"
	"github.com/tsmithofficiating/rules-backend/internal/models"
)

type answerStore struct {
	Client     *firestore.Client
	Collection *firestore.CollectionRef
}

func NewAnswerStore(client *firestore.Client) *answerStore {
	return &answerStore{
		Client:     client,
		Collection: client.Collection("rule_answers"),
	}
}

// QueryHash derives the document id for a query string.
func QueryHash(query string) string {
	return fmt.Sprintf("%x", sha256.Sum256([]byte(query)))
}

// GetAnswer returns the cached answer for a query, or a NotFoundError when
// no document exists or the entry has passed its expiry.
func (s *answerStore) GetAnswer(ctx context.Context, query string) (*models.CachedAnswer, error) {
	doc, err := s.Collection.Doc(QueryHash(query)).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, errs.NewNotFoundError("no cached answer")
	}
	if err != nil {
		return nil, errs.NewDatabaseError("read", "failed to get cached answer", err)
	}

	var answer models.CachedAnswer
	if err := doc.DataTo(&answer); err != nil {
		return nil, errs.NewDatabaseError("read", "failed to parse cached answer", err)
	}

	if !answer.ExpiresAt.IsZero() && time.Now().After(answer.ExpiresAt) {
		return nil, errs.NewNotFoundError("cached answer expired")
	}

	return &answer, nil
}

// SaveAnswer upserts an answer under the query's hash. At most one document
// per query string.
func (s *answerStore) SaveAnswer(ctx context.Context, answer *models.CachedAnswer) error {
	if answer.CreatedAt.IsZero() {
		answer.CreatedAt = time.Now()
	}

	_, err := s.Collection.Doc(QueryHash(answer.Query)).Set(ctx, answer)
	if err != nil {
		return errs.NewDatabaseError("create", "failed to save cached answer", err)
	}
	return nil
}
