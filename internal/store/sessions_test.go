package store

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/tsmithofficiating/rules-backend/internal/models"
)

// reversible stand-in so the emulator test can verify content round-trips
// through the encrypt/decrypt path.
type fakeKMS struct {
	encrypts int
	decrypts int
}

func (f *fakeKMS) KmsEncrypt(ctx context.Context, plaintext string) (string, error) {
	f.encrypts++
	return "enc:" + plaintext, nil
}

func (f *fakeKMS) KmsDecrypt(ctx context.Context, ciphertext string) (string, error) {
	f.decrypts++
	return strings.TrimPrefix(ciphertext, "enc:"), nil
}

func TestSessionStoreWithEmulator(t *testing.T) {
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}

	ctx := context.Background()
	client, err := firestore.NewClient(ctx, "test-project")
	if err != nil {
		t.Fatalf("firestore client error: %v", err)
	}
	defer client.Close()

	kms := &fakeKMS{}
	store := NewSessionStore(client, kms)

	now := time.Now()
	turns := []models.QAMessage{
		{Role: "user", Content: "Can they fair catch?", CreatedAt: now.Add(-2 * time.Minute)},
		{Role: "assistant", Content: "Yes, by rule 6-5.", CreatedAt: now.Add(-time.Minute)},
		{Role: "user", Content: "Even behind the line?", CreatedAt: now},
	}
	for _, msg := range turns {
		if err := store.SaveMessage(ctx, "session-1", msg); err != nil {
			t.Fatalf("save message error: %v", err)
		}
	}
	if kms.encrypts != len(turns) {
		t.Fatalf("expected %d encrypts, got %d", len(turns), kms.encrypts)
	}

	got, err := store.ListMessages(ctx, "session-1", 2)
	if err != nil {
		t.Fatalf("list messages error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(got))
	}
	// the two most recent turns, oldest first, decrypted
	if got[0].Content != "Yes, by rule 6-5." || got[1].Content != "Even behind the line?" {
		t.Fatalf("messages out of order or not decrypted: %+v", got)
	}

	empty, err := store.ListMessages(ctx, "no-such-session", 8)
	if err != nil {
		t.Fatalf("list messages error: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected no messages, got %d", len(empty))
	}
}
