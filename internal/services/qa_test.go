package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tsmithofficiating/rules-backend/internal/dto"
	"github.com/tsmithofficiating/rules-backend/internal/errs"
	"github.com/tsmithofficiating/rules-backend/internal/models"
	"github.com/tsmithofficiating/rules-backend/pkg/helpers"
)

type fakeVertexClient struct {
	calls    int
	requests []dto.VertexGenerateRequest
	text     string
	err      error
}

func (f *fakeVertexClient) GenerateContent(ctx context.Context, req dto.VertexGenerateRequest) (dto.VertexGenerateResponse, error) {
	f.calls++
	f.requests = append(f.requests, req)
	if f.err != nil {
		return dto.VertexGenerateResponse{}, f.err
	}
	return dto.VertexGenerateResponse{Text: f.text}, nil
}

type fakeSessionStore struct {
	history []models.QAMessage
	saved   []models.QAMessage
	listErr error
	saveErr error
}

func (f *fakeSessionStore) ListMessages(ctx context.Context, sessionID string, limit int) ([]models.QAMessage, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.history, nil
}

func (f *fakeSessionStore) SaveMessage(ctx context.Context, sessionID string, msg models.QAMessage) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, msg)
	return nil
}

func TestAskSavesBothTurns(t *testing.T) {
	vertex := &fakeVertexClient{text: "A fair catch may be made."}
	store := &fakeSessionStore{}

	svc := NewQAService(vertex, store, 0)
	resp, err := svc.Ask(helpers.TestCtx(), "session-1", "Can you fair catch a kickoff?")
	if err != nil {
		t.Fatalf("Ask error: %v", err)
	}

	if resp.SessionID != "session-1" || resp.Answer != "A fair catch may be made." {
		t.Fatalf("response mismatch: %+v", resp)
	}
	if len(store.saved) != 2 {
		t.Fatalf("expected user and assistant turns saved, got %d", len(store.saved))
	}
	if store.saved[0].Role != "user" || store.saved[0].Content != "Can you fair catch a kickoff?" {
		t.Fatalf("user turn mismatch: %+v", store.saved[0])
	}
	if store.saved[1].Role != "assistant" || store.saved[1].Content != "A fair catch may be made." {
		t.Fatalf("assistant turn mismatch: %+v", store.saved[1])
	}
}

func TestAskSkipsEmptyAssistantTurn(t *testing.T) {
	vertex := &fakeVertexClient{text: ""}
	store := &fakeSessionStore{}

	svc := NewQAService(vertex, store, 0)
	resp, err := svc.Ask(helpers.TestCtx(), "session-1", "hello?")
	if err != nil {
		t.Fatalf("Ask error: %v", err)
	}

	if resp.Answer != "" {
		t.Fatalf("expected empty answer, got %q", resp.Answer)
	}
	if len(store.saved) != 1 || store.saved[0].Role != "user" {
		t.Fatalf("only the user turn should be saved, got %+v", store.saved)
	}
}

func TestAskCarriesSessionHistory(t *testing.T) {
	vertex := &fakeVertexClient{text: "Yes, by rule 6-5."}
	store := &fakeSessionStore{history: []models.QAMessage{
		{Role: "user", Content: "Can you fair catch a kickoff?"},
		{Role: "assistant", Content: "A fair catch may be made."},
		{Role: "assistant", Content: ""},
		{Role: "system", Content: "ignored"},
	}}

	svc := NewQAService(vertex, store, 0)
	if _, err := svc.Ask(helpers.TestCtx(), "session-1", "Even behind the line?"); err != nil {
		t.Fatalf("Ask error: %v", err)
	}

	contents := vertex.requests[0].Contents
	want := []dto.VertexContent{
		{Role: "user", Text: "Can you fair catch a kickoff?"},
		{Role: "model", Text: "A fair catch may be made."},
		{Role: "user", Text: "Even behind the line?"},
	}
	if len(contents) != len(want) {
		t.Fatalf("contents length mismatch: %+v", contents)
	}
	for i := range want {
		if contents[i] != want[i] {
			t.Fatalf("content %d mismatch: got %+v want %+v", i, contents[i], want[i])
		}
	}
	if vertex.requests[0].System == "" {
		t.Fatal("expected a system instruction")
	}
	if vertex.requests[0].Temperature == nil || vertex.requests[0].MaxOutputTokens == nil {
		t.Fatal("generation options not set")
	}
}

func TestAskStampsMessageTTL(t *testing.T) {
	vertex := &fakeVertexClient{text: "answer"}
	store := &fakeSessionStore{}

	svc := NewQAService(vertex, store, 24*time.Hour)
	now := time.Date(2025, time.September, 1, 12, 0, 0, 0, time.UTC)
	svc.clockNow = func() time.Time { return now }

	if _, err := svc.Ask(helpers.TestCtx(), "session-1", "q"); err != nil {
		t.Fatalf("Ask error: %v", err)
	}

	for _, msg := range store.saved {
		if !msg.CreatedAt.Equal(now) {
			t.Fatalf("created at mismatch: %v", msg.CreatedAt)
		}
		if !msg.ExpiresAt.Equal(now.Add(24 * time.Hour)) {
			t.Fatalf("expires at mismatch: %v", msg.ExpiresAt)
		}
	}
}

func TestAskVertexFailureSurfaces(t *testing.T) {
	vertex := &fakeVertexClient{
		err: errs.NewExternalServiceError("vertex", "generate failed", true, errors.New("unavailable")),
	}
	store := &fakeSessionStore{}

	svc := NewQAService(vertex, store, 0)
	_, err := svc.Ask(helpers.TestCtx(), "session-1", "q")
	if _, ok := err.(*errs.ExternalServiceError); !ok {
		t.Fatalf("expected ExternalServiceError, got %v", err)
	}
	if len(store.saved) != 0 {
		t.Fatal("no turns should be saved when generation fails")
	}
}

func TestAskHistoryReadFailureSurfaces(t *testing.T) {
	vertex := &fakeVertexClient{text: "answer"}
	store := &fakeSessionStore{
		listErr: errs.NewDatabaseError("read", "firestore down", errors.New("unavailable")),
	}

	svc := NewQAService(vertex, store, 0)
	if _, err := svc.Ask(helpers.TestCtx(), "session-1", "q"); err == nil {
		t.Fatal("expected error")
	}
	if vertex.calls != 0 {
		t.Fatal("no generation expected when history read fails")
	}
}
