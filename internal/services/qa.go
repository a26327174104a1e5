package services

import (
	"context"
	"time"

	"github.com/tsmithofficiating/rules-backend/internal/dto"
	"github.com/tsmithofficiating/rules-backend/internal/models"
	"github.com/tsmithofficiating/rules-backend/pkg/helpers"
	"github.com/tsmithofficiating/rules-backend/pkg/logger"
)

type vertexClient interface {
	GenerateContent(ctx context.Context, req dto.VertexGenerateRequest) (dto.VertexGenerateResponse, error)
}

type sessionStore interface {
	SaveMessage(ctx context.Context, sessionID string, msg models.QAMessage) error
	ListMessages(ctx context.Context, sessionID string, limit int) ([]models.QAMessage, error)
}

type qaService struct {
	vertex   vertexClient
	store    sessionStore
	ttl      time.Duration
	clockNow func() time.Time
}

func NewQAService(vertex vertexClient, store sessionStore, ttl time.Duration) *qaService {
	return &qaService{
		vertex:   vertex,
		store:    store,
		ttl:      ttl,
		clockNow: time.Now,
	}
}

const (
	historyWindow     = 8
	qaTemperature     = 0.2
	qaMaxOutputTokens = 1024
)

// Ask answers a free-form rules question with a short session history for
// follow-ups. One generation per call; no tools.
func (s *qaService) Ask(ctx context.Context, sessionID, question string) (dto.QAResponse, error) {
	log := logger.FromContext(ctx)

	history, err := s.store.ListMessages(ctx, sessionID, historyWindow)
	if err != nil {
		return dto.QAResponse{}, err
	}

	resp, err := s.vertex.GenerateContent(ctx, dto.VertexGenerateRequest{
		System:          qaSystemPrompt(),
		Contents:        convertMessagesToContents(history, question),
		Temperature:     helpers.Ptr(float32(qaTemperature)),
		MaxOutputTokens: helpers.Ptr(int32(qaMaxOutputTokens)),
	})
	if err != nil {
		return dto.QAResponse{}, err
	}

	if err := s.saveMessage(ctx, sessionID, models.QAMessage{
		Role:    "user",
		Content: question,
	}); err != nil {
		return dto.QAResponse{}, err
	}
	// Only save non-empty assistant responses
	if resp.Text != "" {
		if err := s.saveMessage(ctx, sessionID, models.QAMessage{
			Role:    "assistant",
			Content: resp.Text,
		}); err != nil {
			return dto.QAResponse{}, err
		}
	}

	log.Info("qa completed", "session_id", sessionID)
	return dto.QAResponse{SessionID: sessionID, Answer: resp.Text}, nil
}

func convertMessagesToContents(history []models.QAMessage, currentQuestion string) []dto.VertexContent {
	contents := make([]dto.VertexContent, 0, len(history)+1)

	for _, msg := range history {
		switch msg.Role {
		case "user":
			contents = append(contents, dto.VertexContent{Role: "user", Text: msg.Content})
		case "assistant":
			if msg.Content != "" {
				contents = append(contents, dto.VertexContent{Role: "model", Text: msg.Content})
			}
		}
	}

	contents = append(contents, dto.VertexContent{Role: "user", Text: currentQuestion})
	return contents
}

func (s *qaService) saveMessage(ctx context.Context, sessionID string, msg models.QAMessage) error {
	now := s.clockNow()
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = now
	}
	if s.ttl > 0 {
		msg.ExpiresAt = now.Add(s.ttl)
	}
	return s.store.SaveMessage(ctx, sessionID, msg)
}

func qaSystemPrompt() string {
	return "You are a high school football rules assistant. Answer questions about " +
		"playing rules, penalty enforcement, and officiating scenarios. Cite the rule, " +
		"section, and article you rely on (e.g., 8-5-3) when you can. If a question " +
		"falls outside the playing rules, say so rather than guessing."
}
