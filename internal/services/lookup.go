package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tsmithofficiating/rules-backend/internal/dto"
	"github.com/tsmithofficiating/rules-backend/internal/errs"
	"github.com/tsmithofficiating/rules-backend/internal/models"
	"github.com/tsmithofficiating/rules-backend/internal/pricing"
	"github.com/tsmithofficiating/rules-backend/pkg/logger"
)

type openaiClient interface {
	CreateResponse(ctx context.Context, req dto.ResponsesRequest) (dto.ResponsesResult, error)
}

type memoCache interface {
	Get(key string) (dto.LookupResponse, bool)
	Put(key string, resp dto.LookupResponse)
}

type answerStore interface {
	GetAnswer(ctx context.Context, query string) (*models.CachedAnswer, error)
	SaveAnswer(ctx context.Context, answer *models.CachedAnswer) error
}

type LookupConfig struct {
	PromptID              string
	PromptVersion         string
	RuleVectorStoreID     string
	CasebookVectorStoreID string
	Model                 string
	AnswerTTL             time.Duration
}

type lookupService struct {
	client   openaiClient
	memo     memoCache
	store    answerStore
	cfg      LookupConfig
	clockNow func() time.Time
}

func NewLookupService(client openaiClient, memo memoCache, store answerStore, cfg LookupConfig) *lookupService {
	return &lookupService{
		client:   client,
		memo:     memo,
		store:    store,
		cfg:      cfg,
		clockNow: time.Now,
	}
}

const maxOutputTokens = 2048

// Lookup resolves a rule id or free-text question. Identical queries are
// answered from the in-process memo (then the persistent cache) without a
// second provider call. Debug only controls whether usage/cost diagnostics
// ride along; it never changes the answer.
func (s *lookupService) Lookup(ctx context.Context, query string, debug bool) (dto.LookupResponse, error) {
	log := logger.FromContext(ctx)

	query = strings.TrimSpace(query)
	if query == "" {
		return dto.LookupResponse{}, errs.NewValidationError("query is required")
	}

	if resp, ok := s.memo.Get(query); ok {
		resp.Cached = true
		log.Info("rule lookup served from memo")
		return resp, nil
	}

	if cached, err := s.store.GetAnswer(ctx, query); err == nil {
		resp := dto.LookupResponse{Query: query, Answer: cached.Answer}
		s.memo.Put(query, resp)
		resp.Cached = true
		log.Info("rule lookup served from store")
		return resp, nil
	} else if _, ok := err.(*errs.NotFoundError); !ok {
		// the provider can still answer; don't fail the lookup on a cache read
		log.Warn("answer store read failed", "error", err)
	}

	res, err := s.client.CreateResponse(ctx, s.buildRequest(query))
	if err != nil {
		return dto.LookupResponse{}, err
	}

	answer, found := extractAnswer(res.Output)
	if !found {
		answer = fmt.Sprintf("No written response was generated for %q.", query)
	}

	resp := dto.LookupResponse{Query: query, Answer: answer}
	if debug {
		resp.Debug = debugInfo(s.cfg.Model, res.Usage)
	}

	s.memo.Put(query, dto.LookupResponse{Query: query, Answer: answer})
	s.persistAnswer(ctx, query, answer, res.Usage)

	log.Info("rule lookup completed")
	return resp, nil
}

func (s *lookupService) buildRequest(query string) dto.ResponsesRequest {
	// blank store ids are dropped rather than sent through
	ids := make([]string, 0, 2)
	for _, id := range []string{s.cfg.RuleVectorStoreID, s.cfg.CasebookVectorStoreID} {
		if strings.TrimSpace(id) != "" {
			ids = append(ids, id)
		}
	}

	req := dto.ResponsesRequest{
		Prompt: &dto.ResponsesPrompt{
			ID:      s.cfg.PromptID,
			Version: s.cfg.PromptVersion,
		},
		Input: []dto.InputMessage{
			{Role: "user", Content: "id:" + query},
		},
		Text:            &dto.ResponsesText{Format: dto.ResponsesTextFormat{Type: "text"}},
		MaxOutputTokens: maxOutputTokens,
		Store:           true,
	}
	if len(ids) > 0 {
		req.Tools = []dto.ResponsesTool{{
			Type:           "file_search",
			VectorStoreIDs: ids,
		}}
	}
	return req
}

// extractAnswer returns the first text field found in the output: a direct
// text value, else the first content block carrying text. found is false
// when neither shape is present anywhere.
func extractAnswer(output []dto.OutputItem) (answer string, found bool) {
	for _, out := range output {
		if out.Text != nil {
			return strings.TrimSpace(out.Text.Value), true
		}
		for _, block := range out.Content {
			if block.Text != "" {
				return strings.TrimSpace(block.Text), true
			}
		}
	}
	return "", false
}

func debugInfo(model string, usage *dto.Usage) *dto.LookupDebugInfo {
	if usage == nil {
		return nil
	}

	cost := pricing.Estimate(model, usage)
	info := &dto.LookupDebugInfo{
		InputTokens:   usage.InputTokens,
		OutputTokens:  usage.OutputTokens,
		InputCostUSD:  cost.InputUSD,
		CachedCostUSD: cost.CachedUSD,
		OutputCostUSD: cost.OutputUSD,
		TotalCostUSD:  cost.TotalUSD,
	}
	if usage.InputTokensDetails != nil {
		info.CachedInputTokens = usage.InputTokensDetails.CachedTokens
		info.CacheCreationInputTokens = usage.InputTokensDetails.CacheCreationInputTokens
	}
	return info
}

func (s *lookupService) persistAnswer(ctx context.Context, query, answer string, usage *dto.Usage) {
	now := s.clockNow()
	cached := &models.CachedAnswer{
		Query:     query,
		Answer:    answer,
		Model:     s.cfg.Model,
		CreatedAt: now,
	}
	if usage != nil {
		cached.InputTokens = usage.InputTokens
		cached.OutputTokens = usage.OutputTokens
	}
	if s.cfg.AnswerTTL > 0 {
		cached.ExpiresAt = now.Add(s.cfg.AnswerTTL)
	}

	if err := s.store.SaveAnswer(ctx, cached); err != nil {
		// the answer is already in hand; a write failure only costs reuse
		logger.FromContext(ctx).Warn("answer store write failed", "error", err)
	}
}
