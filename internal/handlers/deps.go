package handlers

import (
	"context"
	"log/slog"

	"github.com/tsmithofficiating/rules-backend/internal/dto"
	"github.com/tsmithofficiating/rules-backend/internal/response"
	"github.com/tsmithofficiating/rules-backend/internal/web"
)

type LookupService interface {
	Lookup(ctx context.Context, query string, debug bool) (dto.LookupResponse, error)
}

type QAService interface {
	Ask(ctx context.Context, sessionID, question string) (dto.QAResponse, error)
}

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler
	Renderer        *web.Renderer
	LookupSvc       LookupService
	QASvc           QAService
}
