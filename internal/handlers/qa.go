package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tsmithofficiating/rules-backend/internal/dto"
	"github.com/tsmithofficiating/rules-backend/internal/errs"
	"github.com/tsmithofficiating/rules-backend/internal/response"
)

type qaHandlers struct {
	ResponseHandler response.ResponseHandler
	QASvc           QAService
}

func NewQAHandlers(deps *Deps) *qaHandlers {
	return &qaHandlers{
		ResponseHandler: deps.ResponseHandler,
		QASvc:           deps.QASvc,
	}
}

func (h *qaHandlers) QARoutes() chi.Router {
	r := chi.NewRouter()
	r.Post("/ask", h.Ask)
	return r
}

func (h *qaHandlers) Ask(w http.ResponseWriter, r *http.Request) {
	var body dto.QARequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	if body.Question == "" {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("question is required"))
		return
	}
	if body.SessionID == "" {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("sessionId is required"))
		return
	}

	resp, err := h.QASvc.Ask(r.Context(), body.SessionID, body.Question)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, resp)
}
