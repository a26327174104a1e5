package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tsmithofficiating/rules-backend/internal/dto"
	"github.com/tsmithofficiating/rules-backend/internal/errs"
	"github.com/tsmithofficiating/rules-backend/internal/middleware"
	"github.com/tsmithofficiating/rules-backend/internal/response"
)

type lookupHandlers struct {
	ResponseHandler response.ResponseHandler
	LookupSvc       LookupService
}

func NewLookupHandlers(deps *Deps) *lookupHandlers {
	return &lookupHandlers{
		ResponseHandler: deps.ResponseHandler,
		LookupSvc:       deps.LookupSvc,
	}
}

func (h *lookupHandlers) LookupRoutes() chi.Router {
	r := chi.NewRouter()
	r.Post("/query", h.Query)
	return r
}

func (h *lookupHandlers) Query(w http.ResponseWriter, r *http.Request) {
	var body dto.LookupRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	if body.Query == "" {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("query is required"))
		return
	}

	resp, err := h.LookupSvc.Lookup(r.Context(), body.Query, middleware.Debug(r.Context()))
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, resp)
}
