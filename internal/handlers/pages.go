package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tsmithofficiating/rules-backend/internal/middleware"
	"github.com/tsmithofficiating/rules-backend/internal/web"
	"github.com/tsmithofficiating/rules-backend/pkg/logger"
)

const (
	emptyQueryWarning    = "Please enter a rule ID to look up or enter a question or scenario."
	emptyQuestionWarning = "Please enter a question or test-style scenario."
	noResponseMessage    = "⚠️ No response received."
)

type pageHandlers struct {
	Renderer  *web.Renderer
	LookupSvc LookupService
	QASvc     QAService
}

func NewPageHandlers(deps *Deps) *pageHandlers {
	return &pageHandlers{
		Renderer:  deps.Renderer,
		LookupSvc: deps.LookupSvc,
		QASvc:     deps.QASvc,
	}
}

func (h *pageHandlers) PageRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.LookupPage)
	r.Post("/", h.LookupPage)
	r.Get("/qa", h.QAPage)
	r.Post("/qa", h.QAPage)
	return r
}

func (h *pageHandlers) LookupPage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	data := web.PageData{}

	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}
		data.Query = strings.TrimSpace(r.PostFormValue("query"))

		if data.Query == "" {
			data.Warning = emptyQueryWarning
		} else {
			resp, err := h.LookupSvc.Lookup(r.Context(), data.Query, middleware.Debug(r.Context()))
			if err != nil {
				// collapse all failures to a banner, the page stays usable
				log.Error("rule lookup failed", "error", err)
				data.Warning = "❌ Rule lookup failed: " + err.Error()
			} else {
				data.Answer = resp.Answer
				data.Debug = resp.Debug
			}
		}
	}

	h.render(w, log, func() error { return h.Renderer.LookupPage(w, data) })
}

func (h *pageHandlers) QAPage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	data := web.PageData{SessionID: uuid.NewString()}

	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}
		data.Question = strings.TrimSpace(r.PostFormValue("question"))
		if sid := strings.TrimSpace(r.PostFormValue("session_id")); sid != "" {
			data.SessionID = sid
		}

		if data.Question == "" {
			data.Warning = emptyQuestionWarning
		} else {
			resp, err := h.QASvc.Ask(r.Context(), data.SessionID, data.Question)
			if err != nil {
				log.Error("qa ask failed", "error", err)
				data.Warning = "❌ QA lookup failed: " + err.Error()
			} else if resp.Answer == "" {
				data.Answer = noResponseMessage
			} else {
				data.Answer = resp.Answer
			}
		}
	}

	h.render(w, log, func() error { return h.Renderer.QAPage(w, data) })
}

func (h *pageHandlers) render(w http.ResponseWriter, log *slog.Logger, render func() error) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := render(); err != nil {
		log.Error("page render failed", "error", err)
	}
}
