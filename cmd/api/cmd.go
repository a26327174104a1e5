package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/tsmithofficiating/rules-backend/internal/bootstrap"
	"github.com/tsmithofficiating/rules-backend/internal/cache"
	"github.com/tsmithofficiating/rules-backend/internal/config"
	"github.com/tsmithofficiating/rules-backend/internal/crypto"
	"github.com/tsmithofficiating/rules-backend/internal/handlers"
	"github.com/tsmithofficiating/rules-backend/internal/response"
	"github.com/tsmithofficiating/rules-backend/internal/router"
	"github.com/tsmithofficiating/rules-backend/internal/services"
	"github.com/tsmithofficiating/rules-backend/internal/store"
	"github.com/tsmithofficiating/rules-backend/internal/web"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	// bootstrap
	cfg := config.New()
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)
	defer bs.Close()

	// helpers
	kmsHelper := crypto.NewKMS(bs.KMS, cfg.KMSKeyName)

	// stores
	astore := store.NewAnswerStore(bs.Firestore)
	sstore := store.NewSessionStore(bs.Firestore, kmsHelper)

	// services
	lserv := services.NewLookupService(bs.OpenAIAdapter, cache.NewMemo(), astore, services.LookupConfig{
		PromptID:              cfg.RulePromptID,
		PromptVersion:         cfg.RulePromptVersion,
		RuleVectorStoreID:     cfg.RuleVectorStoreID,
		CasebookVectorStoreID: cfg.CasebookVectorStoreID,
		Model:                 cfg.OpenAIModel,
		AnswerTTL:             cfg.AnswerTTL,
	})
	qserv := services.NewQAService(bs.VertexAdapter, sstore, cfg.QATTL)

	// response handler
	rh := response.New(bs.Log)

	// pages
	renderer, err := web.NewRenderer()
	exitOnError("template parse failed", err, bs.Log)

	// dependancies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.ResponseHandler = rh
	deps.Renderer = renderer
	deps.LookupSvc = lserv
	deps.QASvc = qserv

	// router
	r := router.NewRouter(deps)
	err = http.ListenAndServe(":8080", r)
	exitOnError("server start failed", err, bs.Log)
}
