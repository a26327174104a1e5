package bootstrap

import (
	"context"
	"log/slog"

	"cloud.google.com/go/firestore"
	gcpkms "cloud.google.com/go/kms/apiv1"
	secretmanager "cloud.google.com/go/secretmanager/apiv1"

	openaiclient "github.com/tsmithofficiating/rules-backend/internal/client/openai"
	vertexclient "github.com/tsmithofficiating/rules-backend/internal/client/vertex"
	"github.com/tsmithofficiating/rules-backend/internal/config"
	"github.com/tsmithofficiating/rules-backend/internal/store"
	"github.com/tsmithofficiating/rules-backend/pkg/logger"
)

type Bootstrap struct {
	Log           *slog.Logger
	Firestore     *firestore.Client
	Secrets       *secretmanager.Client
	KMS           *gcpkms.KeyManagementClient
	OpenAIAdapter *openaiclient.Adapter
	VertexAdapter *vertexclient.Adapter
}

func Run(cfg *config.Config) (*Bootstrap, error) {
	var err error
	applicationCtx := context.Background()
	bs := new(Bootstrap)

	bs.Log = logger.New(cfg.LogLevel, logger.NewCloudRunHandler)
	bs.Firestore, err = InitFirestore(applicationCtx, cfg.ProjectID)
	if err != nil {
		return bs, err
	}
	bs.Secrets, err = secretmanager.NewClient(applicationCtx)
	if err != nil {
		return bs, err
	}
	bs.KMS, err = gcpkms.NewKeyManagementClient(applicationCtx)
	if err != nil {
		return bs, err
	}

	// the provider credential is fetched once at startup
	keys := store.NewAPIKeyStore(bs.Secrets, cfg.ProjectID, cfg.OpenAIKeySecretID)
	apiKey, err := keys.GetAPIKey(applicationCtx)
	if err != nil {
		return bs, err
	}
	bs.OpenAIAdapter = openaiclient.NewAdapter(bs.Log, cfg.OpenAIBaseURL, apiKey)

	bs.VertexAdapter, err = vertexclient.NewAdapter(applicationCtx, bs.Log, cfg.ProjectID, cfg.Region, cfg.VertexModel)
	if err != nil {
		return bs, err
	}

	return bs, nil
}

func (bs *Bootstrap) Close() {
	if bs.Firestore != nil {
		_ = bs.Firestore.Close()
	}
	if bs.Secrets != nil {
		_ = bs.Secrets.Close()
	}
	if bs.KMS != nil {
		_ = bs.KMS.Close()
	}
	if bs.VertexAdapter != nil {
		_ = bs.VertexAdapter.Close()
	}
}
