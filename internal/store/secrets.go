package store

import (
	"context"
	"fmt"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/tsmithofficiating/rules-backend/internal/errs"
)

// Secrets path
// projects/{project}/secrets/{secretID}/versions/latest

type apiKeyStore struct {
	client    *secretmanager.Client
	projectID string
	secretID  string
}

func NewAPIKeyStore(client *secretmanager.Client, projectID, secretID string) *apiKeyStore {
	return &apiKeyStore{
		client:    client,
		projectID: projectID,
		secretID:  secretID,
	}
}

func (s *apiKeyStore) secretName() string {
	return fmt.Sprintf("projects/%s/secrets/%s", s.projectID, s.secretID)
}

// GetAPIKey reads the latest version of the provider credential.
func (s *apiKeyStore) GetAPIKey(ctx context.Context) (string, error) {
	res, err := s.client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{
		Name: fmt.Sprintf("%s/versions/latest", s.secretName()),
	})
	if status.Code(err) == codes.NotFound {
		return "", errs.NewNotFoundError(fmt.Sprintf("secret %s not found", s.secretID))
	}
	if err != nil {
		return "", err
	}
	return string(res.Payload.Data), nil
}
