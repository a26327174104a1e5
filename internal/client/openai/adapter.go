package openaiclient

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/tsmithofficiating/rules-backend/internal/dto"
	"github.com/tsmithofficiating/rules-backend/internal/errs"
)

type Adapter struct {
	client  *resty.Client
	baseURL string
	apiKey  string
	log     *slog.Logger
}

func NewAdapter(log *slog.Logger, baseURL, apiKey string) *Adapter {
	client := resty.New()
	client.SetTimeout(60 * time.Second)
	client.SetRetryCount(2)
	client.SetRetryWaitTime(1 * time.Second)
	client.SetRetryMaxWaitTime(5 * time.Second)

	return &Adapter{
		client:  client,
		baseURL: baseURL,
		apiKey:  apiKey,
		log:     log,
	}
}

// CreateResponse calls the Responses API once and decodes the result.
func (a *Adapter) CreateResponse(ctx context.Context, req dto.ResponsesRequest) (dto.ResponsesResult, error) {
	out := dto.ResponsesResult{}

	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", "Bearer "+a.apiKey).
		SetBody(req).
		Post(a.baseURL + "/responses")
	if err != nil {
		return out, errs.NewExternalServiceError("openai", "responses call failed", true, err)
	}

	if resp.StatusCode() != http.StatusOK {
		return out, a.statusError(resp)
	}

	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return out, errs.NewExternalServiceError("openai", "failed to decode responses payload", false, err)
	}

	return out, nil
}

func (a *Adapter) statusError(resp *resty.Response) error {
	message := "provider returned " + resp.Status()
	var apiErr dto.APIError
	if err := json.Unmarshal(resp.Body(), &apiErr); err == nil && apiErr.Error.Message != "" {
		message = apiErr.Error.Message
	}

	// 429 and 5xx are retryable from the caller's perspective
	transient := resp.StatusCode() == http.StatusTooManyRequests ||
		resp.StatusCode() >= http.StatusInternalServerError

	a.log.Warn("openai responses error",
		"status", resp.StatusCode(),
		"transient", transient,
	)

	return errs.NewExternalServiceError("openai", message, transient, nil)
}
