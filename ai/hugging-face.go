package ai

import (
	"LogoBot/core"
	"LogoBot/lib/sl"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"
)

// HuggingFace calls a text-to-image model through the Hugging Face
// Inference API. The response body of a successful call is the image.
type HuggingFace struct {
	url        string
	apiKey     string
	timeout    time.Duration
	log        *slog.Logger
	httpClient *http.Client
}

var _ core.ImageGenerator = (*HuggingFace)(nil)

func NewHuggingFace(conf *core.Config, log *slog.Logger) *HuggingFace {
	return &HuggingFace{
		url:     strings.TrimRight(conf.Generator.BaseURL, "/") + "/" + conf.Generator.Model,
		apiKey:  conf.Generator.ApiKey,
		timeout: conf.Generator.Timeout,
		log:     log.With(sl.Module("hugging-face")),
		httpClient: &http.Client{
			Timeout: conf.Generator.Timeout,
		},
	}
}

// Generate sends a single request for prompt; failures are never retried.
func (h *HuggingFace) Generate(ctx context.Context, prompt string) ([]byte, error) {
	jsonBytes, err := json.Marshal(NewInferenceRequest(prompt))
	if err != nil {
		return nil, fmt.Errorf("marshalling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.url, bytes.NewReader(jsonBytes))
	if err != nil {
		return nil, fmt.Errorf("making request: %w", err)
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", h.apiKey))
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.httpClient.Do(req)
	if err != nil {
		return nil, h.transportError(err)
	}
	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			h.log.Warn("closing response body", sl.Err(err))
		}
	}(resp.Body)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, h.transportError(err)
	}

	if resp.StatusCode != http.StatusOK {
		h.log.With(
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(body)),
		).Error("inference api error")
		return nil, &StatusError{Code: resp.StatusCode, Body: string(body)}
	}

	h.log.With(
		slog.Int("bytes", len(body)),
		slog.String("content_type", resp.Header.Get("Content-Type")),
	).Debug("image received")
	return body, nil
}

func (h *HuggingFace) transportError(err error) error {
	if isTimeout(err) {
		h.log.With(
			slog.Duration("timeout", h.timeout),
		).Warn("request timeout, model may be loading")
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	h.log.Error("inference request failed", sl.Err(err))
	return fmt.Errorf("sending request: %w", err)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
