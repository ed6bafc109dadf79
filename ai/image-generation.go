package ai

import (
	"LogoBot/core"
	"LogoBot/lib/sl"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// OpenAIImages generates images with the OpenAI images endpoint.
type OpenAIImages struct {
	model  string
	log    *slog.Logger
	client *openai.Client
}

var _ core.ImageGenerator = (*OpenAIImages)(nil)

func NewOpenAIImages(conf *core.Config, log *slog.Logger) *OpenAIImages {
	config := openai.DefaultConfig(conf.OpenAIApiKey)
	if conf.OpenAIBaseURL != "" {
		config.BaseURL = conf.OpenAIBaseURL
	}
	config.HTTPClient = &http.Client{
		Timeout: conf.Generator.Timeout,
	}

	// hugging face model ids are not valid here
	model := conf.Generator.Model
	if model == "" || strings.Contains(model, "/") {
		model = openai.CreateImageModelDallE3
	}

	return &OpenAIImages{
		model:  model,
		log:    log.With(sl.Module("openai-images")),
		client: openai.NewClientWithConfig(config),
	}
}

func (o *OpenAIImages) Generate(ctx context.Context, prompt string) ([]byte, error) {
	resp, err := o.client.CreateImage(ctx, openai.ImageRequest{
		Prompt:         prompt,
		Model:          o.model,
		N:              1,
		Size:           openai.CreateImageSize1024x1024,
		ResponseFormat: openai.CreateImageResponseFormatB64JSON,
	})
	if err != nil {
		return nil, o.classify(err)
	}
	if len(resp.Data) == 0 {
		o.log.Error("empty image data")
		return nil, errors.New("no image data returned")
	}

	image, err := base64.StdEncoding.DecodeString(resp.Data[0].B64JSON)
	if err != nil {
		o.log.Error("decoding image", sl.Err(err))
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	return image, nil
}

func (o *OpenAIImages) classify(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		o.log.With(
			slog.Int("status", apiErr.HTTPStatusCode),
			slog.String("body", apiErr.Message),
		).Error("images api error")
		return &StatusError{Code: apiErr.HTTPStatusCode, Body: apiErr.Message}
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) && reqErr.HTTPStatusCode != 0 && reqErr.HTTPStatusCode != http.StatusOK {
		o.log.With(
			slog.Int("status", reqErr.HTTPStatusCode),
		).Error("images api error", sl.Err(err))
		return &StatusError{Code: reqErr.HTTPStatusCode, Body: err.Error()}
	}
	if isTimeout(err) {
		o.log.Warn("request timeout", sl.Err(err))
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	o.log.Error("images request failed", sl.Err(err))
	return fmt.Errorf("creating image: %w", err)
}
