package ai

import (
	"LogoBot/core"
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openAIConfig(baseURL string) *core.Config {
	conf := testConfig("")
	conf.Generator.Provider = core.ProviderOpenAI
	conf.OpenAIApiKey = "sk-test"
	conf.OpenAIBaseURL = baseURL
	return conf
}

func TestOpenAIImages_Generate(t *testing.T) {
	image := []byte("PNGDATA")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/images/generations", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var req openai.ImageRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "a fox", req.Prompt)
		assert.Equal(t, openai.CreateImageModelDallE3, req.Model)
		assert.Equal(t, openai.CreateImageResponseFormatB64JSON, req.ResponseFormat)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"created": 1,
			"data": []map[string]string{
				{"b64_json": base64.StdEncoding.EncodeToString(image)},
			},
		})
	}))
	defer server.Close()

	gen := NewOpenAIImages(openAIConfig(server.URL+"/v1"), testLogger())
	result, err := gen.Generate(context.Background(), "a fox")

	require.NoError(t, err)
	assert.Equal(t, image, result)
}

func TestOpenAIImages_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"bad prompt","type":"invalid_request_error"}}`))
	}))
	defer server.Close()

	gen := NewOpenAIImages(openAIConfig(server.URL+"/v1"), testLogger())
	result, err := gen.Generate(context.Background(), "a fox")

	assert.Nil(t, result)
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadRequest, statusErr.Code)
}

func TestNewGenerator(t *testing.T) {
	_, ok := NewGenerator(testConfig("http://localhost"), testLogger()).(*HuggingFace)
	assert.True(t, ok)

	_, ok = NewGenerator(openAIConfig(""), testLogger()).(*OpenAIImages)
	assert.True(t, ok)
}
