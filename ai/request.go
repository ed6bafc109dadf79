package ai

import (
	"errors"
	"fmt"
)

// ErrTimeout reports that the backend did not answer in time, which usually
// means the model is still being loaded.
var ErrTimeout = errors.New("generation timed out")

// InferenceRequest is the body of a Hugging Face text-to-image call.
type InferenceRequest struct {
	Inputs string `json:"inputs"`
}

func NewInferenceRequest(prompt string) *InferenceRequest {
	return &InferenceRequest{
		Inputs: prompt,
	}
}

// StatusError is returned when the backend answers with a non-200 status.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	body := e.Body
	if len(body) > 200 {
		body = body[:200] + "..."
	}
	return fmt.Sprintf("backend status %d: %s", e.Code, body)
}
