package core

import "context"

// ImageGenerator turns a ready prompt into raw image bytes.
type ImageGenerator interface {
	Generate(ctx context.Context, prompt string) ([]byte, error)
}
