package ai

import (
	"LogoBot/core"
	"log/slog"
)

// NewGenerator returns the image backend selected by generator.provider.
func NewGenerator(conf *core.Config, log *slog.Logger) core.ImageGenerator {
	if conf.Generator.Provider == core.ProviderOpenAI {
		return NewOpenAIImages(conf, log)
	}
	return NewHuggingFace(conf, log)
}
