package ai

import (
	"LogoBot/core"
	"fmt"
)

// LogoSuffix is appended to every prompt to steer the model towards logos.
const LogoSuffix = "logo design, vector style, professional, high quality, centered composition, white background"

// BuildLogoPrompt composes the final prompt from the user's description and
// the selected style. An empty or unknown style key means no style.
func BuildLogoPrompt(userPrompt, styleKey string, catalog *core.Catalog) string {
	if catalog != nil && styleKey != "" {
		if style, ok := catalog.Lookup(styleKey); ok && style.Fragment != "" {
			return fmt.Sprintf("%s, %s, %s", userPrompt, style.Fragment, LogoSuffix)
		}
	}
	return fmt.Sprintf("%s, %s", userPrompt, LogoSuffix)
}
