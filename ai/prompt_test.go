package ai

import (
	"LogoBot/core"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildLogoPrompt(t *testing.T) {
	catalog := core.NewCatalog(nil)
	modern, ok := catalog.Lookup("modern")
	assert.True(t, ok)

	tests := []struct {
		name  string
		text  string
		style string
		want  string
	}{
		{"no style", "a fox", "", "a fox, " + LogoSuffix},
		{"known style", "a fox", "modern", "a fox, " + modern.Fragment + ", " + LogoSuffix},
		{"unknown style is ignored", "a fox", "baroque", "a fox, " + LogoSuffix},
		{"text is not validated", "", "", ", " + LogoSuffix},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildLogoPrompt(tt.text, tt.style, catalog))
		})
	}
}

func TestBuildLogoPrompt_EveryStyle(t *testing.T) {
	catalog := core.NewCatalog(nil)
	for _, style := range catalog.Styles() {
		assert.Equal(t,
			"coffee shop, "+style.Fragment+", "+LogoSuffix,
			BuildLogoPrompt("coffee shop", style.Key, catalog),
			style.Key)
	}
}

func TestBuildLogoPrompt_NilCatalog(t *testing.T) {
	assert.Equal(t, "a fox, "+LogoSuffix, BuildLogoPrompt("a fox", "modern", nil))
}
