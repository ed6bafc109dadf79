package core

import (
	"fmt"
	"strings"
)

// Messages holds every text the bot sends on its own behalf.
// StyleSelected and Caption are format strings taking a single %s.
type Messages struct {
	Start         string `yaml:"start"`
	Help          string `yaml:"help"`
	StyleMenu     string `yaml:"style_menu"`
	StyleSelected string `yaml:"style_selected"`
	Generating    string `yaml:"generating"`
	Error         string `yaml:"error"`
	Caption       string `yaml:"caption"`
	HistoryEmpty  string `yaml:"history_empty"`
	HistoryHeader string `yaml:"history_header"`
}

// DefaultMessages returns the built-in reply templates.
func DefaultMessages() Messages {
	return Messages{
		Start: "👋 Hi! I'm *LogoBot*.\n\n" +
			"Describe the logo you want and I'll draw it.\n" +
			"For example: _coffee shop with a cat_\n\n" +
			"/style - choose a style\n/help - how to use the bot",
		Help: "*How to use*\n\n" +
			"1. Optionally pick a style with /style\n" +
			"2. Send a short description of your logo\n" +
			"3. Wait up to two minutes for the image\n\n" +
			"/history - your recent requests",
		StyleSelected: "✅ Style selected: *%s*\n\nNow send a description of your logo.",
		Generating:    "🎨 Generating your logo, please wait...",
		Error:         "❌ Could not generate the logo. The model may be loading, please try again in a minute.",
		Caption:       "🎨 Logo for: %s",
		HistoryEmpty:  "You have no requests yet.",
		HistoryHeader: "Your recent requests:",
	}
}

// Validate checks that the format templates that are set take exactly one %s.
// Empty templates are valid and get their defaults from NewMessages.
func (m Messages) Validate() error {
	templates := []struct {
		name  string
		value string
	}{
		{"style_selected", m.StyleSelected},
		{"caption", m.Caption},
	}
	for _, tmpl := range templates {
		if strings.TrimSpace(tmpl.value) == "" {
			continue
		}
		if !singleStringVerb(tmpl.value) {
			return fmt.Errorf("%s must contain exactly one %%s and no other verbs", tmpl.name)
		}
	}
	return nil
}

func singleStringVerb(tmpl string) bool {
	rest := strings.ReplaceAll(tmpl, "%%", "")
	return strings.Count(rest, "%") == 1 && strings.Count(rest, "%s") == 1
}

// NewMessages fills every empty template in m with its default. An empty
// style menu is rendered from the catalog.
func NewMessages(m Messages, catalog *Catalog) Messages {
	def := DefaultMessages()
	def.StyleMenu = styleMenu(catalog)

	fill := func(v *string, d string) {
		if strings.TrimSpace(*v) == "" {
			*v = d
		}
	}
	fill(&m.Start, def.Start)
	fill(&m.Help, def.Help)
	fill(&m.StyleMenu, def.StyleMenu)
	fill(&m.StyleSelected, def.StyleSelected)
	fill(&m.Generating, def.Generating)
	fill(&m.Error, def.Error)
	fill(&m.Caption, def.Caption)
	fill(&m.HistoryEmpty, def.HistoryEmpty)
	fill(&m.HistoryHeader, def.HistoryHeader)
	return m
}

func styleMenu(catalog *Catalog) string {
	var b strings.Builder
	b.WriteString("*Choose a style:*\n\n")
	for _, s := range catalog.Styles() {
		b.WriteString(fmt.Sprintf("/%s - %s\n", EscapeMarkdown(s.Key), EscapeMarkdown(s.Name)))
	}
	return b.String()
}

var markdownEscaper = strings.NewReplacer("_", "\\_", "*", "\\*", "`", "\\`", "[", "\\[")

// EscapeMarkdown escapes the characters that start an entity in Telegram's
// legacy Markdown mode.
func EscapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
