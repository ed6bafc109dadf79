package core

// Style is a named prompt modifier selectable with a bot command equal to Key.
type Style struct {
	Key      string `yaml:"key"`
	Name     string `yaml:"name"`
	Fragment string `yaml:"fragment"`
}

// Catalog is the immutable set of styles known to the bot, in menu order.
type Catalog struct {
	styles []Style
	index  map[string]int
}

// DefaultStyles returns the styles used when the config defines none.
func DefaultStyles() []Style {
	return []Style{
		{Key: "minimal", Name: "Minimal", Fragment: "minimalist, simple shapes, clean lines, flat design, negative space"},
		{Key: "vintage", Name: "Vintage", Fragment: "vintage, retro, classic badge emblem, muted colors, distressed texture"},
		{Key: "modern", Name: "Modern", Fragment: "modern, sleek, gradient colors, contemporary typography"},
		{Key: "geometric", Name: "Geometric", Fragment: "geometric shapes, symmetrical, abstract, bold lines"},
		{Key: "hand_drawn", Name: "Hand-drawn", Fragment: "hand drawn, sketch style, organic lines, artistic illustration"},
	}
}

// NewCatalog builds a catalog from styles, falling back to DefaultStyles
// when none are given. Entries without a key are skipped and the first
// entry wins for a repeated key.
func NewCatalog(styles []Style) *Catalog {
	if len(styles) == 0 {
		styles = DefaultStyles()
	}
	c := &Catalog{
		index: make(map[string]int, len(styles)),
	}
	for _, s := range styles {
		if s.Key == "" {
			continue
		}
		if _, ok := c.index[s.Key]; ok {
			continue
		}
		if s.Name == "" {
			s.Name = s.Key
		}
		c.index[s.Key] = len(c.styles)
		c.styles = append(c.styles, s)
	}
	return c
}

// Lookup returns the style registered under key.
func (c *Catalog) Lookup(key string) (Style, bool) {
	i, ok := c.index[key]
	if !ok {
		return Style{}, false
	}
	return c.styles[i], true
}

// Styles returns a copy of the catalog in menu order.
func (c *Catalog) Styles() []Style {
	out := make([]Style, len(c.styles))
	copy(out, c.styles)
	return out
}
