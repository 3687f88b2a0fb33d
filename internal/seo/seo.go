package seo

type OpenGraph struct {
	Title       string
	Description string
	Image       string
	Type        string
}

type Twitter struct {
	Card  string
	Site  string
	Image string
}

type Meta struct {
	Title       string
	Description string
	Canonical   string
	// Robots is emitted verbatim when set, e.g. "noindex".
	Robots  string
	OG      OpenGraph
	Twitter Twitter
}

// WithDefaults fills OG and Twitter fields from the page title and description.
func (m Meta) WithDefaults() Meta {
	if m.OG.Title == "" {
		m.OG.Title = m.Title
	}
	if m.OG.Description == "" {
		m.OG.Description = m.Description
	}
	if m.OG.Type == "" {
		m.OG.Type = "website"
	}
	if m.Twitter.Card == "" {
		m.Twitter.Card = "summary_large_image"
	}
	if m.Twitter.Image == "" {
		m.Twitter.Image = m.OG.Image
	}
	return m
}
