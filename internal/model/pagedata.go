package model

import "github.com/tahsinmert/sveltekit-webgl-experience/internal/site"

// PageData is the context every layout is executed with.
type PageData struct {
	Site *SiteData
	// Item is nil on the home page and on listing pages.
	Item *ContentItem
	// Type is set on listing pages.
	Type string
	// Intro is the content found at a listing's own URL, if any.
	Intro *ContentItem
	Items []*ContentItem
}

// Meta returns the head metadata for the page. Content pages override the
// title and description with their own.
func (p PageData) Meta() site.Meta {
	m := p.Site.Config.Meta
	if p.Item != nil {
		m.Title = p.Item.Title + " | " + p.Site.Config.SiteName
		if p.Item.Summary != "" {
			m.Description = p.Item.Summary
		}
	}
	return m
}

// Permalink returns the site-relative URL of the page being rendered.
func (p PageData) Permalink() string {
	switch {
	case p.Item != nil:
		return p.Item.Permalink
	case p.Type != "":
		return "/" + p.Type + "/"
	default:
		return "/"
	}
}
