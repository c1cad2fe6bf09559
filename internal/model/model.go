package model

import (
	"html/template"
	"sort"
	"time"

	"github.com/tahsinmert/sveltekit-webgl-experience/internal/site"
)

// ContentItem represents a single markdown page (e.g., a case study under /work).
type ContentItem struct {
	Title       string
	Date        time.Time
	Type        string
	SourcePath  string
	Permalink   string
	ContentHTML template.HTML
	Frontmatter map[string]interface{}
	Summary     string
	Layout      string
}

// SiteData holds everything templates can see: the site configuration and
// the collected content.
type SiteData struct {
	Config        site.Configuration
	BaseURL       string
	ContentItems  []*ContentItem
	ContentByType map[string][]*ContentItem
}

// NewSiteData wraps cfg with an empty content index.
func NewSiteData(cfg site.Configuration, baseURL string) *SiteData {
	return &SiteData{
		Config:        cfg,
		BaseURL:       baseURL,
		ContentItems:  []*ContentItem{},
		ContentByType: map[string][]*ContentItem{},
	}
}

// Add stores items, keeps ContentItems sorted by date (newest first, undated
// last) and rebuilds the by-type index.
func (s *SiteData) Add(items ...*ContentItem) {
	s.ContentItems = append(s.ContentItems, items...)

	sort.SliceStable(s.ContentItems, func(i, j int) bool {
		if s.ContentItems[i].Date.IsZero() {
			return false
		}
		if s.ContentItems[j].Date.IsZero() {
			return true
		}
		return s.ContentItems[i].Date.After(s.ContentItems[j].Date)
	})

	s.ContentByType = make(map[string][]*ContentItem)
	for _, item := range s.ContentItems {
		s.ContentByType[item.Type] = append(s.ContentByType[item.Type], item)
	}
}

// ByType returns the items of the given content type in date order.
func (s *SiteData) ByType(t string) []*ContentItem {
	return s.ContentByType[t]
}

// Listing is ByType without the item whose permalink is the listing's own
// URL, which is rendered as the listing's intro instead.
func (s *SiteData) Listing(t string) []*ContentItem {
	var items []*ContentItem
	for _, item := range s.ContentByType[t] {
		if item.Permalink != "/"+t+"/" {
			items = append(items, item)
		}
	}
	return items
}
