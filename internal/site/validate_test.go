package site

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Configuration)
		wantErr []string
	}{
		{
			name:   "compiled configuration",
			mutate: func(*Configuration) {},
		},
		{
			name:    "empty site name",
			mutate:  func(c *Configuration) { c.SiteName = "  " },
			wantErr: []string{"siteName: must not be empty"},
		},
		{
			name:    "relative nav href",
			mutate:  func(c *Configuration) { c.NavLinks[2].Href = "about" },
			wantErr: []string{`navLinks[2].href: "about" must start with '/' or '#'`},
		},
		{
			name:    "missing media",
			mutate:  func(c *Configuration) { c.Features.Items[1].MediaSrc = "" },
			wantErr: []string{"features.items[1].mediaSrc: must not be empty"},
		},
		{
			name: "several problems reported together",
			mutate: func(c *Configuration) {
				c.Hero.VideoSrc = "videos/x.mp4"
				c.Meta.Keywords = ""
			},
			wantErr: []string{"hero.videoSrc", "meta.keywords: must not be empty"},
		},
		{
			name: "no entries",
			mutate: func(c *Configuration) {
				c.NavLinks = nil
				c.Features.Items = nil
			},
			wantErr: []string{"navLinks: must contain", "features.items: must contain"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Config()
			tt.mutate(&c)

			err := Validate(c)
			if len(tt.wantErr) == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, want := range tt.wantErr {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}
