package site

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks that every field of c is populated and that every link and
// media path is either absolute ("/...") or an in-page anchor ("#...").
// All problems are reported together.
func Validate(c Configuration) error {
	var errs []error

	nonEmpty := func(field, value string) {
		if strings.TrimSpace(value) == "" {
			errs = append(errs, fmt.Errorf("%s: must not be empty", field))
		}
	}
	path := func(field, value string) {
		if value == "" {
			errs = append(errs, fmt.Errorf("%s: must not be empty", field))
			return
		}
		if !strings.HasPrefix(value, "/") && !strings.HasPrefix(value, "#") {
			errs = append(errs, fmt.Errorf("%s: %q must start with '/' or '#'", field, value))
		}
	}

	nonEmpty("siteName", c.SiteName)

	if len(c.NavLinks) == 0 {
		errs = append(errs, errors.New("navLinks: must contain at least one entry"))
	}
	for i, l := range c.NavLinks {
		nonEmpty(fmt.Sprintf("navLinks[%d].name", i), l.Name)
		path(fmt.Sprintf("navLinks[%d].href", i), l.Href)
	}

	nonEmpty("ctaButton.text", c.CTAButton.Text)
	path("ctaButton.href", c.CTAButton.Href)

	nonEmpty("hero.headline", c.Hero.Headline)
	nonEmpty("hero.subtitle", c.Hero.Subtitle)
	path("hero.videoSrc", c.Hero.VideoSrc)
	nonEmpty("hero.ctaText", c.Hero.CTAText)

	nonEmpty("features.title", c.Features.Title)
	nonEmpty("features.subtitle", c.Features.Subtitle)
	if len(c.Features.Items) == 0 {
		errs = append(errs, errors.New("features.items: must contain at least one entry"))
	}
	for i, it := range c.Features.Items {
		nonEmpty(fmt.Sprintf("features.items[%d].number", i), it.Number)
		nonEmpty(fmt.Sprintf("features.items[%d].title", i), it.Title)
		nonEmpty(fmt.Sprintf("features.items[%d].description", i), it.Description)
		path(fmt.Sprintf("features.items[%d].mediaSrc", i), it.MediaSrc)
	}

	nonEmpty("meta.title", c.Meta.Title)
	nonEmpty("meta.description", c.Meta.Description)
	nonEmpty("meta.keywords", c.Meta.Keywords)

	if len(errs) > 0 {
		return fmt.Errorf("invalid site configuration: %w", errors.Join(errs...))
	}
	return nil
}
