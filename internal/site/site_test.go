package site

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Idempotent(t *testing.T) {
	first := Config()
	second := Config()

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("Config() changed between calls (-first +second):\n%s", diff)
	}
}

func TestConfig_ReturnsIndependentCopies(t *testing.T) {
	c := Config()
	c.NavLinks[0].Name = "Changed"
	c.Features.Items[0].Number = "99"
	c.NavLinks = append(c.NavLinks, NavLink{Name: "Extra", Href: "/extra"})

	fresh := Config()
	assert.Equal(t, "Work", fresh.NavLinks[0].Name)
	assert.Equal(t, "01", fresh.Features.Items[0].Number)
	assert.Len(t, fresh.NavLinks, 4)
}

func TestConfig_NavLinksOrder(t *testing.T) {
	c := Config()
	require.Len(t, c.NavLinks, 4)

	var names []string
	for _, l := range c.NavLinks {
		names = append(names, l.Name)
	}
	assert.Equal(t, []string{"Work", "Services", "About", "Contact"}, names)
	assert.Equal(t, "/work", c.NavLinks[0].Href)
	assert.Equal(t, "#services", c.NavLinks[1].Href)
}

func TestConfig_FeatureNumbers(t *testing.T) {
	c := Config()
	require.Len(t, c.Features.Items, 3)

	for i, want := range []string{"01", "02", "03"} {
		assert.Equal(t, want, c.Features.Items[i].Number)
	}
	assert.Equal(t, "Brand Identity", c.Features.Items[0].Title)
	assert.Equal(t, "Digital Strategy", c.Features.Items[2].Title)
}

func TestConfig_NoEmptyStrings(t *testing.T) {
	var walk func(path string, v reflect.Value)
	walk = func(path string, v reflect.Value) {
		switch v.Kind() {
		case reflect.String:
			if v.String() == "" {
				t.Errorf("%s is empty", path)
			}
		case reflect.Struct:
			for i := 0; i < v.NumField(); i++ {
				walk(path+"."+v.Type().Field(i).Name, v.Field(i))
			}
		case reflect.Slice:
			if v.Len() == 0 {
				t.Errorf("%s is empty", path)
			}
			for i := 0; i < v.Len(); i++ {
				walk(fmt.Sprintf("%s[%d]", path, i), v.Index(i))
			}
		}
	}
	walk("Configuration", reflect.ValueOf(Config()))
}

func TestConfig_PathsAreAbsoluteOrAnchors(t *testing.T) {
	c := Config()

	paths := []string{c.CTAButton.Href, c.Hero.VideoSrc}
	for _, l := range c.NavLinks {
		paths = append(paths, l.Href)
	}
	for _, it := range c.Features.Items {
		paths = append(paths, it.MediaSrc)
	}

	for _, p := range paths {
		assert.Truef(t, strings.HasPrefix(p, "/") || strings.HasPrefix(p, "#"),
			"path %q should start with '/' or '#'", p)
	}
}

func TestConfig_KnownValues(t *testing.T) {
	c := Config()

	assert.Equal(t, "NEXT_GEN_AGENCY", c.SiteName)
	assert.Equal(t, "Explore Our Work", c.Hero.CTAText)
	assert.Equal(t, "web development, design, digital agency, branding", c.Meta.Keywords)
	assert.Equal(t, "/videos/hero-main-loop.mp4", c.Hero.VideoSrc)
	assert.Equal(t, CTAButton{Text: "Get Started", Href: "#contact"}, c.CTAButton)
}

func TestConfig_ConcurrentReads(t *testing.T) {
	done := make(chan Configuration, 8)
	for i := 0; i < cap(done); i++ {
		go func() { done <- Config() }()
	}
	want := Config()
	for i := 0; i < cap(done); i++ {
		assert.True(t, cmp.Equal(want, <-done))
	}
}
