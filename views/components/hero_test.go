package components

import (
	"os"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}

// TestHeroTextVerbatim verifies heading and subheading render inside
// their elements exactly as supplied.
func TestHeroTextVerbatim(t *testing.T) {
	testCases := []struct {
		heading    string
		subheading string
	}{
		{"Platform Docs", "Everything you need to get started"},
		{"A", "B"},
		{"Docs & Guides", "Setup > Usage"},
	}

	for _, tc := range testCases {
		html := RenderHero(HeroConfig{Heading: tc.heading, Subheading: tc.subheading})

		if !strings.Contains(html, ">"+tc.heading+"</h1>") {
			t.Errorf("hero should contain heading %q in h1, got: %s", tc.heading, html)
		}
		if !strings.Contains(html, ">"+tc.subheading+"</p>") {
			t.Errorf("hero should contain subheading %q in p, got: %s", tc.subheading, html)
		}
	}
}

// TestHeroGraphicToggle verifies the decorative element appears exactly
// once when enabled and never otherwise.
func TestHeroGraphicToggle(t *testing.T) {
	withGraphic := RenderHero(HeroConfig{Heading: "H", Subheading: "S", ShowGraphic: true})
	if n := strings.Count(withGraphic, `class="hero-graphic"`); n != 1 {
		t.Errorf("expected exactly one graphic element, got %d", n)
	}

	withoutGraphic := RenderHero(HeroConfig{Heading: "H", Subheading: "S"})
	if strings.Contains(withoutGraphic, "hero-graphic") {
		t.Error("graphic element should be absent when ShowGraphic is false")
	}
}

// TestHeroClassMerge verifies caller classes append to the base class.
func TestHeroClassMerge(t *testing.T) {
	html := RenderHero(HeroConfig{Heading: "H", Subheading: "S", ClassNames: "foo bar"})

	if !strings.Contains(html, `class="hero-banner foo bar"`) {
		t.Errorf("outer container should carry base plus caller classes, got: %s", html)
	}
}

// TestHeroClassDefault verifies the base class stands alone when no
// caller classes are given.
func TestHeroClassDefault(t *testing.T) {
	html := RenderHero(HeroConfig{Heading: "H", Subheading: "S"})

	if !strings.Contains(html, `class="hero-banner"`) {
		t.Errorf("outer container should carry only the base class, got: %s", html)
	}
}

// TestHeroCustomStyles verifies inline style overrides reach the outer
// container in CSS form.
func TestHeroCustomStyles(t *testing.T) {
	html := RenderHero(HeroConfig{
		Heading:      "H",
		Subheading:   "S",
		CustomStyles: map[string]string{"backgroundColor": "red"},
	})

	if !strings.Contains(html, `style="background-color: red"`) {
		t.Errorf("outer container should carry inline styles, got: %s", html)
	}
}

// TestHeroOuterTagAttributeOrder verifies the opening tag always emits
// class before style, so styled renders stay byte-stable.
func TestHeroOuterTagAttributeOrder(t *testing.T) {
	want := `<header class="hero-banner foo" style="background-color: red">`

	for i := 0; i < 20; i++ {
		html := RenderHero(HeroConfig{
			Heading:      "H",
			Subheading:   "S",
			ClassNames:   "foo",
			CustomStyles: map[string]string{"backgroundColor": "red"},
		})
		if !strings.Contains(html, want) {
			t.Fatalf("render %d: expected opening tag %s, got: %s", i, want, html)
		}
	}
}

// TestHeroNoStyleAttrWithoutOverrides verifies no empty style attribute
// is emitted.
func TestHeroNoStyleAttrWithoutOverrides(t *testing.T) {
	html := RenderHero(HeroConfig{Heading: "H", Subheading: "S"})

	if strings.Contains(html, "style=") {
		t.Errorf("no style attribute expected without overrides, got: %s", html)
	}
}

// TestHeroDefaultsIdempotent verifies omitting optional fields equals
// passing their documented defaults explicitly.
func TestHeroDefaultsIdempotent(t *testing.T) {
	implicit := RenderHero(HeroConfig{Heading: "H", Subheading: "S"})
	explicit := RenderHero(HeroConfig{
		Heading:      "H",
		Subheading:   "S",
		ShowGraphic:  false,
		CustomStyles: map[string]string{},
		ClassNames:   "",
	})

	if implicit != explicit {
		t.Errorf("defaulting should be idempotent:\nimplicit: %s\nexplicit: %s", implicit, explicit)
	}
}

// TestHeroDeterministic verifies identical configs produce byte-identical
// output, including multi-key style maps whose iteration order varies.
func TestHeroDeterministic(t *testing.T) {
	cfg := HeroConfig{
		Heading:     "H",
		Subheading:  "S",
		ShowGraphic: true,
		ClassNames:  "foo",
		CustomStyles: map[string]string{
			"backgroundColor": "red",
			"paddingTop":      "2rem",
			"color":           "white",
			"minHeight":       "320px",
		},
	}

	first := RenderHero(cfg)
	for i := 0; i < 20; i++ {
		if again := RenderHero(cfg); again != first {
			t.Fatalf("render %d differed from first render:\n%s\nvs\n%s", i, again, first)
		}
	}
}

// TestHeroImageConstant verifies the illustration never derives from the
// config.
func TestHeroImageConstant(t *testing.T) {
	configs := []HeroConfig{
		{Heading: "H", Subheading: "S"},
		{Heading: "Other", Subheading: "Text", ShowGraphic: true},
		{Heading: "H", Subheading: "S", ClassNames: "x", CustomStyles: map[string]string{"color": "red"}},
	}

	for _, cfg := range configs {
		html := RenderHero(cfg)
		if !strings.Contains(html, `src="`+HeroImageSrc+`"`) {
			t.Errorf("hero should reference the fixed illustration, got: %s", html)
		}
		if !strings.Contains(html, `width="420" height="280"`) {
			t.Errorf("illustration dimensions should be fixed, got: %s", html)
		}
	}
}

// TestHeroStructureOrder verifies the documented element order: graphic
// (when present), then heading, then subheading, then image.
func TestHeroStructureOrder(t *testing.T) {
	html := RenderHero(HeroConfig{Heading: "H", Subheading: "S", ShowGraphic: true})

	graphicIdx := strings.Index(html, "hero-graphic")
	headingIdx := strings.Index(html, "<h1")
	subheadingIdx := strings.Index(html, "<p")
	imageIdx := strings.Index(html, "<img")

	if !(graphicIdx < headingIdx && headingIdx < subheadingIdx && subheadingIdx < imageIdx) {
		t.Errorf("elements out of order (graphic=%d h1=%d p=%d img=%d):\n%s",
			graphicIdx, headingIdx, subheadingIdx, imageIdx, html)
	}
}

func TestHeroSnapshot(t *testing.T) {
	html := RenderHero(HeroConfig{
		Heading:      "Platform Docs",
		Subheading:   "Guides and reference",
		ShowGraphic:  true,
		ClassNames:   "homepage-hero",
		CustomStyles: map[string]string{"backgroundColor": "#123456", "minHeight": "320px"},
	})

	snaps.WithConfig(snaps.Ext(".html")).MatchSnapshot(t, html)
}

func TestInlineStyles(t *testing.T) {
	testCases := []struct {
		name     string
		styles   map[string]string
		expected string
	}{
		{"nil map", nil, ""},
		{"empty map", map[string]string{}, ""},
		{"single kebab", map[string]string{"color": "red"}, "color: red"},
		{"camel case", map[string]string{"backgroundColor": "red"}, "background-color: red"},
		{
			"sorted output",
			map[string]string{"paddingTop": "1px", "backgroundColor": "red", "color": "blue"},
			"background-color: red; color: blue; padding-top: 1px",
		},
	}

	for _, tc := range testCases {
		if got := InlineStyles(tc.styles); got != tc.expected {
			t.Errorf("%s: expected %q, got %q", tc.name, tc.expected, got)
		}
	}
}

func TestHeroClassesCollapsesWhitespace(t *testing.T) {
	html := RenderHero(HeroConfig{Heading: "H", Subheading: "S", ClassNames: "  foo   bar  "})

	if !strings.Contains(html, `class="hero-banner foo bar"`) {
		t.Errorf("extra whitespace should collapse, got: %s", html)
	}
}
