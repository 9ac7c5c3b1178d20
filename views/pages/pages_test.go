package pages

import (
	"strings"
	"testing"
	"time"

	"docsite/models"
	"docsite/views/components"

	"github.com/rohanthewiz/element"
)

// TestHeroConfigFrom verifies persisted settings map onto the render
// config, including the JSON style overrides.
func TestHeroConfigFrom(t *testing.T) {
	settings := &models.HeroSettings{
		Heading:      "Platform Docs",
		Subheading:   "Guides and reference",
		ShowGraphic:  true,
		ClassNames:   "homepage-hero",
		CustomStyles: `{"backgroundColor":"#123456"}`,
	}

	cfg := HeroConfigFrom(settings)

	if cfg.Heading != settings.Heading || cfg.Subheading != settings.Subheading {
		t.Error("text fields should map through unchanged")
	}
	if !cfg.ShowGraphic {
		t.Error("ShowGraphic should map through")
	}
	if cfg.ClassNames != "homepage-hero" {
		t.Error("ClassNames should map through")
	}
	if cfg.CustomStyles["backgroundColor"] != "#123456" {
		t.Error("CustomStyles should parse from the stored JSON")
	}
}

// TestHeroConfigFromBadStyles verifies hand-mangled style JSON degrades
// to an unstyled hero instead of failing the page.
func TestHeroConfigFromBadStyles(t *testing.T) {
	settings := &models.HeroSettings{
		Heading:      "H",
		Subheading:   "S",
		CustomStyles: `not json`,
	}

	cfg := HeroConfigFrom(settings)

	if len(cfg.CustomStyles) != 0 {
		t.Error("unparseable styles should yield no overrides")
	}
	if cfg.Heading != "H" {
		t.Error("text fields should survive a style parse failure")
	}
}

// TestHomeRender verifies the home page composes header, hero and docs.
func TestHomeRender(t *testing.T) {
	b := element.NewBuilder()
	home := Home{
		Hero: components.HeroConfig{Heading: "Platform Docs", Subheading: "Guides"},
		Docs: []models.Doc{{
			Slug:      "getting-started",
			Title:     "Getting Started",
			Published: true,
			UpdatedAt: time.Now(),
		}},
	}
	home.Render(b)
	html := b.String()

	if !strings.Contains(html, `id="site-header"`) {
		t.Error("home should include the site header")
	}
	if !strings.Contains(html, "hero-banner") {
		t.Error("home should include the hero")
	}
	if !strings.Contains(html, ">Platform Docs</h1>") {
		t.Error("home hero should render the heading")
	}
	if !strings.Contains(html, `href="/docs/getting-started"`) {
		t.Error("home should list the docs")
	}
}

// TestRenderMarkdown verifies GFM conversion of doc bodies
func TestRenderMarkdown(t *testing.T) {
	html, err := RenderMarkdown("# Title\n\nSome *emphasis* and a [link](/docs/x).\n\n| a | b |\n|---|---|\n| 1 | 2 |\n")
	if err != nil {
		t.Fatalf("markdown conversion failed: %v", err)
	}

	if !strings.Contains(html, "<h1") || !strings.Contains(html, "Title") {
		t.Error("markdown should render headings")
	}
	if !strings.Contains(html, "<em>emphasis</em>") {
		t.Error("markdown should render emphasis")
	}
	if !strings.Contains(html, `<a href="/docs/x"`) {
		t.Error("markdown should render links")
	}
	if !strings.Contains(html, "<table>") {
		t.Error("GFM tables should render")
	}
}

// TestDocDetailRender verifies the doc page embeds the rendered body
func TestDocDetailRender(t *testing.T) {
	doc := &models.Doc{
		Slug:      "getting-started",
		Title:     "Getting Started",
		Body:      "ignored here",
		UpdatedAt: time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
	}

	b := element.NewBuilder()
	DocDetail{Doc: doc, BodyHTML: "<p>converted body</p>"}.Render(b)
	html := b.String()

	if !strings.Contains(html, ">Getting Started</h1>") {
		t.Error("doc page should render the title")
	}
	if !strings.Contains(html, "<p>converted body</p>") {
		t.Error("doc page should embed the converted body")
	}
	if !strings.Contains(html, "Updated Mar 14, 2026") {
		t.Error("doc page should show the update date")
	}
}

// TestNotFoundPage verifies the 404 page basics
func TestNotFoundPage(t *testing.T) {
	html := NotFoundPage()

	if !strings.Contains(html, "404") {
		t.Error("not-found page should show 404")
	}
	if !strings.Contains(html, `href="/"`) {
		t.Error("not-found page should link home")
	}
}
