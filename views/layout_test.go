package views

import (
	"strings"
	"testing"

	"github.com/rohanthewiz/element"
)

// testContent is a simple test component
type testContent struct{}

func (tc testContent) Render(b *element.Builder) (x any) {
	b.Div("class", "test-content").T("Test content")
	return
}

// TestBaseLayoutStructure verifies the basic HTML structure
func TestBaseLayoutStructure(t *testing.T) {
	html := BaseLayout("DocSite", "", "", testContent{})

	if !strings.Contains(html, "<html") {
		t.Error("Layout should contain html tag")
	}
	if !strings.Contains(html, "<head>") {
		t.Error("Layout should contain head tag")
	}
	if !strings.Contains(html, "<body>") {
		t.Error("Layout should contain body tag")
	}
	if !strings.Contains(html, "<title>DocSite</title>") {
		t.Error("Layout should contain the page title")
	}
	if !strings.Contains(html, "/static/css/main.css") {
		t.Error("Layout should link the main stylesheet")
	}
	if !strings.Contains(html, "htmx.min.js") {
		t.Error("Layout should include the HTMX script")
	}
	if !strings.Contains(html, "test-content") {
		t.Error("Layout should render the body component")
	}
	if !strings.Contains(html, "site-footer") {
		t.Error("Layout should include the footer")
	}
}

// TestBaseLayoutWithStyles verifies custom styles are included
func TestBaseLayoutWithStyles(t *testing.T) {
	customStyles := ".custom { color: red; }"

	html := BaseLayout("DocSite", customStyles, "", testContent{})

	if !strings.Contains(html, customStyles) {
		t.Error("Layout should include custom styles")
	}
	if !strings.Contains(html, "<style>") {
		t.Error("Layout should contain style tag for custom styles")
	}
}

// TestBaseLayoutWithoutStyles verifies no empty style tag is emitted
func TestBaseLayoutWithoutStyles(t *testing.T) {
	html := BaseLayout("DocSite", "", "", testContent{})

	if strings.Contains(html, "<style>") {
		t.Error("Layout should not emit a style tag without custom styles")
	}
}

// TestBaseLayoutWithHeadContent verifies custom head content is included
func TestBaseLayoutWithHeadContent(t *testing.T) {
	customHead := `<meta name="custom" content="test">`

	html := BaseLayout("DocSite", "", customHead, testContent{})

	if !strings.Contains(html, customHead) {
		t.Error("Layout should include custom head content")
	}
}

// TestSimpleLayout verifies the minimal layout has no chrome
func TestSimpleLayout(t *testing.T) {
	html := SimpleLayout("Test Title", testContent{})

	if !strings.Contains(html, "<title>Test Title</title>") {
		t.Error("SimpleLayout should contain the given title")
	}
	if !strings.Contains(html, "test-content") {
		t.Error("SimpleLayout should render the content component")
	}
	if strings.Contains(html, "site-footer") {
		t.Error("SimpleLayout should not include the footer")
	}
	if strings.Contains(html, "htmx.min.js") {
		t.Error("SimpleLayout should not include scripts")
	}
}
