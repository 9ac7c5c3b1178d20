package partials

import (
	"database/sql"
	"strings"
	"testing"
	"time"

	"docsite/models"
)

func testDoc(title, slug string) models.Doc {
	return models.Doc{
		GUID:      "guid-" + slug,
		Slug:      slug,
		Title:     title,
		Body:      "body",
		Published: true,
		UpdatedAt: time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
	}
}

// TestRenderDocListEmpty verifies the empty state message
func TestRenderDocListEmpty(t *testing.T) {
	html := RenderDocList(nil)

	if !strings.Contains(html, "docs-grid") {
		t.Error("doc list should render the grid container")
	}
	if !strings.Contains(html, "No documentation pages yet") {
		t.Error("empty doc list should show the empty message")
	}
}

// TestRenderDocListCards verifies each doc renders a linked card
func TestRenderDocListCards(t *testing.T) {
	docs := []models.Doc{
		testDoc("Getting Started", "getting-started"),
		testDoc("API Reference", "api-reference"),
	}
	docs[0].Summary = sql.NullString{String: "First steps", Valid: true}

	html := RenderDocList(docs)

	for _, doc := range docs {
		if !strings.Contains(html, `href="/docs/`+doc.Slug+`"`) {
			t.Errorf("doc list should link %s", doc.Slug)
		}
		if !strings.Contains(html, doc.Title) {
			t.Errorf("doc list should contain title %q", doc.Title)
		}
	}

	if !strings.Contains(html, "First steps") {
		t.Error("doc list should show summaries when present")
	}
	if !strings.Contains(html, "Mar 14, 2026") {
		t.Error("doc list should show the update date")
	}
}

// TestRenderSearchResults covers the query states
func TestRenderSearchResults(t *testing.T) {
	// No query: an empty container so HTMX can clear prior results
	html := RenderSearchResults(nil, "")
	if strings.Contains(html, "No results") {
		t.Error("empty query should not show the no-results message")
	}

	// Query with no matches
	html = RenderSearchResults(nil, "missing")
	if !strings.Contains(html, "No results for: missing") {
		t.Error("should show the no-results message with the query")
	}

	// Query with matches
	html = RenderSearchResults([]models.Doc{testDoc("Getting Started", "getting-started")}, "start")
	if !strings.Contains(html, `href="/docs/getting-started"`) {
		t.Error("results should link matched docs")
	}
	if !strings.Contains(html, "Getting Started") {
		t.Error("results should show matched titles")
	}
}

// TestRenderRevisionDiff verifies the diff fragment wraps the supplied
// markup with revision metadata.
func TestRenderRevisionDiff(t *testing.T) {
	doc := testDoc("Getting Started", "getting-started")
	diffHTML := `<span>eq</span><del style="background:#ffe6e6;">old</del><ins style="background:#e6ffe6;">new</ins>`

	html := RenderRevisionDiff(&doc, 1, 2, diffHTML)

	if !strings.Contains(html, "Getting Started") {
		t.Error("diff should name the doc")
	}
	if !strings.Contains(html, "rev 1") || !strings.Contains(html, "rev 2") {
		t.Error("diff should name both revisions")
	}
	if !strings.Contains(html, diffHTML) {
		t.Error("diff should embed the highlighted markup verbatim")
	}
}
