// Package partials renders HTML fragments for HTMX swaps and for
// embedding inside full pages.
package partials

import (
	"docsite/models"

	"github.com/rohanthewiz/element"
)

// RenderDocList renders a grid of doc cards.
func RenderDocList(docs []models.Doc) string {
	b := element.NewBuilder()

	b.DivClass("docs-grid").R(
		func() (x any) {
			if len(docs) == 0 {
				b.PClass("docs-empty").T("No documentation pages yet")
			} else {
				for _, doc := range docs {
					b.DivClass("doc-card").R(
						b.H3Class("doc-card-title").R(
							b.A("href", "/docs/"+doc.Slug).T(doc.Title),
						),
						b.Wrap(func() {
							if doc.Summary.Valid {
								b.PClass("doc-card-summary").T(doc.Summary.String)
							}
						}),
						b.Small("class", "doc-card-date").T(doc.UpdatedAt.Format("Jan 2, 2006")),
					)
				}
			}
			return
		}(),
	)

	return b.String()
}

// RenderSearchResults renders title-search matches.
func RenderSearchResults(docs []models.Doc, query string) string {
	b := element.NewBuilder()

	b.DivClass("search-results-list").R(
		b.Wrap(func() {
			if query == "" {
				return
			}
			if len(docs) == 0 {
				b.PClass("docs-empty").F("No results for: %s", query)
				return
			}
			b.Ul().R(
				func() (x any) {
					for _, doc := range docs {
						b.Li().R(
							b.A("href", "/docs/"+doc.Slug).T(doc.Title),
						)
					}
					return
				}(),
			)
		}),
	)

	return b.String()
}

// RenderRevisionDiff renders the highlighted diff between two revisions
// of a doc. diffHTML comes from models.DiffRevisions and already carries
// its own ins/del markup.
func RenderRevisionDiff(doc *models.Doc, revA, revB int, diffHTML string) string {
	b := element.NewBuilder()

	b.DivClass("revision-diff").R(
		b.H3Class("revision-diff-title").F("%s: rev %d → rev %d", doc.Title, revA, revB),
		b.DivClass("revision-diff-body").R(
			b.T(diffHTML),
		),
	)

	return b.String()
}
