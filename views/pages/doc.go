package pages

import (
	"bytes"

	"docsite/models"
	"docsite/views"
	"docsite/views/components"

	"github.com/rohanthewiz/element"
	"github.com/rohanthewiz/serr"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// markdown converts doc bodies to HTML. GFM gives us tables, task
// lists and autolinks, which the imported docs use heavily.
var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// RenderMarkdown converts markdown source to an HTML fragment.
func RenderMarkdown(src string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return "", serr.Wrap(err, "failed to render markdown")
	}
	return buf.String(), nil
}

// DocDetail is a single documentation page.
type DocDetail struct {
	Doc      *models.Doc
	BodyHTML string
}

func (d DocDetail) Render(b *element.Builder) (x any) {
	b.DivClass("page-container").R(
		element.RenderComponents(b, components.SiteHeader{Active: "docs"}),
		b.Main("class", "main-content").R(
			b.Article("class", "doc-article").R(
				b.H1Class("doc-title").T(d.Doc.Title),
				b.Small("class", "doc-date").T("Updated "+d.Doc.UpdatedAt.Format("Jan 2, 2006")),
				b.DivClass("doc-body").R(
					b.T(d.BodyHTML),
				),
			),
		),
	)
	return
}

// DocPage renders a full doc page document, converting the markdown body.
func DocPage(doc *models.Doc) (string, error) {
	bodyHTML, err := RenderMarkdown(doc.Body)
	if err != nil {
		return "", err
	}

	return views.BaseLayout(doc.Title+" - DocSite", "", "", DocDetail{
		Doc:      doc,
		BodyHTML: bodyHTML,
	}), nil
}
