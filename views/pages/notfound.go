package pages

import (
	"docsite/views"

	"github.com/rohanthewiz/element"
)

// NotFound is the 404 page body.
type NotFound struct{}

func (n NotFound) Render(b *element.Builder) (x any) {
	b.DivClass("error-page").R(
		b.H1Class("error-title").T("404"),
		b.PClass("error-text").T("Page not found"),
		b.P().R(
			b.A("href", "/").T("Back to home"),
		),
	)
	return
}

// NotFoundPage renders the full 404 document.
func NotFoundPage() string {
	return views.SimpleLayout("Not Found - DocSite", NotFound{})
}
