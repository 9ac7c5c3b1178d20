package views

import (
	"docsite/views/components"

	"github.com/rohanthewiz/element"
)

// BaseLayout creates the base HTML structure for all pages.
// Takes extra CSS, additional head content, and the page body component.
func BaseLayout(title string, styles string, headContent string, bodyComponent element.Component) string {
	b := element.NewBuilder()

	b.Html().R(
		b.Head().R(
			b.Meta("charset", "UTF-8"),
			b.Meta("viewport", "width=device-width, initial-scale=1.0"),
			b.Title().T(title),

			b.Link("rel", "stylesheet", "href", "/static/css/main.css"),

			// HTMX drives the search and partial swaps
			b.Script("src", "/static/vendor/htmx.min.js").R(),

			// Custom styles if provided
			b.Wrap(func() {
				if styles != "" {
					b.Style().T(styles)
				}
			}),

			// Additional head content if provided
			b.Wrap(func() {
				if headContent != "" {
					b.T(headContent)
				}
			}),
		),
		b.Body().R(
			element.RenderComponents(b, bodyComponent),
			element.RenderComponents(b, components.SiteFooter{}),
		),
	)

	return b.String()
}

// SimpleLayout creates a minimal HTML layout without navigation or footer.
// Useful for error pages.
func SimpleLayout(title string, content element.Component) string {
	b := element.NewBuilder()

	b.Html().R(
		b.Head().R(
			b.Meta("charset", "UTF-8"),
			b.Meta("viewport", "width=device-width, initial-scale=1.0"),
			b.Title().T(title),
			b.Link("rel", "stylesheet", "href", "/static/css/main.css"),
		),
		b.Body().R(
			element.RenderComponents(b, content),
		),
	)

	return b.String()
}
