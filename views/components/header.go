package components

import (
	"github.com/rohanthewiz/element"
)

// SiteHeader is the top navigation bar shared by all pages.
type SiteHeader struct {
	Active string // "home" or "docs"
}

func (h SiteHeader) Render(b *element.Builder) (x any) {
	b.Header("id", "site-header").R(
		b.DivClass("header-content").R(
			b.DivClass("header-left").R(
				b.H1Class("site-title").R(
					b.A("href", "/").T("DocSite"),
				),
			),
			b.Nav("class", "header-nav").R(
				b.A("href", "/", "class", h.activeClass("home")).T("Home"),
				b.A("href", "/docs", "class", h.activeClass("docs")).T("Docs"),
			),
			b.DivClass("header-right").R(
				b.Form("hx-get", "/partials/search",
					"hx-target", "#search-results",
					"hx-trigger", "input changed delay:300ms, submit",
					"class", "search-form").R(
					b.Input("type", "search",
						"name", "q",
						"placeholder", "Search docs...",
						"class", "search-input"),
				),
			),
		),
		b.Div("id", "search-results").R(),
	)
	return
}

func (h SiteHeader) activeClass(page string) string {
	if h.Active == page {
		return "nav-link nav-link-active"
	}
	return "nav-link"
}
