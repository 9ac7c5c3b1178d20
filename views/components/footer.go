package components

import "github.com/rohanthewiz/element"

// SiteFooter is the footer shared by all pages. It carries no data.
type SiteFooter struct{}

func (f SiteFooter) Render(b *element.Builder) (x any) {
	b.Footer("class", "site-footer").R(
		b.PClass("footer-text").T("Copyright &copy; 2026 DocSite"),
		b.PClass("footer-text").R(
			b.A("href", "/api/v1/export").T("Download site bundle"),
		),
	)
	return nil
}
