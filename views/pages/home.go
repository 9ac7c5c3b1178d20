// Package pages contains the page components of the site.
package pages

import (
	"docsite/models"
	"docsite/views"
	"docsite/views/components"
	"docsite/views/partials"

	"github.com/rohanthewiz/element"
	"github.com/rohanthewiz/logger"
)

// Home is the landing page: the hero banner followed by the published
// docs.
type Home struct {
	Hero components.HeroConfig
	Docs []models.Doc
}

func (h Home) Render(b *element.Builder) (x any) {
	b.DivClass("page-container").R(
		element.RenderComponents(b, components.SiteHeader{Active: "home"}),
		element.RenderComponents(b, components.Hero{Config: h.Hero}),
		b.Main("class", "main-content").R(
			b.H2Class("section-title").T("Documentation"),
			b.T(partials.RenderDocList(h.Docs)),
		),
	)
	return
}

// HomePage renders the full home page document.
func HomePage(settings *models.HeroSettings, docs []models.Doc) string {
	return views.BaseLayout("DocSite", "", "", Home{
		Hero: HeroConfigFrom(settings),
		Docs: docs,
	})
}

// HeroConfigFrom maps persisted hero settings onto the render config.
// Settings are validated on the write path, so a style parse failure
// here means hand-edited data; the hero still renders, just unstyled.
func HeroConfigFrom(settings *models.HeroSettings) components.HeroConfig {
	styles, err := settings.StyleMap()
	if err != nil {
		logger.LogErr(err, "ignoring unparseable hero custom styles")
		styles = nil
	}

	return components.HeroConfig{
		Heading:      settings.Heading,
		Subheading:   settings.Subheading,
		ShowGraphic:  settings.ShowGraphic,
		CustomStyles: styles,
		ClassNames:   settings.ClassNames,
	}
}
