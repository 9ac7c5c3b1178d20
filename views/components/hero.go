package components

import (
	"sort"
	"strings"

	"github.com/rohanthewiz/element"
)

// Fixed pieces of the hero markup. The illustration is a constant of the
// component and never derives from caller input; width/height are pinned
// so the page does not reflow while the asset loads.
const (
	HeroBaseClass   = "hero-banner"
	HeroImageSrc    = "/static/img/hero-illustration.svg"
	heroImageWidth  = "420"
	heroImageHeight = "280"
)

// HeroConfig holds the display parameters for a single hero render.
// Heading and Subheading are expected to be displayable text; the
// remaining fields are optional and their zero values are the defaults.
// A fresh config is supplied on each render - the component keeps no
// state between calls.
type HeroConfig struct {
	Heading      string
	Subheading   string
	ShowGraphic  bool              // include one empty decorative div
	CustomStyles map[string]string // inline style overrides on the outer container
	ClassNames   string            // extra space-joined classes on the outer container
}

// Hero renders a page banner: outer <header> carrying the base class plus
// any caller classes and inline styles, an optional decorative div for a
// background visual, and a centered block with the heading, subheading,
// and the fixed illustration. Rendering is pure - no validation, no I/O,
// identical config always yields identical markup.
type Hero struct {
	Config HeroConfig
}

func (h Hero) Render(b *element.Builder) (x any) {
	// The builder holds attributes in a map, so routing class and style
	// through it emits them in random order. The outer tag is built as a
	// raw string to keep identical configs byte-identical.
	open := `<header class="` + heroClasses(h.Config.ClassNames) + `"`
	if style := InlineStyles(h.Config.CustomStyles); style != "" {
		open += ` style="` + style + `"`
	}
	b.T(open + ">")

	if h.Config.ShowGraphic {
		b.DivClass("hero-graphic").R()
	}
	b.DivClass("hero-content").R(
		b.H1Class("hero-heading").T(h.Config.Heading),
		b.PClass("hero-subheading").T(h.Config.Subheading),
		b.T(`<img class="hero-image" src="`+HeroImageSrc+`" width="`+
			heroImageWidth+`" height="`+heroImageHeight+`" alt="">`),
	)

	b.T("</header>")
	return
}

// RenderHero renders a standalone hero fragment from a config.
// Convenience wrapper for previews and tests; pages normally compose
// Hero inside a layout instead.
func RenderHero(cfg HeroConfig) string {
	b := element.NewBuilder()
	Hero{Config: cfg}.Render(b)
	return b.String()
}

// heroClasses joins the fixed base class with any caller-supplied class
// names. Extra whitespace in the input collapses to single separators.
func heroClasses(classNames string) string {
	extra := strings.Fields(classNames)
	if len(extra) == 0 {
		return HeroBaseClass
	}
	return HeroBaseClass + " " + strings.Join(extra, " ")
}

// InlineStyles serializes style overrides to an inline style attribute
// value. Properties are normalized to kebab-case and emitted in sorted
// order so equal maps always serialize identically.
func InlineStyles(styles map[string]string) string {
	if len(styles) == 0 {
		return ""
	}

	props := make([]string, 0, len(styles))
	vals := make(map[string]string, len(styles))
	for k, v := range styles {
		p := kebabCase(k)
		if _, dup := vals[p]; !dup {
			props = append(props, p)
		}
		vals[p] = v
	}
	sort.Strings(props)

	parts := make([]string, 0, len(props))
	for _, p := range props {
		parts = append(parts, p+": "+vals[p])
	}
	return strings.Join(parts, "; ")
}

// kebabCase converts camelCase style properties (backgroundColor) to
// their CSS form (background-color). Already-kebab input passes through.
func kebabCase(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			sb.WriteByte('-')
			sb.WriteByte(byte(r - 'A' + 'a'))
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
