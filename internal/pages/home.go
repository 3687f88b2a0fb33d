package pages

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"summitcare.com.au/web/internal/content"
	"summitcare.com.au/web/internal/nav"
	"summitcare.com.au/web/internal/seo"
	"summitcare.com.au/web/internal/ui"
)

// Home builds the landing page.
func (s *Site) Home(lang string) Page {
	home := content.HomePage()
	services := content.Services()
	entries := make([]content.Entry, len(services))
	for i, svc := range services {
		entries[i] = svc.Entry()
	}

	body := g.Group{
		ui.PageHero(home.Hero),
		Section(
			Class("container mx-auto px-4 py-16"),
			Div(
				Class("mb-10 flex flex-col items-center gap-6 text-center"),
				ui.IconStack(ui.StackOptions{
					Icons:       home.SupportIcons,
					Arrangement: ui.ArrangementCircle,
					Size:        ui.SizeMD,
					Variant:     ui.VariantPrimary,
					Effect:      ui.EffectGlow,
				}),
				H2(Class("text-3xl font-bold text-[var(--heading)]"), g.Text(s.t(lang, "site.tagline"))),
			),
			ui.CardGrid(content.Cards(entries), 4),
		),
		Section(
			Class("bg-[var(--muted)] py-16"),
			Div(Class("container mx-auto px-4"), ui.IconFeatureGroup(home.WhyChoose)),
		),
		Section(
			Class("container mx-auto px-4 py-16"),
			ui.FeatureIconGrid(home.Stats),
		),
		ui.CTASection(home.CTA),
	}

	return Page{
		Path:  "/",
		Title: s.Brand.Name,
		Meta: seo.Meta{
			Title:       s.Brand.Name + " | " + s.t(lang, "site.tagline"),
			Description: home.Hero.Description,
			OG:          seo.OpenGraph{Image: s.absURL(home.Hero.Image)},
		},
		JSONLD: []string{
			seo.JSON(seo.Organization(s.Brand.Name, s.absURL("/"), s.Brand.LogoURL)),
			seo.JSON(seo.WebSite(s.Brand.Name, s.absURL("/"), "")),
		},
		Crumbs: nav.Breadcrumbs("/"),
		Body:   body,
	}
}
