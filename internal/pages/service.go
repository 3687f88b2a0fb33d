package pages

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"summitcare.com.au/web/internal/content"
	"summitcare.com.au/web/internal/nav"
	"summitcare.com.au/web/internal/seo"
	"summitcare.com.au/web/internal/ui"
)

// Service builds a service landing page. SIL also lists every location.
func (s *Site) Service(lang, slug string) (Page, error) {
	svc, err := content.ServiceBySlug(slug)
	if err != nil {
		return Page{}, err
	}
	path := svc.Path()
	crumbs := nav.Breadcrumbs(path)

	var locationsSection g.Node
	if svc.Slug == "sil" && s.Locations != nil && s.Locations.Len() > 0 {
		locationsSection = Section(
			Class("container mx-auto px-4 py-16"),
			H2(Class("mb-8 text-3xl font-bold text-[var(--heading)]"), g.Text(s.t(lang, "service.locations"))),
			ui.CardGrid(s.locationCards(""), 4),
		)
	}

	body := g.Group{
		ui.PageHero(svc.Hero),
		Section(
			Class("container mx-auto px-4 py-16"),
			P(Class("mb-10 max-w-3xl text-lg"), g.Text(svc.Summary)),
			ui.IconFeatureGroup(ui.FeatureGroup{
				Items:     svc.Highlights,
				Variant:   ui.VariantPrimary,
				Direction: ui.DirectionRow,
			}),
		),
		Section(
			Class("bg-[var(--muted)] py-16"),
			Div(
				Class("container mx-auto px-4"),
				H2(Class("mb-8 text-3xl font-bold text-[var(--heading)]"), g.Text(s.t(lang, "service.process"))),
				ui.FeatureIconGrid(ui.GridOptions{
					Items:         svc.Process,
					Columns:       len(svc.Process),
					Variant:       ui.VariantSecondary,
					Effect:        ui.EffectWiggle,
					EffectOnHover: true,
				}),
			),
		),
		locationsSection,
		s.faqSection(lang, svc.FAQs),
		ui.CTASection(svc.CTA),
	}

	return Page{
		Path:  path,
		Title: svc.Name,
		Meta: seo.Meta{
			Title:       svc.MetaTitle,
			Description: svc.MetaDescription,
			OG:          seo.OpenGraph{Image: s.absURL(svc.Hero.Image)},
		},
		JSONLD: []string{
			seo.JSON(seo.FAQPage(accordionFAQs(svc.FAQs))),
			s.breadcrumbJSONLD(lang, crumbs),
		},
		Crumbs: crumbs,
		Body:   body,
	}, nil
}

func (s *Site) faqSection(lang string, items []ui.AccordionItem) g.Node {
	if len(items) == 0 {
		return nil
	}
	return Section(
		Class("container mx-auto max-w-3xl px-4 py-16"),
		H2(Class("mb-8 text-3xl font-bold text-[var(--heading)]"), g.Text(s.t(lang, "location.faq"))),
		ui.Accordion(items),
	)
}

func accordionFAQs(items []ui.AccordionItem) []seo.FAQ {
	out := make([]seo.FAQ, len(items))
	for i, it := range items {
		out[i] = seo.FAQ{Question: it.Question, Answer: it.Answer}
	}
	return out
}
