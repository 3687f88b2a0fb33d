package pages

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"summitcare.com.au/web/internal/locations"
	"summitcare.com.au/web/internal/nav"
	"summitcare.com.au/web/internal/seo"
	"summitcare.com.au/web/internal/ui"
)

// LocationPath is the route of a location page.
func LocationPath(slug string) string { return "/sil/" + slug }

// Location builds the SIL landing page for one suburb. A slug outside the
// table returns an error wrapping locations.ErrNotFound.
func (s *Site) Location(lang, slug string) (Page, error) {
	if s.Locations == nil {
		return Page{}, fmt.Errorf("%w: %q", locations.ErrNotFound, slug)
	}
	rec, err := s.Locations.Lookup(slug)
	if err != nil {
		return Page{}, err
	}
	path := LocationPath(rec.Slug)
	crumbs := nav.Breadcrumbs(path).WithLastLabel(rec.Name)

	faqItems := make([]ui.AccordionItem, len(rec.FAQs))
	faqs := make([]seo.FAQ, len(rec.FAQs))
	for i, f := range rec.FAQs {
		faqItems[i] = ui.AccordionItem{Question: f.Question, Answer: f.Answer}
		faqs[i] = seo.FAQ{Question: f.Question, Answer: f.Answer}
	}

	why := make([]ui.GridItem, len(rec.WhyChoosePoints))
	for i, point := range rec.WhyChoosePoints {
		why[i] = ui.GridItem{Icon: "lucide:check-circle", Title: point}
	}

	var around []ui.Feature
	if rec.Landmarks != "" {
		around = append(around, ui.Feature{Icon: "lucide:landmark", Title: s.t(lang, "location.landmarks"), Description: rec.Landmarks})
	}
	if rec.TransportInfo != "" {
		around = append(around, ui.Feature{Icon: "lucide:train-front", Title: s.t(lang, "location.transport"), Description: rec.TransportInfo})
	}

	body := g.Group{
		ui.PageHero(ui.HeroOptions{
			Eyebrow:     rec.Region,
			Title:       rec.HeroTitle,
			Description: rec.HeroDescription,
			Actions:     []ui.ActionLink{s.enquireLink(), s.callLink()},
		}),
		Section(
			Class("container mx-auto grid gap-12 px-4 py-16 md:grid-cols-2"),
			Div(
				g.If(rec.LocalContent != "", P(Class("text-lg"), g.Text(rec.LocalContent))),
				g.If(len(rec.NearbySuburbs) > 0, Div(
					Class("mt-8"),
					H2(Class("mb-4 text-xl font-semibold text-[var(--heading)]"), g.Text(s.t(lang, "location.nearby"))),
					Ul(
						Class("flex flex-wrap gap-2"),
						g.Group(g.Map(rec.NearbySuburbs, func(suburb string) g.Node {
							return Li(ui.Badge(suburb, ui.VariantSecondary))
						})),
					),
				)),
			),
			ui.IconFeatureGroup(ui.FeatureGroup{Items: around, Variant: ui.VariantPrimary, Dividers: true}),
		),
		g.If(len(why) > 0, Section(
			Class("bg-[var(--muted)] py-16"),
			Div(
				Class("container mx-auto px-4"),
				H2(Class("mb-8 text-3xl font-bold text-[var(--heading)]"), g.Textf(s.t(lang, "location.why"), rec.Name)),
				ui.FeatureIconGrid(ui.GridOptions{Items: why, Columns: len(why), Variant: ui.VariantAccent}),
			),
		)),
		s.faqSection(lang, faqItems),
		g.If(s.Locations.Len() > 1, Section(
			Class("container mx-auto px-4 py-16"),
			H2(Class("mb-8 text-2xl font-bold text-[var(--heading)]"), g.Text(s.t(lang, "location.others"))),
			ui.CardGrid(s.locationCards(rec.Slug), 3),
		)),
		ui.CTASection(ui.CTAOptions{
			Title:     rec.HeroTitle,
			Primary:   s.enquireLink(),
			Secondary: s.callLink(),
		}),
	}

	business := seo.LocalBusiness(seo.LocalBusinessInfo{
		Name:        s.Brand.Name + " " + rec.Name,
		Description: rec.MetaDescription,
		URL:         s.absURL(path),
		Telephone:   s.Brand.Phone,
		Locality:    rec.Name,
		Region:      s.Brand.Region,
		Country:     s.Brand.Country,
		District:    rec.Region,
		AreaServed:  rec.NearbySuburbs,
	})

	return Page{
		Path:  path,
		Title: rec.Name,
		Meta: seo.Meta{
			Title:       rec.MetaTitle,
			Description: rec.MetaDescription,
		},
		JSONLD: []string{
			seo.JSON(seo.FAQPage(faqs)),
			seo.JSON(business),
			s.breadcrumbJSONLD(lang, crumbs),
		},
		Crumbs: crumbs,
		Body:   body,
	}, nil
}

// locationCards lists every location except skip, in table order.
func (s *Site) locationCards(skip string) []ui.Card {
	if s.Locations == nil {
		return nil
	}
	var cards []ui.Card
	for _, rec := range s.Locations.Records() {
		if rec.Slug == skip {
			continue
		}
		cards = append(cards, ui.Card{
			Title:       rec.Name,
			Description: rec.HeroDescription,
			Icon:        "lucide:map-pin",
			Category:    rec.Region,
			Href:        LocationPath(rec.Slug),
		})
	}
	return cards
}
