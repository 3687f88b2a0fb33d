package pages

import (
	"context"
	"fmt"
	"slices"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"summitcare.com.au/web/internal/cms"
	"summitcare.com.au/web/internal/format"
	"summitcare.com.au/web/internal/nav"
	"summitcare.com.au/web/internal/seo"
	"summitcare.com.au/web/internal/ui"
)

// Content builds a markdown page from the CMS. Unknown kinds and missing
// pages return an error wrapping cms.ErrNotFound.
func (s *Site) Content(ctx context.Context, lang, kind, slug string) (Page, error) {
	if !slices.Contains(ContentKinds, kind) || s.CMS == nil {
		return Page{}, fmt.Errorf("%w: %s/%s", cms.ErrNotFound, kind, slug)
	}
	cp, err := s.CMS.GetContentPage(ctx, kind, slug, lang)
	if err != nil {
		return Page{}, err
	}
	path := "/" + kind + "/" + cp.Slug
	crumbs := nav.Breadcrumbs(path).WithLastLabel(cp.Title)

	body := g.Group{
		ui.PageHero(ui.HeroOptions{Eyebrow: s.t(lang, "nav."+kind), Title: cp.Title, Description: cp.Summary}),
		contentBanner(cp.Banner),
		Article(
			Class("cms-body prose container mx-auto max-w-3xl px-4 py-16"),
			g.Raw(cp.HTML()),
			s.contentDates(lang, cp),
		),
		ui.CTASection(ui.CTAOptions{
			Title:     s.t(lang, "cta.enquire"),
			Primary:   s.enquireLink(),
			Secondary: s.callLink(),
		}),
	}

	meta := seo.Meta{
		Title:       cp.SEO.Title,
		Description: firstNonEmpty(cp.SEO.Description, cp.Summary),
		Robots:      cp.SEO.Robots,
	}
	if cp.SEO.OGImage != "" {
		meta.OG.Image = cp.SEO.OGImage
	}

	return Page{
		Path:   path,
		Title:  cp.Title,
		Meta:   meta,
		JSONLD: []string{s.breadcrumbJSONLD(lang, crumbs)},
		Crumbs: crumbs,
		Body:   body,
	}, nil
}

// Section builds the index page listing every local page of kind.
func (s *Site) Section(ctx context.Context, lang, kind string) (Page, error) {
	if !slices.Contains(ContentKinds, kind) {
		return Page{}, fmt.Errorf("%w: section %s", cms.ErrNotFound, kind)
	}
	var list []cms.ContentPage
	if s.CMS != nil {
		var err error
		if list, err = s.CMS.ListContentPages(ctx, kind, lang); err != nil {
			return Page{}, err
		}
	}
	cards := make([]ui.Card, len(list))
	for i, cp := range list {
		cards[i] = ui.Card{
			Title:       cp.Title,
			Description: cp.Summary,
			Icon:        ui.Icon(cp.Icon),
			Href:        "/" + kind + "/" + cp.Slug,
		}
	}

	title := s.t(lang, "nav."+kind)
	path := "/" + kind
	crumbs := nav.Breadcrumbs(path).WithLastLabel(title)

	var listing g.Node = P(Class("text-[var(--muted-foreground)]"), g.Text(s.t(lang, "section.empty")))
	if len(cards) > 0 {
		listing = ui.CardGrid(cards, 3)
	}

	return Page{
		Path:   path,
		Title:  title,
		Meta:   seo.Meta{Description: title + " | " + s.Brand.Name},
		JSONLD: []string{s.breadcrumbJSONLD(lang, crumbs)},
		Crumbs: crumbs,
		Body: g.Group{
			ui.PageHero(ui.HeroOptions{Title: title}),
			Section(Class("container mx-auto px-4 py-16"), listing),
		},
	}, nil
}

func (s *Site) contentDates(lang string, cp cms.ContentPage) g.Node {
	var lines g.Group
	if d := format.Date(cp.EffectiveDate, lang); d != "" {
		lines = append(lines, P(g.Textf(s.t(lang, "content.effective"), d)))
	}
	if d := format.Date(cp.UpdatedAt, lang); d != "" {
		lines = append(lines, P(g.Textf(s.t(lang, "content.updated"), d)))
	}
	if len(lines) == 0 {
		return nil
	}
	return Footer(Class("cms-dates mt-12 text-sm text-[var(--muted-foreground)]"), lines)
}

func contentBanner(b *cms.ContentBanner) g.Node {
	if b == nil {
		return nil
	}
	return Div(
		Class("cms-banner container mx-auto mt-8 max-w-3xl rounded-xl border border-[var(--border)] p-4 px-4"),
		g.Attr("role", "status"),
		g.Attr("data-variant", b.Variant),
		g.If(b.Title != "", Strong(Class("block"), g.Text(b.Title))),
		g.If(b.Message != "", P(g.Text(b.Message))),
		g.If(b.LinkURL != "", A(Href(b.LinkURL), Class("underline"), g.Text(firstNonEmpty(b.LinkText, b.LinkURL)))),
	)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
