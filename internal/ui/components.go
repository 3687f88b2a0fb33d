package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ActionLink is a labelled navigation target used by heroes and CTAs.
type ActionLink struct {
	Label string
	Href  string
	Icon  Icon
}

// Card is a navigational content card.
type Card struct {
	Title       string
	Description string
	Icon        Icon
	Category    string
	Href        string
}

// CardView renders a single card. Cards with an Href are wrapped in a link.
func CardView(card Card) g.Node {
	inner := []g.Node{
		g.If(card.Icon != "", EnhancedIcon(card.Icon, IconSpec{Variant: VariantPrimary, Size: SizeLG, WithBackground: true, Effect: EffectBounce, EffectOnHover: true})),
		g.If(card.Category != "", Badge(card.Category, VariantSecondary)),
		H3(Class("text-lg font-semibold text-[var(--heading)]"), g.Text(card.Title)),
		g.If(card.Description != "", P(Class("text-sm text-[var(--muted-foreground)]"), g.Text(card.Description))),
	}
	cls := "ui-card group flex h-full flex-col gap-3 rounded-2xl border border-[var(--border)] bg-[var(--card)] p-6 transition-shadow hover:shadow-lg"
	if card.Href == "" {
		return Div(Class(cls), g.Group(inner))
	}
	return A(Href(card.Href), Class(cls), g.Group(inner))
}

// CardGrid renders cards in a responsive grid.
func CardGrid(cards []Card, columns int) g.Node {
	if len(cards) == 0 {
		return nil
	}
	return Div(
		Class("ui-card-grid grid gap-6 "+GridColumnsClass(columns)),
		g.Group(g.Map(cards, CardView)),
	)
}

// Badge renders a small pill label.
func Badge(text string, v Variant) g.Node {
	v = v.Or(VariantDefault)
	return Span(
		Class("ui-badge inline-flex w-fit items-center rounded-full px-3 py-1 text-xs font-medium "+variantClass(v)+" "+backgroundClass(v)),
		g.Attr("data-variant", v.String()),
		g.Text(text),
	)
}

// AccordionItem is one collapsible question and answer.
type AccordionItem struct {
	Question string
	Answer   string
}

// Accordion renders items as native disclosure widgets.
func Accordion(items []AccordionItem) g.Node {
	if len(items) == 0 {
		return nil
	}
	return Div(
		Class("ui-accordion divide-y divide-[var(--border)] rounded-xl border border-[var(--border)]"),
		g.Group(g.Map(items, func(it AccordionItem) g.Node {
			return Details(
				Class("group px-6 py-4"),
				Summary(
					Class("flex cursor-pointer list-none items-center justify-between font-medium text-[var(--heading)]"),
					g.Text(it.Question),
					EnhancedIcon("lucide:chevron-down", IconSpec{Variant: VariantMuted, Size: SizeSM}),
				),
				P(Class("mt-3 text-[var(--muted-foreground)]"), g.Text(it.Answer)),
			)
		})),
	)
}

// HeroOptions configures PageHero.
type HeroOptions struct {
	Eyebrow     string
	Title       string
	Description string
	Image       string
	ImageAlt    string
	Actions     []ActionLink
}

// PageHero renders the top banner of a page.
func PageHero(opts HeroOptions) g.Node {
	return Section(
		Class("ui-hero bg-[var(--hero)] py-16 md:py-24"),
		Div(
			Class("container mx-auto grid items-center gap-10 px-4 md:grid-cols-2"),
			Div(
				g.If(opts.Eyebrow != "", P(Class("mb-3 text-sm font-semibold uppercase tracking-wide text-[var(--primary)]"), g.Text(opts.Eyebrow))),
				H1(Class("text-4xl font-bold text-[var(--heading)] md:text-5xl"), g.Text(opts.Title)),
				g.If(opts.Description != "", P(Class("mt-4 text-lg text-[var(--muted-foreground)]"), g.Text(opts.Description))),
				g.If(len(opts.Actions) > 0, Div(Class("mt-8 flex flex-wrap gap-4"), actionLinks(opts.Actions))),
			),
			g.If(opts.Image != "", Img(
				Src(opts.Image),
				Alt(opts.ImageAlt),
				Class("w-full rounded-2xl object-cover"),
				g.Attr("loading", "eager"),
			)),
		),
	)
}

// CTAOptions configures CTASection.
type CTAOptions struct {
	Title       string
	Description string
	Primary     ActionLink
	Secondary   ActionLink
}

// CTASection renders a call-to-action band with up to two buttons.
func CTASection(opts CTAOptions) g.Node {
	var links []ActionLink
	if opts.Primary.Href != "" {
		links = append(links, opts.Primary)
	}
	if opts.Secondary.Href != "" {
		links = append(links, opts.Secondary)
	}
	return Section(
		Class("ui-cta bg-[var(--primary)] py-16 text-white"),
		Div(
			Class("container mx-auto px-4 text-center"),
			H2(Class("text-3xl font-bold"), g.Text(opts.Title)),
			g.If(opts.Description != "", P(Class("mx-auto mt-4 max-w-2xl text-lg opacity-90"), g.Text(opts.Description))),
			g.If(len(links) > 0, Div(Class("mt-8 flex flex-wrap justify-center gap-4"), actionLinks(links))),
		),
	)
}

func actionLinks(links []ActionLink) g.Node {
	nodes := make([]g.Node, 0, len(links))
	for i, l := range links {
		cls := "ui-button inline-flex items-center gap-2 rounded-full px-6 py-3 font-semibold"
		if i == 0 {
			cls += " bg-[var(--primary)] text-white"
		} else {
			cls += " border border-current"
		}
		nodes = append(nodes, A(
			Href(l.Href),
			Class(cls),
			g.If(l.Icon != "", EnhancedIcon(l.Icon, IconSpec{Size: SizeSM})),
			g.Text(l.Label),
		))
	}
	return g.Group(nodes)
}
