package pages

import (
	"fmt"
	"io"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"summitcare.com.au/web/internal/nav"
	"summitcare.com.au/web/internal/seo"
	"summitcare.com.au/web/internal/ui"
)

const iconifyScript = "https://code.iconify.design/3/3.1.1/iconify.min.js"

// Render writes the full HTML document for p.
func (s *Site) Render(w io.Writer, lang string, p Page) error {
	if lang == "" {
		lang = "en"
	}
	return s.document(lang, p).Render(w)
}

func (s *Site) document(lang string, p Page) g.Node {
	meta := p.Meta.WithDefaults()
	title := meta.Title
	if title == "" {
		title = p.Title + " | " + s.Brand.Name
	}
	canonical := meta.Canonical
	if canonical == "" && p.Path != "" {
		canonical = s.absURL(p.Path)
	}

	return Doctype(
		HTML(
			Lang(lang),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				TitleEl(g.Text(title)),
				g.If(meta.Description != "", Meta(Name("description"), Content(meta.Description))),
				g.If(meta.Robots != "", Meta(Name("robots"), Content(meta.Robots))),
				g.If(canonical != "", Link(Rel("canonical"), Href(canonical))),
				openGraph(meta, title, canonical, s.Brand.Name),
				twitterCard(meta),
				Link(Rel("stylesheet"), Href("/assets/css/site.css")),
				effectsLink(),
				Script(Src(iconifyScript), Defer()),
				g.Group(g.Map(p.JSONLD, func(doc string) g.Node {
					return Script(Type("application/ld+json"), g.Raw(doc))
				})),
				s.analyticsHead(),
			),
			Body(
				Class("min-h-screen bg-[var(--background)] text-[var(--foreground)] antialiased"),
				s.analyticsBody(),
				A(Href("#main"), Class("sr-only focus:not-sr-only"), g.Text("Skip to content")),
				s.siteHeader(lang, p.Path),
				s.breadcrumbs(lang, p.Crumbs),
				Main(ID("main"), p.Body),
				s.siteFooter(lang),
			),
		),
	)
}

func effectsLink() g.Node {
	href := "/assets/effects.css"
	if d := ui.EffectStylesheetDigest(); d != "" {
		href += "?v=" + d
	}
	return Link(Rel("stylesheet"), Href(href))
}

func openGraph(m seo.Meta, title, url, siteName string) g.Node {
	if m.OG.Title == "" {
		m.OG.Title = title
	}
	return g.Group{
		property("og:title", m.OG.Title),
		property("og:description", m.OG.Description),
		property("og:type", m.OG.Type),
		property("og:url", url),
		property("og:image", m.OG.Image),
		property("og:site_name", siteName),
	}
}

func twitterCard(m seo.Meta) g.Node {
	return g.Group{
		namedMeta("twitter:card", m.Twitter.Card),
		namedMeta("twitter:site", m.Twitter.Site),
		namedMeta("twitter:image", m.Twitter.Image),
	}
}

func property(name, value string) g.Node {
	if value == "" {
		return nil
	}
	return Meta(g.Attr("property", name), Content(value))
}

func namedMeta(name, value string) g.Node {
	if value == "" {
		return nil
	}
	return Meta(Name(name), Content(value))
}

func (s *Site) analyticsHead() g.Node {
	a := s.Analytics
	var nodes g.Group
	if a.GTMContainerID != "" {
		nodes = append(nodes, Script(g.Raw(fmt.Sprintf(
			"(function(w,d,s,l,i){w[l]=w[l]||[];w[l].push({'gtm.start':new Date().getTime(),event:'gtm.js'});"+
				"var f=d.getElementsByTagName(s)[0],j=d.createElement(s);j.async=true;"+
				"j.src='https://www.googletagmanager.com/gtm.js?id='+i;f.parentNode.insertBefore(j,f);"+
				"})(window,document,'script','dataLayer',%s);", seo.JSON(a.GTMContainerID)))))
	}
	if a.GA4MeasurementID != "" {
		nodes = append(nodes,
			Script(Async(), Src("https://www.googletagmanager.com/gtag/js?id="+a.GA4MeasurementID)),
			Script(g.Raw(fmt.Sprintf(
				"window.dataLayer=window.dataLayer||[];function gtag(){dataLayer.push(arguments);}"+
					"gtag('js',new Date());gtag('config',%s,{debug_mode:%t});",
				seo.JSON(a.GA4MeasurementID), a.Debug))),
		)
	}
	if len(nodes) == 0 {
		return nil
	}
	return nodes
}

func (s *Site) analyticsBody() g.Node {
	if s.Analytics.GTMContainerID == "" {
		return nil
	}
	return NoScript(IFrame(
		Src("https://www.googletagmanager.com/ns.html?id="+s.Analytics.GTMContainerID),
		Height("0"), Width("0"),
		Style("display:none;visibility:hidden"),
	))
}

func (s *Site) siteHeader(lang, path string) g.Node {
	items := nav.Build(path)
	if path == "" {
		// pages without a route, such as the not-found page, highlight nothing
		for i := range items {
			items[i].Active = false
		}
	}
	return Header(
		Class("site-header sticky top-0 z-40 border-b border-[var(--border)] bg-[var(--background)]/90 backdrop-blur"),
		Div(
			Class("container mx-auto flex items-center justify-between gap-6 px-4 py-4"),
			A(Href("/"), Class("flex items-center gap-2 text-xl font-bold text-[var(--heading)]"),
				ui.EnhancedIcon("lucide:mountain", ui.IconSpec{Variant: ui.VariantPrimary, Size: ui.SizeLG}),
				g.Text(s.Brand.Name),
			),
			Nav(
				g.Attr("aria-label", "Main"),
				Ul(
					Class("hidden items-center gap-6 md:flex"),
					g.Group(g.Map(items, func(it nav.RenderedItem) g.Node {
						cls := "text-sm font-medium hover:text-[var(--primary)]"
						if it.Active {
							cls += " text-[var(--primary)]"
						}
						return Li(A(
							Href(it.Href),
							Class(cls),
							g.If(it.Active, g.Attr("aria-current", "page")),
							g.Text(s.t(lang, it.LabelKey)),
						))
					})),
				),
			),
			A(Href("/contact/enquire"), Class("ui-button rounded-full bg-[var(--primary)] px-5 py-2 text-sm font-semibold text-white"),
				g.Text(s.t(lang, "cta.enquire")),
			),
		),
	)
}

func (s *Site) breadcrumbs(lang string, crumbs nav.Crumbs) g.Node {
	if len(crumbs) < 2 {
		return nil
	}
	return Nav(
		Class("breadcrumbs container mx-auto px-4 py-3 text-sm"),
		g.Attr("aria-label", s.t(lang, "nav.breadcrumb")),
		Ol(
			Class("flex flex-wrap items-center gap-2 text-[var(--muted-foreground)]"),
			g.Group(g.Map(crumbs, func(c nav.Crumb) g.Node {
				label := s.crumbLabel(lang, c)
				if c.Active {
					return Li(Span(g.Attr("aria-current", "page"), Class("text-[var(--heading)]"), g.Text(label)))
				}
				return Li(A(Href(c.Href), Class("hover:underline"), g.Text(label)), Span(g.Attr("aria-hidden", "true"), g.Text(" / ")))
			})),
		),
	)
}

func (s *Site) siteFooter(lang string) g.Node {
	services := []nav.Item{nav.Main[1], nav.Main[2], nav.Main[3], nav.Main[4]}
	return Footer(
		Class("site-footer mt-24 border-t border-[var(--border)] bg-[var(--muted)] py-12"),
		Div(
			Class("container mx-auto grid gap-8 px-4 md:grid-cols-3"),
			Div(
				P(Class("text-lg font-bold text-[var(--heading)]"), g.Text(s.Brand.Name)),
				P(Class("mt-2 text-sm"), g.Text(s.t(lang, "footer.ndis"))),
				g.If(s.Brand.Phone != "", P(Class("mt-4 text-sm"), A(Href(s.callLink().Href), g.Text(s.Brand.Phone)))),
				g.If(s.Brand.Email != "", P(Class("text-sm"), A(Href("mailto:"+s.Brand.Email), g.Text(s.Brand.Email)))),
			),
			Ul(
				Class("space-y-2 text-sm"),
				g.Group(g.Map(services, func(it nav.Item) g.Node {
					return Li(A(Href(it.Path), g.Text(s.t(lang, it.LabelKey))))
				})),
			),
			Ul(
				Class("space-y-2 text-sm"),
				g.Group(g.Map(ContentKinds, func(kind string) g.Node {
					return Li(A(Href("/"+kind), g.Text(s.t(lang, "nav."+kind))))
				})),
				Li(A(Href("/components"), g.Text(s.t(lang, "nav.components")))),
			),
		),
		P(Class("container mx-auto mt-8 px-4 text-xs text-[var(--muted-foreground)]"),
			g.Textf("© %s. %s", s.Brand.Name, s.t(lang, "footer.rights")),
		),
	)
}
