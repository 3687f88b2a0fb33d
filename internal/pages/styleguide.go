package pages

import (
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"summitcare.com.au/web/internal/nav"
	"summitcare.com.au/web/internal/seo"
	"summitcare.com.au/web/internal/ui"
)

var categoryOrder = []ui.Category{ui.CategoryIcon, ui.CategoryLayout, ui.CategoryContent, ui.CategoryAction}

// Components builds the component library page. A non-empty query filters
// the catalog by name, description and tags.
func (s *Site) Components(lang, query string) Page {
	query = strings.TrimSpace(query)
	reg := ui.NewRegistry(s.registry().Search(query)...)
	path := "/components"
	crumbs := nav.Breadcrumbs(path).WithLastLabel(s.t(lang, "components.title"))

	var sections g.Group
	for _, cat := range categoryOrder {
		items := reg.ByCategory(cat)
		if len(items) == 0 {
			continue
		}
		sections = append(sections, Section(
			Class("mb-16"),
			ID("category-"+string(cat)),
			H2(Class("mb-6 text-2xl font-bold capitalize text-[var(--heading)]"), g.Text(string(cat))),
			g.Group(g.Map(items, componentEntry)),
		))
	}
	if len(sections) == 0 {
		sections = append(sections, P(Class("text-[var(--muted-foreground)]"), g.Text("No components match "+`"`+query+`"`+".")))
	}

	return Page{
		Path:  path,
		Title: s.t(lang, "components.title"),
		Meta: seo.Meta{
			Description: s.t(lang, "components.description"),
			Robots:      "noindex",
		},
		Crumbs: crumbs,
		Body: Div(
			Class("container mx-auto px-4 py-16"),
			H1(Class("text-4xl font-bold text-[var(--heading)]"), g.Text(s.t(lang, "components.title"))),
			P(Class("mt-4 text-lg text-[var(--muted-foreground)]"), g.Text(s.t(lang, "components.description"))),
			Form(
				Class("mt-8 mb-12 flex gap-2"),
				Method("get"),
				Action(path),
				g.Attr("role", "search"),
				Input(Type("search"), Name("q"), Value(query), Placeholder("Search components"),
					Class("flex-1 rounded-full border border-[var(--border)] px-4 py-2")),
				Button(Type("submit"), Class("ui-button rounded-full bg-[var(--primary)] px-5 py-2 text-white"), g.Text("Search")),
			),
			sections,
		),
	}
}

func componentEntry(m ui.ComponentMeta) g.Node {
	var example g.Node
	if m.Example != nil {
		example = Div(Class("component-example rounded-xl border border-dashed border-[var(--border)] p-6"), m.Example())
	}
	return Article(
		Class("component-entry mb-10"),
		ID("component-"+m.Name),
		g.Attr("data-component", m.Name),
		H3(Class("text-xl font-semibold text-[var(--heading)]"), g.Text(m.Name)),
		P(Class("mt-1 text-[var(--muted-foreground)]"), g.Text(m.Description)),
		g.If(len(m.Tags) > 0, Ul(
			Class("mt-2 flex flex-wrap gap-2"),
			g.Group(g.Map(m.Tags, func(tag string) g.Node { return Li(ui.Badge(tag, ui.VariantMuted)) })),
		)),
		g.If(len(m.Props) > 0, Table(
			Class("component-props mt-4 w-full text-left text-sm"),
			THead(Tr(Th(g.Text("Prop")), Th(g.Text("Type")), Th(g.Text("Default")), Th(g.Text("Required")))),
			TBody(g.Group(g.Map(m.Props, func(p ui.PropMeta) g.Node {
				required := ""
				if p.Required {
					required = "yes"
				}
				return Tr(Td(Code(g.Text(p.Name))), Td(g.Text(p.Type)), Td(g.Text(p.Default)), Td(g.Text(required)))
			}))),
		)),
		g.If(example != nil, Div(Class("mt-4"), example)),
	)
}

// NotFound builds the page served for unknown routes.
func (s *Site) NotFound(lang string) Page {
	return Page{
		Title: s.t(lang, "notfound.title"),
		Meta:  seo.Meta{Robots: "noindex"},
		Body: Section(
			Class("container mx-auto flex flex-col items-center gap-6 px-4 py-24 text-center"),
			ui.EnhancedIcon("lucide:compass", ui.IconSpec{Variant: ui.VariantMuted, Size: ui.SizeXL, Effect: ui.EffectWiggle, WithBackground: true}),
			H1(Class("text-4xl font-bold text-[var(--heading)]"), g.Text(s.t(lang, "notfound.title"))),
			P(Class("max-w-xl text-lg text-[var(--muted-foreground)]"), g.Text(s.t(lang, "notfound.body"))),
			A(Href("/"), Class("ui-button rounded-full bg-[var(--primary)] px-6 py-3 font-semibold text-white"), g.Text(s.t(lang, "notfound.home"))),
		),
	}
}
