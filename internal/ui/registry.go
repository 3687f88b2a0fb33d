package ui

import (
	"strings"

	g "maragu.dev/gomponents"
)

// Category groups components in the catalog.
type Category string

const (
	CategoryIcon    Category = "icon"
	CategoryLayout  Category = "layout"
	CategoryContent Category = "content"
	CategoryAction  Category = "action"
)

// PropMeta documents one configuration field of a component.
type PropMeta struct {
	Name     string
	Type     string
	Default  string
	Required bool
}

// ComponentMeta describes a component for the styleguide.
type ComponentMeta struct {
	Name        string
	Category    Category
	Description string
	Props       []PropMeta
	Tags        []string
	Example     func() g.Node
}

// Registry is an ordered, read-only list of component metadata.
type Registry struct {
	items []ComponentMeta
}

// NewRegistry copies items into a registry, keeping their order.
func NewRegistry(items ...ComponentMeta) *Registry {
	return &Registry{items: append([]ComponentMeta(nil), items...)}
}

// All returns every entry in registration order.
func (r *Registry) All() []ComponentMeta {
	return append([]ComponentMeta(nil), r.items...)
}

// ByCategory returns the entries in cat.
func (r *Registry) ByCategory(cat Category) []ComponentMeta {
	var out []ComponentMeta
	for _, m := range r.items {
		if m.Category == cat {
			out = append(out, m)
		}
	}
	return out
}

// Find returns the entry named name.
func (r *Registry) Find(name string) (ComponentMeta, bool) {
	for _, m := range r.items {
		if m.Name == name {
			return m, true
		}
	}
	return ComponentMeta{}, false
}

// Search matches q case-insensitively against names, descriptions and tags.
// An empty query matches everything.
func (r *Registry) Search(q string) []ComponentMeta {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return r.All()
	}
	var out []ComponentMeta
	for _, m := range r.items {
		if matches(m, q) {
			out = append(out, m)
		}
	}
	return out
}

func matches(m ComponentMeta, q string) bool {
	if strings.Contains(strings.ToLower(m.Name), q) || strings.Contains(strings.ToLower(m.Description), q) {
		return true
	}
	for _, t := range m.Tags {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	return false
}

var sampleIcons = []Icon{"lucide:home", "lucide:heart-handshake", "lucide:users", "lucide:key-round"}

// Catalog returns the registry of every shared component.
func Catalog() *Registry {
	return NewRegistry(
		ComponentMeta{
			Name:        "EnhancedIcon",
			Category:    CategoryIcon,
			Description: "Single icon with variant colour, size, optional background and animation.",
			Props: []PropMeta{
				{Name: "icon", Type: "Icon", Required: true},
				{Name: "variant", Type: "primary|secondary|accent|muted|default", Default: "default"},
				{Name: "effect", Type: "none|pulse|bounce|spin|wiggle|glow", Default: "none"},
				{Name: "size", Type: "xs|sm|md|lg|xl", Default: "md"},
				{Name: "withBackground", Type: "bool", Default: "false"},
				{Name: "effectOnHover", Type: "bool", Default: "false"},
			},
			Tags: []string{"icon", "animation"},
			Example: func() g.Node {
				return EnhancedIcon("lucide:heart", IconSpec{Variant: VariantPrimary, Effect: EffectPulse, Size: SizeLG, WithBackground: true})
			},
		},
		ComponentMeta{
			Name:        "IconFeature",
			Category:    CategoryContent,
			Description: "Icon on the left with a title and description on the right.",
			Props: []PropMeta{
				{Name: "icon", Type: "Icon", Required: true},
				{Name: "title", Type: "string"},
				{Name: "description", Type: "string"},
				{Name: "variant", Type: "Variant", Default: "default"},
				{Name: "hoverEffect", Type: "bool", Default: "false"},
			},
			Tags: []string{"feature", "list"},
			Example: func() g.Node {
				return IconFeature(Feature{Icon: "lucide:shield-check", Title: "Registered NDIS provider", Description: "Audited against the NDIS Practice Standards.", Variant: VariantAccent})
			},
		},
		ComponentMeta{
			Name:        "IconFeatureGroup",
			Category:    CategoryLayout,
			Description: "Ordered list of features sharing a variant; an item's own variant wins.",
			Props: []PropMeta{
				{Name: "items", Type: "[]Feature", Required: true},
				{Name: "variant", Type: "Variant"},
				{Name: "direction", Type: "column|row", Default: "column"},
				{Name: "dividers", Type: "bool", Default: "false"},
				{Name: "background", Type: "bool", Default: "false"},
			},
			Tags: []string{"feature", "list", "group"},
			Example: func() g.Node {
				return IconFeatureGroup(FeatureGroup{
					Variant:  VariantPrimary,
					Dividers: true,
					Items: []Feature{
						{Icon: "lucide:clock", Title: "24/7 support"},
						{Icon: "lucide:map-pin", Title: "Local teams", Variant: VariantSecondary},
					},
				})
			},
		},
		ComponentMeta{
			Name:        "IconStack",
			Category:    CategoryIcon,
			Description: "Several icons arranged as a cascade, grid, circle or overlap.",
			Props: []PropMeta{
				{Name: "icons", Type: "[]Icon", Required: true},
				{Name: "arrangement", Type: "cascade|grid|circle|overlap", Default: "cascade"},
				{Name: "size", Type: "Size", Default: "md"},
			},
			Tags: []string{"icon", "layout"},
			Example: func() g.Node {
				return IconStack(StackOptions{Icons: sampleIcons, Arrangement: ArrangementCircle, Variant: VariantPrimary})
			},
		},
		ComponentMeta{
			Name:        "FeatureIconGrid",
			Category:    CategoryLayout,
			Description: "Responsive grid of icon cards with 2 to 6 columns.",
			Props: []PropMeta{
				{Name: "items", Type: "[]GridItem", Required: true},
				{Name: "columns", Type: "2..6", Default: "3"},
				{Name: "variant", Type: "Variant"},
				{Name: "effect", Type: "Effect"},
			},
			Tags: []string{"grid", "feature"},
			Example: func() g.Node {
				return FeatureIconGrid(GridOptions{
					Columns: 2,
					Variant: VariantSecondary,
					Items: []GridItem{
						{Icon: "lucide:phone", Title: "Call us"},
						{Icon: "lucide:mail", Title: "Email us", Variant: VariantAccent},
					},
				})
			},
		},
		ComponentMeta{
			Name:        "Card",
			Category:    CategoryContent,
			Description: "Navigational card with icon, category badge, title and description.",
			Props: []PropMeta{
				{Name: "title", Type: "string", Required: true},
				{Name: "description", Type: "string"},
				{Name: "icon", Type: "Icon"},
				{Name: "category", Type: "string"},
				{Name: "href", Type: "string"},
			},
			Tags: []string{"card", "navigation"},
			Example: func() g.Node {
				return CardView(Card{Title: "Supported Independent Living", Description: "Support to live in your own home.", Icon: "lucide:home", Category: "SIL", Href: "/sil"})
			},
		},
		ComponentMeta{
			Name:        "Badge",
			Category:    CategoryContent,
			Description: "Small pill label.",
			Props:       []PropMeta{{Name: "text", Type: "string", Required: true}, {Name: "variant", Type: "Variant", Default: "default"}},
			Tags:        []string{"label"},
			Example:     func() g.Node { return Badge("NDIS registered", VariantAccent) },
		},
		ComponentMeta{
			Name:        "Accordion",
			Category:    CategoryContent,
			Description: "Collapsible questions and answers using native disclosure elements.",
			Props:       []PropMeta{{Name: "items", Type: "[]AccordionItem", Required: true}},
			Tags:        []string{"faq", "disclosure"},
			Example: func() g.Node {
				return Accordion([]AccordionItem{{Question: "Who can access SIL?", Answer: "Participants with SIL funding in their NDIS plan."}})
			},
		},
		ComponentMeta{
			Name:        "PageHero",
			Category:    CategoryLayout,
			Description: "Page banner with eyebrow, heading, description, image and actions.",
			Props: []PropMeta{
				{Name: "title", Type: "string", Required: true},
				{Name: "eyebrow", Type: "string"},
				{Name: "description", Type: "string"},
				{Name: "image", Type: "string"},
				{Name: "actions", Type: "[]ActionLink"},
			},
			Tags: []string{"hero", "banner"},
			Example: func() g.Node {
				return PageHero(HeroOptions{Eyebrow: "NDIS services", Title: "Support that fits your life", Actions: []ActionLink{{Label: "Enquire", Href: "/contact/enquire"}}})
			},
		},
		ComponentMeta{
			Name:        "CTASection",
			Category:    CategoryAction,
			Description: "Call-to-action band with primary and secondary links.",
			Props: []PropMeta{
				{Name: "title", Type: "string", Required: true},
				{Name: "description", Type: "string"},
				{Name: "primary", Type: "ActionLink"},
				{Name: "secondary", Type: "ActionLink"},
			},
			Tags: []string{"cta", "action"},
			Example: func() g.Node {
				return CTASection(CTAOptions{Title: "Talk to our team", Primary: ActionLink{Label: "Enquire now", Href: "/contact/enquire"}})
			},
		},
	)
}
