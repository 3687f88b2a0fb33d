package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// GridItem is one cell of a FeatureIconGrid. Variant and Effect override the
// grid defaults when set.
type GridItem struct {
	Icon        Icon
	Title       string
	Description string
	Variant     Variant
	Effect      Effect
}

// GridOptions configures FeatureIconGrid. Columns is clamped to 2..6; zero
// means 3.
type GridOptions struct {
	Items         []GridItem
	Columns       int
	Variant       Variant
	Effect        Effect
	Size          Size
	EffectOnHover bool
}

// ResolveGridItems applies grid defaults to items that leave Variant or
// Effect unset.
func ResolveGridItems(opts GridOptions) []GridItem {
	out := make([]GridItem, len(opts.Items))
	for i, it := range opts.Items {
		it.Variant = it.Variant.Or(opts.Variant)
		it.Effect = it.Effect.Or(opts.Effect)
		out[i] = it
	}
	return out
}

// FeatureIconGrid renders items as a responsive grid of centred icon cards.
func FeatureIconGrid(opts GridOptions) g.Node {
	items := ResolveGridItems(opts)
	if len(items) == 0 {
		return nil
	}
	cells := make([]g.Node, 0, len(items))
	for _, it := range items {
		cellClass := "ui-grid-item flex flex-col items-center text-center gap-3 rounded-xl p-6"
		if opts.EffectOnHover {
			cellClass += " group"
		}
		cells = append(cells, Div(
			Class(cellClass),
			EnhancedIcon(it.Icon, IconSpec{
				Variant:        it.Variant,
				Effect:         it.Effect,
				Size:           opts.Size.Or(SizeLG),
				WithBackground: true,
				EffectOnHover:  opts.EffectOnHover,
			}),
			g.If(it.Title != "", H3(Class("font-semibold text-[var(--heading)]"), g.Text(it.Title))),
			g.If(it.Description != "", P(Class("text-sm text-[var(--muted-foreground)]"), g.Text(it.Description))),
		))
	}
	return Div(Class("ui-icon-grid grid gap-6 "+GridColumnsClass(opts.Columns)), g.Group(cells))
}

// GridColumnsClass maps a column count to breakpoint-aware grid classes.
func GridColumnsClass(columns int) string {
	switch clampColumns(columns) {
	case 2:
		return "grid-cols-1 sm:grid-cols-2"
	case 4:
		return "grid-cols-1 sm:grid-cols-2 lg:grid-cols-4"
	case 5:
		return "grid-cols-1 sm:grid-cols-2 md:grid-cols-3 lg:grid-cols-5"
	case 6:
		return "grid-cols-2 sm:grid-cols-3 lg:grid-cols-6"
	default:
		return "grid-cols-1 sm:grid-cols-2 lg:grid-cols-3"
	}
}

func clampColumns(n int) int {
	switch {
	case n == 0:
		return 3
	case n < 2:
		return 2
	case n > 6:
		return 6
	default:
		return n
	}
}
