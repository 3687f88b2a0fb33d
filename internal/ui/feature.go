package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Feature is an (icon, title, description) triple. Content, when set, is
// rendered instead of Description.
type Feature struct {
	Icon        Icon
	Title       string
	Description string
	Content     g.Node
	Variant     Variant
	HoverEffect bool
	IconEffect  Effect
	IconSize    Size
}

// Direction lays out a FeatureGroup.
type Direction int

const (
	DirectionColumn Direction = iota
	DirectionRow
)

// FeatureGroup renders many features with shared defaults.
type FeatureGroup struct {
	Items      []Feature
	Variant    Variant
	Direction  Direction
	Dividers   bool
	Background bool
}

// IconFeature renders a single feature row: icon on the left, text on the right.
func IconFeature(f Feature) g.Node {
	effect := f.IconEffect
	if f.HoverEffect {
		effect = effect.Or(EffectPulse)
	}
	rowClass := "ui-feature flex items-start gap-4"
	if f.HoverEffect {
		rowClass += " group"
	}

	var text g.Node
	switch {
	case f.Content != nil:
		text = Div(Class("mt-1 text-[var(--muted-foreground)]"), f.Content)
	case f.Description != "":
		text = P(Class("mt-1 text-[var(--muted-foreground)]"), g.Text(f.Description))
	}

	return Div(
		Class(rowClass),
		EnhancedIcon(f.Icon, IconSpec{
			Variant:        f.Variant,
			Effect:         effect,
			Size:           f.IconSize,
			WithBackground: true,
			EffectOnHover:  f.HoverEffect,
		}),
		g.If(f.Title != "" || text != nil, Div(
			Class("flex-1"),
			g.If(f.Title != "", H3(Class("font-semibold text-[var(--heading)]"), g.Text(f.Title))),
			text,
		)),
	)
}

// ResolveFeatures applies the group defaults to each item. An item's own
// Variant takes precedence over the group's; order is preserved.
func ResolveFeatures(group FeatureGroup) []Feature {
	out := make([]Feature, len(group.Items))
	for i, item := range group.Items {
		item.Variant = item.Variant.Or(group.Variant)
		out[i] = item
	}
	return out
}

// IconFeatureGroup renders the group's items in insertion order.
func IconFeatureGroup(group FeatureGroup) g.Node {
	items := ResolveFeatures(group)
	if len(items) == 0 {
		return nil
	}

	cls := "ui-feature-group flex flex-col gap-6"
	if group.Direction == DirectionRow {
		cls = "ui-feature-group flex flex-col gap-6 md:flex-row"
	}
	if group.Dividers {
		if group.Direction == DirectionRow {
			cls += " md:divide-x md:divide-y-0 divide-y divide-[var(--border)]"
		} else {
			cls += " divide-y divide-[var(--border)]"
		}
	}
	if group.Background {
		cls += " rounded-xl bg-[var(--card)] p-6"
	}

	nodes := make([]g.Node, 0, len(items))
	for _, f := range items {
		nodes = append(nodes, Div(Class("flex-1 py-2 first:pt-0 last:pb-0"), IconFeature(f)))
	}
	return Div(Class(cls), g.Group(nodes))
}
