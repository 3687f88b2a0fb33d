package ui

import (
	"fmt"
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Arrangement is the spatial layout used by IconStack.
type Arrangement int

const (
	ArrangementCascade Arrangement = iota
	ArrangementGrid
	ArrangementCircle
	ArrangementOverlap
)

// String returns the arrangement's CSS name.
func (a Arrangement) String() string {
	switch a {
	case ArrangementGrid:
		return "grid"
	case ArrangementCircle:
		return "circle"
	case ArrangementOverlap:
		return "overlap"
	default:
		return "cascade"
	}
}

// StackOptions configures IconStack.
type StackOptions struct {
	Icons       []Icon
	Arrangement Arrangement
	Size        Size
	Variant     Variant
	Effect      Effect
}

// Placement is the computed position of one icon in an arrangement.
// AngleDeg and RadiusPx apply to circle, OffsetPx and ZIndex to overlap.
type Placement struct {
	Index    int
	AngleDeg float64
	RadiusPx int
	OffsetPx int
	ZIndex   int
}

// Placements computes the geometry for n icons. Icon i of n in a circle sits
// at i*360/n degrees; in an overlap it is shifted i*offset(size) to the right
// with z-index n-i, so the first icon is drawn on top.
func Placements(a Arrangement, n int, size Size) []Placement {
	if n <= 0 {
		return nil
	}
	size = size.Or(SizeMD)
	out := make([]Placement, n)
	for i := range out {
		p := Placement{Index: i}
		switch a {
		case ArrangementCircle:
			p.AngleDeg = float64(i) * 360 / float64(n)
			p.RadiusPx = circleRadius(size)
		case ArrangementOverlap:
			p.OffsetPx = i * overlapOffset(size)
			p.ZIndex = n - i
		}
		out[i] = p
	}
	return out
}

// IconStack lays out icons in one of four arrangements. An empty icon list
// renders nothing.
func IconStack(opts StackOptions) g.Node {
	n := len(opts.Icons)
	if n == 0 {
		return nil
	}
	spec := IconSpec{Variant: opts.Variant, Effect: opts.Effect, Size: opts.Size, WithBackground: true}
	places := Placements(opts.Arrangement, n, opts.Size)

	children := make([]g.Node, 0, n)
	for i, icon := range opts.Icons {
		p := places[i]
		switch opts.Arrangement {
		case ArrangementCircle:
			children = append(children, Span(
				Class("absolute left-1/2 top-1/2"),
				g.Attr("style", fmt.Sprintf("transform:translate(-50%%,-50%%) rotate(%sdeg) translate(%dpx) rotate(-%sdeg)",
					formatDeg(p.AngleDeg), p.RadiusPx, formatDeg(p.AngleDeg))),
				g.Attr("data-angle", formatDeg(p.AngleDeg)),
				EnhancedIcon(icon, spec),
			))
		case ArrangementOverlap:
			children = append(children, Span(
				Class("absolute left-0 top-0"),
				g.Attr("style", fmt.Sprintf("transform:translateX(%dpx);z-index:%d", p.OffsetPx, p.ZIndex)),
				EnhancedIcon(icon, spec),
			))
		default:
			children = append(children, EnhancedIcon(icon, spec))
		}
	}

	return Div(
		Class(stackClass(opts.Arrangement)),
		g.Attr("data-arrangement", opts.Arrangement.String()),
		g.If(opts.Arrangement == ArrangementCircle || opts.Arrangement == ArrangementOverlap,
			g.Attr("style", stackBoxStyle(opts.Arrangement, n, opts.Size.Or(SizeMD)))),
		g.Group(children),
	)
}

func stackClass(a Arrangement) string {
	switch a {
	case ArrangementGrid:
		return "ui-icon-stack grid grid-cols-2 gap-2"
	case ArrangementCircle, ArrangementOverlap:
		return "ui-icon-stack relative"
	default:
		return "ui-icon-stack flex flex-row items-center gap-2"
	}
}

// stackBoxStyle reserves room for absolutely positioned children.
func stackBoxStyle(a Arrangement, n int, size Size) string {
	box := iconBoxPx(size)
	if a == ArrangementCircle {
		d := 2*circleRadius(size) + box
		return fmt.Sprintf("width:%dpx;height:%dpx", d, d)
	}
	return fmt.Sprintf("width:%dpx;height:%dpx", box+(n-1)*overlapOffset(size), box)
}

func circleRadius(s Size) int {
	switch s {
	case SizeXS:
		return 24
	case SizeSM:
		return 32
	case SizeLG:
		return 64
	case SizeXL:
		return 80
	default:
		return 48
	}
}

func overlapOffset(s Size) int {
	switch s {
	case SizeXS:
		return 12
	case SizeSM:
		return 16
	case SizeLG:
		return 32
	case SizeXL:
		return 40
	default:
		return 24
	}
}

// iconBoxPx approximates the rendered footprint of an icon with background.
func iconBoxPx(s Size) int {
	switch s {
	case SizeXS:
		return 20
	case SizeSM:
		return 28
	case SizeLG:
		return 56
	case SizeXL:
		return 80
	default:
		return 40
	}
}

func formatDeg(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
