// Package ui holds the presentational components shared by every page.
// Components are plain functions returning gomponents nodes; configuration is
// passed as typed structs whose zero values mean "use the default".
package ui

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Icon names a glyph in the icon library, e.g. "lucide:home".
type Icon string

// Variant selects the colour treatment of an icon.
type Variant int

const (
	VariantInherit Variant = iota
	VariantDefault
	VariantPrimary
	VariantSecondary
	VariantAccent
	VariantMuted
)

// Effect selects an animation applied to an icon.
type Effect int

const (
	EffectInherit Effect = iota
	EffectNone
	EffectPulse
	EffectBounce
	EffectSpin
	EffectWiggle
	EffectGlow
)

// Size selects the rendered icon size.
type Size int

const (
	SizeInherit Size = iota
	SizeXS
	SizeSM
	SizeMD
	SizeLG
	SizeXL
)

// IconSpec configures EnhancedIcon. The zero value renders a medium icon in
// the default colour with no background and no animation.
type IconSpec struct {
	Variant        Variant
	Effect         Effect
	Size           Size
	WithBackground bool
	EffectOnHover  bool
}

// Or returns v, or fallback when v is VariantInherit.
func (v Variant) Or(fallback Variant) Variant {
	if v == VariantInherit {
		return fallback
	}
	return v
}

// Or returns e, or fallback when e is EffectInherit.
func (e Effect) Or(fallback Effect) Effect {
	if e == EffectInherit {
		return fallback
	}
	return e
}

// Or returns s, or fallback when s is SizeInherit.
func (s Size) Or(fallback Size) Size {
	if s == SizeInherit {
		return fallback
	}
	return s
}

// resolved fills unspecified fields with their defaults.
func (s IconSpec) resolved() IconSpec {
	s.Variant = s.Variant.Or(VariantDefault)
	s.Effect = s.Effect.Or(EffectNone)
	s.Size = s.Size.Or(SizeMD)
	return s
}

// EnhancedIcon renders a single glyph with consistent sizing, colour, optional
// circular background and optional animation.
func EnhancedIcon(icon Icon, spec IconSpec) g.Node {
	spec = spec.resolved()

	glyph := []string{"iconify inline-block", sizeClass(spec.Size), variantClass(spec.Variant)}
	if fx := effectClass(spec.Effect, spec.EffectOnHover); fx != "" {
		glyph = append(glyph, fx)
	}

	wrapper := "ui-icon inline-flex"
	if spec.WithBackground {
		wrapper = strings.Join([]string{
			"ui-icon inline-flex items-center justify-center shrink-0 rounded-full",
			paddingClass(spec.Size),
			backgroundClass(spec.Variant),
		}, " ")
	}

	return Span(
		Class(wrapper),
		g.Attr("data-variant", spec.Variant.String()),
		g.Attr("data-effect", spec.Effect.String()),
		g.Attr("data-size", spec.Size.String()),
		Span(
			Class(strings.Join(glyph, " ")),
			g.Attr("data-icon", string(icon)),
			g.Attr("aria-hidden", "true"),
		),
	)
}

func sizeClass(s Size) string {
	switch s {
	case SizeXS:
		return "h-3 w-3"
	case SizeSM:
		return "h-4 w-4"
	case SizeLG:
		return "h-8 w-8"
	case SizeXL:
		return "h-12 w-12"
	default:
		return "h-6 w-6"
	}
}

func paddingClass(s Size) string {
	switch s {
	case SizeXS:
		return "p-1"
	case SizeSM:
		return "p-1.5"
	case SizeLG:
		return "p-3"
	case SizeXL:
		return "p-4"
	default:
		return "p-2"
	}
}

func variantClass(v Variant) string {
	switch v {
	case VariantPrimary:
		return "text-[var(--primary)]"
	case VariantSecondary:
		return "text-[var(--secondary)]"
	case VariantAccent:
		return "text-[var(--accent)]"
	case VariantMuted:
		return "text-[var(--muted-foreground)]"
	default:
		return "text-[var(--heading)]"
	}
}

func backgroundClass(v Variant) string {
	switch v {
	case VariantPrimary:
		return "bg-[var(--primary)]/10"
	case VariantSecondary:
		return "bg-[var(--secondary)]/10"
	case VariantAccent:
		return "bg-[var(--accent)]/10"
	case VariantMuted:
		return "bg-[var(--muted)]"
	default:
		return "bg-[var(--heading)]/5"
	}
}

// effectClass returns the animation class for e. Hover classes only animate
// while the pointer is over the icon or its enclosing .group.
func effectClass(e Effect, onHover bool) string {
	name := e.String()
	if e == EffectNone || e == EffectInherit || name == "" {
		return ""
	}
	if onHover {
		return "icon-fx-hover-" + name
	}
	return "icon-fx-" + name
}

var variantNames = map[Variant]string{
	VariantInherit:   "",
	VariantDefault:   "default",
	VariantPrimary:   "primary",
	VariantSecondary: "secondary",
	VariantAccent:    "accent",
	VariantMuted:     "muted",
}

var effectNames = map[Effect]string{
	EffectInherit: "",
	EffectNone:    "none",
	EffectPulse:   "pulse",
	EffectBounce:  "bounce",
	EffectSpin:    "spin",
	EffectWiggle:  "wiggle",
	EffectGlow:    "glow",
}

var sizeNames = map[Size]string{
	SizeInherit: "",
	SizeXS:      "xs",
	SizeSM:      "sm",
	SizeMD:      "md",
	SizeLG:      "lg",
	SizeXL:      "xl",
}

// String returns the variant's CSS name. VariantInherit is "".
func (v Variant) String() string { return variantNames[v] }

// String returns the effect's CSS name. EffectInherit is "".
func (e Effect) String() string { return effectNames[e] }

// String returns the size's CSS name. SizeInherit is "".
func (s Size) String() string { return sizeNames[s] }

// MarshalText encodes v as its String form.
func (v Variant) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// MarshalText encodes e as its String form.
func (e Effect) MarshalText() ([]byte, error) { return []byte(e.String()), nil }

// MarshalText encodes s as its String form.
func (s Size) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText parses a variant name, ignoring case and surrounding space.
func (v *Variant) UnmarshalText(b []byte) error {
	parsed, err := parseName(variantNames, string(b), "variant")
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// UnmarshalText parses an effect name, ignoring case and surrounding space.
func (e *Effect) UnmarshalText(b []byte) error {
	parsed, err := parseName(effectNames, string(b), "effect")
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// UnmarshalText parses a size name, ignoring case and surrounding space.
func (s *Size) UnmarshalText(b []byte) error {
	parsed, err := parseName(sizeNames, string(b), "size")
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func parseName[T comparable](names map[T]string, raw, kind string) (T, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	for k, name := range names {
		if name == raw {
			return k, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("ui: unknown %s %q", kind, raw)
}
