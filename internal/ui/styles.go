package ui

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"sync"
	"sync/atomic"
)

// keyframes maps each animated effect to its @keyframes body and the
// animation shorthand used by the effect classes.
var keyframes = []struct {
	effect    Effect
	frames    string
	animation string
}{
	{EffectPulse, "0%,100%{opacity:1;transform:scale(1)}50%{opacity:.75;transform:scale(1.08)}", "2s ease-in-out infinite"},
	{EffectBounce, "0%,100%{transform:translateY(0)}50%{transform:translateY(-25%)}", "1s cubic-bezier(.28,.84,.42,1) infinite"},
	{EffectSpin, "from{transform:rotate(0deg)}to{transform:rotate(360deg)}", "1.5s linear infinite"},
	{EffectWiggle, "0%,100%{transform:rotate(0deg)}25%{transform:rotate(-10deg)}75%{transform:rotate(10deg)}", ".6s ease-in-out infinite"},
	{EffectGlow, "0%,100%{filter:drop-shadow(0 0 0 currentColor)}50%{filter:drop-shadow(0 0 6px currentColor)}", "2s ease-in-out infinite"},
}

type stylesheet struct {
	css    string
	digest string
}

var (
	effectStylesOnce sync.Once
	effectStyles     atomic.Pointer[stylesheet]
)

// InitEffectStyles builds the icon effect stylesheet. It is called once from
// each entry point; later calls are no-ops.
func InitEffectStyles() {
	effectStylesOnce.Do(func() {
		css := buildEffectCSS()
		sum := sha256.Sum256([]byte(css))
		effectStyles.Store(&stylesheet{css: css, digest: hex.EncodeToString(sum[:8])})
	})
}

// EffectStylesheet returns the stylesheet built by InitEffectStyles. ok is
// false until InitEffectStyles has run.
func EffectStylesheet() (css string, ok bool) {
	s := effectStyles.Load()
	if s == nil {
		return "", false
	}
	return s.css, true
}

// EffectStylesheetDigest is a short content hash used for cache busting and
// ETags. It is empty until InitEffectStyles has run.
func EffectStylesheetDigest() string {
	if s := effectStyles.Load(); s != nil {
		return s.digest
	}
	return ""
}

func buildEffectCSS() string {
	var sb strings.Builder
	for _, kf := range keyframes {
		name := "icon-" + kf.effect.String()
		sb.WriteString("@keyframes " + name + "{" + kf.frames + "}\n")
		sb.WriteString(".icon-fx-" + kf.effect.String() + "{animation:" + name + " " + kf.animation + "}\n")
		sb.WriteString(".icon-fx-hover-" + kf.effect.String() + ":hover,.group:hover .icon-fx-hover-" + kf.effect.String() +
			"{animation:" + name + " " + kf.animation + "}\n")
	}
	sb.WriteString("@media (prefers-reduced-motion:reduce){[class*=icon-fx-]{animation:none!important}}\n")
	return sb.String()
}
