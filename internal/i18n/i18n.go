// Package i18n serves the UI strings of the site from per-language JSON
// files. Page copy lives in the content tables; only labels, headings and
// button text are translated here.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// Locales holds the locale files compiled into the binary.
//
//go:embed locales/*.json
var Locales embed.FS

// Bundle is a read-only set of translations with a fallback language.
type Bundle struct {
	dict     map[string]map[string]string
	fallback string
	// langs is parallel to the matcher's supported tags; langs[0] is the fallback.
	langs   []string
	matcher language.Matcher
}

// Default loads the embedded locales with English as the fallback.
func Default() (*Bundle, error) {
	return Load(Locales, "locales", "en", []string{"en"})
}

// Load reads <dir>/<lang>.json from fsys for every supported language. Only
// the fallback file is required; other missing files are skipped.
func Load(fsys fs.FS, dir string, fallback string, supported []string) (*Bundle, error) {
	fallback = normalize(fallback)
	b := &Bundle{dict: map[string]map[string]string{}, fallback: fallback}

	for _, l := range append([]string{fallback}, supported...) {
		l = normalize(l)
		if _, seen := b.dict[l]; seen {
			continue
		}
		raw, err := fs.ReadFile(fsys, path.Join(dir, l+".json"))
		if err != nil {
			if l == fallback {
				return nil, fmt.Errorf("i18n: load fallback %s: %w", l, err)
			}
			continue
		}
		var m map[string]string
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("i18n: decode %s: %w", l, err)
		}
		b.dict[l] = m
		b.langs = append(b.langs, l)
	}

	tags := make([]language.Tag, len(b.langs))
	for i, l := range b.langs {
		tag, err := language.Parse(l)
		if err != nil {
			return nil, fmt.Errorf("i18n: locale %q: %w", l, err)
		}
		tags[i] = tag
	}
	b.matcher = language.NewMatcher(tags)
	return b, nil
}

// Supported lists the loaded languages in sorted order.
func (b *Bundle) Supported() []string {
	out := append([]string(nil), b.langs...)
	sort.Strings(out)
	return out
}

// Fallback returns the configured fallback language.
func (b *Bundle) Fallback() string { return b.fallback }

// T returns the string for key in lang. Regional tags such as en-AU use
// their base language. Missing keys fall back to the fallback language and
// finally to the key itself.
func (b *Bundle) T(lang, key string) string {
	lang = normalize(lang)
	for _, l := range []string{lang, baseOf(lang), b.fallback} {
		if v, ok := b.dict[l][key]; ok {
			return v
		}
	}
	return key
}

// Resolve picks the loaded language that best matches an Accept-Language
// header, honouring q-values. No acceptable match yields the fallback.
func (b *Bundle) Resolve(acceptLang string) string {
	prefs, weights, err := language.ParseAcceptLanguage(acceptLang)
	if err != nil || len(prefs) == 0 {
		return b.fallback
	}
	wanted := prefs[:0]
	for i, tag := range prefs {
		if weights[i] > 0 {
			wanted = append(wanted, tag)
		}
	}
	_, idx, conf := b.matcher.Match(wanted...)
	if conf == language.No {
		return b.fallback
	}
	return b.langs[idx]
}

func normalize(lang string) string {
	return strings.ToLower(strings.TrimSpace(lang))
}

func baseOf(lang string) string {
	if i := strings.IndexAny(lang, "-_"); i > 0 {
		return lang[:i]
	}
	return lang
}
