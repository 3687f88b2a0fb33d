package middleware

import (
	"net/http"
	"strings"

	"summitcare.com.au/web/internal/i18n"
)

const langCookie = "hl"

// Locale resolves the UI language from the `hl` query parameter, the `hl`
// cookie or Accept-Language, in that order. Unsupported values fall back to
// the bundle default.
func Locale(bundle *i18n.Bundle) func(http.Handler) http.Handler {
	supported := map[string]bool{}
	for _, l := range bundle.Supported() {
		supported[l] = true
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := ""
			if q := strings.ToLower(strings.TrimSpace(r.URL.Query().Get(langCookie))); supported[q] {
				lang = q
				http.SetCookie(w, &http.Cookie{Name: langCookie, Value: q, Path: "/", SameSite: http.SameSiteLaxMode})
			} else if c, err := r.Cookie(langCookie); err == nil && supported[strings.ToLower(c.Value)] {
				lang = strings.ToLower(c.Value)
			} else {
				lang = bundle.Resolve(r.Header.Get("Accept-Language"))
			}
			w.Header().Add("Vary", "Accept-Language")
			w.Header().Set("Content-Language", lang)
			next.ServeHTTP(w, r.WithContext(WithLang(r.Context(), lang)))
		})
	}
}

// Lang returns the language resolved by Locale, or "en".
func Lang(r *http.Request) string {
	if l, ok := LangFromContext(r.Context()); ok {
		return l
	}
	return "en"
}
