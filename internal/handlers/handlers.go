// Package handlers adapts the page builders to HTTP.
package handlers

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	mw "summitcare.com.au/web/internal/middleware"
	"summitcare.com.au/web/internal/observability"
	"summitcare.com.au/web/internal/pages"
	"summitcare.com.au/web/internal/ui"
)

const pageCacheControl = "public, max-age=600"

// Handlers serves the site's pages.
type Handlers struct {
	site      *pages.Site
	publicDir string
}

// New returns handlers for site. Static files are served from publicDir/assets.
func New(site *pages.Site, publicDir string) *Handlers {
	return &Handlers{site: site, publicDir: publicDir}
}

// Mount registers every route on r.
func (h *Handlers) Mount(r chi.Router) {
	r.Get("/healthz", Healthz)
	r.Handle("/assets/effects.css", mw.StaticBody("text/css; charset=utf-8", effectsBody))
	r.Handle("/assets/*", mw.AssetsWithCache(filepath.Join(h.publicDir, "assets"), "/assets"))
	r.Get("/sitemap.xml", h.Sitemap)

	r.Get("/", h.Home)
	r.Get("/components", h.Components)
	r.Get("/sil/{slug}", h.Location)
	for _, kind := range pages.ContentKinds {
		r.Get("/"+kind, h.Section(kind))
		r.Get("/"+kind+"/{slug}", h.Content(kind))
	}
	r.Get("/{service}", h.Service)
	r.NotFound(h.NotFound)
}

// Healthz reports liveness.
func Healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, "ok")
}

func effectsBody() (string, string, bool) {
	css, ok := ui.EffectStylesheet()
	return css, ui.EffectStylesheetDigest(), ok
}

// Home renders the landing page.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, h.site.Home(mw.Lang(r)), nil)
}

// Service renders /sil, /sda, /sta and /mta.
func (h *Handlers) Service(w http.ResponseWriter, r *http.Request) {
	p, err := h.site.Service(mw.Lang(r), chi.URLParam(r, "service"))
	h.render(w, r, p, err)
}

// Location renders one SIL location page.
func (h *Handlers) Location(w http.ResponseWriter, r *http.Request) {
	p, err := h.site.Location(mw.Lang(r), chi.URLParam(r, "slug"))
	h.render(w, r, p, err)
}

// Section renders the index of a content kind such as /about.
func (h *Handlers) Section(kind string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := h.site.Section(r.Context(), mw.Lang(r), kind)
		h.render(w, r, p, err)
	}
}

// Content renders a CMS page of kind.
func (h *Handlers) Content(kind string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := h.site.Content(r.Context(), mw.Lang(r), kind, chi.URLParam(r, "slug"))
		h.render(w, r, p, err)
	}
}

// Components renders the component library, filtered by ?q=.
func (h *Handlers) Components(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, h.site.Components(mw.Lang(r), r.URL.Query().Get("q")), nil)
}

// Sitemap renders sitemap.xml.
func (h *Handlers) Sitemap(w http.ResponseWriter, r *http.Request) {
	paths, err := h.site.Paths(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	out, err := h.site.Sitemap(paths)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Header().Set("Cache-Control", pageCacheControl)
	_, _ = w.Write(out)
}

// NotFound renders the 404 page.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	h.write(w, r, http.StatusNotFound, h.site.NotFound(mw.Lang(r)))
}

func (h *Handlers) render(w http.ResponseWriter, r *http.Request, p pages.Page, err error) {
	switch {
	case err == nil:
		h.write(w, r, http.StatusOK, p)
	case pages.IsNotFound(err):
		h.NotFound(w, r)
	default:
		h.fail(w, r, err)
	}
}

func (h *Handlers) write(w http.ResponseWriter, r *http.Request, status int, p pages.Page) {
	var buf bytes.Buffer
	if err := h.site.Render(&buf, mw.Lang(r), p); err != nil {
		h.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if status == http.StatusOK {
		sum := sha256.Sum256(buf.Bytes())
		etag := `W/"` + hex.EncodeToString(sum[:16]) + `"`
		w.Header().Set("Cache-Control", pageCacheControl)
		w.Header().Set("ETag", etag)
		if mw.NotModified(r, etag) {
			w.WriteHeader(http.StatusNotModified)
			return
		}
	}
	w.WriteHeader(status)
	if r.Method != http.MethodHead {
		_, _ = buf.WriteTo(w)
	}
}

func (h *Handlers) fail(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, context.Canceled) {
		return
	}
	observability.FromContext(r.Context()).Error("render page", zap.Error(err))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
