package cms

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"go.uber.org/zap"
)

// ContentPage represents a localized static page sourced from the CMS or local markdown.
type ContentPage struct {
	Kind          string
	Slug          string
	Lang          string
	Title         string
	Summary       string
	Body          string
	Format        string // "markdown" (default) or "html"
	Icon          string
	Order         int
	EffectiveDate time.Time
	UpdatedAt     time.Time
	Banner        *ContentBanner
	SEO           ContentSEO

	html string
}

// HTML returns the sanitised rendered body.
func (p ContentPage) HTML() string { return p.html }

// ContentSEO holds optional metadata overrides for static pages.
type ContentSEO struct {
	Title       string
	Description string
	OGImage     string
	Robots      string
}

// ContentBanner models an optional notice displayed above the body.
type ContentBanner struct {
	Variant  string
	Title    string
	Message  string
	LinkText string
	LinkURL  string
}

type contentFrontMatter struct {
	Title         string                    `yaml:"title"`
	Summary       string                    `yaml:"summary"`
	Lang          string                    `yaml:"lang"`
	Format        string                    `yaml:"format"`
	Icon          string                    `yaml:"icon"`
	Order         int                       `yaml:"order"`
	EffectiveDate string                    `yaml:"effective_date"`
	UpdatedAt     string                    `yaml:"updated_at"`
	SEO           contentFrontMatterSEO     `yaml:"seo"`
	Banner        *contentFrontMatterBanner `yaml:"banner"`
}

type contentFrontMatterSEO struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	OGImage     string `yaml:"og_image"`
	Robots      string `yaml:"robots"`
}

type contentFrontMatterBanner struct {
	Variant  string `yaml:"variant"`
	Title    string `yaml:"title"`
	Message  string `yaml:"message"`
	LinkText string `yaml:"link_text"`
	LinkURL  string `yaml:"link_url"`
}

const defaultContentFormat = "markdown"

// GetContentPage fetches a localized static page, consulting the remote CMS when configured,
// otherwise falling back to local markdown.
func (c *Client) GetContentPage(ctx context.Context, kind, slug, lang string) (ContentPage, error) {
	kind = sanitizeSlug(kind)
	slug = sanitizeSlug(slug)
	if kind == "" || slug == "" {
		return ContentPage{}, ErrNotFound
	}
	lang = normalizeLang(lang)

	cacheKey := strings.Join([]string{kind, lang, slug}, "|")
	if page, ok := c.cached(cacheKey); ok {
		return cloneContentPage(page), nil
	}

	page, err := c.fetchContentPage(ctx, kind, slug, lang)
	if err != nil {
		return ContentPage{}, err
	}
	c.store(cacheKey, cloneContentPage(page))
	return page, nil
}

// ListContentPages returns the local pages of kind, ordered by their order
// field then title. A missing directory yields an empty list.
func (c *Client) ListContentPages(ctx context.Context, kind, lang string) ([]ContentPage, error) {
	kind = sanitizeSlug(kind)
	if kind == "" {
		return nil, nil
	}
	lang = normalizeLang(lang)

	seen := map[string]bool{}
	var out []ContentPage
	for _, candidate := range langPriority(lang) {
		dir := filepath.Join(c.ContentDir(), kind, candidate)
		entries, err := os.ReadDir(dir)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("cms: list %s: %w", dir, err)
		}
		for _, e := range entries {
			if e.IsDir() || filepath.Ext(e.Name()) != ".md" {
				continue
			}
			slug := strings.TrimSuffix(e.Name(), ".md")
			if seen[slug] || sanitizeSlug(slug) != slug {
				continue
			}
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			page, err := readContentMarkdown(c.ContentDir(), kind, slug, candidate)
			if err != nil {
				return nil, err
			}
			seen[slug] = true
			out = append(out, page)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].Title < out[j].Title
	})
	return out, nil
}

func (c *Client) fetchContentPage(ctx context.Context, kind, slug, lang string) (ContentPage, error) {
	if c.baseURL != "" {
		page, err := c.fetchContentPageRemote(ctx, kind, slug, lang)
		if err == nil {
			return page, nil
		}
		if !errors.Is(err, ErrNotFound) {
			c.logger.Warn("cms remote fetch failed, using local content",
				zap.String("kind", kind),
				zap.String("slug", slug),
				zap.Error(err),
			)
		}
	}
	return fallbackContentPage(c.ContentDir(), kind, slug, lang)
}

func (c *Client) fetchContentPageRemote(ctx context.Context, kind, slug, lang string) (ContentPage, error) {
	endpoint, err := url.JoinPath(c.baseURL, "content", kind, slug)
	if err != nil {
		return ContentPage{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return ContentPage{}, err
	}
	q := req.URL.Query()
	if lang != "" {
		q.Set("lang", lang)
	}
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Accept", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return ContentPage{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return ContentPage{}, ErrNotFound
	}
	if resp.StatusCode >= 400 {
		return ContentPage{}, fmt.Errorf("cms: content remote status %d", resp.StatusCode)
	}

	var payload struct {
		Kind          string    `json:"kind"`
		Slug          string    `json:"slug"`
		Lang          string    `json:"lang"`
		Title         string    `json:"title"`
		Summary       string    `json:"summary"`
		Body          string    `json:"body"`
		Format        string    `json:"format"`
		Icon          string    `json:"icon"`
		Order         int       `json:"order"`
		EffectiveDate time.Time `json:"effective_date"`
		UpdatedAt     time.Time `json:"updated_at"`
		SEO           struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			OGImage     string `json:"og_image"`
			Robots      string `json:"robots"`
		} `json:"seo"`
		Banner struct {
			Variant  string `json:"variant"`
			Title    string `json:"title"`
			Message  string `json:"message"`
			LinkText string `json:"link_text"`
			LinkURL  string `json:"link_url"`
		} `json:"banner"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return ContentPage{}, fmt.Errorf("cms: decode remote %s/%s: %w", kind, slug, err)
	}
	if strings.TrimSpace(payload.Body) == "" {
		return ContentPage{}, fmt.Errorf("cms: empty body for %s/%s", kind, slug)
	}
	page := ContentPage{
		Kind:          firstNonEmpty(payload.Kind, kind),
		Slug:          firstNonEmpty(payload.Slug, slug),
		Lang:          firstNonEmpty(payload.Lang, lang),
		Title:         firstNonEmpty(payload.Title, prettifySlug(slug)),
		Summary:       payload.Summary,
		Body:          payload.Body,
		Format:        firstNonEmpty(payload.Format, defaultContentFormat),
		Icon:          payload.Icon,
		Order:         payload.Order,
		EffectiveDate: payload.EffectiveDate,
		UpdatedAt:     payload.UpdatedAt,
		SEO: ContentSEO{
			Title:       payload.SEO.Title,
			Description: payload.SEO.Description,
			OGImage:     payload.SEO.OGImage,
			Robots:      payload.SEO.Robots,
		},
	}
	if payload.Banner.Title != "" || payload.Banner.Message != "" {
		page.Banner = &ContentBanner{
			Variant:  payload.Banner.Variant,
			Title:    payload.Banner.Title,
			Message:  payload.Banner.Message,
			LinkText: payload.Banner.LinkText,
			LinkURL:  payload.Banner.LinkURL,
		}
	}
	if page.html, err = renderBody(page.Body, page.Format); err != nil {
		return ContentPage{}, err
	}
	return page, nil
}

func fallbackContentPage(contentDir, kind, slug, lang string) (ContentPage, error) {
	for _, candidate := range langPriority(lang) {
		page, err := readContentMarkdown(contentDir, kind, slug, candidate)
		if err == nil {
			return page, nil
		}
		if errors.Is(err, ErrNotFound) {
			continue
		}
		// parse errors stop the search
		return ContentPage{}, err
	}
	return ContentPage{}, fmt.Errorf("%w: %s/%s", ErrNotFound, kind, slug)
}

func readContentMarkdown(contentDir, kind, slug, lang string) (ContentPage, error) {
	if slug == "" {
		return ContentPage{}, ErrNotFound
	}
	file := filepath.Join(contentDir, kind, lang, slug+".md")

	data, err := os.ReadFile(file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ContentPage{}, ErrNotFound
		}
		return ContentPage{}, err
	}
	var front contentFrontMatter
	body, err := frontmatter.Parse(bytes.NewReader(data), &front)
	if err != nil {
		return ContentPage{}, fmt.Errorf("cms: parse front matter %s: %w", file, err)
	}
	page := ContentPage{
		Kind:    kind,
		Slug:    slug,
		Lang:    firstNonEmpty(strings.TrimSpace(front.Lang), lang),
		Title:   strings.TrimSpace(front.Title),
		Summary: strings.TrimSpace(front.Summary),
		Body:    string(body),
		Format:  firstNonEmpty(strings.TrimSpace(front.Format), defaultContentFormat),
		Icon:    strings.TrimSpace(front.Icon),
		Order:   front.Order,
		SEO: ContentSEO{
			Title:       strings.TrimSpace(front.SEO.Title),
			Description: strings.TrimSpace(front.SEO.Description),
			OGImage:     strings.TrimSpace(front.SEO.OGImage),
			Robots:      strings.TrimSpace(front.SEO.Robots),
		},
	}
	if front.Banner != nil {
		page.Banner = &ContentBanner{
			Variant:  strings.TrimSpace(front.Banner.Variant),
			Title:    strings.TrimSpace(front.Banner.Title),
			Message:  strings.TrimSpace(front.Banner.Message),
			LinkText: strings.TrimSpace(front.Banner.LinkText),
			LinkURL:  strings.TrimSpace(front.Banner.LinkURL),
		}
	}
	page.EffectiveDate = parseContentDate(front.EffectiveDate)
	page.UpdatedAt = parseContentDate(front.UpdatedAt)
	if page.UpdatedAt.IsZero() {
		if info, statErr := os.Stat(file); statErr == nil {
			page.UpdatedAt = info.ModTime()
		}
	}
	if page.Title == "" {
		page.Title = prettifySlug(slug)
	}
	if page.html, err = renderBody(page.Body, page.Format); err != nil {
		return ContentPage{}, err
	}
	return page, nil
}

func langPriority(lang string) []string {
	if lang == defaultLang {
		return []string{lang}
	}
	return []string{lang, defaultLang}
}

func normalizeLang(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" {
		return defaultLang
	}
	return lang
}

func parseContentDate(v string) time.Time {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}
	}
	layouts := []string{
		time.RFC3339,
		"2006-01-02",
		"2006/01/02",
		"2006-1-2",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t
		}
	}
	return time.Time{}
}

func prettifySlug(slug string) string {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return slug
	}
	parts := strings.Split(slug, "-")
	for i, part := range parts {
		if part == "" {
			continue
		}
		runes := []rune(part)
		runes[0] = asciiUpper(runes[0])
		parts[i] = string(runes)
	}
	return strings.Join(parts, " ")
}

func sanitizeSlug(slug string) string {
	slug = strings.TrimSpace(strings.ToLower(slug))
	slug = strings.Trim(slug, "/")
	if slug == "" {
		return ""
	}
	if strings.Contains(slug, "..") || strings.ContainsAny(slug, `/\`) {
		return ""
	}
	return slug
}

func cloneContentPage(src ContentPage) ContentPage {
	cp := src
	if src.Banner != nil {
		b := *src.Banner
		cp.Banner = &b
	}
	return cp
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func asciiUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}
