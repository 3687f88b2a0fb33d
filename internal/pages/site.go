// Package pages assembles complete pages from the content tables and the
// shared ui components, and renders them into HTML documents.
package pages

import (
	"errors"
	"strings"

	g "maragu.dev/gomponents"

	"summitcare.com.au/web/internal/cms"
	"summitcare.com.au/web/internal/content"
	"summitcare.com.au/web/internal/format"
	"summitcare.com.au/web/internal/i18n"
	"summitcare.com.au/web/internal/locations"
	"summitcare.com.au/web/internal/nav"
	"summitcare.com.au/web/internal/seo"
	"summitcare.com.au/web/internal/ui"
)

// ContentKinds are the CMS page groups that get a section index and a route.
var ContentKinds = []string{"about", "contact", "policies"}

// Brand is the organisation shown in the header, footer and structured data.
type Brand struct {
	Name    string
	Phone   string
	Email   string
	LogoURL string
	Region  string
	Country string
}

// Analytics holds client instrumentation configuration surfaced to the layout.
type Analytics struct {
	GA4MeasurementID string // e.g. G-XXXXXXXXXX
	GTMContainerID   string // e.g. GTM-XXXXXXX
	Debug            bool
}

// Site carries everything a page builder reads. It is safe for concurrent
// use once constructed.
type Site struct {
	Brand      Brand
	BaseURL    string
	Locations  *locations.Table
	CMS        *cms.Client
	Bundle     *i18n.Bundle
	Analytics  Analytics

	// Catalog backs the component library page. Nil means ui.Catalog().
	Catalog *ui.Registry
}

// Page is a fully assembled page ready for Render.
type Page struct {
	Path   string
	Title  string
	Meta   seo.Meta
	JSONLD []string
	Crumbs nav.Crumbs
	Body   g.Node
}

// IsNotFound reports whether err means the requested page does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, locations.ErrNotFound) ||
		errors.Is(err, cms.ErrNotFound) ||
		errors.Is(err, content.ErrUnknownService)
}

func (s *Site) t(lang, key string) string {
	if s.Bundle == nil {
		return key
	}
	return s.Bundle.T(lang, key)
}

func (s *Site) registry() *ui.Registry {
	if s.Catalog != nil {
		return s.Catalog
	}
	return ui.Catalog()
}

// absURL joins the site base URL and an absolute path.
func (s *Site) absURL(path string) string {
	return strings.TrimRight(s.BaseURL, "/") + path
}

func (s *Site) crumbLabel(lang string, c nav.Crumb) string {
	if c.LabelKey != "" {
		return s.t(lang, c.LabelKey)
	}
	return c.Label
}

// breadcrumbJSONLD converts a crumb trail into a BreadcrumbList payload.
func (s *Site) breadcrumbJSONLD(lang string, crumbs nav.Crumbs) string {
	items := make([]seo.BreadcrumbItem, 0, len(crumbs))
	for _, c := range crumbs {
		items = append(items, seo.BreadcrumbItem{Name: s.crumbLabel(lang, c), Item: s.absURL(c.Href)})
	}
	return seo.JSON(seo.BreadcrumbList(items))
}

func (s *Site) enquireLink() ui.ActionLink {
	return ui.ActionLink{Label: "Enquire now", Href: "/contact/enquire", Icon: "lucide:message-circle"}
}

func (s *Site) callLink() ui.ActionLink {
	return ui.ActionLink{Label: "Call " + s.Brand.Phone, Href: "tel:" + format.Phone(s.Brand.Phone), Icon: "lucide:phone"}
}
