package seo

import (
	"encoding/json"
)

// JSON marshals v to a compact JSON string. It returns an empty string on error.
// encoding/json escapes <, > and & so the result can sit inside a script tag.
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// Organization returns a minimal Organization schema.
func Organization(name, url, logoURL string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "Organization",
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	if logoURL != "" {
		m["logo"] = logoURL
	}
	return m
}

// WebSite returns a minimal WebSite schema with optional SearchAction.
func WebSite(name, url, searchActionURL string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	if searchActionURL != "" {
		m["potentialAction"] = map[string]any{
			"@type":       "SearchAction",
			"target":      searchActionURL + "{search_term_string}",
			"query-input": "required name=search_term_string",
		}
	}
	return m
}

// BreadcrumbItem maps name and absolute item URL.
type BreadcrumbItem struct {
	Name string
	Item string
}

// BreadcrumbList builds schema.org BreadcrumbList.
func BreadcrumbList(items []BreadcrumbItem) map[string]any {
	el := make([]map[string]any, 0, len(items))
	for i, it := range items {
		el = append(el, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     it.Name,
			"item":     it.Item,
		})
	}
	return map[string]any{
		"@context":        "https://schema.org",
		"@type":           "BreadcrumbList",
		"itemListElement": el,
	}
}

// FAQ is one question and answer pair.
type FAQ struct {
	Question string
	Answer   string
}

// FAQPage builds a schema.org FAQPage. Order is preserved.
func FAQPage(faqs []FAQ) map[string]any {
	entities := make([]map[string]any, 0, len(faqs))
	for _, f := range faqs {
		entities = append(entities, map[string]any{
			"@type": "Question",
			"name":  f.Question,
			"acceptedAnswer": map[string]any{
				"@type": "Answer",
				"text":  f.Answer,
			},
		})
	}
	return map[string]any{
		"@context":   "https://schema.org",
		"@type":      "FAQPage",
		"mainEntity": entities,
	}
}

// LocalBusinessInfo is the input to LocalBusiness.
type LocalBusinessInfo struct {
	Name        string
	Description string
	URL         string
	Telephone   string
	Locality    string
	Region      string
	Country     string
	// District is the wider area Locality sits in, such as "Western Sydney".
	District string
	// AreaServed lists places served in addition to Locality.
	AreaServed []string
}

// LocalBusiness builds a schema.org LocalBusiness with a PostalAddress.
func LocalBusiness(info LocalBusinessInfo) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "LocalBusiness",
		"name":     info.Name,
	}
	if info.Description != "" {
		m["description"] = info.Description
	}
	if info.URL != "" {
		m["url"] = info.URL
	}
	if info.Telephone != "" {
		m["telephone"] = info.Telephone
	}
	addr := map[string]any{"@type": "PostalAddress"}
	if info.Locality != "" {
		addr["addressLocality"] = info.Locality
	}
	if info.Region != "" {
		addr["addressRegion"] = info.Region
	}
	if info.Country != "" {
		addr["addressCountry"] = info.Country
	}
	m["address"] = addr

	areas := make([]map[string]any, 0, len(info.AreaServed)+1)
	if info.Locality != "" {
		p := place(info.Locality)
		if info.District != "" {
			p["containedInPlace"] = place(info.District)
		}
		areas = append(areas, p)
	} else if info.District != "" {
		areas = append(areas, place(info.District))
	}
	for _, a := range info.AreaServed {
		areas = append(areas, place(a))
	}
	if len(areas) > 0 {
		m["areaServed"] = areas
	}
	return m
}

func place(name string) map[string]any {
	return map[string]any{"@type": "Place", "name": name}
}
