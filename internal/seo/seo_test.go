package seo

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, s string) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(s), &m))
	return m
}

func TestFAQPageMapsQuestionAndAnswer(t *testing.T) {
	m := decode(t, JSON(FAQPage([]FAQ{{Question: "Q1", Answer: "A1"}})))
	require.Equal(t, "https://schema.org", m["@context"])
	require.Equal(t, "FAQPage", m["@type"])

	entities := m["mainEntity"].([]any)
	require.Len(t, entities, 1)
	q := entities[0].(map[string]any)
	require.Equal(t, "Question", q["@type"])
	require.Equal(t, "Q1", q["name"])
	ans := q["acceptedAnswer"].(map[string]any)
	require.Equal(t, "Answer", ans["@type"])
	require.Equal(t, "A1", ans["text"])
}

func TestFAQPageKeepsOrder(t *testing.T) {
	m := decode(t, JSON(FAQPage([]FAQ{{"b", "1"}, {"a", "2"}, {"c", "3"}})))
	var names []string
	for _, e := range m["mainEntity"].([]any) {
		names = append(names, e.(map[string]any)["name"].(string))
	}
	require.Equal(t, []string{"b", "a", "c"}, names)
}

func TestFAQPageEmptyHasEmptyList(t *testing.T) {
	require.Contains(t, JSON(FAQPage(nil)), `"mainEntity":[]`)
}

func TestJSONEscapesScriptBreakout(t *testing.T) {
	out := JSON(FAQPage([]FAQ{{Question: "</script><b>", Answer: "a & b"}}))
	require.NotContains(t, out, "</script>")
	require.NotContains(t, out, "<b>")
	require.NotContains(t, out, " & ")
	require.True(t, strings.Contains(out, `\u003c/script\u003e`))
}

func TestLocalBusiness(t *testing.T) {
	m := decode(t, JSON(LocalBusiness(LocalBusinessInfo{
		Name:       "Summit Care Penrith",
		URL:        "https://summitcare.com.au/sil/penrith",
		Telephone:  "1300 000 000",
		Locality:   "Penrith",
		Region:     "NSW",
		Country:    "AU",
		AreaServed: []string{"Kingswood", "Emu Plains"},
	})))
	require.Equal(t, "LocalBusiness", m["@type"])
	require.Equal(t, "1300 000 000", m["telephone"])
	require.NotContains(t, m, "description")

	addr := m["address"].(map[string]any)
	require.Equal(t, "PostalAddress", addr["@type"])
	require.Equal(t, "Penrith", addr["addressLocality"])
	require.Equal(t, "NSW", addr["addressRegion"])
	require.Equal(t, "AU", addr["addressCountry"])

	var areas []string
	for _, a := range m["areaServed"].([]any) {
		areas = append(areas, a.(map[string]any)["name"].(string))
	}
	require.Equal(t, []string{"Penrith", "Kingswood", "Emu Plains"}, areas)
	require.NotContains(t, m["areaServed"].([]any)[0], "containedInPlace")
}

func TestLocalBusinessDistrict(t *testing.T) {
	m := decode(t, JSON(LocalBusiness(LocalBusinessInfo{
		Name:     "Summit Care Penrith",
		Locality: "Penrith",
		District: "Western Sydney",
	})))
	first := m["areaServed"].([]any)[0].(map[string]any)
	require.Equal(t, "Penrith", first["name"])
	require.Equal(t, map[string]any{"@type": "Place", "name": "Western Sydney"}, first["containedInPlace"])

	m = decode(t, JSON(LocalBusiness(LocalBusinessInfo{Name: "Summit Care", District: "Blue Mountains"})))
	require.Equal(t, "Blue Mountains", m["areaServed"].([]any)[0].(map[string]any)["name"])
}

func TestBreadcrumbListPositions(t *testing.T) {
	m := decode(t, JSON(BreadcrumbList([]BreadcrumbItem{
		{Name: "Home", Item: "https://x/"},
		{Name: "SIL", Item: "https://x/sil"},
	})))
	items := m["itemListElement"].([]any)
	require.Len(t, items, 2)
	require.EqualValues(t, 1, items[0].(map[string]any)["position"])
	require.EqualValues(t, 2, items[1].(map[string]any)["position"])
	require.Equal(t, "SIL", items[1].(map[string]any)["name"])
}

func TestMetaWithDefaults(t *testing.T) {
	m := Meta{Title: "T", Description: "D", OG: OpenGraph{Image: "/og.png"}}.WithDefaults()
	require.Equal(t, "T", m.OG.Title)
	require.Equal(t, "D", m.OG.Description)
	require.Equal(t, "website", m.OG.Type)
	require.Equal(t, "summary_large_image", m.Twitter.Card)
	require.Equal(t, "/og.png", m.Twitter.Image)

	kept := Meta{Title: "T", OG: OpenGraph{Title: "Custom", Type: "article"}}.WithDefaults()
	require.Equal(t, "Custom", kept.OG.Title)
	require.Equal(t, "article", kept.OG.Type)
}
