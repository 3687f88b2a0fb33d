package nav

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func activeHrefs(items []RenderedItem) []string {
	var out []string
	for _, it := range items {
		if it.Active {
			out = append(out, it.Href)
		}
	}
	return out
}

func TestBuildMarksActive(t *testing.T) {
	cases := map[string][]string{
		"":             {"/"},
		"/":            {"/"},
		"/sil":         {"/sil"},
		"/sil/penrith": {"/sil"},
		"/silverwater": nil,
		"/about/team":  {"/about"},
		"/components":  nil,
	}
	for path, want := range cases {
		require.Equal(t, want, activeHrefs(Build(path)), path)
	}
}

func TestBuildKeepsOrder(t *testing.T) {
	items := Build("/")
	require.Len(t, items, len(Main))
	for i, it := range items {
		require.Equal(t, Main[i].Path, it.Href)
		require.Equal(t, Main[i].LabelKey, it.LabelKey)
	}
}

func TestBreadcrumbsHome(t *testing.T) {
	c := Breadcrumbs("/")
	require.Equal(t, Crumbs{{Href: "/", LabelKey: "nav.home", Active: true}}, c)
}

func TestBreadcrumbsLocation(t *testing.T) {
	c := Breadcrumbs("/sil/north-parramatta")
	require.Len(t, c, 3)
	require.Equal(t, "nav.home", c[0].LabelKey)
	require.False(t, c[0].Active)
	require.Equal(t, "/sil", c[1].Href)
	require.Equal(t, "nav.sil", c[1].LabelKey)
	require.Equal(t, "/sil/north-parramatta", c[2].Href)
	require.Equal(t, "North Parramatta", c[2].Label)
	require.True(t, c[2].Active)
}

func TestBreadcrumbsUnknownSection(t *testing.T) {
	c := Breadcrumbs("/policies/privacy_policy/")
	require.Len(t, c, 3)
	require.Empty(t, c[1].LabelKey)
	require.Equal(t, "Policies", c[1].Label)
	require.Equal(t, "Privacy Policy", c[2].Label)
}

func TestWithLastLabel(t *testing.T) {
	base := Breadcrumbs("/sil")
	got := base.WithLastLabel("Supported Independent Living")
	require.Equal(t, "Supported Independent Living", got[1].Label)
	require.Empty(t, got[1].LabelKey)
	require.Equal(t, "nav.sil", base[1].LabelKey, "original is not modified")

	require.Equal(t, base, base.WithLastLabel(""))
}
