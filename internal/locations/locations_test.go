package locations

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultTableHasUniqueSlugs(t *testing.T) {
	tbl, err := Default()
	require.NoError(t, err)
	require.Greater(t, tbl.Len(), 0)

	seen := map[string]bool{}
	for _, s := range tbl.Slugs() {
		require.NotEmpty(t, s)
		require.False(t, seen[s], "duplicate slug %q", s)
		seen[s] = true
	}
}

func TestEverySlugResolvesToItsRecord(t *testing.T) {
	tbl, err := Default()
	require.NoError(t, err)

	records := tbl.Records()
	require.Len(t, records, tbl.Len())
	for i, slug := range tbl.Slugs() {
		rec, err := tbl.Lookup(slug)
		require.NoError(t, err)
		require.Equal(t, slug, rec.Slug)
		require.Equal(t, records[i], rec)
	}
}

func TestLookupMiss(t *testing.T) {
	tbl, err := Default()
	require.NoError(t, err)

	for _, slug := range []string{"", "atlantis", "Parramatta", " parramatta", "parramatta/"} {
		rec, err := tbl.Lookup(slug)
		require.ErrorIs(t, err, ErrNotFound, slug)
		require.Zero(t, rec)
	}
}

func TestLoadRejectsDuplicateSlug(t *testing.T) {
	doc := `
locations:
  - slug: penrith
    name: Penrith
  - slug: penrith
    name: Penrith again
`
	_, err := Load(strings.NewReader(doc))
	require.ErrorIs(t, err, ErrDuplicateSlug)
}

func TestLoadRejectsEmptySlug(t *testing.T) {
	doc := `
locations:
  - slug: "  "
    name: Nowhere
`
	_, err := Load(strings.NewReader(doc))
	require.ErrorIs(t, err, ErrEmptySlug)
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	doc := `
locations:
  - slug: penrith
    postcode: "2750"
`
	_, err := Load(strings.NewReader(doc))
	require.Error(t, err)
	require.Contains(t, err.Error(), "decode")
}

func TestLoadEmptyDocument(t *testing.T) {
	tbl, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	require.Zero(t, tbl.Len())
	require.Empty(t, tbl.Slugs())
}

func TestRecordsAreCopies(t *testing.T) {
	tbl, err := New([]Record{{
		Slug:          "kellyville",
		Name:          "Kellyville",
		NearbySuburbs: []string{"Rouse Hill"},
		FAQs:          []FAQ{{Question: "Q1", Answer: "A1"}},
	}})
	require.NoError(t, err)

	recs := tbl.Records()
	recs[0].NearbySuburbs[0] = "changed"
	recs[0].FAQs[0].Answer = "changed"

	rec, err := tbl.Lookup("kellyville")
	require.NoError(t, err)
	require.Equal(t, []string{"Rouse Hill"}, rec.NearbySuburbs)
	require.Equal(t, "A1", rec.FAQs[0].Answer)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "locations.yaml")
	require.NoError(t, os.WriteFile(path, []byte("locations:\n  - slug: castle-hill\n    name: Castle Hill\n"), 0o644))

	tbl, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, []string{"castle-hill"}, tbl.Slugs())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
