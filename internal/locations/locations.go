// Package locations holds the per-suburb content table behind the SIL
// location landing pages.
package locations

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNotFound is returned when a slug is not in the table.
	ErrNotFound = errors.New("locations: not found")
	// ErrDuplicateSlug is returned by Load when two records share a slug.
	ErrDuplicateSlug = errors.New("locations: duplicate slug")
	// ErrEmptySlug is returned by Load when a record has no slug.
	ErrEmptySlug = errors.New("locations: empty slug")
)

// FAQ is a question and answer shown on a location page.
type FAQ struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

// Record is the content for one location page. Slug is both the URL segment
// and the lookup key.
type Record struct {
	Slug            string   `yaml:"slug"`
	Name            string   `yaml:"name"`
	Region          string   `yaml:"region"`
	HeroTitle       string   `yaml:"hero_title"`
	HeroDescription string   `yaml:"hero_description"`
	MetaTitle       string   `yaml:"meta_title"`
	MetaDescription string   `yaml:"meta_description"`
	NearbySuburbs   []string `yaml:"nearby_suburbs"`
	Landmarks       string   `yaml:"landmarks"`
	TransportInfo   string   `yaml:"transport_info"`
	LocalContent    string   `yaml:"local_content"`
	WhyChoosePoints []string `yaml:"why_choose_points"`
	FAQs            []FAQ    `yaml:"faqs"`
}

// Table is an immutable, ordered set of records with unique slugs.
type Table struct {
	records []Record
}

type tableFile struct {
	Locations []Record `yaml:"locations"`
}

// Load decodes a YAML document with a top-level "locations" list.
func Load(r io.Reader) (*Table, error) {
	var f tableFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("locations: decode: %w", err)
	}
	return New(f.Locations)
}

// LoadFile reads a table from path.
func LoadFile(path string) (*Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("locations: read %s: %w", path, err)
	}
	return Load(bytes.NewReader(raw))
}

// New validates records and builds a table. The records are copied.
func New(records []Record) (*Table, error) {
	seen := make(map[string]int, len(records))
	out := make([]Record, 0, len(records))
	for i, rec := range records {
		if strings.TrimSpace(rec.Slug) == "" {
			return nil, fmt.Errorf("%w: record %d (%q)", ErrEmptySlug, i, rec.Name)
		}
		if j, dup := seen[rec.Slug]; dup {
			return nil, fmt.Errorf("%w: %q at records %d and %d", ErrDuplicateSlug, rec.Slug, j, i)
		}
		seen[rec.Slug] = i
		out = append(out, cloneRecord(rec))
	}
	return &Table{records: out}, nil
}

//go:embed data/locations.yaml
var defaultYAML []byte

var (
	defaultOnce  sync.Once
	defaultTable *Table
	defaultErr   error
)

// Default returns the table compiled into the binary.
func Default() (*Table, error) {
	defaultOnce.Do(func() {
		defaultTable, defaultErr = Load(bytes.NewReader(defaultYAML))
	})
	return defaultTable, defaultErr
}

// Len reports the number of records.
func (t *Table) Len() int { return len(t.records) }

// Slugs lists every slug in table order.
func (t *Table) Slugs() []string {
	out := make([]string, len(t.records))
	for i, r := range t.records {
		out[i] = r.Slug
	}
	return out
}

// Lookup returns the record whose slug equals slug exactly.
func (t *Table) Lookup(slug string) (Record, error) {
	for _, r := range t.records {
		if r.Slug == slug {
			return cloneRecord(r), nil
		}
	}
	return Record{}, fmt.Errorf("%w: %q", ErrNotFound, slug)
}

// Records returns a copy of every record in table order.
func (t *Table) Records() []Record {
	out := make([]Record, len(t.records))
	for i, r := range t.records {
		out[i] = cloneRecord(r)
	}
	return out
}

func cloneRecord(r Record) Record {
	cp := r
	cp.NearbySuburbs = append([]string(nil), r.NearbySuburbs...)
	cp.WhyChoosePoints = append([]string(nil), r.WhyChoosePoints...)
	cp.FAQs = append([]FAQ(nil), r.FAQs...)
	return cp
}
