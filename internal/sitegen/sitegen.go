// Package sitegen renders the whole site to a directory of static files.
package sitegen

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"summitcare.com.au/web/internal/pages"
	"summitcare.com.au/web/internal/ui"
)

// Builder writes every page of Site under OutDir. PublicDir, when it
// exists, is copied into OutDir first.
type Builder struct {
	Site      *pages.Site
	OutDir    string
	PublicDir string
	Lang      string
	Logger    *zap.Logger

	// Load, when set, replaces Site before every build so that edits to
	// content and the locations file reach the output.
	Load func() (*pages.Site, error)
}

// Report lists what a build produced. Pages holds route paths; Locations
// holds the slugs of the location pages written.
type Report struct {
	Pages     []string
	Locations []string
}

// Build replaces OutDir with a fresh render of the site.
func (b *Builder) Build(ctx context.Context) (Report, error) {
	logger := b.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if b.Load != nil {
		site, err := b.Load()
		if err != nil {
			return Report{}, fmt.Errorf("sitegen: load site: %w", err)
		}
		b.Site = site
	}
	if b.Site == nil {
		return Report{}, errors.New("sitegen: site is required")
	}

	keep := []string{b.PublicDir}
	if b.Site.CMS != nil {
		keep = append(keep, b.Site.CMS.ContentDir())
	}
	out, err := cleanOutDir(b.OutDir, keep...)
	if err != nil {
		return Report{}, err
	}

	if b.PublicDir != "" {
		if _, err := os.Stat(b.PublicDir); err == nil {
			if err := copyDir(b.PublicDir, out); err != nil {
				return Report{}, fmt.Errorf("sitegen: copy public: %w", err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return Report{}, err
		} else {
			logger.Info("public dir not found, skipping copy", zap.String("dir", b.PublicDir))
		}
	}

	ui.InitEffectStyles()
	if css, ok := ui.EffectStylesheet(); ok {
		if err := writeFile(filepath.Join(out, "assets", "effects.css"), []byte(css)); err != nil {
			return Report{}, err
		}
	}

	paths, err := b.Site.Paths(ctx)
	if err != nil {
		return Report{}, err
	}
	var report Report
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return Report{}, err
		}
		p, err := b.Site.PageFor(ctx, b.Lang, path)
		if err != nil {
			return Report{}, fmt.Errorf("sitegen: build %s: %w", path, err)
		}
		if err := b.writePage(filepath.Join(out, filepath.FromSlash(path), "index.html"), p); err != nil {
			return Report{}, err
		}
		report.Pages = append(report.Pages, path)
		if slug, ok := strings.CutPrefix(path, pages.LocationPath("")); ok {
			report.Locations = append(report.Locations, slug)
		}
		logger.Debug("page written", zap.String("path", path))
	}

	if err := b.writePage(filepath.Join(out, "404.html"), b.Site.NotFound(b.Lang)); err != nil {
		return Report{}, err
	}
	sitemap, err := b.Site.Sitemap(paths)
	if err != nil {
		return Report{}, err
	}
	if err := writeFile(filepath.Join(out, "sitemap.xml"), sitemap); err != nil {
		return Report{}, err
	}

	logger.Info("site built",
		zap.String("out", out),
		zap.Int("pages", len(report.Pages)),
		zap.Int("locations", len(report.Locations)),
	)
	return report, nil
}

func (b *Builder) writePage(file string, p pages.Page) error {
	var buf bytes.Buffer
	if err := b.Site.Render(&buf, b.Lang, p); err != nil {
		return fmt.Errorf("sitegen: render %s: %w", file, err)
	}
	return writeFile(file, buf.Bytes())
}

// cleanOutDir empties dir. It refuses the filesystem root, the working
// directory or any of its ancestors, and any path that overlaps a keep dir.
func cleanOutDir(dir string, keep ...string) (string, error) {
	if strings.TrimSpace(dir) == "" {
		return "", errors.New("sitegen: output directory is required")
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	if abs == filepath.Dir(abs) {
		return "", fmt.Errorf("sitegen: refusing to clean %s", abs)
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	if within(abs, wd) {
		return "", fmt.Errorf("sitegen: refusing to clean %s: it contains the working directory", abs)
	}
	for _, k := range keep {
		if strings.TrimSpace(k) == "" {
			continue
		}
		kabs, err := filepath.Abs(k)
		if err != nil {
			return "", err
		}
		if within(abs, kabs) || within(kabs, abs) {
			return "", fmt.Errorf("sitegen: refusing to clean %s: it overlaps %s", abs, kabs)
		}
	}
	if err := os.RemoveAll(abs); err != nil {
		return "", fmt.Errorf("sitegen: clean output: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return "", err
	}
	return abs, nil
}

// within reports whether path is parent or lies below it.
func within(parent, path string) bool {
	rel, err := filepath.Rel(parent, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func copyDir(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		return copyFile(path, target)
	})
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
