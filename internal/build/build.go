// Package build renders the site configuration and the markdown content into
// a static HTML site.
package build

import (
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/tahsinmert/sveltekit-webgl-experience/internal/config"
	"github.com/tahsinmert/sveltekit-webgl-experience/internal/model"
	"github.com/tahsinmert/sveltekit-webgl-experience/internal/site"
)

// Run renders sc into cfg.OutputDir. The output directory is recreated from
// scratch on every run.
func Run(ctx context.Context, cfg config.Config, sc site.Configuration, logger *zap.Logger) (*model.SiteData, error) {
	// The output directory is wiped below; a cancelled run must leave it alone.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := site.Validate(sc); err != nil {
		return nil, err
	}

	logger.Info("Starting build",
		zap.String("output", cfg.OutputDir),
		zap.String("baseURL", cfg.BaseURL))

	outputDir := cfg.OutputDir
	if err := os.RemoveAll(outputDir); err != nil {
		return nil, fmt.Errorf("failed to remove output directory '%s': %w", outputDir, err)
	}
	if err := os.MkdirAll(outputDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create output directory '%s': %w", outputDir, err)
	}

	if err := writeDefaultAssets(outputDir); err != nil {
		return nil, err
	}
	if dirExists(cfg.StaticDir) {
		if err := copyDirContents(cfg.StaticDir, outputDir); err != nil {
			return nil, fmt.Errorf("failed to copy static assets: %w", err)
		}
		logger.Debug("Static assets copied", zap.String("from", cfg.StaticDir))
	} else {
		logger.Warn("Static directory not found, media paths will not resolve", zap.String("dir", cfg.StaticDir))
	}

	templates, err := LoadTemplates(layoutsFS(cfg.LayoutsDir, logger))
	if err != nil {
		return nil, err
	}

	listings := listLayouts(templates)
	listingPaths := make(map[string]bool, len(listings))
	for _, t := range listings {
		listingPaths["/"+t+"/"] = true
	}

	data := model.NewSiteData(sc, cfg.BaseURL)
	if dirExists(cfg.ContentDir) {
		items, err := CollectContent(cfg.ContentDir, logger)
		if err != nil {
			return nil, err
		}
		data.Add(items...)
	} else {
		logger.Debug("Content directory not found, rendering landing page only", zap.String("dir", cfg.ContentDir))
	}

	intros := make(map[string]*model.ContentItem)
	for _, item := range data.ContentItems {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if item.Permalink == "/" {
			logger.Warn("Content would overwrite the home page, skipping", zap.String("path", item.SourcePath))
			continue
		}
		// Content at a listing's URL becomes that listing's intro.
		if listingPaths[item.Permalink] {
			if prev, ok := intros[item.Permalink]; ok {
				logger.Warn("Listing intro already set, skipping",
					zap.String("path", item.SourcePath), zap.String("intro", prev.SourcePath))
				continue
			}
			logger.Info("Rendering content as listing intro",
				zap.String("path", item.SourcePath), zap.String("permalink", item.Permalink))
			intros[item.Permalink] = item
			continue
		}

		layout := pickLayout(templates, item, logger)
		out := filepath.Join(outputDir, filepath.FromSlash(item.Permalink), "index.html")
		if err := writePage(templates, layout, out, model.PageData{Site: data, Item: item}); err != nil {
			return nil, fmt.Errorf("item '%s': %w", item.Title, err)
		}
		logger.Debug("Generated page", zap.String("path", out), zap.String("layout", layout))
	}

	for _, t := range listings {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		out := filepath.Join(outputDir, t, "index.html")
		page := model.PageData{Site: data, Type: t, Intro: intros["/"+t+"/"], Items: data.Listing(t)}
		if err := writePage(templates, listPrefix+t+".html", out, page); err != nil {
			return nil, fmt.Errorf("%s listing: %w", t, err)
		}
		logger.Debug("Generated listing", zap.String("path", out), zap.Int("items", len(page.Items)))
	}

	home := filepath.Join(outputDir, "index.html")
	if err := writePage(templates, homeLayout, home, model.PageData{Site: data}); err != nil {
		return nil, fmt.Errorf("homepage: %w", err)
	}

	logger.Info("Build completed", zap.Int("pages", len(data.ContentItems)))
	return data, nil
}

// pickLayout prefers the frontmatter layout, then single-<type>.html, then
// single.html, then base.html.
func pickLayout(templates *template.Template, item *model.ContentItem, logger *zap.Logger) string {
	if item.Layout != "" {
		if templates.Lookup(item.Layout) != nil {
			return item.Layout
		}
		logger.Warn("Frontmatter layout not found",
			zap.String("layout", item.Layout), zap.String("item", item.Title))
	}
	for _, name := range []string{"single-" + item.Type + ".html", singleLayout} {
		if templates.Lookup(name) != nil {
			return name
		}
	}
	return baseLayout
}

func writePage(templates *template.Template, layout, out string, data model.PageData) error {
	if err := os.MkdirAll(filepath.Dir(out), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create directory '%s': %w", filepath.Dir(out), err)
	}
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create output file '%s': %w", out, err)
	}
	if err := templates.ExecuteTemplate(f, layout, data); err != nil {
		f.Close()
		return fmt.Errorf("failed to execute template '%s' (outputting to '%s'): %w", layout, out, err)
	}
	return f.Close()
}

func dirExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
