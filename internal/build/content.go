package build

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"go.uber.org/zap"

	"github.com/tahsinmert/sveltekit-webgl-experience/internal/model"
)

var dateFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			gmhtml.WithHardWraps(),
		),
	)
}

// CollectContent converts every markdown file under dir into a ContentItem.
// Files with draft: true in their frontmatter are skipped.
func CollectContent(dir string, logger *zap.Logger) ([]*model.ContentItem, error) {
	md := newMarkdown()
	var items []*model.ContentItem

	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return fmt.Errorf("error accessing path '%s' during walk: %w", p, walkErr)
		}
		if d.IsDir() || !strings.HasSuffix(strings.ToLower(d.Name()), ".md") {
			return nil
		}

		item, err := parseContentFile(md, dir, p, logger)
		if err != nil {
			return err
		}
		if item == nil {
			return nil
		}
		logger.Debug("Collected content",
			zap.String("path", p),
			zap.String("type", item.Type),
			zap.String("permalink", item.Permalink))
		items = append(items, item)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error during content collection walk: %w", err)
	}
	return items, nil
}

func parseContentFile(md goldmark.Markdown, root, p string, logger *zap.Logger) (*model.ContentItem, error) {
	fileBytes, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("failed to read file '%s': %w", p, err)
	}

	var fmData map[string]interface{}
	body, err := frontmatter.Parse(bytes.NewReader(fileBytes), &fmData)
	if err != nil {
		logger.Warn("Could not parse frontmatter, treating as pure markdown",
			zap.String("path", p), zap.Error(err))
		body = fileBytes
		fmData = nil
	}
	if fmData == nil {
		fmData = make(map[string]interface{})
	}

	if draft, ok := fmData["draft"].(bool); ok && draft {
		logger.Debug("Skipping draft", zap.String("path", p))
		return nil, nil
	}

	var htmlBuffer bytes.Buffer
	if err := md.Convert(body, &htmlBuffer); err != nil {
		return nil, fmt.Errorf("failed to convert markdown to HTML for file '%s': %w", p, err)
	}

	relPath, err := filepath.Rel(root, p)
	if err != nil {
		return nil, fmt.Errorf("failed to get relative path for %s: %w", p, err)
	}
	relPath = filepath.ToSlash(relPath)

	item := &model.ContentItem{
		Title:       stringField(fmData, "title"),
		Type:        contentType(relPath),
		SourcePath:  p,
		Permalink:   permalinkFor(relPath),
		ContentHTML: template.HTML(htmlBuffer.String()),
		Frontmatter: fmData,
		Summary:     stringField(fmData, "summary"),
		Layout:      stringField(fmData, "layout"),
	}
	if item.Title == "" {
		item.Title = titleFromFilename(path.Base(relPath))
	}
	if t := stringField(fmData, "type"); t != "" {
		item.Type = t
	}
	item.Date = parseDate(fmData["date"], p, logger)

	return item, nil
}

func stringField(fm map[string]interface{}, key string) string {
	s, _ := fm[key].(string)
	return s
}

func parseDate(v interface{}, p string, logger *zap.Logger) time.Time {
	switch d := v.(type) {
	case time.Time:
		return d
	case string:
		for _, format := range dateFormats {
			if parsed, err := time.Parse(format, d); err == nil {
				return parsed
			}
		}
		logger.Warn("Could not parse date, use YYYY-MM-DD or RFC3339",
			zap.String("date", d), zap.String("path", p))
	}
	return time.Time{}
}

// contentType is the first directory of relPath, or "page" at the top level.
func contentType(relPath string) string {
	dir := path.Dir(relPath)
	if dir == "." || dir == "" {
		return "page"
	}
	return strings.Split(dir, "/")[0]
}

// permalinkFor maps "work/rebrand.md" to "/work/rebrand/" and
// "about/index.md" to "/about/".
func permalinkFor(relPath string) string {
	p := strings.TrimSuffix(relPath, path.Ext(relPath))
	if path.Base(p) == "index" || path.Base(p) == "_index" {
		p = path.Dir(p)
	}
	p = path.Clean("/" + p)
	if !strings.HasSuffix(p, "/") {
		p += "/"
	}
	return p
}

func titleFromFilename(name string) string {
	return titleCase(strings.TrimSuffix(name, path.Ext(name)))
}
