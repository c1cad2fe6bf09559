package build

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

//go:embed assets
var embeddedAssets embed.FS

// writeDefaultAssets writes the built-in stylesheet into outputDir. Files in
// the static directory are copied afterwards and take precedence.
func writeDefaultAssets(outputDir string) error {
	return fs.WalkDir(embeddedAssets, "assets", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel("assets", filepath.FromSlash(p))
		if err != nil {
			return fmt.Errorf("failed to get relative path for %s: %w", p, err)
		}
		dst := filepath.Join(outputDir, rel)
		if d.IsDir() {
			if err := os.MkdirAll(dst, os.ModePerm); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", dst, err)
			}
			return nil
		}
		b, err := embeddedAssets.ReadFile(p)
		if err != nil {
			return fmt.Errorf("failed to read built-in asset %s: %w", p, err)
		}
		if err := os.WriteFile(dst, b, 0o644); err != nil {
			return fmt.Errorf("failed to write built-in asset %s: %w", dst, err)
		}
		return nil
	})
}
