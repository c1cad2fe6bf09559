package build

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyDirContents(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	writeFile(t, filepath.Join(src, "videos", "card-software-flow.mp4"), "flow")
	writeFile(t, filepath.Join(src, "robots.txt"), "User-agent: *")
	require.NoError(t, os.MkdirAll(filepath.Join(src, "empty"), 0o755))

	require.NoError(t, copyDirContents(src, dst))

	assert.Equal(t, "flow", readFile(t, filepath.Join(dst, "videos", "card-software-flow.mp4")))
	assert.Equal(t, "User-agent: *", readFile(t, filepath.Join(dst, "robots.txt")))
	assert.DirExists(t, filepath.Join(dst, "empty"))
}
