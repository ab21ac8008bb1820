package twconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeTree creates empty files under dir.
func makeTree(t *testing.T, dir string, files ...string) {
	t.Helper()
	for _, f := range files {
		path := filepath.Join(dir, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("<div class=\"btn\"></div>\n"), 0644))
	}
}

func TestValidatePattern(t *testing.T) {
	tests := []struct {
		pattern string
		want    bool
	}{
		{pattern: "./src/**/*.{html,js,svelte,ts}", want: true},
		{pattern: "src/*.html", want: true},
		{pattern: "!./src/legacy/**", want: true},
		{pattern: "src/[a-z]*.js", want: true},
		{pattern: "src/{html,js", want: false},
		{pattern: "src/[a-z.js", want: false},
		{pattern: "", want: false},
		{pattern: "!", want: false},
		{pattern: "./", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidatePattern(tt.pattern))
		})
	}
}

func TestResolveContent(t *testing.T) {
	dir := t.TempDir()
	makeTree(t, dir,
		"src/app.html",
		"src/routes/+page.svelte",
		"src/lib/util.ts",
		"src/lib/util.test.ts",
		"src/styles/app.css",
		"src/legacy/old.js",
		"README.md",
	)

	doc := &Document{ContentGlobs: []string{
		"./src/**/*.{html,js,svelte,ts}",
		"!./src/legacy/**",
	}}

	result, err := ResolveContent(doc, ContentOptions{BaseDir: dir})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"src/app.html",
		"src/lib/util.test.ts",
		"src/lib/util.ts",
		"src/routes/+page.svelte",
	}, result.Files)
	assert.Equal(t, 5, result.PerPattern["./src/**/*.{html,js,svelte,ts}"])
	assert.Equal(t, ContentStats{FilesDiscovered: 5, FilesMatched: 4, FilesSkipped: 1}, result.Stats)
}

func TestResolveContent_DeduplicatesAcrossPatterns(t *testing.T) {
	dir := t.TempDir()
	makeTree(t, dir, "src/a.html", "src/b.js")

	doc := &Document{ContentGlobs: []string{"src/*.html", "src/**/*"}}

	result, err := ResolveContent(doc, ContentOptions{BaseDir: dir})
	require.NoError(t, err)

	assert.Equal(t, []string{"src/a.html", "src/b.js"}, result.Files)
	assert.Equal(t, 1, result.PerPattern["src/*.html"])
	assert.Equal(t, 2, result.PerPattern["src/**/*"])
	assert.Equal(t, 2, result.Stats.FilesDiscovered)
}

func TestResolveContent_GitIgnore(t *testing.T) {
	dir := t.TempDir()
	makeTree(t, dir, "src/app.html", "src/generated/out.html")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".gitignore"), []byte("src/generated/\n"), 0644))

	doc := &Document{ContentGlobs: []string{"src/**/*.html"}}

	withIgnore, err := ResolveContent(doc, ContentOptions{BaseDir: dir, GitIgnore: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"src/app.html"}, withIgnore.Files)
	assert.Equal(t, 1, withIgnore.Stats.FilesSkipped)

	withoutIgnore, err := ResolveContent(doc, ContentOptions{BaseDir: dir})
	require.NoError(t, err)
	assert.Len(t, withoutIgnore.Files, 2)
}

func TestResolveContent_NoMatches(t *testing.T) {
	doc := &Document{ContentGlobs: []string{"src/**/*.vue"}}

	result, err := ResolveContent(doc, ContentOptions{BaseDir: t.TempDir()})
	require.NoError(t, err)
	assert.Empty(t, result.Files)
	assert.Equal(t, 0, result.PerPattern["src/**/*.vue"])
}

func TestResolveContent_InvalidPattern(t *testing.T) {
	doc := &Document{ContentGlobs: []string{"src/{html,js"}}

	_, err := ResolveContent(doc, ContentOptions{BaseDir: t.TempDir()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "src/{html,js")
}
