package twconfig

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// ContentOptions controls how content globs are resolved.
type ContentOptions struct {
	BaseDir   string // directory patterns are relative to (default ".")
	GitIgnore bool   // skip files matched by BaseDir/.gitignore
}

// ContentStats tracks file resolution statistics
type ContentStats struct {
	FilesDiscovered int // Files matched by positive patterns
	FilesMatched    int // Files kept after exclusions and ignore rules
	FilesSkipped    int // Files dropped by exclusions or .gitignore
}

// ContentResult is the outcome of resolving a document's content globs.
type ContentResult struct {
	// Files are slash-separated paths relative to BaseDir, in pattern order.
	Files []string
	// PerPattern counts files each positive pattern contributed before
	// exclusions, keyed by the pattern as declared.
	PerPattern map[string]int
	Stats      ContentStats
}

// ValidatePattern reports whether a content entry is a well-formed glob.
// A leading "!" marks an exclusion and is not part of the glob.
func ValidatePattern(pattern string) bool {
	glob := normalizePattern(strings.TrimPrefix(pattern, "!"))
	return glob != "" && doublestar.ValidatePattern(glob)
}

// ResolveContent expands the document's content globs into files.
func ResolveContent(doc *Document, opts ContentOptions) (*ContentResult, error) {
	baseDir := opts.BaseDir
	if baseDir == "" {
		baseDir = "."
	}

	var include, exclude []string
	for _, pattern := range doc.ContentGlobs {
		if !ValidatePattern(pattern) {
			return nil, fmt.Errorf("content pattern %q: %w", pattern, doublestar.ErrBadPattern)
		}
		if strings.HasPrefix(pattern, "!") {
			exclude = append(exclude, normalizePattern(pattern[1:]))
		} else {
			include = append(include, pattern)
		}
	}

	var gi *ignore.GitIgnore
	if opts.GitIgnore {
		gi = loadGitIgnore(baseDir)
	}

	result := &ContentResult{PerPattern: make(map[string]int, len(include))}
	seen := make(map[string]bool)

	for _, pattern := range include {
		glob := normalizePattern(pattern)
		if !filepath.IsAbs(glob) {
			glob = filepath.Join(baseDir, glob)
		}

		// Use doublestar for ** and {a,b} support
		matches, err := doublestar.FilepathGlob(glob, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("glob pattern %q: %w", pattern, err)
		}
		sort.Strings(matches)
		result.PerPattern[pattern] += len(matches)

		for _, match := range matches {
			file := relativeTo(baseDir, match)
			if seen[file] {
				continue
			}
			seen[file] = true
			result.Stats.FilesDiscovered++

			if isExcluded(file, exclude) || (gi != nil && gi.MatchesPath(file)) {
				result.Stats.FilesSkipped++
				continue
			}
			result.Files = append(result.Files, file)
			result.Stats.FilesMatched++
		}
	}

	return result, nil
}

// normalizePattern strips a leading "./" and uses forward slashes.
func normalizePattern(pattern string) string {
	p := filepath.ToSlash(strings.TrimSpace(pattern))
	for strings.HasPrefix(p, "./") {
		p = strings.TrimPrefix(p, "./")
	}
	return p
}

// relativeTo returns match relative to baseDir with forward slashes.
// Matches outside baseDir keep their full path.
func relativeTo(baseDir, match string) string {
	rel, err := filepath.Rel(baseDir, match)
	if err != nil || strings.HasPrefix(rel, "..") {
		return filepath.ToSlash(match)
	}
	return filepath.ToSlash(rel)
}

func isExcluded(file string, exclude []string) bool {
	for _, pattern := range exclude {
		if ok, _ := doublestar.Match(pattern, file); ok {
			return true
		}
	}
	return false
}

// loadGitIgnore reads baseDir/.gitignore.
// A missing or unreadable file means nothing is ignored.
func loadGitIgnore(baseDir string) *ignore.GitIgnore {
	gi, err := ignore.CompileIgnoreFile(filepath.Join(baseDir, ".gitignore"))
	if err != nil {
		return nil
	}
	return gi
}
