package twconfig

import (
	"fmt"
	"sort"
	"strings"
)

// CheckOptions controls which checks Check performs.
type CheckOptions struct {
	// ResolveContent also expands content globs and reports patterns
	// that match no file.
	ResolveContent bool
	Content        ContentOptions
}

// CheckResult contains the issues found in a declaration
type CheckResult struct {
	Document     *Document
	Issues       []Issue
	ErrorCount   int
	WarningCount int
	Content      *ContentResult // nil unless content was resolved
}

// CheckFile loads the declaration at path and checks it.
// Malformed declarations are returned as an error, not as issues.
func CheckFile(path string, opts CheckOptions) (*CheckResult, error) {
	doc, unknown, err := loadFile(path)
	if err != nil {
		return nil, err
	}
	result, err := check(doc, unknown, opts)
	if err != nil {
		return nil, err
	}
	for i := range result.Issues {
		result.Issues[i].Source = path
	}
	return result, nil
}

// Check lints an already loaded document.
func Check(doc *Document, opts CheckOptions) (*CheckResult, error) {
	return check(doc, nil, opts)
}

func check(doc *Document, unknown []string, opts CheckOptions) (*CheckResult, error) {
	result := &CheckResult{Document: doc}
	add := func(severity, key, format string, args ...any) {
		result.Issues = append(result.Issues, Issue{
			FromLinter: LinterName,
			Severity:   severity,
			Key:        key,
			Text:       fmt.Sprintf(format, args...),
		})
	}

	// 1. Content patterns
	validGlobs := true
	positive := 0
	for i, pattern := range doc.ContentGlobs {
		key := fmt.Sprintf("%s[%d]", KeyContent, i)
		if !ValidatePattern(pattern) {
			add(SeverityError, key, IssueInvalidGlob, pattern)
			validGlobs = false
			continue
		}
		if !strings.HasPrefix(pattern, "!") {
			positive++
		}
	}
	switch {
	case len(doc.ContentGlobs) == 0:
		add(SeverityError, KeyContent, IssueEmptyContent)
	case positive == 0 && validGlobs:
		add(SeverityError, KeyContent, IssueExcludeOnlyGlobs)
	}

	if opts.ResolveContent && validGlobs && positive > 0 {
		content, err := ResolveContent(doc, opts.Content)
		if err != nil {
			return nil, fmt.Errorf("resolving content: %w", err)
		}
		result.Content = content
		for i, pattern := range doc.ContentGlobs {
			if strings.HasPrefix(pattern, "!") {
				continue
			}
			if content.PerPattern[pattern] == 0 {
				add(SeverityWarning, fmt.Sprintf("%s[%d]", KeyContent, i), IssueUnmatchedGlob, pattern)
			}
		}
	}

	// 2. Colours
	for _, family := range doc.Families() {
		familyKey := KeyColors + "." + family
		if len(doc.ThemeExtensions[family]) == 0 {
			add(SeverityWarning, familyKey, IssueEmptyFamily, family)
			continue
		}
		for _, shade := range doc.Shades(family) {
			if _, err := ParseColor(doc.ThemeExtensions[family][shade]); err != nil {
				add(SeverityError, familyKey+"."+shade, IssueInvalidColor, err)
			}
		}
	}

	// 3. Plugins
	firstSeen := make(map[string]int, len(doc.Plugins))
	for i, plugin := range doc.Plugins {
		key := fmt.Sprintf("%s[%d]", KeyPlugins, i)
		name := strings.TrimSpace(plugin)
		if name == "" {
			add(SeverityError, key, IssueEmptyPlugin)
			continue
		}
		if first, ok := firstSeen[name]; ok {
			add(SeverityWarning, key, IssueDuplicatePlugin, name, first)
			continue
		}
		firstSeen[name] = i
	}

	// 4. Keys outside the schema
	for _, key := range unknown {
		add(SeverityWarning, key, IssueUnknownKey, key)
	}

	sortIssues(result.Issues)
	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityError:
			result.ErrorCount++
		case SeverityWarning:
			result.WarningCount++
		}
	}
	return result, nil
}

// sortIssues orders issues by declaration section, keeping the
// emission order inside a section.
func sortIssues(issues []Issue) {
	rank := func(key string) int {
		switch {
		case strings.HasPrefix(key, KeyContent):
			return 0
		case strings.HasPrefix(key, KeyColors):
			return 1
		case strings.HasPrefix(key, KeyPlugins):
			return 2
		default:
			return 3
		}
	}
	sort.SliceStable(issues, func(i, j int) bool {
		return rank(issues[i].Key) < rank(issues[j].Key)
	})
}
