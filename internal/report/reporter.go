package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/yacobolo/twconfig"
)

// Options configures a Reporter.
type Options struct {
	UseColors       bool
	PrintLinterName bool
}

// Reporter handles formatting and outputting check results
type Reporter struct {
	w               io.Writer
	useColors       bool
	printLinterName bool
}

// NewReporter creates a new reporter with the given options
func NewReporter(w io.Writer, opts Options) *Reporter {
	return &Reporter{
		w:               w,
		useColors:       opts.UseColors,
		printLinterName: opts.PrintLinterName,
	}
}

// PrintIssues outputs one issue per line:
//
//	tailwind.config.yaml: theme.extend.colors.green.700: error: invalid colour value (twlint)
func (r *Reporter) PrintIssues(issues []twconfig.Issue) {
	for _, issue := range issues {
		r.printIssue(issue)
	}
}

func (r *Reporter) printIssue(issue twconfig.Issue) {
	location := issue.Key + ":"
	if issue.Source != "" {
		location = issue.Source + ": " + location
	}

	severity := issue.Severity + ":"
	switch issue.Severity {
	case twconfig.SeverityError:
		severity = RenderStyle(StyleRed, severity, r.useColors)
	case twconfig.SeverityWarning:
		severity = RenderStyle(StyleYellow, severity, r.useColors)
	}

	linterSuffix := ""
	if r.printLinterName {
		linterSuffix = fmt.Sprintf(" (%s)", issue.FromLinter)
	}

	fmt.Fprintf(r.w, "%s %s %s%s\n",
		RenderStyle(StyleCyan, location, r.useColors),
		severity,
		issue.Text,
		RenderStyle(StyleGray, linterSuffix, r.useColors))
}

// PrintSummary outputs the issue count summary
func (r *Reporter) PrintSummary(result *twconfig.CheckResult) {
	totalIssues := len(result.Issues)

	fmt.Fprintln(r.w, "")
	if totalIssues == 0 {
		fmt.Fprintln(r.w, RenderStyle(StyleGreen, "0 issues.", r.useColors))
		return
	}

	fmt.Fprintf(r.w, "%s (%s, %s):\n",
		pluralizeCount(totalIssues, "issue", "issues"),
		pluralizeCount(result.ErrorCount, "error", "errors"),
		pluralizeCount(result.WarningCount, "warning", "warnings"))

	// Group by declaration section
	sectionCounts := make(map[string]int)
	for _, issue := range result.Issues {
		sectionCounts[section(issue.Key)]++
	}
	sections := make([]string, 0, len(sectionCounts))
	for name := range sectionCounts {
		sections = append(sections, name)
	}
	sort.Strings(sections)
	for _, name := range sections {
		fmt.Fprintf(r.w, "* %s: %d\n", name, sectionCounts[name])
	}
}

// section maps an issue key to the declaration block it belongs to.
func section(key string) string {
	for _, prefix := range []string{twconfig.KeyContent, twconfig.KeyColors, twconfig.KeyPlugins} {
		if strings.HasPrefix(key, prefix) {
			return prefix
		}
	}
	return "other"
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
