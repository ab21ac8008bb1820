package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yacobolo/twconfig"
)

func TestPrintIssues(t *testing.T) {
	tests := []struct {
		name       string
		issue      twconfig.Issue
		linterName bool
		want       string
	}{
		{
			name: "with source and linter",
			issue: twconfig.Issue{
				FromLinter: twconfig.LinterName,
				Severity:   twconfig.SeverityError,
				Key:        "theme.extend.colors.green.700",
				Text:       "invalid colour value",
				Source:     "tailwind.config.yaml",
			},
			linterName: true,
			want:       "tailwind.config.yaml: theme.extend.colors.green.700: error: invalid colour value (twlint)\n",
		},
		{
			name: "in-memory declaration",
			issue: twconfig.Issue{
				FromLinter: twconfig.LinterName,
				Severity:   twconfig.SeverityWarning,
				Key:        "plugins[2]",
				Text:       "duplicate",
			},
			linterName: false,
			want:       "plugins[2]: warning: duplicate\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			reporter := NewReporter(&buf, Options{PrintLinterName: tt.linterName})
			reporter.PrintIssues([]twconfig.Issue{tt.issue})
			require.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf, Options{})
	reporter.PrintSummary(&twconfig.CheckResult{
		Issues: []twconfig.Issue{
			{Key: "content[0]", Severity: twconfig.SeverityError},
			{Key: "theme.extend.colors.red.600", Severity: twconfig.SeverityError},
			{Key: "theme.extend.colors.gray", Severity: twconfig.SeverityWarning},
			{Key: "darkMode", Severity: twconfig.SeverityWarning},
		},
		ErrorCount:   2,
		WarningCount: 2,
	})

	assert.Equal(t, "\n4 issues (2 errors, 2 warnings):\n"+
		"* content: 1\n"+
		"* other: 1\n"+
		"* theme.extend.colors: 2\n", buf.String())
}

func TestPrintSummary_NoIssues(t *testing.T) {
	var buf bytes.Buffer
	NewReporter(&buf, Options{}).PrintSummary(&twconfig.CheckResult{})
	assert.Equal(t, "\n0 issues.\n", buf.String())
}

func TestPluralizeCount(t *testing.T) {
	assert.Equal(t, "1 error", pluralizeCount(1, "error", "errors"))
	assert.Equal(t, "0 errors", pluralizeCount(0, "error", "errors"))
	assert.Equal(t, "3 errors", pluralizeCount(3, "error", "errors"))
}

func TestRenderStyle_NoColors(t *testing.T) {
	assert.Equal(t, "text", RenderStyle(StyleRed, "text", false))
}
