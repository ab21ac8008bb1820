package twconfig

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"
)

// OutputFormat represents the check output format
type OutputFormat string

const (
	// OutputIssues shows errors/warnings one per line (CI-friendly)
	OutputIssues OutputFormat = "issues"
	// OutputJSON exports structured data in JSON format (tooling integration)
	OutputJSON OutputFormat = "json"
)

// DetermineOutputFormat selects the check output format from a flag value.
// Unknown values fall back to OutputIssues.
func DetermineOutputFormat(formatFlag string) OutputFormat {
	switch formatFlag {
	case "json":
		return OutputJSON
	default:
		return OutputIssues
	}
}

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version   string      `json:"version"`
	Timestamp string      `json:"timestamp"`
	Summary   JSONSummary `json:"summary"`
	Issues    []JSONIssue `json:"issues"`
}

// JSONSummary contains high-level issue counts
type JSONSummary struct {
	TotalIssues  int `json:"total_issues"`
	Errors       int `json:"errors"`
	Warnings     int `json:"warnings"`
	ContentGlobs int `json:"content_globs"`
	Colors       int `json:"colors"`
	Plugins      int `json:"plugins"`
	FilesMatched int `json:"files_matched,omitempty"`
}

// JSONIssue represents a single check issue
type JSONIssue struct {
	File     string `json:"file,omitempty"`
	Key      string `json:"key"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Linter   string `json:"linter"`
}

// WriteJSON writes the check result as JSON
func WriteJSON(w io.Writer, result *CheckResult) error {
	output := buildJSONOutput(result, time.Now())
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

func buildJSONOutput(result *CheckResult, now time.Time) JSONOutput {
	output := JSONOutput{
		Version:   "1.0",
		Timestamp: now.UTC().Format(time.RFC3339),
		Summary: JSONSummary{
			TotalIssues: len(result.Issues),
			Errors:      result.ErrorCount,
			Warnings:    result.WarningCount,
		},
		Issues: make([]JSONIssue, 0, len(result.Issues)),
	}
	if doc := result.Document; doc != nil {
		output.Summary.ContentGlobs = len(doc.ContentGlobs)
		output.Summary.Colors = doc.ColorCount()
		output.Summary.Plugins = len(doc.Plugins)
	}
	if result.Content != nil {
		output.Summary.FilesMatched = result.Content.Stats.FilesMatched
	}
	for _, issue := range result.Issues {
		output.Issues = append(output.Issues, JSONIssue{
			File:     issue.Source,
			Key:      issue.Key,
			Severity: issue.Severity,
			Message:  issue.Text,
			Linter:   issue.FromLinter,
		})
	}
	return output
}

// DeclarationFormat is an encoding WriteDeclaration can produce.
type DeclarationFormat string

// Declaration encodings.
const (
	FormatYAML DeclarationFormat = "yaml"
	FormatJSON DeclarationFormat = "json"
)

// WriteDeclaration writes doc in declaration shape. The output loads back
// into an equal Document.
func WriteDeclaration(w io.Writer, doc *Document, format DeclarationFormat) error {
	decl := doc.Declaration()
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(decl)
	case FormatYAML, "":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(decl); err != nil {
			return err
		}
		return encoder.Close()
	default:
		return fmt.Errorf("unsupported declaration format %q (want yaml or json)", format)
	}
}
