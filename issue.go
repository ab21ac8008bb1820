package twconfig

// Issue represents a single problem found in a declaration
type Issue struct {
	FromLinter string `json:"FromLinter"` // "twlint"
	Severity   string `json:"Severity"`   // "warning", "error"
	Key        string `json:"Key"`        // "theme.extend.colors.green.600"
	Text       string `json:"Text"`       // "value \"#16a34\" is not a colour"
	Source     string `json:"Source"`     // declaration path, "" for in-memory input
}

// LinterName is the FromLinter value of every issue produced by Check.
const LinterName = "twlint"

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Issue texts
const (
	IssueEmptyContent     = "no content patterns; the framework will not scan any files"
	IssueInvalidGlob      = "invalid glob pattern %q"
	IssueUnmatchedGlob    = "pattern %q matches no files"
	IssueInvalidColor     = "invalid colour value: %v"
	IssueEmptyFamily      = "colour family %q declares no shades"
	IssueEmptyPlugin      = "empty plugin reference"
	IssueDuplicatePlugin  = "plugin %q is already registered at plugins[%d]"
	IssueUnknownKey       = "key %q is not part of the declaration schema and is ignored"
	IssueExcludeOnlyGlobs = "content only contains exclusions"
)
