package twind

// Issue represents a single catalog drift finding in golangci-lint format
type Issue struct {
	FromLinter  string   `json:"FromLinter"`  // "twindcheck"
	Text        string   `json:"Text"`        // "color catalog is out of date: ..."
	Severity    string   `json:"Severity"`    // "", "warning", "error"
	SourceLines []string `json:"SourceLines"` // Lines of generated code involved
	Pos         IssuePos `json:"Pos"`         // File location
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"` // "colors.gen.go"
	Line     int    `json:"Line"`     // 35
	Column   int    `json:"Column"`   // 1-based
}

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = ""
)

// Issue text templates matching checker categories
const (
	IssueMissingCatalog = "generated color catalog %s does not exist; run twind generate"
	IssueStaleCatalog   = "generated color catalog %s is out of date; run twind generate"
	IssueExtraLines     = "generated color catalog %s has %d trailing lines not produced by the generator"
)
