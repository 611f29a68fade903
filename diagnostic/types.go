package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"tag-reviver/internal/common"
)

// Codes identifying each kind of diagnostic.
const (
	CodeUnknownAlias         = "unknown-alias"
	CodeTypeResolution       = "type-resolution"
	CodeMalformedLiteral     = "malformed-literal"
	CodeUnsupportedExtension = "unsupported-extension"
	CodeInvalidMerge         = "invalid-merge"
	CodeDisallowed           = "disallowed"
	CodeDepthExceeded        = "depth-exceeded"

	CodeLegacyHook       = "legacy-hook"
	CodeDroppedAttribute = "dropped-attribute"
	CodeFallback         = "fallback"
)

var (
	ErrUnknownAlias         = errors.New("unknown alias")
	ErrTypeResolution       = errors.New("cannot resolve type")
	ErrMalformedLiteral     = errors.New("malformed literal")
	ErrUnsupportedExtension = errors.New("unsupported extension")
	ErrInvalidMerge         = errors.New("invalid merge")
	ErrDisallowed           = errors.New("disallowed")
	ErrDepthExceeded        = errors.New("maximum depth exceeded")
)

var codeBySentinel = map[error]string{
	ErrUnknownAlias:         CodeUnknownAlias,
	ErrTypeResolution:       CodeTypeResolution,
	ErrMalformedLiteral:     CodeMalformedLiteral,
	ErrUnsupportedExtension: CodeUnsupportedExtension,
	ErrInvalidMerge:         CodeInvalidMerge,
	ErrDisallowed:           CodeDisallowed,
	ErrDepthExceeded:        CodeDepthExceeded,
}

// CodeOf returns the code of the first sentinel err wraps, or an empty string.
func CodeOf(err error) string {
	for sentinel, code := range codeBySentinel {
		if errors.Is(err, sentinel) {
			return code
		}
	}

	return ""
}

// Diagnostics holds the non-fatal diagnostics of one decode pass.
type Diagnostics struct {
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Tag is the tag of the node being revived (if any).
	Tag string
	// Anchor is the anchor of the node being revived (if any).
	Anchor string
	// Path locates the node from the document root, e.g. "$.items[2].name".
	Path string
	// Position is the "line:column" of the node when the parser reported one.
	Position string
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(diag Diagnostic) {
	diag.Severity = DiagnosticWarning
	d.Warnings = append(d.Warnings, diag)
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(diag Diagnostic) {
	diag.Severity = DiagnosticInfo
	d.Infos = append(d.Infos, diag)
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// Reset drops every collected diagnostic.
func (d *Diagnostics) Reset() {
	d.Warnings = nil
	d.Infos = nil
}

// Count returns the number of diagnostics carrying code.
func (d Diagnostics) Count(code string) int {
	n := 0
	for _, list := range [][]Diagnostic{d.Warnings, d.Infos} {
		for _, diag := range list {
			if diag.Code == code {
				n++
			}
		}
	}

	return n
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Path != "" {
		prefix = append(prefix, d.Path)
	}

	if d.Position != "" {
		prefix = append(prefix, "("+d.Position+")")
	}

	if d.Tag != "" {
		prefix = append(prefix, "["+d.Tag+"]")
	}

	if d.Anchor != "" {
		prefix = append(prefix, "&"+d.Anchor)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(d.Suggestions, ", ") + "?)"
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
