package util

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors used throughout gridview
var (
	ErrNoDatabaseURL   = errors.New("no database URL configured")
	ErrViewDefNotFound = errors.New("view definition file not found")
	ErrEmptySource     = errors.New("source contains no records")
	ErrUnsupportedFile = errors.New("unsupported file format (expected .json, .yaml or .yml)")
)

// GridError is a structured error with context and suggestions
type GridError struct {
	Title       string   // Short error title
	Message     string   // Detailed message
	Context     string   // What was being attempted
	Causes      []string // Possible causes
	Suggestions []string // Actionable suggestions with commands
	Err         error    // Wrapped error
}

func (e *GridError) Error() string {
	return e.Title
}

func (e *GridError) Unwrap() error {
	return e.Err
}

// Format returns a nicely formatted error message
func (e *GridError) Format() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Error: %s\n", e.Title))

	if e.Message != "" {
		sb.WriteString(fmt.Sprintf("\n  %s\n", e.Message))
	}
	if e.Context != "" {
		sb.WriteString(fmt.Sprintf("\n  %s\n", e.Context))
	}

	if len(e.Causes) > 0 {
		sb.WriteString("\n  Possible causes:\n")
		for _, cause := range e.Causes {
			sb.WriteString(fmt.Sprintf("    • %s\n", cause))
		}
	}

	if len(e.Suggestions) > 0 {
		sb.WriteString("\n  Try:\n")
		for _, sug := range e.Suggestions {
			sb.WriteString(fmt.Sprintf("    $ %s\n", sug))
		}
	}

	return sb.String()
}

// NewError creates a new GridError
func NewError(title string) *GridError {
	return &GridError{Title: title}
}

// WithMessage adds a detailed message
func (e *GridError) WithMessage(msg string) *GridError {
	e.Message = msg
	return e
}

// WithContext adds context about what was being attempted
func (e *GridError) WithContext(ctx string) *GridError {
	e.Context = ctx
	return e
}

// WithCauses adds possible causes
func (e *GridError) WithCauses(causes ...string) *GridError {
	e.Causes = append(e.Causes, causes...)
	return e
}

// WithSuggestion adds an actionable suggestion
func (e *GridError) WithSuggestion(sug string) *GridError {
	e.Suggestions = append(e.Suggestions, sug)
	return e
}

// WithSuggestions adds multiple suggestions
func (e *GridError) WithSuggestions(sugs ...string) *GridError {
	e.Suggestions = append(e.Suggestions, sugs...)
	return e
}

// Wrap wraps an underlying error
func (e *GridError) Wrap(err error) *GridError {
	e.Err = err
	return e
}

// ══════════════════════════════════════════════════════════════════════════
// Pre-built error constructors for common cases
// ══════════════════════════════════════════════════════════════════════════

// DatabaseConnectionError returns a structured error for DB connection issues
func DatabaseConnectionError(url string, err error) *GridError {
	return NewError("Cannot connect to database").
		WithContext(url).
		WithCauses(
			"Database server is not running",
			"Invalid connection credentials",
			"Network connectivity issues",
		).
		WithSuggestions(
			"gridview config set database.url <url>   # Store a working URL",
			"gridview query --url <url> \"...\"         # Override for one call",
		).
		Wrap(err)
}

// NoDatabaseURLError returns a structured error when no connection URL is known
func NoDatabaseURLError() *GridError {
	return NewError("No database URL configured").
		WithMessage("A Postgres connection URL is needed to run queries").
		WithSuggestions(
			"gridview query --url postgres://... \"SELECT ...\"",
			"gridview config set database.url postgres://...",
			"echo DATABASE_URL=postgres://... >> .env",
		)
}

// SourceFormatError returns a structured error for unreadable record files
func SourceFormatError(path string, err error) *GridError {
	return NewError("Cannot read records from file").
		WithContext(path).
		WithCauses(
			"The file is not a JSON array or YAML sequence of objects",
			"The file is truncated or malformed",
		).
		WithSuggestion("gridview view --help   # See the expected file shapes").
		Wrap(err)
}

// ViewDefError returns a structured error for a bad view definition
func ViewDefError(path string, err error) *GridError {
	return NewError("Invalid view definition").
		WithContext(path).
		WithCauses(
			"A column is missing its key",
			"Two columns share the same key",
		).
		Wrap(err)
}

// FetchFailedError returns a structured error for an unreachable endpoint
func FetchFailedError(url string, err error) *GridError {
	return NewError("Cannot fetch records").
		WithContext(url).
		WithCauses(
			"The endpoint is unreachable",
			"The response is not a JSON array or page envelope",
		).
		Wrap(err)
}

// MissingArgumentError returns an error for missing required argument
func MissingArgumentError(argName, example string) *GridError {
	e := NewError(fmt.Sprintf("Missing required argument: <%s>", argName))
	if example != "" {
		e.WithSuggestion(example)
	}
	return e
}
