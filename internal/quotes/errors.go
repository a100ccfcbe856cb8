package quotes

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrSourceNotFound indicates the source file is missing or unreadable.
	ErrSourceNotFound = errors.New("quote source not found")

	// ErrNoIngestor indicates that no registered ingestor handles the path.
	ErrNoIngestor = errors.New("no ingestor found")

	// ErrEmptyLine is returned by Normalize for lines without any content.
	ErrEmptyLine = errors.New("empty quote line")

	// ErrMalformedLine is returned by Normalize for lines that cannot be split into body and author.
	ErrMalformedLine = errors.New("malformed quote line")

	// ErrMalformedSource indicates the file exists but its structure is unusable (e.g. CSV without required columns).
	ErrMalformedSource = errors.New("malformed quote source")

	// ErrExternalTool indicates the PDF text converter failed.
	ErrExternalTool = errors.New("external tool failed")
)

// SourceNotFoundError reports a missing or unreadable source file.
type SourceNotFoundError struct {
	Path string
	Err  error
}

func (e *SourceNotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot find file %s: %v", e.Path, e.Err)
	}
	return "cannot find file " + e.Path
}

func (e *SourceNotFoundError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrSourceNotFound}
	}
	return []error{ErrSourceNotFound, e.Err}
}

// NoIngestorError reports a path whose extension no ingestor recognizes.
type NoIngestorError struct {
	Path string
}

func (e *NoIngestorError) Error() string {
	return "cannot find ingestor for " + e.Path
}

func (e *NoIngestorError) Unwrap() error {
	return ErrNoIngestor
}

// MalformedLineError carries the cleaned line that had no body/author split.
type MalformedLineError struct {
	Line string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("malformed quote line %q: expected \"body - author\"", e.Line)
}

func (e *MalformedLineError) Unwrap() error {
	return ErrMalformedLine
}

// ParseError reports a structurally invalid source.
type ParseError struct {
	Path   string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("parse %s: %s", e.Path, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrMalformedSource}
	}
	return []error{ErrMalformedSource, e.Err}
}

// ExternalToolError reports a failed text-extraction subprocess.
type ExternalToolError struct {
	Tool   string
	Path   string
	Output string
	Err    error
}

func (e *ExternalToolError) Error() string {
	msg := fmt.Sprintf("%s failed for %s: %v", e.Tool, e.Path, e.Err)
	if e.Output != "" {
		msg += " (" + e.Output + ")"
	}
	return msg
}

func (e *ExternalToolError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrExternalTool}
	}
	return []error{ErrExternalTool, e.Err}
}
