package parser

import (
	"errors"
	"fmt"
)

// Structural errors surfaced while parsing. They are returned as data and
// never wrapped in a panic; the caller decides presentation and exit
// behavior.
var (
	// ErrMissingHeaderLine is returned when the message is empty or contains
	// only whitespace.
	ErrMissingHeaderLine = errors.New("commit message has no header line")

	// ErrMissingCommitType is returned when no text precedes the first
	// structural delimiter of the header.
	ErrMissingCommitType = errors.New("commit type is missing from the header")

	// ErrMissingDescription is returned when the header carries no
	// ": description" part, or the description is empty after trimming.
	ErrMissingDescription = errors.New("description is missing from the header")
)

// InvalidFooterLineError reports a line inside the trailing footer block that
// matches neither accepted footer grammar. Produced only when strict footer
// validation is enabled; the default policy reclassifies such lines as body.
type InvalidFooterLineError struct {
	Line string
}

func (e *InvalidFooterLineError) Error() string {
	return fmt.Sprintf("invalid footer line: %q", e.Line)
}
