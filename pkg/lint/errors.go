package lint

import (
	"errors"
	"fmt"
	"strings"
)

// Breaking-change correlation errors.
var (
	// ErrMissingBreakingChangeFooter is returned when the header declares a
	// breaking change with '!' but no BREAKING-CHANGE footer documents it.
	ErrMissingBreakingChangeFooter = errors.New(
		"header declares a breaking change with '!' but no BREAKING-CHANGE footer is present")

	// ErrBreakingChangeFooterWithoutMarker is returned when a
	// BREAKING-CHANGE footer is present but the header carries no '!'
	// marker. This check is unconditional.
	ErrBreakingChangeFooterWithoutMarker = errors.New(
		"a BREAKING-CHANGE footer is present but the header has no '!' marker")
)

// InvalidTypeError reports a commit type outside the configured allow-list.
type InvalidTypeError struct {
	Type    string
	Allowed []string
}

func (e *InvalidTypeError) Error() string {
	return fmt.Sprintf("invalid commit type %q (allowed: %s)",
		e.Type, strings.Join(e.Allowed, ", "))
}
