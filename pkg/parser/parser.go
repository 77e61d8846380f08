package parser

import (
	"strings"

	"github.com/leapstack-labs/convy/pkg/commit"
)

// Options control optional parser behavior.
type Options struct {
	// StrictFooters rejects a non-footer line found inside the trailing
	// footer block with InvalidFooterLineError instead of reclassifying it
	// as body text.
	StrictFooters bool
}

// Parse parses a raw commit message with default options.
func Parse(input string) (*commit.Message, error) {
	return ParseWithOptions(input, Options{})
}

// ParseWithOptions parses a raw commit message into a structured Message.
// The pipeline is purely functional over its input: one call, one result,
// no state retained between calls.
func ParseWithOptions(input string, opts Options) (*commit.Message, error) {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	if strings.TrimSpace(input) == "" {
		return nil, ErrMissingHeaderLine
	}

	headerLine, rest, _ := strings.Cut(input, "\n")
	h, err := parseHeader(headerLine)
	if err != nil {
		return nil, err
	}

	msg := &commit.Message{
		Type:        h.commitType,
		Scope:       h.scope,
		Description: h.description,
		Breaking:    h.breaking,
	}

	// Drop the blank line(s) separating the header from the body before
	// handing the remainder to the splitter.
	rest = strings.TrimLeft(rest, "\n")
	if rest == "" {
		return msg, nil
	}

	body, footerLines, err := splitBodyFooters(rest, opts.StrictFooters)
	if err != nil {
		return nil, err
	}
	msg.Body = body

	for _, line := range footerLines {
		f, ok := parseFooterLine(line)
		if !ok {
			continue
		}
		msg.Footers = appendFooter(msg.Footers, f)
	}

	return msg, nil
}
