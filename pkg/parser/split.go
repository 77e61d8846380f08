package parser

import "strings"

// splitBodyFooters partitions the text after the header line into free-form
// body text and the trailing block of footer lines.
//
// Lines are scanned from the end backward, accumulating candidate footers:
//
//   - A blank line does not itself break accumulation, but once at least one
//     footer has been confirmed, a blank line that is not the very last line
//     scanned stops the scan; the blank line and everything above it become
//     body. This keeps a footer-shaped line floating inside an earlier
//     paragraph out of the footer block.
//   - A non-blank line that matches neither footer grammar always stops the
//     scan immediately; that line and everything above it is body.
//   - No candidates at all means the whole text is body.
//
// In strict mode a non-footer line sitting directly inside the trailing
// footer block (no blank line between it and a confirmed footer) is an
// error instead of body text.
func splitBodyFooters(rest string, strict bool) (string, []string, error) {
	lines := strings.Split(rest, "\n")
	n := len(lines)

	var reversed []string
	stop := -1 // index of the last line belonging to the body

	for i := n - 1; i >= 0; i-- {
		line := lines[i]
		if strings.TrimSpace(line) == "" {
			if len(reversed) > 0 && i != n-1 {
				stop = i
				break
			}
			continue
		}
		if _, ok := parseFooterLine(line); ok {
			reversed = append(reversed, line)
			continue
		}
		if strict && len(reversed) > 0 {
			return "", nil, &InvalidFooterLineError{Line: line}
		}
		stop = i
		break
	}

	body := joinBody(lines[:stop+1])

	// Restore top-to-bottom order.
	footers := make([]string, 0, len(reversed))
	for i := len(reversed) - 1; i >= 0; i-- {
		footers = append(footers, reversed[i])
	}
	return body, footers, nil
}

// joinBody joins body lines in original order, trimming trailing blank lines
// while preserving internal paragraph separators verbatim.
func joinBody(lines []string) string {
	end := len(lines)
	for end > 0 && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return strings.Join(lines[:end], "\n")
}
