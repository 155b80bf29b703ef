// Package matrix: free-text → Matrix parsing.
//
// The accepted format is one matrix row per non-blank line, values separated
// by commas or whitespace. Comma takes precedence: if a line contains at
// least one comma it is split on commas (ignoring surrounding spaces and
// empty cells), otherwise on whitespace fields.

package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// infinity glyph accepted by the parser in addition to the spelled tokens.
const infGlyph = "∞"

// Parse converts a delimited text block into a validated Matrix.
//
// Behavior highlights:
//
//   - Blank lines (including whitespace-only) are skipped entirely.
//   - "inf", "infinity" and "∞" (case-insensitive) parse as +Inf.
//   - Any other token must be a valid float64 literal; otherwise Parse
//     returns ErrBadToken naming the 1-based row, 1-based column and the
//     raw token. Positions are 1-based here because parser messages speak
//     about text lines, not matrix indices.
//   - A non-square parse (rows of differing lengths) is reported as
//     ErrRaggedRows, distinctly from any validator failure.
//   - The parsed grid is then passed through Validate; its sentinel errors
//     propagate unchanged.
//
// Parse is a pure function of its input text: no I/O, no shared state.
// Complexity: O(len(text)) tokenization + O(N²) validation.
func Parse(text string) (Matrix, error) {
	// Stage 1: collect non-blank lines; each becomes one matrix row.
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	if len(lines) == 0 {
		return nil, ErrNoData
	}

	// Stage 2: tokenize each line and parse every value.
	m := make(Matrix, 0, len(lines))
	var (
		i, j   int
		line   string
		tokens []string
		tok    string
		v      float64
		err    error
	)
	for i, line = range lines {
		tokens = splitRow(line)
		row := make([]float64, 0, len(tokens))
		for j, tok = range tokens {
			v, err = parseWeight(tok)
			if err != nil {
				return nil, fmt.Errorf("%w at row %d, column %d: %q", ErrBadToken, i+1, j+1, tok)
			}
			row = append(row, v)
		}
		m = append(m, row)
	}

	// Stage 3: shape check — distinct from Validate so callers can tell a
	// ragged text block apart from a weight-domain violation.
	n := len(m)
	for i = range m {
		if len(m[i]) != n {
			return nil, fmt.Errorf("%w: row %d has %d values, expected %d", ErrRaggedRows, i+1, len(m[i]), n)
		}
	}

	// Stage 4: delegate the weight-domain checks to the validator.
	if err = Validate(m); err != nil {
		return nil, err
	}

	return m, nil
}

// splitRow tokenizes a single line. Comma-separated if any comma is present
// on the line (empty cells and padding spaces dropped), whitespace-separated
// otherwise.
func splitRow(line string) []string {
	if !strings.Contains(line, ",") {
		return strings.Fields(line)
	}
	parts := strings.Split(line, ",")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tokens = append(tokens, p)
		}
	}

	return tokens
}

// parseWeight converts one token to float64, recognizing the infinity
// spellings first and falling back to strconv.ParseFloat.
func parseWeight(tok string) (float64, error) {
	switch strings.ToLower(tok) {
	case "inf", "infinity", infGlyph:
		return math.Inf(1), nil
	}

	return strconv.ParseFloat(tok, 64)
}
