package render

import (
	"fmt"
	"strings"

	"github.com/matzehuels/cratescout/pkg/integrations/github"
)

// Column widths, sized for typical github.com repository URLs.
const (
	indexWidth = 5
	nameWidth  = 51

	// Rule lengths for the two layouts. They follow the expected column
	// widths, not the rendered content.
	ruleWidth     = 110
	ruleWidthName = 56
)

// Column headers.
const (
	headerIndex       = "#"
	headerName        = "Name"
	headerDescription = "Description"
)

// TableOption configures [Table].
type TableOption func(*tableRenderer)

type tableRenderer struct {
	description bool
}

// WithoutDescription drops the Description column.
func WithoutDescription() TableOption {
	return func(r *tableRenderer) { r.description = false }
}

// Table renders res as a fixed-width text table. The output always holds a
// header line and a rule line followed by one line per match, each ending in
// a newline. A nil or empty result renders the header and rule only.
//
// Cells are left-justified and padded to their column width. Content wider
// than its column overflows into the next column; nothing is truncated.
// Descriptions are flattened onto one line. Trailing spaces are trimmed from
// every line.
func Table(res *github.SearchResult, opts ...TableOption) string {
	r := &tableRenderer{description: true}
	for _, opt := range opts {
		opt(r)
	}

	var b strings.Builder
	r.writeRow(&b, headerIndex, headerName, headerDescription)
	if r.description {
		b.WriteString(strings.Repeat("-", ruleWidth))
	} else {
		b.WriteString(strings.Repeat("-", ruleWidthName))
	}
	b.WriteByte('\n')

	if res == nil {
		return b.String()
	}
	for i, m := range res.Matches {
		r.writeRow(&b, fmt.Sprint(i), m.URL, cell(m.Description))
	}
	return b.String()
}

func (r *tableRenderer) writeRow(b *strings.Builder, index, name, description string) {
	line := pad(index, indexWidth) + pad(name, nameWidth)
	if r.description {
		line += description
	}
	b.WriteString(strings.TrimRight(line, " "))
	b.WriteByte('\n')
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ")

// cell flattens s onto one line and trims surrounding whitespace so a row
// never spans more than one line.
func cell(s string) string {
	return strings.TrimSpace(lineBreaks.Replace(s))
}

// pad left-justifies s in a column of width w. Content that does not fit is
// kept whole and followed by a single space so columns stay separated.
func pad(s string, w int) string {
	if n := len([]rune(s)); n < w {
		return s + strings.Repeat(" ", w-n)
	}
	return s + " "
}
