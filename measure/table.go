package measure

import (
	"fmt"
	"strings"
)

const minColumnWidth = 10

// String renders m as a fixed-width text table: object id column, then one
// column per value, with a feature name centred across its value span, a
// value-name sub-header, and a units sub-header.
func (m *Measurement) String() string {
	if !m.forged || len(m.objectIDs) == 0 {
		return ""
	}
	widths := make([]int, m.totalCols)
	col := 0
	for _, rec := range m.features {
		for i, vn := range rec.ValueNames {
			w := len(vn)
			if uw := len(rec.Units[i].String()) + 2; uw > w {
				w = uw
			}
			if w < minColumnWidth {
				w = minColumnWidth
			}
			widths[col] = w
			col++
		}
	}

	var b strings.Builder
	idWidth := len("ObjectID")

	// Feature-name header, centred across its span.
	b.WriteString(pad("", idWidth))
	col = 0
	for _, rec := range m.features {
		span := 0
		for i := 0; i < rec.Width(); i++ {
			span += widths[col+i] + 1
		}
		span-- // drop trailing separator
		b.WriteString(" ")
		b.WriteString(centre(rec.Name, span))
		col += rec.Width()
	}
	b.WriteString("\n")

	// Value-name sub-header.
	b.WriteString(pad("ObjectID", idWidth))
	col = 0
	for _, rec := range m.features {
		for _, vn := range rec.ValueNames {
			b.WriteString(" ")
			b.WriteString(pad(vn, widths[col]))
			col++
		}
	}
	b.WriteString("\n")

	// Units sub-header.
	b.WriteString(pad("", idWidth))
	col = 0
	for _, rec := range m.features {
		for i := range rec.ValueNames {
			b.WriteString(" ")
			b.WriteString(pad("("+rec.Units[i].String()+")", widths[col]))
			col++
		}
	}
	b.WriteString("\n")

	for _, id := range m.objectIDs {
		row, _ := m.Row(id)
		b.WriteString(pad(fmt.Sprintf("%d", id), idWidth))
		for i, v := range row {
			b.WriteString(" ")
			b.WriteString(pad(fmt.Sprintf("%.4e", v), widths[i]))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func centre(s string, width int) string {
	if len(s) >= width {
		return s
	}
	total := width - len(s)
	left := total / 2
	right := total - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}
