package measure

import (
	"encoding/csv"
	"fmt"
	"os"
)

// CSVDialect selects the header layout WriteCSV emits.
type CSVDialect int

const (
	// DefaultDialect emits three header rows: feature names, value names,
	// units.
	DefaultDialect CSVDialect = iota
	// SimpleDialect emits a single header row:
	// "ObjectID, FeatureName ValueName (units), ...".
	SimpleDialect
)

// CSVCharset selects how units render: ASCII-only or UTF-8 (micro sign,
// superscripts).
type CSVCharset int

const (
	// ASCIICharset renders units with plain ASCII approximations.
	ASCIICharset CSVCharset = iota
	// UnicodeCharset renders units with their native UTF-8 glyphs.
	UnicodeCharset
)

// CSVOptions configures WriteCSV.
type CSVOptions struct {
	Dialect CSVDialect
	Charset CSVCharset
}

// DefaultCSVOptions returns the default dialect, ASCII charset options.
func DefaultCSVOptions() CSVOptions {
	return CSVOptions{Dialect: DefaultDialect, Charset: ASCIICharset}
}

func unitString(u interface{ String() string }, charset CSVCharset) string {
	s := u.String()
	if charset == ASCIICharset {
		s = asciiFold(s)
	}
	return s
}

func asciiFold(s string) string {
	replacer := map[rune]string{
		'µ': "u", '²': "2", '³': "3", '⁰': "0", '¹': "1", '⁴': "4",
		'⁵': "5", '⁶': "6", '⁷': "7", '⁸': "8", '⁹': "9", '⁻': "-", '·': ".",
	}
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if rep, ok := replacer[r]; ok {
			out = append(out, []rune(rep)...)
			continue
		}
		out = append(out, r)
	}
	return string(out)
}

// WriteCSV writes m to filename per opts. Unrecognised combinations of
// CSVOptions never occur in this API (the fields are closed enums), so the
// only failure category this surfaces is ErrIO on file-open/write failure;
// a genuinely unrecognised option value (out-of-range enum from an
// unchecked cast at a calling boundary) is reported as ErrInvalidFlag.
func WriteCSV(m *Measurement, filename string, opts CSVOptions) error {
	if opts.Dialect != DefaultDialect && opts.Dialect != SimpleDialect {
		return fmt.Errorf("WriteCSV: %w", ErrInvalidFlag)
	}
	if opts.Charset != ASCIICharset && opts.Charset != UnicodeCharset {
		return fmt.Errorf("WriteCSV: %w", ErrInvalidFlag)
	}
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("WriteCSV: %w: %v", ErrIO, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if opts.Dialect == SimpleDialect {
		if err := writeSimpleHeader(w, m, opts.Charset); err != nil {
			return fmt.Errorf("WriteCSV: %w", ErrIO)
		}
	} else {
		if err := writeDefaultHeader(w, m, opts.Charset); err != nil {
			return fmt.Errorf("WriteCSV: %w", ErrIO)
		}
	}

	for _, id := range m.objectIDs {
		row, _ := m.Row(id)
		record := make([]string, 0, m.totalCols+1)
		record = append(record, fmt.Sprintf("%d", id))
		for _, v := range row {
			record = append(record, fmt.Sprintf("%g", v))
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("WriteCSV: %w", ErrIO)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("WriteCSV: %w: %v", ErrIO, err)
	}
	return nil
}

func writeSimpleHeader(w *csv.Writer, m *Measurement, charset CSVCharset) error {
	header := []string{"ObjectID"}
	for _, rec := range m.features {
		for i, vn := range rec.ValueNames {
			u := rec.Units[i]
			header = append(header, fmt.Sprintf("%s %s (%s)", rec.Name, vn, unitString(u, charset)))
		}
	}
	return w.Write(header)
}

func writeDefaultHeader(w *csv.Writer, m *Measurement, charset CSVCharset) error {
	names := []string{"ObjectID"}
	values := []string{""}
	unitsRow := []string{""}
	for _, rec := range m.features {
		for i, vn := range rec.ValueNames {
			if i == 0 {
				names = append(names, rec.Name)
			} else {
				names = append(names, "")
			}
			values = append(values, vn)
			unitsRow = append(unitsRow, unitString(rec.Units[i], charset))
		}
	}
	if err := w.Write(names); err != nil {
		return err
	}
	if err := w.Write(values); err != nil {
		return err
	}
	return w.Write(unitsRow)
}
