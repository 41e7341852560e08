package morphgen

import (
	"encoding/json"
	"strings"
	"unicode/utf8"
)

// TableFormat selects the table renderer.
type TableFormat string

const (
	// FormatPretty renders a fixed-width Unicode box-drawing table.
	FormatPretty TableFormat = "pretty"
	// FormatJSON renders a {columns, rows, total_rows} object.
	FormatJSON TableFormat = "json"
)

// errorCell is rendered in place of a cell whose generation failed.
const errorCell = "—" // em dash

// tableColumn is one column descriptor in the JSON table payload.
type tableColumn struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// tableJSON is the machine-readable table payload.
type tableJSON struct {
	Columns   []tableColumn `json:"columns"`
	Rows      [][]string    `json:"rows"`
	TotalRows int           `json:"total_rows"`
}

// Table renders the lexeme × feature-combination grid for the given
// paradigm columns.
//
// A nil subset selects every lexeme; a non-nil subset keeps only the
// named lemmas, in lexicon order (an empty non-nil subset selects
// none). When either the selected lexemes or the paradigm is empty,
// the pretty format returns "" and the JSON format an object with
// empty columns and rows. A cell whose generation fails renders as an
// em dash; one bad cell never aborts its row or the table.
func (m *Morphology) Table(paradigm []ParadigmEntry, subset []string, format TableFormat) (string, error) {
	selected := m.lexicon.selectLemmas(subset)
	if len(selected) == 0 || len(paradigm) == 0 {
		if format == FormatJSON {
			return marshalTable(tableJSON{Columns: []tableColumn{}, Rows: [][]string{}})
		}
		return "", nil
	}

	header := make([]string, 0, len(paradigm)+1)
	header = append(header, "Lemma")
	for _, p := range paradigm {
		header = append(header, p.Label)
	}

	rows := make([][]string, 0, len(selected))
	for _, lemma := range selected {
		lex, _ := m.lexicon.Lookup(lemma)
		row := make([]string, 0, len(header))
		row = append(row, lemma)
		for _, p := range paradigm {
			cell, err := m.generator.Generate(lex, p.Features)
			if err != nil {
				cell = errorCell
			}
			row = append(row, cell)
		}
		rows = append(rows, row)
	}

	if format == FormatJSON {
		cols := make([]tableColumn, len(header))
		for i, h := range header {
			cols[i] = tableColumn{Name: columnName(h), Type: "string"}
		}
		return marshalTable(tableJSON{Columns: cols, Rows: rows})
	}
	return prettyTable(header, rows), nil
}

// AutoTable renders the table for the paradigm inferred from the
// morphology's own rule set.
func (m *Morphology) AutoTable(subset []string, format TableFormat) (string, error) {
	return m.Table(m.Paradigm(), subset, format)
}

// columnName derives a JSON column name from a header label:
// lower-cased, spaces replaced with underscores.
func columnName(header string) string {
	return strings.ReplaceAll(strings.ToLower(header), " ", "_")
}

func marshalTable(t tableJSON) (string, error) {
	t.TotalRows = len(t.Rows)
	b, err := json.Marshal(t)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// prettyTable renders header and rows as a fixed-width box-drawing
// table. Each column is as wide as its widest content, measured in
// runes, and a rule line separates the header from the data.
func prettyTable(header []string, rows [][]string) string {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if n := utf8.RuneCountInString(cell); n > widths[i] {
				widths[i] = n
			}
		}
	}

	var b strings.Builder
	writeRule := func(left, mid, right string) {
		b.WriteString(left)
		for i, w := range widths {
			if i > 0 {
				b.WriteString(mid)
			}
			b.WriteString(strings.Repeat("─", w+2))
		}
		b.WriteString(right)
		b.WriteByte('\n')
	}
	writeRow := func(cells []string) {
		b.WriteString("│")
		for i, cell := range cells {
			pad := widths[i] - utf8.RuneCountInString(cell)
			b.WriteString(" ")
			b.WriteString(cell)
			b.WriteString(strings.Repeat(" ", pad))
			b.WriteString(" │")
		}
		b.WriteByte('\n')
	}

	writeRule("┌", "┬", "┐")
	writeRow(header)
	writeRule("├", "┼", "┤")
	for _, row := range rows {
		writeRow(row)
	}
	writeRule("└", "┴", "┘")
	return b.String()
}
