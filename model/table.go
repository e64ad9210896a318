package model

import (
	"encoding/json"
	"strings"
)

// Table represents a table as ordered rows of cells.
type Table struct {
	Properties TableProperties `json:"properties"`
	Rows       []Row           `json:"rows"`
}

// NewTable creates an empty table with the given properties and a
// non-nil row list.
func NewTable(props TableProperties) *Table {
	return &Table{
		Properties: props,
		Rows:       make([]Row, 0),
	}
}

func (t *Table) Type() ElementType { return ElementTable }

// MarshalJSON emits the table with its "type" discriminator first.
func (t *Table) MarshalJSON() ([]byte, error) {
	type alias Table
	return json.Marshal(struct {
		Type ElementType `json:"type"`
		*alias
	}{t.Type(), (*alias)(t)})
}

// AddRow appends a row to the table.
func (t *Table) AddRow(row Row) {
	t.Rows = append(t.Rows, row)
}

// RowCount returns the number of rows.
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// GetText returns a plain text rendering of the table, cells joined
// by tabs and rows by newlines.
func (t *Table) GetText() string {
	var sb strings.Builder
	for i, row := range t.Rows {
		if i > 0 {
			sb.WriteString("\n")
		}
		for j, cell := range row.Cells {
			if j > 0 {
				sb.WriteString("\t")
			}
			for k, para := range cell.Content {
				if k > 0 {
					sb.WriteString(" ")
				}
				sb.WriteString(para.Text)
			}
		}
	}
	return sb.String()
}

// TableProperties holds table-level properties. Width is either a
// percentage string ("50.00%") or an inch string ("6.50in") depending
// on how the source declares it.
type TableProperties struct {
	Width     string `json:"width,omitempty"`
	Alignment string `json:"alignment,omitempty"`
}

// Row is one table row.
type Row struct {
	Cells []Cell `json:"cells"`
}

// NewRow creates a row with a non-nil cell list.
func NewRow() Row {
	return Row{Cells: make([]Cell, 0)}
}

// Cell holds a cell's paragraphs and merge metadata. Nested tables
// inside cells are not modeled.
type Cell struct {
	Content    []*Paragraph   `json:"content"`
	Properties CellProperties `json:"properties"`
}

// CellProperties records cell merges. GridSpan is the horizontal span
// count (absent means 1). VerticalMerge is "restart" for the first
// cell of a vertical merge and "continue" for the cells it spans;
// a vMerge element with no value means "continue", mirroring OOXML's
// own default.
type CellProperties struct {
	GridSpan      int    `json:"gridSpan,omitempty"`
	VerticalMerge string `json:"verticalMerge,omitempty"`
}
