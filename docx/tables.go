package docx

import (
	"fmt"
	"strconv"

	"github.com/tsawler/docstruct/model"
)

// extractTable converts a table element into rows of cells. Each cell
// carries its paragraphs and merge metadata; nested tables inside
// cells are not extracted.
func extractTable(t *tableXML) *model.Table {
	table := model.NewTable(extractTableProperties(t.Properties))

	for i := range t.Rows {
		row := model.NewRow()
		for j := range t.Rows[i].Cells {
			row.Cells = append(row.Cells, extractCell(&t.Rows[i].Cells[j]))
		}
		table.AddRow(row)
	}

	return table
}

// extractTableProperties reads the table width and alignment. Width
// type pct is stored in fiftieths of a percent; dxa widths are twips.
// A malformed or unrecognized width declaration is omitted.
func extractTableProperties(props tablePropsXML) model.TableProperties {
	var tp model.TableProperties

	if w := props.Width; w != nil {
		switch w.Type {
		case "pct":
			if v, err := strconv.ParseFloat(w.W, 64); err == nil {
				tp.Width = fmt.Sprintf("%.2f%%", v/50)
			}
		case "dxa":
			if v, err := strconv.ParseFloat(w.W, 64); err == nil {
				tp.Width = fmt.Sprintf("%.2fin", v/1440)
			}
		}
	}

	if props.Justification != nil {
		tp.Alignment = props.Justification.Val
	}

	return tp
}

// extractCell converts a table cell: its paragraphs (via the same
// paragraph extraction used for body content) plus merge metadata.
func extractCell(cell *tableCellXML) model.Cell {
	content := make([]*model.Paragraph, 0, len(cell.Paragraphs))
	for i := range cell.Paragraphs {
		content = append(content, extractParagraph(&cell.Paragraphs[i]))
	}

	var props model.CellProperties
	if gs := cell.Properties.GridSpan; gs != nil {
		if span, err := strconv.Atoi(gs.Val); err == nil && span > 0 {
			props.GridSpan = span
		}
	}
	if vm := cell.Properties.VMerge; vm != nil {
		if vm.Val == "" {
			// OOXML's default for a bare vMerge element.
			props.VerticalMerge = "continue"
		} else {
			props.VerticalMerge = vm.Val
		}
	}

	return model.Cell{Content: content, Properties: props}
}
