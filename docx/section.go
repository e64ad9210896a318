package docx

import (
	"fmt"
	"strconv"

	"github.com/tsawler/docstruct/model"
)

// Default page geometry (US Letter, one-inch margins) used when the
// document declares no sections.
const (
	defaultPageWidth  = "8.50in"
	defaultPageHeight = "11.00in"
	defaultMargin     = "1.00in"
)

// PageSize returns the page dimensions from the first section's
// properties. It never fails: missing sections or malformed values
// degrade to US Letter defaults.
func (r *Reader) PageSize() model.PageSize {
	size := model.PageSize{
		Width:  defaultPageWidth,
		Height: defaultPageHeight,
	}

	sect := r.firstSectPr()
	if sect == nil || sect.PgSz == nil {
		return size
	}

	size.Width = twipsToInches(sect.PgSz.W, defaultPageWidth)
	size.Height = twipsToInches(sect.PgSz.H, defaultPageHeight)
	return size
}

// Margins returns the page margins from the first section's
// properties, degrading to one-inch defaults.
func (r *Reader) Margins() model.Margins {
	margins := model.Margins{
		Top:    defaultMargin,
		Right:  defaultMargin,
		Bottom: defaultMargin,
		Left:   defaultMargin,
	}

	sect := r.firstSectPr()
	if sect == nil || sect.PgMar == nil {
		return margins
	}

	margins.Top = twipsToInches(sect.PgMar.Top, defaultMargin)
	margins.Right = twipsToInches(sect.PgMar.Right, defaultMargin)
	margins.Bottom = twipsToInches(sect.PgMar.Bottom, defaultMargin)
	margins.Left = twipsToInches(sect.PgMar.Left, defaultMargin)
	return margins
}

// firstSectPr returns the first section properties element in document
// order: a paragraph-level sectPr precedes the trailing body-level one.
func (r *Reader) firstSectPr() *sectPrXML {
	if r.document == nil || r.document.Body == nil {
		return nil
	}

	for _, elem := range r.document.Body.Elements {
		if elem.Paragraph != nil && elem.Paragraph.Properties.SectPr != nil {
			return elem.Paragraph.Properties.SectPr
		}
	}
	return r.document.Body.SectPr
}

// twipsToInches converts a twips attribute (1440 twips = 1 inch) to a
// 2-decimal inch string, falling back when the value does not parse.
func twipsToInches(s, fallback string) string {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fallback
	}
	return fmt.Sprintf("%.2fin", v/1440)
}
