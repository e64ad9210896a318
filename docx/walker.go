package docx

import (
	"time"

	"github.com/tsawler/docstruct/model"
)

// Structure builds the full template structure for the document.
// filename is recorded in the metadata; now supplies the extraction
// timestamp.
func (r *Reader) Structure(filename string, now time.Time) *model.TemplateStructure {
	ts := model.NewTemplateStructure(model.Metadata{
		Filename:    filename,
		ExtractedAt: now.Format(time.RFC3339),
		PageSize:    r.PageSize(),
		Margins:     r.Margins(),
		TotalPages:  r.PageCount(),
	})

	for _, page := range r.Pages() {
		ts.AddPage(page)
	}

	return ts
}

// Pages walks the body's direct children in document order and
// partitions them into pages. A paragraph starts a new page when it
// contains an explicit page break or section properties; the breaking
// paragraph itself opens the new page, and the sealed page holds only
// the elements accumulated before it. Images found in a paragraph's
// runs are appended as siblings right after the paragraph, flattened
// into the page's element sequence in encounter order. Residual
// elements after the walk form a final page even without a trailing
// break.
func (r *Reader) Pages() []*model.Page {
	pages := make([]*model.Page, 0)
	if r.document == nil || r.document.Body == nil {
		return pages
	}

	current := model.NewPage(1)

	for _, elem := range r.document.Body.Elements {
		switch {
		case elem.Paragraph != nil:
			p := elem.Paragraph

			if paragraphHasPageBreak(p) {
				pages = append(pages, current)
				current = model.NewPage(current.Number + 1)
			}

			current.AddElement(extractParagraph(p))

			for i := range p.Runs {
				for j := range p.Runs[i].Drawings {
					if img := r.extractImage(&p.Runs[i].Drawings[j]); img != nil {
						current.AddElement(img)
					}
				}
			}

		case elem.Table != nil:
			current.AddElement(extractTable(elem.Table))
		}
	}

	if len(current.Elements) > 0 {
		pages = append(pages, current)
	}

	return pages
}

// paragraphHasPageBreak reports whether a paragraph forces a page
// boundary: an explicit break of type "page" in any of its runs, or
// section properties (end of section implies end of page).
func paragraphHasPageBreak(p *paragraphXML) bool {
	for i := range p.Runs {
		for _, br := range p.Runs[i].Breaks {
			if br.Type == "page" {
				return true
			}
		}
	}
	return p.Properties.SectPr != nil
}
