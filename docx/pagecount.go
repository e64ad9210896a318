package docx

import "bytes"

// paragraphsPerPage is the coarse density assumed by the fallback
// page-count heuristic.
const paragraphsPerPage = 30

// PageCount estimates the document's total page count. The primary
// method counts rendered-page-break markers and section boundaries in
// the raw body XML, plus one for the first page. When the raw part is
// unavailable the count falls back to a paragraph-density heuristic.
//
// The estimate is an independent signal: it is not reconciled with
// the number of pages the body walk produces.
func (r *Reader) PageCount() int {
	if len(r.rawBody) == 0 {
		return r.fallbackPageCount()
	}

	breaks := countMarkers(r.rawBody, "w:lastRenderedPageBreak")
	sections := countMarkers(r.rawBody, "w:sectPr")
	return breaks + sections + 1
}

// fallbackPageCount estimates pages from the paragraph count, assuming
// roughly thirty paragraphs per rendered page, never less than one.
func (r *Reader) fallbackPageCount() int {
	count := 0
	if r.document != nil && r.document.Body != nil {
		for _, elem := range r.document.Body.Elements {
			if elem.Paragraph != nil {
				count++
			}
		}
	}

	pages := count / paragraphsPerPage
	if pages < 1 {
		return 1
	}
	return pages
}

// countMarkers counts occurrences of the named element's start tag in
// raw XML. The byte after the name must terminate it, so "w:sectPr"
// does not also count "w:sectPrChange".
func countMarkers(raw []byte, name string) int {
	tag := []byte("<" + name)
	count, off := 0, 0
	for {
		i := bytes.Index(raw[off:], tag)
		if i < 0 {
			return count
		}
		end := off + i + len(tag)
		if end < len(raw) {
			switch raw[end] {
			case '>', '/', ' ', '\t', '\r', '\n':
				count++
			}
		}
		off += i + 1
	}
}
