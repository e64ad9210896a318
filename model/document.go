package model

// TemplateStructure is the root of an extracted document tree.
type TemplateStructure struct {
	Metadata Metadata `json:"metadata"`
	Pages    []*Page  `json:"pages"`
}

// NewTemplateStructure creates an empty structure with a non-nil page
// list so that an empty document still serializes as "pages": [].
func NewTemplateStructure(meta Metadata) *TemplateStructure {
	return &TemplateStructure{
		Metadata: meta,
		Pages:    make([]*Page, 0),
	}
}

// AddPage appends a page to the structure.
func (t *TemplateStructure) AddPage(page *Page) {
	t.Pages = append(t.Pages, page)
}

// PageCount returns the number of pages the body walk produced. This
// is independent of Metadata.TotalPages, which is a marker-based
// estimate; the two are separate signals and are not reconciled.
func (t *TemplateStructure) PageCount() int {
	return len(t.Pages)
}

// Metadata contains document-level information derived from the first
// section's properties.
type Metadata struct {
	Filename    string   `json:"filename"`
	ExtractedAt string   `json:"extractedAt"`
	PageSize    PageSize `json:"pageSize"`
	Margins     Margins  `json:"margins"`
	TotalPages  int      `json:"totalPages"`
}

// PageSize holds page dimensions as inch strings, e.g. "8.50in".
type PageSize struct {
	Width  string `json:"width"`
	Height string `json:"height"`
}

// Margins holds the four page margins as inch strings.
type Margins struct {
	Top    string `json:"top"`
	Right  string `json:"right"`
	Bottom string `json:"bottom"`
	Left   string `json:"left"`
}
