package model

import "encoding/json"

// ElementType identifies the kind of a page content element. The
// value doubles as the "type" discriminator in the JSON output.
type ElementType string

const (
	ElementParagraph ElementType = "paragraph"
	ElementImage     ElementType = "image"
	ElementTable     ElementType = "table"
)

// Element is the interface for all page content elements.
type Element interface {
	Type() ElementType
}

// Paragraph represents a paragraph with its style metadata and styled
// text runs. Text is always the concatenation of the run texts in
// order; runs whose text is empty are never present.
type Paragraph struct {
	Style    ParagraphStyle `json:"style"`
	TextRuns []Run          `json:"textRuns"`
	Text     string         `json:"text"`
}

// NewParagraph creates a paragraph from its style and runs, deriving
// Text from the runs.
func NewParagraph(style ParagraphStyle, runs []Run) *Paragraph {
	if runs == nil {
		runs = make([]Run, 0)
	}
	var text string
	for _, run := range runs {
		text += run.Text
	}
	return &Paragraph{
		Style:    style,
		TextRuns: runs,
		Text:     text,
	}
}

func (p *Paragraph) Type() ElementType { return ElementParagraph }

// MarshalJSON emits the paragraph with its "type" discriminator first.
func (p *Paragraph) MarshalJSON() ([]byte, error) {
	type alias Paragraph
	return json.Marshal(struct {
		Type ElementType `json:"type"`
		*alias
	}{p.Type(), (*alias)(p)})
}

// ParagraphStyle holds paragraph-level style metadata. Every field is
// optional: a key appears in the output only when the source markup
// specifies it.
type ParagraphStyle struct {
	StyleName   string       `json:"styleName,omitempty"`
	Alignment   string       `json:"alignment,omitempty"`
	Indentation *Indentation `json:"indentation,omitempty"`
	Spacing     *Spacing     `json:"spacing,omitempty"`
}

// Indentation holds paragraph indentation values in twips, passed
// through as the raw attribute strings.
type Indentation struct {
	Left      string `json:"left"`
	Right     string `json:"right"`
	FirstLine string `json:"firstLine"`
	Hanging   string `json:"hanging"`
}

// Spacing holds paragraph spacing values in twips, passed through as
// the raw attribute strings.
type Spacing struct {
	Before   string `json:"before"`
	After    string `json:"after"`
	Line     string `json:"line"`
	LineRule string `json:"lineRule"`
}

// Run is a contiguous span of text sharing one formatting set.
type Run struct {
	Text  string   `json:"text"`
	Style RunStyle `json:"style"`
}

// RunStyle holds character formatting. The boolean toggles appear in
// the output only when true; the remaining fields only when the
// source markup carries them.
type RunStyle struct {
	Bold      bool   `json:"bold,omitempty"`
	Italic    bool   `json:"italic,omitempty"`
	Underline bool   `json:"underline,omitempty"`
	Font      string `json:"font,omitempty"`
	Size      string `json:"size,omitempty"`
	Color     string `json:"color,omitempty"`
	Highlight string `json:"highlight,omitempty"`
}

// Image represents an embedded picture resolved to its package part.
// Width and Height are inch strings ("1.00in"), or the literal
// "unknown" when the drawing lacks extent data.
type Image struct {
	Width       string      `json:"width"`
	Height      string      `json:"height"`
	Positioning Positioning `json:"positioning"`
	ContentType string      `json:"contentType"`
	Path        string      `json:"path"`
}

func (i *Image) Type() ElementType { return ElementImage }

// MarshalJSON emits the image with its "type" discriminator first.
func (i *Image) MarshalJSON() ([]byte, error) {
	type alias Image
	return json.Marshal(struct {
		Type ElementType `json:"type"`
		*alias
	}{i.Type(), (*alias)(i)})
}

// Positioning describes where an anchored image sits. Both fields are
// optional; inline images serialize an empty object.
type Positioning struct {
	RelativeFrom string `json:"relativeFrom,omitempty"`
	Offset       string `json:"offset,omitempty"`
}
