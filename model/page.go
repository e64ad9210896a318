package model

// Page represents a single page of content elements, partitioned from
// the document body by explicit page breaks and section boundaries.
type Page struct {
	Number   int       `json:"pageNumber"`
	Elements []Element `json:"elements"`
}

// NewPage creates an empty page with the given 1-based number.
func NewPage(number int) *Page {
	return &Page{
		Number:   number,
		Elements: make([]Element, 0),
	}
}

// AddElement appends an element to the page.
func (p *Page) AddElement(elem Element) {
	p.Elements = append(p.Elements, elem)
}

// Paragraphs returns the paragraph elements on the page.
func (p *Page) Paragraphs() []*Paragraph {
	var paragraphs []*Paragraph
	for _, elem := range p.Elements {
		if para, ok := elem.(*Paragraph); ok {
			paragraphs = append(paragraphs, para)
		}
	}
	return paragraphs
}

// Tables returns the table elements on the page.
func (p *Page) Tables() []*Table {
	var tables []*Table
	for _, elem := range p.Elements {
		if table, ok := elem.(*Table); ok {
			tables = append(tables, table)
		}
	}
	return tables
}

// Images returns the image elements on the page.
func (p *Page) Images() []*Image {
	var images []*Image
	for _, elem := range p.Elements {
		if img, ok := elem.(*Image); ok {
			images = append(images, img)
		}
	}
	return images
}

// ExtractText concatenates the text of all paragraphs on the page,
// one paragraph per line.
func (p *Page) ExtractText() string {
	var text string
	for _, para := range p.Paragraphs() {
		text += para.Text + "\n"
	}
	return text
}
