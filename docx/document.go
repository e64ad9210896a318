package docx

import "encoding/xml"

// XML namespaces used in DOCX packages.
const (
	nsW  = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsR  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsWP = "http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing"
	nsA  = "http://schemas.openxmlformats.org/drawingml/2006/main"
)

// documentXML represents the structure of word/document.xml.
type documentXML struct {
	XMLName xml.Name `xml:"document"`
	Body    *bodyXML `xml:"body"`
}

// bodyXML holds the document body's direct children in document
// order. Paragraphs and tables must stay interleaved exactly as they
// appear in the markup, which encoding/xml's per-field collection
// cannot express, so the body carries a custom unmarshaller.
type bodyXML struct {
	Elements []bodyElement
	SectPr   *sectPrXML // trailing body-level section properties
}

// bodyElement is one top-level body child: a paragraph or a table.
type bodyElement struct {
	Paragraph *paragraphXML
	Table     *tableXML
}

// UnmarshalXML decodes the body preserving child order.
func (b *bodyXML) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				var p paragraphXML
				if err := d.DecodeElement(&p, &t); err != nil {
					return err
				}
				b.Elements = append(b.Elements, bodyElement{Paragraph: &p})
			case "tbl":
				var tbl tableXML
				if err := d.DecodeElement(&tbl, &t); err != nil {
					return err
				}
				b.Elements = append(b.Elements, bodyElement{Table: &tbl})
			case "sectPr":
				var s sectPrXML
				if err := d.DecodeElement(&s, &t); err != nil {
					return err
				}
				b.SectPr = &s
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}

		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return nil
			}
		}
	}
}

// valXML represents an element whose payload is a single val attribute.
type valXML struct {
	Val string `xml:"val,attr"`
}

// presenceXML represents a toggle element detected by presence alone
// (bold, italic, underline). The val attribute, if any, is ignored.
type presenceXML struct{}

// paragraphXML represents a paragraph element (<w:p>). Runs holds the
// paragraph's runs in document order, with hyperlink-wrapped runs
// flattened in place; a paragraph whose text sits inside a link keeps
// that text and any drawings the link carries.
type paragraphXML struct {
	XMLName    xml.Name `xml:"p"`
	Properties paragraphPropsXML
	Runs       []runXML
}

// UnmarshalXML decodes a paragraph, appending direct runs and the runs
// inside hyperlink wrappers to one ordered list.
func (p *paragraphXML) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	p.XMLName = start.Name
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "pPr":
				if err := d.DecodeElement(&p.Properties, &t); err != nil {
					return err
				}
			case "r":
				var r runXML
				if err := d.DecodeElement(&r, &t); err != nil {
					return err
				}
				p.Runs = append(p.Runs, r)
			case "hyperlink":
				var h hyperlinkXML
				if err := d.DecodeElement(&h, &t); err != nil {
					return err
				}
				p.Runs = append(p.Runs, h.Runs...)
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}

		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return nil
			}
		}
	}
}

// paragraphPropsXML represents paragraph properties (<w:pPr>).
type paragraphPropsXML struct {
	Style         *valXML     `xml:"pStyle"`
	Justification *valXML     `xml:"jc"`
	Spacing       *spacingXML `xml:"spacing"`
	Indent        *indentXML  `xml:"ind"`
	SectPr        *sectPrXML  `xml:"sectPr"`
}

// spacingXML represents paragraph spacing in twips.
type spacingXML struct {
	Before   string `xml:"before,attr"`
	After    string `xml:"after,attr"`
	Line     string `xml:"line,attr"`
	LineRule string `xml:"lineRule,attr"`
}

// indentXML represents paragraph indentation in twips.
type indentXML struct {
	Left      string `xml:"left,attr"`
	Right     string `xml:"right,attr"`
	FirstLine string `xml:"firstLine,attr"`
	Hanging   string `xml:"hanging,attr"`
}

// hyperlinkXML represents a hyperlink wrapper around runs.
type hyperlinkXML struct {
	ID   string   `xml:"id,attr"`
	Runs []runXML `xml:"r"`
}

// runXML represents a text run (<w:r>).
type runXML struct {
	XMLName    xml.Name     `xml:"r"`
	Properties runPropsXML  `xml:"rPr"`
	Text       []textXML    `xml:"t"`
	Breaks     []breakXML   `xml:"br"`
	Drawings   []drawingXML `xml:"drawing"`
}

// runPropsXML represents run properties (<w:rPr>).
type runPropsXML struct {
	Bold      *presenceXML `xml:"b"`
	Italic    *presenceXML `xml:"i"`
	Underline *presenceXML `xml:"u"`
	Font      *fontXML     `xml:"rFonts"`
	Size      *valXML      `xml:"sz"`
	Color     *valXML      `xml:"color"`
	Highlight *valXML      `xml:"highlight"`
}

// fontXML represents font settings (<w:rFonts>).
type fontXML struct {
	ASCII string `xml:"ascii,attr"`
	HAnsi string `xml:"hAnsi,attr"`
}

// textXML represents text content (<w:t>).
type textXML struct {
	XMLName xml.Name `xml:"t"`
	Space   string   `xml:"space,attr"`
	Value   string   `xml:",chardata"`
}

// breakXML represents a break (<w:br>).
type breakXML struct {
	XMLName xml.Name `xml:"br"`
	Type    string   `xml:"type,attr"` // page, column, textWrapping
}

// drawingXML represents an embedded drawing (<w:drawing>).
type drawingXML struct {
	XMLName xml.Name   `xml:"drawing"`
	Inline  *inlineXML `xml:"inline"`
	Anchor  *anchorXML `xml:"anchor"`
}

// inlineXML represents an inline image.
type inlineXML struct {
	Extent *extentXML `xml:"extent"`
	Blip   *blipXML   `xml:"graphic>graphicData>pic>blipFill>blip"`
}

// anchorXML represents an anchored (floating) image. PosOffset is the
// raw offset fallback for anchors that carry no positionH element.
type anchorXML struct {
	Extent    *extentXML    `xml:"extent"`
	PositionH *positionHXML `xml:"positionH"`
	PosOffset string        `xml:"posOffset"`
	Blip      *blipXML      `xml:"graphic>graphicData>pic>blipFill>blip"`
}

// positionHXML represents horizontal position (<wp:positionH>).
type positionHXML struct {
	RelativeFrom string `xml:"relativeFrom,attr"`
	PosOffset    string `xml:"posOffset"` // offset in EMUs
}

// extentXML represents image dimensions in EMUs.
type extentXML struct {
	CX string `xml:"cx,attr"`
	CY string `xml:"cy,attr"`
}

// blipXML represents an image part reference.
type blipXML struct {
	Embed string `xml:"embed,attr"` // relationship ID
}

// tableXML represents a table (<w:tbl>).
type tableXML struct {
	XMLName    xml.Name      `xml:"tbl"`
	Properties tablePropsXML `xml:"tblPr"`
	Rows       []tableRowXML `xml:"tr"`
}

// tablePropsXML represents table properties (<w:tblPr>).
type tablePropsXML struct {
	Width         *tableSizeXML `xml:"tblW"`
	Justification *valXML       `xml:"jc"`
}

// tableSizeXML represents a table width declaration.
type tableSizeXML struct {
	W    string `xml:"w,attr"`    // value: twips for dxa, fiftieths of a percent for pct
	Type string `xml:"type,attr"` // dxa, pct, auto
}

// tableRowXML represents a table row (<w:tr>).
type tableRowXML struct {
	XMLName xml.Name       `xml:"tr"`
	Cells   []tableCellXML `xml:"tc"`
}

// tableCellXML represents a table cell (<w:tc>).
type tableCellXML struct {
	XMLName    xml.Name       `xml:"tc"`
	Properties cellPropsXML   `xml:"tcPr"`
	Paragraphs []paragraphXML `xml:"p"`
}

// cellPropsXML represents cell properties (<w:tcPr>).
type cellPropsXML struct {
	GridSpan *valXML    `xml:"gridSpan"`
	VMerge   *vMergeXML `xml:"vMerge"`
}

// vMergeXML represents vertical merge. An empty val means "continue".
type vMergeXML struct {
	XMLName xml.Name `xml:"vMerge"`
	Val     string   `xml:"val,attr"`
}

// sectPrXML represents section properties (<w:sectPr>).
type sectPrXML struct {
	XMLName xml.Name  `xml:"sectPr"`
	PgSz    *pgSzXML  `xml:"pgSz"`
	PgMar   *pgMarXML `xml:"pgMar"`
}

// pgSzXML represents page size in twips.
type pgSzXML struct {
	W string `xml:"w,attr"`
	H string `xml:"h,attr"`
}

// pgMarXML represents page margins in twips.
type pgMarXML struct {
	Top    string `xml:"top,attr"`
	Right  string `xml:"right,attr"`
	Bottom string `xml:"bottom,attr"`
	Left   string `xml:"left,attr"`
}

// relationshipsXML represents word/_rels/document.xml.rels.
type relationshipsXML struct {
	XMLName       xml.Name          `xml:"Relationships"`
	Relationships []relationshipXML `xml:"Relationship"`
}

// relationshipXML maps a reference ID to a target part path.
type relationshipXML struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}
