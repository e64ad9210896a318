package docx

import "testing"

// inlineDrawing builds a paragraph with an inline picture referencing
// the given relationship ID.
func inlineDrawing(relID, extent string) string {
	return `<w:p><w:r><w:drawing>
<wp:inline>` + extent + `
  <a:graphic><a:graphicData><pic:pic><pic:blipFill>
    <a:blip r:embed="` + relID + `"/>
  </pic:blipFill></pic:pic></a:graphicData></a:graphic>
</wp:inline>
</w:drawing></w:r></w:p>`
}

func TestImageEMUConversion(t *testing.T) {
	body := `<w:p><w:r><w:t>before</w:t></w:r></w:p>` +
		inlineDrawing("rId5", `<wp:extent cx="914400" cy="457200"/>`)

	r, err := Open(createTestDOCXWithParts(t, body, map[string]string{
		"word/_rels/document.xml.rels": testRels,
		"word/media/image1.png":        "png-bytes",
	}))
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	pages := r.Pages()
	if len(pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(pages))
	}

	images := pages[0].Images()
	if len(images) != 1 {
		t.Fatalf("expected 1 image, got %d", len(images))
	}

	img := images[0]
	if img.Width != "1.00in" {
		t.Errorf("width: expected 1.00in, got %s", img.Width)
	}
	if img.Height != "0.50in" {
		t.Errorf("height: expected 0.50in, got %s", img.Height)
	}
	if img.Path != "word/media/image1.png" {
		t.Errorf("path: expected word/media/image1.png, got %s", img.Path)
	}
	if img.ContentType != "image/png" {
		t.Errorf("contentType: expected image/png, got %s", img.ContentType)
	}
}

func TestImageMissingExtentIsUnknown(t *testing.T) {
	body := inlineDrawing("rId5", "")

	r, err := Open(createTestDOCXWithParts(t, body, map[string]string{
		"word/_rels/document.xml.rels": testRels,
	}))
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	images := r.Pages()[0].Images()
	if len(images) != 1 {
		t.Fatalf("expected 1 image, got %d", len(images))
	}
	if images[0].Width != "unknown" || images[0].Height != "unknown" {
		t.Errorf("expected unknown dimensions, got %s x %s", images[0].Width, images[0].Height)
	}
}

func TestUnresolvableImageIsSkipped(t *testing.T) {
	// rId99 exists in the markup but not in the relationships part:
	// the image is skipped, the paragraph survives.
	body := inlineDrawing("rId99", `<wp:extent cx="914400" cy="914400"/>`)

	r, err := Open(createTestDOCXWithParts(t, body, map[string]string{
		"word/_rels/document.xml.rels": testRels,
	}))
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	pages := r.Pages()
	if len(pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(pages))
	}
	if images := pages[0].Images(); len(images) != 0 {
		t.Errorf("expected no images, got %d", len(images))
	}
	if paras := pages[0].Paragraphs(); len(paras) != 1 {
		t.Errorf("the paragraph holding the drawing should still extract, got %d paragraphs", len(paras))
	}
}

func TestImageSkippedWithoutRelationshipsPart(t *testing.T) {
	body := inlineDrawing("rId5", `<wp:extent cx="914400" cy="914400"/>`)

	r, err := Open(createTestDOCX(t, body))
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	if images := r.Pages()[0].Images(); len(images) != 0 {
		t.Errorf("expected no images without a relationships part, got %d", len(images))
	}
}

func TestHyperlinkWrappedImageIsExtracted(t *testing.T) {
	body := `<w:p><w:hyperlink r:id="rId7"><w:r><w:drawing>
<wp:inline><wp:extent cx="914400" cy="457200"/>
  <a:graphic><a:graphicData><pic:pic><pic:blipFill>
    <a:blip r:embed="rId5"/>
  </pic:blipFill></pic:pic></a:graphicData></a:graphic>
</wp:inline>
</w:drawing></w:r></w:hyperlink></w:p>`

	r, err := Open(createTestDOCXWithParts(t, body, map[string]string{
		"word/_rels/document.xml.rels": testRels,
	}))
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	images := r.Pages()[0].Images()
	if len(images) != 1 {
		t.Fatalf("expected 1 image from the linked drawing, got %d", len(images))
	}
	if images[0].Path != "word/media/image1.png" {
		t.Errorf("path: got %s", images[0].Path)
	}
}

func TestAnchoredImagePositioning(t *testing.T) {
	body := `<w:p><w:r><w:drawing>
<wp:anchor>
  <wp:positionH relativeFrom="column"><wp:posOffset>457200</wp:posOffset></wp:positionH>
  <wp:extent cx="914400" cy="914400"/>
  <a:graphic><a:graphicData><pic:pic><pic:blipFill>
    <a:blip r:embed="rId5"/>
  </pic:blipFill></pic:pic></a:graphicData></a:graphic>
</wp:anchor>
</w:drawing></w:r></w:p>`

	r, err := Open(createTestDOCXWithParts(t, body, map[string]string{
		"word/_rels/document.xml.rels": testRels,
	}))
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	images := r.Pages()[0].Images()
	if len(images) != 1 {
		t.Fatalf("expected 1 image, got %d", len(images))
	}

	pos := images[0].Positioning
	if pos.RelativeFrom != "column" {
		t.Errorf("relativeFrom: expected column, got %q", pos.RelativeFrom)
	}
	if pos.Offset != "0.50in" {
		t.Errorf("offset: expected 0.50in, got %q", pos.Offset)
	}
}

func TestContentTypeForPath(t *testing.T) {
	tests := []struct {
		path   string
		expect string
	}{
		{"word/media/image1.png", "image/png"},
		{"word/media/image2.GIF", "image/gif"},
		{"word/media/image3.jpg", "image/jpeg"},
		{"word/media/image4.jpeg", "image/jpeg"},
		{"word/media/image5.bmp", "image/jpeg"}, // jpeg is the default
	}

	for _, tt := range tests {
		if got := contentTypeForPath(tt.path); got != tt.expect {
			t.Errorf("%s: expected %s, got %s", tt.path, got, tt.expect)
		}
	}
}
