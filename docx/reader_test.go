package docx

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

const testNamespaces = `xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"` +
	` xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"` +
	` xmlns:wp="http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing"` +
	` xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main"` +
	` xmlns:pic="http://schemas.openxmlformats.org/drawingml/2006/picture"`

// createTestDOCX creates a minimal DOCX package whose body holds the
// given markup.
func createTestDOCX(t *testing.T, body string) string {
	t.Helper()
	return createTestDOCXWithParts(t, body, nil)
}

// createTestDOCXWithParts creates a DOCX package with extra parts
// (e.g. word/_rels/document.xml.rels, word/media/image1.png).
func createTestDOCXWithParts(t *testing.T, body string, extra map[string]string) string {
	t.Helper()

	document := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document ` + testNamespaces + `>
  <w:body>` + body + `</w:body>
</w:document>`

	parts := map[string]string{
		"[Content_Types].xml": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`,
		"_rels/.rels": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`,
		"word/document.xml": document,
	}
	for name, content := range extra {
		parts[name] = content
	}

	return writeTestZip(t, parts)
}

// writeTestZip writes the given parts into a zip archive in a temp
// directory and returns its path.
func writeTestZip(t *testing.T, parts map[string]string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.docx")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}

	zw := zip.NewWriter(f)
	for name, content := range parts {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("failed to create zip entry %s: %v", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("failed to write zip entry %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("failed to close zip: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("failed to close file: %v", err)
	}

	return path
}

// testRels is a relationships part mapping rId5 to a PNG media part.
const testRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId5" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/image" Target="media/image1.png"/>
</Relationships>`

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.docx"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestOpenNotAZip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.docx")
	if err := os.WriteFile(path, []byte("this is not a zip archive"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Open(path)
	if err == nil {
		t.Fatal("expected error for non-zip input")
	}
}

func TestOpenMissingDocumentPart(t *testing.T) {
	path := writeTestZip(t, map[string]string{
		"[Content_Types].xml": `<?xml version="1.0"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"/>`,
	})

	_, err := Open(path)
	if err == nil {
		t.Fatal("expected error for missing word/document.xml")
	}
}

func TestOpenValidDocument(t *testing.T) {
	path := createTestDOCX(t, `<w:p><w:r><w:t>Hello</w:t></w:r></w:p>`)

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer r.Close()

	if r.document == nil || r.document.Body == nil {
		t.Fatal("document body not parsed")
	}
	if len(r.document.Body.Elements) != 1 {
		t.Errorf("expected 1 body element, got %d", len(r.document.Body.Elements))
	}
}

func TestOpenReaderFromBytes(t *testing.T) {
	path := createTestDOCX(t, `<w:p><w:r><w:t>Hello</w:t></w:r></w:p>`)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	r, err := OpenReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("OpenReader failed: %v", err)
	}
	defer r.Close()

	pages := r.Pages()
	if len(pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(pages))
	}
}

func TestPartNames(t *testing.T) {
	path := createTestDOCXWithParts(t, `<w:p/>`, map[string]string{
		"word/media/image1.png": "fake-png-bytes",
	})

	r, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	names := r.PartNames()
	found := false
	for _, name := range names {
		if name == "word/media/image1.png" {
			found = true
		}
	}
	if !found {
		t.Errorf("part listing missing media part: %v", names)
	}

	if !r.HasPart("word/document.xml") {
		t.Error("HasPart should report the document part")
	}
	if r.HasPart("word/styles.xml") {
		t.Error("HasPart reported a part that does not exist")
	}
}

func TestPartBytes(t *testing.T) {
	path := createTestDOCXWithParts(t, `<w:p/>`, map[string]string{
		"word/media/image1.png": "fake-png-bytes",
	})

	r, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	data, err := r.PartBytes("word/media/image1.png")
	if err != nil {
		t.Fatalf("PartBytes failed: %v", err)
	}
	if string(data) != "fake-png-bytes" {
		t.Errorf("unexpected part content: %q", data)
	}

	if _, err := r.PartBytes("word/media/missing.png"); err == nil {
		t.Error("expected error for missing part")
	}
}

func TestRelationships(t *testing.T) {
	path := createTestDOCXWithParts(t, `<w:p/>`, map[string]string{
		"word/_rels/document.xml.rels": testRels,
	})

	r, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	rels := r.Relationships()
	if rels["rId5"] != "media/image1.png" {
		t.Errorf("expected rId5 -> media/image1.png, got %q", rels["rId5"])
	}

	resolved, ok := r.ResolveRelationship("rId5")
	if !ok || resolved != "word/media/image1.png" {
		t.Errorf("expected resolved path word/media/image1.png, got %q (ok=%v)", resolved, ok)
	}

	if _, ok := r.ResolveRelationship("rId99"); ok {
		t.Error("resolved a relationship that does not exist")
	}
}

func TestMissingRelationshipsPartIsNotAnError(t *testing.T) {
	path := createTestDOCX(t, `<w:p/>`)

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer r.Close()

	if rels := r.Relationships(); len(rels) != 0 {
		t.Errorf("expected empty relationship map, got %v", rels)
	}
}
