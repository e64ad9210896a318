// Package docx opens OOXML word-processing packages and reconstructs
// their page-oriented template structure: paragraphs with styled text
// runs, tables with merge metadata, images resolved to their binary
// parts, and page boundaries inferred from break markers.
//
// A Reader owns one archive handle per call to Open or OpenReader and
// holds no shared mutable state, so independent readers are safe to
// use from concurrent goroutines.
package docx

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
)

// Reader-related errors.
var (
	// ErrInvalidArchive reports input that is not a readable ZIP
	// container.
	ErrInvalidArchive = errors.New("docx: invalid or corrupted archive")
	// ErrMissingDocument reports a ZIP container without the mandatory
	// word/document.xml part.
	ErrMissingDocument = errors.New("docx: word/document.xml not found in archive")
)

// Well-known part paths.
const (
	documentPart      = "word/document.xml"
	relationshipsPart = "word/_rels/document.xml.rels"
)

// Reader provides access to a word-processing package's content.
type Reader struct {
	zr       *zip.ReadCloser
	zrReader *zip.Reader // for when opened from io.ReaderAt
	document *documentXML
	rawBody  []byte // raw word/document.xml, kept for page counting
	rels     map[string]string
}

// Open opens a DOCX package from a path.
func Open(filename string) (*Reader, error) {
	zr, err := zip.OpenReader(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArchive, err)
	}

	r := &Reader{zr: zr}
	if err := r.init(&zr.Reader); err != nil {
		zr.Close()
		return nil, err
	}

	return r, nil
}

// OpenReader opens a DOCX package from an io.ReaderAt.
func OpenReader(ra io.ReaderAt, size int64) (*Reader, error) {
	zr, err := zip.NewReader(ra, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArchive, err)
	}

	r := &Reader{zrReader: zr}
	if err := r.init(zr); err != nil {
		return nil, err
	}

	return r, nil
}

// init parses the package: the mandatory document part and the
// optional relationships part.
func (r *Reader) init(zr *zip.Reader) error {
	if err := r.parseDocument(zr); err != nil {
		return err
	}
	r.parseRelationships(zr)
	return nil
}

// Close releases the archive handle.
func (r *Reader) Close() error {
	if r.zr != nil {
		err := r.zr.Close()
		r.zr = nil
		return err
	}
	return nil
}

// zipReader returns the underlying zip.Reader.
func (r *Reader) zipReader() *zip.Reader {
	if r.zr != nil {
		return &r.zr.Reader
	}
	return r.zrReader
}

// PartNames lists all part paths in the package.
func (r *Reader) PartNames() []string {
	zr := r.zipReader()
	names := make([]string, 0, len(zr.File))
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	return names
}

// PartBytes reads the named part's raw bytes.
func (r *Reader) PartBytes(name string) ([]byte, error) {
	for _, f := range r.zipReader().File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, fmt.Errorf("part not found: %s", name)
}

// HasPart reports whether the named part exists in the package.
func (r *Reader) HasPart(name string) bool {
	for _, f := range r.zipReader().File {
		if f.Name == name {
			return true
		}
	}
	return false
}

// Relationships returns the relationship-ID-to-target mapping from the
// document relationships part. A package without that part yields an
// empty map.
func (r *Reader) Relationships() map[string]string {
	return r.rels
}

// ResolveRelationship resolves a relationship ID to a package part
// path (targets are stored relative to the word/ directory).
func (r *Reader) ResolveRelationship(id string) (string, bool) {
	target, ok := r.rels[id]
	if !ok {
		return "", false
	}
	return "word/" + target, true
}

// parseDocument reads and unmarshals word/document.xml.
func (r *Reader) parseDocument(zr *zip.Reader) error {
	var data []byte
	for _, f := range zr.File {
		if f.Name == documentPart {
			rc, err := f.Open()
			if err != nil {
				return fmt.Errorf("open %s: %w", documentPart, err)
			}
			d, err := io.ReadAll(rc)
			rc.Close()
			if err != nil {
				return fmt.Errorf("read %s: %w", documentPart, err)
			}
			data = d
			break
		}
	}
	if data == nil {
		return ErrMissingDocument
	}

	doc := &documentXML{}
	if err := xml.Unmarshal(data, doc); err != nil {
		return fmt.Errorf("unmarshal %s: %w", documentPart, err)
	}

	r.document = doc
	r.rawBody = data
	return nil
}

// parseRelationships reads the optional relationships part. Image
// extraction degrades to skipping unresolvable references when the
// part is absent or malformed.
func (r *Reader) parseRelationships(zr *zip.Reader) {
	r.rels = make(map[string]string)

	var data []byte
	for _, f := range zr.File {
		if f.Name == relationshipsPart {
			rc, err := f.Open()
			if err != nil {
				return
			}
			d, err := io.ReadAll(rc)
			rc.Close()
			if err != nil {
				return
			}
			data = d
			break
		}
	}
	if data == nil {
		return
	}

	rels := &relationshipsXML{}
	if err := xml.Unmarshal(data, rels); err != nil {
		return
	}
	for _, rel := range rels.Relationships {
		r.rels[rel.ID] = rel.Target
	}
}
