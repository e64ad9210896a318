// Package docstruct provides a fluent API for extracting the template
// structure of OOXML word-processing documents: page size and margins,
// paragraphs with styled text runs, tables with merge metadata, and
// images resolved to their package parts, partitioned into pages.
//
// Basic usage:
//
//	structure, err := docstruct.Open("template.docx").Structure()
//	if err != nil {
//	    // handle error
//	}
//
// Writing the JSON artifact directly:
//
//	path, err := docstruct.Open("template.docx").Save("")
//
// An empty save path derives a timestamped default filename. For
// lower-level access to package parts, the docx package is also
// available.
package docstruct

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/tsawler/docstruct/docx"
	"github.com/tsawler/docstruct/format"
	"github.com/tsawler/docstruct/model"
)

// Extractor is a fluent handle over a single document. Each terminal
// operation opens its own archive handle and releases it before
// returning, so one Extractor value may serve multiple calls and
// independent Extractors are safe to use concurrently.
type Extractor struct {
	filename   string
	ra         io.ReaderAt
	size       int64
	fromReader bool
	options    ExtractOptions
}

// Open prepares an extractor for the document at the given path.
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// OpenReader prepares an extractor for a document supplied as an
// io.ReaderAt. Use Filename to set the name recorded in the metadata.
func OpenReader(ra io.ReaderAt, size int64) *Extractor {
	return &Extractor{
		ra:         ra,
		size:       size,
		fromReader: true,
		options:    defaultOptions(),
	}
}

// Filename overrides the filename recorded in the structure metadata.
func (e *Extractor) Filename(name string) *Extractor {
	e.options.filename = name
	return e
}

// Now overrides the timestamp source used for the extractedAt field
// and the default output filename.
func (e *Extractor) Now(now TimeSource) *Extractor {
	if now != nil {
		e.options.now = now
	}
	return e
}

// Structure opens the document, builds its template structure, and
// releases the archive handle. Legacy binary .doc input fails with a
// conversion hint rather than an archive error; conversion itself is
// the caller's responsibility.
func (e *Extractor) Structure() (*model.TemplateStructure, error) {
	r, err := e.openReader()
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return r.Structure(e.metadataFilename(), e.options.now()), nil
}

// Save builds the structure and writes it as JSON to the given path.
// An empty path derives a timestamped default name. It returns the
// path written. On error no output file is produced.
func (e *Extractor) Save(path string) (string, error) {
	structure, err := e.Structure()
	if err != nil {
		return "", err
	}

	if path == "" {
		path = DefaultOutputName(e.options.now())
	}
	if err := WriteFile(path, structure); err != nil {
		return "", err
	}
	return path, nil
}

// openReader opens the underlying package, rejecting legacy OLE input
// with a targeted error.
func (e *Extractor) openReader() (*docx.Reader, error) {
	if e.fromReader {
		if format.SniffReader(e.ra) == format.DOC {
			return nil, fmt.Errorf("legacy .doc format not supported: convert to .docx first")
		}
		r, err := docx.OpenReader(e.ra, e.size)
		if err != nil {
			return nil, err
		}
		return r, nil
	}

	if f, err := format.Sniff(e.filename); err == nil && f == format.DOC {
		return nil, fmt.Errorf("%s: legacy .doc format not supported: convert to .docx first", e.filename)
	}
	r, err := docx.Open(e.filename)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", e.filename, err)
	}
	return r, nil
}

// metadataFilename returns the name recorded in the metadata: the
// explicit override, else the base of the input path.
func (e *Extractor) metadataFilename() string {
	if e.options.filename != "" {
		return e.options.filename
	}
	if e.filename != "" {
		return filepath.Base(e.filename)
	}
	return "document.docx"
}

// Must is a helper that wraps a call to a function returning
// (T, error) and panics if the error is non-nil. It is intended for
// scripts and tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
