// Package format provides input format detection for the docstruct
// library. Detection distinguishes OOXML packages (ZIP containers)
// from legacy OLE compound documents so that .doc input can fail with
// a targeted message instead of a generic archive error.
package format

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Format represents a recognized input format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// DOCX indicates an OOXML word-processing package (ZIP container).
	DOCX
	// DOC indicates a legacy OLE compound document (binary .doc).
	DOC
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case DOCX:
		return "DOCX"
	case DOC:
		return "DOC"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case DOCX:
		return ".docx"
	case DOC:
		return ".doc"
	default:
		return ""
	}
}

// Magic signatures.
var (
	zipMagic = []byte{0x50, 0x4B, 0x03, 0x04}
	oleMagic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}
)

// Detect determines the format from the filename extension.
func Detect(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".docx":
		return DOCX
	case ".doc":
		return DOC
	default:
		return Unknown
	}
}

// DetectFromMagic checks leading magic bytes to determine the format.
// This is more reliable than extension-based detection: a .doc file
// saved by a modern Word version is often a ZIP package in disguise.
func DetectFromMagic(data []byte) Format {
	if bytes.HasPrefix(data, zipMagic) {
		// ZIP container; whether it is a well-formed word-processing
		// package is the reader's job to verify.
		return DOCX
	}
	if bytes.HasPrefix(data, oleMagic) {
		return DOC
	}
	return Unknown
}

// Sniff reads the leading bytes of the named file and returns its
// detected format.
func Sniff(path string) (Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return Unknown, err
	}
	defer f.Close()

	header := make([]byte, 8)
	n, err := io.ReadFull(f, header)
	if err != nil && err != io.ErrUnexpectedEOF {
		return Unknown, err
	}
	return DetectFromMagic(header[:n]), nil
}

// SniffReader detects the format from the leading bytes of ra.
func SniffReader(ra io.ReaderAt) Format {
	header := make([]byte, 8)
	n, err := ra.ReadAt(header, 0)
	if n == 0 && err != nil {
		return Unknown
	}
	return DetectFromMagic(header[:n])
}
