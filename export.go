package docstruct

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/tsawler/docstruct/model"
)

// DefaultOutputName derives the output filename used when no explicit
// path is given: template_structure_<YYYYMMDDHHMMSS>.json.
func DefaultOutputName(t time.Time) string {
	return "template_structure_" + t.Format("20060102150405") + ".json"
}

// WriteJSON renders the structure to w as UTF-8 JSON with 2-space
// indentation. Non-ASCII characters are written literally, not
// escaped. The structure itself is not mutated.
func WriteJSON(w io.Writer, structure *model.TemplateStructure) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(structure)
}

// WriteFile writes the structure's JSON rendering to the named file.
func WriteFile(path string, structure *model.TemplateStructure) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := WriteJSON(f, structure); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
