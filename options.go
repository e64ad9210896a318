package docstruct

import "time"

// TimeSource supplies the current time. Extraction uses it for the
// extractedAt metadata field and for timestamp-derived output names,
// so tests can pin it.
type TimeSource func() time.Time

// ExtractOptions holds configuration for an extraction.
type ExtractOptions struct {
	// filename overrides the name recorded in the metadata
	// (defaults to the base of the input path).
	filename string

	// now supplies the extraction timestamp.
	now TimeSource
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		filename: "",
		now:      time.Now,
	}
}
