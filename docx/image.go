package docx

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tsawler/docstruct/model"
)

// emuPerInch is the number of English Metric Units in one inch.
const emuPerInch = 914400

// unknownDimension is recorded when a drawing carries no extent data.
const unknownDimension = "unknown"

// extractImage resolves a drawing element to an image description.
// It returns nil when the drawing has no blip reference or when the
// blip's relationship ID cannot be resolved; the caller skips the
// image and continues.
func (r *Reader) extractImage(d *drawingXML) *model.Image {
	blip := drawingBlip(d)
	if blip == nil || blip.Embed == "" {
		return nil
	}

	path, ok := r.ResolveRelationship(blip.Embed)
	if !ok {
		return nil
	}

	img := &model.Image{
		Width:       unknownDimension,
		Height:      unknownDimension,
		ContentType: contentTypeForPath(path),
		Path:        path,
	}

	if extent := drawingExtent(d); extent != nil {
		if w, ok := emuToInches(extent.CX); ok {
			if h, ok := emuToInches(extent.CY); ok {
				img.Width = w
				img.Height = h
			}
		}
	}

	img.Positioning = drawingPositioning(d)
	return img
}

// drawingBlip returns the drawing's image reference, inline form
// first.
func drawingBlip(d *drawingXML) *blipXML {
	if d.Inline != nil && d.Inline.Blip != nil {
		return d.Inline.Blip
	}
	if d.Anchor != nil && d.Anchor.Blip != nil {
		return d.Anchor.Blip
	}
	return nil
}

// drawingExtent returns the drawing's declared extent, if any.
func drawingExtent(d *drawingXML) *extentXML {
	if d.Inline != nil && d.Inline.Extent != nil {
		return d.Inline.Extent
	}
	if d.Anchor != nil && d.Anchor.Extent != nil {
		return d.Anchor.Extent
	}
	return nil
}

// drawingPositioning reads positioning from an anchored drawing: the
// horizontal-position element when present, falling back to a raw
// offset. Inline drawings yield empty positioning.
func drawingPositioning(d *drawingXML) model.Positioning {
	var pos model.Positioning
	if d.Anchor == nil {
		return pos
	}

	if ph := d.Anchor.PositionH; ph != nil {
		pos.RelativeFrom = ph.RelativeFrom
		if offset, ok := emuToInches(ph.PosOffset); ok {
			pos.Offset = offset
		}
		return pos
	}

	if offset, ok := emuToInches(d.Anchor.PosOffset); ok {
		pos.Offset = offset
	}
	return pos
}

// emuToInches converts an EMU value to a 2-decimal inch string.
func emuToInches(s string) (string, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return "", false
	}
	return fmt.Sprintf("%.2fin", v/emuPerInch), true
}

// contentTypeForPath infers a MIME type from the part path's
// extension. Word stores media parts with faithful extensions, so no
// byte sniffing happens at this layer; jpeg is the default.
func contentTypeForPath(path string) string {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".png"):
		return "image/png"
	case strings.HasSuffix(lower, ".gif"):
		return "image/gif"
	default:
		return "image/jpeg"
	}
}
