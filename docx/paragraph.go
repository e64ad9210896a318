package docx

import (
	"strconv"

	"github.com/tsawler/docstruct/model"
)

// Font size attributes are in half-points. A sz element whose value is
// missing or malformed falls back to 24 half-points (12pt).
const defaultHalfPoints = 24

// extractParagraph converts a paragraph element into its structural
// model: style metadata (only the attributes the markup carries) and
// the non-empty text runs, with the paragraph text derived from them.
func extractParagraph(p *paragraphXML) *model.Paragraph {
	style := extractParagraphStyle(p.Properties)

	runs := make([]model.Run, 0, len(p.Runs))
	for i := range p.Runs {
		run := extractRun(&p.Runs[i])
		if run.Text == "" {
			continue
		}
		runs = append(runs, run)
	}

	return model.NewParagraph(style, runs)
}

// extractParagraphStyle reads the paragraph properties present in the
// markup; absent properties simply stay unset.
func extractParagraphStyle(props paragraphPropsXML) model.ParagraphStyle {
	var style model.ParagraphStyle

	if props.Style != nil {
		style.StyleName = props.Style.Val
	}
	if props.Justification != nil && props.Justification.Val != "" {
		style.Alignment = props.Justification.Val
	}
	if props.Indent != nil {
		style.Indentation = &model.Indentation{
			Left:      attrOrDefault(props.Indent.Left, "0"),
			Right:     attrOrDefault(props.Indent.Right, "0"),
			FirstLine: attrOrDefault(props.Indent.FirstLine, "0"),
			Hanging:   attrOrDefault(props.Indent.Hanging, "0"),
		}
	}
	if props.Spacing != nil {
		style.Spacing = &model.Spacing{
			Before:   attrOrDefault(props.Spacing.Before, "0"),
			After:    attrOrDefault(props.Spacing.After, "0"),
			Line:     attrOrDefault(props.Spacing.Line, "240"), // single spacing
			LineRule: attrOrDefault(props.Spacing.LineRule, "auto"),
		}
	}

	return style
}

// extractRun converts a run element, concatenating all of its text
// nodes and reading character formatting. Bold, italic and underline
// are presence-only toggles: the element being there means "on", and
// an explicit off value is not inspected.
func extractRun(run *runXML) model.Run {
	var r model.Run

	for _, t := range run.Text {
		r.Text += t.Value
	}

	props := run.Properties
	if props.Bold != nil {
		r.Style.Bold = true
	}
	if props.Italic != nil {
		r.Style.Italic = true
	}
	if props.Underline != nil {
		r.Style.Underline = true
	}
	if props.Font != nil {
		if props.Font.ASCII != "" {
			r.Style.Font = props.Font.ASCII
		} else {
			r.Style.Font = props.Font.HAnsi
		}
	}
	if props.Size != nil {
		r.Style.Size = halfPointsToPoints(props.Size.Val)
	}
	if props.Color != nil {
		r.Style.Color = props.Color.Val
	}
	if props.Highlight != nil {
		r.Style.Highlight = props.Highlight.Val
	}

	return r
}

// halfPointsToPoints converts a half-point size attribute to a point
// string like "12pt" or "11.5pt".
func halfPointsToPoints(s string) string {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		v = defaultHalfPoints
	}
	return strconv.FormatFloat(v/2, 'f', -1, 64) + "pt"
}

// attrOrDefault returns s, or def when the attribute is absent.
func attrOrDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
