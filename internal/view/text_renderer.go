package view

import (
	"fmt"
	"io"
)

// TextRenderer writes a ListView as plain or styled lines
type TextRenderer struct {
	styles  Styles
	showIDs bool
}

// NewTextRenderer creates a renderer
func NewTextRenderer(color, showIDs bool) *TextRenderer {
	return &TextRenderer{styles: NewStyles(color), showIDs: showIDs}
}

// Write renders v to w, one task per line followed by the counter
func (r *TextRenderer) Write(w io.Writer, v ListView) error {
	if v.Empty {
		if _, err := fmt.Fprintln(w, r.styles.Placeholder.Render(v.Placeholder)); err != nil {
			return err
		}
	}
	for _, item := range v.Items {
		if _, err := fmt.Fprintln(w, r.styles.ItemLine(item, r.showIDs)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, r.styles.Counter.Render(v.Counter))
	return err
}

