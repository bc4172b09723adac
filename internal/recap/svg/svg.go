// Package svg renders a composed recap card as standalone SVG markup.
// The output preserves the card's structural layout and text content; the
// animated decor of the web client is intentionally not reproduced.
package svg

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/Charwekey/TechWrapSaga/internal/recap"
)

// Card geometry in CSS pixels, matching the raster package's base size.
const (
	width    = 500
	height   = 900
	margin   = 28
	gutter   = 12
	blockPad = 14
	lineH    = 18
	titleH   = 22
)

// Render serializes card to SVG bytes. It never fails: composition already
// resolved every presence rule, and text is escaped on the way out.
func Render(card recap.Card) []byte {
	var b bytes.Buffer
	t := card.Theme

	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" font-family="Helvetica, Arial, sans-serif">`,
		width, height, width, height)
	fmt.Fprintf(&b, `<defs><linearGradient id="bg" x1="0" y1="0" x2="0" y2="1">`+
		`<stop offset="0%%" stop-color="%s"/><stop offset="100%%" stop-color="%s"/>`+
		`</linearGradient></defs>`, esc(t.BackgroundTop), esc(t.BackgroundBottom))
	fmt.Fprintf(&b, `<rect width="%d" height="%d" rx="16" fill="url(#bg)" stroke="%s"/>`,
		width, height, esc(t.BlockBorder))

	y := margin + 36
	fmt.Fprintf(&b, `<text x="%d" y="%d" text-anchor="middle" font-size="32" font-weight="bold" fill="%s">%s</text>`,
		width/2, y, esc(t.Headline), esc(card.Header.Name))
	y += 24
	sub := fmt.Sprintf("%d", card.Header.Year)
	if card.Header.Title != "" {
		sub = fmt.Sprintf("%s | %d", card.Header.Title, card.Header.Year)
	}
	fmt.Fprintf(&b, `<text x="%d" y="%d" text-anchor="middle" font-size="15" fill="%s">%s</text>`,
		width/2, y, esc(t.Text), esc(sub))
	y += margin

	for _, row := range card.Rows {
		y = renderRow(&b, t, row, y)
	}

	fmt.Fprintf(&b, `<text x="%d" y="%d" text-anchor="middle" font-size="11" opacity="0.5" fill="%s">%s</text>`,
		width/2, height-margin, esc(t.Text), esc(card.Footer))
	b.WriteString(`</svg>`)
	return b.Bytes()
}

// renderRow emits one bento row's blocks and returns the y offset below it.
func renderRow(b *bytes.Buffer, t recap.Theme, row recap.Row, y int) int {
	inner := width - 2*margin

	// Uniform row height: tallest cell wins.
	rowH := 0
	for _, cell := range row.Cells {
		if h := 2*blockPad + titleH + lineH*contentLines(cell.Slot); h > rowH {
			rowH = h
		}
	}

	x := margin
	for _, cell := range row.Cells {
		w := inner * cell.Span / 10
		if len(row.Cells) > 1 {
			w -= gutter / 2
		}
		fmt.Fprintf(b, `<rect x="%d" y="%d" width="%d" height="%d" rx="12" fill="%s" stroke="%s"/>`,
			x, y, w, rowH, esc(t.BlockFill), esc(t.BlockBorder))
		renderSlot(b, t, cell.Slot, x+blockPad, y+blockPad)
		x += w + gutter
	}
	return y + rowH + gutter
}

// renderSlot emits the title and content lines of one block.
func renderSlot(b *bytes.Buffer, t recap.Theme, s recap.Slot, x, y int) {
	y += 14
	fmt.Fprintf(b, `<text x="%d" y="%d" font-size="13" font-weight="bold" fill="%s">%s</text>`,
		x, y, esc(t.Text), esc(s.Title))
	y += titleH - 14

	emit := func(text string) {
		y += lineH
		fmt.Fprintf(b, `<text x="%d" y="%d" font-size="12" fill="%s">%s</text>`,
			x, y, esc(t.Text), esc(text))
	}

	switch s.Mode {
	case recap.ModeList:
		for _, item := range s.Items {
			emit("• " + item)
		}
	case recap.ModePills:
		for _, item := range s.Items {
			emit(item)
		}
	case recap.ModeQuote:
		emit("“" + s.Text + "”")
	default: // ModeJoined
		emit(s.Text)
	}
}

// contentLines counts the content lines a slot occupies (title excluded).
func contentLines(s recap.Slot) int {
	switch s.Mode {
	case recap.ModeList, recap.ModePills:
		return len(s.Items)
	}
	return 1
}

// esc escapes text for inclusion in SVG markup.
func esc(s string) string {
	var b bytes.Buffer
	xml.EscapeText(&b, []byte(s)) //nolint:errcheck — bytes.Buffer never errors
	return b.String()
}
