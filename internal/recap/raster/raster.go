// Package raster captures a composed recap card into a PNG image.
// Rendering is deterministic: the same card always yields the same bytes.
// The card is drawn at twice the on-screen pixel density.
package raster

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strings"
	"sync"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/Charwekey/TechWrapSaga/internal/domain"
	"github.com/Charwekey/TechWrapSaga/internal/recap"
)

// Card geometry in base (on-screen) pixels. The output image is Scale times
// larger in each dimension.
const (
	baseWidth  = 500
	baseHeight = 900

	// Scale is the fixed upscale factor applied at capture time.
	Scale = 2

	margin    = 28
	gutter    = 12
	blockPad  = 14
	lineGap   = 5
	pillPadX  = 10
	pillPadY  = 4
	pillGap   = 8
	borderPx  = 1
	headerGap = 10
)

// Font sizes in base pixels.
const (
	nameSize   = 32
	titleSize  = 15
	slotSize   = 13
	bodySize   = 12
	footerSize = 11
)

// FileName returns the deterministic download name for a captured card.
// An empty or whitespace-only display name falls back to "recap".
func FileName(displayName string) string {
	name := strings.TrimSpace(displayName)
	if name == "" {
		name = "recap"
	}
	return fmt.Sprintf("tech-wrapped-%d-%s.png", domain.WrapYear, name)
}

// parsed fonts are shared across captures; parsing is cheap but not free.
var (
	fontOnce    sync.Once
	fontErr     error
	regularFont *opentype.Font
	boldFont    *opentype.Font
)

func loadFonts() (*opentype.Font, *opentype.Font, error) {
	fontOnce.Do(func() {
		regularFont, fontErr = opentype.Parse(goregular.TTF)
		if fontErr != nil {
			return
		}
		boldFont, fontErr = opentype.Parse(gobold.TTF)
	})
	return regularFont, boldFont, fontErr
}

// Capture renders card into PNG bytes at Scale x pixel density.
// On any failure it returns a *CaptureError and no bytes — never a corrupt
// or blank image. Capturing an unchanged card twice yields identical output.
func Capture(card recap.Card) ([]byte, error) {
	regular, bold, err := loadFonts()
	if err != nil {
		return nil, captureErr("load fonts", err)
	}

	pal, err := parsePalette(card.Theme)
	if err != nil {
		return nil, err
	}

	c := &canvas{
		img: image.NewRGBA(image.Rect(0, 0, baseWidth*Scale, baseHeight*Scale)),
		pal: pal,
	}
	if c.faces, err = newFaces(regular, bold); err != nil {
		return nil, captureErr("create font faces", err)
	}
	defer c.faces.close()

	c.fillBackground()
	y := c.drawHeader(card.Header)
	for _, row := range card.Rows {
		y = c.drawRow(row, y)
	}
	c.drawFooter(card.Footer)

	var buf bytes.Buffer
	if err := png.Encode(&buf, c.img); err != nil {
		return nil, captureErr("encode png", err)
	}
	return buf.Bytes(), nil
}

// palette holds the theme colors parsed into drawable form.
type palette struct {
	bgTop, bgBottom colorful.Color
	blockFill       color.NRGBA
	blockBorder     color.NRGBA
	text            color.NRGBA
	headline        color.NRGBA
	pillFill        color.NRGBA
}

// parsePalette parses every theme color constant. A malformed constant is an
// unrecoverable capture failure, not a render-with-defaults situation.
func parsePalette(t recap.Theme) (palette, error) {
	var p palette
	var err error
	if p.bgTop, err = parseOpaque(t.BackgroundTop); err != nil {
		return p, captureErr("parse background color", err)
	}
	if p.bgBottom, err = parseOpaque(t.BackgroundBottom); err != nil {
		return p, captureErr("parse background color", err)
	}
	for _, c := range []struct {
		src string
		dst *color.NRGBA
	}{
		{t.BlockFill, &p.blockFill},
		{t.BlockBorder, &p.blockBorder},
		{t.Text, &p.text},
		{t.Headline, &p.headline},
		{t.PillFill, &p.pillFill},
	} {
		*c.dst, err = parseNRGBA(c.src)
		if err != nil {
			return p, captureErr("parse theme color", err)
		}
	}
	return p, nil
}

func parseOpaque(s string) (colorful.Color, error) {
	c, err := csscolorparser.Parse(s)
	if err != nil {
		return colorful.Color{}, err
	}
	return colorful.Color{R: c.R, G: c.G, B: c.B}, nil
}

func parseNRGBA(s string) (color.NRGBA, error) {
	c, err := csscolorparser.Parse(s)
	if err != nil {
		return color.NRGBA{}, err
	}
	return color.NRGBA{
		R: uint8(c.R*255 + 0.5),
		G: uint8(c.G*255 + 0.5),
		B: uint8(c.B*255 + 0.5),
		A: uint8(c.A*255 + 0.5),
	}, nil
}

// faces bundles the font.Face set used by one capture.
type faces struct {
	name   font.Face
	title  font.Face
	slot   font.Face
	body   font.Face
	footer font.Face
}

func newFaces(regular, bold *opentype.Font) (faces, error) {
	var f faces
	var err error
	mk := func(src *opentype.Font, size float64) font.Face {
		if err != nil {
			return nil
		}
		var face font.Face
		face, err = opentype.NewFace(src, &opentype.FaceOptions{
			Size:    size * Scale,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		return face
	}
	f.name = mk(bold, nameSize)
	f.title = mk(regular, titleSize)
	f.slot = mk(bold, slotSize)
	f.body = mk(regular, bodySize)
	f.footer = mk(regular, footerSize)
	return f, err
}

func (f faces) close() {
	for _, face := range []font.Face{f.name, f.title, f.slot, f.body, f.footer} {
		if face != nil {
			face.Close()
		}
	}
}

// canvas carries the drawing state for one capture.
type canvas struct {
	img   *image.RGBA
	pal   palette
	faces faces
}

// px converts base pixels to output pixels.
func px(v int) int { return v * Scale }

// fillBackground paints the vertical two-stop gradient row by row.
// Blending happens in Lab space so the midpoints stay perceptually even.
func (c *canvas) fillBackground() {
	h := c.img.Bounds().Dy()
	for y := 0; y < h; y++ {
		t := float64(y) / float64(h-1)
		blend := c.pal.bgTop.BlendLab(c.pal.bgBottom, t).Clamped()
		r, g, b := blend.RGB255()
		row := image.Rect(0, y, c.img.Bounds().Dx(), y+1)
		draw.Draw(c.img, row, image.NewUniform(color.NRGBA{R: r, G: g, B: b, A: 255}), image.Point{}, draw.Src)
	}
}

// drawHeader renders the centered name and "Title | Year" line, returning the
// y offset (in output pixels) where the body starts.
func (c *canvas) drawHeader(h recap.Header) int {
	y := px(margin) + faceHeight(c.faces.name)
	c.drawCentered(h.Name, c.faces.name, c.pal.headline, y)

	sub := fmt.Sprintf("%d", h.Year)
	if h.Title != "" {
		sub = fmt.Sprintf("%s | %d", h.Title, h.Year)
	}
	y += px(headerGap) + faceHeight(c.faces.title)
	c.drawCentered(sub, c.faces.title, c.pal.text, y)

	return y + px(margin)
}

// drawRow lays out one bento row starting at output-pixel offset y and
// returns the offset below it. All cells in a row share the row's height so
// the grid lines up.
func (c *canvas) drawRow(row recap.Row, y int) int {
	inner := px(baseWidth - 2*margin)
	gap := px(gutter)

	// Measure cells first: the row is as tall as its tallest cell.
	type measured struct {
		x, w  int
		lines []line
	}
	cells := make([]measured, 0, len(row.Cells))
	x := px(margin)
	rowH := 0
	for _, cell := range row.Cells {
		w := inner * cell.Span / 10
		if len(row.Cells) > 1 {
			w -= gap / 2
		}
		contentW := w - 2*px(blockPad)
		lines := c.layoutSlot(cell.Slot, contentW)
		h := 2*px(blockPad) + linesHeight(lines)
		if h > rowH {
			rowH = h
		}
		cells = append(cells, measured{x: x, w: w, lines: lines})
		x += w + gap
	}

	for _, m := range cells {
		block := image.Rect(m.x, y, m.x+m.w, y+rowH)
		c.fillRect(block, c.pal.blockFill)
		c.strokeRect(block, c.pal.blockBorder)
		c.drawLines(m.lines, m.x+px(blockPad), y+px(blockPad))
	}

	return y + rowH + gap
}

// drawFooter renders the site tag centered near the bottom edge.
func (c *canvas) drawFooter(text string) {
	y := c.img.Bounds().Dy() - px(margin)
	c.drawCentered(text, c.faces.footer, c.pal.text, y)
}

// line is one laid-out line of block content: text at a face, optionally
// rendered as a pill sequence.
type line struct {
	text  string
	face  font.Face
	color color.NRGBA
	pills []string // when set, text is ignored and pills render inline
}

// layoutSlot turns a slot into wrapped lines that fit contentW output pixels.
func (c *canvas) layoutSlot(s recap.Slot, contentW int) []line {
	lines := []line{{text: s.Title, face: c.faces.slot, color: c.pal.text}}

	switch s.Mode {
	case recap.ModeList:
		for _, item := range s.Items {
			for _, l := range wrapText(c.faces.body, "• "+item, contentW) {
				lines = append(lines, line{text: l, face: c.faces.body, color: c.pal.text})
			}
		}
	case recap.ModePills:
		for _, row := range packPills(c.faces.body, s.Items, contentW) {
			lines = append(lines, line{pills: row, face: c.faces.body, color: c.pal.text})
		}
	case recap.ModeQuote:
		for _, l := range wrapText(c.faces.body, "\""+s.Text+"\"", contentW) {
			lines = append(lines, line{text: l, face: c.faces.body, color: c.pal.text})
		}
	default: // ModeJoined
		for _, l := range wrapText(c.faces.body, s.Text, contentW) {
			lines = append(lines, line{text: l, face: c.faces.body, color: c.pal.text})
		}
	}
	return lines
}

func linesHeight(lines []line) int {
	h := 0
	for i, l := range lines {
		if i > 0 {
			h += px(lineGap)
		}
		h += faceHeight(l.face)
		if l.pills != nil {
			h += 2 * px(pillPadY)
		}
	}
	return h
}

// drawLines renders laid-out lines top to bottom from (x, y).
func (c *canvas) drawLines(lines []line, x, y int) {
	for i, l := range lines {
		if i > 0 {
			y += px(lineGap)
		}
		if l.pills != nil {
			y += c.drawPillRow(l, x, y)
			continue
		}
		y += faceHeight(l.face)
		c.drawText(l.text, l.face, l.color, x, y)
	}
}

// drawPillRow renders one packed row of pills and returns its height.
func (c *canvas) drawPillRow(l line, x, y int) int {
	h := faceHeight(l.face) + 2*px(pillPadY)
	for _, p := range l.pills {
		w := measure(l.face, p) + 2*px(pillPadX)
		c.fillRect(image.Rect(x, y, x+w, y+h), c.pal.pillFill)
		c.drawText(p, l.face, l.color, x+px(pillPadX), y+px(pillPadY)+faceHeight(l.face))
		x += w + px(pillGap)
	}
	return h
}

func (c *canvas) drawText(s string, face font.Face, col color.NRGBA, x, baseline int) {
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(x, baseline),
	}
	d.DrawString(s)
}

func (c *canvas) drawCentered(s string, face font.Face, col color.NRGBA, baseline int) {
	w := measure(face, s)
	c.drawText(s, face, col, (c.img.Bounds().Dx()-w)/2, baseline)
}

func (c *canvas) fillRect(r image.Rectangle, col color.NRGBA) {
	draw.Draw(c.img, r, image.NewUniform(col), image.Point{}, draw.Over)
}

// strokeRect draws a 1 base-pixel border as four thin rectangles.
func (c *canvas) strokeRect(r image.Rectangle, col color.NRGBA) {
	b := px(borderPx)
	c.fillRect(image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+b), col)
	c.fillRect(image.Rect(r.Min.X, r.Max.Y-b, r.Max.X, r.Max.Y), col)
	c.fillRect(image.Rect(r.Min.X, r.Min.Y, r.Min.X+b, r.Max.Y), col)
	c.fillRect(image.Rect(r.Max.X-b, r.Min.Y, r.Max.X, r.Max.Y), col)
}

func measure(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}

func faceHeight(face font.Face) int {
	return face.Metrics().Ascent.Ceil()
}

// wrapText greedily wraps text to maxWidth output pixels. Explicit newlines
// in the input are honored; words longer than a line stand alone.
func wrapText(face font.Face, text string, maxWidth int) []string {
	var out []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		cur := words[0]
		for _, w := range words[1:] {
			if measure(face, cur+" "+w) <= maxWidth {
				cur += " " + w
				continue
			}
			out = append(out, cur)
			cur = w
		}
		out = append(out, cur)
	}
	return out
}

// packPills distributes pill labels into rows that fit maxWidth, preserving
// order. A pill wider than the row still gets a row of its own.
func packPills(face font.Face, items []string, maxWidth int) [][]string {
	var rows [][]string
	var cur []string
	used := 0
	for _, item := range items {
		w := measure(face, item) + 2*px(pillPadX)
		if len(cur) > 0 && used+px(pillGap)+w > maxWidth {
			rows = append(rows, cur)
			cur, used = nil, 0
		}
		if len(cur) > 0 {
			used += px(pillGap)
		}
		cur = append(cur, item)
		used += w
	}
	if len(cur) > 0 {
		rows = append(rows, cur)
	}
	return rows
}
