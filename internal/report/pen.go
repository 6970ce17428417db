package report

import "PoliceDigest/internal/markup"

var (
	fontTitle        = Font{Family: "Helvetica", Style: "B", Size: 18}
	fontSubtitle     = Font{Family: "Helvetica", Size: 11}
	fontHeading      = Font{Family: "Helvetica", Style: "B", Size: 13}
	fontSubheading   = Font{Family: "Helvetica", Style: "B", Size: 10.5}
	fontClusterTitle = Font{Family: "Helvetica", Style: "B", Size: 12}
	fontBody         = Font{Family: "Helvetica", Size: 10}
	fontSmall        = Font{Family: "Helvetica", Size: 9}
	fontLabel        = Font{Family: "Helvetica", Style: "B", Size: 9}
	fontItalic       = Font{Family: "Helvetica", Style: "I", Size: 9}
	fontEmphasis     = Font{Family: "Helvetica", Style: "B", Size: 9.5}
	fontBadge        = Font{Family: "Helvetica", Style: "B", Size: 7}
	fontTable        = Font{Family: "Helvetica", Size: 9}
	fontTableHead    = Font{Family: "Helvetica", Style: "B", Size: 9}
	fontHeaderOrg    = Font{Family: "Helvetica", Style: "B", Size: 11}
	fontHeaderMeta   = Font{Family: "Helvetica", Size: 7.5}
	fontClassified   = Font{Family: "Helvetica", Style: "B", Size: 8}
	fontFooter       = Font{Family: "Helvetica", Size: 8}
)

const sectionGap = 6.0

// pen bundles the surface, the cursor writing into it and the text measurer.
// Every draw goes to the cursor's current page.
type pen struct {
	s   *Surface
	c   *Cursor
	m   Measurer
	cfg PageConfig
}

func (p *pen) left() float64  { return p.cfg.MarginLeft }
func (p *pen) width() float64 { return p.cfg.ContentWidth() }

func (p *pen) draw(op Op) {
	p.s.Draw(p.c.Page(), op)
}

func (p *pen) text(x, y float64, s string, f Font, col Color) {
	p.draw(TextOp{X: x, Y: y, Text: s, Font: f, Color: col})
}

func (p *pen) mark(kind, label string, level int) {
	p.s.Mark(Anchor{Kind: kind, Label: label, Page: p.c.Page(), Y: p.c.Y(), Level: level})
}

// line writes a single unwrapped line at the cursor.
func (p *pen) line(x float64, s string, f Font, col Color) {
	lh := f.LineHeight()
	p.c.EnsureSpace(lh)
	p.text(x, p.c.Y()+f.baseline(), s, f, col)
	p.c.Advance(lh)
}

// paragraph wraps free text to width and writes it line by line, so long
// paragraphs continue on the next page. Returns the number of lines written.
func (p *pen) paragraph(x float64, text string, width float64, f Font, col Color) int {
	lines := Wrap(p.m, markup.PlainText(text), width, f)
	for _, l := range lines {
		p.line(x, l, f, col)
	}
	return len(lines)
}

// block writes pre-wrapped lines starting at y without touching the cursor
// and returns the y below the last line.
func (p *pen) block(x, y float64, lines []string, f Font, col Color) float64 {
	for _, l := range lines {
		p.text(x, y+f.baseline(), l, f, col)
		y += f.LineHeight()
	}
	return y
}

// heading starts a section, keeping the heading together with at least two body lines.
func (p *pen) heading(title, kind string) {
	p.c.EnsureSpace(fontHeading.LineHeight() + 3 + 2*fontBody.LineHeight())
	p.mark(kind, title, 0)

	y := p.c.Y()
	p.text(p.left(), y+fontHeading.baseline(), title, fontHeading, colorBrand)
	ruleY := y + fontHeading.LineHeight() + 0.5
	p.draw(LineOp{X1: p.left(), Y1: ruleY, X2: p.left() + p.width(), Y2: ruleY, Color: colorBrand, Width: 0.4})
	p.c.Advance(fontHeading.LineHeight() + 3)
}

func (p *pen) badge(x, y, w float64, label string, colors ColorPair) {
	h := fontBadge.LineHeight() + 1.5
	p.draw(RectOp{X: x, Y: y, W: w, H: h, Radius: 1.5, Fill: colors.Background, Stroke: colors.Border, LineWidth: 0.2, Style: PaintFillStroke})
	p.text(x+2, y+0.75+fontBadge.baseline(), label, fontBadge, colors.Text)
}

func (p *pen) rightAligned(page int, y float64, s string, f Font, col Color) {
	x := p.cfg.Width - p.cfg.MarginRight - p.m.StringWidth(s, f)
	p.s.Draw(page, TextOp{X: x, Y: y, Text: s, Font: f, Color: col})
}
