package report

import (
	"fmt"
	"time"
)

// stamper decorates pages with the branding header and the footer.
type stamper struct {
	p          *pen
	org        string
	subtitle   string
	classified string
	renderedAt time.Time
}

// header draws the branding band at the top of the given page.
func (st *stamper) header(page int) {
	cfg := st.p.cfg
	s := st.p.s
	x := cfg.MarginLeft
	top := cfg.MarginTop

	s.Draw(page, CircleOp{X: x + 6, Y: top + 7, R: 6, Fill: colorBrand, Stroke: colorBrand, Style: PaintFill})
	emblem := "AP"
	ew := st.p.m.StringWidth(emblem, fontHeaderOrg)
	s.Draw(page, TextOp{X: x + 6 - ew/2, Y: top + 8.5, Text: emblem, Font: fontHeaderOrg, Color: colorWhite})

	s.Draw(page, TextOp{X: x + 15, Y: top + 6, Text: st.org, Font: fontHeaderOrg, Color: colorBrand})
	s.Draw(page, TextOp{X: x + 15, Y: top + 11, Text: st.subtitle, Font: fontHeaderMeta, Color: colorMuted})

	st.p.rightAligned(page, top+6, st.classified, fontClassified, colorClassify)
	st.p.rightAligned(page, top+11, "Generated: "+st.renderedAt.Format("02 Jan 2006 15:04"), fontHeaderMeta, colorMuted)

	ruleY := top + 16
	s.Draw(page, LineOp{X1: x, Y1: ruleY, X2: cfg.Width - cfg.MarginRight, Y2: ruleY, Color: colorBrand, Width: 0.5})
}

// finalize is the second pass: once the page count is known every page
// gets its classification footer and a "Page i of N" marker.
func (st *stamper) finalize() {
	cfg := st.p.cfg
	s := st.p.s
	total := s.PageCount()
	ruleY := cfg.ContentBottom() + 8
	textY := ruleY + 5

	for page := 1; page <= total; page++ {
		s.Draw(page, LineOp{X1: cfg.MarginLeft, Y1: ruleY, X2: cfg.Width - cfg.MarginRight, Y2: ruleY, Color: colorRule, Width: 0.3})
		s.Draw(page, TextOp{X: cfg.MarginLeft, Y: textY, Text: st.classified, Font: fontFooter, Color: colorClassify})

		center := st.org + " - " + st.renderedAt.Format("02/01/2006 15:04")
		cw := st.p.m.StringWidth(center, fontFooter)
		s.Draw(page, TextOp{X: (cfg.Width - cw) / 2, Y: textY, Text: center, Font: fontFooter, Color: colorMuted})

		st.p.rightAligned(page, textY, fmt.Sprintf("Page %d of %d", page, total), fontFooter, colorMuted)
	}
}
