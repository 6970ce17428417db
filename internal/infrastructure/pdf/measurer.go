package pdf

import (
	"sync"

	"github.com/go-pdf/fpdf"

	"PoliceDigest/internal/report"
)

// Measurer answers text width queries with the core font metrics fpdf
// embeds, so layout and output agree on every line break.
type Measurer struct {
	mu        sync.Mutex
	pdf       *fpdf.Fpdf
	translate func(string) string
}

var _ report.Measurer = (*Measurer)(nil)

// NewMeasurer allocates a scratch document used only for metrics.
func NewMeasurer() *Measurer {
	doc := fpdf.New("P", "mm", "A4", "")
	return &Measurer{pdf: doc, translate: doc.UnicodeTranslatorFromDescriptor("")}
}

// StringWidth returns the width of text in millimetres.
func (m *Measurer) StringWidth(text string, font report.Font) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.pdf.SetFont(font.Family, font.Style, font.Size)
	return m.pdf.GetStringWidth(m.translate(text))
}
