package report

import "time"

// Op is a single buffered draw command.
type Op interface {
	isOp()
}

// PaintStyle follows the usual PDF shorthand: fill, draw (stroke) or both.
type PaintStyle string

const (
	PaintFill       PaintStyle = "F"
	PaintStroke     PaintStyle = "D"
	PaintFillStroke PaintStyle = "FD"
)

// TextOp writes one line of text with its baseline at Y.
type TextOp struct {
	X, Y  float64
	Text  string
	Font  Font
	Color Color
}

// RectOp paints a rectangle; a positive Radius rounds its corners.
type RectOp struct {
	X, Y, W, H float64
	Radius     float64
	Fill       Color
	Stroke     Color
	LineWidth  float64
	Style      PaintStyle
}

// LineOp draws a straight rule.
type LineOp struct {
	X1, Y1, X2, Y2 float64
	Color          Color
	Width          float64
}

// CircleOp paints a circle centred on X,Y.
type CircleOp struct {
	X, Y, R float64
	Fill    Color
	Stroke  Color
	Style   PaintStyle
}

func (TextOp) isOp()   {}
func (RectOp) isOp()   {}
func (LineOp) isOp()   {}
func (CircleOp) isOp() {}

// Page is an addressable record in the page arena.
type Page struct {
	Number int
	Ops    []Op
}

// Texts returns the text ops of the page in draw order.
func (p *Page) Texts() []TextOp {
	var out []TextOp
	for _, op := range p.Ops {
		if t, ok := op.(TextOp); ok {
			out = append(out, t)
		}
	}
	return out
}

// Anchor kinds recorded in the document outline.
const (
	AnchorSummary       = "summary"
	AnchorAlerts        = "alerts"
	AnchorAlert         = "alert"
	AnchorClusters      = "clusters"
	AnchorCluster       = "cluster"
	AnchorStatistics    = "statistics"
	AnchorDistribution  = "distribution"
	AnchorAuthorization = "authorization"
)

// Anchor marks where a section or entity block starts.
type Anchor struct {
	Kind  string
	Label string
	Page  int
	Y     float64
	Level int
}

// Surface is the drawing target shared by the block renderers: an arena of
// pages that only ever grows, plus the outline collected while rendering.
type Surface struct {
	cfg     PageConfig
	pages   []*Page
	outline []Anchor
}

// NewSurface allocates the surface with its first page.
func NewSurface(cfg PageConfig) *Surface {
	s := &Surface{cfg: cfg}
	s.AddPage()
	return s
}

// Config returns the page geometry.
func (s *Surface) Config() PageConfig {
	return s.cfg
}

// AddPage appends an empty page and returns its number (1-based).
func (s *Surface) AddPage() int {
	p := &Page{Number: len(s.pages) + 1}
	s.pages = append(s.pages, p)
	return p.Number
}

// PageCount is the number of allocated pages.
func (s *Surface) PageCount() int {
	return len(s.pages)
}

// Draw appends op to the page with the given number.
func (s *Surface) Draw(page int, op Op) {
	s.pages[page-1].Ops = append(s.pages[page-1].Ops, op)
}

// Mark records an outline anchor.
func (s *Surface) Mark(a Anchor) {
	s.outline = append(s.outline, a)
}

// Document is the finished, paginated report.
type Document struct {
	Config    PageConfig
	Pages     []*Page
	Outline   []Anchor
	FileName  string
	Title     string
	Author    string
	Subject   string
	CreatedAt time.Time
}

// PageCount is the number of pages in the document.
func (d *Document) PageCount() int {
	return len(d.Pages)
}

// Anchors returns the outline entries of the given kind in document order.
func (d *Document) Anchors(kind string) []Anchor {
	var out []Anchor
	for _, a := range d.Outline {
		if a.Kind == kind {
			out = append(out, a)
		}
	}
	return out
}

// Texts returns every text op across all pages, in order.
func (d *Document) Texts() []TextOp {
	var out []TextOp
	for _, p := range d.Pages {
		out = append(out, p.Texts()...)
	}
	return out
}
