package report

// Cursor tracks the page being written and the vertical write position on it.
type Cursor struct {
	surface *Surface
	page    int
	y       float64
	top     float64
	limit   float64

	// OnBreak runs right after a page break with the new page number.
	OnBreak func(page int)
}

// NewCursor starts at the content top of the surface's last page.
func NewCursor(s *Surface) *Cursor {
	cfg := s.Config()
	return &Cursor{
		surface: s,
		page:    s.PageCount(),
		y:       cfg.ContentTop(),
		top:     cfg.ContentTop(),
		limit:   cfg.ContentBottom(),
	}
}

// Page is the current page number (1-based).
func (c *Cursor) Page() int {
	return c.page
}

// Y is the current vertical write position.
func (c *Cursor) Y() float64 {
	return c.y
}

// Remaining is the printable height left on the current page.
func (c *Cursor) Remaining() float64 {
	return c.limit - c.y
}

// EnsureSpace starts a new page when a block of height h would cross the
// bottom margin and reports whether it did. A cursor already at the top of a
// page never breaks: a block taller than a page is written there and overflows.
func (c *Cursor) EnsureSpace(h float64) bool {
	if c.y+h <= c.limit || c.y <= c.top {
		return false
	}

	c.page = c.surface.AddPage()
	c.y = c.top
	if c.OnBreak != nil {
		c.OnBreak(c.page)
	}
	return true
}

// Advance moves the cursor down after a block has been written.
func (c *Cursor) Advance(h float64) {
	c.y += h
}
