package report

// All report geometry is expressed in millimetres; font sizes are in points.
const ptToMM = 25.4 / 72

// Color is an RGB triple in the 0..255 range.
type Color struct {
	R, G, B int
}

// Font selects a typeface. Style is any combination of "B" and "I".
type Font struct {
	Family string
	Style  string
	Size   float64
}

// LineHeight is the vertical advance for one line set in f.
func (f Font) LineHeight() float64 {
	return f.Size * ptToMM * 1.45
}

// baseline offsets a line's top edge to where the glyph baseline sits.
func (f Font) baseline() float64 {
	return f.Size * ptToMM * 1.05
}

// PageConfig fixes the page size and the printable area.
type PageConfig struct {
	Width        float64
	Height       float64
	MarginLeft   float64
	MarginRight  float64
	MarginTop    float64
	MarginBottom float64
	// HeaderHeight is reserved below MarginTop for the stamped page header.
	HeaderHeight float64
}

// A4 is the default portrait page used by the daily report.
func A4() PageConfig {
	return PageConfig{
		Width:        210,
		Height:       297,
		MarginLeft:   20,
		MarginRight:  20,
		MarginTop:    10,
		MarginBottom: 22,
		HeaderHeight: 22,
	}
}

// ContentTop is where body content starts on every page.
func (c PageConfig) ContentTop() float64 {
	return c.MarginTop + c.HeaderHeight
}

// ContentBottom is the lowest y body content may reach.
func (c PageConfig) ContentBottom() float64 {
	return c.Height - c.MarginBottom
}

// ContentWidth is the printable width between the side margins.
func (c PageConfig) ContentWidth() float64 {
	return c.Width - c.MarginLeft - c.MarginRight
}
