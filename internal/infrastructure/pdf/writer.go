package pdf

import (
	"io"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"
	"github.com/m-mizutani/goerr/v2"

	"PoliceDigest/internal/ports"
	"PoliceDigest/internal/report"
)

const creator = "police-digest"

// Writer replays rendered documents onto fpdf pages.
type Writer struct{}

var _ ports.DocumentWriter = (*Writer)(nil)

// NewWriter builds a PDF document writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Write encodes doc as PDF into w.
func (w *Writer) Write(doc *report.Document, out io.Writer) error {
	if doc == nil {
		return goerr.New("nil document")
	}

	pdf := build(doc)
	if err := pdf.Output(out); err != nil {
		return goerr.Wrap(err, "encode pdf", goerr.V("file", doc.FileName))
	}
	return nil
}

// Save writes doc into dir under its own file name and returns the path.
// The file appears atomically: it is written to a temporary name first.
func (w *Writer) Save(doc *report.Document, dir string) (string, error) {
	if doc == nil {
		return "", goerr.New("nil document")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", goerr.Wrap(err, "create output dir", goerr.V("dir", dir))
	}

	tmp, err := os.CreateTemp(dir, ".report-*.pdf")
	if err != nil {
		return "", goerr.Wrap(err, "create temp file", goerr.V("dir", dir))
	}
	defer os.Remove(tmp.Name())

	if err := w.Write(doc, tmp); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", goerr.Wrap(err, "close temp file", goerr.V("file", tmp.Name()))
	}

	path := filepath.Join(dir, doc.FileName)
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", goerr.Wrap(err, "move report into place", goerr.V("path", path))
	}
	return path, nil
}

func build(doc *report.Document) *fpdf.Fpdf {
	cfg := doc.Config
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: cfg.Width, Ht: cfg.Height},
	})
	pdf.SetMargins(cfg.MarginLeft, cfg.MarginTop, cfg.MarginRight)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(doc.Title, true)
	pdf.SetAuthor(doc.Author, true)
	pdf.SetSubject(doc.Subject, true)
	pdf.SetCreator(creator, true)
	if !doc.CreatedAt.IsZero() {
		pdf.SetCreationDate(doc.CreatedAt)
	}

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	anchors := doc.Outline

	for _, page := range doc.Pages {
		pdf.AddPage()

		for len(anchors) > 0 && anchors[0].Page == page.Number {
			a := anchors[0]
			pdf.Bookmark(tr(a.Label), a.Level, a.Y)
			anchors = anchors[1:]
		}

		for _, op := range page.Ops {
			replay(pdf, tr, op)
		}
	}
	return pdf
}

func replay(pdf *fpdf.Fpdf, tr func(string) string, op report.Op) {
	switch o := op.(type) {
	case report.TextOp:
		pdf.SetFont(o.Font.Family, o.Font.Style, o.Font.Size)
		pdf.SetTextColor(o.Color.R, o.Color.G, o.Color.B)
		pdf.Text(o.X, o.Y, tr(o.Text))
	case report.RectOp:
		pdf.SetFillColor(o.Fill.R, o.Fill.G, o.Fill.B)
		pdf.SetDrawColor(o.Stroke.R, o.Stroke.G, o.Stroke.B)
		if o.LineWidth > 0 {
			pdf.SetLineWidth(o.LineWidth)
		}
		if o.Radius > 0 {
			pdf.RoundedRect(o.X, o.Y, o.W, o.H, o.Radius, "1234", string(o.Style))
		} else {
			pdf.Rect(o.X, o.Y, o.W, o.H, string(o.Style))
		}
	case report.LineOp:
		pdf.SetDrawColor(o.Color.R, o.Color.G, o.Color.B)
		pdf.SetLineWidth(o.Width)
		pdf.Line(o.X1, o.Y1, o.X2, o.Y2)
	case report.CircleOp:
		pdf.SetFillColor(o.Fill.R, o.Fill.G, o.Fill.B)
		pdf.SetDrawColor(o.Stroke.R, o.Stroke.G, o.Stroke.B)
		pdf.Circle(o.X, o.Y, o.R, string(o.Style))
	}
}
