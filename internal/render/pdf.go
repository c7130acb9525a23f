// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/pdiddy/lab-answers/pkg/types"
)

// PDFCanvas draws black text in a single PDF core font with gofpdf.
// Automatic page breaks are off; the Renderer decides where pages start.
type PDFCanvas struct {
	pdf *gofpdf.Fpdf

	// tr converts UTF-8 to the cp1252 encoding of the core fonts. Both
	// MeasureText and DrawText apply it so widths match what is drawn.
	tr func(string) string
}

var _ Canvas = (*PDFCanvas)(nil)

// NewPDFCanvas creates an empty document with the page size and font of cfg.
func NewPDFCanvas(cfg types.RenderConfig) (*PDFCanvas, error) {
	if cfg.PageWidth <= 0 || cfg.PageHeight <= 0 {
		return nil, fmt.Errorf("invalid page size %.2fx%.2f", cfg.PageWidth, cfg.PageHeight)
	}
	if cfg.FontSize <= 0 {
		return nil, fmt.Errorf("invalid font size %.2f", cfg.FontSize)
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: cfg.PageWidth, Ht: cfg.PageHeight},
	})
	pdf.SetMargins(cfg.Margin, cfg.Margin, cfg.Margin)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetFont(cfg.FontFamily, "", cfg.FontSize)
	pdf.SetTextColor(0, 0, 0)
	if cfg.Title != "" {
		pdf.SetTitle(cfg.Title, true)
	}
	pdf.SetCreator("lab-answers", false)
	pdf.SetAuthor("lab-answers", false)

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("initializing PDF: %w", err)
	}
	return &PDFCanvas{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}, nil
}

func (p *PDFCanvas) AddPage() { p.pdf.AddPage() }

func (p *PDFCanvas) MeasureText(s string) float64 {
	return p.pdf.GetStringWidth(p.tr(s))
}

func (p *PDFCanvas) DrawText(x, y float64, s string) {
	p.pdf.Text(x, y, p.tr(s))
}

func (p *PDFCanvas) PageCount() int { return p.pdf.PageCount() }

// Output writes the finished document. Errors recorded by gofpdf while
// drawing surface here.
func (p *PDFCanvas) Output(w io.Writer) error {
	return p.pdf.Output(w)
}
