// Package export projects a filtered result set into a downloadable
// tabular PDF. Column values come from the same projection funcs the
// screens render with, so exported and displayed values never diverge.
package export

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/go-pdf/fpdf"
)

// Layout constants, millimetres on A4 landscape.
const (
	pageMargin   = 10.0
	headerH      = 8.0
	textRowH     = 7.0
	imageRowH    = 18.0
	imageCellPad = 1.0
)

// Column describes one exported column. Image, when set, marks the
// column as the table's single image column; Value is still used as
// the fallback when a row has no image bytes.
type Column[T any] struct {
	Header string
	Value  func(T) string
	Image  func(T) []byte
}

// Table is an export layout for one screen.
type Table[T any] struct {
	Title   string
	Columns []Column[T]
}

// WritePDF renders the header and one row per record. Rows are the
// caller's full filtered set, not the current page.
func (t Table[T]) WritePDF(w io.Writer, rows []T) error {
	if len(t.Columns) == 0 {
		return fmt.Errorf("export table %q has no columns", t.Title)
	}
	if n := t.imageColumns(); n > 1 {
		return fmt.Errorf("export table %q has %d image columns, at most 1 supported", t.Title, n)
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, pageMargin)
	pdf.AddPage()

	pageW, pageH := pdf.GetPageSize()
	colW := (pageW - 2*pageMargin) / float64(len(t.Columns))
	rowH := textRowH
	if t.imageColumns() > 0 {
		rowH = imageRowH
	}

	t.drawHeader(pdf, colW)

	imgSeq := 0
	for _, row := range rows {
		if pdf.GetY()+rowH > pageH-pageMargin {
			pdf.AddPage()
			t.drawHeader(pdf, colW)
		}
		y := pdf.GetY()
		x := pageMargin
		pdf.SetFont("Helvetica", "", 8)
		for _, col := range t.Columns {
			pdf.SetXY(x, y)
			if col.Image != nil {
				if img := col.Image(row); len(img) > 0 {
					pdf.CellFormat(colW, rowH, "", "1", 0, "L", false, 0, "")
					imgSeq++
					placeImage(pdf, img, imgSeq, x, y, colW, rowH)
				} else {
					pdf.CellFormat(colW, rowH, truncate(col.Value(row), colW), "1", 0, "L", false, 0, "")
				}
			} else {
				pdf.CellFormat(colW, rowH, truncate(col.Value(row), colW), "1", 0, "L", false, 0, "")
			}
			x += colW
		}
		pdf.SetXY(pageMargin, y+rowH)
	}

	return pdf.Output(w)
}

// SavePDF writes the rendered document to path.
func (t Table[T]) SavePDF(path string, rows []T) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := t.WritePDF(f, rows); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (t Table[T]) drawHeader(pdf *fpdf.Fpdf, colW float64) {
	pdf.SetXY(pageMargin, pdf.GetY())
	if t.Title != "" && pdf.PageNo() == 1 && pdf.GetY() <= pageMargin+1 {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 10, t.Title, "", 1, "L", false, 0, "")
	}
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(230, 230, 230)
	for _, col := range t.Columns {
		pdf.CellFormat(colW, headerH, col.Header, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(headerH)
}

func (t Table[T]) imageColumns() int {
	n := 0
	for _, c := range t.Columns {
		if c.Image != nil {
			n++
		}
	}
	return n
}

// placeImage scales the image into a fixed box inside the cell. An
// unsupported format leaves the cell blank rather than failing the
// whole export.
func placeImage(pdf *fpdf.Fpdf, data []byte, seq int, x, y, cellW, cellH float64) {
	var imgType string
	switch http.DetectContentType(data) {
	case "image/jpeg":
		imgType = "JPG"
	case "image/png":
		imgType = "PNG"
	case "image/gif":
		imgType = "GIF"
	default:
		return
	}

	name := fmt.Sprintf("row-image-%d", seq)
	opts := fpdf.ImageOptions{ImageType: imgType}
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
	if pdf.Err() {
		// Undecodable image data; keep the row, drop the picture.
		pdf.ClearError()
		return
	}

	box := cellH - 2*imageCellPad
	if w := cellW - 2*imageCellPad; w < box {
		box = w
	}
	pdf.ImageOptions(name, x+imageCellPad, y+imageCellPad, box, box, false, opts, 0, "")
}

func truncate(s string, colW float64) string {
	// Rough fit for 8pt Helvetica; fpdf clips overflow anyway, this
	// just keeps neighbouring cells readable.
	max := int(colW / 1.6)
	if max < 4 || len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
