package render

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/yaoapp/agenda/agenda"
	"github.com/yaoapp/agenda/config"
	"github.com/yaoapp/agenda/share"
	"github.com/yaoapp/kun/log"
)

// Page sides of a spread
const (
	SideLeft  = "left"
	SideRight = "right"
)

const (
	padding = 6.0
	gap     = 8.0
)

// Spread renders each week as a two-page spread into one PDF document
type Spread struct {
	layout config.Layout
	pdf    *fpdf.Fpdf
	tr     func(string) string
	bold   string
	pages  []string
}

// NewSpread create a PDF spread renderer with the given layout
func NewSpread(layout config.Layout) (*Spread, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}

	// font files are resolved by the layout, not by fpdf
	pdf := fpdf.New(strings.ToUpper(layout.Orientation), "pt", layout.PageSize, "")
	pdf.SetMargins(layout.Margin, layout.Margin, layout.Margin)
	pdf.SetAutoPageBreak(false, layout.Margin)
	pdf.SetTitle(layout.Title, true)
	pdf.SetCreator(fmt.Sprintf("%s %s", share.BUILDNAME, share.VERSION), true)

	spread := &Spread{layout: layout, pdf: pdf, bold: "B"}
	if layout.FontFile == "" {
		spread.tr = pdf.UnicodeTranslatorFromDescriptor("")
	} else {
		spread.tr = func(s string) string { return s }
		pdf.AddUTF8Font(layout.FontFamily, "", layout.FontPath(layout.FontFile))
		if layout.BoldFontFile != "" {
			pdf.AddUTF8Font(layout.FontFamily, "B", layout.FontPath(layout.BoldFontFile))
		} else {
			spread.bold = ""
		}
	}

	if pdf.Err() {
		return nil, fmt.Errorf("layout: %w", pdf.Error())
	}
	return spread, nil
}

// RenderWeek add the left and the right page of the week
func (spread *Spread) RenderWeek(content agenda.WeeklyContent) error {
	split := spread.layout.LeftDays
	if split > len(content.Days) {
		split = len(content.Days)
	}

	spread.addPage(content, SideLeft)
	top := spread.leftHeader(content)
	spread.days(content.Days[:split], top, spread.bottom())

	spread.addPage(content, SideRight)
	top = spread.rightHeader(content)
	notes := spread.notesHeight()
	spread.days(content.Days[split:], top, spread.bottom()-notes)
	spread.notes(content, spread.bottom()-notes+gap)

	if spread.pdf.Err() {
		return spread.pdf.Error()
	}

	log.Trace("[render] week of %s pages %d", content.Monday.Format("2006-01-02"), spread.pdf.PageCount())
	return nil
}

// Pages the generated pages, "<monday>/<side>"
func (spread *Spread) Pages() []string {
	return append([]string{}, spread.pages...)
}

// PageCount the number of generated pages
func (spread *Spread) PageCount() int {
	return spread.pdf.PageCount()
}

// Output write the document, composited onto the layout background when set
func (spread *Spread) Output(w io.Writer) error {
	if spread.pdf.PageCount() == 0 {
		return fmt.Errorf("the document has no pages")
	}

	buf := &bytes.Buffer{}
	if err := spread.pdf.Output(buf); err != nil {
		return err
	}

	if spread.layout.Background == "" {
		_, err := w.Write(buf.Bytes())
		return err
	}

	return Composite(bytes.NewReader(buf.Bytes()), w, spread.layout.Background)
}

// Save write the document to the file
func (spread *Spread) Save(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return err
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := spread.Output(file); err != nil {
		file.Close()
		os.Remove(path)
		return err
	}

	return file.Close()
}

func (spread *Spread) addPage(content agenda.WeeklyContent, side string) {
	spread.pdf.AddPage()
	spread.pages = append(spread.pages, fmt.Sprintf("%s/%s", content.Monday.Format("2006-01-02"), side))
}

func (spread *Spread) width() float64 {
	w, _ := spread.pdf.GetPageSize()
	return w - 2*spread.layout.Margin
}

func (spread *Spread) bottom() float64 {
	_, h := spread.pdf.GetPageSize()
	return h - spread.layout.Margin
}

func (spread *Spread) lineHeight() float64 {
	return spread.layout.BodySize * spread.layout.LineHeight
}

func (spread *Spread) headingHeight() float64 {
	return spread.layout.HeadingSize * spread.layout.LineHeight
}

// leftHeader month title and concept label, returns the top of the day boxes
func (spread *Spread) leftHeader(content agenda.WeeklyContent) float64 {
	pdf := spread.pdf
	m := spread.layout.Margin

	pdf.SetXY(m, m)
	pdf.SetFont(spread.layout.FontFamily, spread.bold, spread.layout.TitleSize)
	pdf.CellFormat(spread.width(), spread.layout.TitleSize*1.2, spread.tr(content.Monday.Format("January 2006")), "", 1, "L", false, 0, "")

	if content.Concept != "" {
		pdf.SetX(m)
		pdf.SetFont(spread.layout.FontFamily, "", spread.layout.HeadingSize)
		pdf.CellFormat(spread.width(), spread.headingHeight(), spread.tr("Concept of the quarter: "+content.Concept), "", 1, "L", false, 0, "")
	}

	return pdf.GetY() + gap
}

// rightHeader the week range, returns the top of the day boxes
func (spread *Spread) rightHeader(content agenda.WeeklyContent) float64 {
	pdf := spread.pdf
	m := spread.layout.Margin

	friday := content.Monday.AddDate(0, 0, agenda.WorkDays-1)
	pdf.SetXY(m, m)
	pdf.SetFont(spread.layout.FontFamily, spread.bold, spread.layout.HeadingSize)
	pdf.CellFormat(spread.width(), spread.headingHeight(), spread.tr(fmt.Sprintf("%s - %s", content.Monday.Format("Jan 2"), friday.Format("Jan 2, 2006"))), "", 1, "R", false, 0, "")

	return pdf.GetY() + gap
}

// days one framed box per day between top and bottom
func (spread *Spread) days(days []agenda.Day, top, bottom float64) {
	if len(days) == 0 || bottom <= top {
		return
	}

	pdf := spread.pdf
	m := spread.layout.Margin
	w := spread.width()
	h := (bottom - top) / float64(len(days))
	lh := spread.lineHeight()

	for i, day := range days {
		y := top + float64(i)*h
		pdf.Rect(m, y, w, h-gap, "D")

		pdf.SetXY(m+padding, y+padding)
		pdf.SetFont(spread.layout.FontFamily, spread.bold, spread.layout.HeadingSize)
		pdf.CellFormat(w-2*padding, spread.headingHeight(), spread.tr(day.Date.Format("Monday 2")), "", 2, "L", false, 0, "")

		pdf.SetFont(spread.layout.FontFamily, "", spread.layout.BodySize)
		limit := y + h - gap - padding
		for _, line := range day.Lines {
			if pdf.GetY()+lh > limit {
				log.Warn("[render] %s: %d lines do not fit the box", day.Date.Format("2006-01-02"), len(day.Lines))
				break
			}
			pdf.SetX(m + padding)
			pdf.CellFormat(w-2*padding, lh, spread.tr(line), "", 2, "L", false, 0, "")
		}
	}
}

// notesHeight the space reserved for the quote and the idea
func (spread *Spread) notesHeight() float64 {
	return 2*(spread.headingHeight()+3*spread.lineHeight()) + 2*gap
}

// notes quote and idea of the week
func (spread *Spread) notes(content agenda.WeeklyContent, top float64) {
	pdf := spread.pdf
	m := spread.layout.Margin
	w := spread.width()
	lh := spread.lineHeight()

	pdf.SetXY(m, top)
	if content.Quote != nil {
		text := fmt.Sprintf("\"%s\"", content.Quote.Text)
		if content.Quote.Author != "" {
			text = fmt.Sprintf("%s -- %s", text, content.Quote.Author)
		}
		pdf.SetFont(spread.layout.FontFamily, spread.bold, spread.layout.HeadingSize)
		pdf.CellFormat(w, spread.headingHeight(), spread.tr("Quote of the week"), "", 1, "L", false, 0, "")
		pdf.SetX(m)
		pdf.SetFont(spread.layout.FontFamily, "", spread.layout.BodySize)
		pdf.MultiCell(w, lh, spread.tr(text), "", "L", false)
		pdf.Ln(gap)
	}

	if content.Idea != "" {
		pdf.SetX(m)
		pdf.SetFont(spread.layout.FontFamily, spread.bold, spread.layout.HeadingSize)
		pdf.CellFormat(w, spread.headingHeight(), spread.tr("Idea of the week"), "", 1, "L", false, 0, "")
		pdf.SetX(m)
		pdf.SetFont(spread.layout.FontFamily, "", spread.layout.BodySize)
		pdf.MultiCell(w, lh, spread.tr(content.Idea), "", "L", false)
	}
}
