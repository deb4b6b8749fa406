package renderer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"backend/composer"

	"github.com/jung-kurt/gofpdf"
)

// ErrEmptyDocument is returned when a document has no pages to draw.
var ErrEmptyDocument = errors.New("nothing to render")

const (
	margin          = 40.0
	contentLogoSize = 80.0
	panelLogoSize   = 100.0
	cardGap         = 10.0
	lineHeight      = 14.0
	panelFooterLine = 16.0
	fontFamily      = "Helvetica"
)

// ImageFetcher loads a logo. The returned type is a gofpdf image type
// ("PNG", "JPG" or "GIF").
type ImageFetcher interface {
	Fetch(ctx context.Context, url string) (data []byte, imageType string, err error)
}

// HTTPImageFetcher downloads logos over HTTP.
type HTTPImageFetcher struct {
	Client *http.Client
}

func NewHTTPImageFetcher() *HTTPImageFetcher {
	return &HTTPImageFetcher{Client: &http.Client{Timeout: 10 * time.Second}}
}

func (f *HTTPImageFetcher) Fetch(ctx context.Context, url string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", err
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch logo: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("logo fetch returned %d", resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, 5<<20))
	if err != nil {
		return nil, "", fmt.Errorf("failed to read logo: %w", err)
	}
	typ := ImageType(resp.Header.Get("Content-Type"), url)
	if typ == "" {
		return nil, "", fmt.Errorf("unsupported logo type %q", resp.Header.Get("Content-Type"))
	}
	return data, typ, nil
}

// ImageType maps a content type, or failing that a file extension, to a
// gofpdf image type.
func ImageType(contentType, name string) string {
	switch strings.ToLower(strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0])) {
	case "image/png":
		return "PNG"
	case "image/jpeg", "image/jpg":
		return "JPG"
	case "image/gif":
		return "GIF"
	}
	lower := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lower, ".png"):
		return "PNG"
	case strings.HasSuffix(lower, ".jpg"), strings.HasSuffix(lower, ".jpeg"):
		return "JPG"
	case strings.HasSuffix(lower, ".gif"):
		return "GIF"
	}
	return ""
}

// PDFRenderer draws a composed plan onto A4 pages.
type PDFRenderer struct {
	images ImageFetcher
}

// NewPDFRenderer returns a renderer. A nil fetcher disables logos.
func NewPDFRenderer(images ImageFetcher) *PDFRenderer {
	return &PDFRenderer{images: images}
}

// Rendered is a finished PDF. Pages counts physical pages, which can exceed
// the document's page count when sections overflow.
type Rendered struct {
	PDF   []byte
	Pages int
}

type pdfState struct {
	pdf    *gofpdf.Fpdf
	tr     func(string) string
	logos  map[string]string
	width  float64
	height float64
}

func (r *PDFRenderer) Render(ctx context.Context, doc composer.Document) (*Rendered, error) {
	if doc.Empty() {
		return nil, ErrEmptyDocument
	}

	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, margin)
	w, h := pdf.GetPageSize()
	st := &pdfState{
		pdf:    pdf,
		tr:     pdf.UnicodeTranslatorFromDescriptor(""),
		logos:  make(map[string]string),
		width:  w,
		height: h,
	}

	// content pages of the same kind flow on until a page break is requested
	prevTitle := ""
	for _, p := range doc.Pages {
		switch page := p.(type) {
		case *composer.CoverPage:
			pdf.AddPage()
			r.drawPanel(ctx, st, page.Panel)
			prevTitle = ""
		case *composer.CloserPage:
			pdf.AddPage()
			r.drawPanel(ctx, st, page.Panel)
			prevTitle = ""
		case *composer.ContentPage:
			if page.Title != prevTitle || page.PageBreakBefore {
				pdf.AddPage()
			}
			r.drawContent(ctx, st, page)
			prevTitle = page.Title
		}
	}

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("pdf render failed: %w", err)
	}
	pages := pdf.PageNo()
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output failed: %w", err)
	}
	return &Rendered{PDF: buf.Bytes(), Pages: pages}, nil
}

func (r *PDFRenderer) drawPanel(ctx context.Context, st *pdfState, p composer.Panel) {
	pdf := st.pdf
	cr, cg, cb := HexToRGB(p.AccentColor)
	inner := st.width - 2*margin

	// a cover or closer is always a single physical page
	pdf.SetAutoPageBreak(false, 0)
	defer pdf.SetAutoPageBreak(true, margin)

	y := margin + 60
	if p.ShowLogo && p.LogoURL != "" {
		if name := r.logo(ctx, st, p.LogoURL); name != "" {
			pdf.ImageOptions(name, (st.width-panelLogoSize)/2, y, panelLogoSize, panelLogoSize, false,
				gofpdf.ImageOptions{ReadDpi: false}, 0, "")
			y += panelLogoSize + 30
		}
	}

	pdf.SetXY(margin, y)
	if p.Heading != "" {
		pdf.SetFont(fontFamily, "B", 26)
		pdf.SetTextColor(33, 33, 33)
		pdf.MultiCell(inner, 32, st.tr(p.Heading), "", "C", false)
		pdf.SetDrawColor(cr, cg, cb)
		pdf.SetLineWidth(2)
		lineY := pdf.GetY() + 6
		pdf.Line(st.width/2-60, lineY, st.width/2+60, lineY)
		pdf.SetY(lineY + 14)
	}
	if p.Subtitle != "" {
		pdf.SetFont(fontFamily, "", 14)
		pdf.SetTextColor(100, 100, 100)
		pdf.SetX(margin)
		pdf.MultiCell(inner, 20, st.tr(p.Subtitle), "", "C", false)
		pdf.Ln(16)
	}
	if p.BodyText != "" {
		pdf.SetFont(fontFamily, "", 12)
		pdf.SetTextColor(55, 55, 55)
		pdf.SetX(margin)
		pdf.MultiCell(inner, 18, st.tr(p.BodyText), "", "C", false)
	}
	if p.FooterText != "" {
		pdf.SetFont(fontFamily, "I", 11)
		pdf.SetTextColor(cr, cg, cb)
		footer := strings.TrimRight(p.FooterText, "\n")
		lines := splitText(st, footer, inner)
		pdf.SetXY(margin, max(pdf.GetY(), st.height-margin-float64(len(lines))*panelFooterLine))
		pdf.MultiCell(inner, panelFooterLine, st.tr(footer), "", "C", false)
	}
}

func (r *PDFRenderer) drawContent(ctx context.Context, st *pdfState, page *composer.ContentPage) {
	pdf := st.pdf
	hdr := page.Header
	cr, cg, cb := HexToRGB(hdr.AccentColor)
	inner := st.width - 2*margin

	top := pdf.GetY()
	if hdr.LogoURL != "" {
		if name := r.logo(ctx, st, hdr.LogoURL); name != "" {
			x := margin
			switch hdr.LogoPosition {
			case composer.LogoTopCenter:
				x = (st.width - contentLogoSize) / 2
			case composer.LogoTopRight:
				x = st.width - margin - contentLogoSize
			}
			pdf.ImageOptions(name, x, top, contentLogoSize, contentLogoSize, false,
				gofpdf.ImageOptions{ReadDpi: false}, 0, "")
			pdf.SetY(top + contentLogoSize + 10)
		}
	}

	pdf.SetX(margin)
	pdf.SetFont(fontFamily, "B", 20)
	pdf.SetTextColor(33, 33, 33)
	pdf.CellFormat(inner, 26, st.tr(page.Title), "", 1, "L", false, 0, "")
	pdf.SetDrawColor(cr, cg, cb)
	pdf.SetLineWidth(2)
	pdf.Line(margin, pdf.GetY()+2, st.width-margin, pdf.GetY()+2)
	pdf.Ln(8)

	pdf.SetFont(fontFamily, "", 10)
	pdf.SetTextColor(100, 100, 100)
	meta := "Client: " + hdr.ClientName
	if hdr.CoachName != "" {
		meta += "   Coach: " + hdr.CoachName
	}
	pdf.CellFormat(inner/2, lineHeight, st.tr(meta), "", 0, "L", false, 0, "")
	pdf.CellFormat(inner/2, lineHeight, st.tr(hdr.GeneratedOn), "", 1, "R", false, 0, "")
	pdf.Ln(10)

	for _, sec := range page.Sections {
		drawSection(st, sec, cr, cg, cb)
	}

	if page.Footer != "" {
		pdf.SetFont(fontFamily, "I", 9)
		pdf.SetTextColor(140, 140, 140)
		pdf.Ln(10)
		pdf.SetX(margin)
		pdf.CellFormat(inner, lineHeight, st.tr(page.Footer), "", 1, "C", false, 0, "")
	}
}

func drawSection(st *pdfState, sec composer.Section, cr, cg, cb int) {
	pdf := st.pdf
	inner := st.width - 2*margin

	if sec.Title != "" {
		pdf.SetX(margin)
		pdf.SetFont(fontFamily, "B", 14)
		pdf.SetTextColor(cr, cg, cb)
		pdf.CellFormat(inner, 20, st.tr(sec.Title), "", 1, "L", false, 0, "")
		pdf.Ln(2)
	}

	cols := sec.Columns
	if cols < 1 {
		cols = 1
	}
	cardW := (inner - cardGap*float64(cols-1)) / float64(cols)
	for _, row := range sec.Rows {
		rowH := 0.0
		for _, it := range row {
			rowH = max(rowH, cardHeight(st, it, cardW))
		}
		if pdf.GetY()+rowH > st.height-margin {
			pdf.AddPage()
		}
		y := pdf.GetY()
		for i, it := range row {
			x := margin + float64(i)*(cardW+cardGap)
			if !it.Blank {
				drawCard(st, it, x, y, cardW, rowH, cr, cg, cb)
			}
		}
		pdf.SetXY(margin, y+rowH+cardGap)
	}
	pdf.Ln(6)
}

func cardLines(st *pdfState, it composer.Item, w float64) []string {
	pdf := st.pdf
	var lines []string
	pdf.SetFont(fontFamily, "", 9)
	add := func(s string) {
		if s == "" {
			return
		}
		lines = append(lines, splitText(st, s, w-12)...)
	}
	add(it.Subtitle)
	for _, f := range it.Facts {
		add(f.Label + ": " + f.Value)
	}
	if len(it.Badges) > 0 {
		add(strings.Join(it.Badges, " | "))
	}
	add(it.Body)
	if it.Note != "" {
		add("Note: " + it.Note)
	}
	return lines
}

// splitText wraps s to width w in the current font. The returned lines are
// already translated for the core fonts, whose width tables only cover
// single-byte codes.
func splitText(st *pdfState, s string, w float64) []string {
	raw := st.tr(s)
	runes := make([]rune, len(raw))
	for i := 0; i < len(raw); i++ {
		runes[i] = rune(raw[i])
	}
	lines := st.pdf.SplitText(string(runes), w)
	for i, l := range lines {
		b := make([]byte, 0, len(l))
		for _, r := range l {
			b = append(b, byte(r))
		}
		lines[i] = string(b)
	}
	return lines
}

func cardHeight(st *pdfState, it composer.Item, w float64) float64 {
	if it.Blank {
		return 0
	}
	return 28 + float64(len(cardLines(st, it, w)))*12 + 6
}

func drawCard(st *pdfState, it composer.Item, x, y, w, h float64, cr, cg, cb int) {
	pdf := st.pdf
	lines := cardLines(st, it, w)

	pdf.SetDrawColor(cr, cg, cb)
	pdf.SetLineWidth(1)
	pdf.Rect(x, y, w, h, "D")

	pdf.SetXY(x+6, y+6)
	pdf.SetFont(fontFamily, "B", 11)
	pdf.SetTextColor(33, 33, 33)
	pdf.CellFormat(w-12, 16, st.tr(it.Title), "", 2, "L", false, 0, "")

	pdf.SetFont(fontFamily, "", 9)
	pdf.SetTextColor(70, 70, 70)
	for _, l := range lines {
		pdf.SetX(x + 6)
		pdf.CellFormat(w-12, 12, l, "", 2, "L", false, 0, "")
	}
}

// logo registers a logo once per document and returns its image name, or ""
// when it could not be loaded.
func (r *PDFRenderer) logo(ctx context.Context, st *pdfState, url string) string {
	if name, ok := st.logos[url]; ok {
		return name
	}
	st.logos[url] = ""
	if r.images == nil {
		return ""
	}
	data, typ, err := r.images.Fetch(ctx, url)
	if err != nil {
		log.Printf("renderer: skipping logo %s: %v", url, err)
		return ""
	}
	name := "logo" + strconv.Itoa(len(st.logos))
	info := st.pdf.RegisterImageOptionsReader(name, gofpdf.ImageOptions{ImageType: typ}, bytes.NewReader(data))
	if info == nil || st.pdf.Err() {
		log.Printf("renderer: invalid logo image %s: %v", url, st.pdf.Error())
		st.pdf.ClearError()
		return ""
	}
	st.logos[url] = name
	return name
}

// HexToRGB parses "#RRGGBB" or "#RGB". Anything else yields the default
// accent color.
func HexToRGB(hex string) (int, int, int) {
	h := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return HexToRGB(composer.DefaultAccentColor)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return HexToRGB(composer.DefaultAccentColor)
	}
	return int(v >> 16 & 0xFF), int(v >> 8 & 0xFF), int(v & 0xFF)
}
