package renderer

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"backend/composer"
)

type stubImages struct {
	data  []byte
	calls int
	err   error
}

func (s *stubImages) Fetch(ctx context.Context, url string) ([]byte, string, error) {
	s.calls++
	if s.err != nil {
		return nil, "", s.err
	}
	return s.data, "PNG", nil
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			img.Set(x, y, color.RGBA{R: 0x44, G: 0xB0, B: 0x80, A: 0xFF})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func sampleDocument(logo string) composer.Document {
	s := func(v string) *string { return &v }
	raw := composer.RawBranding{
		AccentColor:      s("#FF0000"),
		LogoURL:          s(logo),
		CoachDisplayName: s("Coach Dana"),
		CoverPage:        &composer.RawCustomPage{Heading: s("Your plan"), BodyText: s("Eat well, train hard.")},
		CloserPage:       &composer.RawCustomPage{FooterText: s("Thanks!")},
	}
	var supps []composer.SupplementRecord
	for i, w := range composer.WhenToTakePriority {
		supps = append(supps, composer.SupplementRecord{
			ID: strconv.Itoa(i), Name: "Omega 3", PillsPerDose: 2, WhenToTake: w, Benefits: "Heart health",
		})
	}
	var meals []composer.MealRecord
	for i := 0; i < 7; i++ {
		meals = append(meals, composer.MealRecord{
			ID: strconv.Itoa(i), Name: "Crème brûlée oats", Category: composer.Breakfast, Calories: 420,
			ProteinG: 20, CarbsG: 55, FatsG: 9, PortionSize: "1 bowl", Note: "Add berries and crème fraîche… 2 tbsp",
			Flags: composer.DietaryFlags{Vegan: true},
		})
	}
	at := time.Date(2025, time.December, 12, 0, 0, 0, 0, time.UTC)
	return composer.ComposeMealPlan(raw, supps, meals, "Alex", at, composer.DefaultOptions())
}

func TestRenderProducesPDF(t *testing.T) {
	images := &stubImages{data: pngBytes(t)}
	r := NewPDFRenderer(images)

	out, err := r.Render(context.Background(), sampleDocument("https://cdn.example.com/logo.png"))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(out.PDF, []byte("%PDF-")) {
		t.Fatalf("output is not a PDF: %q", out.PDF[:min(len(out.PDF), 16)])
	}
	if images.calls != 1 {
		t.Errorf("logo fetched %d times, want 1", images.calls)
	}
}

func TestRenderSkipsBrokenLogo(t *testing.T) {
	r := NewPDFRenderer(&stubImages{err: errors.New("boom")})
	out, err := r.Render(context.Background(), sampleDocument("https://cdn.example.com/logo.png"))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(out.PDF, []byte("%PDF-")) {
		t.Fatalf("output is not a PDF")
	}
}

func TestRenderInvalidImageData(t *testing.T) {
	r := NewPDFRenderer(&stubImages{data: []byte("not a png")})
	if _, err := r.Render(context.Background(), sampleDocument("https://cdn.example.com/logo.png")); err != nil {
		t.Fatalf("render: %v", err)
	}
}

func TestRenderEmptyDocument(t *testing.T) {
	r := NewPDFRenderer(nil)
	_, err := r.Render(context.Background(), composer.Document{})
	if !errors.Is(err, ErrEmptyDocument) {
		t.Fatalf("err = %v, want ErrEmptyDocument", err)
	}
}

// physicalPages counts page objects in the written PDF.
func physicalPages(pdf []byte) int {
	return bytes.Count(pdf, []byte("/Type /Page\n"))
}

func TestRenderCountsOverflowPages(t *testing.T) {
	var supps []composer.SupplementRecord
	for _, w := range composer.WhenToTakePriority {
		for i := 0; i < 7; i++ {
			supps = append(supps, composer.SupplementRecord{
				ID: string(w) + strconv.Itoa(i), Name: "Omega 3", PillsPerDose: 2, WhenToTake: w,
				Benefits: "Heart health", Dosage: "1000mg",
			})
		}
	}
	doc := composer.ComposeMealPlan(composer.RawBranding{}, supps, nil, "Alex",
		time.Date(2025, time.December, 12, 0, 0, 0, 0, time.UTC), composer.DefaultOptions())
	if len(doc.Pages) != 1 {
		t.Fatalf("document pages = %d, want 1", len(doc.Pages))
	}

	out, err := NewPDFRenderer(nil).Render(context.Background(), doc)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out.Pages < 2 {
		t.Errorf("pages = %d, want the supplements to overflow", out.Pages)
	}
	if got := physicalPages(out.PDF); got != out.Pages {
		t.Errorf("pages = %d, pdf has %d", out.Pages, got)
	}
}

func TestRenderKeepsLongFooterOnClosingPage(t *testing.T) {
	footer := strings.Repeat("Thank you for training with us this season, see you at the next check-in. ", 12)
	doc := composer.Document{Pages: []composer.Page{
		&composer.CloserPage{Kind: composer.KindCloser, Panel: composer.Panel{
			Heading:     "See you soon",
			BodyText:    "Keep going.",
			FooterText:  footer + "\n",
			AccentColor: composer.DefaultAccentColor,
		}},
	}}

	out, err := NewPDFRenderer(nil).Render(context.Background(), doc)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out.Pages != 1 || physicalPages(out.PDF) != 1 {
		t.Errorf("pages = %d, pdf has %d, want 1", out.Pages, physicalPages(out.PDF))
	}
}

func TestHTTPImageFetcher(t *testing.T) {
	data := pngBytes(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing.png" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(data)
	}))
	defer srv.Close()

	f := NewHTTPImageFetcher()
	got, typ, err := f.Fetch(context.Background(), srv.URL+"/logo")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if typ != "PNG" || !bytes.Equal(got, data) {
		t.Errorf("typ = %q, %d bytes", typ, len(got))
	}
	if _, _, err := f.Fetch(context.Background(), srv.URL+"/missing.png"); err == nil {
		t.Errorf("expected error for 404")
	}
}

func TestImageType(t *testing.T) {
	cases := []struct{ ct, name, want string }{
		{"image/png", "", "PNG"},
		{"image/jpeg; charset=binary", "", "JPG"},
		{"application/octet-stream", "logo.JPEG", "JPG"},
		{"", "logo.gif", "GIF"},
		{"text/html", "logo", ""},
	}
	for _, c := range cases {
		if got := ImageType(c.ct, c.name); got != c.want {
			t.Errorf("ImageType(%q, %q) = %q, want %q", c.ct, c.name, got, c.want)
		}
	}
}

func TestHexToRGB(t *testing.T) {
	if r, g, b := HexToRGB("#FF0000"); r != 255 || g != 0 || b != 0 {
		t.Errorf("got %d,%d,%d", r, g, b)
	}
	if r, g, b := HexToRGB("#0f0"); r != 0 || g != 255 || b != 0 {
		t.Errorf("got %d,%d,%d", r, g, b)
	}
	if r, g, b := HexToRGB("nope"); r != 0x44 || g != 0xB0 || b != 0x80 {
		t.Errorf("fallback got %d,%d,%d", r, g, b)
	}
}
