package composer

type PageKind string

const (
	KindCover   PageKind = "cover"
	KindContent PageKind = "content"
	KindCloser  PageKind = "closer"
)

// Page is one of *CoverPage, *ContentPage or *CloserPage.
type Page interface {
	PageKind() PageKind
}

// Document is the paginated description of a plan, ready for rendering.
type Document struct {
	Pages []Page `json:"pages"`
}

// Empty reports whether there is nothing to draw.
func (d Document) Empty() bool { return len(d.Pages) == 0 }

// Panel is the free-text body shared by cover and closer pages.
type Panel struct {
	Heading     string `json:"heading,omitempty"`
	Subtitle    string `json:"subtitle,omitempty"`
	BodyText    string `json:"body_text,omitempty"`
	FooterText  string `json:"footer_text,omitempty"`
	ShowLogo    bool   `json:"show_logo"`
	LogoURL     string `json:"logo_url,omitempty"`
	AccentColor string `json:"accent_color"`
}

type CoverPage struct {
	Kind PageKind `json:"kind"`
	Panel
}

func (*CoverPage) PageKind() PageKind { return KindCover }

type CloserPage struct {
	Kind PageKind `json:"kind"`
	Panel
}

func (*CloserPage) PageKind() PageKind { return KindCloser }

// Header is the metadata strip drawn at the top of every content page.
type Header struct {
	LogoURL      string       `json:"logo_url,omitempty"`
	LogoPosition LogoPosition `json:"logo_position"`
	AccentColor  string       `json:"accent_color"`
	ClientName   string       `json:"client_name"`
	CoachName    string       `json:"coach_name,omitempty"`
	GeneratedOn  string       `json:"generated_on"`
}

type ContentPage struct {
	Kind            PageKind  `json:"kind"`
	Title           string    `json:"title"`
	Header          Header    `json:"header"`
	Sections        []Section `json:"sections"`
	PageBreakBefore bool      `json:"page_break_before"`
	Footer          string    `json:"footer,omitempty"`
}

func (*ContentPage) PageKind() PageKind { return KindContent }

// Section is a titled block of items laid out in rows of Columns cells.
type Section struct {
	Title   string   `json:"title,omitempty"`
	Columns int      `json:"columns"`
	Rows    [][]Item `json:"rows"`
}

// Item is a rendered record card. Blank items only pad rows.
type Item struct {
	Title    string   `json:"title,omitempty"`
	Subtitle string   `json:"subtitle,omitempty"`
	Facts    []Fact   `json:"facts,omitempty"`
	Badges   []string `json:"badges,omitempty"`
	Body     string   `json:"body,omitempty"`
	Note     string   `json:"note,omitempty"`
	Blank    bool     `json:"blank,omitempty"`
}

type Fact struct {
	Label string `json:"label"`
	Value string `json:"value"`
}
