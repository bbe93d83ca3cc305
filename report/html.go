package report

import (
	_ "embed"
	"html/template"
	"io"
	"strings"

	"gbcat/catalog"
	"gbcat/gbrom"
)

//go:embed template.html
var defaultTemplate string

// DefaultTemplate returns the built-in HTML report template.
func DefaultTemplate() *template.Template {
	return template.Must(template.New("report").Parse(defaultTemplate))
}

// LoadTemplate parses the HTML report template at path. The template is
// executed with the same data as the built-in one.
func LoadTemplate(path string) (*template.Template, error) {
	return template.ParseFiles(path)
}

const nbsp = "\u00a0"

// Alignment width of the ROM and RAM columns.
const (
	romWidth = 6
	ramWidth = 5
)

type htmlCode struct {
	Text    string
	Aligned string
	Known   bool
}

type htmlROM struct {
	Name     string
	Title    string
	Cart     htmlCode
	ROM      htmlCode
	RAM      htmlCode
	SGB      string
	Category string
}

type htmlFailure struct {
	Name     string
	Category string
	Error    string
}

type htmlData struct {
	ROMs          []htmlROM
	Failures      []htmlFailure
	TablesVersion int
}

// align right-aligns s on width characters with non-breaking spaces.
func align(s string, width int) string {
	if n := width - len(s); n > 0 {
		return strings.Repeat(nbsp, n) + s
	}
	return s
}

func newHTMLCode(c gbrom.Classified[string], width int) htmlCode {
	hc := htmlCode{Text: c.String(), Known: c.IsKnown()}
	hc.Aligned = hc.Text
	if hc.Known {
		hc.Aligned = align(hc.Text, width)
	}
	return hc
}

func sgbMark(sgb bool) string {
	if sgb {
		return "✓"
	}
	return "✗"
}

func newHTMLData(cat *catalog.Catalog) htmlData {
	data := htmlData{TablesVersion: gbrom.TablesVersion}
	for _, e := range cat.Entries {
		data.ROMs = append(data.ROMs, htmlROM{
			Name:     e.DisplayName(),
			Title:    e.Title,
			Cart:     newHTMLCode(e.CartType, 0),
			ROM:      newHTMLCode(e.ROMSize, romWidth),
			RAM:      newHTMLCode(e.RAMSize, ramWidth),
			SGB:      sgbMark(e.SGB),
			Category: e.Category,
		})
	}
	for _, f := range cat.Failures {
		data.Failures = append(data.Failures, htmlFailure{
			Name:     f.SourceName,
			Category: f.Category,
			Error:    f.Err.Error(),
		})
	}
	return data
}

// WriteHTML renders cat with tmpl, or with the built-in template if tmpl is
// nil.
func WriteHTML(w io.Writer, cat *catalog.Catalog, tmpl *template.Template) error {
	if tmpl == nil {
		tmpl = DefaultTemplate()
	}
	return tmpl.Execute(w, newHTMLData(cat))
}
