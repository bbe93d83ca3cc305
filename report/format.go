package report

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=Format -linecomment

// Format is the kind of report to output.
type Format int

const (
	HTML Format = iota // html
	JSON               // json
	Both               // both
)

// ParseFormat returns the format named s.
func ParseFormat(s string) (Format, error) {
	for f := HTML; f <= Both; f++ {
		if strings.EqualFold(s, f.String()) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown report format %q", s)
}

func (f Format) hasHTML() bool { return f == HTML || f == Both }
func (f Format) hasJSON() bool { return f == JSON || f == Both }

// OutputName returns base with ext appended, unless base already ends with it.
func OutputName(base, ext string) string {
	if strings.HasSuffix(base, ext) {
		return base
	}
	return base + ext
}
