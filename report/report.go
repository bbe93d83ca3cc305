// Package report renders a rom catalog as HTML or JSON.
package report

import (
	"fmt"
	"html/template"
	"io"
	"os"

	"gbcat/catalog"
	"gbcat/log"
)

// WriteFiles writes the reports selected by f to base with the .html and/or
// .json extension, and returns the names of the written files. A nil tmpl
// selects the built-in HTML template.
func WriteFiles(base string, f Format, cat *catalog.Catalog, tmpl *template.Template) ([]string, error) {
	var names []string

	if f.hasHTML() {
		name := OutputName(base, ".html")
		if err := writeFile(name, func(w io.Writer) error { return WriteHTML(w, cat, tmpl) }); err != nil {
			return names, err
		}
		names = append(names, name)
	}
	if f.hasJSON() {
		name := OutputName(base, ".json")
		if err := writeFile(name, func(w io.Writer) error { return WriteJSON(w, cat) }); err != nil {
			return names, err
		}
		names = append(names, name)
	}
	return names, nil
}

func writeFile(name string, write func(io.Writer) error) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	log.ModReport.Debugf("wrote %s", name)
	return nil
}
