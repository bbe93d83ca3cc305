// Package source provides the rom images to catalog, from plain files and
// from the members of zip and 7z archives.
package source

import (
	"context"
	"path/filepath"
	"slices"
	"strings"
)

// Item is one rom image. Name is the base name of the file or archive
// member, extension included. A non-nil Err means the image could not be
// read, Data is then nil.
type Item struct {
	Name     string
	Category string
	Data     []byte
	Err      error
}

// A Provider calls fn for each rom image it finds, stopping at the first
// error returned by fn or when ctx is done.
type Provider interface {
	Scan(ctx context.Context, fn func(Item) error) error
}

// Slice is an in-memory Provider.
type Slice []Item

func (s Slice) Scan(ctx context.Context, fn func(Item) error) error {
	for _, it := range s {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(it); err != nil {
			return err
		}
	}
	return nil
}

// Category returns the first directory of path below root, or an empty
// string if path is directly under root.
func Category(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return ""
	}
	segs := strings.Split(filepath.ToSlash(rel), "/")
	if len(segs) < 2 || segs[0] == ".." || segs[0] == "." {
		return ""
	}
	return segs[0]
}

// DefaultROMExts are the extensions of Game Boy and Game Boy Color roms.
var DefaultROMExts = []string{".gb", ".gbc"}

// hasExt reports whether name has one of exts, case insensitively.
func hasExt(name string, exts []string) bool {
	ext := filepath.Ext(name)
	return slices.ContainsFunc(exts, func(e string) bool {
		return strings.EqualFold(e, ext)
	})
}
