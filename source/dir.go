package source

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gbcat/log"
)

// Dir provides the roms found under a directory tree. Roms are plain files
// with one of ROMExts extensions or, if Archives is set, members of zip and
// 7z archives with one of these extensions. Files are visited in lexical
// order.
type Dir struct {
	Root     string
	ROMExts  []string // DefaultROMExts if empty
	Archives bool
}

func (d *Dir) romExts() []string {
	if len(d.ROMExts) == 0 {
		return DefaultROMExts
	}
	return d.ROMExts
}

func (d *Dir) Scan(ctx context.Context, fn func(Item) error) error {
	exts := d.romExts()

	return filepath.WalkDir(d.Root, func(path string, de fs.DirEntry, err error) error {
		if err != nil {
			if path == d.Root {
				return err
			}
			log.ModScan.Warnf("cannot read %s: %v", path, err)
			if ferr := fn(Item{Name: filepath.Base(path), Category: Category(d.Root, path), Err: err}); ferr != nil {
				return ferr
			}
			if de != nil && de.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if de.IsDir() {
			return nil
		}

		category := Category(d.Root, path)

		switch ext := strings.ToLower(filepath.Ext(path)); {
		case hasExt(path, exts):
			log.ModScan.Debugf("reading %s", path)
			data, err := os.ReadFile(path)
			if err != nil {
				log.ModScan.Warnf("cannot read %s: %v", path, err)
			}
			return fn(Item{Name: de.Name(), Category: category, Data: data, Err: err})

		case d.Archives && ext == ".zip":
			return scanArchive(path, category, exts, openZip, fn)

		case d.Archives && ext == ".7z":
			return scanArchive(path, category, exts, open7z, fn)
		}

		log.ModScan.Debugf("ignoring file %s", path)
		return nil
	})
}

// scanArchive calls fn for each rom member of the archive at path. Members
// lose their directory inside the archive and inherit the archive category.
func scanArchive(path, category string, exts []string, open openArchiveFunc, fn func(Item) error) error {
	err := open(path, func(name string) bool { return hasExt(name, exts) },
		func(name string, data []byte, err error) error {
			if err != nil {
				log.ModScan.Warnf("cannot extract %s from %s: %v", name, path, err)
				err = fmt.Errorf("%s: %w", filepath.Base(path), err)
			} else {
				log.ModScan.Debugf("extracted %s from %s", name, path)
			}
			return fn(Item{Name: name, Category: category, Data: data, Err: err})
		})

	var aerr *archiveError
	if err != nil && errors.As(err, &aerr) {
		log.ModScan.Warnf("cannot open archive %s: %v", path, aerr.err)
		return fn(Item{Name: filepath.Base(path), Category: category, Err: aerr.err})
	}
	return err
}
