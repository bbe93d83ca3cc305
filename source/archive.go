package source

import (
	"archive/zip"
	"io"
	"io/fs"

	"github.com/bodgit/sevenzip"
)

// archiveError is an error opening the archive itself, as opposed to an
// error returned by a callback.
type archiveError struct{ err error }

func (e *archiveError) Error() string { return e.err.Error() }
func (e *archiveError) Unwrap() error { return e.err }

// openArchiveFunc reads each file member accepted by match and calls fn
// with its base name and content.
type openArchiveFunc func(path string, match func(name string) bool, fn func(name string, data []byte, err error) error) error

func openZip(path string, match func(string) bool, fn func(string, []byte, error) error) error {
	r, err := zip.OpenReader(path)
	if err != nil {
		return &archiveError{err}
	}
	defer r.Close()

	return readMembers(r.File, match, fn)
}

func open7z(path string, match func(string) bool, fn func(string, []byte, error) error) error {
	r, err := sevenzip.OpenReader(path)
	if err != nil {
		return &archiveError{err}
	}
	defer r.Close()

	return readMembers(r.File, match, fn)
}

type archiveFile interface {
	FileInfo() fs.FileInfo
	Open() (io.ReadCloser, error)
}

func readMembers[F archiveFile](files []F, match func(string) bool, fn func(string, []byte, error) error) error {
	for _, f := range files {
		fi := f.FileInfo()
		if fi.IsDir() || !match(fi.Name()) {
			continue
		}

		data, err := readAll(f)
		if err := fn(fi.Name(), data, err); err != nil {
			return err
		}
	}
	return nil
}

func readAll(f archiveFile) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return io.ReadAll(rc)
}
