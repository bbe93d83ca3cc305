package main

import (
	"archive/zip"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"gbcat/gbrom"
)

/* general testing helpers */

func tcheck(tb testing.TB, err error) {
	if err == nil {
		return
	}

	tb.Helper()
	tb.Fatalf("fatal error:\n\n%s\n", err)
}

func tcheckf(tb testing.TB, err error, format string, args ...any) {
	if err == nil {
		return
	}

	tb.Helper()
	tb.Fatalf("fatal error:\n\n%s: %s\n", fmt.Sprintf(format, args...), err)
}

/* rom images */

func romImage(title string, cart, rom, ram byte, sgb bool) []byte {
	buf := make([]byte, 0x8000)
	copy(buf[gbrom.TitleStart:gbrom.TitleEnd], title)
	buf[gbrom.CartCode] = cart
	buf[gbrom.ROMCode] = rom
	buf[gbrom.RAMCode] = ram
	if sgb {
		buf[gbrom.SGBFlag] = 0x03
	}
	return buf
}

func writeTestFile(tb testing.TB, path string, data []byte) {
	tb.Helper()
	tcheck(tb, os.MkdirAll(filepath.Dir(path), 0o755))
	tcheckf(tb, os.WriteFile(path, data, 0o644), "writing %s", path)
}

func writeTestZip(tb testing.TB, path string, members map[string][]byte) {
	tb.Helper()
	tcheck(tb, os.MkdirAll(filepath.Dir(path), 0o755))

	f, err := os.Create(path)
	tcheck(tb, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	for name, data := range members {
		w, err := zw.Create(name)
		tcheck(tb, err)
		_, err = w.Write(data)
		tcheck(tb, err)
	}
	tcheck(tb, zw.Close())
}
