package source

import (
	"archive/zip"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCategory(t *testing.T) {
	root := filepath.Join("roms")
	tests := []struct {
		path string
		want string
	}{
		{filepath.Join("roms", "tetris.gb"), ""},
		{filepath.Join("roms", "Puzzle", "tetris.gb"), "Puzzle"},
		{filepath.Join("roms", "Puzzle", "Falling", "tetris.gb"), "Puzzle"},
		{filepath.Join("roms", "Action", "pack.zip"), "Action"},
		{filepath.Join("elsewhere", "x", "tetris.gb"), ""},
		{"roms", ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := Category(root, tt.path); got != tt.want {
				t.Errorf("Category(%q, %q) = %q, want %q", root, tt.path, got, tt.want)
			}
		})
	}
}

func TestHasExt(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"tetris.gb", true},
		{"TETRIS.GB", true},
		{"zelda.gbc", true},
		{"zelda.Gbc", true},
		{"readme.txt", false},
		{"gb", false},
		{"pack.gb.zip", false},
	}
	for _, tt := range tests {
		if got := hasExt(tt.name, DefaultROMExts); got != tt.want {
			t.Errorf("hasExt(%q) = %t, want %t", tt.name, got, tt.want)
		}
	}
}

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
}

// writeZip creates a zip archive at path. Names ending with a slash are
// directories.
func writeZip(t *testing.T, path string, files map[string]string, order []string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	for _, name := range order {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write([]byte(files[name])); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
}

type scanned struct {
	Name     string
	Category string
	Data     string
	Failed   bool
}

func scanAll(t *testing.T, p Provider) []scanned {
	t.Helper()

	var got []scanned
	err := p.Scan(context.Background(), func(it Item) error {
		got = append(got, scanned{it.Name, it.Category, string(it.Data), it.Err != nil})
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	return got
}

func TestDirScan(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.gb"), []byte("rom a"))
	writeFile(t, filepath.Join(root, "readme.txt"), []byte("not a rom"))
	writeFile(t, filepath.Join(root, "Puzzle", "b.GBC"), []byte("rom b"))
	writeFile(t, filepath.Join(root, "Puzzle", "sub", "c.gb"), []byte("rom c"))
	writeFile(t, filepath.Join(root, "bad.zip"), []byte("not a zip"))
	writeZip(t, filepath.Join(root, "Action", "pack.zip"),
		map[string]string{
			"roms/":       "",
			"roms/d.gb":   "rom d",
			"notes.txt":   "notes",
			"e.gbc":       "rom e",
			"f.gb.bak":    "backup",
			"roms/x/g.gb": "rom g",
		},
		[]string{"roms/", "roms/d.gb", "notes.txt", "e.gbc", "f.gb.bak", "roms/x/g.gb"})

	t.Run("with archives", func(t *testing.T) {
		got := scanAll(t, &Dir{Root: root, Archives: true})
		want := []scanned{
			{"d.gb", "Action", "rom d", false},
			{"e.gbc", "Action", "rom e", false},
			{"g.gb", "Action", "rom g", false},
			{"b.GBC", "Puzzle", "rom b", false},
			{"c.gb", "Puzzle", "rom c", false},
			{"a.gb", "", "rom a", false},
			{"bad.zip", "", "", true},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("Scan mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("without archives", func(t *testing.T) {
		got := scanAll(t, &Dir{Root: root})
		want := []scanned{
			{"b.GBC", "Puzzle", "rom b", false},
			{"c.gb", "Puzzle", "rom c", false},
			{"a.gb", "", "rom a", false},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("Scan mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("custom extensions", func(t *testing.T) {
		got := scanAll(t, &Dir{Root: root, ROMExts: []string{".txt"}})
		want := []scanned{
			{"readme.txt", "", "not a rom", false},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("Scan mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestDirScanMissingRoot(t *testing.T) {
	d := &Dir{Root: filepath.Join(t.TempDir(), "nope")}
	err := d.Scan(context.Background(), func(Item) error { return nil })
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Scan error = %v, want ErrNotExist", err)
	}
}

func TestDirScanStop(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.gb"), []byte("a"))
	writeFile(t, filepath.Join(root, "b.gb"), []byte("b"))

	errStop := errors.New("stop")
	var n int
	err := (&Dir{Root: root}).Scan(context.Background(), func(Item) error {
		n++
		return errStop
	})
	if !errors.Is(err, errStop) || n != 1 {
		t.Fatalf("Scan = %v after %d items, want errStop after 1", err, n)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = (&Dir{Root: root}).Scan(ctx, func(Item) error {
		t.Fatal("callback called with canceled context")
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Scan error = %v, want context.Canceled", err)
	}
}

func TestSliceScan(t *testing.T) {
	items := Slice{
		{Name: "a.gb", Data: []byte("a")},
		{Name: "b.gb", Category: "Puzzle", Data: []byte("b")},
	}
	want := []scanned{
		{"a.gb", "", "a", false},
		{"b.gb", "Puzzle", "b", false},
	}
	if diff := cmp.Diff(want, scanAll(t, items)); diff != "" {
		t.Fatalf("Scan mismatch (-want +got):\n%s", diff)
	}
}
