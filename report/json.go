package report

import (
	"fmt"
	"io"

	"github.com/go-faster/jx"

	"gbcat/catalog"
	"gbcat/gbrom"
)

func encodeCode(e *jx.Encoder, c gbrom.Classified[string]) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("code", func(e *jx.Encoder) {
			e.Str(fmt.Sprintf("0x%02X", c.Raw()))
		})
		e.Field("name", func(e *jx.Encoder) {
			if v, ok := c.Value(); ok {
				e.Str(v)
			} else {
				e.Null()
			}
		})
	})
}

func encodeEntry(e *jx.Encoder, rom catalog.Entry) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("filename", func(e *jx.Encoder) { e.Str(rom.DisplayName()) })
		e.Field("category", func(e *jx.Encoder) { e.Str(rom.Category) })
		e.Field("title", func(e *jx.Encoder) { e.Str(rom.Title) })
		e.Field("cart", func(e *jx.Encoder) { encodeCode(e, rom.CartType) })
		e.Field("rom", func(e *jx.Encoder) { encodeCode(e, rom.ROMSize) })
		e.Field("ram", func(e *jx.Encoder) { encodeCode(e, rom.RAMSize) })
		e.Field("sgb", func(e *jx.Encoder) { e.Bool(rom.SGB) })
	})
}

func encodeFailure(e *jx.Encoder, f catalog.Failure) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("filename", func(e *jx.Encoder) { e.Str(f.SourceName) })
		e.Field("category", func(e *jx.Encoder) { e.Str(f.Category) })
		e.Field("error", func(e *jx.Encoder) { e.Str(f.Err.Error()) })
	})
}

// WriteJSON writes cat as an indented JSON document.
func WriteJSON(w io.Writer, cat *catalog.Catalog) error {
	var e jx.Encoder
	e.SetIdent(2)

	e.Obj(func(e *jx.Encoder) {
		e.Field("tables_version", func(e *jx.Encoder) { e.Int(gbrom.TablesVersion) })
		e.Field("roms", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for _, rom := range cat.Entries {
					encodeEntry(e, rom)
				}
			})
		})
		e.Field("errors", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for _, f := range cat.Failures {
					encodeFailure(e, f)
				}
			})
		})
	})
	_, err := w.Write(append(e.Bytes(), '\n'))
	return err
}
