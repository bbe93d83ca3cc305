package gbrom

import "github.com/google/go-cmp/cmp"

var cmpOpts = cmp.AllowUnexported(Classified[string]{})

// synthROM returns a zero filled rom image of the given size, with the
// header bytes in hdr copied at their offset.
func synthROM(size int, hdr map[int]byte) []byte {
	buf := make([]byte, size)
	for off, b := range hdr {
		buf[off] = b
	}
	return buf
}

func withTitle(buf []byte, title string) []byte {
	copy(buf[TitleStart:TitleEnd], title)
	return buf
}
