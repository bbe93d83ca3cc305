// Package gbrom decodes the cartridge header of Game Boy and Game Boy Color
// ROM images.
package gbrom

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Header offsets.
const (
	TitleStart = 0x134
	TitleEnd   = 0x144 // exclusive
	SGBFlag    = 0x146
	CartCode   = 0x147
	ROMCode    = 0x148
	RAMCode    = 0x149

	// HeaderEnd is the minimum size of a ROM image.
	HeaderEnd = 0x150
)

// sgbSupported is the value of the SGB flag byte for games supporting the
// Super Game Boy functions.
const sgbSupported = 0x03

// ErrTooShort is returned for buffers that can't hold a complete header.
var ErrTooShort = errors.New("rom image too short")

// ParseError reports a buffer too short to hold a cartridge header.
type ParseError struct {
	Size int // size of the buffer
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %d bytes, needs %d", ErrTooShort, e.Size, HeaderEnd)
}

func (e *ParseError) Is(target error) bool { return target == ErrTooShort }

// Header holds the decoded fields of a cartridge header.
type Header struct {
	Title    string
	SGB      bool // Super Game Boy support
	CartType Classified[string]
	ROMSize  Classified[string]
	RAMSize  Classified[string]
}

// Parse decodes the cartridge header of the ROM image in buf. It does not
// retain buf.
func Parse(buf []byte) (Header, error) {
	if len(buf) < HeaderEnd {
		return Header{}, &ParseError{Size: len(buf)}
	}

	return Header{
		Title:    decodeTitle(buf[TitleStart:TitleEnd]),
		SGB:      buf[SGBFlag] == sgbSupported,
		CartType: CartType(buf[CartCode]),
		ROMSize:  ROMSize(buf[ROMCode]),
		RAMSize:  RAMSize(buf[RAMCode]),
	}, nil
}

// decodeTitle maps each byte to a character, non printable ASCII bytes
// become spaces, then trailing spaces are trimmed.
func decodeTitle(p []byte) string {
	var title [TitleEnd - TitleStart]byte
	n := copy(title[:], p)
	for i, b := range title[:n] {
		if b < 0x20 || b > 0x7E {
			title[i] = ' '
		}
	}
	return strings.TrimRight(string(title[:n]), " ")
}

// Open reads the rom image at path and decodes its header.
func Open(path string) (Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return Header{}, err
	}
	defer f.Close()

	return ReadFrom(f)
}

// ReadFrom reads a whole rom image from r and decodes its header.
func ReadFrom(r io.Reader) (Header, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return Header{}, err
	}
	return Parse(buf)
}

// PrintInfos writes a human readable summary of the header to w.
func (hdr Header) PrintInfos(w io.Writer) {
	sgb := "no"
	if hdr.SGB {
		sgb = "yes"
	}
	rom := hdr.ROMSize.String()
	if banks, ok := ROMBanks(hdr.ROMSize.Raw()); ok {
		rom = fmt.Sprintf("%s (%d banks)", rom, banks)
	}

	fmt.Fprintf(w, "title:     %q\n", hdr.Title)
	fmt.Fprintf(w, "cartridge: %s [%02X]\n", hdr.CartType, hdr.CartType.Raw())
	fmt.Fprintf(w, "rom:       %s [%02X]\n", rom, hdr.ROMSize.Raw())
	fmt.Fprintf(w, "ram:       %s [%02X]\n", hdr.RAMSize, hdr.RAMSize.Raw())
	fmt.Fprintf(w, "sgb:       %s\n", sgb)
}
