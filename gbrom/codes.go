package gbrom

// Code tables for the cartridge header, see
// http://problemkaputt.de/pandocs.htm#thecartridgeheader
//
// The tables are historical constants: only ever append to them, never
// renumber. Bump TablesVersion on any change so reports can be told apart.

// TablesVersion identifies the revision of the three code tables.
const TablesVersion = 1

var cartTypes = map[byte]string{
	0x00: "ROM ONLY",
	0x01: "MBC1",
	0x02: "MBC1+RAM",
	0x03: "MBC1+RAM+BATTERY",
	0x05: "MBC2",
	0x06: "MBC2+BATTERY",
	0x08: "ROM+RAM",
	0x09: "ROM+RAM+BATTERY",
	0x0B: "MMM01",
	0x0C: "MMM01+RAM",
	0x0D: "MMM01+RAM+BATTERY",
	0x0F: "MBC3+TIMER+BATTERY",
	0x10: "MBC3+TIMER+RAM+BATTERY",
	0x11: "MBC3",
	0x12: "MBC3+RAM",
	0x13: "MBC3+RAM+BATTERY",
	0x15: "MBC4",
	0x16: "MBC4+RAM",
	0x17: "MBC4+RAM+BATTERY",
	0x19: "MBC5",
	0x1A: "MBC5+RAM",
	0x1B: "MBC5+RAM+BATTERY",
	0x1C: "MBC5+RUMBLE",
	0x1D: "MBC5+RUMBLE+RAM",
	0x1E: "MBC5+RUMBLE+RAM+BATTERY",
	0xFC: "POCKET CAMERA",
	0xFD: "BANDAI TAMA5",
	0xFE: "HuC3",
	0xFF: "HuC1+RAM+BATTERY",
}

type romSize struct {
	desc  string
	banks int // 16 KB banks
}

var romSizes = map[byte]romSize{
	0x00: {"32 KB", 2},
	0x01: {"64 KB", 4},
	0x02: {"128 KB", 8},
	0x03: {"256 KB", 16},
	0x04: {"512 KB", 32},
	0x05: {"1 MB", 64},
	0x06: {"2 MB", 128},
	0x07: {"4 MB", 256},
	0x52: {"1.1 MB", 72},
	0x53: {"1.2 MB", 80},
	0x54: {"1.5 MB", 96},
}

// indexed by header code
var ramSizes = []string{
	"none",
	"2 KB",
	"8 KB",
	"32 KB",
}

// CartType classifies the cartridge type (memory bank controller) code.
func CartType(b byte) Classified[string] {
	if desc, ok := cartTypes[b]; ok {
		return Known(b, desc)
	}
	return Unknown[string](b)
}

// ROMSize classifies the ROM size code.
func ROMSize(b byte) Classified[string] {
	if sz, ok := romSizes[b]; ok {
		return Known(b, sz.desc)
	}
	return Unknown[string](b)
}

// ROMBanks returns the number of 16 KB ROM banks for a ROM size code.
func ROMBanks(b byte) (int, bool) {
	sz, ok := romSizes[b]
	return sz.banks, ok
}

// RAMSize classifies the external RAM size code.
func RAMSize(b byte) Classified[string] {
	if int(b) < len(ramSizes) {
		return Known(b, ramSizes[b])
	}
	return Unknown[string](b)
}
