package cartridge

import (
	"fmt"

	"github.com/ss141309/nemesis/arena"
)

// Cartridge is the immutable record produced once at load (spec.md
// §3): a parsed Header plus the PRG/CHR ROM images carved from the
// file. Once built it is shared read-only with the Bus.
type Cartridge struct {
	Header *Header
	PRG    []byte
	CHR    []byte // empty when Header.CHRIsRAM
}

// Load parses header and ROM data out of a full cartridge file image
// and stages the PRG/CHR slices through an Arena (spec.md §2, §5: the
// arena is owned by the driver for the cartridge's lifetime and
// released wholesale on unload). Per spec.md §9's resolution of the
// duplicated load_rom.c in original_source, the arena is sized to the
// PRG-ROM plus CHR-ROM sizes the header declares rather than a fixed
// 5MiB buffer; the raw file bytes themselves are not copied into it.
func Load(data []byte) (*Cartridge, error) {
	if len(data) == 0 {
		return nil, ErrNullPath
	}
	h, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}

	a := arena.New(h.PRGROMSize + h.CHRROMSize)
	offset := HeaderSize
	if h.HasTrainer {
		offset += 512
	}

	prg, err := a.Alloc(h.PRGROMSize)
	if err != nil {
		return nil, fmt.Errorf("cartridge: staging PRG-ROM: %w", err)
	}
	if offset+h.PRGROMSize > len(data) {
		return nil, ErrInvalidFileSize
	}
	copy(prg, data[offset:offset+h.PRGROMSize])
	offset += h.PRGROMSize

	var chr []byte
	if !h.CHRIsRAM {
		chr, err = a.Alloc(h.CHRROMSize)
		if err != nil {
			return nil, fmt.Errorf("cartridge: staging CHR-ROM: %w", err)
		}
		if offset+h.CHRROMSize > len(data) {
			return nil, ErrInvalidFileSize
		}
		copy(chr, data[offset:offset+h.CHRROMSize])
	}

	return &Cartridge{Header: h, PRG: prg, CHR: chr}, nil
}
