package cartridge

import (
	"fmt"

	"github.com/ss141309/nemesis/memory"
)

// mapperNROM is the only mapper number this Bus can execute (spec.md
// §1: "mapper logic beyond what the header declares" is out of scope).
const mapperNROM = 0

// Bus implements memory.Bank for a minimal NES address map: 2KiB of
// internal RAM mirrored across $0000-$1FFF, an open-bus stub across
// the PPU/APU/controller register windows ($2000-$401F — those chips
// are external collaborators per spec.md §1), and the cartridge's
// PRG-ROM mapped at $8000-$FFFF (mirrored if only 16KiB is present, as
// NROM-128 boards do).
type Bus struct {
	cart *Cartridge
	ram  memory.Bank
	open *memory.OpenBus
}

// NewBus wires a Cartridge into an executable Bus. Returns an error if
// the cartridge declares a mapper other than NROM (0).
func NewBus(cart *Cartridge) (*Bus, error) {
	if cart.Header.Mapper != mapperNROM {
		return nil, fmt.Errorf("cartridge: mapper %d not supported (only NROM/0 is wired into a Bus)", cart.Header.Mapper)
	}
	ram, err := memory.New8BitRAMBank(2048, nil)
	if err != nil {
		return nil, err
	}
	return &Bus{
		cart: cart,
		ram:  ram,
		open: memory.NewOpenBus(nil),
	}, nil
}

// Read implements memory.Bank / the cpu package's bus interface.
func (b *Bus) Read(addr uint16) uint8 {
	switch {
	case addr < 0x2000:
		return b.ram.Read(addr & 0x07FF)
	case addr < 0x8000:
		return b.open.Read(addr)
	default:
		prg := b.cart.PRG
		if len(prg) == 0 {
			return b.open.Read(addr)
		}
		off := int(addr-0x8000) % len(prg)
		return prg[off]
	}
}

// Write implements memory.Bank / the cpu package's bus interface.
// PRG-ROM writes are silently dropped, matching real NROM hardware.
func (b *Bus) Write(addr uint16, val uint8) {
	switch {
	case addr < 0x2000:
		b.ram.Write(addr&0x07FF, val)
	case addr < 0x8000:
		b.open.Write(addr, val)
	default:
		// ROM: writes are no-ops.
	}
}

// PowerOn implements memory.Bank.
func (b *Bus) PowerOn() {
	b.ram.PowerOn()
}

// Parent implements memory.Bank; Bus is always the outermost bank.
func (b *Bus) Parent() memory.Bank { return nil }

// DatabusVal implements memory.Bank, returning the last value latched
// by the internal RAM bank. PRG-ROM reads and open-bus accesses do not
// update it.
func (b *Bus) DatabusVal() uint8 {
	return b.ram.DatabusVal()
}
