package cpu

import (
	"fmt"

	"github.com/ss141309/nemesis/bits"
)

// Mode identifies a 6502/NES addressing mode. The "_W" variants always
// take the dummy read/write a page-cross would otherwise add
// conditionally: every store and read-modify-write instruction uses
// one (the CPU can't know yet whether it needs the fixup, so it always
// pays for it), while a plain indexed mode is used by load instructions,
// which only pay the extra cycle when the index actually crosses a page.
type Mode int

const (
	ModeNone Mode = iota
	ModeImplicit
	ModeAccumulator
	ModeImmediate
	ModeZeroPage
	ModeZeroPageX
	ModeZeroPageY
	ModeAbsolute
	ModeAbsoluteX
	ModeAbsoluteX_W
	ModeAbsoluteY
	ModeAbsoluteY_W
	ModeIndirect
	ModeIndirectX
	ModeIndirectY
	ModeIndirectY_W
	ModeRelative
)

func (m Mode) String() string {
	switch m {
	case ModeImplicit:
		return "Implicit"
	case ModeAccumulator:
		return "Accumulator"
	case ModeImmediate:
		return "Immediate"
	case ModeZeroPage:
		return "ZeroPage"
	case ModeZeroPageX:
		return "ZeroPageX"
	case ModeZeroPageY:
		return "ZeroPageY"
	case ModeAbsolute:
		return "Absolute"
	case ModeAbsoluteX:
		return "AbsoluteX"
	case ModeAbsoluteX_W:
		return "AbsoluteX_W"
	case ModeAbsoluteY:
		return "AbsoluteY"
	case ModeAbsoluteY_W:
		return "AbsoluteY_W"
	case ModeIndirect:
		return "Indirect"
	case ModeIndirectX:
		return "IndirectX"
	case ModeIndirectY:
		return "IndirectY"
	case ModeIndirectY_W:
		return "IndirectY_W"
	case ModeRelative:
		return "Relative"
	default:
		return "None"
	}
}

// opKind is how an instruction uses the address an addressing-mode
// helper resolves: whether it reads through it, reads-modifies-writes
// it, or only writes to it. It determines whether a resolver reads the
// final value at all and whether a page-cross fixup is unconditional.
type opKind int

const (
	kindLoad opKind = iota
	kindRMW
	kindStore
)

// fetchImmediate consumes the operand byte Step already dummy-fetched
// into p.opVal as the instruction's value.
func fetchImmediate(p *Chip) {
	p.PC++
}

// fetchZeroPage resolves d. For load/RMW it also reads the value at
// that address; RMW additionally performs the dummy write-back real
// 6502 hardware does before computing the final result.
func fetchZeroPage(p *Chip, kind opKind) {
	p.opAddr = uint16(p.opVal)
	p.PC++
	if kind == kindStore {
		return
	}
	p.opVal = p.read(p.opAddr)
	if kind == kindRMW {
		p.write(p.opAddr, p.opVal)
	}
}

// fetchZeroPageIndexed resolves d,x or d,y: the unindexed zero-page
// address is read and discarded (a dummy read), then the index is
// added with zero-page wraparound (the result never leaves page 0).
func fetchZeroPageIndexed(p *Chip, kind opKind, reg uint8) {
	base := uint16(p.opVal)
	p.PC++
	_ = p.read(base)
	p.opAddr = uint16(uint8(p.opVal + reg))
	if kind == kindStore {
		return
	}
	p.opVal = p.read(p.opAddr)
	if kind == kindRMW {
		p.write(p.opAddr, p.opVal)
	}
}

// fetchAbsolute resolves a: low byte already dummy-fetched by Step,
// high byte read next.
func fetchAbsolute(p *Chip, kind opKind) {
	lo := p.opVal
	p.PC++
	hi := p.read(p.PC)
	p.PC++
	p.opAddr = bits.Make16(hi, lo)
	if kind == kindStore {
		return
	}
	p.opVal = p.read(p.opAddr)
	if kind == kindRMW {
		p.write(p.opAddr, p.opVal)
	}
}

// fetchAbsoluteIndexed resolves a,x or a,y. alwaysDummy forces the
// extra cycle a page-cross would add even when the index didn't cross
// a page (the ModeXXX_W variants: every store and RMW).
func fetchAbsoluteIndexed(p *Chip, kind opKind, reg uint8, alwaysDummy bool) {
	lo := p.opVal
	p.PC++
	hi := p.read(p.PC)
	p.PC++
	base := bits.Make16(hi, lo)
	indexed := bits.Make16(hi, lo+reg)
	crossed := bits.PageCross(base, reg)
	p.opAddr = indexed

	switch kind {
	case kindStore:
		_ = p.read(p.opAddr) // unconditional dummy: address may still be wrong.
		if crossed {
			p.opAddr = base + uint16(reg)
		}
		return
	case kindRMW:
		_ = p.read(p.opAddr)
		if crossed {
			p.opAddr = base + uint16(reg)
		}
		p.opVal = p.read(p.opAddr)
		p.write(p.opAddr, p.opVal)
		return
	}
	// kindLoad.
	if !crossed && !alwaysDummy {
		p.opVal = p.read(p.opAddr)
		return
	}
	_ = p.read(p.opAddr) // wrong-page dummy read.
	if crossed {
		p.opAddr = base + uint16(reg)
	}
	p.opVal = p.read(p.opAddr)
}

// fetchIndirectX resolves (d,x): the zero-page pointer is built after
// a dummy read of the unindexed zero-page address, then X is added
// with zero-page wraparound before the 16-bit pointer is read.
func fetchIndirectX(p *Chip, kind opKind) {
	zp := uint16(p.opVal)
	p.PC++
	_ = p.read(zp)
	zp = uint16(uint8(p.opVal + p.X))
	lo := p.read(zp)
	hi := p.read(uint16(uint8(zp) + 1))
	p.opAddr = bits.Make16(hi, lo)
	if kind == kindStore {
		return
	}
	p.opVal = p.read(p.opAddr)
	if kind == kindRMW {
		p.write(p.opAddr, p.opVal)
	}
}

// fetchIndirectY resolves (d),y: the zero-page pointer is read first,
// then Y is added to the 16-bit result (this addition, unlike the
// pointer bytes themselves, is not confined to the zero page).
// alwaysDummy forces the extra cycle a page-cross would add (the
// ModeIndirectY_W variant: every store and RMW).
func fetchIndirectY(p *Chip, kind opKind, alwaysDummy bool) {
	zp := uint16(p.opVal)
	p.PC++
	lo := p.read(zp)
	hi := p.read(uint16(uint8(zp) + 1))
	base := bits.Make16(hi, lo)
	indexed := bits.Make16(hi, lo+p.Y)
	crossed := bits.PageCross(base, p.Y)
	p.opAddr = indexed

	switch kind {
	case kindStore:
		_ = p.read(p.opAddr)
		if crossed {
			p.opAddr = base + uint16(p.Y)
		}
		return
	case kindRMW:
		_ = p.read(p.opAddr)
		if crossed {
			p.opAddr = base + uint16(p.Y)
		}
		p.opVal = p.read(p.opAddr)
		p.write(p.opAddr, p.opVal)
		return
	}
	if !crossed && !alwaysDummy {
		p.opVal = p.read(p.opAddr)
		return
	}
	_ = p.read(p.opAddr)
	if crossed {
		p.opAddr = base + uint16(p.Y)
	}
	p.opVal = p.read(p.opAddr)
}

// fetchIndirect resolves (a), used only by the indirect JMP. It
// reproduces the classic 6502 page-wrap bug: when the pointer's low
// byte is 0xFF, the high byte is read from the start of the same page
// rather than the next page.
func fetchIndirect(p *Chip) uint16 {
	lo := p.opVal
	p.PC++
	hi := p.read(p.PC)
	p.PC++
	ptr := bits.Make16(hi, lo)
	targetLo := p.read(ptr)
	wrapped := (ptr & 0xFF00) | uint16(uint8(ptr)+1)
	targetHi := p.read(wrapped)
	return bits.Make16(targetHi, targetLo)
}

// branchNotTaken consumes the offset byte without branching: the PC
// simply advances past it.
func branchNotTaken(p *Chip) {
	p.PC++
}

// performBranch computes the branched-to PC, reproducing the extra
// dummy-read cycle a real 6502 pays when the branch crosses a page
// (and the one-instruction interrupt-polling delay that follows any
// taken branch, tracked via skipInterrupt so Step defers interrupt
// servicing by one instruction).
func performBranch(p *Chip) {
	offset := p.opVal
	p.PC++
	if !p.prevSkipInterrupt {
		p.skipInterrupt = true
	}
	oldPC := p.PC
	samePage := (oldPC & 0xFF00) | uint16(uint8(oldPC)+offset)
	_ = p.read(samePage)
	newPC := oldPC + uint16(int16(int8(offset)))
	if samePage == newPC {
		p.PC = newPC
		return
	}
	p.PC = newPC
	_ = p.read(p.PC)
}

func invalidOpcode(opcode uint8) error {
	return InvalidCPUState{Reason: fmt.Sprintf("opcode 0x%02X has no decode entry", opcode)}
}
