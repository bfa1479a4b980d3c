package cpu

// opcodeEntry binds one of the 256 opcode bytes to the addressing mode
// spec.md's decode table names it by and the function that actually
// executes it. mode is metadata only (Chip.CurrentMode, disassembly,
// tests); exec is what drives the bus.
type opcodeEntry struct {
	mnemonic string
	mode     Mode
	exec     func(p *Chip) error
}

// The following helpers build an exec closure from an addressing-mode
// resolver and an instruction body, so the table below reads as
// (mnemonic, mode, addressing, instruction) instead of repeating the
// same fetch-then-run wiring 256 times.

func zp(kind opKind) func(p *Chip)              { return func(p *Chip) { fetchZeroPage(p, kind) } }
func zpx(kind opKind) func(p *Chip)             { return func(p *Chip) { fetchZeroPageIndexed(p, kind, p.X) } }
func zpy(kind opKind) func(p *Chip)             { return func(p *Chip) { fetchZeroPageIndexed(p, kind, p.Y) } }
func abs(kind opKind) func(p *Chip)             { return func(p *Chip) { fetchAbsolute(p, kind) } }
func absX(kind opKind, dummy bool) func(p *Chip) {
	return func(p *Chip) { fetchAbsoluteIndexed(p, kind, p.X, dummy) }
}
func absY(kind opKind, dummy bool) func(p *Chip) {
	return func(p *Chip) { fetchAbsoluteIndexed(p, kind, p.Y, dummy) }
}
func indX(kind opKind) func(p *Chip) { return func(p *Chip) { fetchIndirectX(p, kind) } }
func indY(kind opKind, dummy bool) func(p *Chip) {
	return func(p *Chip) { fetchIndirectY(p, kind, dummy) }
}
func imm(p *Chip) { fetchImmediate(p) }
func noop(p *Chip) {}

// load runs fetch then instr; used for both load instructions (instr
// reads p.opVal) and RMW instructions (instr itself calls p.write).
func load(fetch func(p *Chip), instr func(p *Chip)) func(p *Chip) error {
	return func(p *Chip) error {
		fetch(p)
		instr(p)
		return nil
	}
}

// store runs fetch then writes val(p) to the resolved address.
func store(fetch func(p *Chip), val func(p *Chip) uint8) func(p *Chip) error {
	return func(p *Chip) error {
		fetch(p)
		p.write(p.opAddr, val(p))
		return nil
	}
}

// implicit runs fn with no addressing step, for instructions that
// don't touch memory beyond the generic per-opcode dummy fetch.
func implicit(fn func(p *Chip)) func(p *Chip) error {
	return func(p *Chip) error {
		fn(p)
		return nil
	}
}

func jam(p *Chip) error {
	p.halted = true
	return nil
}

// iJMP is the absolute-mode jump: unlike every other absolute-mode
// user, it never reads through the resolved address, so it resolves
// its own operand bytes instead of going through fetchAbsolute.
func iJMP(p *Chip) {
	lo := p.opVal
	p.PC++
	hi := p.read(p.PC)
	p.PC = uint16(hi)<<8 | uint16(lo)
}

func iJMPIndirect(p *Chip) {
	p.PC = fetchIndirect(p)
}

func valA(p *Chip) uint8  { return p.A }
func valX(p *Chip) uint8  { return p.X }
func valY(p *Chip) uint8  { return p.Y }
func valAX(p *Chip) uint8 { return p.A & p.X }

func compareA(p *Chip) { p.compare(p.A, p.opVal) }
func compareX(p *Chip) { p.compare(p.X, p.opVal) }
func compareY(p *Chip) { p.compare(p.Y, p.opVal) }

func loadRegA(p *Chip) { p.loadRegister(&p.A, p.opVal) }
func loadRegX(p *Chip) { p.loadRegister(&p.X, p.opVal) }
func loadRegY(p *Chip) { p.loadRegister(&p.Y, p.opVal) }

func iDEY(p *Chip) { p.loadRegister(&p.Y, p.Y-1) }
func iDEX(p *Chip) { p.loadRegister(&p.X, p.X-1) }
func iINX(p *Chip) { p.loadRegister(&p.X, p.X+1) }
func iINY(p *Chip) { p.loadRegister(&p.Y, p.Y+1) }
func iTAX(p *Chip) { p.loadRegister(&p.X, p.A) }
func iTAY(p *Chip) { p.loadRegister(&p.Y, p.A) }
func iTXA(p *Chip) { p.loadRegister(&p.A, p.X) }
func iTYA(p *Chip) { p.loadRegister(&p.A, p.Y) }
func iTSX(p *Chip) { p.loadRegister(&p.X, p.SP) }
func iTXS(p *Chip) { p.SP = p.X }

var opcodeTable = [256]opcodeEntry{
	0x00: {"BRK", ModeImplicit, implicit(func(p *Chip) { p.iBRK() })},
	0x01: {"ORA", ModeIndirectX, load(indX(kindLoad), func(p *Chip) { p.iORA() })},
	0x02: {"JAM", ModeImplicit, jam},
	0x03: {"SLO", ModeIndirectX, load(indX(kindRMW), func(p *Chip) { p.iSLO() })},
	0x04: {"NOP", ModeZeroPage, load(zp(kindLoad), noop)},
	0x05: {"ORA", ModeZeroPage, load(zp(kindLoad), func(p *Chip) { p.iORA() })},
	0x06: {"ASL", ModeZeroPage, load(zp(kindRMW), func(p *Chip) { p.iASL() })},
	0x07: {"SLO", ModeZeroPage, load(zp(kindRMW), func(p *Chip) { p.iSLO() })},
	0x08: {"PHP", ModeImplicit, implicit(func(p *Chip) { p.iPHP() })},
	0x09: {"ORA", ModeImmediate, load(imm, func(p *Chip) { p.iORA() })},
	0x0A: {"ASL", ModeAccumulator, implicit(func(p *Chip) { p.iASLAcc() })},
	0x0B: {"ANC", ModeImmediate, load(imm, func(p *Chip) { p.iANC() })},
	0x0C: {"NOP", ModeAbsolute, load(abs(kindLoad), noop)},
	0x0D: {"ORA", ModeAbsolute, load(abs(kindLoad), func(p *Chip) { p.iORA() })},
	0x0E: {"ASL", ModeAbsolute, load(abs(kindRMW), func(p *Chip) { p.iASL() })},
	0x0F: {"SLO", ModeAbsolute, load(abs(kindRMW), func(p *Chip) { p.iSLO() })},
	0x10: {"BPL", ModeRelative, implicit(func(p *Chip) { p.iBPL() })},
	0x11: {"ORA", ModeIndirectY, load(indY(kindLoad, false), func(p *Chip) { p.iORA() })},
	0x12: {"JAM", ModeImplicit, jam},
	0x13: {"SLO", ModeIndirectY_W, load(indY(kindRMW, true), func(p *Chip) { p.iSLO() })},
	0x14: {"NOP", ModeZeroPageX, load(zpx(kindLoad), noop)},
	0x15: {"ORA", ModeZeroPageX, load(zpx(kindLoad), func(p *Chip) { p.iORA() })},
	0x16: {"ASL", ModeZeroPageX, load(zpx(kindRMW), func(p *Chip) { p.iASL() })},
	0x17: {"SLO", ModeZeroPageX, load(zpx(kindRMW), func(p *Chip) { p.iSLO() })},
	0x18: {"CLC", ModeImplicit, implicit(func(p *Chip) { p.iCLC() })},
	0x19: {"ORA", ModeAbsoluteY, load(absY(kindLoad, false), func(p *Chip) { p.iORA() })},
	0x1A: {"NOP", ModeImplicit, implicit(noop)},
	0x1B: {"SLO", ModeAbsoluteY_W, load(absY(kindRMW, true), func(p *Chip) { p.iSLO() })},
	0x1C: {"NOP", ModeAbsoluteX, load(absX(kindLoad, false), noop)},
	0x1D: {"ORA", ModeAbsoluteX, load(absX(kindLoad, false), func(p *Chip) { p.iORA() })},
	0x1E: {"ASL", ModeAbsoluteX_W, load(absX(kindRMW, true), func(p *Chip) { p.iASL() })},
	0x1F: {"SLO", ModeAbsoluteX_W, load(absX(kindRMW, true), func(p *Chip) { p.iSLO() })},
	0x20: {"JSR", ModeAbsolute, implicit(func(p *Chip) { p.iJSR() })},
	0x21: {"AND", ModeIndirectX, load(indX(kindLoad), func(p *Chip) { p.iAND() })},
	0x22: {"JAM", ModeImplicit, jam},
	0x23: {"RLA", ModeIndirectX, load(indX(kindRMW), func(p *Chip) { p.iRLA() })},
	0x24: {"BIT", ModeZeroPage, load(zp(kindLoad), func(p *Chip) { p.iBIT() })},
	0x25: {"AND", ModeZeroPage, load(zp(kindLoad), func(p *Chip) { p.iAND() })},
	0x26: {"ROL", ModeZeroPage, load(zp(kindRMW), func(p *Chip) { p.iROL() })},
	0x27: {"RLA", ModeZeroPage, load(zp(kindRMW), func(p *Chip) { p.iRLA() })},
	0x28: {"PLP", ModeImplicit, implicit(func(p *Chip) { p.iPLP() })},
	0x29: {"AND", ModeImmediate, load(imm, func(p *Chip) { p.iAND() })},
	0x2A: {"ROL", ModeAccumulator, implicit(func(p *Chip) { p.iROLAcc() })},
	0x2B: {"ANC", ModeImmediate, load(imm, func(p *Chip) { p.iANC() })},
	0x2C: {"BIT", ModeAbsolute, load(abs(kindLoad), func(p *Chip) { p.iBIT() })},
	0x2D: {"AND", ModeAbsolute, load(abs(kindLoad), func(p *Chip) { p.iAND() })},
	0x2E: {"ROL", ModeAbsolute, load(abs(kindRMW), func(p *Chip) { p.iROL() })},
	0x2F: {"RLA", ModeAbsolute, load(abs(kindRMW), func(p *Chip) { p.iRLA() })},
	0x30: {"BMI", ModeRelative, implicit(func(p *Chip) { p.iBMI() })},
	0x31: {"AND", ModeIndirectY, load(indY(kindLoad, false), func(p *Chip) { p.iAND() })},
	0x32: {"JAM", ModeImplicit, jam},
	0x33: {"RLA", ModeIndirectY_W, load(indY(kindRMW, true), func(p *Chip) { p.iRLA() })},
	0x34: {"NOP", ModeZeroPageX, load(zpx(kindLoad), noop)},
	0x35: {"AND", ModeZeroPageX, load(zpx(kindLoad), func(p *Chip) { p.iAND() })},
	0x36: {"ROL", ModeZeroPageX, load(zpx(kindRMW), func(p *Chip) { p.iROL() })},
	0x37: {"RLA", ModeZeroPageX, load(zpx(kindRMW), func(p *Chip) { p.iRLA() })},
	0x38: {"SEC", ModeImplicit, implicit(func(p *Chip) { p.iSEC() })},
	0x39: {"AND", ModeAbsoluteY, load(absY(kindLoad, false), func(p *Chip) { p.iAND() })},
	0x3A: {"NOP", ModeImplicit, implicit(noop)},
	0x3B: {"RLA", ModeAbsoluteY_W, load(absY(kindRMW, true), func(p *Chip) { p.iRLA() })},
	0x3C: {"NOP", ModeAbsoluteX, load(absX(kindLoad, false), noop)},
	0x3D: {"AND", ModeAbsoluteX, load(absX(kindLoad, false), func(p *Chip) { p.iAND() })},
	0x3E: {"ROL", ModeAbsoluteX_W, load(absX(kindRMW, true), func(p *Chip) { p.iROL() })},
	0x3F: {"RLA", ModeAbsoluteX_W, load(absX(kindRMW, true), func(p *Chip) { p.iRLA() })},
	0x40: {"RTI", ModeImplicit, implicit(func(p *Chip) { p.iRTI() })},
	0x41: {"EOR", ModeIndirectX, load(indX(kindLoad), func(p *Chip) { p.iEOR() })},
	0x42: {"JAM", ModeImplicit, jam},
	0x43: {"SRE", ModeIndirectX, load(indX(kindRMW), func(p *Chip) { p.iSRE() })},
	0x44: {"NOP", ModeZeroPage, load(zp(kindLoad), noop)},
	0x45: {"EOR", ModeZeroPage, load(zp(kindLoad), func(p *Chip) { p.iEOR() })},
	0x46: {"LSR", ModeZeroPage, load(zp(kindRMW), func(p *Chip) { p.iLSR() })},
	0x47: {"SRE", ModeZeroPage, load(zp(kindRMW), func(p *Chip) { p.iSRE() })},
	0x48: {"PHA", ModeImplicit, implicit(func(p *Chip) { p.iPHA() })},
	0x49: {"EOR", ModeImmediate, load(imm, func(p *Chip) { p.iEOR() })},
	0x4A: {"LSR", ModeAccumulator, implicit(func(p *Chip) { p.iLSRAcc() })},
	0x4B: {"ALR", ModeImmediate, load(imm, func(p *Chip) { p.iALR() })},
	0x4C: {"JMP", ModeAbsolute, implicit(iJMP)},
	0x4D: {"EOR", ModeAbsolute, load(abs(kindLoad), func(p *Chip) { p.iEOR() })},
	0x4E: {"LSR", ModeAbsolute, load(abs(kindRMW), func(p *Chip) { p.iLSR() })},
	0x4F: {"SRE", ModeAbsolute, load(abs(kindRMW), func(p *Chip) { p.iSRE() })},
	0x50: {"BVC", ModeRelative, implicit(func(p *Chip) { p.iBVC() })},
	0x51: {"EOR", ModeIndirectY, load(indY(kindLoad, false), func(p *Chip) { p.iEOR() })},
	0x52: {"JAM", ModeImplicit, jam},
	0x53: {"SRE", ModeIndirectY_W, load(indY(kindRMW, true), func(p *Chip) { p.iSRE() })},
	0x54: {"NOP", ModeZeroPageX, load(zpx(kindLoad), noop)},
	0x55: {"EOR", ModeZeroPageX, load(zpx(kindLoad), func(p *Chip) { p.iEOR() })},
	0x56: {"LSR", ModeZeroPageX, load(zpx(kindRMW), func(p *Chip) { p.iLSR() })},
	0x57: {"SRE", ModeZeroPageX, load(zpx(kindRMW), func(p *Chip) { p.iSRE() })},
	0x58: {"CLI", ModeImplicit, implicit(func(p *Chip) { p.iCLI() })},
	0x59: {"EOR", ModeAbsoluteY, load(absY(kindLoad, false), func(p *Chip) { p.iEOR() })},
	0x5A: {"NOP", ModeImplicit, implicit(noop)},
	0x5B: {"SRE", ModeAbsoluteY_W, load(absY(kindRMW, true), func(p *Chip) { p.iSRE() })},
	0x5C: {"NOP", ModeAbsoluteX, load(absX(kindLoad, false), noop)},
	0x5D: {"EOR", ModeAbsoluteX, load(absX(kindLoad, false), func(p *Chip) { p.iEOR() })},
	0x5E: {"LSR", ModeAbsoluteX_W, load(absX(kindRMW, true), func(p *Chip) { p.iLSR() })},
	0x5F: {"SRE", ModeAbsoluteX_W, load(absX(kindRMW, true), func(p *Chip) { p.iSRE() })},
	0x60: {"RTS", ModeImplicit, implicit(func(p *Chip) { p.iRTS() })},
	0x61: {"ADC", ModeIndirectX, load(indX(kindLoad), func(p *Chip) { p.iADC() })},
	0x62: {"JAM", ModeImplicit, jam},
	0x63: {"RRA", ModeIndirectX, load(indX(kindRMW), func(p *Chip) { p.iRRA() })},
	0x64: {"NOP", ModeZeroPage, load(zp(kindLoad), noop)},
	0x65: {"ADC", ModeZeroPage, load(zp(kindLoad), func(p *Chip) { p.iADC() })},
	0x66: {"ROR", ModeZeroPage, load(zp(kindRMW), func(p *Chip) { p.iROR() })},
	0x67: {"RRA", ModeZeroPage, load(zp(kindRMW), func(p *Chip) { p.iRRA() })},
	0x68: {"PLA", ModeImplicit, implicit(func(p *Chip) { p.iPLA() })},
	0x69: {"ADC", ModeImmediate, load(imm, func(p *Chip) { p.iADC() })},
	0x6A: {"ROR", ModeAccumulator, implicit(func(p *Chip) { p.iRORAcc() })},
	0x6B: {"ARR", ModeImmediate, load(imm, func(p *Chip) { p.iARR() })},
	0x6C: {"JMP", ModeIndirect, implicit(iJMPIndirect)},
	0x6D: {"ADC", ModeAbsolute, load(abs(kindLoad), func(p *Chip) { p.iADC() })},
	0x6E: {"ROR", ModeAbsolute, load(abs(kindRMW), func(p *Chip) { p.iROR() })},
	0x6F: {"RRA", ModeAbsolute, load(abs(kindRMW), func(p *Chip) { p.iRRA() })},
	0x70: {"BVS", ModeRelative, implicit(func(p *Chip) { p.iBVS() })},
	0x71: {"ADC", ModeIndirectY, load(indY(kindLoad, false), func(p *Chip) { p.iADC() })},
	0x72: {"JAM", ModeImplicit, jam},
	0x73: {"RRA", ModeIndirectY_W, load(indY(kindRMW, true), func(p *Chip) { p.iRRA() })},
	0x74: {"NOP", ModeZeroPageX, load(zpx(kindLoad), noop)},
	0x75: {"ADC", ModeZeroPageX, load(zpx(kindLoad), func(p *Chip) { p.iADC() })},
	0x76: {"ROR", ModeZeroPageX, load(zpx(kindRMW), func(p *Chip) { p.iROR() })},
	0x77: {"RRA", ModeZeroPageX, load(zpx(kindRMW), func(p *Chip) { p.iRRA() })},
	0x78: {"SEI", ModeImplicit, implicit(func(p *Chip) { p.iSEI() })},
	0x79: {"ADC", ModeAbsoluteY, load(absY(kindLoad, false), func(p *Chip) { p.iADC() })},
	0x7A: {"NOP", ModeImplicit, implicit(noop)},
	0x7B: {"RRA", ModeAbsoluteY_W, load(absY(kindRMW, true), func(p *Chip) { p.iRRA() })},
	0x7C: {"NOP", ModeAbsoluteX, load(absX(kindLoad, false), noop)},
	0x7D: {"ADC", ModeAbsoluteX, load(absX(kindLoad, false), func(p *Chip) { p.iADC() })},
	0x7E: {"ROR", ModeAbsoluteX_W, load(absX(kindRMW, true), func(p *Chip) { p.iROR() })},
	0x7F: {"RRA", ModeAbsoluteX_W, load(absX(kindRMW, true), func(p *Chip) { p.iRRA() })},
	0x80: {"NOP", ModeImmediate, load(imm, noop)},
	0x81: {"STA", ModeIndirectX, store(indX(kindStore), valA)},
	0x82: {"NOP", ModeImmediate, load(imm, noop)},
	0x83: {"SAX", ModeIndirectX, store(indX(kindStore), valAX)},
	0x84: {"STY", ModeZeroPage, store(zp(kindStore), valY)},
	0x85: {"STA", ModeZeroPage, store(zp(kindStore), valA)},
	0x86: {"STX", ModeZeroPage, store(zp(kindStore), valX)},
	0x87: {"SAX", ModeZeroPage, store(zp(kindStore), valAX)},
	0x88: {"DEY", ModeImplicit, implicit(iDEY)},
	0x89: {"NOP", ModeImmediate, load(imm, noop)},
	0x8A: {"TXA", ModeImplicit, implicit(iTXA)},
	0x8B: {"XAA", ModeImmediate, load(imm, func(p *Chip) { p.iXAA(0x8B) })},
	0x8C: {"STY", ModeAbsolute, store(abs(kindStore), valY)},
	0x8D: {"STA", ModeAbsolute, store(abs(kindStore), valA)},
	0x8E: {"STX", ModeAbsolute, store(abs(kindStore), valX)},
	0x8F: {"SAX", ModeAbsolute, store(abs(kindStore), valAX)},
	0x90: {"BCC", ModeRelative, implicit(func(p *Chip) { p.iBCC() })},
	0x91: {"STA", ModeIndirectY_W, store(indY(kindStore, true), valA)},
	0x92: {"JAM", ModeImplicit, jam},
	0x93: {"AHX", ModeIndirectY_W, load(indY(kindStore, true), func(p *Chip) { p.iAHX(0x93) })},
	0x94: {"STY", ModeZeroPageX, store(zpx(kindStore), valY)},
	0x95: {"STA", ModeZeroPageX, store(zpx(kindStore), valA)},
	0x96: {"STX", ModeZeroPageY, store(zpy(kindStore), valX)},
	0x97: {"SAX", ModeZeroPageY, store(zpy(kindStore), valAX)},
	0x98: {"TYA", ModeImplicit, implicit(iTYA)},
	0x99: {"STA", ModeAbsoluteY_W, store(absY(kindStore, true), valA)},
	0x9A: {"TXS", ModeImplicit, implicit(iTXS)},
	0x9B: {"TAS", ModeAbsoluteY_W, load(absY(kindStore, true), func(p *Chip) { p.iTAS(0x9B) })},
	0x9C: {"SHY", ModeAbsoluteX_W, load(absX(kindStore, true), func(p *Chip) { p.iSHY(0x9C) })},
	0x9D: {"STA", ModeAbsoluteX_W, store(absX(kindStore, true), valA)},
	0x9E: {"SHX", ModeAbsoluteY_W, load(absY(kindStore, true), func(p *Chip) { p.iSHX(0x9E) })},
	0x9F: {"AHX", ModeAbsoluteY_W, load(absY(kindStore, true), func(p *Chip) { p.iAHX(0x9F) })},
	0xA0: {"LDY", ModeImmediate, load(imm, loadRegY)},
	0xA1: {"LDA", ModeIndirectX, load(indX(kindLoad), loadRegA)},
	0xA2: {"LDX", ModeImmediate, load(imm, loadRegX)},
	0xA3: {"LAX", ModeIndirectX, load(indX(kindLoad), func(p *Chip) { p.iLAX() })},
	0xA4: {"LDY", ModeZeroPage, load(zp(kindLoad), loadRegY)},
	0xA5: {"LDA", ModeZeroPage, load(zp(kindLoad), loadRegA)},
	0xA6: {"LDX", ModeZeroPage, load(zp(kindLoad), loadRegX)},
	0xA7: {"LAX", ModeZeroPage, load(zp(kindLoad), func(p *Chip) { p.iLAX() })},
	0xA8: {"TAY", ModeImplicit, implicit(iTAY)},
	0xA9: {"LDA", ModeImmediate, load(imm, loadRegA)},
	0xAA: {"TAX", ModeImplicit, implicit(iTAX)},
	0xAB: {"LXA", ModeImmediate, load(imm, func(p *Chip) { p.iOAL(0xAB) })},
	0xAC: {"LDY", ModeAbsolute, load(abs(kindLoad), loadRegY)},
	0xAD: {"LDA", ModeAbsolute, load(abs(kindLoad), loadRegA)},
	0xAE: {"LDX", ModeAbsolute, load(abs(kindLoad), loadRegX)},
	0xAF: {"LAX", ModeAbsolute, load(abs(kindLoad), func(p *Chip) { p.iLAX() })},
	0xB0: {"BCS", ModeRelative, implicit(func(p *Chip) { p.iBCS() })},
	0xB1: {"LDA", ModeIndirectY, load(indY(kindLoad, false), loadRegA)},
	0xB2: {"JAM", ModeImplicit, jam},
	0xB3: {"LAX", ModeIndirectY, load(indY(kindLoad, false), func(p *Chip) { p.iLAX() })},
	0xB4: {"LDY", ModeZeroPageX, load(zpx(kindLoad), loadRegY)},
	0xB5: {"LDA", ModeZeroPageX, load(zpx(kindLoad), loadRegA)},
	0xB6: {"LDX", ModeZeroPageY, load(zpy(kindLoad), loadRegX)},
	0xB7: {"LAX", ModeZeroPageY, load(zpy(kindLoad), func(p *Chip) { p.iLAX() })},
	0xB8: {"CLV", ModeImplicit, implicit(func(p *Chip) { p.iCLV() })},
	0xB9: {"LDA", ModeAbsoluteY, load(absY(kindLoad, false), loadRegA)},
	0xBA: {"TSX", ModeImplicit, implicit(iTSX)},
	0xBB: {"LAS", ModeAbsoluteY, load(absY(kindLoad, false), func(p *Chip) { p.iLAS() })},
	0xBC: {"LDY", ModeAbsoluteX, load(absX(kindLoad, false), loadRegY)},
	0xBD: {"LDA", ModeAbsoluteX, load(absX(kindLoad, false), loadRegA)},
	0xBE: {"LDX", ModeAbsoluteY, load(absY(kindLoad, false), loadRegX)},
	0xBF: {"LAX", ModeAbsoluteY, load(absY(kindLoad, false), func(p *Chip) { p.iLAX() })},
	0xC0: {"CPY", ModeImmediate, load(imm, compareY)},
	0xC1: {"CMP", ModeIndirectX, load(indX(kindLoad), compareA)},
	0xC2: {"NOP", ModeImmediate, load(imm, noop)},
	0xC3: {"DCP", ModeIndirectX, load(indX(kindRMW), func(p *Chip) { p.iDCP() })},
	0xC4: {"CPY", ModeZeroPage, load(zp(kindLoad), compareY)},
	0xC5: {"CMP", ModeZeroPage, load(zp(kindLoad), compareA)},
	0xC6: {"DEC", ModeZeroPage, load(zp(kindRMW), func(p *Chip) { p.iDEC() })},
	0xC7: {"DCP", ModeZeroPage, load(zp(kindRMW), func(p *Chip) { p.iDCP() })},
	0xC8: {"INY", ModeImplicit, implicit(iINY)},
	0xC9: {"CMP", ModeImmediate, load(imm, compareA)},
	0xCA: {"DEX", ModeImplicit, implicit(iDEX)},
	0xCB: {"AXS", ModeImmediate, load(imm, func(p *Chip) { p.iAXS() })},
	0xCC: {"CPY", ModeAbsolute, load(abs(kindLoad), compareY)},
	0xCD: {"CMP", ModeAbsolute, load(abs(kindLoad), compareA)},
	0xCE: {"DEC", ModeAbsolute, load(abs(kindRMW), func(p *Chip) { p.iDEC() })},
	0xCF: {"DCP", ModeAbsolute, load(abs(kindRMW), func(p *Chip) { p.iDCP() })},
	0xD0: {"BNE", ModeRelative, implicit(func(p *Chip) { p.iBNE() })},
	0xD1: {"CMP", ModeIndirectY, load(indY(kindLoad, false), compareA)},
	0xD2: {"JAM", ModeImplicit, jam},
	0xD3: {"DCP", ModeIndirectY_W, load(indY(kindRMW, true), func(p *Chip) { p.iDCP() })},
	0xD4: {"NOP", ModeZeroPageX, load(zpx(kindLoad), noop)},
	0xD5: {"CMP", ModeZeroPageX, load(zpx(kindLoad), compareA)},
	0xD6: {"DEC", ModeZeroPageX, load(zpx(kindRMW), func(p *Chip) { p.iDEC() })},
	0xD7: {"DCP", ModeZeroPageX, load(zpx(kindRMW), func(p *Chip) { p.iDCP() })},
	0xD8: {"CLD", ModeImplicit, implicit(func(p *Chip) { p.iCLD() })},
	0xD9: {"CMP", ModeAbsoluteY, load(absY(kindLoad, false), compareA)},
	0xDA: {"NOP", ModeImplicit, implicit(noop)},
	0xDB: {"DCP", ModeAbsoluteY_W, load(absY(kindRMW, true), func(p *Chip) { p.iDCP() })},
	0xDC: {"NOP", ModeAbsoluteX, load(absX(kindLoad, false), noop)},
	0xDD: {"CMP", ModeAbsoluteX, load(absX(kindLoad, false), compareA)},
	0xDE: {"DEC", ModeAbsoluteX_W, load(absX(kindRMW, true), func(p *Chip) { p.iDEC() })},
	0xDF: {"DCP", ModeAbsoluteX_W, load(absX(kindRMW, true), func(p *Chip) { p.iDCP() })},
	0xE0: {"CPX", ModeImmediate, load(imm, compareX)},
	0xE1: {"SBC", ModeIndirectX, load(indX(kindLoad), func(p *Chip) { p.iSBC() })},
	0xE2: {"NOP", ModeImmediate, load(imm, noop)},
	0xE3: {"ISC", ModeIndirectX, load(indX(kindRMW), func(p *Chip) { p.iISC() })},
	0xE4: {"CPX", ModeZeroPage, load(zp(kindLoad), compareX)},
	0xE5: {"SBC", ModeZeroPage, load(zp(kindLoad), func(p *Chip) { p.iSBC() })},
	0xE6: {"INC", ModeZeroPage, load(zp(kindRMW), func(p *Chip) { p.iINC() })},
	0xE7: {"ISC", ModeZeroPage, load(zp(kindRMW), func(p *Chip) { p.iISC() })},
	0xE8: {"INX", ModeImplicit, implicit(iINX)},
	0xE9: {"SBC", ModeImmediate, load(imm, func(p *Chip) { p.iSBC() })},
	0xEA: {"NOP", ModeImplicit, implicit(noop)},
	0xEB: {"SBC", ModeImmediate, load(imm, func(p *Chip) { p.iSBC() })},
	0xEC: {"CPX", ModeAbsolute, load(abs(kindLoad), compareX)},
	0xED: {"SBC", ModeAbsolute, load(abs(kindLoad), func(p *Chip) { p.iSBC() })},
	0xEE: {"INC", ModeAbsolute, load(abs(kindRMW), func(p *Chip) { p.iINC() })},
	0xEF: {"ISC", ModeAbsolute, load(abs(kindRMW), func(p *Chip) { p.iISC() })},
	0xF0: {"BEQ", ModeRelative, implicit(func(p *Chip) { p.iBEQ() })},
	0xF1: {"SBC", ModeIndirectY, load(indY(kindLoad, false), func(p *Chip) { p.iSBC() })},
	0xF2: {"JAM", ModeImplicit, jam},
	0xF3: {"ISC", ModeIndirectY_W, load(indY(kindRMW, true), func(p *Chip) { p.iISC() })},
	0xF4: {"NOP", ModeZeroPageX, load(zpx(kindLoad), noop)},
	0xF5: {"SBC", ModeZeroPageX, load(zpx(kindLoad), func(p *Chip) { p.iSBC() })},
	0xF6: {"INC", ModeZeroPageX, load(zpx(kindRMW), func(p *Chip) { p.iINC() })},
	0xF7: {"ISC", ModeZeroPageX, load(zpx(kindRMW), func(p *Chip) { p.iISC() })},
	0xF8: {"SED", ModeImplicit, implicit(func(p *Chip) { p.iSED() })},
	0xF9: {"SBC", ModeAbsoluteY, load(absY(kindLoad, false), func(p *Chip) { p.iSBC() })},
	0xFA: {"NOP", ModeImplicit, implicit(noop)},
	0xFB: {"ISC", ModeAbsoluteY_W, load(absY(kindRMW, true), func(p *Chip) { p.iISC() })},
	0xFC: {"NOP", ModeAbsoluteX, load(absX(kindLoad, false), noop)},
	0xFD: {"SBC", ModeAbsoluteX, load(absX(kindLoad, false), func(p *Chip) { p.iSBC() })},
	0xFE: {"INC", ModeAbsoluteX_W, load(absX(kindRMW, true), func(p *Chip) { p.iINC() })},
	0xFF: {"ISC", ModeAbsoluteX_W, load(absX(kindRMW, true), func(p *Chip) { p.iISC() })},
}
