package cpu

// This file implements the semantics of every documented and illegal
// 6502 instruction. Addressing has already resolved p.opVal (the
// operand) and, where relevant, p.opAddr (the address to write a
// result back to) by the time any of these run. The Ricoh 2A03 in the
// NES never implements BCD mode, so ADC/SBC are binary-only regardless
// of the D flag (spec.md Non-goals: decimal mode).

func (p *Chip) iADC() {
	carry := uint16(p.P & PCarry)
	sum := uint16(p.A) + uint16(p.opVal) + carry
	p.overflowCheck(p.A, p.opVal, uint8(sum))
	p.carryCheck(sum)
	p.loadRegister(&p.A, uint8(sum))
}

func (p *Chip) iSBC() {
	p.opVal = ^p.opVal
	p.iADC()
}

func (p *Chip) iASLAcc() {
	p.carryCheck(uint16(p.A) << 1)
	p.loadRegister(&p.A, p.A<<1)
}

func (p *Chip) iASL() {
	res := p.opVal << 1
	p.carryCheck(uint16(p.opVal) << 1)
	p.zeroCheck(res)
	p.negativeCheck(res)
	p.write(p.opAddr, res)
}

func (p *Chip) iLSRAcc() {
	p.carryCheck(uint16(p.A&0x01) << 8)
	p.loadRegister(&p.A, p.A>>1)
}

func (p *Chip) iLSR() {
	res := p.opVal >> 1
	p.carryCheck(uint16(p.opVal&0x01) << 8)
	p.zeroCheck(res)
	p.negativeCheck(res)
	p.write(p.opAddr, res)
}

func (p *Chip) iROLAcc() {
	carry := p.P & PCarry
	p.carryCheck(uint16(p.A) << 1)
	p.loadRegister(&p.A, (p.A<<1)|carry)
}

func (p *Chip) iROL() {
	carry := p.P & PCarry
	res := (p.opVal << 1) | carry
	p.carryCheck(uint16(p.opVal) << 1)
	p.zeroCheck(res)
	p.negativeCheck(res)
	p.write(p.opAddr, res)
}

func (p *Chip) iRORAcc() {
	carry := (p.P & PCarry) << 7
	p.carryCheck((uint16(p.A) << 8) & 0x0100)
	p.loadRegister(&p.A, (p.A>>1)|carry)
}

func (p *Chip) iROR() {
	carry := (p.P & PCarry) << 7
	res := (p.opVal >> 1) | carry
	p.carryCheck((uint16(p.opVal) << 8) & 0x0100)
	p.zeroCheck(res)
	p.negativeCheck(res)
	p.write(p.opAddr, res)
}

func (p *Chip) iBIT() {
	p.zeroCheck(p.A & p.opVal)
	p.negativeCheck(p.opVal)
	p.P &^= POverflow
	if p.opVal&POverflow != 0 {
		p.P |= POverflow
	}
}

func (p *Chip) compare(reg, val uint8) {
	p.zeroCheck(reg - val)
	p.negativeCheck(reg - val)
	p.carryCheck(uint16(reg) + uint16(^val) + 1)
}

func (p *Chip) iORA() { p.loadRegister(&p.A, p.A|p.opVal) }
func (p *Chip) iAND() { p.loadRegister(&p.A, p.A&p.opVal) }
func (p *Chip) iEOR() { p.loadRegister(&p.A, p.A^p.opVal) }

func (p *Chip) iDEC() {
	res := p.opVal - 1
	p.zeroCheck(res)
	p.negativeCheck(res)
	p.write(p.opAddr, res)
}

func (p *Chip) iINC() {
	res := p.opVal + 1
	p.zeroCheck(res)
	p.negativeCheck(res)
	p.write(p.opAddr, res)
}

func (p *Chip) iCLC() { p.P &^= PCarry }
func (p *Chip) iCLD() { p.P &^= PDecimal }
func (p *Chip) iCLI() { p.P &^= PInterrupt }
func (p *Chip) iCLV() { p.P &^= POverflow }
func (p *Chip) iSEC() { p.P |= PCarry }
func (p *Chip) iSED() { p.P |= PDecimal }
func (p *Chip) iSEI() { p.P |= PInterrupt }

// iPHA pushes A. iPHA/iPLA/iPHP/iPLP all take one extra cycle beyond
// the stack access itself (a dummy internal cycle real hardware spends
// between reading the opcode's operand and touching the stack), which
// Step's generic opVal dummy-fetch already accounts for.
func (p *Chip) iPHA() { p.pushStack(p.A) }

func (p *Chip) iPHP() {
	p.pushStack(p.P | PS1 | PBreak)
}

func (p *Chip) iPLA() {
	_ = p.read(0x0100 + uint16(p.SP)) // dummy read while SP increments.
	p.SP++
	p.loadRegister(&p.A, p.read(0x0100+uint16(p.SP)))
}

func (p *Chip) iPLP() {
	_ = p.read(0x0100 + uint16(p.SP))
	p.SP++
	p.P = p.read(0x0100+uint16(p.SP))&^PBreak | PS1
}

func (p *Chip) branch(taken bool) {
	if taken {
		performBranch(p)
		return
	}
	branchNotTaken(p)
}

func (p *Chip) iBCC() { p.branch(p.P&PCarry == 0) }
func (p *Chip) iBCS() { p.branch(p.P&PCarry != 0) }
func (p *Chip) iBEQ() { p.branch(p.P&PZero != 0) }
func (p *Chip) iBNE() { p.branch(p.P&PZero == 0) }
func (p *Chip) iBMI() { p.branch(p.P&PNegative != 0) }
func (p *Chip) iBPL() { p.branch(p.P&PNegative == 0) }
func (p *Chip) iBVC() { p.branch(p.P&POverflow == 0) }
func (p *Chip) iBVS() { p.branch(p.P&POverflow != 0) }

// iJSR pushes the address of the last byte of the JSR instruction
// (PC+2, not PC+3) since RTS adds one back.
func (p *Chip) iJSR() {
	lo := p.opVal
	p.PC++                            // PC now points at the target's high-address byte, not yet read.
	_ = p.read(0x0100 + uint16(p.SP)) // internal stack-peek delay.
	p.pushStack(uint8(p.PC >> 8))     // pushes the return address (PC-1 from the caller's view).
	p.pushStack(uint8(p.PC))
	hi := p.read(p.PC)
	p.PC = uint16(hi)<<8 | uint16(lo)
}

func (p *Chip) iRTS() {
	_ = p.read(0x0100 + uint16(p.SP))
	p.SP++
	lo := p.read(0x0100 + uint16(p.SP))
	p.SP++
	hi := p.read(0x0100 + uint16(p.SP))
	p.PC = uint16(hi)<<8 | uint16(lo)
	_ = p.read(p.PC)
	p.PC++
}

func (p *Chip) iRTI() {
	_ = p.read(0x0100 + uint16(p.SP))
	p.SP++
	flags := p.read(0x0100 + uint16(p.SP))
	p.P = flags&^PBreak | PS1
	p.SP++
	lo := p.read(0x0100 + uint16(p.SP))
	p.SP++
	hi := p.read(0x0100 + uint16(p.SP))
	p.PC = uint16(hi)<<8 | uint16(lo)
}

func (p *Chip) iBRK() {
	p.runInterrupt(IRQVector, true)
}

// Illegal/undocumented opcodes below. LAX/SAX/DCP/ISC/SLO/RLA/SRE/RRA
// are stable and widely relied on by NES software; ANC/ALR/ARR/AXS are
// stable CPU-internal combinations; XAA/LAX-immediate(OAL)/LAS/
// AHX/SHX/SHY/TAS depend on unstable internal bus behavior on real
// silicon (spec.md §9) and are implemented as the commonly documented
// best-effort approximation; all of them except LAS are logged once
// per execution.

func (p *Chip) iLAX() {
	p.loadRegister(&p.A, p.opVal)
	p.loadRegister(&p.X, p.opVal)
}

// iDCP implements the textbook (single decrement) DCP semantics per
// the Open Question decision recorded in DESIGN.md: decrement memory
// once, then compare A against the decremented value.
func (p *Chip) iDCP() {
	res := p.opVal - 1
	p.write(p.opAddr, res)
	p.compare(p.A, res)
}

func (p *Chip) iISC() {
	res := p.opVal + 1
	p.write(p.opAddr, res)
	p.opVal = res
	p.iSBC()
}

func (p *Chip) iSLO() {
	res := p.opVal << 1
	p.carryCheck(uint16(p.opVal) << 1)
	p.write(p.opAddr, res)
	p.loadRegister(&p.A, p.A|res)
}

func (p *Chip) iRLA() {
	carry := p.P & PCarry
	res := (p.opVal << 1) | carry
	p.carryCheck(uint16(p.opVal) << 1)
	p.write(p.opAddr, res)
	p.loadRegister(&p.A, p.A&res)
}

func (p *Chip) iSRE() {
	res := p.opVal >> 1
	p.carryCheck(uint16(p.opVal&0x01) << 8)
	p.write(p.opAddr, res)
	p.loadRegister(&p.A, p.A^res)
}

func (p *Chip) iRRA() {
	carry := (p.P & PCarry) << 7
	res := carry | (p.opVal >> 1)
	p.carryCheck((uint16(p.opVal) << 8) & 0x0100)
	p.write(p.opAddr, res)
	p.opVal = res
	p.iADC()
}

func (p *Chip) iANC() {
	p.loadRegister(&p.A, p.A&p.opVal)
	p.carryCheck(uint16(p.A) << 1)
}

func (p *Chip) iALR() {
	p.loadRegister(&p.A, p.A&p.opVal)
	p.iLSRAcc()
}

func (p *Chip) iARR() {
	p.loadRegister(&p.A, p.A&p.opVal)
	p.iRORAcc()
	p.carryCheck((uint16(p.A) << 2) & 0x0100)
	if (p.A&0x40)>>6^(p.A&0x20)>>5 != 0 {
		p.P |= POverflow
	} else {
		p.P &^= POverflow
	}
}

func (p *Chip) iAXS() {
	t := p.A & p.X
	res := t - p.opVal
	p.carryCheck(uint16(t) + uint16(^p.opVal) + 1)
	p.loadRegister(&p.X, res)
}

// iXAA implements the unstable XAA/ANE opcode using the commonly
// cited 0xEE "magic constant" approximation of its analog behavior
// (http://visual6502.org/wiki/index.php?title=6502_Opcode_8B_(XAA,_ANE)).
func (p *Chip) iXAA(opcode uint8) {
	logUnsupported(opcode, "XAA")
	p.loadRegister(&p.A, (p.A|0xEE)&p.X&p.opVal)
}

// iOAL implements the unstable LXA/LAX#i opcode (0xAB) as the
// deterministic A=X=(A|0xEE)&X&val approximation (the same 0xEE magic
// constant iXAA uses), rather than the teacher's randomized XAA/LAX
// split: a deterministic result is easier for callers (and the
// SingleStepTests harness) to reason about.
func (p *Chip) iOAL(opcode uint8) {
	logUnsupported(opcode, "LXA")
	v := (p.A | 0xEE) & p.X & p.opVal
	p.loadRegister(&p.A, v)
	p.loadRegister(&p.X, v)
}

func (p *Chip) iLAS() {
	p.SP &= p.opVal
	p.loadRegister(&p.X, p.SP)
	p.loadRegister(&p.A, p.SP)
}

// iAHX/iSHX/iSHY/iTAS store (reg & (addrHi+1)); on real hardware the
// actual value and whether the high address byte itself gets
// corrupted depends on whether the indexed address crossed a page,
// which is exactly the condition spec.md §9 leaves unresolved. This
// core always performs the addressing-mode bus accesses (so cycle
// counts stay correct) and writes the textbook value.
func (p *Chip) iAHX(opcode uint8) {
	logUnsupported(opcode, "AHX")
	val := p.A & p.X & uint8((p.opAddr>>8)+1)
	p.write(p.opAddr, val)
}

func (p *Chip) iSHX(opcode uint8) {
	logUnsupported(opcode, "SHX")
	val := p.X & uint8((p.opAddr>>8)+1)
	p.write(p.opAddr, val)
}

func (p *Chip) iSHY(opcode uint8) {
	logUnsupported(opcode, "SHY")
	val := p.Y & uint8((p.opAddr>>8)+1)
	p.write(p.opAddr, val)
}

func (p *Chip) iTAS(opcode uint8) {
	logUnsupported(opcode, "TAS")
	p.SP = p.A & p.X
	val := p.A & p.X & uint8((p.opAddr>>8)+1)
	p.write(p.opAddr, val)
}
