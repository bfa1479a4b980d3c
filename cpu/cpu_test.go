package cpu

import (
	"flag"
	"fmt"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-test/deep"

	"github.com/ss141309/nemesis/memory"
)

var verbose = flag.Bool("verbose", false, "If set, some tests print progress dots since they take a long time to run.")

const (
	resetVectorTest = uint16(0x1FFE)
	irqVectorTest   = uint16(0xD001)
)

// setup builds a Chip wired to a flat bus filled with fill, with the
// reset/IRQ/NMI vectors preset so every test starts from a known PC.
func setup(t *testing.T, fill uint8) (*Chip, *memory.FlatBus) {
	t.Helper()
	bus := memory.NewFlatBus(fill)
	bus.Mem[ResetVector] = uint8(resetVectorTest & 0xFF)
	bus.Mem[ResetVector+1] = uint8(resetVectorTest >> 8)
	bus.Mem[IRQVector] = uint8(irqVectorTest & 0xFF)
	bus.Mem[IRQVector+1] = uint8(irqVectorTest >> 8)
	c := New(bus, nil, nil)
	return c, bus
}

// line is a trivial irq.Sender test double: Raised() returns whatever
// it's set to, so tests can flip an interrupt on/off between Step calls.
type line struct{ raised bool }

func (l *line) Raised() bool { return l.raised }

func TestPowerOnState(t *testing.T) {
	c, _ := setup(t, 0xEA)
	if c.PC != resetVectorTest {
		t.Errorf("PC = %#04x, want %#04x", c.PC, resetVectorTest)
	}
	if c.SP != 0xFD {
		t.Errorf("SP = %#02x, want 0xFD", c.SP)
	}
	if c.P != PS1|PInterrupt {
		t.Errorf("P = %#02x, want %#02x", c.P, PS1|PInterrupt)
	}
	if c.A != 0 || c.X != 0 || c.Y != 0 {
		t.Errorf("A/X/Y = %#02x/%#02x/%#02x, want all zero", c.A, c.X, c.Y)
	}
}

func TestReset(t *testing.T) {
	c, _ := setup(t, 0xEA)
	c.A, c.X, c.Y = 0x11, 0x22, 0x33
	c.P = PNegative
	c.Reset()
	if c.A != 0x11 || c.X != 0x22 || c.Y != 0x33 {
		t.Errorf("Reset touched A/X/Y: got %#02x/%#02x/%#02x", c.A, c.X, c.Y)
	}
	if c.P&PInterrupt == 0 {
		t.Error("Reset did not set the I flag")
	}
	if c.PC != resetVectorTest {
		t.Errorf("PC = %#04x, want %#04x", c.PC, resetVectorTest)
	}
}

func TestJAMHalts(t *testing.T) {
	jamOpcodes := []uint8{0x02, 0x12, 0x22, 0x32, 0x42, 0x52, 0x62, 0x72, 0x92, 0xB2, 0xD2, 0xF2}
	for _, op := range jamOpcodes {
		c, bus := setup(t, 0xEA)
		bus.Mem[c.PC] = op
		if _, err := c.Step(); err == nil {
			t.Errorf("opcode %#02x: Step returned nil error, want a halt", op)
		}
		if _, err := c.Step(); err == nil {
			t.Errorf("opcode %#02x: second Step after halt returned nil error", op)
		}
	}
}

func TestNOPVariantCycleCounts(t *testing.T) {
	tests := []struct {
		name   string
		op     uint8
		cycles int
		pcBump uint16
	}{
		{"implied NOP (0xEA)", 0xEA, 2, 1},
		{"implied NOP (0x1A)", 0x1A, 2, 1},
		{"zero-page NOP (0x04)", 0x04, 3, 2},
		{"absolute NOP (0x0C)", 0x0C, 4, 3},
		{"zero-page,X NOP (0x14)", 0x14, 4, 2},
		{"absolute,X NOP (0x1C)", 0x1C, 4, 3},
		{"immediate NOP (0x80)", 0x80, 2, 2},
	}
	for _, tc := range tests {
		c, bus := setup(t, 0xEA)
		start := c.PC
		bus.Mem[c.PC] = tc.op
		cycles, err := c.Step()
		if err != nil {
			t.Errorf("%s: Step returned %v", tc.name, err)
			continue
		}
		if cycles != tc.cycles {
			t.Errorf("%s: cycles = %d, want %d", tc.name, cycles, tc.cycles)
		}
		if c.PC != start+tc.pcBump {
			t.Errorf("%s: PC = %#04x, want %#04x", tc.name, c.PC, start+tc.pcBump)
		}
	}
}

func TestLoadStoreZeroPage(t *testing.T) {
	c, bus := setup(t, 0xEA)
	bus.Mem[c.PC] = 0xA9 // LDA #$42
	bus.Mem[c.PC+1] = 0x42
	if _, err := c.Step(); err != nil {
		t.Fatalf("LDA #$42: %v", err)
	}
	if c.A != 0x42 {
		t.Fatalf("A = %#02x, want 0x42", c.A)
	}
	bus.Mem[c.PC] = 0x85 // STA $10
	bus.Mem[c.PC+1] = 0x10
	if _, err := c.Step(); err != nil {
		t.Fatalf("STA $10: %v", err)
	}
	if bus.Mem[0x10] != 0x42 {
		t.Errorf("mem[0x10] = %#02x, want 0x42", bus.Mem[0x10])
	}
}

func TestZeroPageWraparound(t *testing.T) {
	c, bus := setup(t, 0xEA)
	c.X = 0x10
	bus.Mem[c.PC] = 0xB5 // LDA $F8,X -> effective address wraps to 0x08
	bus.Mem[c.PC+1] = 0xF8
	bus.Mem[0x08] = 0x77
	if _, err := c.Step(); err != nil {
		t.Fatalf("LDA $F8,X: %v", err)
	}
	if c.A != 0x77 {
		t.Errorf("A = %#02x, want 0x77 (zero-page wraparound)", c.A)
	}
}

func TestAbsoluteIndexedPageCross(t *testing.T) {
	tests := []struct {
		name    string
		base    uint16
		index   uint8
		cycles  int
		crosses bool
	}{
		{"no page cross", 0x1000, 0x01, 4, false},
		{"page cross", 0x10FF, 0x01, 5, true},
	}
	for _, tc := range tests {
		c, bus := setup(t, 0xEA)
		c.X = tc.index
		bus.Mem[c.PC] = 0xBD // LDA $nnnn,X
		bus.Mem[c.PC+1] = uint8(tc.base)
		bus.Mem[c.PC+2] = uint8(tc.base >> 8)
		target := tc.base + uint16(tc.index)
		bus.Mem[target] = 0x55
		cycles, err := c.Step()
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if cycles != tc.cycles {
			t.Errorf("%s: cycles = %d, want %d", tc.name, cycles, tc.cycles)
		}
		if c.A != 0x55 {
			t.Errorf("%s: A = %#02x, want 0x55", tc.name, c.A)
		}
	}
}

func TestADCOverflowAndCarry(t *testing.T) {
	c, bus := setup(t, 0xEA)
	c.A = 0x50
	bus.Mem[c.PC] = 0x69 // ADC #$50
	bus.Mem[c.PC+1] = 0x50
	if _, err := c.Step(); err != nil {
		t.Fatalf("ADC #$50: %v", err)
	}
	if c.A != 0xA0 {
		t.Errorf("A = %#02x, want 0xA0", c.A)
	}
	if c.P&POverflow == 0 {
		t.Error("V flag not set on signed overflow (0x50+0x50)")
	}
	if c.P&PCarry != 0 {
		t.Error("C flag set, want clear (no unsigned carry out of 0x50+0x50)")
	}
}

func TestBranchTakenCycleCounts(t *testing.T) {
	tests := []struct {
		name   string
		pc     uint16
		offset uint8
		taken  bool
		cycles int
	}{
		{"not taken", 0x1000, 0x10, false, 2},
		{"taken, same page", 0x1000, 0x10, true, 3},
		{"taken, page cross", 0x10F0, 0x20, true, 4},
	}
	for _, tc := range tests {
		c, bus := setup(t, 0xEA)
		c.PC = tc.pc
		bus.Mem[c.PC] = 0xF0 // BEQ
		if tc.taken {
			c.P |= PZero
		} else {
			c.P &^= PZero
		}
		bus.Mem[c.PC+1] = tc.offset
		cycles, err := c.Step()
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if cycles != tc.cycles {
			t.Errorf("%s: cycles = %d, want %d", tc.name, cycles, tc.cycles)
		}
	}
}

func TestStackPushPull(t *testing.T) {
	c, _ := setup(t, 0xEA)
	startSP := c.SP
	c.A = 0x99
	c.pushStack(c.A)
	if c.SP != startSP-1 {
		t.Errorf("SP after push = %#02x, want %#02x", c.SP, startSP-1)
	}
	c.A = 0
	got := c.popStack()
	if got != 0x99 {
		t.Errorf("popStack = %#02x, want 0x99", got)
	}
	if c.SP != startSP {
		t.Errorf("SP after pop = %#02x, want %#02x", c.SP, startSP)
	}
}

func TestJSRRTSRoundTrip(t *testing.T) {
	c, bus := setup(t, 0xEA)
	start := c.PC
	bus.Mem[c.PC] = 0x20 // JSR $2000
	bus.Mem[c.PC+1] = 0x00
	bus.Mem[c.PC+2] = 0x20
	if _, err := c.Step(); err != nil {
		t.Fatalf("JSR: %v", err)
	}
	if c.PC != 0x2000 {
		t.Fatalf("PC after JSR = %#04x, want 0x2000", c.PC)
	}
	bus.Mem[0x2000] = 0x60 // RTS
	if _, err := c.Step(); err != nil {
		t.Fatalf("RTS: %v", err)
	}
	if want := start + 3; c.PC != want {
		t.Errorf("PC after RTS = %#04x, want %#04x", c.PC, want)
	}
}

func TestIllegalLAX(t *testing.T) {
	c, bus := setup(t, 0xEA)
	bus.Mem[c.PC] = 0xA7 // LAX $10
	bus.Mem[c.PC+1] = 0x10
	bus.Mem[0x10] = 0x37
	if _, err := c.Step(); err != nil {
		t.Fatalf("LAX $10: %v", err)
	}
	if c.A != 0x37 || c.X != 0x37 {
		t.Errorf("A/X = %#02x/%#02x, want both 0x37", c.A, c.X)
	}
}

func TestIRQDeferredByInterruptFlag(t *testing.T) {
	irqLine := &line{raised: true}
	bus := memory.NewFlatBus(0xEA)
	bus.Mem[ResetVector] = uint8(resetVectorTest & 0xFF)
	bus.Mem[ResetVector+1] = uint8(resetVectorTest >> 8)
	bus.Mem[IRQVector] = uint8(irqVectorTest & 0xFF)
	bus.Mem[IRQVector+1] = uint8(irqVectorTest >> 8)
	c := New(bus, irqLine, nil)
	c.P |= PInterrupt // I set: IRQ must be ignored.
	start := c.PC
	if _, err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.PC == irqVectorTest {
		t.Fatal("IRQ serviced despite I flag being set")
	}
	if c.PC != start+1 {
		t.Errorf("PC = %#04x, want %#04x (plain NOP executed)", c.PC, start+1)
	}

	c.P &^= PInterrupt
	if _, err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.PC != irqVectorTest {
		t.Errorf("PC = %#04x, want %#04x (IRQ serviced once I cleared)", c.PC, irqVectorTest)
	}
	if c.P&PInterrupt == 0 {
		t.Error("IRQ entry did not set I")
	}
}

func TestNMITakesPriorityOverIRQ(t *testing.T) {
	irqLine := &line{raised: true}
	nmiLine := &line{raised: true}
	bus := memory.NewFlatBus(0xEA)
	bus.Mem[ResetVector] = uint8(resetVectorTest & 0xFF)
	bus.Mem[ResetVector+1] = uint8(resetVectorTest >> 8)
	bus.Mem[NMIVector] = 0x00
	bus.Mem[NMIVector+1] = 0x30
	c := New(bus, irqLine, nmiLine)
	if _, err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.PC != 0x3000 {
		t.Errorf("PC = %#04x, want 0x3000 (NMI vector)", c.PC)
	}
}

func TestTraceRecordsBusAccesses(t *testing.T) {
	c, bus := setup(t, 0xEA)
	c.EnableTrace(true)
	bus.Mem[c.PC] = 0xA9 // LDA #$42
	bus.Mem[c.PC+1] = 0x42
	if _, err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	want := []BusAccess{
		{Addr: resetVectorTest, Val: 0xA9},
		{Addr: resetVectorTest + 1, Val: 0x42},
	}
	if diff := deep.Equal(c.Trace, want); diff != nil {
		t.Errorf("Trace diff: %v\ngot: %s", diff, spew.Sdump(c.Trace))
	}
}

// TestAllOpcodesExecuteWithoutPanic drives every one of the 256 opcode
// values through a single Step: the JAM opcodes must halt with an
// error and every other opcode must decode and run to completion
// without one, confirming opcodeTable has no missing entries. With
// -verbose it prints a progress dot per opcode, same as the slower
// teacher tests do for their long loops.
func TestAllOpcodesExecuteWithoutPanic(t *testing.T) {
	jam := map[uint8]bool{
		0x02: true, 0x12: true, 0x22: true, 0x32: true,
		0x42: true, 0x52: true, 0x62: true, 0x72: true,
		0x92: true, 0xB2: true, 0xD2: true, 0xF2: true,
	}
	for op := 0; op < 256; op++ {
		opcode := uint8(op)
		c, bus := setup(t, 0xEA)
		bus.Mem[c.PC] = opcode
		_, err := c.Step()
		if jam[opcode] && err == nil {
			t.Errorf("opcode %#02x: want halt, got nil error", opcode)
		}
		if !jam[opcode] && err != nil {
			t.Errorf("opcode %#02x: Step returned %v", opcode, err)
		}
		if *verbose && opcode%16 == 15 {
			fmt.Print(".")
		}
	}
	if *verbose {
		fmt.Println()
	}
}
