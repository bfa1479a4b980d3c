package memory

import "testing"

func TestRAMBankWrapsOnUndersizedAddress(t *testing.T) {
	b, err := New8BitRAMBank(256, nil)
	if err != nil {
		t.Fatalf("New8BitRAMBank: %v", err)
	}
	b.Write(0x0000, 0x42)
	if got := b.Read(0x0100); got != 0x42 {
		t.Errorf("Read(0x0100) = %#x, want 0x42 (aliased with 0x0000 on a 256-byte bank)", got)
	}
}

func TestFlatBusNoAliasing(t *testing.T) {
	f := NewFlatBus(0xEA)
	f.Write(0x00FF, 0x01)
	f.Write(0x0100, 0x02)
	if got := f.Read(0x00FF); got != 0x01 {
		t.Errorf("Read(0x00FF) = %#x, want 0x01", got)
	}
	if got := f.Read(0x0100); got != 0x02 {
		t.Errorf("Read(0x0100) = %#x, want 0x02", got)
	}
	if got := f.Read(0x0200); got != 0xEA {
		t.Errorf("Read(0x0200) = %#x, want fill value 0xEA", got)
	}
}

func TestOpenBusReturnsLastDatabusValue(t *testing.T) {
	ob := NewOpenBus(nil)
	if got := ob.Read(0xFFFF); got != 0x00 {
		t.Errorf("OpenBus.Read() before any write = %#x, want 0x00", got)
	}
	ob.Write(0xFFFF, 0x99)
	if got := ob.Read(0xFFFF); got != 0x99 {
		t.Errorf("OpenBus.Read() after Write(0x99) = %#x, want 0x99", got)
	}
	if got := LatestDatabusVal(ob); got != 0x99 {
		t.Errorf("LatestDatabusVal(ob) = %#x, want 0x99 (OpenBus is outermost here)", got)
	}
}
