// internal/drive/snapshot_test.go
package drive

import "testing"

func TestDecodeSnapshot(t *testing.T) {
	regs := []uint16{
		0x0001, // status: running forward
		10000,  // ref 100.00 Hz
		9950,   // out 99.50 Hz
		52,     // 5.2 A
		2300,   // 230.0 V
		320,    // 320 V bus
		875,    // 87.5 %
		41,     // 41 degrees
	}

	s, err := DecodeSnapshot(regs)
	if err != nil {
		t.Fatalf("DecodeSnapshot err=%v", err)
	}

	if s.RefFrequency != 100.0 {
		t.Errorf("RefFrequency=%v want 100.0", s.RefFrequency)
	}
	if s.OutFrequency != 99.5 {
		t.Errorf("OutFrequency=%v want 99.5", s.OutFrequency)
	}
	if s.OutCurrent != 5.2 {
		t.Errorf("OutCurrent=%v want 5.2", s.OutCurrent)
	}
	if s.OutVoltage != 230.0 {
		t.Errorf("OutVoltage=%v want 230.0", s.OutVoltage)
	}
	if s.BusVoltage != 320 {
		t.Errorf("BusVoltage=%v want 320", s.BusVoltage)
	}
	if s.LoadPercent != 87.5 {
		t.Errorf("LoadPercent=%v want 87.5", s.LoadPercent)
	}
	if s.Temperature != 41 {
		t.Errorf("Temperature=%v want 41", s.Temperature)
	}
	if s.RunState() != RunForward {
		t.Errorf("RunState=%v want forward", s.RunState())
	}
	if s.Faulted() {
		t.Errorf("Faulted=true for clean status word")
	}
	if s.OutFrequencyRaw() != 9950 {
		t.Errorf("OutFrequencyRaw=%d want 9950", s.OutFrequencyRaw())
	}
}

func TestDecodeSnapshot_WrongLength(t *testing.T) {
	if _, err := DecodeSnapshot(make([]uint16, 7)); err == nil {
		t.Fatal("expected error for short block")
	}
	if _, err := DecodeSnapshot(make([]uint16, 9)); err == nil {
		t.Fatal("expected error for long block")
	}
}

func TestSnapshot_FaultBits(t *testing.T) {
	for _, word := range []uint16{0x0008, 0x0010, 0x0018} {
		s, err := DecodeSnapshot([]uint16{word, 0, 0, 0, 0, 0, 0, 0})
		if err != nil {
			t.Fatalf("DecodeSnapshot err=%v", err)
		}
		if !s.Faulted() {
			t.Errorf("word=%#04x: Faulted=false, want true", word)
		}
	}

	s, _ := DecodeSnapshot([]uint16{0x0007, 0, 0, 0, 0, 0, 0, 0})
	if s.Faulted() {
		t.Errorf("word=0x0007: Faulted=true, want false")
	}
}
