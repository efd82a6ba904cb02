// internal/drive/snapshot.go
package drive

import "fmt"

// Snapshot is the telemetry block of one successful poll, decoded to
// engineering units. It is produced whole or not at all: a failed read
// never yields a partial Snapshot.
type Snapshot struct {
	StatusWord   uint16
	RefFrequency float64 // Hz
	OutFrequency float64 // Hz
	OutCurrent   float64 // A
	OutVoltage   float64 // V
	BusVoltage   uint16  // V
	LoadPercent  float64
	Temperature  uint16

	// raw keeps the undecoded registers so callers can compare at
	// register resolution without re-quantizing floats.
	raw [TelemetryBlockLen]uint16
}

// DecodeSnapshot converts one telemetry block read into a Snapshot.
// No IO. No side effects.
func DecodeSnapshot(regs []uint16) (Snapshot, error) {
	if len(regs) != int(TelemetryBlockLen) {
		return Snapshot{}, fmt.Errorf("drive: telemetry block has %d registers, want %d", len(regs), TelemetryBlockLen)
	}

	var s Snapshot
	copy(s.raw[:], regs)

	s.StatusWord = regs[OffStatusWord]
	s.RefFrequency = float64(regs[OffRefFrequency]) * FrequencyScale
	s.OutFrequency = float64(regs[OffOutFrequency]) * FrequencyScale
	s.OutCurrent = float64(regs[OffOutCurrent]) * CurrentScale
	s.OutVoltage = float64(regs[OffOutVoltage]) * VoltageScale
	s.BusVoltage = regs[OffBusVoltage]
	s.LoadPercent = float64(regs[OffLoadPercent]) * LoadScale
	s.Temperature = regs[OffTemperature]

	return s, nil
}

// RunState decodes the run/direction field of the status word.
func (s Snapshot) RunState() RunState {
	return DecodeRunState(s.StatusWord)
}

// Faulted reports whether the drive asserts a fault bit.
func (s Snapshot) Faulted() bool {
	return s.StatusWord&FaultMask != 0
}

// OutFrequencyRaw returns the output frequency register in 0.01 Hz
// counts, for register-resolution comparison against a setpoint.
func (s Snapshot) OutFrequencyRaw() uint16 {
	return s.raw[OffOutFrequency]
}
