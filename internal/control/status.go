// internal/control/status.go
package control

import (
	"math"

	"github.com/openmill/vfd-bridge/internal/drive"
	"github.com/openmill/vfd-bridge/internal/pins"
)

// Synthesize derives the full output pin set from the latest snapshot
// and the current command. Pure function: the sticky fault state is
// fed back in by the caller, never stored here.
//
// faultLatched carries the previous tick's VFDError; once the drive
// has asserted a fault bit the flag stays set even if the bit clears,
// because there is no register here to acknowledge the fault.
func Synthesize(snap drive.Snapshot, cmd pins.Command, tolerance, scale float64, faultLatched bool, errorCount int32) pins.Outputs {
	out := pins.Outputs{
		InverterStatus: int32(snap.StatusWord),
		RefFrequency:   snap.RefFrequency,
		OutFrequency:   snap.OutFrequency,
		OutCurrent:     snap.OutCurrent,
		OutVoltage:     snap.OutVoltage,
		BusVoltage:     int32(snap.BusVoltage),
		LoadPercent:    snap.LoadPercent,
		InverterTemp:   int32(snap.Temperature),
		ErrorCount:     errorCount,
	}

	out.Stopped = snap.OutFrequency == 0

	if scale > 0 {
		out.FeedbackSpeed = snap.OutFrequency / scale
	}

	// At-speed requires the spindle to be commanded on and the drive
	// to be turning; both guards keep the ratio well-defined.
	if cmd.Enabled && snap.OutFrequency > 0 {
		out.AtSpeed = math.Abs(1-snap.RefFrequency/snap.OutFrequency) < tolerance
	}

	out.VFDError = faultLatched || snap.Faulted()

	return out
}
