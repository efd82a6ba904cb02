// internal/control/frequency.go
package control

import (
	"errors"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/openmill/vfd-bridge/internal/drive"
	"github.com/openmill/vfd-bridge/internal/pins"
	"github.com/openmill/vfd-bridge/internal/transport"
)

// FrequencyController converts the requested speed into a frequency
// setpoint and pushes it to the drive only when it differs from the
// observed output frequency at register resolution.
type FrequencyController struct {
	tr                *transport.Transport
	maxFrequency      float64
	maxReferenceSpeed float64
	log               *logrus.Logger
}

func NewFrequencyController(tr *transport.Transport, maxFrequency, maxReferenceSpeed float64, log *logrus.Logger) (*FrequencyController, error) {
	if maxFrequency <= 0 {
		return nil, errors.New("control: max frequency must be > 0")
	}
	if maxReferenceSpeed <= 0 {
		return nil, errors.New("control: max reference speed must be > 0")
	}
	if log == nil {
		log = logrus.New()
	}
	return &FrequencyController{
		tr:                tr,
		maxFrequency:      maxFrequency,
		maxReferenceSpeed: maxReferenceSpeed,
		log:               log,
	}, nil
}

// Scale is the speed-to-frequency factor (Hz per speed unit).
func (f *FrequencyController) Scale() float64 {
	return f.maxFrequency / f.maxReferenceSpeed
}

// TargetRegister computes the setpoint register value for a requested
// speed: magnitude scaled to Hz, clamped to the ceiling, truncated to
// 0.01 Hz counts.
func (f *FrequencyController) TargetRegister(speed float64) uint16 {
	// Multiply before dividing so exact inputs stay exact.
	hz := math.Abs(speed) * f.maxFrequency / f.maxReferenceSpeed
	if hz > f.maxFrequency {
		hz = f.maxFrequency
	}
	return uint16(hz * 100)
}

// Apply writes the setpoint unless the drive already reports the same
// output frequency. A failed write is reported, not compensated: the
// mismatch persists, so the write is re-attempted next tick.
func (f *FrequencyController) Apply(cmd pins.Command, snap drive.Snapshot) error {
	target := f.TargetRegister(cmd.Speed)
	if target == snap.OutFrequencyRaw() {
		return nil
	}

	f.log.WithFields(logrus.Fields{
		"target_hz":   float64(target) * drive.FrequencyScale,
		"observed_hz": snap.OutFrequency,
	}).Debug("frequency setpoint write")

	return f.tr.WriteRegister(drive.RegFrequencySet, target)
}
