// internal/transport/transport.go
package transport

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/openmill/vfd-bridge/internal/drive"
)

// RegisterBus abstracts the register operations the bridge needs.
// The transport depends on geometry only.
type RegisterBus interface {
	ReadHoldingRegisters(addr, qty uint16) ([]uint16, error) // FC 3
	WriteSingleRegister(addr, value uint16) error            // FC 6
}

// RetryBudget is the number of retries beyond the first attempt,
// per register operation.
const RetryBudget = 5

// Transport performs budgeted-retry register IO against the drive and
// owns the shared, monotonic error counter. Not safe for concurrent
// use; the control loop is the only caller.
type Transport struct {
	bus      RegisterBus
	log      *logrus.Logger
	errCount uint64
}

// New creates a transport over the given register bus.
func New(bus RegisterBus, log *logrus.Logger) (*Transport, error) {
	if bus == nil {
		return nil, errors.New("transport: register bus required")
	}
	if log == nil {
		log = logrus.New()
	}
	return &Transport{bus: bus, log: log}, nil
}

// ErrorCount returns the total number of failed register attempts,
// including retried ones. It never decreases.
func (t *Transport) ErrorCount() int32 {
	if t.errCount > 0x7FFFFFFF {
		return 0x7FFFFFFF
	}
	return int32(t.errCount)
}

// ReadSnapshot reads the full telemetry block and decodes it.
// All-or-nothing: on failure the caller keeps its previous snapshot.
func (t *Transport) ReadSnapshot() (drive.Snapshot, error) {
	var regs []uint16

	err := t.withRetry("read telemetry", func() error {
		var err error
		regs, err = t.bus.ReadHoldingRegisters(drive.RegTelemetryBase, drive.TelemetryBlockLen)
		return err
	})
	if err != nil {
		return drive.Snapshot{}, err
	}

	return drive.DecodeSnapshot(regs)
}

// WriteRegister writes one register with the standard retry budget.
func (t *Transport) WriteRegister(addr, value uint16) error {
	return t.withRetry(fmt.Sprintf("write register %#04x", addr), func() error {
		return t.bus.WriteSingleRegister(addr, value)
	})
}

// withRetry runs op up to 1+RetryBudget times. Every failed attempt,
// retried or final, increments the error counter exactly once.
func (t *Transport) withRetry(what string, op func() error) error {
	var err error

	for attempt := 0; attempt <= RetryBudget; attempt++ {
		err = op()
		if err == nil {
			return nil
		}
		t.errCount++
		t.log.WithFields(logrus.Fields{
			"op":      what,
			"attempt": attempt + 1,
			"error":   err,
		}).Debug("register operation failed")
	}

	return fmt.Errorf("transport: %s failed after %d attempts: %w", what, RetryBudget+1, err)
}
