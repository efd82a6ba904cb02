// internal/pins/pins.go
package pins

import (
	"sync"
	"time"
)

// Command is the host's commanded spindle state, sampled once at the
// top of each tick. Read-only to the control loop.
type Command struct {
	Enabled bool
	Forward bool
	Reverse bool
	Speed   float64 // requested speed, signed; magnitude is used
}

// Overrides are the runtime-mutable tuning parameters the host may
// change between ticks.
type Overrides struct {
	SpeedTolerance float64
	PollPeriod     time.Duration
}

// Outputs is the full output pin set, recomputed whole every tick.
type Outputs struct {
	InverterStatus int32
	RefFrequency   float64
	OutFrequency   float64
	OutCurrent     float64
	OutVoltage     float64
	BusVoltage     int32
	LoadPercent    float64
	InverterTemp   int32
	VFDError       bool
	AtSpeed        bool
	Stopped        bool
	FeedbackSpeed  float64
	ErrorCount     int32
}

// Source supplies the input pins. Implementations must tolerate
// concurrent host writes; the loop only needs last-write-wins.
type Source interface {
	Command() Command
	Overrides() Overrides
}

// Sink receives the output pins once per tick.
// No logic, no state, no interpretation.
type Sink interface {
	Publish(Outputs)
}

// Block is a mutex-guarded in-memory pin block. The host side writes
// commands and overrides; the control loop reads them at tick start
// and publishes outputs. Last write wins on both sides.
type Block struct {
	mu  sync.Mutex
	cmd Command
	ovr Overrides
	out Outputs
}

// NewBlock creates a pin block with the given startup values.
func NewBlock(cmd Command, ovr Overrides) *Block {
	return &Block{cmd: cmd, ovr: ovr}
}

// ---- loop side ----

func (b *Block) Command() Command {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cmd
}

func (b *Block) Overrides() Overrides {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ovr
}

func (b *Block) Publish(out Outputs) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.out = out
}

// ---- host side ----

func (b *Block) SetCommand(cmd Command) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cmd = cmd
}

func (b *Block) SetOverrides(ovr Overrides) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.ovr = ovr
}

// Outputs returns the most recently published output pins.
func (b *Block) Outputs() Outputs {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.out
}
