// internal/control/loop.go
package control

import (
	"context"
	"errors"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/sirupsen/logrus"

	"github.com/openmill/vfd-bridge/internal/drive"
	"github.com/openmill/vfd-bridge/internal/pins"
	"github.com/openmill/vfd-bridge/internal/transport"
)

// Poll period clamp bounds.
const (
	MinPeriod = time.Millisecond
	MaxPeriod = 2 * time.Second
)

// LoopConfig holds the startup values; the host may override both at
// runtime through the pin block.
type LoopConfig struct {
	Period         time.Duration
	SpeedTolerance float64
}

// Loop is the single-threaded poll scheduler. Each tick it reads the
// telemetry block, reconciles run state and frequency, and publishes
// the derived outputs. All mutable state is owned here; components
// borrow it per call.
type Loop struct {
	cfg     LoopConfig
	tr      *transport.Transport
	machine *StateMachine
	freq    *FrequencyController
	src     pins.Source
	sink    pins.Sink
	clk     clock.Clock
	log     *logrus.Logger

	snap         drive.Snapshot
	haveSnap     bool
	faultLatched bool
}

func NewLoop(cfg LoopConfig, tr *transport.Transport, machine *StateMachine, freq *FrequencyController, src pins.Source, sink pins.Sink, clk clock.Clock, log *logrus.Logger) (*Loop, error) {
	if tr == nil || machine == nil || freq == nil {
		return nil, errors.New("control: transport, state machine and frequency controller required")
	}
	if src == nil || sink == nil {
		return nil, errors.New("control: pin source and sink required")
	}
	if clk == nil {
		clk = clock.New()
	}
	if log == nil {
		log = logrus.New()
	}
	if cfg.Period <= 0 {
		cfg.Period = 100 * time.Millisecond
	}
	if cfg.SpeedTolerance <= 0 {
		cfg.SpeedTolerance = 0.01
	}
	return &Loop{
		cfg:     cfg,
		tr:      tr,
		machine: machine,
		freq:    freq,
		src:     src,
		sink:    sink,
		clk:     clk,
		log:     log,
	}, nil
}

// Run drives ticks until ctx is cancelled. Cancellation is observed
// between ticks; in-flight register operations complete first.
func (l *Loop) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-l.clk.After(l.period()):
		}
		l.Tick()
	}
}

// Tick performs one full iteration: read, reconcile state, reconcile
// frequency, synthesize, publish. Exported for deterministic tests.
func (l *Loop) Tick() {
	cmd := l.src.Command()
	ovr := l.src.Overrides()

	snap, err := l.tr.ReadSnapshot()
	if err != nil {
		// Keep the previous snapshot; the error counter already
		// accounts for every failed attempt.
		l.log.WithError(err).Warn("telemetry read failed")
	} else {
		l.snap = snap
		l.haveSnap = true
	}

	// No writes until the first successful read: commanding the drive
	// against an unknown state is worse than waiting one tick.
	if l.haveSnap {
		// Direction change must land before a frequency push.
		if err := l.machine.Apply(cmd, l.snap); err != nil {
			if errors.Is(err, ErrDirectionConflict) {
				l.log.Warn("forward and reverse both asserted; holding current run state")
			} else {
				l.log.WithError(err).Warn("run command write failed")
			}
		}
		if err := l.freq.Apply(cmd, l.snap); err != nil {
			l.log.WithError(err).Warn("frequency setpoint write failed")
		}
	}

	tol := ovr.SpeedTolerance
	if tol <= 0 {
		tol = l.cfg.SpeedTolerance
	}

	out := Synthesize(l.snap, cmd, tol, l.freq.Scale(), l.faultLatched, l.tr.ErrorCount())
	l.faultLatched = out.VFDError
	l.sink.Publish(out)
}

func (l *Loop) period() time.Duration {
	p := l.src.Overrides().PollPeriod
	if p <= 0 {
		p = l.cfg.Period
	}
	return clampPeriod(p)
}

func clampPeriod(d time.Duration) time.Duration {
	if d < MinPeriod {
		return MinPeriod
	}
	if d > MaxPeriod {
		return MaxPeriod
	}
	return d
}
