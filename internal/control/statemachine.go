// internal/control/statemachine.go
package control

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/openmill/vfd-bridge/internal/drive"
	"github.com/openmill/vfd-bridge/internal/pins"
	"github.com/openmill/vfd-bridge/internal/transport"
)

// ErrDirectionConflict is returned when the host asserts forward and
// reverse at the same time. No run command is issued for such a tick.
var ErrDirectionConflict = errors.New("control: forward and reverse asserted together")

// targetRunState maps the command and the observed run state to the
// state the drive should be told to enter. The second return is false
// when the drive is already where it should be and no write is needed.
func targetRunState(cmd pins.Command, observed drive.RunState) (drive.RunState, bool, error) {
	if cmd.Enabled && cmd.Forward && cmd.Reverse {
		return observed, false, ErrDirectionConflict
	}

	switch {
	case cmd.Enabled && cmd.Forward && observed != drive.RunForward:
		return drive.RunForward, true, nil
	case cmd.Enabled && cmd.Reverse && observed != drive.RunReverse:
		return drive.RunReverse, true, nil
	case !cmd.Enabled && observed.Running():
		return drive.Stopped, true, nil
	}

	return observed, false, nil
}

// StateMachine issues run/direction commands when the observed state
// diverges from the commanded one.
type StateMachine struct {
	tr  *transport.Transport
	log *logrus.Logger
}

func NewStateMachine(tr *transport.Transport, log *logrus.Logger) *StateMachine {
	if log == nil {
		log = logrus.New()
	}
	return &StateMachine{tr: tr, log: log}
}

// Apply evaluates the transition rule against the latest snapshot and
// writes the command word only on a determined transition. A failed
// write is reported, not compensated: the observed state stays stale,
// so the same transition is retried on subsequent ticks.
func (m *StateMachine) Apply(cmd pins.Command, snap drive.Snapshot) error {
	target, write, err := targetRunState(cmd, snap.RunState())
	if err != nil {
		return err
	}
	if !write {
		return nil
	}

	m.log.WithFields(logrus.Fields{
		"from": snap.RunState().String(),
		"to":   target.String(),
	}).Debug("run state transition")

	return m.tr.WriteRegister(drive.RegRunCommand, target.Encode())
}
