// internal/config/config.go
package config

type Config struct {
	Serial  SerialConfig  `yaml:"serial"`
	Drive   DriveConfig   `yaml:"drive"`
	Poll    PollConfig    `yaml:"poll"`
	Logging LoggingConfig `yaml:"logging"`
}

// ---- SERIAL ----

type SerialConfig struct {
	Device    string `yaml:"device"`
	Baud      int    `yaml:"baud"`
	Parity    string `yaml:"parity"` // even, odd, none
	StopBits  int    `yaml:"stop_bits"`
	SlaveID   uint8  `yaml:"slave_id"`
	TimeoutMs int    `yaml:"timeout_ms"`
}

// ParityChar maps the parity name to the single-character form the
// serial layer expects.
func (s SerialConfig) ParityChar() string {
	switch s.Parity {
	case "even":
		return "E"
	case "odd":
		return "O"
	default:
		return "N"
	}
}

// ---- DRIVE ----

type DriveConfig struct {
	MaxFrequency      float64 `yaml:"max_frequency"`       // Hz
	MaxReferenceSpeed float64 `yaml:"max_reference_speed"` // RPM at MaxFrequency
	SpeedTolerance    float64 `yaml:"speed_tolerance"`     // fraction of reference
	DisableOnStart    bool    `yaml:"disable_on_start"`
}

// ---- POLL ----

type PollConfig struct {
	PeriodMs int `yaml:"period_ms"`
}

// ---- LOGGING ----

type LoggingConfig struct {
	Level string `yaml:"level"` // off, error, warn, info, debug
}
