// internal/config/normalize.go
package config

// Poll period clamp bounds, milliseconds.
const (
	MinPeriodMs = 1
	MaxPeriodMs = 2000
)

// Defaults match the original serial-line conventions for this drive
// family.
const (
	defaultDevice    = "/dev/ttyUSB0"
	defaultBaud      = 19200
	defaultParity    = "none"
	defaultStopBits  = 1
	defaultSlaveID   = 1
	defaultTimeoutMs = 500

	defaultPeriodMs  = 100
	defaultTolerance = 0.01
	defaultLogLevel  = "info"
)

// Normalize fills defaults for unset fields and clamps the poll
// period into its safe range. It is allowed to mutate configuration.
// It MUST be called before Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	// ------------------------------------------------------------
	// SERIAL DEFAULTS
	// ------------------------------------------------------------

	if cfg.Serial.Device == "" {
		cfg.Serial.Device = defaultDevice
	}
	if cfg.Serial.Baud == 0 {
		cfg.Serial.Baud = defaultBaud
	}
	if cfg.Serial.Parity == "" {
		cfg.Serial.Parity = defaultParity
	}
	if cfg.Serial.StopBits == 0 {
		cfg.Serial.StopBits = defaultStopBits
	}
	if cfg.Serial.SlaveID == 0 {
		cfg.Serial.SlaveID = defaultSlaveID
	}
	if cfg.Serial.TimeoutMs == 0 {
		cfg.Serial.TimeoutMs = defaultTimeoutMs
	}

	// ------------------------------------------------------------
	// POLL PERIOD CLAMP
	// ------------------------------------------------------------

	if cfg.Poll.PeriodMs == 0 {
		cfg.Poll.PeriodMs = defaultPeriodMs
	}
	if cfg.Poll.PeriodMs < MinPeriodMs {
		cfg.Poll.PeriodMs = MinPeriodMs
	}
	if cfg.Poll.PeriodMs > MaxPeriodMs {
		cfg.Poll.PeriodMs = MaxPeriodMs
	}

	// ------------------------------------------------------------
	// TOLERANCE + LOGGING
	// ------------------------------------------------------------

	if cfg.Drive.SpeedTolerance <= 0 {
		cfg.Drive.SpeedTolerance = defaultTolerance
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = defaultLogLevel
	}
}
