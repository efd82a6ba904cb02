// internal/config/validate.go
package config

import "fmt"

// Serial parameter whitelists. The drive's RS485 port only supports
// these combinations.
var validBauds = map[int]bool{
	2400:  true,
	4800:  true,
	9600:  true,
	19200: true,
	38400: true,
}

var validParities = map[string]bool{
	"even": true,
	"odd":  true,
	"none": true,
}

// Validate checks configuration correctness after defaults have been
// applied. It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	// ------------------------------------------------------------
	// SERIAL
	// ------------------------------------------------------------

	if cfg.Serial.Device == "" {
		return fmt.Errorf("config: serial.device required")
	}
	if !validBauds[cfg.Serial.Baud] {
		return fmt.Errorf("config: invalid baud rate %d (want 2400, 4800, 9600, 19200 or 38400)", cfg.Serial.Baud)
	}
	if !validParities[cfg.Serial.Parity] {
		return fmt.Errorf("config: invalid parity %q (want even, odd or none)", cfg.Serial.Parity)
	}
	if cfg.Serial.StopBits != 1 && cfg.Serial.StopBits != 2 {
		return fmt.Errorf("config: invalid stop bits %d (want 1 or 2)", cfg.Serial.StopBits)
	}
	if cfg.Serial.SlaveID < 1 || cfg.Serial.SlaveID > 254 {
		return fmt.Errorf("config: invalid slave id %d (want 1..254)", cfg.Serial.SlaveID)
	}
	if cfg.Serial.TimeoutMs <= 0 {
		return fmt.Errorf("config: serial.timeout_ms must be > 0")
	}

	// ------------------------------------------------------------
	// DRIVE SCALING
	// ------------------------------------------------------------

	// These two are fatal at startup: the speed-to-frequency scale is
	// derived from them and must be well-defined.
	if cfg.Drive.MaxFrequency <= 0 {
		return fmt.Errorf("config: drive.max_frequency must be > 0")
	}
	// The setpoint register holds 0.01 Hz counts in 16 bits.
	if cfg.Drive.MaxFrequency > 655.35 {
		return fmt.Errorf("config: drive.max_frequency %.2f exceeds register range (655.35 Hz)", cfg.Drive.MaxFrequency)
	}
	if cfg.Drive.MaxReferenceSpeed <= 0 {
		return fmt.Errorf("config: drive.max_reference_speed must be > 0")
	}

	return nil
}
