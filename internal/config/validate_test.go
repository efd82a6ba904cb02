// internal/config/validate_test.go
package config

import "testing"

// helper to build a config that passes validation
func valid() *Config {
	cfg := &Config{}
	cfg.Drive.MaxFrequency = 400.0
	cfg.Drive.MaxReferenceSpeed = 24000.0
	Normalize(cfg)
	return cfg
}

// ---- tests ----

func TestValidate_DefaultsAreValid(t *testing.T) {
	if err := Validate(valid()); err != nil {
		t.Fatalf("Validate err=%v", err)
	}
}

func TestValidate_RejectsBadBaud(t *testing.T) {
	cfg := valid()
	cfg.Serial.Baud = 57600
	if err := Validate(cfg); err == nil {
		t.Fatal("expected error for baud 57600")
	}
}

func TestValidate_RejectsBadParity(t *testing.T) {
	cfg := valid()
	cfg.Serial.Parity = "mark"
	if err := Validate(cfg); err == nil {
		t.Fatal("expected error for parity mark")
	}
}

func TestValidate_RejectsBadStopBits(t *testing.T) {
	cfg := valid()
	cfg.Serial.StopBits = 3
	if err := Validate(cfg); err == nil {
		t.Fatal("expected error for 3 stop bits")
	}
}

func TestValidate_RejectsBadSlaveID(t *testing.T) {
	cfg := valid()
	cfg.Serial.SlaveID = 255
	if err := Validate(cfg); err == nil {
		t.Fatal("expected error for slave id 255")
	}
}

func TestValidate_RejectsNonPositiveScaling(t *testing.T) {
	cfg := valid()
	cfg.Drive.MaxFrequency = 0
	if err := Validate(cfg); err == nil {
		t.Fatal("expected error for max_frequency 0")
	}

	cfg = valid()
	cfg.Drive.MaxReferenceSpeed = -1
	if err := Validate(cfg); err == nil {
		t.Fatal("expected error for negative max_reference_speed")
	}

	cfg = valid()
	cfg.Drive.MaxFrequency = 700.0
	if err := Validate(cfg); err == nil {
		t.Fatal("expected error for max_frequency beyond register range")
	}
}

func TestNormalize_ClampsPollPeriod(t *testing.T) {
	cfg := &Config{}
	cfg.Poll.PeriodMs = 10000
	Normalize(cfg)
	if cfg.Poll.PeriodMs != MaxPeriodMs {
		t.Fatalf("PeriodMs=%d want %d", cfg.Poll.PeriodMs, MaxPeriodMs)
	}

	cfg = &Config{}
	cfg.Poll.PeriodMs = -5
	Normalize(cfg)
	if cfg.Poll.PeriodMs != MinPeriodMs {
		t.Fatalf("PeriodMs=%d want %d", cfg.Poll.PeriodMs, MinPeriodMs)
	}
}

func TestNormalize_Defaults(t *testing.T) {
	cfg := &Config{}
	Normalize(cfg)

	if cfg.Serial.Device != "/dev/ttyUSB0" {
		t.Errorf("Device=%q", cfg.Serial.Device)
	}
	if cfg.Serial.Baud != 19200 {
		t.Errorf("Baud=%d", cfg.Serial.Baud)
	}
	if cfg.Serial.ParityChar() != "N" {
		t.Errorf("ParityChar=%q", cfg.Serial.ParityChar())
	}
	if cfg.Drive.SpeedTolerance != 0.01 {
		t.Errorf("SpeedTolerance=%v", cfg.Drive.SpeedTolerance)
	}
}
