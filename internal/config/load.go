// internal/config/load.go
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Load reads and parses the YAML config file.
// It performs no validation and no defaulting.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return &cfg, nil
}

// ApplyEnv overlays environment variables onto the config.
// Only the deployment-specific knobs are overridable this way.
func ApplyEnv(cfg *Config) {
	if v := os.Getenv("VFD_DEVICE"); v != "" {
		cfg.Serial.Device = v
	}
	if v := os.Getenv("VFD_SLAVE_ID"); v != "" {
		if id, err := strconv.ParseUint(v, 10, 8); err == nil {
			cfg.Serial.SlaveID = uint8(id)
		}
	}
	if v := os.Getenv("VFD_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}
