// cmd/vfdbridge/main.go
package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/openmill/vfd-bridge/internal/config"
	"github.com/openmill/vfd-bridge/internal/control"
	"github.com/openmill/vfd-bridge/internal/pins"
	"github.com/openmill/vfd-bridge/internal/transport"
	tmodbus "github.com/openmill/vfd-bridge/internal/transport/modbus"
)

func main() {
	log := logrus.New()

	if len(os.Args) < 2 {
		log.Fatal("usage: vfdbridge <config.yaml>")
	}

	// --------------------
	// Load + validate config
	// --------------------

	// Best effort: a missing .env just means no overrides.
	_ = godotenv.Load()

	cfg, err := config.Load(os.Args[1])
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	config.ApplyEnv(cfg)
	config.Normalize(cfg)

	if err := config.Validate(cfg); err != nil {
		log.Fatalf("config validation failed: %v", err)
	}

	setupLogger(log, cfg.Logging.Level)

	// --------------------
	// Serial transport
	// --------------------

	bus, err := tmodbus.New(tmodbus.Config{
		Device:   cfg.Serial.Device,
		BaudRate: cfg.Serial.Baud,
		DataBits: 8,
		Parity:   cfg.Serial.ParityChar(),
		StopBits: cfg.Serial.StopBits,
		SlaveID:  cfg.Serial.SlaveID,
		Timeout:  time.Duration(cfg.Serial.TimeoutMs) * time.Millisecond,
	})
	if err != nil {
		log.Fatalf("serial open failed (device=%s): %v", cfg.Serial.Device, err)
	}
	defer bus.Close()

	tr, err := transport.New(bus, log)
	if err != nil {
		log.Fatalf("transport build failed: %v", err)
	}

	// --------------------
	// Control pipeline
	// --------------------

	machine := control.NewStateMachine(tr, log)

	freq, err := control.NewFrequencyController(tr, cfg.Drive.MaxFrequency, cfg.Drive.MaxReferenceSpeed, log)
	if err != nil {
		log.Fatalf("frequency controller build failed: %v", err)
	}

	period := time.Duration(cfg.Poll.PeriodMs) * time.Millisecond

	block := pins.NewBlock(
		pins.Command{Enabled: !cfg.Drive.DisableOnStart},
		pins.Overrides{
			SpeedTolerance: cfg.Drive.SpeedTolerance,
			PollPeriod:     period,
		},
	)

	loop, err := control.NewLoop(
		control.LoopConfig{Period: period, SpeedTolerance: cfg.Drive.SpeedTolerance},
		tr, machine, freq, block, block, nil, log,
	)
	if err != nil {
		log.Fatalf("loop build failed: %v", err)
	}

	// --------------------
	// Run until SIGINT/SIGTERM
	// --------------------

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.WithFields(logrus.Fields{
		"device":    cfg.Serial.Device,
		"baud":      cfg.Serial.Baud,
		"parity":    cfg.Serial.Parity,
		"stop_bits": cfg.Serial.StopBits,
		"slave_id":  cfg.Serial.SlaveID,
		"period_ms": cfg.Poll.PeriodMs,
	}).Info("vfdbridge starting")

	if err := loop.Run(ctx); err != nil {
		log.Fatalf("control loop failed: %v", err)
	}

	log.Info("vfdbridge stopped")
}

func setupLogger(log *logrus.Logger, level string) {
	if level == "off" || level == "none" {
		log.SetOutput(io.Discard)
		return
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
}
