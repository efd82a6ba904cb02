// internal/transport/modbus/client.go
package modbus

import (
	"errors"
	"time"

	"github.com/goburrow/modbus"
)

// Client is a single Modbus RTU connection to the drive over a serial
// device. It implements transport.RegisterBus.
type Client struct {
	handler *modbus.RTUClientHandler
	client  modbus.Client
}

type Config struct {
	Device   string
	BaudRate int
	DataBits int
	Parity   string // "E", "O", "N"
	StopBits int
	SlaveID  byte
	Timeout  time.Duration
}

// New opens the serial device and returns a connected client.
func New(cfg Config) (*Client, error) {
	if cfg.Device == "" {
		return nil, errors.New("modbus: serial device required")
	}

	h := modbus.NewRTUClientHandler(cfg.Device)
	h.BaudRate = cfg.BaudRate
	h.DataBits = cfg.DataBits
	h.Parity = cfg.Parity
	h.StopBits = cfg.StopBits
	h.SlaveId = cfg.SlaveID
	h.Timeout = cfg.Timeout

	if err := h.Connect(); err != nil {
		return nil, err
	}

	return &Client{
		handler: h,
		client:  modbus.NewClient(h),
	}, nil
}

// Close closes the serial port.
func (c *Client) Close() error {
	if c == nil || c.handler == nil {
		return nil
	}
	return c.handler.Close()
}

// ---- transport.RegisterBus ----

func (c *Client) ReadHoldingRegisters(addr, qty uint16) ([]uint16, error) {
	payload, err := c.client.ReadHoldingRegisters(addr, qty)
	if err != nil {
		return nil, err
	}
	if len(payload) != int(qty)*2 {
		return nil, errors.New("modbus: short read-registers payload")
	}
	return unpackRegisters(payload), nil
}

func (c *Client) WriteSingleRegister(addr, value uint16) error {
	_, err := c.client.WriteSingleRegister(addr, value)
	return err
}

// ---- helpers (pure geometry) ----

func unpackRegisters(data []byte) []uint16 {
	n := len(data) / 2
	out := make([]uint16, n)
	for i := 0; i < n; i++ {
		out[i] = uint16(data[2*i])<<8 | uint16(data[2*i+1])
	}
	return out
}
