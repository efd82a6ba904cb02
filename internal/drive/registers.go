// internal/drive/registers.go
package drive

// Nowforever D100/E100 register map.
// These values define the wire contract and MUST NOT be configurable.

// ---- TELEMETRY BLOCK ----

// RegTelemetryBase is the first register of the telemetry block.
const RegTelemetryBase uint16 = 0x0500

// TelemetryBlockLen is the fixed number of registers read per poll.
const TelemetryBlockLen uint16 = 8

// ---- TELEMETRY OFFSETS ----

// Offsets into the telemetry block, relative to RegTelemetryBase.
const (
	OffStatusWord   = 0
	OffRefFrequency = 1
	OffOutFrequency = 2
	OffOutCurrent   = 3
	OffOutVoltage   = 4
	OffBusVoltage   = 5
	OffLoadPercent  = 6
	OffTemperature  = 7
)

// ---- COMMAND REGISTERS ----

// RegRunCommand holds the run/direction command word.
const RegRunCommand uint16 = 0x0900

// RegFrequencySet holds the frequency setpoint in 0.01 Hz units.
const RegFrequencySet uint16 = 0x0901

// ---- SCALING ----

// Register counts map to engineering units with fixed factors.
const (
	FrequencyScale = 0.01 // Hz per count
	CurrentScale   = 0.1  // A per count
	VoltageScale   = 0.1  // V per count
	LoadScale      = 0.1  // percent per count
)

// ---- FAULT BITS ----

// FaultMask selects the fault bits (3 and 4) of the status word.
const FaultMask uint16 = 0x0018
