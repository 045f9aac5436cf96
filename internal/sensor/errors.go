package sensor

import "codeberg.org/mutker/argonctl/internal/errors"

const (
	// Mailbox Errors
	ErrOpenFailed     = errors.ErrorCode("sensor_open_failed")
	ErrPropertyFailed = errors.ErrorCode("sensor_property_failed")
	ErrReadFailed     = errors.ErrorCode("sensor_read_failed")

	// Host Sensor Errors
	ErrNoThermalZone = errors.ErrorCode("sensor_no_thermal_zone")
)
