package config

import "codeberg.org/mutker/argonctl/internal/errors"

const (
	// Load Errors
	ErrIo    = errors.ErrorCode("config_io_failed")
	ErrParse = errors.ErrorCode("config_parse_failed")
	ErrWrite = errors.ErrorCode("config_write_failed")

	// Validation Errors
	ErrInvalidTemperatureRange = errors.ErrorCode("config_invalid_temperature_range")
	ErrInvalidFanSpeedRange    = errors.ErrorCode("config_invalid_fan_speed_range")
	ErrInvalidFanSpeedMin      = errors.ErrorCode("config_invalid_fan_speed_min")
	ErrInvalidFanSpeedMax      = errors.ErrorCode("config_invalid_fan_speed_max")
	ErrInvalidInterval         = errors.ErrorCode("config_invalid_interval")
)
