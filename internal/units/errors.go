package units

import "codeberg.org/mutker/argonctl/internal/errors"

const (
	// Parse Errors
	ErrParseFanSpeed = errors.ErrorCode("units_parse_fan_speed_failed")
	ErrParseDegrees  = errors.ErrorCode("units_parse_degrees_failed")
	ErrParseInterval = errors.ErrorCode("units_parse_interval_failed")
	ErrParseBus      = errors.ErrorCode("units_parse_bus_failed")
	ErrParseAddress  = errors.ErrorCode("units_parse_address_failed")

	// Range Errors
	ErrInvalidFanSpeed = errors.ErrorCode("units_invalid_fan_speed")
	ErrZeroInterval    = errors.ErrorCode("units_zero_interval")
)
