package fan

import "codeberg.org/mutker/argonctl/internal/errors"

const (
	// Bus Errors
	ErrHostInitFailed = errors.ErrorCode("fan_host_init_failed")
	ErrBusOpenFailed  = errors.ErrorCode("fan_bus_open_failed")
	ErrWriteFailed    = errors.ErrorCode("fan_write_failed")
)
