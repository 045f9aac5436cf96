package units

import (
	"fmt"
	"strconv"
	"strings"

	"codeberg.org/mutker/argonctl/internal/errors"
)

const (
	// MinFanSpeed is the lowest valid fan speed percentage
	MinFanSpeed = FanSpeed(0)
	// MaxFanSpeed is the highest valid fan speed percentage
	MaxFanSpeed = FanSpeed(100)
	// DefaultFanSpeed is a safe speed to hold before the first control tick
	DefaultFanSpeed = FanSpeed(25)
)

// FanSpeed is a fan speed percentage. Valid values are 0..=100, and the
// constructors are the only way values enter the type, so callers can rely
// on the invariant without re-checking.
type FanSpeed uint8

// NewFanSpeed validates a raw percentage
func NewFanSpeed(raw uint8) (FanSpeed, error) {
	errFactory := errors.New()
	if raw > uint8(MaxFanSpeed) {
		return 0, errFactory.WithData(ErrInvalidFanSpeed, raw)
	}

	return FanSpeed(raw), nil
}

// ParseFanSpeed parses a fan speed percentage from text
func ParseFanSpeed(s string) (FanSpeed, error) {
	errFactory := errors.New()
	raw, err := strconv.ParseUint(strings.TrimSpace(s), 10, 8)
	if err != nil {
		return 0, errFactory.Wrap(ErrParseFanSpeed, err)
	}

	return NewFanSpeed(uint8(raw))
}

// Percent returns the speed as a plain integer percentage
func (fs FanSpeed) Percent() int {
	return int(fs)
}

// Byte returns the single-byte wire representation sent to the fan controller
func (fs FanSpeed) Byte() byte {
	return byte(fs)
}

func (fs FanSpeed) String() string {
	return fmt.Sprintf("%d%%", uint8(fs))
}
