package units

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"codeberg.org/mutker/argonctl/internal/errors"
)

// UpdateInterval is the time between control ticks, in whole seconds.
// Zero is not a valid interval.
type UpdateInterval uint32

// NewUpdateInterval validates a raw number of seconds
func NewUpdateInterval(seconds uint32) (UpdateInterval, error) {
	errFactory := errors.New()
	if seconds == 0 {
		return 0, errFactory.New(ErrZeroInterval)
	}

	return UpdateInterval(seconds), nil
}

// ParseUpdateInterval parses an interval in seconds from text
func ParseUpdateInterval(s string) (UpdateInterval, error) {
	errFactory := errors.New()
	raw, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, errFactory.Wrap(ErrParseInterval, err)
	}

	return NewUpdateInterval(uint32(raw))
}

// Duration returns the interval as a time.Duration for scheduling
func (i UpdateInterval) Duration() time.Duration {
	return time.Duration(i) * time.Second
}

func (i UpdateInterval) String() string {
	return fmt.Sprintf("%ds", uint32(i))
}
