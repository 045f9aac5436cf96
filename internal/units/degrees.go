package units

import (
	"fmt"
	"strconv"
	"strings"

	"codeberg.org/mutker/argonctl/internal/errors"
)

const (
	// MinDegreesC is the lowest representable temperature
	MinDegreesC = DegreesC(0)
	// MaxDegreesC is the highest representable temperature
	MaxDegreesC = DegreesC(255)
)

// DegreesC is a temperature in whole degrees Celsius over the full
// unsigned 8-bit range
type DegreesC uint8

// DegreesCFromFloat converts a sensor reading to DegreesC, saturating at
// the representation bounds. Sensor noise outside 0..255 clamps rather
// than errors so a bad reading can never stop the control loop.
func DegreesCFromFloat(t float64) DegreesC {
	if t <= float64(MinDegreesC) {
		return MinDegreesC
	}
	if t >= float64(MaxDegreesC) {
		return MaxDegreesC
	}

	return DegreesC(t)
}

// ParseDegreesC parses a temperature from text
func ParseDegreesC(s string) (DegreesC, error) {
	errFactory := errors.New()
	raw, err := strconv.ParseUint(strings.TrimSpace(s), 10, 8)
	if err != nil {
		return 0, errFactory.Wrap(ErrParseDegrees, err)
	}

	return DegreesC(raw), nil
}

func (t DegreesC) String() string {
	return fmt.Sprintf("%d C", uint8(t))
}
