package units

import (
	"fmt"
	"strconv"
	"strings"

	"codeberg.org/mutker/argonctl/internal/errors"
)

const (
	// DefaultBus is the I2C bus the fan controller sits on
	DefaultBus = Bus(1)
	// DefaultAddress is the fan controller's I2C address
	DefaultAddress = Address(0x1A)
)

// Bus is an I2C bus number
type Bus uint8

// ParseBus parses a bus number from text
func ParseBus(s string) (Bus, error) {
	errFactory := errors.New()
	raw, err := strconv.ParseUint(strings.TrimSpace(s), 10, 8)
	if err != nil {
		return 0, errFactory.Wrap(ErrParseBus, err)
	}

	return Bus(raw), nil
}

func (b Bus) String() string {
	return strconv.Itoa(int(b))
}

// Address is a 7/10-bit I2C device address
type Address uint16

// ParseAddress parses a device address from text, accepting decimal or
// 0x-prefixed hex
func ParseAddress(s string) (Address, error) {
	errFactory := errors.New()
	s = strings.TrimSpace(s)

	var raw uint64
	var err error
	if strings.HasPrefix(s, "0x") {
		raw, err = strconv.ParseUint(strings.TrimPrefix(s, "0x"), 16, 16)
	} else {
		raw, err = strconv.ParseUint(s, 10, 16)
	}
	if err != nil {
		return 0, errFactory.Wrap(ErrParseAddress, err)
	}

	return Address(raw), nil
}

func (a Address) String() string {
	return fmt.Sprintf("0x%X", uint16(a))
}
