package fan

import (
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"

	"codeberg.org/mutker/argonctl/internal/errors"
	"codeberg.org/mutker/argonctl/internal/logger"
	"codeberg.org/mutker/argonctl/internal/units"
)

// Controller commands the case fan over I2C. The fan controller firmware
// takes a single byte per write: the desired speed percentage.
type Controller struct {
	bus i2c.BusCloser
	dev *i2c.Dev
}

// New opens the I2C bus and addresses the fan controller
func New(busNumber units.Bus, addr units.Address) (*Controller, error) {
	errFactory := errors.New()

	if _, err := host.Init(); err != nil {
		return nil, errFactory.Wrap(ErrHostInitFailed, err)
	}

	bus, err := i2creg.Open(busNumber.String())
	if err != nil {
		return nil, errFactory.Wrap(ErrBusOpenFailed, err)
	}

	logger.Debug().Msgf("Opened I2C bus %s, fan controller at %s", busNumber, addr)

	return &Controller{
		bus: bus,
		dev: &i2c.Dev{Bus: bus, Addr: uint16(addr)},
	}, nil
}

// SetSpeed writes the speed percentage to the fan controller
func (c *Controller) SetSpeed(speed units.FanSpeed) error {
	errFactory := errors.New()

	if err := c.dev.Tx([]byte{speed.Byte()}, nil); err != nil {
		return errFactory.Wrap(ErrWriteFailed, err)
	}

	logger.Debug().Msgf("Fan speed set to %s", speed)

	return nil
}

func (c *Controller) Close() error {
	return c.bus.Close()
}
