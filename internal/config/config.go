package config

import (
	"fmt"
	"math"

	"github.com/spf13/viper"

	"codeberg.org/mutker/argonctl/internal/errors"
	"codeberg.org/mutker/argonctl/internal/logger"
	"codeberg.org/mutker/argonctl/internal/units"
)

// SystemConfigPath is the default configuration file location
const SystemConfigPath = "/etc/argonone/config.toml"

// Config is the validated control loop configuration. It is immutable once
// Check has passed; the fan curve is built from it exactly once.
type Config struct {
	// Time interval to check temperature and update fan speed
	UpdateIntervalSeconds units.UpdateInterval `mapstructure:"update_interval_seconds"`
	// Min temp, degrees C
	TemperatureMin units.DegreesC `mapstructure:"temperature_min"`
	// Max temp, degrees C
	TemperatureMax units.DegreesC `mapstructure:"temperature_max"`
	// Min fan speed percentage
	FanSpeedMin units.FanSpeed `mapstructure:"fan_speed_min"`
	// Max fan speed percentage
	FanSpeedMax units.FanSpeed `mapstructure:"fan_speed_max"`
}

// rawConfig is the wide-field decode target. Narrowing into the bounded
// units types happens after decoding so an out-of-range value fails the
// load instead of wrapping modulo the field width.
type rawConfig struct {
	UpdateIntervalSeconds uint64 `mapstructure:"update_interval_seconds"`
	TemperatureMin        uint64 `mapstructure:"temperature_min"`
	TemperatureMax        uint64 `mapstructure:"temperature_max"`
	FanSpeedMin           uint64 `mapstructure:"fan_speed_min"`
	FanSpeedMax           uint64 `mapstructure:"fan_speed_max"`
}

// Default returns the stock configuration written by --write-default-config
func Default() Config {
	return Config{
		UpdateIntervalSeconds: 30,
		TemperatureMin:        33,
		TemperatureMax:        65,
		FanSpeedMin:           units.MinFanSpeed,
		FanSpeedMax:           units.MaxFanSpeed,
	}
}

// Load reads and validates a configuration file
func Load(path string) (Config, error) {
	errFactory := errors.New()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigParseError); ok {
			return Config{}, errFactory.Wrap(ErrParse, err)
		}

		return Config{}, errFactory.Wrap(ErrIo, err)
	}

	var raw rawConfig
	if err := v.Unmarshal(&raw); err != nil {
		return Config{}, errFactory.Wrap(ErrParse, err)
	}

	cfg, err := raw.narrow()
	if err != nil {
		return Config{}, err
	}

	if cfg.UpdateIntervalSeconds == 0 {
		return Config{}, errFactory.WithData(ErrInvalidInterval, cfg.UpdateIntervalSeconds)
	}

	if err := cfg.Check(); err != nil {
		return Config{}, err
	}

	logger.Info().Msgf("Loaded configuration file %s", path)
	logger.Info().Msgf("Update interval %s", cfg.UpdateIntervalSeconds)
	logger.Info().Msgf("Temperature range %d..=%d C", cfg.TemperatureMin, cfg.TemperatureMax)
	logger.Info().Msgf("Fan speed range %d..=%d %%", cfg.FanSpeedMin, cfg.FanSpeedMax)

	return cfg, nil
}

// narrow converts the wide decode fields into the bounded units types.
// A value outside its field's representation is a load failure, never a
// silent truncation.
func (r rawConfig) narrow() (Config, error) {
	errFactory := errors.New()

	if r.UpdateIntervalSeconds > math.MaxUint32 {
		return Config{}, errFactory.WithMessage(ErrParse,
			fmt.Sprintf("update_interval_seconds out of range: %d", r.UpdateIntervalSeconds))
	}

	tempMin, err := narrowUint8("temperature_min", r.TemperatureMin)
	if err != nil {
		return Config{}, err
	}
	tempMax, err := narrowUint8("temperature_max", r.TemperatureMax)
	if err != nil {
		return Config{}, err
	}
	fanSpeedMin, err := narrowUint8("fan_speed_min", r.FanSpeedMin)
	if err != nil {
		return Config{}, err
	}
	fanSpeedMax, err := narrowUint8("fan_speed_max", r.FanSpeedMax)
	if err != nil {
		return Config{}, err
	}

	return Config{
		UpdateIntervalSeconds: units.UpdateInterval(r.UpdateIntervalSeconds),
		TemperatureMin:        units.DegreesC(tempMin),
		TemperatureMax:        units.DegreesC(tempMax),
		FanSpeedMin:           units.FanSpeed(fanSpeedMin),
		FanSpeedMax:           units.FanSpeed(fanSpeedMax),
	}, nil
}

func narrowUint8(field string, value uint64) (uint8, error) {
	if value > math.MaxUint8 {
		return 0, errors.New().WithMessage(ErrParse,
			fmt.Sprintf("%s out of range: %d", field, value))
	}

	return uint8(value), nil
}

// Check validates the structural invariants. The first violation wins:
// temperature range, then fan speed range, then the fan speed bounds.
func (c Config) Check() error {
	errFactory := errors.New()

	switch {
	case c.TemperatureMin >= c.TemperatureMax:
		return errFactory.New(ErrInvalidTemperatureRange)
	case c.FanSpeedMin >= c.FanSpeedMax:
		return errFactory.New(ErrInvalidFanSpeedRange)
	case c.FanSpeedMin > units.MaxFanSpeed:
		return errFactory.New(ErrInvalidFanSpeedMin)
	case c.FanSpeedMax > units.MaxFanSpeed:
		return errFactory.New(ErrInvalidFanSpeedMax)
	default:
		return nil
	}
}

// WriteDefaults writes the stock configuration to path. Writing and then
// loading reproduces an equal Config.
func WriteDefaults(path string) error {
	errFactory := errors.New()
	cfg := Default()

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("update_interval_seconds", uint32(cfg.UpdateIntervalSeconds))
	v.Set("temperature_min", uint8(cfg.TemperatureMin))
	v.Set("temperature_max", uint8(cfg.TemperatureMax))
	v.Set("fan_speed_min", uint8(cfg.FanSpeedMin))
	v.Set("fan_speed_max", uint8(cfg.FanSpeedMax))

	if err := v.WriteConfigAs(path); err != nil {
		return errFactory.Wrap(ErrWrite, err)
	}

	logger.Info().Msgf("Wrote default configuration to %s", path)

	return nil
}
