package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/mutker/argonctl/internal/config"
	"codeberg.org/mutker/argonctl/internal/errors"
	"codeberg.org/mutker/argonctl/internal/units"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	path := writeConfigFile(t, `
update_interval_seconds = 5
temperature_min = 55
temperature_max = 65
fan_speed_min = 10
fan_speed_max = 100
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, units.UpdateInterval(5), cfg.UpdateIntervalSeconds)
	assert.Equal(t, units.DegreesC(55), cfg.TemperatureMin)
	assert.Equal(t, units.DegreesC(65), cfg.TemperatureMax)
	assert.Equal(t, units.FanSpeed(10), cfg.FanSpeedMin)
	assert.Equal(t, units.FanSpeed(100), cfg.FanSpeedMax)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, config.ErrIo))
}

func TestLoadInvalidFormat(t *testing.T) {
	path := writeConfigFile(t, "This is not a valid TOML file\n")

	_, err := config.Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, config.ErrParse))
}

func TestLoadZeroInterval(t *testing.T) {
	path := writeConfigFile(t, `
update_interval_seconds = 0
temperature_min = 55
temperature_max = 65
fan_speed_min = 10
fan_speed_max = 100
`)

	_, err := config.Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, config.ErrInvalidInterval))
}

func TestLoadRejectsValuesBeyondFieldWidth(t *testing.T) {
	// A fan speed of 300 must fail the load; truncating modulo the field
	// width would silently run a curve the operator never configured
	contents := []string{
		`
update_interval_seconds = 30
temperature_min = 55
temperature_max = 65
fan_speed_min = 10
fan_speed_max = 300
`,
		`
update_interval_seconds = 30
temperature_min = 55
temperature_max = 300
fan_speed_min = 10
fan_speed_max = 100
`,
		`
update_interval_seconds = 30
temperature_min = 300
temperature_max = 65
fan_speed_min = 10
fan_speed_max = 100
`,
		`
update_interval_seconds = 4294967296
temperature_min = 55
temperature_max = 65
fan_speed_min = 10
fan_speed_max = 100
`,
	}

	for _, content := range contents {
		path := writeConfigFile(t, content)
		_, err := config.Load(path)
		require.Error(t, err, content)
		assert.True(t, errors.IsCode(err, config.ErrParse), content)
	}
}

func TestLoadRejectsNegativeValues(t *testing.T) {
	path := writeConfigFile(t, `
update_interval_seconds = 30
temperature_min = 55
temperature_max = 65
fan_speed_min = -1
fan_speed_max = 100
`)

	_, err := config.Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, config.ErrParse))
}

func TestLoadFanSpeedAboveMaxIsValidationError(t *testing.T) {
	// 120 fits the field width, so it reaches Check and fails the fan
	// speed bound rather than the decode
	path := writeConfigFile(t, `
update_interval_seconds = 30
temperature_min = 55
temperature_max = 65
fan_speed_min = 10
fan_speed_max = 120
`)

	_, err := config.Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, config.ErrInvalidFanSpeedMax))
}

func TestCheckOrdering(t *testing.T) {
	// Both ranges inverted: the temperature violation is reported first
	cfg := config.Config{
		UpdateIntervalSeconds: 30,
		TemperatureMin:        65,
		TemperatureMax:        55,
		FanSpeedMin:           100,
		FanSpeedMax:           10,
	}
	err := cfg.Check()
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, config.ErrInvalidTemperatureRange))
}

func TestCheckFanSpeedRange(t *testing.T) {
	cfg := config.Config{
		UpdateIntervalSeconds: 30,
		TemperatureMin:        55,
		TemperatureMax:        65,
		FanSpeedMin:           100,
		FanSpeedMax:           10,
	}
	err := cfg.Check()
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, config.ErrInvalidFanSpeedRange))
}

func TestCheckFanSpeedBounds(t *testing.T) {
	cfg := config.Config{
		UpdateIntervalSeconds: 30,
		TemperatureMin:        55,
		TemperatureMax:        65,
		FanSpeedMin:           101,
		FanSpeedMax:           120,
	}
	err := cfg.Check()
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, config.ErrInvalidFanSpeedMin))

	cfg.FanSpeedMin = 10
	err = cfg.Check()
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, config.ErrInvalidFanSpeedMax))
}

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, config.Default().Check())
}

func TestWriteDefaultsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, config.WriteDefaults(path))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}
