package units_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/mutker/argonctl/internal/errors"
	"codeberg.org/mutker/argonctl/internal/units"
)

func TestFanSpeedRoundTrip(t *testing.T) {
	for raw := uint8(0); raw <= 100; raw++ {
		fs, err := units.NewFanSpeed(raw)
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("%d%%", raw), fs.String())

		parsed, err := units.ParseFanSpeed(fmt.Sprintf("%d", raw))
		require.NoError(t, err)
		assert.Equal(t, fs, parsed)
	}
}

func TestFanSpeedRejectsOutOfRange(t *testing.T) {
	for _, raw := range []uint8{101, 128, 255} {
		_, err := units.NewFanSpeed(raw)
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, units.ErrInvalidFanSpeed))
	}
}

func TestFanSpeedParseErrors(t *testing.T) {
	_, err := units.ParseFanSpeed("fast")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, units.ErrParseFanSpeed))

	_, err = units.ParseFanSpeed("150")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, units.ErrInvalidFanSpeed))
}

func TestFanSpeedParseTrimsWhitespace(t *testing.T) {
	fs, err := units.ParseFanSpeed("  42 ")
	require.NoError(t, err)
	assert.Equal(t, 42, fs.Percent())
}

func TestFanSpeedDefault(t *testing.T) {
	assert.Equal(t, 25, units.DefaultFanSpeed.Percent())
}

func TestDegreesCFromFloatSaturates(t *testing.T) {
	tests := []struct {
		in   float64
		want units.DegreesC
	}{
		{-5.0, 0},
		{0.0, 0},
		{40.7, 40},
		{254.9, 254},
		{255.0, 255},
		{1000.0, 255},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, units.DegreesCFromFloat(tc.in), "from %v", tc.in)
	}
}

func TestDegreesCFormatting(t *testing.T) {
	temp, err := units.ParseDegreesC("65")
	require.NoError(t, err)
	assert.Equal(t, "65 C", temp.String())

	_, err = units.ParseDegreesC("hot")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, units.ErrParseDegrees))
}

func TestUpdateIntervalParse(t *testing.T) {
	interval, err := units.ParseUpdateInterval("30")
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, interval.Duration())
	assert.Equal(t, "30s", interval.String())

	_, err = units.ParseUpdateInterval("0")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, units.ErrZeroInterval))

	_, err = units.ParseUpdateInterval("soon")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, units.ErrParseInterval))
}

func TestAddressParse(t *testing.T) {
	addr, err := units.ParseAddress("0x1A")
	require.NoError(t, err)
	assert.Equal(t, units.DefaultAddress, addr)
	assert.Equal(t, "0x1A", addr.String())

	addr, err = units.ParseAddress("26")
	require.NoError(t, err)
	assert.Equal(t, units.DefaultAddress, addr)

	_, err = units.ParseAddress("0xZZ")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, units.ErrParseAddress))
}

func TestBusParse(t *testing.T) {
	bus, err := units.ParseBus(" 1")
	require.NoError(t, err)
	assert.Equal(t, units.DefaultBus, bus)
	assert.Equal(t, "1", bus.String())

	_, err = units.ParseBus("-1")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, units.ErrParseBus))
}
