package fancurve

import (
	"fmt"

	"codeberg.org/mutker/argonctl/internal/logger"
	"codeberg.org/mutker/argonctl/internal/units"
)

// Map translates a temperature reading into a fan speed percentage.
// The full integer table is precomputed at build time so every lookup in
// the control loop is O(1), allocation-free, and rounds identically on
// repeated queries. The table is at most 256 entries since temperatures
// are 8-bit.
type Map struct {
	temperatureMin units.DegreesC
	temperatureMax units.DegreesC
	fanSpeedMin    units.FanSpeed
	fanSpeedMax    units.FanSpeed
	table          map[units.DegreesC]units.FanSpeed
}

// New builds the temperature to fan speed table. The ranges must already
// have passed configuration validation; an inverted range here is a
// programming error, not a runtime condition, and panics.
func New(temperatureMin, temperatureMax units.DegreesC, fanSpeedMin, fanSpeedMax units.FanSpeed) *Map {
	if temperatureMax <= temperatureMin {
		panic(fmt.Sprintf("fancurve: invalid temperature range %s..%s", temperatureMin, temperatureMax))
	}
	if fanSpeedMax <= fanSpeedMin {
		panic(fmt.Sprintf("fancurve: invalid fan speed range %s..%s", fanSpeedMin, fanSpeedMax))
	}

	tMin := float64(temperatureMin)
	tMax := float64(temperatureMax)
	fsMin := float64(fanSpeedMin)
	fsMax := float64(fanSpeedMax)

	table := make(map[units.DegreesC]units.FanSpeed, int(temperatureMax-temperatureMin)+1)
	for t := int(temperatureMin); t <= int(temperatureMax); t++ {
		raw := mapRange(tMin, tMax, fsMin, fsMax, float64(t))
		speed := units.FanSpeed(clamp(raw, fsMin, fsMax))

		temp := units.DegreesC(t)
		logger.Debug().Msgf("%s -> %s", temp, speed)
		table[temp] = speed
	}

	return &Map{
		temperatureMin: temperatureMin,
		temperatureMax: temperatureMax,
		fanSpeedMin:    fanSpeedMin,
		fanSpeedMax:    fanSpeedMax,
		table:          table,
	}
}

// Get returns the fan speed for a temperature. Below the calibrated range
// the floor speed applies; above it the ceiling applies, so an overheating
// sensor always fails toward maximum cooling.
func (m *Map) Get(temp units.DegreesC) units.FanSpeed {
	if temp < m.temperatureMin {
		return m.fanSpeedMin
	}
	if temp > m.temperatureMax {
		return m.fanSpeedMax
	}

	speed, ok := m.table[temp]
	if !ok {
		panic(fmt.Sprintf("fancurve: table has no entry for %s inside %s..%s",
			temp, m.temperatureMin, m.temperatureMax))
	}

	return speed
}

// mapRange linearly maps s from one range onto another
func mapRange(fromMin, fromMax, toMin, toMax, s float64) float64 {
	return toMin + (s-fromMin)*(toMax-toMin)/(fromMax-fromMin)
}

func clamp(value, minValue, maxValue float64) float64 {
	if value < minValue {
		return minValue
	}
	if value > maxValue {
		return maxValue
	}

	return value
}
