package sensor

import (
	"strings"

	"github.com/shirou/gopsutil/v3/host"

	"codeberg.org/mutker/argonctl/internal/errors"
	"codeberg.org/mutker/argonctl/internal/logger"
)

// preferredZones are host thermal zones that carry the SoC/CPU package
// temperature, in order of preference
var preferredZones = []string{"cpu_thermal", "cpu-thermal", "soc_thermal", "coretemp", "k10temp"}

// Host reads the temperature from the operating system's sensors. It is
// the fallback source for machines without a VideoCore mailbox, such as
// development hosts.
type Host struct {
	zone string
}

// NewHost picks a thermal zone from the host's sensors
func NewHost() (*Host, error) {
	errFactory := errors.New()

	stats, err := host.SensorsTemperatures()
	if err != nil && len(stats) == 0 {
		return nil, errFactory.Wrap(ErrOpenFailed, err)
	}
	if len(stats) == 0 {
		return nil, errFactory.New(ErrNoThermalZone)
	}

	zone := ""
	for _, preferred := range preferredZones {
		for _, stat := range stats {
			if strings.Contains(stat.SensorKey, preferred) {
				zone = stat.SensorKey
				break
			}
		}
		if zone != "" {
			break
		}
	}
	if zone == "" {
		zone = stats[0].SensorKey
	}

	logger.Info().Msgf("Using host thermal zone %s", zone)

	return &Host{zone: zone}, nil
}

// ReadTemperature returns the chosen zone's temperature in degrees C
func (h *Host) ReadTemperature() (float64, error) {
	errFactory := errors.New()

	stats, err := host.SensorsTemperatures()
	if err != nil && len(stats) == 0 {
		return 0, errFactory.Wrap(ErrReadFailed, err)
	}

	for _, stat := range stats {
		if stat.SensorKey == h.zone {
			return stat.Temperature, nil
		}
	}

	return 0, errFactory.WithData(ErrNoThermalZone, h.zone)
}

func (h *Host) Close() error {
	return nil
}
