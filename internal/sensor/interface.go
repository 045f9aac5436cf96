package sensor

// Source provides temperature readings in degrees Celsius
type Source interface {
	// ReadTemperature returns the current temperature in degrees C
	ReadTemperature() (float64, error)

	// Close releases the underlying device
	Close() error
}
