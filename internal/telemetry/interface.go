package telemetry

import (
	"context"
	"time"

	"codeberg.org/mutker/argonctl/internal/units"
)

// Recorder captures one control tick per call
type Recorder interface {
	Record(ctx context.Context, snapshot *Snapshot) error
	Close() error
}

// Snapshot is the observable state of a single control tick
type Snapshot struct {
	Timestamp time.Time
	// Temperature is the raw sensor reading in degrees C
	Temperature float64
	// Applied is the saturated integer temperature used for the lookup
	Applied units.DegreesC
	// FanSpeed is the percentage written to the fan controller
	FanSpeed units.FanSpeed
}
