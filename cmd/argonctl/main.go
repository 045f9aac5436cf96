// Copyright © 2024 Mutker Telag <witty.text5011@fastmail.com>
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	flag "github.com/spf13/pflag"

	"codeberg.org/mutker/argonctl/internal/config"
	"codeberg.org/mutker/argonctl/internal/errors"
	"codeberg.org/mutker/argonctl/internal/fan"
	"codeberg.org/mutker/argonctl/internal/fancurve"
	"codeberg.org/mutker/argonctl/internal/logger"
	"codeberg.org/mutker/argonctl/internal/pid"
	"codeberg.org/mutker/argonctl/internal/scheduler"
	"codeberg.org/mutker/argonctl/internal/sensor"
	"codeberg.org/mutker/argonctl/internal/telemetry"
	"codeberg.org/mutker/argonctl/internal/units"
)

const (
	// EX_SOFTWARE: any unrecovered fault from the control loop
	exitSoftware = 70

	// How long the loop sleeps between scheduler polls. Must stay well
	// under the smallest configurable update interval (1s).
	pollQuantum = 500 * time.Millisecond
)

type options struct {
	configPath  string
	i2cBus      string
	i2cAddr     string
	vcioPath    string
	sensorID    uint32
	sensorKind  string
	telemetry   bool
	telemetryDB string
	debug       bool
	verbose     bool

	setFanSpeed        string
	printTemperature   bool
	writeDefaultConfig string
}

func parseFlags() options {
	var opts options

	flag.StringVarP(&opts.configPath, "config", "c", config.SystemConfigPath, "Configuration file path")
	flag.StringVar(&opts.i2cBus, "i2c-bus", units.DefaultBus.String(), "I2C bus")
	flag.StringVar(&opts.i2cAddr, "i2c-addr", units.DefaultAddress.String(), "Fan controller I2C address")
	flag.StringVar(&opts.vcioPath, "vcio", sensor.DefaultVcioPath, "VideoCore IO device path")
	flag.Uint32Var(&opts.sensorID, "sensor-id", sensor.DefaultSensorID, "VideoCore temperature sensor ID")
	flag.StringVar(&opts.sensorKind, "sensor", "mailbox", "Temperature source: mailbox or host")
	flag.BoolVar(&opts.telemetry, "telemetry", false, "Record each control tick to the telemetry database")
	flag.StringVar(&opts.telemetryDB, "telemetry-db", "", "Telemetry database path")
	flag.BoolVar(&opts.debug, "debug", false, "Enable debugging mode")
	flag.BoolVar(&opts.verbose, "verbose", false, "Enable verbose logging")

	flag.StringVar(&opts.setFanSpeed, "set-fan-speed", "", "Set the fan speed (percentage) and exit")
	flag.BoolVar(&opts.printTemperature, "print-temperature", false, "Print the current temperature and exit")
	flag.StringVar(&opts.writeDefaultConfig, "write-default-config", "", "Write the default configuration file to path and exit")

	flag.Parse()

	return opts
}

func main() {
	opts := parseFlags()
	logger.Init(opts.debug, opts.verbose, logger.IsService())

	if err := run(opts); err != nil {
		var domainErr errors.Error
		if errors.As(err, &domainErr) {
			logger.ErrorWithCode(domainErr).Msg("argonctl failed")
		} else {
			logger.Error().Err(err).Msg("argonctl failed")
		}
		os.Exit(exitSoftware)
	}
}

func run(opts options) error {
	busNumber, err := units.ParseBus(opts.i2cBus)
	if err != nil {
		return err
	}
	addr, err := units.ParseAddress(opts.i2cAddr)
	if err != nil {
		return err
	}

	switch {
	case opts.writeDefaultConfig != "":
		return config.WriteDefaults(opts.writeDefaultConfig)
	case opts.setFanSpeed != "":
		return setFanSpeed(busNumber, addr, opts.setFanSpeed)
	case opts.printTemperature:
		return printTemperature(opts)
	default:
		return daemon(opts, busNumber, addr)
	}
}

func setFanSpeed(busNumber units.Bus, addr units.Address, raw string) error {
	speed, err := units.ParseFanSpeed(raw)
	if err != nil {
		return err
	}

	fanCtl, err := fan.New(busNumber, addr)
	if err != nil {
		return err
	}
	defer fanCtl.Close()

	return fanCtl.SetSpeed(speed)
}

func printTemperature(opts options) error {
	src, err := newSource(opts)
	if err != nil {
		return err
	}
	defer src.Close()

	raw, err := src.ReadTemperature()
	if err != nil {
		return err
	}

	fmt.Println(units.DegreesCFromFloat(raw))

	return nil
}

func newSource(opts options) (sensor.Source, error) {
	if opts.sensorKind == "host" {
		return sensor.NewHost()
	}

	return sensor.NewMailbox(opts.vcioPath, opts.sensorID)
}

func loadConfig(opts options) (config.Config, error) {
	if opts.configPath == config.SystemConfigPath {
		if _, err := os.Stat(opts.configPath); os.IsNotExist(err) {
			logger.Warn().Msgf("No configuration file at %s, using defaults", opts.configPath)
			return config.Default(), nil
		}
	}

	return config.Load(opts.configPath)
}

func daemon(opts options, busNumber units.Bus, addr units.Address) error {
	if err := pid.Write(); err != nil {
		return err
	}
	defer pid.Remove()

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	curve := fancurve.New(cfg.TemperatureMin, cfg.TemperatureMax, cfg.FanSpeedMin, cfg.FanSpeedMax)

	src, err := newSource(opts)
	if err != nil {
		return err
	}
	defer src.Close()

	fanCtl, err := fan.New(busNumber, addr)
	if err != nil {
		return err
	}
	defer fanCtl.Close()

	recorder, err := telemetry.NewService(telemetryConfig(opts))
	if err != nil {
		return err
	}
	defer recorder.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go handleSignals(cancel)

	err = loop(ctx, cfg, curve, src, fanCtl, recorder)

	// Leave the fan at a safe speed regardless of how the loop ended
	if restoreErr := fanCtl.SetSpeed(units.DefaultFanSpeed); restoreErr != nil {
		logger.Error().Err(restoreErr).Msg("failed to restore default fan speed")
	}
	logger.Info().Msg("Exiting...")

	return err
}

func telemetryConfig(opts options) telemetry.Config {
	cfg := telemetry.DefaultConfig()
	cfg.Enabled = opts.telemetry
	if opts.telemetryDB != "" {
		cfg.DBPath = opts.telemetryDB
	}

	return cfg
}

// handleSignals asks the loop to stop on the first termination signal and
// forces the process down on a repeat while shutdown is still in progress
func handleSignals(cancel context.CancelFunc) {
	sigs := make(chan os.Signal, 2)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	<-sigs
	logger.Info().Msg("Received termination signal.")
	cancel()

	<-sigs
	logger.Warn().Msg("Received second termination signal, exiting immediately.")
	os.Exit(exitSoftware)
}

func loop(
	ctx context.Context,
	cfg config.Config,
	curve *fancurve.Map,
	src sensor.Source,
	fanCtl *fan.Controller,
	recorder telemetry.Recorder,
) error {
	// Hold a safe speed until the first due tick
	if err := fanCtl.SetSpeed(units.DefaultFanSpeed); err != nil {
		return err
	}

	sched := scheduler.New(time.Now(), cfg.UpdateIntervalSeconds.Duration())
	ticker := time.NewTicker(pollQuantum)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if !sched.Update(time.Now()) {
				continue
			}

			if err := tick(ctx, curve, src, fanCtl, recorder); err != nil {
				return err
			}
		}
	}
}

// tick performs one control action: read, map, write, record. Sensor and
// bus failures terminate the loop; an uncontrolled fan is safety-relevant
// and silently skipping ticks would hide it.
func tick(
	ctx context.Context,
	curve *fancurve.Map,
	src sensor.Source,
	fanCtl *fan.Controller,
	recorder telemetry.Recorder,
) error {
	raw, err := src.ReadTemperature()
	if err != nil {
		return err
	}

	temp := units.DegreesCFromFloat(raw)
	speed := curve.Get(temp)

	if err := fanCtl.SetSpeed(speed); err != nil {
		return err
	}

	logger.Info().
		Float64("temperature", raw).
		Str("applied_temperature", temp.String()).
		Str("fan_speed", speed.String()).
		Msg("")

	snapshot := &telemetry.Snapshot{
		Timestamp:   time.Now(),
		Temperature: raw,
		Applied:     temp,
		FanSpeed:    speed,
	}
	if err := recorder.Record(ctx, snapshot); err != nil {
		// Telemetry is best-effort and must not stop fan control
		logger.Warn().Err(err).Msg("failed to record tick")
	}

	return nil
}
