package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/xyproto/randomstring"

	"liftsim/src/config"
	"liftsim/src/console"
	"liftsim/src/elev"
	"liftsim/src/logger"
	"liftsim/src/notify"
	"liftsim/src/timer"
)

const IDENTIFIER_DEFAULT_LEN = 8

func main() {
	configPath := flag.String("config", "", "YAML file with the lift configuration")
	envPath := flag.String("env", "", "dotenv file with LIFT_* overrides")
	identifier := flag.String("id", "", "Identifier of the lift in logs. Defaults to a random string")
	logLevel := flag.String("loglevel", "info", "Log level: trace, debug, info, warn, error")
	logFile := flag.String("logfile", "", "Also write the log to this file")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: liftsim [OPTIONS] [floorCount floorHeight liftSpeed openCloseTime]")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Commands: qN call from floor N, wN go to floor N, eN estimate, s status, exit")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
	}
	flag.Parse()

	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	log, err := logger.GetLoggerConfigured(level, *logFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer logger.Close()

	cfg, err := loadConfig(*configPath, *envPath, flag.Args())
	if err != nil {
		log.Fatal().Err(err).Msg("Bad configuration")
	}

	if *identifier == "" {
		*identifier = randomstring.EnglishFrequencyString(IDENTIFIER_DEFAULT_LEN)
		log.Debug().Msgf("No lift identifier provided, generated %q", *identifier)
	}
	liftLog := log.With().Str("lift", *identifier).Logger()

	scheduler := timer.NewReal(cfg.TimeUnit)
	lift, err := elev.NewLift(*identifier, cfg, elev.SimpleNearest, scheduler, notify.LogListener{Log: &liftLog})
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot create lift")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	liftMgr := elev.StartLiftMgr(ctx, lift, scheduler.Fired())
	log.Info().
		Int("floors", cfg.FloorCount).
		Int("floorHeight", cfg.FloorHeight).
		Int("liftSpeed", cfg.LiftSpeed).
		Int64("openCloseTime", cfg.OpenCloseTime).
		Dur("timeUnit", cfg.TimeUnit).
		Msg("Lift configured")

	consoleDone := make(chan error, 1)
	go func() {
		consoleDone <- console.Run(ctx, os.Stdin, os.Stdout, liftMgr)
	}()

	select {
	case err := <-consoleDone:
		if err != nil {
			log.Error().Err(err).Msg("Console stopped")
		}
	case <-ctx.Done():
		log.Info().Msg("Interrupted")
	}

	cancel()
	scheduler.Stop()
	<-liftMgr.Done()
}

// loadConfig layers defaults, the YAML file, the dotenv file and the positional arguments.
func loadConfig(configPath, envPath string, args []string) (config.Config, error) {
	cfg := config.DefaultConfig()
	if configPath != "" {
		if err := config.LoadFile(&cfg, configPath); err != nil {
			return cfg, err
		}
	}
	if envPath != "" {
		if err := config.LoadEnv(&cfg, envPath); err != nil {
			return cfg, err
		}
	}
	if err := config.ApplyArgs(&cfg, args); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}
