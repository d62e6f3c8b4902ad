package cmd

import (
	"fmt"
	stdlog "log"
	"math/rand"
	"os"
	"time"

	"github.com/urfave/cli"

	"github.com/nodoze/nodoze/internal/console"
	"github.com/nodoze/nodoze/internal/keepalive"
	"github.com/nodoze/nodoze/internal/schedule"
	"github.com/nodoze/nodoze/internal/session"
	"github.com/nodoze/nodoze/pkg/logger"
)

// buildConfig assembles and validates the scheduling configuration from the
// bound flag values. Any error here is fatal before a session runs.
func buildConfig() (schedule.Config, error) {
	start, err := schedule.ParseClockTime(windowStart)
	if err != nil {
		return schedule.Config{}, err
	}
	end, err := schedule.ParseClockTime(windowEnd)
	if err != nil {
		return schedule.Config{}, err
	}
	window, err := schedule.NewWindow(start, end)
	if err != nil {
		return schedule.Config{}, err
	}
	days, err := schedule.ParseDays(daysOfWeek)
	if err != nil {
		return schedule.Config{}, err
	}
	cfg := schedule.Config{
		Window:              window,
		Days:                days,
		Duration:            schedule.DurationRange{Min: minMinutes, Max: maxMinutes},
		IntervalSeconds:     intervalSecs,
		ProgressTickSeconds: progressTick,
	}
	if err := cfg.Validate(); err != nil {
		return schedule.Config{}, err
	}
	return cfg, nil
}

// run is the top-level driver: one immediate session, then an endless
// wait/session cycle. It returns nil on a user-requested quit so the process
// exits 0, and an error only for fatal startup or scheduler failures.
func run(cctx *cli.Context) error {
	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	log := logger.NewStandardLogger(stdlog.New(os.Stderr, "", stdlog.LstdFlags))
	defer log.Close()

	sink := keepalive.New()
	if err := sink.Open(); err != nil {
		log.Warning("power assertion unavailable: %s", err.Error())
	} else {
		log.Info("no-lock active for process lifetime")
	}
	defer sink.Close()

	poller := console.NewPoller()
	if err := poller.Open(); err != nil {
		log.Warning("raw terminal mode unavailable: %s", err.Error())
		poller = console.NopPoller{}
	}
	defer poller.Close()

	var obs session.Observer
	if console.Interactive() && !quiet {
		obs = console.NewRenderer()
	} else {
		obs = &console.LogObserver{Log: log}
	}

	ctx, cancel := setupShutdownHandler()
	defer cancel()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	runner := &session.Runner{
		Bounds:       cfg.Duration,
		Interval:     time.Duration(cfg.IntervalSeconds) * time.Second,
		Sink:         sink,
		Poller:       poller,
		Observer:     obs,
		Log:          log,
		Rand:         rng,
		ProgressTick: time.Duration(cfg.ProgressTickSeconds) * time.Second,
	}
	waiter := &session.Waiter{
		Poller:       poller,
		Observer:     obs,
		ProgressTick: time.Duration(cfg.ProgressTickSeconds) * time.Second,
	}

	log.Info("schedule: window %s on %s, duration %d-%d minutes, pulse every %ds",
		cfg.Window, cfg.Days, cfg.Duration.Min, cfg.Duration.Max, cfg.IntervalSeconds)

	// One session immediately on launch, then the scheduled cycle forever.
	if runner.Run(ctx) == session.OutcomeQuit {
		return nil
	}
	for {
		next, err := schedule.Next(time.Now(), cfg.Window, cfg.Days, rng)
		if err != nil {
			return fmt.Errorf("scheduler invariant violated: %w", err)
		}
		if waiter.Wait(ctx, next) == session.OutcomeQuit {
			return nil
		}
		if runner.Run(ctx) == session.OutcomeQuit {
			return nil
		}
	}
}
