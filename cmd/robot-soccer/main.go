package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/lixenwraith/robot-soccer/audio"
	"github.com/lixenwraith/robot-soccer/constant"
	"github.com/lixenwraith/robot-soccer/core"
	"github.com/lixenwraith/robot-soccer/engine"
	"github.com/lixenwraith/robot-soccer/parameter"
	"github.com/lixenwraith/robot-soccer/render"
	"github.com/lixenwraith/robot-soccer/status"
	"github.com/lixenwraith/robot-soccer/terminal"
	"github.com/lixenwraith/robot-soccer/window"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2

	defaultConfigFile = "robot-soccer.toml"
	envFile           = ".env"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without the process exit, returning the exit status
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("robot-soccer", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: robot-soccer [flags] %s\n\nFlags:\n", strings.Join(parameter.ArgNames[:], " "))
		fs.PrintDefaults()
	}

	configPath := fs.String("config", defaultConfigFile, "TOML settings file")
	display := fs.String("display", parameter.DisplayTerminal, "Display: terminal, window, headless")
	colorMode := fs.String("color", parameter.ColorAuto, "Color mode: auto, 256, truecolor")
	tick := fs.Duration("tick", constant.TickInterval, "Simulation tick interval")
	maxTicks := fs.Uint64("max-ticks", 0, "Stop after this many ticks, 0 for no limit")
	audioOn := fs.Bool("audio", true, "Play a sound when the game ends")
	debug := fs.Bool("debug", false, "Write debug log to the log directory")

	flagArgs, positional := splitArgs(fs, args)
	if err := fs.Parse(flagArgs); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	positional = append(fs.Args(), positional...)

	// Physics parameters are validated before anything else is touched
	params, err := parameter.ParseArgs(positional)
	if err != nil {
		fmt.Fprintf(stderr, "robot-soccer: %v\n", err)
		fs.Usage()
		return exitUsage
	}

	configSet := false
	fs.Visit(func(f *flag.Flag) { configSet = configSet || f.Name == "config" })

	settings, err := parameter.LoadSettings(*configPath, configSet)
	if err == nil {
		err = parameter.ApplyEnv(&settings, envFile)
	}
	if err != nil {
		fmt.Fprintf(stderr, "robot-soccer: %v\n", err)
		return exitUsage
	}

	// Explicit flags win over file and environment
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "display":
			settings.Display = *display
		case "color":
			settings.ColorMode = *colorMode
		case "tick":
			settings.TickInterval = *tick
		case "max-ticks":
			settings.MaxTicks = *maxTicks
		case "audio":
			settings.Audio = *audioOn
		case "debug":
			settings.Debug = *debug
		}
	})
	if err := settings.Validate(); err != nil {
		fmt.Fprintf(stderr, "robot-soccer: %v\n", err)
		return exitUsage
	}

	logFile := setupLogging(settings.LogDir, settings.Debug)
	if logFile != nil {
		defer logFile.Close()
	}
	if settings.Display == parameter.DisplayHeadless {
		if logFile != nil {
			log.SetOutput(io.MultiWriter(logFile, stderr))
		} else {
			log.SetOutput(stderr)
		}
	}
	log.Printf("Starting: %s display=%s tick=%v max-ticks=%d",
		params, settings.Display, settings.TickInterval, settings.MaxTicks)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	reg := status.NewRegistry()
	sim := engine.NewSimulation(params, reg)
	cs, frames := engine.NewClockScheduler(sim, engine.NewMonotonicTimeProvider(), settings.TickInterval, settings.MaxTicks)

	sound := startAudio(settings.Audio)
	if sound != nil {
		defer sound.Cleanup()
	}

	if settings.Display == parameter.DisplayHeadless {
		outcome, err := cs.Run(ctx)
		return report(stdout, stderr, sim, outcome, err, sound)
	}

	presenter, closePresenter, err := newPresenter(settings, reg)
	if err != nil {
		fmt.Fprintf(stderr, "robot-soccer: %v\n", err)
		return exitFailure
	}
	defer closePresenter()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	cs.Start(ctx)
	core.Go(func() {
		<-cs.Done()
		if o, _ := cs.Result(); o.Terminal() && sound != nil {
			sound.PlayOutcome(o)
		}
	})

	// The last frame stays up until the user closes the presenter
	runErr := presenter.Run(ctx, frames, sim)
	cancel()
	<-cs.Done()
	closePresenter()

	if runErr != nil {
		fmt.Fprintf(stderr, "robot-soccer: %v\n", runErr)
		return exitFailure
	}
	outcome, err := cs.Result()
	return report(stdout, stderr, sim, outcome, err, nil)
}

// newPresenter builds the display backend; the returned cleanup is idempotent
func newPresenter(settings parameter.Settings, reg *status.Registry) (render.Presenter, func(), error) {
	switch settings.Display {
	case parameter.DisplayWindow:
		return window.NewPresenter(), func() {}, nil

	default:
		screen, err := terminal.NewScreen(settings.ColorMode)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize terminal: %w", err)
		}
		core.SetCrashHook(screen.Fini)

		closed := false
		cleanup := func() {
			if closed {
				return
			}
			closed = true
			core.SetCrashHook(nil)
			screen.Fini()
		}
		return terminal.NewPresenter(screen, reg), cleanup, nil
	}
}

// startAudio returns nil when audio is disabled or the device is unavailable
func startAudio(enabled bool) *audio.SoundManager {
	if !enabled {
		return nil
	}
	sm := audio.NewSoundManager()
	if err := sm.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
		return nil
	}
	return sm
}

// report prints the final result and maps it to an exit status
// A non-nil sound plays the outcome cue and waits for it to finish
func report(stdout, stderr io.Writer, sim *engine.Simulation, outcome engine.Outcome, err error, sound *audio.SoundManager) int {
	switch {
	case outcome.Terminal():
		fmt.Fprintf(stdout, "%s (tick %d)\n", outcome.Message(), sim.Tick())
		if sound != nil {
			select {
			case <-sound.PlayOutcome(outcome):
			case <-time.After(constant.AudioDrainTimeout):
			}
		}
		return exitOK

	case errors.Is(err, engine.ErrTickLimit):
		fmt.Fprintf(stderr, "robot-soccer: %v after %d ticks\n", err, sim.Tick())
		return exitFailure

	default:
		// Quit before the game ended
		log.Printf("Stopped at tick %d: %v", sim.Tick(), err)
		return exitOK
	}
}

// splitArgs separates leading flags from the positional numbers
// Negative numbers would otherwise be taken for unknown flags
func splitArgs(fs *flag.FlagSet, args []string) (flags, positional []string) {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			return args[:i], args[i+1:]
		}
		if !strings.HasPrefix(a, "-") || isNumber(a) {
			return args[:i], args[i:]
		}

		name := strings.TrimLeft(a, "-")
		if strings.Contains(name, "=") {
			continue
		}
		if f := fs.Lookup(name); f != nil && !isBoolFlag(f) {
			i++ // skip the flag value
		}
	}
	return args, nil
}

func isNumber(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

func isBoolFlag(f *flag.Flag) bool {
	b, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}
