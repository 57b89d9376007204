package parameter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables recognized by ApplyEnv
const (
	EnvDisplay  = "ROBOT_SOCCER_DISPLAY"
	EnvColor    = "ROBOT_SOCCER_COLOR"
	EnvTick     = "ROBOT_SOCCER_TICK"
	EnvMaxTicks = "ROBOT_SOCCER_MAX_TICKS"
	EnvAudio    = "ROBOT_SOCCER_AUDIO"
	EnvDebug    = "ROBOT_SOCCER_DEBUG"
	EnvLogDir   = "ROBOT_SOCCER_LOG_DIR"
)

// ApplyEnv overlays ROBOT_SOCCER_* variables onto s
// Values come from the process environment first, then from envFile (a .env file, optional)
// The process environment is never modified
func ApplyEnv(s *Settings, envFile string) error {
	fileVars := map[string]string{}
	if envFile != "" {
		vars, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			fileVars = vars
		case errors.Is(err, fs.ErrNotExist):
		default:
			return fmt.Errorf("failed to read %s: %w", envFile, err)
		}
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileVars[key]
		return v, ok
	}

	if v, ok := lookup(EnvDisplay); ok {
		s.Display = v
	}
	if v, ok := lookup(EnvColor); ok {
		s.ColorMode = v
	}
	if v, ok := lookup(EnvLogDir); ok {
		s.LogDir = v
	}
	if v, ok := lookup(EnvTick); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrSettings, EnvTick, v, err)
		}
		s.TickInterval = d
	}
	if v, ok := lookup(EnvMaxTicks); ok {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrSettings, EnvMaxTicks, v, err)
		}
		s.MaxTicks = n
	}
	if v, ok := lookup(EnvAudio); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrSettings, EnvAudio, v, err)
		}
		s.Audio = b
	}
	if v, ok := lookup(EnvDebug); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrSettings, EnvDebug, v, err)
		}
		s.Debug = b
	}

	return s.Validate()
}
