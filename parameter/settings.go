package parameter

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/robot-soccer/constant"
)

var ErrSettings = errors.New("invalid settings")

// Display backends
const (
	DisplayTerminal = "terminal"
	DisplayWindow   = "window"
	DisplayHeadless = "headless"
)

// Terminal color modes
const (
	ColorAuto      = "auto"
	Color256       = "256"
	ColorTrueColor = "truecolor"
)

// Settings control presentation and pacing; physics comes only from the positional arguments
type Settings struct {
	Display      string        `toml:"display"`
	ColorMode    string        `toml:"color"`
	TickInterval time.Duration `toml:"tick_interval"`
	MaxTicks     uint64        `toml:"max_ticks"`
	Audio        bool          `toml:"audio"`
	Debug        bool          `toml:"debug"`
	LogDir       string        `toml:"log_dir"`
}

// DefaultSettings returns the built-in defaults
func DefaultSettings() Settings {
	return Settings{
		Display:      DisplayTerminal,
		ColorMode:    ColorAuto,
		TickInterval: constant.TickInterval,
		Audio:        true,
		LogDir:       "logs",
	}
}

// LoadSettings overlays the TOML file at path onto the defaults
// A missing file is only an error when required is set
func LoadSettings(path string, required bool) (Settings, error) {
	s := DefaultSettings()
	if path == "" {
		return s, nil
	}

	md, err := toml.DecodeFile(path, &s)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return DefaultSettings(), nil
		}
		return Settings{}, fmt.Errorf("failed to load settings %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Settings{}, fmt.Errorf("%w: unknown keys in %s: %s", ErrSettings, path, strings.Join(keys, ", "))
	}

	return s, s.Validate()
}

// Validate checks enumerations and ranges
func (s Settings) Validate() error {
	switch s.Display {
	case DisplayTerminal, DisplayWindow, DisplayHeadless:
	default:
		return fmt.Errorf("%w: display %q, want terminal, window or headless", ErrSettings, s.Display)
	}

	switch s.ColorMode {
	case ColorAuto, Color256, ColorTrueColor:
	default:
		return fmt.Errorf("%w: color %q, want auto, 256 or truecolor", ErrSettings, s.ColorMode)
	}

	if s.TickInterval <= 0 {
		return fmt.Errorf("%w: tick interval %v must be positive", ErrSettings, s.TickInterval)
	}
	return nil
}
