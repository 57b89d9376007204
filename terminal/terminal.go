package terminal

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/robot-soccer/parameter"
)

// NewScreen creates and initializes a tcell screen in the requested color mode
// tcell reads the color mode from the environment at screen creation; the
// variables are set only for that call and restored afterwards
func NewScreen(colorMode string) (tcell.Screen, error) {
	var env map[string]string
	switch colorMode {
	case parameter.Color256:
		env = map[string]string{"TCELL_TRUECOLOR": "disable"}
	case parameter.ColorTrueColor:
		env = map[string]string{"COLORTERM": "truecolor"}
	}

	var screen tcell.Screen
	err := withEnv(env, func() error {
		var err error
		screen, err = tcell.NewScreen()
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize screen: %w", err)
	}

	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))
	screen.HideCursor()
	screen.Clear()
	return screen, nil
}

// withEnv runs fn with vars set, then restores each variable to its previous value or absence
func withEnv(vars map[string]string, fn func() error) (err error) {
	for key, val := range vars {
		prev, had := os.LookupEnv(key)
		defer func() {
			var rerr error
			if had {
				rerr = os.Setenv(key, prev)
			} else {
				rerr = os.Unsetenv(key)
			}
			if err == nil && rerr != nil {
				err = fmt.Errorf("failed to restore %s: %w", key, rerr)
			}
		}()
		if serr := os.Setenv(key, val); serr != nil {
			return fmt.Errorf("failed to set %s: %w", key, serr)
		}
	}
	return fn()
}
