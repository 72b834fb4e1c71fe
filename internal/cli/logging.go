package cli

import (
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/smokyabdulrahman/praytime/internal/display"
)

// setupLogging routes the global logger to w. Only warnings are shown
// unless verbose is set.
func setupLogging(w io.Writer, verbose bool) {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    !display.Enabled(),
		TimeFormat: time.Kitchen,
	}
	log.Logger = zerolog.New(out).Level(level).With().Timestamp().Logger()
}
