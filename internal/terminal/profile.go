package terminal

import (
	"io"

	"github.com/muesli/termenv"
	"github.com/rviscarra/termscreen/internal/encoders"
)

// DetectColorMode picks the richest color mode the terminal behind w
// advertises through its environment
func DetectColorMode(w io.Writer) encoders.ColorMode {
	return colorModeForProfile(termenv.NewOutput(w).EnvColorProfile())
}

func colorModeForProfile(p termenv.Profile) encoders.ColorMode {
	if p == termenv.TrueColor {
		return encoders.TrueColor
	}
	return encoders.ANSI256
}
