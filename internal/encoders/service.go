package encoders

import (
	"fmt"
	"image"
	"strings"
)

// Service creates encoder instances
type Service interface {
	NewEncoder(mode ColorMode) (Encoder, error)
	Supports(mode ColorMode) bool
}

// Encoder turns a frame sized (columns, rows*2) into the terminal byte
// stream that paints it. The returned slice is only valid until the next
// call to Encode.
type Encoder interface {
	Encode(frame image.Image) ([]byte, error)
}

// Resampler scales a frame to an exact pixel size
type Resampler interface {
	Resample(src image.Image, width, height int) image.Image
}

// ColorMode selects how cell colors are expressed to the terminal
type ColorMode int

const (
	// TrueColor uses 24-bit SGR color sequences
	TrueColor ColorMode = iota
	// ANSI256 quantizes to the xterm 256 color palette
	ANSI256
)

func (m ColorMode) String() string {
	switch m {
	case TrueColor:
		return "truecolor"
	case ANSI256:
		return "256"
	}
	return fmt.Sprintf("ColorMode(%d)", int(m))
}

// ParseColorMode parses the names accepted on the command line
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "truecolor", "24bit", "24-bit":
		return TrueColor, nil
	case "256", "ansi256":
		return ANSI256, nil
	}
	return 0, fmt.Errorf("unknown color mode %q", s)
}
