package encoders

import (
	"image/color"
	"strconv"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/juju/errors"
	"github.com/lucasb-eyer/go-colorful"
)

// paletteCacheSize bounds the memoized color -> palette index lookups
const paletteCacheSize = 1 << 14

var cubeLevels = [6]uint8{0, 95, 135, 175, 215, 255}

// xtermColor returns the RGB value of an xterm palette index >= 16
func xtermColor(index int) color.RGBA {
	if index >= 232 {
		v := uint8(8 + 10*(index-232))
		return color.RGBA{R: v, G: v, B: v, A: 0xff}
	}
	i := index - 16
	return color.RGBA{R: cubeLevels[i/36], G: cubeLevels[(i/6)%6], B: cubeLevels[i%6], A: 0xff}
}

// paletteMatcher maps colors to the perceptually nearest entry of the
// xterm palette, skipping the 16 theme-dependent system colors
type paletteMatcher struct {
	palette []colorful.Color
	cache   *lru.Cache[uint32, uint8]
}

func newPaletteMatcher(cacheSize int) (*paletteMatcher, error) {
	cache, err := lru.New[uint32, uint8](cacheSize)
	if err != nil {
		return nil, errors.Annotate(err, "could not create palette cache")
	}
	palette := make([]colorful.Color, 0, 240)
	for i := 16; i < 256; i++ {
		c, _ := colorful.MakeColor(xtermColor(i))
		palette = append(palette, c)
	}
	return &paletteMatcher{palette: palette, cache: cache}, nil
}

func (m *paletteMatcher) Index(c color.RGBA) uint8 {
	key := uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
	if index, ok := m.cache.Get(key); ok {
		return index
	}
	target := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	best, bestDist := 0, target.DistanceLab(m.palette[0])
	for i := 1; i < len(m.palette); i++ {
		if d := target.DistanceLab(m.palette[i]); d < bestDist {
			best, bestDist = i, d
		}
	}
	index := uint8(best + 16)
	m.cache.Add(key, index)
	return index
}

func (m *paletteMatcher) appendColors(dst []byte, fg, bg color.RGBA) []byte {
	dst = append(dst, "\x1b[38;5;"...)
	dst = strconv.AppendUint(dst, uint64(m.Index(fg)), 10)
	dst = append(dst, "m\x1b[48;5;"...)
	dst = strconv.AppendUint(dst, uint64(m.Index(bg)), 10)
	return append(dst, 'm')
}

func init() {
	registeredEncoders[ANSI256] = func() (Encoder, error) {
		matcher, err := newPaletteMatcher(paletteCacheSize)
		if err != nil {
			return nil, err
		}
		return newHalfBlockEncoder(matcher.appendColors), nil
	}
}
