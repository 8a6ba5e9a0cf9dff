package encoders

import (
	"bytes"
	"image"
	"image/color"
	"strconv"

	"github.com/charmbracelet/x/ansi"
)

// UpperHalfBlock paints the top half of a cell with the foreground color
// and leaves the bottom half to the background color
const UpperHalfBlock = "▀"

// colorWriter appends the SGR sequence selecting fg and bg
type colorWriter func(dst []byte, fg, bg color.RGBA) []byte

// HalfBlockEncoder packs two vertically stacked pixels into each cell
type HalfBlockEncoder struct {
	buffer  *bytes.Buffer
	scratch []byte
	colors  colorWriter
}

func newHalfBlockEncoder(colors colorWriter) *HalfBlockEncoder {
	return &HalfBlockEncoder{
		buffer:  bytes.NewBuffer(make([]byte, 0)),
		scratch: make([]byte, 0, 64),
		colors:  colors,
	}
}

//Encode renders the frame starting at the cursor home position. An odd
//trailing pixel row is ignored.
func (e *HalfBlockEncoder) Encode(frame image.Image) ([]byte, error) {
	bounds := frame.Bounds()
	cols, rows := bounds.Dx(), bounds.Dy()/2
	if cols <= 0 || rows <= 0 {
		return nil, nil
	}

	e.buffer.Reset()
	e.buffer.Grow(len(ansi.CursorHomePosition) + rows*(cols*40+len(ansi.ResetStyle)+1))
	e.buffer.WriteString(ansi.CursorHomePosition)
	for y := 0; y < rows; y++ {
		top := bounds.Min.Y + 2*y
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			e.scratch = e.colors(e.scratch[:0], pixelAt(frame, x, top), pixelAt(frame, x, top+1))
			e.buffer.Write(e.scratch)
			e.buffer.WriteString(UpperHalfBlock)
		}
		e.buffer.WriteString(ansi.ResetStyle)
		if y < rows-1 {
			e.buffer.WriteByte('\n')
		}
	}
	return e.buffer.Bytes(), nil
}

func pixelAt(img image.Image, x, y int) color.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba.RGBAAt(x, y)
	}
	r, g, b, _ := img.At(x, y).RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 0xff}
}

func appendTrueColor(dst []byte, fg, bg color.RGBA) []byte {
	dst = append(dst, "\x1b[38;2;"...)
	dst = appendRGB(dst, fg)
	dst = append(dst, "m\x1b[48;2;"...)
	dst = appendRGB(dst, bg)
	return append(dst, 'm')
}

func appendRGB(dst []byte, c color.RGBA) []byte {
	dst = strconv.AppendUint(dst, uint64(c.R), 10)
	dst = append(dst, ';')
	dst = strconv.AppendUint(dst, uint64(c.G), 10)
	dst = append(dst, ';')
	return strconv.AppendUint(dst, uint64(c.B), 10)
}

func init() {
	registeredEncoders[TrueColor] = func() (Encoder, error) {
		return newHalfBlockEncoder(appendTrueColor), nil
	}
}
