package mirror

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/juju/errors"
	"github.com/op/go-logging"
	"github.com/rviscarra/termscreen/internal/encoders"
	"github.com/rviscarra/termscreen/internal/pacing"
	"github.com/rviscarra/termscreen/internal/rdisplay"
)

var log = logging.MustGetLogger("mirror")

var bannerStyle = lipgloss.NewStyle().Bold(true)

// Options configures a ScreenMirror
type Options struct {
	// Screen is the selector passed to rdisplay.SelectScreen
	Screen      int
	Interval    time.Duration
	BannerDelay time.Duration
}

// ScreenMirror captures one screen and paints it on a terminal at a fixed
// interval
type ScreenMirror struct {
	id       string
	opts     Options
	display  rdisplay.Service
	term     Terminal
	streamer *frameStreamer
	pacer    *pacing.Pacer
}

// NewScreenMirror creates a mirror of the selected screen of display on term
func NewScreenMirror(display rdisplay.Service, term Terminal, encoder encoders.Encoder, resampler encoders.Resampler, opts Options) *ScreenMirror {
	return &ScreenMirror{
		id:       uuid.New().String(),
		opts:     opts,
		display:  display,
		term:     term,
		streamer: newFrameStreamer(term, resampler, encoder),
		pacer:    pacing.NewPacer(opts.Interval),
	}
}

// Run validates the screen selector, takes over the terminal and mirrors
// the screen until ctx is cancelled, which is reported as a nil error. The
// terminal is restored on every exit path once it has been taken over,
// including panics. An invalid selector yields a
// *rdisplay.ScreenNotFoundError (see errors.Cause) before anything is
// captured or written.
func (m *ScreenMirror) Run(ctx context.Context) (err error) {
	screens, err := m.display.Screens()
	if err != nil {
		return errors.Annotate(err, "could not list screens")
	}
	screen, err := rdisplay.SelectScreen(screens, m.opts.Screen)
	if err != nil {
		return errors.Trace(err)
	}
	log.Infof("session %s: mirroring screen %d %v every %v", m.id, screen.Index, screen.Bounds, m.opts.Interval)

	defer func() {
		if releaseErr := m.term.Release(); releaseErr != nil && err == nil {
			err = releaseErr
		}
		log.Infof("session %s: terminal restored", m.id)
	}()
	if err := m.term.Acquire(); err != nil {
		return errors.Trace(err)
	}

	err = m.showBanner(ctx, screen)
	if err == nil {
		err = m.pacer.Run(ctx, func(context.Context) error {
			return m.frame(screen)
		})
	}
	if errors.Cause(err) == context.Canceled {
		log.Infof("session %s: interrupted", m.id)
		return nil
	}
	return errors.Trace(err)
}

func (m *ScreenMirror) showBanner(ctx context.Context, screen rdisplay.Screen) error {
	banner := fmt.Sprintf("Capturing monitor %d. Press Ctrl+C to exit.", screen.Index)
	if _, err := fmt.Fprintln(m.term, bannerStyle.Render(banner)); err != nil {
		return errors.Annotate(err, "could not print banner")
	}
	if m.opts.BannerDelay > 0 {
		if err := pacing.Sleep(ctx, m.opts.BannerDelay); err != nil {
			return err
		}
	}
	return m.term.Clear()
}

// frame captures and paints one frame. The last terminal row is left
// empty so a full-height frame never scrolls the screen.
func (m *ScreenMirror) frame(screen rdisplay.Screen) error {
	cols, rows := m.term.Size()
	img, err := m.display.Grab(screen)
	if err != nil {
		return errors.Trace(err)
	}
	if rows <= 1 {
		return nil
	}
	return m.streamer.render(img, cols, rows-1)
}
