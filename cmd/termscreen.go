package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/juju/errors"
	"github.com/op/go-logging"
	"github.com/rviscarra/termscreen/internal/config"
	"github.com/rviscarra/termscreen/internal/encoders"
	"github.com/rviscarra/termscreen/internal/logs"
	"github.com/rviscarra/termscreen/internal/mirror"
	"github.com/rviscarra/termscreen/internal/rdisplay"
	"github.com/rviscarra/termscreen/internal/terminal"
)

var log = logging.MustGetLogger("termscreen")

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load(".env", os.Args[1:], os.Stderr)
	if err == flag.ErrHelp {
		return 0
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	var logOut io.Writer = os.Stderr
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Can't open log file: %v\n", err)
			return 1
		}
		defer f.Close()
		logOut = f
	}
	if err := logs.Configure(logOut, cfg.LogLevel); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	var video rdisplay.Service
	video, err = rdisplay.NewVideoProvider()
	if err != nil {
		log.Errorf("Can't init video: %v", err)
		return 1
	}

	mode, err := cfg.ColorMode(func() encoders.ColorMode {
		return terminal.DetectColorMode(os.Stdout)
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	enc, err := encoders.NewEncoderService().NewEncoder(mode)
	if err != nil {
		log.Errorf("Can't create an encoder for color mode %v: %v", mode, err)
		return 1
	}
	log.Infof("Using color mode %v", mode)

	var screen mirror.Service = mirror.NewScreenMirror(
		video,
		terminal.NewStdoutSession(),
		enc,
		encoders.NewLanczosResampler(),
		mirror.Options{
			Screen:      cfg.Monitor,
			Interval:    cfg.Interval,
			BannerDelay: cfg.BannerDelay,
		},
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = screen.Run(ctx)
	if notFound, ok := errors.Cause(err).(*rdisplay.ScreenNotFoundError); ok {
		fmt.Fprintf(os.Stderr, "Error: Monitor %d not found.\n", notFound.Index)
		fmt.Fprintf(os.Stderr, "There are only %d monitor(s) available.\n", notFound.Available)
		if hint := notFound.Hint(); hint != "" {
			fmt.Fprintf(os.Stderr, "Hint: %s.\n", hint)
		}
		return 1
	}
	if err != nil {
		log.Debugf("%s", errors.ErrorStack(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if ctx.Err() != nil {
		fmt.Println("Program interrupted, exiting.")
	}
	return 0
}
