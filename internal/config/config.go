package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rviscarra/termscreen/internal/encoders"
)

const (
	defaultMonitor     = 1
	defaultInterval    = 1.0
	defaultColor       = ColorAuto
	defaultBannerDelay = 2 * time.Second
	defaultLogLevel    = "WARNING"

	// ColorAuto picks the color mode from the terminal environment
	ColorAuto = "auto"
)

// Config controls the termscreen runtime.
type Config struct {
	Monitor     int
	Interval    time.Duration
	Color       string
	BannerDelay time.Duration
	LogLevel    string
	LogFile     string
}

// Load reads defaults from envFile (if it exists) and the environment,
// then applies command line args on top. flag.ErrHelp is returned as-is
// when -h is given.
func Load(envFile string, args []string, output io.Writer) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("config: could not load %s: %w", envFile, err)
		}
	}

	monitor, err := intEnvStrict("TERMSCREEN_MONITOR", defaultMonitor)
	if err != nil {
		return Config{}, err
	}
	interval, err := floatEnvStrict("TERMSCREEN_INTERVAL", defaultInterval)
	if err != nil {
		return Config{}, err
	}
	cfg := Config{
		Monitor:     monitor,
		Color:       stringEnv("TERMSCREEN_COLOR", defaultColor),
		BannerDelay: defaultBannerDelay,
		LogLevel:    stringEnv("TERMSCREEN_LOGLEVEL", defaultLogLevel),
		LogFile:     stringEnv("TERMSCREEN_LOGFILE", ""),
	}

	fs := flag.NewFlagSet("termscreen", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintf(output, "Display a live feed of a monitor in the terminal.\n\nUsage: termscreen [flags]\n\n")
		fs.PrintDefaults()
	}
	monitorHelp := "Monitor number to capture.\n0 = all monitors, 1 = primary monitor, 2 = second monitor (if available)"
	fs.IntVar(&cfg.Monitor, "m", cfg.Monitor, monitorHelp)
	fs.IntVar(&cfg.Monitor, "monitor", cfg.Monitor, monitorHelp)
	intervalHelp := "Refresh interval in seconds. Smaller numbers mean faster updates"
	fs.Float64Var(&interval, "i", interval, intervalHelp)
	fs.Float64Var(&interval, "interval", interval, intervalHelp)
	fs.StringVar(&cfg.Color, "color", cfg.Color, "Color mode: auto, truecolor or 256")
	fs.DurationVar(&cfg.BannerDelay, "banner", cfg.BannerDelay, "How long the start banner is shown")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (DEBUG, INFO, WARNING, ERROR)")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Write logs to this file instead of stderr")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return Config{}, err
		}
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("config: unexpected arguments %v", fs.Args())
	}

	if interval <= 0 {
		return Config{}, fmt.Errorf("config: interval must be positive, got %v", interval)
	}
	cfg.Interval = time.Duration(interval * float64(time.Second))
	if cfg.BannerDelay < 0 {
		return Config{}, fmt.Errorf("config: banner delay must not be negative, got %v", cfg.BannerDelay)
	}
	if _, err := cfg.ColorMode(nil); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ColorMode resolves the configured color mode, calling detect for "auto"
func (c Config) ColorMode(detect func() encoders.ColorMode) (encoders.ColorMode, error) {
	if strings.EqualFold(strings.TrimSpace(c.Color), ColorAuto) {
		if detect == nil {
			return encoders.TrueColor, nil
		}
		return detect(), nil
	}
	mode, err := encoders.ParseColorMode(c.Color)
	if err != nil {
		return 0, fmt.Errorf("config: %w", err)
	}
	return mode, nil
}

func stringEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func intEnvStrict(key string, fallback int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("config: invalid %s: %w", key, err)
	}
	return value, nil
}

func floatEnvStrict(key string, fallback float64) (float64, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("config: invalid %s: %w", key, err)
	}
	return value, nil
}
