package main

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"runtime"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/BYTE-6D65/ticktime/pkg/clock"
	"github.com/BYTE-6D65/ticktime/pkg/config"
	"github.com/BYTE-6D65/ticktime/pkg/datetime"
	"github.com/BYTE-6D65/ticktime/pkg/logging"
	"github.com/BYTE-6D65/ticktime/pkg/telemetry"
	"github.com/BYTE-6D65/ticktime/pkg/wallclock"
)

const version = "0.1.0"

// app carries what every subcommand needs.
type app struct {
	cfg      config.Config
	log      *zap.Logger
	registry *prometheus.Registry
	metrics  *telemetry.Metrics
	wall     datetime.Source
	out      io.Writer
}

func main() {
	if err := run(os.Args[1:], wallclock.NewSystem(), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, wall datetime.Source, out io.Writer) error {
	// If no arguments, launch the interactive demo
	cmd := "demo"
	if len(args) > 0 {
		cmd, args = args[0], args[1:]
	}

	switch cmd {
	case "version":
		fmt.Fprintf(out, "ticktime v%s\n", version)
		fmt.Fprintf(out, "Platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		return nil
	case "help", "-h", "--help":
		usage(out)
		return nil
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		return err
	}

	fs := pflag.NewFlagSet(cmd, pflag.ContinueOnError)
	fs.SetOutput(out)
	cfg.BindFlags(fs)

	var handler func(a *app, fs *pflag.FlagSet) error
	switch cmd {
	case "now":
		handler = bindNow(fs)
	case "add":
		handler = bindAdd(fs)
	case "diff":
		handler = bindDiff(fs)
	case "info":
		handler = bindInfo(fs)
	case "demo":
		handler = bindDemo(fs)
	default:
		return fmt.Errorf("unknown command %q (try 'ticktime help')", cmd)
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.New(cfg.LogProduction, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	registry := prometheus.NewRegistry()
	a := &app{
		cfg:      cfg,
		log:      log,
		registry: registry,
		metrics:  telemetry.InitMetrics(registry),
		wall:     wall,
		out:      out,
	}
	log.Debug("configuration loaded", zap.String("command", cmd), zap.Stringer("config", &a.cfg))

	if cfg.MetricsAddr != "" {
		a.serveMetrics()
	}

	return handler(a, fs)
}

func (a *app) serveMetrics() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{}))

	go func() {
		a.log.Info("serving metrics", zap.String("addr", a.cfg.MetricsAddr))
		if err := http.ListenAndServe(a.cfg.MetricsAddr, mux); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("metrics server stopped", zap.Error(err))
		}
	}()
}

// tickSource returns the configured monotonic tick source.
func (a *app) tickSource() (clock.Source, error) {
	opts := []clock.Option{clock.WithLogger(a.log), clock.WithMetrics(a.metrics)}
	if a.cfg.Clock == config.ClockSystem {
		return clock.NewMonotonic(clock.NewSystemClock(), append(opts, clock.WithName("system"))...), nil
	}
	return clock.NewPlatformClock(opts...)
}

func usage(w io.Writer) {
	fmt.Fprintf(w, `ticktime - Tick Clocks, Calendar Dates and Spans

Usage:
  ticktime [demo] [--dump FILE] [--replay FILE [--replay-loop]]
      Launch interactive stopwatch with lap recording and frame rate.
      --replay drives it from frame intervals recorded as a JSON array
      of milliseconds

  ticktime now [--utc] [--json]
      Show the current date and time

  ticktime add <date> [--years N] [--months N] [--days N] [--hours N]
                      [--minutes N] [--seconds N] [--millis N]
      Shift a date-time by calendar units, applied in that order

  ticktime diff <date> <date>
      Show the span from the second date-time to the first

  ticktime info <year> [month]
      Show leap year and month length information

  ticktime version
      Show version and platform information

  ticktime help
      Show this help message

Dates are written YYYY-MM-DD, YYYY-MM-DDThh:mm:ss or
YYYY-MM-DDThh:mm:ss.fffffff.

Common flags:
  --log-level LEVEL     debug, info, warn or error (TICKTIME_LOG_LEVEL)
  --log-json            JSON logs (TICKTIME_LOG_PRODUCTION)
  --clock SOURCE        platform or system (TICKTIME_CLOCK)
  --metrics-addr ADDR   serve Prometheus metrics (TICKTIME_METRICS_ADDR)

Examples:
  # Last day of next month
  ticktime add 2011-01-31 --months 1

  # Days between two dates
  ticktime diff 2011-05-12 2011-04-29
`)
}
