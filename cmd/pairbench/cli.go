package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/hupe1980/pairstore/bench"
	"github.com/hupe1980/pairstore/codec"
)

// Version is set at build time via -ldflags.
var Version = "dev"

const (
	defaultLogLevel  = "info"
	defaultLogFormat = "text"
	defaultCodec     = "json"
)

// CLI is the root command structure
type CLI struct {
	ConfigFile   string   `name:"config" help:"TOML config file; flags left at their default take values from it" type:"path"`
	Ops          int      `help:"pairs per workload" default:"10000"`
	Seed         int64    `help:"seed for workload generation" default:"42"`
	Workloads    []string `name:"workload" help:"workloads to run (${workloads})" default:"${workloads}"`
	Impls        []string `name:"impl" help:"implementations to measure (${impls})" default:"${impls}"`
	CapacityHint int      `name:"capacity-hint" help:"capacity for every measured map; negative sizes maps for the workload" default:"-1"`
	LogLevel     string   `name:"log-level" help:"log level (debug, info, warn, error)" default:"info"`
	LogFormat    string   `name:"log-format" help:"log format (text, json)" default:"text"`
	Report       string   `help:"write the run report to this file; .zst and .lz4 extensions compress it" type:"path"`
	Codec        string   `help:"report codec (json, go-json)" default:"json"`
	MetricsFile  string   `name:"metrics-file" help:"write Prometheus metrics to this textfile" type:"path"`

	Version VersionFlag `help:"print version and exit"`
}

// defaultWorkloads lists every workload kind by name.
func defaultWorkloads() []string {
	kinds := bench.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return names
}

// kongVars fills the workload and implementation defaults from the bench
// registry.
func kongVars() kong.Vars {
	return kong.Vars{
		"workloads": strings.Join(defaultWorkloads(), ","),
		"impls":     strings.Join(bench.ImplNames(), ","),
	}
}

// VersionFlag is a custom flag type that prints version and exits
type VersionFlag bool

func (v VersionFlag) BeforeApply(app *kong.Kong) error {
	fmt.Fprintf(app.Stdout, "pairbench %s (Go Version: %s)\n", Version, runtime.Version())
	app.Exit(0)
	return nil
}

// Run loads the config file, runs the benchmark suite and writes the
// results table to stdout.
func (c *CLI) Run(stdout io.Writer) error {
	if err := loadConfigFile(c); err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := newLogger(c.LogLevel, c.LogFormat)
	if err != nil {
		return err
	}

	kinds := make([]bench.Kind, 0, len(c.Workloads))
	for _, name := range c.Workloads {
		k, err := bench.ParseKind(strings.TrimSpace(name))
		if err != nil {
			return err
		}
		kinds = append(kinds, k)
	}

	cdc, ok := codec.ByName(c.Codec)
	if !ok {
		return fmt.Errorf("unknown codec %q (available: %v)", c.Codec, codec.Names())
	}

	var metrics bench.MetricsCollector = bench.NoopMetricsCollector{}
	var prom *bench.PrometheusCollector
	if c.MetricsFile != "" {
		prom = bench.NewPrometheusCollector()
		metrics = prom
	}

	runner, err := bench.NewRunner(
		bench.WithOps(c.Ops),
		bench.WithSeed(c.Seed),
		bench.WithWorkloads(kinds...),
		bench.WithImpls(c.Impls...),
		bench.WithCapacityHint(c.CapacityHint),
		bench.WithLogger(logger),
		bench.WithMetricsCollector(metrics),
	)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rep, runErr := runner.Run(ctx)
	if rep == nil {
		return runErr
	}

	if err := rep.WriteTable(stdout); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	if c.Report != "" {
		if err := rep.WriteFile(c.Report, cdc); err != nil {
			return err
		}
		logger.Info("report written", "path", c.Report, "codec", cdc.Name())
	}
	if prom != nil {
		if err := prom.WriteTextfile(c.MetricsFile); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
		logger.Info("metrics written", "path", c.MetricsFile)
	}

	return runErr
}

func newLogger(level, format string) (*bench.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	switch format {
	case "text":
		return bench.NewTextLogger(lvl), nil
	case "json":
		return bench.NewJSONLogger(lvl), nil
	default:
		return nil, fmt.Errorf("invalid log format %q (text, json)", format)
	}
}
