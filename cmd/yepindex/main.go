package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/JPEWdev/yeps/internal/config"
	"github.com/JPEWdev/yeps/internal/errors"
	"github.com/JPEWdev/yeps/internal/metrics"
	"github.com/JPEWdev/yeps/internal/pipeline"
	"github.com/JPEWdev/yeps/internal/version"
)

var CLI struct {
	Config  string `short:"c" help:"Configuration file path" default:"config.yaml"`
	Verbose bool   `short:"v" help:"Enable verbose logging"`

	Build struct {
	} `cmd:"" help:"Synthesize the YEP indices, JSON snapshot, and RSS feed"`

	Validate struct {
	} `cmd:"" help:"Parse and validate all proposal documents without writing outputs"`

	Watch struct {
		MetricsAddr string `help:"Serve Prometheus metrics on this address (e.g. :9090)"`
	} `cmd:"" help:"Rebuild the indices whenever a proposal source changes"`

	Init struct {
		Force bool `help:"Overwrite existing configuration file"`
	} `cmd:"" help:"Initialize a new configuration file"`

	Version struct {
	} `cmd:"" help:"Print version information"`
}

func main() {
	ctx := kong.Parse(&CLI)

	// Set up logging
	logLevel := slog.LevelInfo
	if CLI.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	adapter := errors.NewCLIErrorAdapter(CLI.Verbose, logger)

	if ctx.Command() == "version" {
		fmt.Printf("yepindex %s (commit %s, built %s)\n", version.Version, version.GitCommit, version.BuildTime)
		return
	}

	if ctx.Command() == "init" {
		if err := config.Init(CLI.Config, CLI.Init.Force); err != nil {
			adapter.HandleError(err)
		}
		return
	}

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		adapter.HandleError(errors.Wrap(err, errors.CategoryConfig, errors.SeverityFatal, "load configuration"))
	}

	var recorder metrics.Recorder = metrics.NoopRecorder{}
	if CLI.Watch.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		recorder = metrics.NewPrometheusRecorder(reg)
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", metrics.HTTPHandler(reg))
			if err := http.ListenAndServe(CLI.Watch.MetricsAddr, mux); err != nil {
				slog.Error("Metrics server failed", "error", err)
			}
		}()
	}

	p := pipeline.New(cfg, recorder)

	switch ctx.Command() {
	case "build":
		if err := p.Run(); err != nil {
			adapter.HandleError(err)
		}
	case "validate":
		if err := p.Validate(); err != nil {
			adapter.HandleError(err)
		}
	case "watch":
		runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := p.Watch(runCtx); err != nil {
			adapter.HandleError(err)
		}
	}
}
