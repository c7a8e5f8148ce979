package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/go-kit/log/level"
	"github.com/midbel/chartview/internal/config"
	"github.com/midbel/chartview/internal/dataset"
	"github.com/midbel/chartview/internal/logging"
	"github.com/midbel/chartview/internal/preview"
)

func main() {
	var (
		file = flag.String("config", "", "configuration file")
		data = flag.String("data", "", "initial serie (csv or yaml file)")
		_    = flag.String("addr", "", "listening address")
		_    = flag.String("kind", "", "chart kind (bar, pie, hbar)")
		_    = flag.String("title", "", "chart title")
		_    = flag.String("theme", "", "palette theme")
		_    = flag.Float64("width", config.DefaultWidth, "default chart width")
		_    = flag.Float64("height", config.DefaultHeight, "default chart height")
		_    = flag.String("log-level", "", "log level")
	)
	flag.Parse()

	set := make(map[string]any)
	flag.Visit(func(f *flag.Flag) {
		if f.Name != "config" && f.Name != "data" {
			set[f.Name] = f.Value.(flag.Getter).Get()
		}
	})
	cfg, err := config.Load(*file, set)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger, err := logging.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	gin.SetMode(gin.ReleaseMode)

	srv, err := preview.New(cfg, logger)
	if err != nil {
		level.Error(logger).Log("msg", "invalid configuration", "err", err)
		os.Exit(2)
	}
	if *data != "" {
		serie, err := dataset.ReadFile(*data, dataset.DefaultColumns())
		if err == nil {
			err = srv.SetSerie(serie)
		}
		if err != nil {
			level.Error(logger).Log("msg", "loading initial serie failed", "file", *data, "err", err)
			os.Exit(1)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := srv.ListenAndServe(ctx, cfg.Addr); err != nil {
		level.Error(logger).Log("msg", "preview server stopped", "err", err)
		os.Exit(1)
	}
}
