package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/midbel/chartview"
	"github.com/midbel/chartview/internal/config"
	"github.com/midbel/chartview/internal/dataset"
	"github.com/midbel/chartview/internal/logging"
	"github.com/midbel/chartview/raster"
	"github.com/midbel/chartview/svgcanvas"
	"golang.org/x/sync/errgroup"
)

func main() {
	var (
		file    = flag.String("config", "", "configuration file")
		_       = flag.String("kind", "", "chart kind (bar, pie, hbar)")
		_       = flag.String("title", "", "chart title")
		_       = flag.String("palette", "", "comma separated list of colors")
		_       = flag.String("theme", "", "palette theme (category10, tableau10, generated)")
		_       = flag.Float64("width", config.DefaultWidth, "chart width")
		_       = flag.Float64("height", config.DefaultHeight, "chart height")
		_       = flag.String("format", "", "comma separated list of output formats (svg, png)")
		_       = flag.String("output", "", "output directory")
		_       = flag.String("log-level", "", "log level")
		label   = flag.Int("label", 0, "index of the label column in csv files")
		value   = flag.Int("value", 1, "index of the value column in csv files")
		workers = flag.Int("workers", 4, "number of files drawn concurrently")
	)
	flag.Parse()

	cfg, err := config.Load(*file, overrides())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger, err := logging.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if flag.NArg() == 0 {
		level.Error(logger).Log("msg", "no data files given")
		os.Exit(2)
	}
	cols := dataset.Columns{
		Label: *label,
		Value: *value,
	}

	grp, ctx := errgroup.WithContext(context.Background())
	grp.SetLimit(max(*workers, 1))
	for _, f := range flag.Args() {
		f := f
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return drawFile(cfg, cols, f, log.With(logger, "file", f))
		})
	}
	if err := grp.Wait(); err != nil {
		level.Error(logger).Log("msg", "drawing charts failed", "err", err)
		os.Exit(1)
	}
}

// overrides collects the flags explicitly set on the command line.
func overrides() map[string]any {
	set := make(map[string]any)
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "config", "label", "value", "workers":
		default:
			set[f.Name] = f.Value.(flag.Getter).Get()
		}
	})
	return set
}

func drawFile(cfg config.Config, cols dataset.Columns, file string, logger log.Logger) error {
	serie, err := dataset.ReadFile(file, cols)
	if err != nil {
		return err
	}
	ch := chartview.New()
	if cfg.Title == "" {
		cfg.Title = getIdent(file)
	}
	if err := cfg.Apply(ch); err != nil {
		return err
	}
	if err := ch.SetSerie(serie); err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	for _, format := range cfg.Format {
		out := filepath.Join(cfg.Output, getIdent(file)+"."+format)
		if err := writeChart(ch, cfg, format, out); err != nil {
			return err
		}
		level.Info(logger).Log("msg", "chart written", "kind", ch.Kind(), "entries", serie.Len(), "output", out)
	}
	return nil
}

func writeChart(ch *chartview.Chart, cfg config.Config, format, file string) error {
	if dir := filepath.Dir(file); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	w, err := os.Create(file)
	if err != nil {
		return err
	}
	err = encode(w, ch, cfg, format)
	return errors.Join(err, w.Close())
}

func encode(w io.Writer, ch *chartview.Chart, cfg config.Config, format string) error {
	switch format {
	case config.FormatSVG:
		cv := svgcanvas.New(cfg.Width, cfg.Height)
		cv.Prolog = true
		ch.Draw(cv, chartview.NewRect(0, 0, cfg.Width, cfg.Height))
		return cv.Render(w)
	case config.FormatPNG:
		_, err := raster.Encode(w, ch, int(cfg.Width), int(cfg.Height))
		return err
	default:
		return fmt.Errorf("%s: unsupported format", format)
	}
}

func getIdent(file string) string {
	file = filepath.Base(file)
	for {
		e := filepath.Ext(file)
		if e == "" {
			break
		}
		file = strings.TrimSuffix(file, e)
	}
	return file
}
