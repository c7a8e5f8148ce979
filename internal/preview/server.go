// Package preview serves a chart over http. The server plays the role of the
// host toolkit: it owns one chart, serializes every access to it and draws a
// new frame for each request.
package preview

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/midbel/chartview"
	"github.com/midbel/chartview/internal/config"
	"github.com/midbel/chartview/internal/dataset"
	"github.com/midbel/chartview/raster"
	"github.com/midbel/chartview/svgcanvas"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	mimeSVG = "image/svg+xml"
	mimePNG = "image/png"

	maxDimension = 4096
)

type Server struct {
	logger   log.Logger
	cfg      config.Config
	registry *prometheus.Registry
	metrics  *metrics

	mu         sync.Mutex
	chart      *chartview.Chart
	generation uint64

	router *gin.Engine
}

func New(cfg config.Config, logger log.Logger) (*Server, error) {
	s := Server{
		logger:   logger,
		cfg:      cfg,
		registry: prometheus.NewRegistry(),
	}
	s.metrics = newMetrics(s.registry)
	s.chart = chartview.New()
	if err := cfg.Apply(s.chart); err != nil {
		return nil, err
	}
	s.chart.OnInvalidate(s.invalidate)
	s.router = s.routes()
	return &s, nil
}

// SetSerie replaces the serie of the chart served.
func (s *Server) SetSerie(serie chartview.Serie) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.chart.SetSerie(serie)
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe runs the server until the context is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		level.Info(s.logger).Log("msg", "preview server listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()
	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	level.Info(s.logger).Log("msg", "shutting down preview server")
	sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.logRequest)

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	r.GET("/chart.svg", s.drawCurrent(config.FormatSVG))
	r.GET("/chart.png", s.drawCurrent(config.FormatPNG))
	r.GET("/chart.json", s.frameCurrent)
	r.GET("/render", s.renderOnce)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})))

	g := r.Group("/chart")
	g.PUT("/kind", s.setKind)
	g.PUT("/title", s.setTitle)
	g.PUT("/palette", s.setPalette)
	g.PUT("/serie", s.setSerie)
	return r
}

func (s *Server) logRequest(c *gin.Context) {
	start := time.Now()
	c.Next()
	level.Debug(s.logger).Log(
		"msg", "request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"duration", time.Since(start),
	)
}

// invalidate is called by the chart while s.mu is held.
func (s *Server) invalidate() {
	s.generation++
	s.metrics.generation.Set(float64(s.generation))
}

func (s *Server) etag() string {
	return strconv.Quote(strconv.FormatUint(s.generation, 10))
}

func (s *Server) drawCurrent(format string) gin.HandlerFunc {
	return func(c *gin.Context) {
		width, height, err := s.dimension(c)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, err)
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()

		tag := s.etag()
		if c.GetHeader("If-None-Match") == tag {
			c.Status(http.StatusNotModified)
			return
		}
		body, mime, err := s.encode(s.chart, format, width, height)
		if err != nil {
			level.Error(s.logger).Log("msg", "drawing chart failed", "format", format, "err", err)
			abortWithError(c, http.StatusInternalServerError, err)
			return
		}
		c.Header("ETag", tag)
		c.Data(http.StatusOK, mime, body)
	}
}

func (s *Server) frameCurrent(c *gin.Context) {
	width, height, err := s.dimension(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var rec chartview.Recorder
	f := s.chart.Layout(chartview.NewRect(0, 0, width, height), &rec)
	c.Header("ETag", s.etag())
	c.JSON(http.StatusOK, f)
}

// renderOnce draws a chart described entirely by the query string without
// touching the chart of the server.
func (s *Server) renderOnce(c *gin.Context) {
	width, height, err := s.dimension(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err)
		return
	}
	cfg := s.cfg
	cfg.Kind = c.DefaultQuery("kind", cfg.Kind)
	cfg.Title = c.DefaultQuery("title", cfg.Title)
	if str := c.Query("palette"); str != "" {
		cfg.Palette = splitPalette(str)
	}
	format := c.DefaultQuery("format", config.FormatSVG)

	serie, err := dataset.Parse(c.Query("data"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err)
		return
	}
	ch := chartview.New()
	if err := cfg.Apply(ch); err != nil {
		abortWithError(c, http.StatusBadRequest, err)
		return
	}
	if err := ch.SetSerie(serie); err != nil {
		abortWithError(c, http.StatusBadRequest, err)
		return
	}
	body, mime, err := s.encode(ch, format, width, height)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err)
		return
	}
	c.Data(http.StatusOK, mime, body)
}

func (s *Server) setKind(c *gin.Context) {
	var req struct {
		Kind chartview.Kind `json:"kind"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, err)
		return
	}
	s.update(c, func(ch *chartview.Chart) error {
		return ch.SetKind(req.Kind)
	})
}

func (s *Server) setTitle(c *gin.Context) {
	var req struct {
		Title string `json:"title"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, err)
		return
	}
	s.update(c, func(ch *chartview.Chart) error {
		ch.SetTitle(req.Title)
		return nil
	})
}

func (s *Server) setPalette(c *gin.Context) {
	var req struct {
		Palette chartview.Palette `json:"palette"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, err)
		return
	}
	s.update(c, func(ch *chartview.Chart) error {
		return ch.SetPalette(req.Palette)
	})
}

func (s *Server) setSerie(c *gin.Context) {
	var serie chartview.Serie
	if err := c.ShouldBindJSON(&serie); err != nil {
		abortWithError(c, http.StatusBadRequest, err)
		return
	}
	s.update(c, func(ch *chartview.Chart) error {
		return ch.SetSerie(serie)
	})
}

func (s *Server) update(c *gin.Context, set func(*chartview.Chart) error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := set(s.chart); err != nil {
		level.Warn(s.logger).Log("msg", "chart update rejected", "path", c.Request.URL.Path, "err", err)
		s.metrics.rejectedUpdates.WithLabelValues(c.FullPath()).Inc()
		abortWithError(c, http.StatusBadRequest, err)
		return
	}
	c.Header("ETag", s.etag())
	c.JSON(http.StatusOK, gin.H{
		"generation": s.generation,
	})
}

func (s *Server) dimension(c *gin.Context) (float64, float64, error) {
	width, err := parseDimension(c.Query("width"), s.cfg.Width)
	if err != nil {
		return 0, 0, err
	}
	height, err := parseDimension(c.Query("height"), s.cfg.Height)
	return width, height, err
}

func parseDimension(str string, def float64) (float64, error) {
	if str == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, err
	}
	if v <= 0 || v > maxDimension {
		return 0, errors.New("dimension out of range")
	}
	return v, nil
}

func (s *Server) encode(ch *chartview.Chart, format string, width, height float64) ([]byte, string, error) {
	start := time.Now()
	body, mime, err := encode(ch, format, width, height)
	if err == nil {
		s.metrics.rendersTotal.WithLabelValues(format).Inc()
		s.metrics.renderDuration.WithLabelValues(format).Observe(time.Since(start).Seconds())
	}
	return body, mime, err
}

func encode(ch *chartview.Chart, format string, width, height float64) ([]byte, string, error) {
	var (
		buf bytes.Buffer
		err error
	)
	switch format {
	case config.FormatSVG:
		_, err = svgcanvas.Encode(&buf, ch, width, height)
		return buf.Bytes(), mimeSVG, err
	case config.FormatPNG:
		_, err = raster.Encode(&buf, ch, int(width), int(height))
		return buf.Bytes(), mimePNG, err
	default:
		return nil, "", errors.New(format + ": unsupported format")
	}
}

func splitPalette(str string) []string {
	var list []string
	for _, c := range strings.Split(str, ",") {
		if c = strings.TrimSpace(c); c != "" {
			list = append(list, c)
		}
	}
	return list
}

func abortWithError(c *gin.Context, code int, err error) {
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}
