// Command carousel-term shows a carousel in the terminal. Drag with the
// mouse or use the wheel; clicking a card shows it in the caption line.
// Esc, Ctrl-C or q quits.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gogpu/carousel"
	"github.com/gogpu/carousel/config"
	"github.com/gogpu/carousel/frame"
	"github.com/gogpu/carousel/host/termhost"
	"github.com/gogpu/carousel/metrics"
)

func main() {
	var (
		cfgPath     = flag.String("config", "carousel.toml", "TOML settings and items")
		fps         = flag.Int("fps", 30, "target frame rate")
		logPath     = flag.String("log", "", "write diagnostics to this file")
		watch       = flag.Bool("watch", false, "rebuild the carousel when the config file changes")
		metricsAddr = flag.String("metrics", "", "serve Prometheus metrics on this address")
	)
	flag.Parse()

	if err := run(*cfgPath, *fps, *logPath, *watch, *metricsAddr); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// app owns the running carousel. Every method runs on the loop goroutine.
type app struct {
	host     *termhost.Host
	loop     *frame.Loop
	observer carousel.Observer

	c        *carousel.Carousel
	selected string
}

func (a *app) caption() string {
	if a.selected == "" {
		return " drag or scroll · click a card · q quits"
	}
	return " selected: " + a.selected
}

// build replaces the running carousel with one made from cfg.
func (a *app) build(cfg config.File) error {
	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	if a.c != nil {
		a.c.Destroy()
	}
	a.selected = ""
	var c *carousel.Carousel
	opts = append(opts,
		carousel.WithObserver(a.observer),
		carousel.WithOnSelect(func(i int) { a.selected = c.Items()[i].Label }),
	)
	c, err = carousel.New(a.host, a.loop, opts...)
	if err != nil {
		return err
	}
	a.c = c
	return nil
}

func run(cfgPath string, fps int, logPath string, watch bool, metricsAddr string) error {
	logger := slog.New(slog.DiscardHandler)
	if logPath != "" {
		f, err := os.Create(logPath)
		if err != nil {
			return err
		}
		defer f.Close()
		logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
		carousel.SetLogger(logger)
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	observer := metrics.New(reg)
	if metricsAddr != "" {
		srv := &http.Server{Addr: metricsAddr, Handler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{})}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Warn("metrics server stopped", "err", err)
			}
		}()
		defer srv.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	a := &app{
		loop:     frame.NewLoop(fps, logger),
		observer: observer,
	}
	a.host = termhost.New(screen, termhost.WithLogger(logger), termhost.WithCaption(a.caption))
	if err := a.build(cfg); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = a.loop.Run(ctx)
	}()

	if watch {
		go func() {
			err := config.Watch(ctx, cfgPath, logger, func(f config.File) {
				a.loop.Post(func() {
					if err := a.build(f); err != nil {
						logger.Warn("config rejected", "err", err)
					}
				})
			})
			if err != nil {
				logger.Warn("config watch stopped", "err", err)
			}
		}()
	}

	a.host.Pump(ctx)
	cancel()
	<-done

	// The loop has stopped, so this goroutine now owns the carousel.
	a.c.Destroy()
	return nil
}
