//go:build js && wasm

// Command carousel-wasm mounts a carousel into the page element with id
// "carousel". Items can be supplied as TOML in window.carouselConfig before
// the module starts; selections are reported to window.onCarouselSelect.
package main

import (
	"log/slog"
	"os"
	"syscall/js"

	"github.com/gogpu/carousel"
	"github.com/gogpu/carousel/config"
	"github.com/gogpu/carousel/host/jshost"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	carousel.SetLogger(logger)

	doc := js.Global().Get("document")
	container := doc.Call("getElementById", "carousel")
	if !container.Truthy() {
		logger.Error("carousel-wasm: no element with id carousel")
		return
	}

	cfg := config.Default()
	if src := js.Global().Get("carouselConfig"); src.Type() == js.TypeString {
		parsed, err := config.Parse([]byte(src.String()))
		if err != nil {
			logger.Warn("carousel-wasm: ignoring config", "err", err)
		} else {
			cfg = parsed
		}
	}
	opts, err := cfg.Options()
	if err != nil {
		logger.Warn("carousel-wasm: ignoring config", "err", err)
		opts = nil
	}
	opts = append(opts, carousel.WithOnSelect(func(i int) {
		if cb := js.Global().Get("onCarouselSelect"); cb.Type() == js.TypeFunction {
			cb.Invoke(i)
		}
	}))

	c, err := carousel.New(jshost.New(container), jshost.NewScheduler(), opts...)
	if err != nil {
		logger.Error("carousel-wasm: create", "err", err)
		return
	}

	destroy := js.FuncOf(func(js.Value, []js.Value) any {
		c.Destroy()
		return nil
	})
	js.Global().Set("destroyCarousel", destroy)

	select {}
}
