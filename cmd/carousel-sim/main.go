// Command carousel-sim runs a terminal stand-in for a host rendering
// runtime: it attaches a carousel control over the real session/bridge
// channel, executes navigation commands and auto-play locally, and feeds
// change and scrolled events back through the wire contract. Use it to
// exercise the binding without a production renderer.
//
// Configuration comes from carousel.yaml at the repository root (optional)
// with CAROUSEL_SIM_* environment overrides, loaded from .env when present.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/go-drift/carousel/cmd/carousel-sim/internal/config"
	"github.com/go-drift/carousel/cmd/carousel-sim/internal/simhost"
	"github.com/go-drift/carousel/pkg/carousel"
	"github.com/go-drift/carousel/pkg/control"
	"github.com/go-drift/carousel/pkg/controls"
	"github.com/go-drift/carousel/pkg/graphics"
	"github.com/go-drift/carousel/pkg/host"
)

func main() {
	envFile := flag.String("env", ".env", "path to .env file (ignored if missing)")
	flag.Parse()

	if err := run(*envFile); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(envFile string) error {
	if err := loadDotEnv(envFile); err != nil {
		return err
	}

	root, err := config.FindProjectRoot()
	if err != nil {
		return err
	}
	cfg, err := config.Resolve(root)
	if err != nil {
		return err
	}

	codec, _ := host.CodecByName(cfg.Codec)
	sim := simhost.New(codec)
	session := host.NewSession(sim)
	session.SetCodec(codec)
	host.RegisterDispatch(func(cb func()) { cb() })

	if err := session.Start(); err != nil {
		return err
	}
	defer session.Close()

	car := buildCarousel(cfg)
	if err := session.Attach(car); err != nil {
		return err
	}

	p := tea.NewProgram(newModel(cfg, sim, car), tea.WithAltScreen())

	// Send the program reference so the model can wire event callbacks.
	go func() {
		p.Send(programReadyMsg{program: p})
	}()

	_, err = p.Run()
	return err
}

func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("failed to load %s: %w", path, err)
}

// buildCarousel assembles the demo control tree from configuration.
func buildCarousel(cfg *config.Resolved) *carousel.Carousel {
	pages := make([]control.Control, 0, len(cfg.Pages))
	for _, page := range cfg.Pages {
		if page.Image != "" {
			pages = append(pages, controls.NewImage(page.Image))
			continue
		}
		text := controls.NewText(page.Title)
		if col, err := graphics.ParseColor(page.Color); err == nil {
			text.SetColor(col)
		}
		pages = append(pages, text)
	}

	car := carousel.New(pages...)
	car.SetInitialPage(cfg.Carousel.InitialPage)
	if cfg.Carousel.AutoPlay {
		car.SetAutoPlay(true)
	}
	if cfg.Carousel.AutoPlayIntervalMS > 0 {
		car.SetAutoPlayInterval(time.Duration(cfg.Carousel.AutoPlayIntervalMS) * time.Millisecond)
	}
	if cfg.Carousel.InfiniteScroll != nil {
		car.SetEnableInfiniteScroll(*cfg.Carousel.InfiniteScroll)
	}
	if cfg.Carousel.Indicator != nil {
		car.SetEnableIndicator(*cfg.Carousel.Indicator)
	}
	if cfg.Carousel.DisableGesture {
		car.SetDisableGesture(true)
	}
	return car
}
