// Package config loads the simulator's optional carousel.yaml and resolves
// defaults and environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"golang.org/x/mod/modfile"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/carousel/pkg/host"
)

// Config represents the optional carousel.yaml configuration.
type Config struct {
	Sim      SimConfig      `yaml:"sim"`
	Carousel CarouselConfig `yaml:"carousel"`
	Pages    []PageConfig   `yaml:"pages"`
}

// SimConfig contains simulator settings.
type SimConfig struct {
	FPS   int    `yaml:"fps,omitempty"`
	Codec string `yaml:"codec,omitempty"`
}

// CarouselConfig contains the carousel options the demo applies at startup.
// Pointer fields distinguish "absent" from an explicit false.
type CarouselConfig struct {
	InitialPage        int   `yaml:"initial_page,omitempty"`
	AutoPlay           bool  `yaml:"auto_play,omitempty"`
	AutoPlayIntervalMS int   `yaml:"auto_play_interval_ms,omitempty"`
	InfiniteScroll     *bool `yaml:"infinite_scroll,omitempty"`
	Indicator          *bool `yaml:"indicator,omitempty"`
	DisableGesture     bool  `yaml:"disable_gesture,omitempty"`
}

// PageConfig describes one demo page. Image takes precedence over Title.
type PageConfig struct {
	Title string `yaml:"title,omitempty"`
	Color string `yaml:"color,omitempty"`
	Image string `yaml:"image,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root       string
	ModulePath string
	FPS        int
	Codec      string
	Carousel   CarouselConfig
	Pages      []PageConfig
}

var defaultPages = []PageConfig{
	{Title: "First", Color: "#E53935"},
	{Title: "Second", Color: "#1E88E5"},
	{Title: "Third", Color: "#43A047"},
	{Title: "Fourth", Color: "#FB8C00"},
	{Title: "Fifth", Color: "#8E24AA"},
}

// LoadOptional reads carousel.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "carousel.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read carousel.yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse carousel.yaml: %w", err)
	}

	return &cfg, nil
}

// Resolve loads carousel.yaml (if present), applies environment overrides
// (CAROUSEL_SIM_FPS, CAROUSEL_SIM_CODEC, CAROUSEL_SIM_AUTOPLAY) and fills
// defaults.
func Resolve(dir string) (*Resolved, error) {
	modulePath, err := modulePath(dir)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	fps := cfg.Sim.FPS
	if v := os.Getenv("CAROUSEL_SIM_FPS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			fps = n
		}
	}
	if fps <= 0 {
		fps = 30
	}

	codec := cfg.Sim.Codec
	if v := os.Getenv("CAROUSEL_SIM_CODEC"); v != "" {
		codec = v
	}
	if codec == "" {
		codec = "json"
	}
	if _, ok := host.CodecByName(codec); !ok {
		return nil, fmt.Errorf("unknown codec %q (want json or msgpack)", codec)
	}

	if v := os.Getenv("CAROUSEL_SIM_AUTOPLAY"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Carousel.AutoPlay = b
		}
	}

	pages := cfg.Pages
	if len(pages) == 0 {
		pages = defaultPages
	}

	return &Resolved{
		Root:       dir,
		ModulePath: modulePath,
		FPS:        fps,
		Codec:      codec,
		Carousel:   cfg.Carousel,
		Pages:      pages,
	}, nil
}

// FindProjectRoot walks up from the current directory to find go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}
