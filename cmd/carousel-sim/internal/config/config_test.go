package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProject(t *testing.T, yaml string) string {
	t.Helper()
	dir := t.TempDir()
	gomod := "module example.com/demo\n\ngo 1.24.0\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte(gomod), 0o644))
	if yaml != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "carousel.yaml"), []byte(yaml), 0o644))
	}
	return dir
}

func TestResolveDefaults(t *testing.T) {
	dir := writeProject(t, "")

	cfg, err := Resolve(dir)
	require.NoError(t, err)

	assert.Equal(t, "example.com/demo", cfg.ModulePath)
	assert.Equal(t, 30, cfg.FPS)
	assert.Equal(t, "json", cfg.Codec)
	assert.Len(t, cfg.Pages, len(defaultPages))
}

func TestResolveReadsYAML(t *testing.T) {
	dir := writeProject(t, `
sim:
  fps: 60
  codec: msgpack
carousel:
  initial_page: 2
  auto_play: true
  auto_play_interval_ms: 1500
  infinite_scroll: false
pages:
  - title: Alpha
    color: "#FF0000"
  - image: "assets/beach.png"
`)

	cfg, err := Resolve(dir)
	require.NoError(t, err)

	assert.Equal(t, 60, cfg.FPS)
	assert.Equal(t, "msgpack", cfg.Codec)
	assert.Equal(t, 2, cfg.Carousel.InitialPage)
	assert.True(t, cfg.Carousel.AutoPlay)
	assert.Equal(t, 1500, cfg.Carousel.AutoPlayIntervalMS)
	require.NotNil(t, cfg.Carousel.InfiniteScroll)
	assert.False(t, *cfg.Carousel.InfiniteScroll)
	require.Len(t, cfg.Pages, 2)
	assert.Equal(t, "Alpha", cfg.Pages[0].Title)
	assert.Equal(t, "assets/beach.png", cfg.Pages[1].Image)
}

func TestResolveEnvOverrides(t *testing.T) {
	dir := writeProject(t, "sim:\n  fps: 24\n")
	t.Setenv("CAROUSEL_SIM_FPS", "15")
	t.Setenv("CAROUSEL_SIM_CODEC", "msgpack")
	t.Setenv("CAROUSEL_SIM_AUTOPLAY", "true")

	cfg, err := Resolve(dir)
	require.NoError(t, err)

	assert.Equal(t, 15, cfg.FPS)
	assert.Equal(t, "msgpack", cfg.Codec)
	assert.True(t, cfg.Carousel.AutoPlay)
}

func TestResolveRejectsUnknownCodec(t *testing.T) {
	dir := writeProject(t, "sim:\n  codec: cbor\n")

	_, err := Resolve(dir)
	assert.ErrorContains(t, err, "unknown codec")
}

func TestLoadOptionalMissingFile(t *testing.T) {
	cfg, err := LoadOptional(t.TempDir())
	require.NoError(t, err)
	assert.Zero(t, *cfg)
}
