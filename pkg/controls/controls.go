// Package controls provides basic content controls used as carousel pages
// in demos and tests. Like every control they are thin typed facades over a
// string attribute store; the host renderer owns layout and drawing.
package controls

import (
	"github.com/go-drift/carousel/pkg/control"
	"github.com/go-drift/carousel/pkg/graphics"
)

// Text displays a run of plain text.
type Text struct {
	control.BaseControl
}

// NewText creates a text control with the given content.
func NewText(value string) *Text {
	t := &Text{BaseControl: control.NewBase("text")}
	t.SetValue(value)
	return t
}

// SetValue replaces the displayed text.
func (t *Text) SetValue(value string) {
	t.Attrs().SetString("value", value)
}

// Value returns the displayed text.
func (t *Text) Value() string {
	return t.Attrs().String("value", "")
}

// SetSize sets the font size in logical pixels.
func (t *Text) SetSize(size float64) {
	t.Attrs().SetFloat("size", size)
}

// Size returns the font size, or false when the host's built-in size
// applies.
func (t *Text) Size() (float64, bool) {
	return t.Attrs().LookupFloat("size")
}

// SetColor sets the text color.
func (t *Text) SetColor(col graphics.Color) {
	t.Attrs().SetColor("color", col)
}

// Color returns the text color, or false when the host's built-in color
// applies.
func (t *Text) Color() (graphics.Color, bool) {
	return t.Attrs().LookupColor("color")
}

// ImageFit selects how an image is inscribed into its bounds.
type ImageFit string

const (
	FitContain ImageFit = "contain"
	FitCover   ImageFit = "cover"
	FitFill    ImageFit = "fill"
	FitNone    ImageFit = "none"
)

// Image displays a picture loaded by the host from a URL or asset path.
type Image struct {
	control.BaseControl
}

// NewImage creates an image control for the given source.
func NewImage(src string) *Image {
	img := &Image{BaseControl: control.NewBase("image")}
	img.SetSrc(src)
	return img
}

// SetSrc replaces the image source.
func (img *Image) SetSrc(src string) {
	img.Attrs().SetString("src", src)
}

// Src returns the image source.
func (img *Image) Src() string {
	return img.Attrs().String("src", "")
}

// SetFit sets how the image is inscribed into its bounds.
func (img *Image) SetFit(fit ImageFit) {
	img.Attrs().SetString("fit", string(fit))
}

// Fit returns how the image is inscribed into its bounds. Unknown stored
// values resolve to the default, FitContain.
func (img *Image) Fit() ImageFit {
	switch f := ImageFit(img.Attrs().Get("fit")); f {
	case FitContain, FitCover, FitFill, FitNone:
		return f
	}
	return FitContain
}

// SetOpacity sets the image opacity from 0 (transparent) to 1 (opaque).
func (img *Image) SetOpacity(opacity float64) {
	img.Attrs().SetFloat("opacity", opacity)
}

// Opacity returns the image opacity. Default 1.
func (img *Image) Opacity() float64 {
	return img.Attrs().Float("opacity", 1)
}
