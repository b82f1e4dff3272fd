package carousel

import (
	"time"

	"github.com/go-drift/carousel/pkg/animation"
	"github.com/go-drift/carousel/pkg/graphics"
)

// Attribute keys understood by the host renderer. Keys are matched exactly;
// three of them predate the camelCase convention and must stay as-is:
// "enableindicator", "indicatorwidth" and "build_on_demand".
const (
	attrHeight                 = "height"
	attrAspectRatio            = "aspectRatio"
	attrViewportFraction       = "viewportFraction"
	attrInitialPage            = "initialPage"
	attrEnableInfiniteScroll   = "enableInfiniteScroll"
	attrDisableGesture         = "disableGesture"
	attrEnableIndicator        = "enableindicator"
	attrIndicatorWidth         = "indicatorwidth"
	attrIndicatorInactiveColor = "indicatorInactiveColor"
	attrIndicatorActiveColor   = "indicatorActiveColor"
	attrBuildOnDemand          = "build_on_demand"
	attrAnimateToClosest       = "animateToClosest"
	attrReverse                = "reverse"
	attrAutoPlay               = "autoPlay"
	attrAutoPlayInterval       = "autoPlayInterval"
	attrAutoPlayDuration       = "autoPlayAnimationDuration"
	attrAutoPlayCurve          = "autoPlayCurve"
	attrEnlargeCenterPage      = "enlargeCenterPage"
	attrEnlargeStrategy        = "enlargeStrategy"
	attrEnlargeFactor          = "enlargeFactor"
	attrPageSnapping           = "pageSnapping"
	attrScrollDirection        = "scrollDirection"
	attrPauseOnTouch           = "pauseAutoPlayOnTouch"
	attrPauseOnManualNavigate  = "pauseAutoPlayOnManualNavigate"
	attrPauseInFiniteScroll    = "pauseAutoPlayInFiniteScroll"
	attrDisableCenter          = "disableCenter"
	attrPadEnds                = "padEnds"
	attrClipBehavior           = "clipBehavior"
)

// Default values the host applies when an option is absent.
const (
	DefaultAspectRatio      = 16.0 / 9.0
	DefaultViewportFraction = 0.8
	DefaultEnlargeFactor    = 0.3
	DefaultAutoPlayInterval = 4 * time.Second
	DefaultAutoPlayDuration = 800 * time.Millisecond
	DefaultAnimateDuration  = 800 * time.Millisecond
	DefaultSlideDuration    = 300 * time.Millisecond
)

// Direction selects the carousel's scroll axis.
type Direction string

const (
	DirectionHorizontal Direction = "horizontal"
	DirectionVertical   Direction = "vertical"
)

// EnlargeStrategy selects how the center page is emphasized when
// enlargement is enabled.
type EnlargeStrategy string

const (
	// EnlargeScale scales the whole center page up.
	EnlargeScale EnlargeStrategy = "scale"

	// EnlargeHeight grows the center page along the cross axis only.
	EnlargeHeight EnlargeStrategy = "height"

	// EnlargeZoom zooms into the center page without changing its bounds.
	EnlargeZoom EnlargeStrategy = "zoom"
)

// ClipBehavior selects how page content is clipped to its bounds.
type ClipBehavior string

const (
	ClipNone                   ClipBehavior = "none"
	ClipHardEdge               ClipBehavior = "hardEdge"
	ClipAntiAlias              ClipBehavior = "antiAlias"
	ClipAntiAliasWithSaveLayer ClipBehavior = "antiAliasWithSaveLayer"
)

// SetHeight fixes the carousel height in logical pixels. While set, the
// aspect ratio is ignored.
func (c *Carousel) SetHeight(h float64) {
	c.Attrs().SetFloat(attrHeight, h)
}

// ClearHeight removes the fixed height so the aspect ratio applies again.
func (c *Carousel) ClearHeight() {
	c.Attrs().Remove(attrHeight)
}

// Height returns the fixed height, or false when the carousel sizes itself
// by aspect ratio.
func (c *Carousel) Height() (float64, bool) {
	return c.Attrs().LookupFloat(attrHeight)
}

// SetAspectRatio sets the width-to-height ratio used when no fixed height
// is set.
func (c *Carousel) SetAspectRatio(ratio float64) {
	c.Attrs().SetFloat(attrAspectRatio, ratio)
}

// AspectRatio returns the width-to-height ratio. Default 16:9.
func (c *Carousel) AspectRatio() float64 {
	return c.Attrs().Float(attrAspectRatio, DefaultAspectRatio)
}

// SetViewportFraction sets the fraction of the viewport each page occupies.
func (c *Carousel) SetViewportFraction(f float64) {
	c.Attrs().SetFloat(attrViewportFraction, f)
}

// ViewportFraction returns the fraction of the viewport each page occupies.
// Default 0.8.
func (c *Carousel) ViewportFraction() float64 {
	return c.Attrs().Float(attrViewportFraction, DefaultViewportFraction)
}

// SetInitialPage sets the page shown when the carousel first appears.
func (c *Carousel) SetInitialPage(index int) {
	c.Attrs().SetInt(attrInitialPage, index)
}

// InitialPage returns the page shown when the carousel first appears.
// Default 0.
func (c *Carousel) InitialPage() int {
	return c.Attrs().Int(attrInitialPage, 0)
}

// SetEnableInfiniteScroll toggles wrap-around paging.
func (c *Carousel) SetEnableInfiniteScroll(on bool) {
	c.Attrs().SetBool(attrEnableInfiniteScroll, on)
}

// EnableInfiniteScroll reports whether paging wraps around. Default true.
func (c *Carousel) EnableInfiniteScroll() bool {
	return c.Attrs().Bool(attrEnableInfiniteScroll, true)
}

// SetDisableGesture toggles suppression of user swipe gestures.
func (c *Carousel) SetDisableGesture(on bool) {
	c.Attrs().SetBool(attrDisableGesture, on)
}

// DisableGesture reports whether user swipe gestures are suppressed.
// Default false.
func (c *Carousel) DisableGesture() bool {
	return c.Attrs().Bool(attrDisableGesture, false)
}

// SetEnableIndicator toggles the page indicator dots.
func (c *Carousel) SetEnableIndicator(on bool) {
	c.Attrs().SetBool(attrEnableIndicator, on)
}

// EnableIndicator reports whether the page indicator dots are shown.
// Default true.
func (c *Carousel) EnableIndicator() bool {
	return c.Attrs().Bool(attrEnableIndicator, true)
}

// SetIndicatorWidth sets the indicator dot size in logical pixels.
func (c *Carousel) SetIndicatorWidth(w int) {
	c.Attrs().SetInt(attrIndicatorWidth, w)
}

// ClearIndicatorWidth restores the host's built-in dot size.
func (c *Carousel) ClearIndicatorWidth() {
	c.Attrs().Remove(attrIndicatorWidth)
}

// IndicatorWidth returns the indicator dot size, or false when the host's
// built-in size applies.
func (c *Carousel) IndicatorWidth() (int, bool) {
	return c.Attrs().LookupInt(attrIndicatorWidth)
}

// SetIndicatorInactiveColor sets the color of dots for pages not in view.
func (c *Carousel) SetIndicatorInactiveColor(col graphics.Color) {
	c.Attrs().SetColor(attrIndicatorInactiveColor, col)
}

// ClearIndicatorInactiveColor restores the host's built-in inactive color.
func (c *Carousel) ClearIndicatorInactiveColor() {
	c.Attrs().Remove(attrIndicatorInactiveColor)
}

// IndicatorInactiveColor returns the inactive dot color, or false when the
// host's built-in color applies.
func (c *Carousel) IndicatorInactiveColor() (graphics.Color, bool) {
	return c.Attrs().LookupColor(attrIndicatorInactiveColor)
}

// SetIndicatorActiveColor sets the color of the dot for the page in view.
func (c *Carousel) SetIndicatorActiveColor(col graphics.Color) {
	c.Attrs().SetColor(attrIndicatorActiveColor, col)
}

// ClearIndicatorActiveColor restores the host's built-in active color.
func (c *Carousel) ClearIndicatorActiveColor() {
	c.Attrs().Remove(attrIndicatorActiveColor)
}

// IndicatorActiveColor returns the active dot color, or false when the
// host's built-in color applies.
func (c *Carousel) IndicatorActiveColor() (graphics.Color, bool) {
	return c.Attrs().LookupColor(attrIndicatorActiveColor)
}

// SetBuildOnDemand toggles lazy page construction on the host.
func (c *Carousel) SetBuildOnDemand(on bool) {
	c.Attrs().SetBool(attrBuildOnDemand, on)
}

// BuildOnDemand reports whether the host builds pages lazily. Default false.
func (c *Carousel) BuildOnDemand() bool {
	return c.Attrs().Bool(attrBuildOnDemand, false)
}

// SetAnimateToClosest controls which copy of a page an animate command
// targets under infinite scroll: the closest one, or the one in the
// current loop.
func (c *Carousel) SetAnimateToClosest(on bool) {
	c.Attrs().SetBool(attrAnimateToClosest, on)
}

// AnimateToClosest reports whether animate commands target the closest copy
// of the destination page. Default true.
func (c *Carousel) AnimateToClosest() bool {
	return c.Attrs().Bool(attrAnimateToClosest, true)
}

// SetReverse toggles reversed page order.
func (c *Carousel) SetReverse(on bool) {
	c.Attrs().SetBool(attrReverse, on)
}

// Reverse reports whether pages are laid out in reverse order.
// Default false.
func (c *Carousel) Reverse() bool {
	return c.Attrs().Bool(attrReverse, false)
}

// SetAutoPlay toggles the auto-play timer.
func (c *Carousel) SetAutoPlay(on bool) {
	c.Attrs().SetBool(attrAutoPlay, on)
}

// AutoPlay reports whether the carousel advances on a timer. Default false.
func (c *Carousel) AutoPlay() bool {
	return c.Attrs().Bool(attrAutoPlay, false)
}

// SetAutoPlayInterval sets the pause between auto-play advances. The value
// is stored with millisecond precision.
func (c *Carousel) SetAutoPlayInterval(d time.Duration) {
	c.Attrs().SetInt(attrAutoPlayInterval, int(d.Milliseconds()))
}

// AutoPlayInterval returns the pause between auto-play advances.
// Default 4s.
func (c *Carousel) AutoPlayInterval() time.Duration {
	ms := c.Attrs().Int(attrAutoPlayInterval, int(DefaultAutoPlayInterval.Milliseconds()))
	return time.Duration(ms) * time.Millisecond
}

// SetAutoPlayAnimationDuration sets how long each auto-play transition
// animates. The value is stored with millisecond precision.
func (c *Carousel) SetAutoPlayAnimationDuration(d time.Duration) {
	c.Attrs().SetInt(attrAutoPlayDuration, int(d.Milliseconds()))
}

// AutoPlayAnimationDuration returns how long each auto-play transition
// animates. Default 800ms.
func (c *Carousel) AutoPlayAnimationDuration() time.Duration {
	ms := c.Attrs().Int(attrAutoPlayDuration, int(DefaultAutoPlayDuration.Milliseconds()))
	return time.Duration(ms) * time.Millisecond
}

// SetAutoPlayCurve sets the easing curve for auto-play transitions. The
// zero Curve selects the default.
func (c *Carousel) SetAutoPlayCurve(curve animation.Curve) {
	c.Attrs().SetString(attrAutoPlayCurve, curveNameOr(curve))
}

// AutoPlayCurve returns the easing curve for auto-play transitions.
// Default FastOutSlowIn.
func (c *Carousel) AutoPlayCurve() animation.Curve {
	return animation.CurveByName(c.Attrs().Get(attrAutoPlayCurve))
}

// SetEnlargeCenterPage toggles emphasis of the center page.
func (c *Carousel) SetEnlargeCenterPage(on bool) {
	c.Attrs().SetBool(attrEnlargeCenterPage, on)
}

// EnlargeCenterPage reports whether the center page is emphasized.
// Default false.
func (c *Carousel) EnlargeCenterPage() bool {
	return c.Attrs().Bool(attrEnlargeCenterPage, false)
}

// SetEnlargeStrategy sets how the center page is emphasized.
func (c *Carousel) SetEnlargeStrategy(s EnlargeStrategy) {
	c.Attrs().SetString(attrEnlargeStrategy, string(s))
}

// EnlargeStrategy returns how the center page is emphasized. Unknown stored
// values resolve to the default, EnlargeScale.
func (c *Carousel) EnlargeStrategy() EnlargeStrategy {
	switch s := EnlargeStrategy(c.Attrs().Get(attrEnlargeStrategy)); s {
	case EnlargeScale, EnlargeHeight, EnlargeZoom:
		return s
	}
	return EnlargeScale
}

// SetEnlargeFactor sets how strongly the center page is emphasized.
func (c *Carousel) SetEnlargeFactor(f float64) {
	c.Attrs().SetFloat(attrEnlargeFactor, f)
}

// EnlargeFactor returns how strongly the center page is emphasized.
// Default 0.3.
func (c *Carousel) EnlargeFactor() float64 {
	return c.Attrs().Float(attrEnlargeFactor, DefaultEnlargeFactor)
}

// SetPageSnapping toggles snapping to page boundaries after a scroll.
func (c *Carousel) SetPageSnapping(on bool) {
	c.Attrs().SetBool(attrPageSnapping, on)
}

// PageSnapping reports whether scrolling snaps to page boundaries.
// Default true.
func (c *Carousel) PageSnapping() bool {
	return c.Attrs().Bool(attrPageSnapping, true)
}

// SetScrollDirection sets the scroll axis.
func (c *Carousel) SetScrollDirection(d Direction) {
	c.Attrs().SetString(attrScrollDirection, string(d))
}

// ScrollDirection returns the scroll axis. Unknown stored values resolve to
// the default, DirectionHorizontal.
func (c *Carousel) ScrollDirection() Direction {
	switch d := Direction(c.Attrs().Get(attrScrollDirection)); d {
	case DirectionHorizontal, DirectionVertical:
		return d
	}
	return DirectionHorizontal
}

// SetPauseAutoPlayOnTouch toggles pausing auto-play while the user touches
// the carousel.
func (c *Carousel) SetPauseAutoPlayOnTouch(on bool) {
	c.Attrs().SetBool(attrPauseOnTouch, on)
}

// PauseAutoPlayOnTouch reports whether auto-play pauses during touch.
// Default true.
func (c *Carousel) PauseAutoPlayOnTouch() bool {
	return c.Attrs().Bool(attrPauseOnTouch, true)
}

// SetPauseAutoPlayOnManualNavigate toggles pausing auto-play after a manual
// page change.
func (c *Carousel) SetPauseAutoPlayOnManualNavigate(on bool) {
	c.Attrs().SetBool(attrPauseOnManualNavigate, on)
}

// PauseAutoPlayOnManualNavigate reports whether auto-play pauses after a
// manual page change. Default true.
func (c *Carousel) PauseAutoPlayOnManualNavigate() bool {
	return c.Attrs().Bool(attrPauseOnManualNavigate, true)
}

// SetPauseAutoPlayInFiniteScroll toggles stopping auto-play at the last
// page when infinite scroll is off.
func (c *Carousel) SetPauseAutoPlayInFiniteScroll(on bool) {
	c.Attrs().SetBool(attrPauseInFiniteScroll, on)
}

// PauseAutoPlayInFiniteScroll reports whether auto-play stops at the last
// page when infinite scroll is off. Default false.
func (c *Carousel) PauseAutoPlayInFiniteScroll() bool {
	return c.Attrs().Bool(attrPauseInFiniteScroll, false)
}

// SetDisableCenter toggles the layout tweak that skips centering the
// current page.
func (c *Carousel) SetDisableCenter(on bool) {
	c.Attrs().SetBool(attrDisableCenter, on)
}

// DisableCenter reports whether centering of the current page is skipped.
// Default false.
func (c *Carousel) DisableCenter() bool {
	return c.Attrs().Bool(attrDisableCenter, false)
}

// SetPadEnds toggles padding before the first and after the last page in
// finite mode.
func (c *Carousel) SetPadEnds(on bool) {
	c.Attrs().SetBool(attrPadEnds, on)
}

// PadEnds reports whether the first and last pages are padded so they can
// center. Default true.
func (c *Carousel) PadEnds() bool {
	return c.Attrs().Bool(attrPadEnds, true)
}

// SetClipBehavior sets how page content is clipped.
func (c *Carousel) SetClipBehavior(b ClipBehavior) {
	c.Attrs().SetString(attrClipBehavior, string(b))
}

// ClipBehavior returns how page content is clipped. Unknown stored values
// resolve to the default, ClipHardEdge.
func (c *Carousel) ClipBehavior() ClipBehavior {
	switch b := ClipBehavior(c.Attrs().Get(attrClipBehavior)); b {
	case ClipNone, ClipHardEdge, ClipAntiAlias, ClipAntiAliasWithSaveLayer:
		return b
	}
	return ClipHardEdge
}

// OptionSpec describes one carousel option for documentation and host
// tooling.
type OptionSpec struct {
	// Name is the Go accessor name without the Set prefix.
	Name string

	// Key is the attribute key on the wire.
	Key string

	// Type is the wire value type.
	Type string

	// Default is the value the host applies when the attribute is absent,
	// as shown in documentation.
	Default string

	// Enum lists the permitted identifiers for enumerated options.
	Enum []string

	// Doc is a one-line description.
	Doc string
}

// Options returns the option metadata in documentation order. The table
// backs the generated attribute reference and the simulator's settings
// view.
func Options() []OptionSpec {
	return []OptionSpec{
		{Name: "Height", Key: attrHeight, Type: "float", Default: "none", Doc: "Fixed height in logical pixels. While set, the aspect ratio is ignored."},
		{Name: "AspectRatio", Key: attrAspectRatio, Type: "float", Default: "16/9", Doc: "Width-to-height ratio used when no fixed height is set."},
		{Name: "ViewportFraction", Key: attrViewportFraction, Type: "float", Default: "0.8", Doc: "Fraction of the viewport each page occupies."},
		{Name: "InitialPage", Key: attrInitialPage, Type: "int", Default: "0", Doc: "Page shown when the carousel first appears."},
		{Name: "EnableInfiniteScroll", Key: attrEnableInfiniteScroll, Type: "bool", Default: "true", Doc: "Wrap from the last page back to the first."},
		{Name: "DisableGesture", Key: attrDisableGesture, Type: "bool", Default: "false", Doc: "Suppress user swipe gestures."},
		{Name: "EnableIndicator", Key: attrEnableIndicator, Type: "bool", Default: "true", Doc: "Show the page indicator dots."},
		{Name: "IndicatorWidth", Key: attrIndicatorWidth, Type: "int", Default: "none", Doc: "Indicator dot size in logical pixels."},
		{Name: "IndicatorInactiveColor", Key: attrIndicatorInactiveColor, Type: "color", Default: "none", Doc: "Color of dots for pages not in view."},
		{Name: "IndicatorActiveColor", Key: attrIndicatorActiveColor, Type: "color", Default: "none", Doc: "Color of the dot for the page in view."},
		{Name: "BuildOnDemand", Key: attrBuildOnDemand, Type: "bool", Default: "false", Doc: "Build pages lazily as they scroll into view."},
		{Name: "AnimateToClosest", Key: attrAnimateToClosest, Type: "bool", Default: "true", Doc: "Animate to the closest copy of the destination page under infinite scroll."},
		{Name: "Reverse", Key: attrReverse, Type: "bool", Default: "false", Doc: "Lay pages out in reverse order."},
		{Name: "AutoPlay", Key: attrAutoPlay, Type: "bool", Default: "false", Doc: "Advance pages on a timer."},
		{Name: "AutoPlayInterval", Key: attrAutoPlayInterval, Type: "int (ms)", Default: "4000", Doc: "Pause between auto-play advances."},
		{Name: "AutoPlayAnimationDuration", Key: attrAutoPlayDuration, Type: "int (ms)", Default: "800", Doc: "Length of each auto-play transition."},
		{Name: "AutoPlayCurve", Key: attrAutoPlayCurve, Type: "enum", Default: "fastOutSlowIn", Enum: animation.CurveNames(), Doc: "Easing curve for auto-play transitions."},
		{Name: "EnlargeCenterPage", Key: attrEnlargeCenterPage, Type: "bool", Default: "false", Doc: "Emphasize the center page."},
		{Name: "EnlargeStrategy", Key: attrEnlargeStrategy, Type: "enum", Default: "scale", Enum: []string{"scale", "height", "zoom"}, Doc: "How the center page is emphasized."},
		{Name: "EnlargeFactor", Key: attrEnlargeFactor, Type: "float", Default: "0.3", Doc: "How strongly the center page is emphasized."},
		{Name: "PageSnapping", Key: attrPageSnapping, Type: "bool", Default: "true", Doc: "Snap to page boundaries after a scroll."},
		{Name: "ScrollDirection", Key: attrScrollDirection, Type: "enum", Default: "horizontal", Enum: []string{"horizontal", "vertical"}, Doc: "Scroll axis."},
		{Name: "PauseAutoPlayOnTouch", Key: attrPauseOnTouch, Type: "bool", Default: "true", Doc: "Pause auto-play while the user touches the carousel."},
		{Name: "PauseAutoPlayOnManualNavigate", Key: attrPauseOnManualNavigate, Type: "bool", Default: "true", Doc: "Pause auto-play after a manual page change."},
		{Name: "PauseAutoPlayInFiniteScroll", Key: attrPauseInFiniteScroll, Type: "bool", Default: "false", Doc: "Stop auto-play at the last page when infinite scroll is off."},
		{Name: "DisableCenter", Key: attrDisableCenter, Type: "bool", Default: "false", Doc: "Skip centering the current page."},
		{Name: "PadEnds", Key: attrPadEnds, Type: "bool", Default: "true", Doc: "Pad the ends so the first and last pages can center."},
		{Name: "ClipBehavior", Key: attrClipBehavior, Type: "enum", Default: "hardEdge", Enum: []string{"none", "hardEdge", "antiAlias", "antiAliasWithSaveLayer"}, Doc: "How page content is clipped to its bounds."},
	}
}
