package simhost

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/carousel/pkg/animation"
	"github.com/go-drift/carousel/pkg/carousel"
	"github.com/go-drift/carousel/pkg/control"
	"github.com/go-drift/carousel/pkg/controls"
	"github.com/go-drift/carousel/pkg/host"
)

func setupSim(t *testing.T) (*Host, *host.Session, *carousel.Carousel) {
	t.Helper()

	sim := New(host.JSONCodec{})
	session := host.NewSession(sim)
	host.RegisterDispatch(func(cb func()) { cb() })
	t.Cleanup(host.ResetForTest)
	require.NoError(t, session.Start())

	car := carousel.New(
		controls.NewText("one"),
		controls.NewText("two"),
		controls.NewText("three"),
	)
	require.NoError(t, session.Attach(car))
	return sim, session, car
}

func TestRegisterTracksCarousel(t *testing.T) {
	sim, _, _ := setupSim(t)

	st := sim.Snapshot()
	assert.True(t, st.Attached)
	assert.Equal(t, 0, st.CurrentPage)
	require.Len(t, st.Pages, 3)
	assert.Equal(t, "one", st.Pages[0].Label)
}

func TestJumpFiresControllerChange(t *testing.T) {
	sim, _, car := setupSim(t)

	var got []carousel.ChangeEvent
	car.OnChange = func(ev carousel.ChangeEvent) { got = append(got, ev) }

	require.NoError(t, car.JumpToPage(2))
	sim.Step(time.Now())

	require.Len(t, got, 1)
	assert.Equal(t, carousel.ChangeEvent{Index: 2, Reason: carousel.ReasonController}, got[0])
	assert.Equal(t, 2, sim.Snapshot().CurrentPage)
}

func TestAnimateEmitsScrolledThenChange(t *testing.T) {
	sim, _, car := setupSim(t)

	var scrolled []carousel.ScrolledEvent
	var changed []carousel.ChangeEvent
	car.OnScrolled = func(ev carousel.ScrolledEvent) { scrolled = append(scrolled, ev) }
	car.OnChange = func(ev carousel.ChangeEvent) { changed = append(changed, ev) }

	start := time.Now()
	require.NoError(t, car.AnimateToPage(1, 200*time.Millisecond, animation.EaseIn))

	sim.Step(start)                             // starts the slide
	sim.Step(start.Add(100 * time.Millisecond)) // midway
	sim.Step(start.Add(250 * time.Millisecond)) // past the end

	require.NotEmpty(t, scrolled)
	assert.Greater(t, scrolled[0].Offset, 0.0)
	assert.Equal(t, 1.0, scrolled[len(scrolled)-1].Offset)
	require.Len(t, changed, 1)
	assert.Equal(t, carousel.ChangeEvent{Index: 1, Reason: carousel.ReasonController}, changed[0])
}

func TestRepeatedCommandsEachRun(t *testing.T) {
	sim, _, car := setupSim(t)

	var changed []carousel.ChangeEvent
	car.OnChange = func(ev carousel.ChangeEvent) { changed = append(changed, ev) }

	require.NoError(t, car.JumpToPage(1))
	sim.Step(time.Now())
	require.NoError(t, car.JumpToPage(1))
	sim.Step(time.Now())

	// Identical arguments, but the token makes each command distinct.
	assert.Len(t, changed, 2)
}

func TestFiniteScrollClampsTarget(t *testing.T) {
	sim, _, car := setupSim(t)

	car.SetEnableInfiniteScroll(false)
	require.NoError(t, car.Update())
	require.NoError(t, car.JumpToPage(99))
	sim.Step(time.Now())

	assert.Equal(t, 2, sim.Snapshot().CurrentPage)
}

func TestAutoPlayAdvancesWithTimedReason(t *testing.T) {
	sim, _, car := setupSim(t)

	var changed []carousel.ChangeEvent
	car.OnChange = func(ev carousel.ChangeEvent) { changed = append(changed, ev) }

	car.SetAutoPlay(true)
	car.SetAutoPlayInterval(100 * time.Millisecond)
	car.SetAutoPlayAnimationDuration(50 * time.Millisecond)
	require.NoError(t, car.Update())

	start := time.Now()
	sim.Step(start) // arms the timer
	sim.Step(start.Add(120 * time.Millisecond))
	sim.Step(start.Add(200 * time.Millisecond))

	require.NotEmpty(t, changed)
	assert.Equal(t, carousel.ChangeEvent{Index: 1, Reason: carousel.ReasonTimed}, changed[0])
}

func TestSwipeHonorsDisableGesture(t *testing.T) {
	sim, _, car := setupSim(t)

	car.SetDisableGesture(true)
	require.NoError(t, car.Update())

	now := time.Now()
	sim.Swipe(1, now)
	sim.Step(now.Add(time.Second))

	assert.Equal(t, 0, sim.Snapshot().CurrentPage)
}

func TestSwipeFiresManualChange(t *testing.T) {
	sim, _, car := setupSim(t)

	var changed []carousel.ChangeEvent
	car.OnChange = func(ev carousel.ChangeEvent) { changed = append(changed, ev) }

	now := time.Now()
	sim.Swipe(1, now)
	sim.Step(now.Add(time.Second))

	require.Len(t, changed, 1)
	assert.Equal(t, carousel.ChangeEvent{Index: 1, Reason: carousel.ReasonManual}, changed[0])
}

func TestInfiniteScrollWrapsBackward(t *testing.T) {
	sim, _, _ := setupSim(t)

	now := time.Now()
	sim.Swipe(-1, now)
	sim.Step(now.Add(time.Second))

	st := sim.Snapshot()
	assert.Equal(t, 2, st.CurrentPage)
	assert.Equal(t, -1.0, st.Position)
}

func TestDetachStopsSimulation(t *testing.T) {
	sim, session, car := setupSim(t)

	require.NoError(t, session.Detach(car))
	sim.Step(time.Now())

	assert.False(t, sim.Snapshot().Attached)
	assert.ErrorIs(t, car.JumpToPage(1), control.ErrDetached)
}
