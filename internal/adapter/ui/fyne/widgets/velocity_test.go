package widgets

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/tejashwikalptaru/radiodial/internal/testutil"
)

func TestVelocityTracker(t *testing.T) {
	defer testutil.VerifyNoFyneLeaks(t)()

	clock := clockwork.NewFakeClock()
	v := newVelocityTracker(clock)
	assert.Zero(t, v.Velocity(), "no samples")

	v.Add(5)
	assert.Zero(t, v.Velocity(), "one sample only marks the start")

	clock.Advance(10 * time.Millisecond)
	v.Add(10)
	clock.Advance(10 * time.Millisecond)
	v.Add(10)
	assert.InDelta(t, 1000, v.Velocity(), 1e-6)

	clock.Advance(200 * time.Millisecond)
	assert.Zero(t, v.Velocity(), "samples outside the window are dropped")
}

func TestVelocityTracker_Negative(t *testing.T) {
	clock := clockwork.NewFakeClock()
	v := newVelocityTracker(clock)

	v.Add(-3)
	clock.Advance(50 * time.Millisecond)
	v.Add(-25)

	assert.InDelta(t, -500, v.Velocity(), 1e-6)

	v.Reset()
	assert.Zero(t, v.Velocity())
}

func TestDecelerationPlan(t *testing.T) {
	distance, duration := decelerationPlan(0)
	assert.Zero(t, distance)
	assert.Equal(t, minDecelerationTime, duration)

	distance, duration = decelerationPlan(1000)
	assert.InDelta(t, 499.5, distance, 0.1)
	assert.Greater(t, duration, minDecelerationTime)
	assert.LessOrEqual(t, duration, maxDecelerationTime)

	back, _ := decelerationPlan(-1000)
	assert.InDelta(t, -distance, back, 1e-9)

	_, duration = decelerationPlan(1e9)
	assert.Equal(t, maxDecelerationTime, duration)
}
