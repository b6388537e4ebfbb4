package widgets

import (
	"math"
	"time"

	"github.com/jonboulle/clockwork"
)

const (
	// velocityWindow is how far back drag samples count towards the release speed
	velocityWindow = 100 * time.Millisecond

	// minFlingVelocity is the release speed in px/s below which a drag does not coast
	minFlingVelocity = 50.0

	// decelerationRate is the fraction of speed kept per millisecond while coasting
	decelerationRate = 0.998

	// stopVelocity ends a deceleration, in px/s
	stopVelocity = 10.0

	minDecelerationTime = 100 * time.Millisecond
	maxDecelerationTime = 2500 * time.Millisecond
)

type velocitySample struct {
	at    time.Time
	delta float64
}

// velocityTracker estimates the drag speed at release from recent samples.
type velocityTracker struct {
	clock   clockwork.Clock
	samples []velocitySample
}

func newVelocityTracker(clock clockwork.Clock) *velocityTracker {
	return &velocityTracker{clock: clock}
}

// Reset forgets all samples.
func (v *velocityTracker) Reset() {
	v.samples = v.samples[:0]
}

// Add records a content offset change.
func (v *velocityTracker) Add(delta float64) {
	now := v.clock.Now()
	v.samples = append(v.samples, velocitySample{at: now, delta: delta})
	v.prune(now)
}

// Velocity returns px/s over the samples inside the window.
// The first sample only marks the start time.
func (v *velocityTracker) Velocity() float64 {
	now := v.clock.Now()
	v.prune(now)
	if len(v.samples) < 2 {
		return 0
	}
	elapsed := now.Sub(v.samples[0].at).Seconds()
	if elapsed <= 0 {
		return 0
	}
	var distance float64
	for _, s := range v.samples[1:] {
		distance += s.delta
	}
	return distance / elapsed
}

func (v *velocityTracker) prune(now time.Time) {
	i := 0
	for i < len(v.samples) && now.Sub(v.samples[i].at) > velocityWindow {
		i++
	}
	v.samples = v.samples[i:]
}

// decelerationPlan returns how far and how long content released at
// velocity px/s coasts with exponential slowdown.
func decelerationPlan(velocity float64) (float64, time.Duration) {
	speed := math.Abs(velocity)
	if speed < stopVelocity {
		return 0, minDecelerationTime
	}
	k := -math.Log(decelerationRate) // per ms
	distance := velocity / 1000 / k
	ms := math.Log(speed/stopVelocity) / k

	duration := time.Duration(ms * float64(time.Millisecond))
	if duration < minDecelerationTime {
		duration = minDecelerationTime
	}
	if duration > maxDecelerationTime {
		duration = maxDecelerationTime
	}
	return distance, duration
}
