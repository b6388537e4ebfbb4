package dial

import (
	"log/slog"
)

// State is the scroll reconciliation state of the dial.
type State int

const (
	// StateIdle means nothing is moving the ruler
	StateIdle State = iota

	// StateUserDragging means the user holds the ruler
	StateUserDragging

	// StateUserDecelerating means the ruler coasts after a drag
	StateUserDecelerating

	// StateProgrammaticSeek means the dial itself scrolls to a known value.
	// Listener notification is suppressed in this state.
	StateProgrammaticSeek
)

// String returns a human-readable representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateUserDragging:
		return "user_dragging"
	case StateUserDecelerating:
		return "user_decelerating"
	case StateProgrammaticSeek:
		return "programmatic_seek"
	default:
		return "unknown"
	}
}

// userDriven reports whether the state was entered from a scroll gesture.
func (s State) userDriven() bool {
	return s == StateUserDragging || s == StateUserDecelerating
}

// OnDragStart is called by the host when the user starts dragging.
// A drag supersedes a running seek or deceleration.
func (d *Dial) OnDragStart() {
	if !d.scrollEnabled {
		return
	}
	d.setState(StateUserDragging)
}

// OnScroll is called by the host for every live content offset.
// During a gesture it only tracks the highlighted major tick; it never commits.
// The highlight is the major tick nearest the centre, so it flips halfway
// between labels (2.5 ticks either side) rather than at each label.
func (d *Dial) OnScroll(contentOffset float64) {
	if !d.state.userDriven() {
		return
	}
	major := d.Mapper().NearestMajor(contentOffset + d.geometry.LeadingInset)
	if major == d.highlight {
		return
	}
	d.highlight = major
	d.scheduleHighlight()
}

// OnDragEnd is called by the host when the finger lifts.
func (d *Dial) OnDragEnd(willDecelerate bool) {
	if d.state != StateUserDragging {
		return
	}
	if willDecelerate {
		d.setState(StateUserDecelerating)
		return
	}
	d.commit(d.host.ContentOffset())
}

// OnDecelerationEnd is called by the host when the ruler stops coasting.
func (d *Dial) OnDecelerationEnd() {
	if d.state != StateUserDecelerating {
		return
	}
	d.commit(d.host.ContentOffset())
}

// OnSeekEnd is called by the host when an animated SetContentOffset finishes.
func (d *Dial) OnSeekEnd() {
	if d.state != StateProgrammaticSeek {
		return
	}
	d.setState(StateIdle)
}

// Frame is called by the host once per display refresh after RequestFrame.
// Highlight changes reported between two frames collapse into one redraw.
func (d *Dial) Frame() {
	if !d.pendingHighlight {
		return
	}
	d.pendingHighlight = false
	d.stats.HighlightRedraws++
	d.host.RequestRedraw()
}

// commit finalises the frequency under contentOffset, snaps the ruler onto it
// and notifies the listener when the value changed.
func (d *Dial) commit(contentOffset float64) {
	value := d.Mapper().OffsetToFrequency(contentOffset + d.geometry.LeadingInset)
	changed := value != d.current
	d.current = value

	d.logger.Debug("frequency committed",
		slog.Float64("frequency", value),
		slog.Bool("changed", changed),
		slog.String("state", d.state.String()))

	d.setState(StateIdle)
	d.seek(true)
	if changed {
		d.notify()
	}
}

// seek scrolls the ruler to the current frequency with notification suppressed.
// A seek issued while another is running replaces it. While the user holds
// the ruler the scroll is left alone; the drag commit decides.
func (d *Dial) seek(animated bool) {
	if d.state == StateUserDragging {
		return
	}

	position := d.Mapper().FrequencyToOffset(d.current)
	if major := d.Mapper().NearestMajor(position); major != d.highlight {
		d.highlight = major
		d.scheduleHighlight()
	}

	d.setState(StateProgrammaticSeek)
	d.host.SetContentOffset(position-d.geometry.LeadingInset, animated)
	if !animated {
		d.setState(StateIdle)
	}
}

func (d *Dial) scheduleHighlight() {
	if d.pendingHighlight {
		return
	}
	d.pendingHighlight = true
	d.host.RequestFrame()
}

func (d *Dial) notify() {
	if d.listener == nil {
		return
	}
	d.stats.Notifications++
	d.listener.OnFrequencyChanged(d.current)
}

func (d *Dial) setState(s State) {
	if d.state == s {
		return
	}
	d.logger.Debug("dial state changed",
		slog.String("from", d.state.String()),
		slog.String("to", s.String()))
	d.state = s
}
