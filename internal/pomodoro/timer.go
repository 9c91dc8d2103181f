// Package pomodoro implements the focus session countdown: alternating
// study and break phases driven by a one-second tick. The timer is a
// plain state machine with no goroutines; the TUI owns the tick cadence.
package pomodoro

import "fmt"

// Phase identifies which half of the study/break cycle is counting down.
type Phase string

const (
	// PhaseStudy is the focused work phase.
	PhaseStudy Phase = "study"
	// PhaseBreak is the rest phase.
	PhaseBreak Phase = "break"
)

// String returns the phase name.
func (p Phase) String() string {
	return string(p)
}

// Default phase lengths in minutes.
const (
	DefaultStudyMinutes = 25
	DefaultBreakMinutes = 5
)

// TickResult reports what a tick did.
type TickResult struct {
	// PhaseCompleted is set when the countdown hit zero on this tick.
	// It carries the phase that just finished; the timer has already
	// switched to the other phase and restored its full duration.
	PhaseCompleted Phase
	// Completed is true when PhaseCompleted is meaningful.
	Completed bool
}

// Timer is the study/break countdown state machine.
// Duration changes are staged: they take effect at the next reset or
// phase switch, never mid-countdown.
type Timer struct {
	phase   Phase
	minutes int
	seconds int
	running bool

	studyMinutes int
	breakMinutes int
}

// New creates a stopped timer at the start of a full study phase.
// Non-positive durations fall back to the defaults.
func New(studyMinutes, breakMinutes int) *Timer {
	if studyMinutes <= 0 {
		studyMinutes = DefaultStudyMinutes
	}
	if breakMinutes <= 0 {
		breakMinutes = DefaultBreakMinutes
	}
	return &Timer{
		phase:        PhaseStudy,
		minutes:      studyMinutes,
		seconds:      0,
		studyMinutes: studyMinutes,
		breakMinutes: breakMinutes,
	}
}

// Phase returns the current phase.
func (t *Timer) Phase() Phase {
	return t.phase
}

// Running reports whether the countdown is live.
func (t *Timer) Running() bool {
	return t.running
}

// Remaining returns the minutes and seconds left in the current phase.
func (t *Timer) Remaining() (minutes, seconds int) {
	return t.minutes, t.seconds
}

// Display formats the remaining time as MM:SS.
func (t *Timer) Display() string {
	return fmt.Sprintf("%02d:%02d", t.minutes, t.seconds)
}

// Start begins the countdown. Starting an already-running timer is a no-op.
func (t *Timer) Start() {
	t.running = true
}

// Pause freezes the countdown in place.
func (t *Timer) Pause() {
	t.running = false
}

// Resume continues a paused countdown.
func (t *Timer) Resume() {
	t.running = true
}

// Reset stops the countdown and restores the current phase's configured
// duration. Staged duration changes take effect here.
func (t *Timer) Reset() {
	t.running = false
	t.minutes = t.phaseDuration(t.phase)
	t.seconds = 0
}

// ResetToStudy stops the countdown and returns to the start of a full
// study phase, whatever phase the timer was left in. Staged duration
// changes take effect here.
func (t *Timer) ResetToStudy() {
	t.running = false
	t.phase = PhaseStudy
	t.minutes = t.studyMinutes
	t.seconds = 0
}

// SetDurations stages new phase lengths in minutes. The live countdown
// is untouched; the new values apply at the next reset or phase switch.
// Non-positive values leave the corresponding duration unchanged.
func (t *Timer) SetDurations(studyMinutes, breakMinutes int) {
	if studyMinutes > 0 {
		t.studyMinutes = studyMinutes
	}
	if breakMinutes > 0 {
		t.breakMinutes = breakMinutes
	}
}

// StudyMinutes returns the configured study phase length.
func (t *Timer) StudyMinutes() int {
	return t.studyMinutes
}

// BreakMinutes returns the configured break phase length.
func (t *Timer) BreakMinutes() int {
	return t.breakMinutes
}

// Tick advances the countdown by one second. When the countdown reaches
// zero the timer switches phases, restores the incoming phase's full
// duration and keeps running; the result carries the finished phase so
// the caller can announce it.
func (t *Timer) Tick() TickResult {
	if !t.running {
		return TickResult{}
	}

	if t.seconds > 0 {
		t.seconds--
	} else if t.minutes > 0 {
		t.minutes--
		t.seconds = 59
	}

	if t.minutes == 0 && t.seconds == 0 {
		completed := t.phase
		t.phase = t.otherPhase()
		t.minutes = t.phaseDuration(t.phase)
		t.seconds = 0
		return TickResult{PhaseCompleted: completed, Completed: true}
	}

	return TickResult{}
}

func (t *Timer) otherPhase() Phase {
	if t.phase == PhaseStudy {
		return PhaseBreak
	}
	return PhaseStudy
}

func (t *Timer) phaseDuration(p Phase) int {
	if p == PhaseStudy {
		return t.studyMinutes
	}
	return t.breakMinutes
}
