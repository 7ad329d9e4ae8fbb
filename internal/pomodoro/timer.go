// Package pomodoro implements the two-phase focus timer as a pure state
// machine. The machine never schedules anything itself: a driver (the
// TUI's one-second tick, or a test) calls Tick while the timer is
// running. Rewards for completed phases are the session orchestrator's
// job; the machine only reports which phase ended.
package pomodoro

// Phase is the current timer segment.
type Phase int

const (
	PhaseWork Phase = iota
	PhaseBreak
)

// String returns the display label for the phase.
func (p Phase) String() string {
	if p == PhaseBreak {
		return "BREAK"
	}
	return "FOCUS"
}

// Default durations in minutes.
const (
	DefaultWorkMinutes  = 25
	DefaultBreakMinutes = 5
)

// Preset is a named work/break configuration. Presets are
// configuration, not state.
type Preset struct {
	Name         string
	WorkMinutes  int
	BreakMinutes int
}

// Presets returns the selectable duration presets.
func Presets() []Preset {
	return []Preset{
		{Name: "Classic", WorkMinutes: 25, BreakMinutes: 5},
		{Name: "Extended", WorkMinutes: 50, BreakMinutes: 10},
		{Name: "Deep", WorkMinutes: 90, BreakMinutes: 20},
	}
}

// Timer is the countdown state machine. Zero value is not usable; use
// New or NewWith.
type Timer struct {
	phase     Phase
	running   bool
	remaining int // seconds left in the current phase
	total     int // seconds the current phase started from
	workSec   int
	breakSec  int
}

// New returns a paused work-phase timer with default durations.
func New() *Timer {
	return NewWith(DefaultWorkMinutes, DefaultBreakMinutes)
}

// NewWith returns a paused work-phase timer with the given durations in
// minutes. Non-positive durations fall back to the defaults.
func NewWith(workMinutes, breakMinutes int) *Timer {
	if workMinutes <= 0 {
		workMinutes = DefaultWorkMinutes
	}
	if breakMinutes <= 0 {
		breakMinutes = DefaultBreakMinutes
	}
	t := &Timer{
		workSec:  workMinutes * 60,
		breakSec: breakMinutes * 60,
	}
	t.Reset()
	return t
}

// Phase returns the current phase.
func (t *Timer) Phase() Phase { return t.phase }

// Running reports whether the countdown is active.
func (t *Timer) Running() bool { return t.running }

// Remaining returns the seconds left in the current phase.
func (t *Timer) Remaining() int { return t.remaining }

// Total returns the seconds the current phase started from.
func (t *Timer) Total() int { return t.total }

// WorkMinutes returns the configured work duration.
func (t *Timer) WorkMinutes() int { return t.workSec / 60 }

// BreakMinutes returns the configured break duration.
func (t *Timer) BreakMinutes() int { return t.breakSec / 60 }

// Start begins the countdown. No-op if already running.
func (t *Timer) Start() {
	t.running = true
}

// Pause stops the countdown, preserving the remaining time.
func (t *Timer) Pause() {
	t.running = false
}

// Reset forces the timer back to a paused, full-length work phase.
func (t *Timer) Reset() {
	t.running = false
	t.phase = PhaseWork
	t.remaining = t.workSec
	t.total = t.workSec
}

// Skip flips to the other phase immediately, paused at its full
// duration. Skipping never fires a phase completion, so it earns no
// reward; only a natural countdown to zero does.
func (t *Timer) Skip() {
	t.running = false
	t.flip()
}

// SetPreset reconfigures the durations and resets the timer.
func (t *Timer) SetPreset(workMinutes, breakMinutes int) {
	if workMinutes > 0 {
		t.workSec = workMinutes * 60
	}
	if breakMinutes > 0 {
		t.breakSec = breakMinutes * 60
	}
	t.Reset()
}

// Tick advances the countdown by one second. While paused it does
// nothing, so a stray tick scheduled before a pause cannot decrement a
// state that has moved on.
//
// When the countdown reaches zero the timer stops, the phase flips to
// the other segment at full duration, and Tick returns the phase that
// just ended with completed=true. The timer does not auto-continue; the
// caller decides when to start the next phase.
func (t *Timer) Tick() (ended Phase, completed bool) {
	if !t.running {
		return 0, false
	}
	t.remaining--
	if t.remaining > 0 {
		return 0, false
	}
	t.running = false
	ended = t.phase
	t.flip()
	return ended, true
}

// flip switches to the other phase at its configured full duration.
func (t *Timer) flip() {
	if t.phase == PhaseWork {
		t.phase = PhaseBreak
		t.remaining = t.breakSec
		t.total = t.breakSec
	} else {
		t.phase = PhaseWork
		t.remaining = t.workSec
		t.total = t.workSec
	}
}
