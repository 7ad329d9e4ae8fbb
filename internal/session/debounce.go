package session

import (
	"sync"
	"time"

	"github.com/studyos/studyos/internal/progress"
)

// profileSaver coalesces bursts of profile mutations into a single
// write. Every Arm replaces the pending snapshot and restarts the
// delay; the write fires once the session has been quiet for the full
// window. fire runs on a timer goroutine, so the saver holds a clone
// rather than the live profile.
type profileSaver struct {
	mu      sync.Mutex
	delay   time.Duration
	timer   *time.Timer
	pending *progress.Profile
	save    func(*progress.Profile)
}

func newProfileSaver(delay time.Duration, save func(*progress.Profile)) *profileSaver {
	return &profileSaver{delay: delay, save: save}
}

// Arm schedules a save of p after the debounce window. A pending save
// is replaced, not queued.
func (w *profileSaver) Arm(p *progress.Profile) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.pending = p.Clone()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.delay, w.fire)
}

func (w *profileSaver) fire() {
	w.mu.Lock()
	p := w.pending
	w.pending = nil
	w.mu.Unlock()
	if p != nil {
		w.save(p)
	}
}

// Flush writes any pending snapshot immediately and cancels the timer.
// Safe to call with nothing pending.
func (w *profileSaver) Flush() {
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	p := w.pending
	w.pending = nil
	w.mu.Unlock()
	if p != nil {
		w.save(p)
	}
}
