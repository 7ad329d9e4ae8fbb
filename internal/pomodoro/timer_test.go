package pomodoro

import "testing"

func TestNew_InitialState(t *testing.T) {
	tm := New()

	if tm.Phase() != PhaseWork {
		t.Errorf("phase = %v, want work", tm.Phase())
	}
	if tm.Running() {
		t.Error("new timer should be paused")
	}
	if tm.Remaining() != 25*60 || tm.Total() != 25*60 {
		t.Errorf("remaining/total = %d/%d, want 1500/1500", tm.Remaining(), tm.Total())
	}
}

func TestTick_PausedIsNoop(t *testing.T) {
	tm := New()

	_, completed := tm.Tick()

	if completed {
		t.Error("paused tick reported completion")
	}
	if tm.Remaining() != 25*60 {
		t.Errorf("remaining = %d, want unchanged 1500", tm.Remaining())
	}
}

func TestTick_Countdown(t *testing.T) {
	tm := New()
	tm.Start()

	tm.Tick()
	tm.Tick()

	if tm.Remaining() != 25*60-2 {
		t.Errorf("remaining = %d, want %d", tm.Remaining(), 25*60-2)
	}
	if !tm.Running() {
		t.Error("timer should still be running")
	}
}

func TestTick_WorkPhaseCompletes(t *testing.T) {
	tm := NewWith(25, 5)
	tm.Start()
	for i := 0; i < 25*60-1; i++ {
		if _, completed := tm.Tick(); completed {
			t.Fatalf("completed early at tick %d", i)
		}
	}

	ended, completed := tm.Tick()

	if !completed {
		t.Fatal("expected phase completion on the final tick")
	}
	if ended != PhaseWork {
		t.Errorf("ended phase = %v, want work", ended)
	}
	if tm.Phase() != PhaseBreak {
		t.Errorf("phase = %v, want break", tm.Phase())
	}
	if tm.Remaining() != 5*60 || tm.Total() != 5*60 {
		t.Errorf("remaining/total = %d/%d, want 300/300", tm.Remaining(), tm.Total())
	}
	if tm.Running() {
		t.Error("timer should pause after phase completion")
	}
}

func TestTick_BreakPhaseCompletes(t *testing.T) {
	tm := NewWith(1, 1)
	tm.Skip() // to break
	tm.Start()
	for i := 0; i < 59; i++ {
		tm.Tick()
	}

	ended, completed := tm.Tick()

	if !completed || ended != PhaseBreak {
		t.Fatalf("ended = %v completed = %v, want break/true", ended, completed)
	}
	if tm.Phase() != PhaseWork {
		t.Errorf("phase = %v, want work after break", tm.Phase())
	}
}

func TestPause_PreservesRemaining(t *testing.T) {
	tm := New()
	tm.Start()
	tm.Tick()
	tm.Pause()

	want := tm.Remaining()
	tm.Tick() // stray tick after pause

	if tm.Remaining() != want {
		t.Errorf("remaining = %d, want %d (stray tick must not decrement)", tm.Remaining(), want)
	}
}

func TestSkip_NoCompletion(t *testing.T) {
	tm := NewWith(15, 5)
	tm.Start()
	tm.Tick()

	tm.Skip()

	if tm.Phase() != PhaseBreak {
		t.Errorf("phase = %v, want break", tm.Phase())
	}
	if tm.Remaining() != 5*60 {
		t.Errorf("remaining = %d, want 300", tm.Remaining())
	}
	if tm.Running() {
		t.Error("skip should leave the timer paused")
	}

	tm.Skip()
	if tm.Phase() != PhaseWork || tm.Remaining() != 15*60 {
		t.Errorf("after second skip: phase %v remaining %d, want work/900", tm.Phase(), tm.Remaining())
	}
}

func TestReset_FromBreak(t *testing.T) {
	tm := NewWith(25, 5)
	tm.Skip()
	tm.Start()

	tm.Reset()

	if tm.Phase() != PhaseWork || tm.Running() {
		t.Errorf("phase = %v running = %v, want paused work", tm.Phase(), tm.Running())
	}
	if tm.Remaining() != 25*60 {
		t.Errorf("remaining = %d, want 1500", tm.Remaining())
	}
}

func TestSetPreset_ImplicitReset(t *testing.T) {
	tm := New()
	tm.Start()
	tm.Tick()

	tm.SetPreset(50, 10)

	if tm.Remaining() != 50*60 || tm.Total() != 50*60 {
		t.Errorf("remaining/total = %d/%d, want 3000/3000", tm.Remaining(), tm.Total())
	}
	if tm.Running() {
		t.Error("preset change should pause the timer")
	}
	if tm.BreakMinutes() != 10 {
		t.Errorf("breakMinutes = %d, want 10", tm.BreakMinutes())
	}
}

func TestPhaseString(t *testing.T) {
	if PhaseWork.String() != "FOCUS" {
		t.Errorf("work label = %q, want FOCUS", PhaseWork.String())
	}
	if PhaseBreak.String() != "BREAK" {
		t.Errorf("break label = %q, want BREAK", PhaseBreak.String())
	}
}
