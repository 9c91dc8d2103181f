package pomodoro

import "testing"

func TestNewDefaults(t *testing.T) {
	timer := New(0, 0)

	if timer.StudyMinutes() != DefaultStudyMinutes {
		t.Errorf("StudyMinutes() = %d, want %d", timer.StudyMinutes(), DefaultStudyMinutes)
	}
	if timer.BreakMinutes() != DefaultBreakMinutes {
		t.Errorf("BreakMinutes() = %d, want %d", timer.BreakMinutes(), DefaultBreakMinutes)
	}
	if timer.Phase() != PhaseStudy {
		t.Errorf("Phase() = %q, want %q", timer.Phase(), PhaseStudy)
	}
	if timer.Running() {
		t.Error("new timer should not be running")
	}
	if m, s := timer.Remaining(); m != DefaultStudyMinutes || s != 0 {
		t.Errorf("Remaining() = (%d, %d), want (%d, 0)", m, s, DefaultStudyMinutes)
	}
}

func TestTickWhileStopped(t *testing.T) {
	timer := New(25, 5)

	res := timer.Tick()
	if res.Completed {
		t.Error("stopped timer should not complete a phase")
	}
	if m, s := timer.Remaining(); m != 25 || s != 0 {
		t.Errorf("Remaining() = (%d, %d), stopped timer should not move", m, s)
	}
}

func TestTickDecrements(t *testing.T) {
	timer := New(25, 5)
	timer.Start()

	timer.Tick()
	if m, s := timer.Remaining(); m != 24 || s != 59 {
		t.Errorf("Remaining() = (%d, %d), want (24, 59)", m, s)
	}

	timer.Tick()
	if m, s := timer.Remaining(); m != 24 || s != 58 {
		t.Errorf("Remaining() = (%d, %d), want (24, 58)", m, s)
	}
}

// A 25-minute study phase is exactly 1500 ticks: the phase-complete fires
// on the final tick and the break starts at its full duration.
func TestStudyPhaseCompletesAfter1500Ticks(t *testing.T) {
	timer := New(25, 5)
	timer.Start()

	completions := 0
	var completed Phase
	for i := 0; i < 1500; i++ {
		res := timer.Tick()
		if res.Completed {
			completions++
			completed = res.PhaseCompleted
		}
	}

	if completions != 1 {
		t.Fatalf("phase completions = %d, want exactly 1", completions)
	}
	if completed != PhaseStudy {
		t.Errorf("completed phase = %q, want %q", completed, PhaseStudy)
	}
	if timer.Phase() != PhaseBreak {
		t.Errorf("Phase() = %q, want %q", timer.Phase(), PhaseBreak)
	}
	if m, s := timer.Remaining(); m != 5 || s != 0 {
		t.Errorf("Remaining() = (%d, %d), want full break (5, 0)", m, s)
	}
	if !timer.Running() {
		t.Error("timer should keep running into the break")
	}
}

func TestResetToStudyLeavesBreakBehind(t *testing.T) {
	timer := New(1, 5)
	timer.Start()

	for i := 0; i < 60; i++ {
		timer.Tick()
	}
	if timer.Phase() != PhaseBreak {
		t.Fatalf("Phase() = %q, want %q", timer.Phase(), PhaseBreak)
	}

	timer.ResetToStudy()
	if timer.Phase() != PhaseStudy {
		t.Errorf("Phase() = %q, want %q", timer.Phase(), PhaseStudy)
	}
	if m, s := timer.Remaining(); m != 1 || s != 0 {
		t.Errorf("Remaining() = (%d, %d), want full study (1, 0)", m, s)
	}
	if timer.Running() {
		t.Error("reset timer should not be running")
	}
}

func TestResetToStudyAppliesStagedDurations(t *testing.T) {
	timer := New(25, 5)
	timer.SetDurations(50, 10)

	timer.ResetToStudy()
	if m, s := timer.Remaining(); m != 50 || s != 0 {
		t.Errorf("Remaining() = (%d, %d), want staged study (50, 0)", m, s)
	}
}

func TestFullCycleReturnsToStudy(t *testing.T) {
	timer := New(25, 5)
	timer.Start()

	completions := 0
	for i := 0; i < 1800; i++ {
		if timer.Tick().Completed {
			completions++
		}
	}

	if completions != 2 {
		t.Errorf("phase completions = %d, want 2 after study plus break", completions)
	}
	if timer.Phase() != PhaseStudy {
		t.Errorf("Phase() = %q, want %q", timer.Phase(), PhaseStudy)
	}
	if m, s := timer.Remaining(); m != 25 || s != 0 {
		t.Errorf("Remaining() = (%d, %d), want (25, 0)", m, s)
	}
}

func TestPauseAndResume(t *testing.T) {
	timer := New(25, 5)
	timer.Start()
	timer.Tick()

	timer.Pause()
	if timer.Running() {
		t.Error("timer should be paused")
	}
	m1, s1 := timer.Remaining()
	timer.Tick()
	if m2, s2 := timer.Remaining(); m2 != m1 || s2 != s1 {
		t.Error("paused timer should not move")
	}

	timer.Resume()
	timer.Tick()
	if m3, s3 := timer.Remaining(); m3 != 24 || s3 != 58 {
		t.Errorf("Remaining() = (%d, %d), want (24, 58)", m3, s3)
	}
}

func TestReset(t *testing.T) {
	timer := New(25, 5)
	timer.Start()
	for i := 0; i < 100; i++ {
		timer.Tick()
	}

	timer.Reset()
	if timer.Running() {
		t.Error("reset timer should be stopped")
	}
	if m, s := timer.Remaining(); m != 25 || s != 0 {
		t.Errorf("Remaining() = (%d, %d), want (25, 0)", m, s)
	}
}

func TestSetDurationsAppliesAtReset(t *testing.T) {
	timer := New(25, 5)
	timer.Start()
	timer.Tick()

	timer.SetDurations(50, 10)

	// Live countdown keeps its old value.
	if m, _ := timer.Remaining(); m != 24 {
		t.Errorf("minutes = %d, staged durations should not touch the live countdown", m)
	}

	timer.Reset()
	if m, s := timer.Remaining(); m != 50 || s != 0 {
		t.Errorf("Remaining() = (%d, %d), want (50, 0) after reset", m, s)
	}
}

func TestSetDurationsAppliesAtPhaseSwitch(t *testing.T) {
	timer := New(1, 5)
	timer.Start()
	timer.SetDurations(0, 12)

	// Run out the one-minute study phase.
	for i := 0; i < 60; i++ {
		timer.Tick()
	}

	if timer.Phase() != PhaseBreak {
		t.Fatalf("Phase() = %q, want %q", timer.Phase(), PhaseBreak)
	}
	if m, _ := timer.Remaining(); m != 12 {
		t.Errorf("break minutes = %d, want staged value 12", m)
	}
}

func TestSetDurationsIgnoresNonPositive(t *testing.T) {
	timer := New(25, 5)
	timer.SetDurations(0, -3)

	if timer.StudyMinutes() != 25 {
		t.Errorf("StudyMinutes() = %d, want 25", timer.StudyMinutes())
	}
	if timer.BreakMinutes() != 5 {
		t.Errorf("BreakMinutes() = %d, want 5", timer.BreakMinutes())
	}
}

func TestDisplay(t *testing.T) {
	timer := New(25, 5)
	if got := timer.Display(); got != "25:00" {
		t.Errorf("Display() = %q, want %q", got, "25:00")
	}

	timer.Start()
	timer.Tick()
	if got := timer.Display(); got != "24:59" {
		t.Errorf("Display() = %q, want %q", got, "24:59")
	}
}
