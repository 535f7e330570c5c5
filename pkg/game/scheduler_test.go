package game

import "testing"

func TestSchedulerRunsAtInterval(t *testing.T) {
	s := NewScheduler(0)
	var deltas []float64
	s.Every(100, func(dt float64) { deltas = append(deltas, dt) })

	s.Advance(50)
	if len(deltas) != 0 {
		t.Fatalf("task should not run before its interval, ran %d", len(deltas))
	}
	s.Advance(100)
	s.Advance(200)
	s.Advance(310)

	want := []float64{100, 100, 110}
	if len(deltas) != len(want) {
		t.Fatalf("runs = %v, want %v", deltas, want)
	}
	for i := range want {
		if deltas[i] != want[i] {
			t.Errorf("run %d delta = %v, want %v", i, deltas[i], want[i])
		}
	}
}

func TestSchedulerPassesWallClockDelta(t *testing.T) {
	s := NewScheduler(1000)
	var got float64
	s.Every(16, func(dt float64) { got = dt })

	// 宿主卡顿 250ms：只执行一次，拿到完整的时间差
	if ran := s.Advance(1250); ran != 1 {
		t.Fatalf("ran = %d, want 1", ran)
	}
	if got != 250 {
		t.Errorf("delta = %v, want 250", got)
	}

	// 卡顿后重新对齐，不补跑
	if ran := s.Advance(1255); ran != 0 {
		t.Errorf("ran = %d after resync, want 0", ran)
	}
}

func TestSchedulerToleratesJitter(t *testing.T) {
	s := NewScheduler(0)
	runs := 0
	s.Every(16, func(float64) { runs++ })

	// 宿主帧略早于名义间隔
	for _, now := range []float64{15.5, 31.8, 47.9, 63.7} {
		s.Advance(now)
	}
	if runs != 4 {
		t.Errorf("runs = %d, want 4", runs)
	}
}

func TestTaskHandleCancel(t *testing.T) {
	s := NewScheduler(0)
	runs := 0
	h := s.Every(10, func(float64) { runs++ })

	s.Advance(10)
	h.Cancel()
	h.Cancel()
	s.Advance(20)
	s.Advance(30)

	if runs != 1 {
		t.Errorf("runs = %d, want 1", runs)
	}
	if !h.Cancelled() {
		t.Error("handle should report cancelled")
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
}

func TestTaskCancelsItself(t *testing.T) {
	s := NewScheduler(0)
	runs := 0
	var h *TaskHandle
	h = s.Every(10, func(float64) {
		runs++
		h.Cancel()
	})

	s.Advance(10)
	s.Advance(20)
	if runs != 1 {
		t.Errorf("runs = %d, want 1", runs)
	}
}

func TestTaskRegisteredDuringAdvance(t *testing.T) {
	s := NewScheduler(0)
	childRuns := 0
	var parent *TaskHandle
	parent = s.Every(10, func(float64) {
		parent.Cancel()
		s.Every(10, func(float64) { childRuns++ })
	})

	s.Advance(10)
	if childRuns != 0 {
		t.Fatalf("child should not run in the advance that registered it")
	}
	s.Advance(20)
	if childRuns != 1 {
		t.Errorf("childRuns = %d, want 1", childRuns)
	}
}

func TestSchedulerClockNeverGoesBack(t *testing.T) {
	s := NewScheduler(100)
	s.Advance(50)
	if s.Now() != 100 {
		t.Errorf("Now() = %v, want 100", s.Now())
	}
}
