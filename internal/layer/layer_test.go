package layer

import "testing"

func TestNew(t *testing.T) {
	s, err := New(4)
	if err != nil {
		t.Fatalf("New(4) error = %v", err)
	}
	if s.Current() != 0 {
		t.Errorf("Current() = %d, want 0", s.Current())
	}
	if s.Count() != 4 {
		t.Errorf("Count() = %d, want 4", s.Count())
	}
}

func TestNewInvalidCount(t *testing.T) {
	for _, count := range []int{0, -1} {
		if _, err := New(count); err == nil {
			t.Errorf("New(%d) error = nil, want error", count)
		}
	}
}

func TestCycleForwardWraps(t *testing.T) {
	s, _ := New(4)

	want := []int{1, 2, 3, 0, 1}
	for i, w := range want {
		if got := s.Cycle(Forward); got != w {
			t.Errorf("cycle %d: Cycle(Forward) = %d, want %d", i, got, w)
		}
	}
}

func TestCycleBackwardWraps(t *testing.T) {
	s, _ := New(4)

	// Backward from 0 must land on the last layer, never go negative.
	if got := s.Cycle(Backward); got != 3 {
		t.Errorf("Cycle(Backward) = %d, want 3", got)
	}
	if got := s.Cycle(Backward); got != 2 {
		t.Errorf("Cycle(Backward) = %d, want 2", got)
	}
}

func TestCycleForwardFullLoopReturnsToStart(t *testing.T) {
	for start := 0; start < 4; start++ {
		s, _ := New(4)
		for i := 0; i < start; i++ {
			s.Cycle(Forward)
		}
		for i := 0; i < 4; i++ {
			s.Cycle(Forward)
		}
		if got := s.Current(); got != start {
			t.Errorf("start %d: after 4 forward cycles Current() = %d, want %d", start, got, start)
		}
	}
}

func TestCycleBackwardInvertsForward(t *testing.T) {
	s, _ := New(4)

	seq := []Direction{Forward, Forward, Backward, Forward, Backward, Backward}
	for _, d := range seq {
		got := s.Cycle(d)
		if got < 0 || got >= s.Count() {
			t.Fatalf("Cycle(%v) = %d, out of range [0,%d)", d, got, s.Count())
		}
	}
	if s.Current() != 0 {
		t.Errorf("balanced cycle sequence left Current() = %d, want 0", s.Current())
	}
}

func TestCycleSingleLayer(t *testing.T) {
	s, _ := New(1)
	if got := s.Cycle(Forward); got != 0 {
		t.Errorf("Cycle(Forward) = %d, want 0", got)
	}
	if got := s.Cycle(Backward); got != 0 {
		t.Errorf("Cycle(Backward) = %d, want 0", got)
	}
}

func TestDirectionString(t *testing.T) {
	if got := Forward.String(); got != "forward" {
		t.Errorf("Forward.String() = %q, want %q", got, "forward")
	}
	if got := Backward.String(); got != "backward" {
		t.Errorf("Backward.String() = %q, want %q", got, "backward")
	}
}
