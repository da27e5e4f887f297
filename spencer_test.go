package bru

import "testing"

func drainAll(s Scheduler) []Thread {
	var out []Thread
	for s.HasNext() {
		thread, ok := s.Next()
		if !ok {
			break
		}
		out = append(out, thread)
	}
	return out
}

func TestSpencerScheduler_EmptyHasNoNext(t *testing.T) {
	s := NewSpencerScheduler()
	if s.HasNext() {
		t.Fatal("expected empty scheduler to have no next thread")
	}
	if thread, ok := s.Next(); ok || thread != nil {
		t.Fatalf("Next() on empty scheduler = (%v, %v), want (nil, false)", thread, ok)
	}
}

func TestSpencerScheduler_FirstScheduleBecomesActive(t *testing.T) {
	s := NewSpencerScheduler()
	a := th(Char)
	s.Schedule(a)

	if !s.HasNext() {
		t.Fatal("expected HasNext after scheduling")
	}
	thread, ok := s.Next()
	if !ok || thread != a {
		t.Fatalf("Next() = (%v, %v), want (%v, true)", thread, ok, a)
	}
	if s.HasNext() {
		t.Fatal("expected scheduler to be drained")
	}
}

func TestSpencerScheduler_LIFOOrder(t *testing.T) {
	s := NewSpencerScheduler()
	a, b, c := th(Char), th(Char), th(Char)
	s.Schedule(a)
	s.Schedule(b)
	s.Schedule(c)

	got := drainAll(s)
	want := []Thread{a, c, b}
	if len(got) != len(want) {
		t.Fatalf("drained %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("drained %v, want %v", got, want)
		}
	}
}

func TestSpencerScheduler_ScheduleInOrder_PreservesRelativeOrder(t *testing.T) {
	s := NewSpencerScheduler()
	x := th(Char)
	s.Schedule(x) // becomes active

	a := th(Char)
	s.ScheduleInOrder(a)

	c := th(Char)
	s.ScheduleInOrder(c)

	got := drainAll(s)
	if len(got) != 3 {
		t.Fatalf("drained %d threads, want 3: %v", len(got), got)
	}

	var idxA, idxC int = -1, -1
	for i, thread := range got {
		switch thread {
		case a:
			idxA = i
		case c:
			idxC = i
		}
	}
	if idxA == -1 || idxC == -1 {
		t.Fatalf("expected both in-order threads to be drained, got %v", got)
	}
	if idxA >= idxC {
		t.Fatalf("in-order threads ran out of order: a at %d, c at %d (drained %v)", idxA, idxC, got)
	}
}

func TestSpencerScheduler_Init_ClearsState(t *testing.T) {
	s := NewSpencerScheduler()
	s.Schedule(th(Char))
	s.Schedule(th(Char))
	s.Init()

	if s.HasNext() {
		t.Fatal("expected Init to clear all scheduled threads")
	}
}

func TestSpencerScheduler_Free_IsSafeAfterDrain(t *testing.T) {
	s := NewSpencerScheduler()
	s.Schedule(th(Char))
	drainAll(s)
	s.Free()
	if s.HasNext() {
		t.Fatal("expected scheduler to report empty after Free")
	}
}

func TestSpencerScheduler_StackCapacityHintDoesNotAffectBehaviour(t *testing.T) {
	s := NewSpencerScheduler(WithStackCapacity(8))
	a, b := th(Char), th(Char)
	s.Schedule(a)
	s.Schedule(b)

	got := drainAll(s)
	want := []Thread{a, b}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("drained %v, want %v", got, want)
	}
}

func TestSpencerScheduler_DoesNotImplementOptionalInterfaces(t *testing.T) {
	var s Scheduler = NewSpencerScheduler()
	if _, ok := s.(LowPriorityRemover); ok {
		t.Fatal("SpencerScheduler must not implement LowPriorityRemover")
	}
	if _, ok := s.(StepAware); ok {
		t.Fatal("SpencerScheduler must not implement StepAware")
	}
}
