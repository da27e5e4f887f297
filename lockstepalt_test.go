package bru

import "testing"

func TestLockstepAltScheduler_EmptyHasNoNext(t *testing.T) {
	tm := &fakeThreadManager{}
	s := NewLockstepAltScheduler(tm)
	if s.HasNext() {
		t.Fatal("expected empty scheduler to have no next thread")
	}
	if thread, ok := s.Next(); ok || thread != nil {
		t.Fatalf("Next() on empty scheduler = (%v, %v), want (nil, false)", thread, ok)
	}
}

func TestLockstepAltScheduler_DFSOrderBeforeAnyCharPred(t *testing.T) {
	tm := &fakeThreadManager{}
	s := NewLockstepAltScheduler(tm)
	a, b, c := th(Split), th(Split), th(Split)
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

func TestLockstepAltScheduler_CharPredThreadsStepTogether(t *testing.T) {
	tm := &fakeThreadManager{}
	s := NewLockstepAltScheduler(tm)
	a, b := th(Char), th(Pred)
	s.Schedule(a)
	s.Schedule(b)

	got := drainAll(s)
	if len(got) != 2 {
		t.Fatalf("drained %v, want 2 threads", got)
	}
	seen := map[Thread]bool{got[0]: true, got[1]: true}
	if !seen[a] || !seen[b] {
		t.Fatalf("drained %v, want both %v and %v", got, a, b)
	}
}

func TestLockstepAltScheduler_DFSThreadsRunBeforeSteppingStarts(t *testing.T) {
	tm := &fakeThreadManager{}
	s := NewLockstepAltScheduler(tm)
	dfsThread := th(Jump)
	charThread := th(Char)
	s.Schedule(dfsThread)
	s.Schedule(charThread)

	thread, ok := s.Next()
	if !ok || thread != dfsThread {
		t.Fatalf("Next() = (%v, %v), want (%v, true) — DFS thread should run before stepping starts", thread, ok, dfsThread)
	}
}

func TestLockstepAltScheduler_DuplicateCharPredRejected(t *testing.T) {
	tm := &fakeThreadManager{}
	s := NewLockstepAltScheduler(tm)
	a := th(Char)
	if !s.Schedule(a) {
		t.Fatal("expected first Schedule to succeed")
	}
	if s.Schedule(a) {
		t.Fatal("expected duplicate Char thread to be rejected")
	}
}

func TestLockstepAltScheduler_DoneStep_TrueOnceStepCompletes(t *testing.T) {
	tm := &fakeThreadManager{}
	s := NewLockstepAltScheduler(tm)
	s.Schedule(th(Char))
	s.Schedule(th(Pred))

	for s.HasNext() {
		if _, ok := s.Next(); !ok {
			break
		}
	}
	if !s.DoneStep() {
		t.Fatal("expected DoneStep to be true once the step round is drained")
	}
}

func TestLockstepAltScheduler_ScheduleInOrder_QueuedUntilStepClears(t *testing.T) {
	tm := &fakeThreadManager{}
	s := NewLockstepAltScheduler(tm)
	a, b := th(Char), th(Char)
	s.Schedule(a)
	s.Schedule(b) // two locked threads so stepping spans more than one Next call

	first, ok := s.Next()
	if !ok || first != a {
		t.Fatalf("Next() = (%v, %v), want (%v, true)", first, ok, a)
	}

	// Queue an in-order thread mid-step: it must stay queued rather than
	// preempt the rest of the current step.
	deferred := th(Jump)
	s.ScheduleInOrder(deferred)

	second, ok := s.Next()
	if !ok || second != b {
		t.Fatalf("Next() = (%v, %v), want (%v, true) — mid-step thread must not preempt b", second, ok, b)
	}

	third, ok := s.Next()
	if !ok || third != deferred {
		t.Fatalf("Next() = (%v, %v), want (%v, true) — in-order thread surfaces once the step clears", third, ok, deferred)
	}

	if s.HasNext() {
		t.Fatal("expected scheduler to be drained")
	}
}

func TestLockstepAltScheduler_RemoveLowPriorityThreads(t *testing.T) {
	tm := &fakeThreadManager{}
	s := NewLockstepAltScheduler(tm)
	a, b := th(Jump), th(Jump)
	s.Schedule(a) // active
	s.Schedule(b) // stack

	removed := s.RemoveLowPriorityThreads()
	if len(removed) != 2 {
		t.Fatalf("RemoveLowPriorityThreads() = %v, want 2 threads", removed)
	}
	if s.HasNext() {
		t.Fatal("expected scheduler to be drained after removing low priority threads")
	}
}

func TestLockstepAltScheduler_ImplementsOptionalInterfaces(t *testing.T) {
	tm := &fakeThreadManager{}
	var s Scheduler = NewLockstepAltScheduler(tm)
	if _, ok := s.(LowPriorityRemover); !ok {
		t.Fatal("LockstepAltScheduler must implement LowPriorityRemover")
	}
	if _, ok := s.(StepAware); !ok {
		t.Fatal("LockstepAltScheduler must implement StepAware")
	}
}
