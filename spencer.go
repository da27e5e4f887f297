package bru

// SpencerScheduler implements Spencer-style DFS/stack thread scheduling:
// Next returns the active thread if one is set, otherwise the thread on
// top of the stack, giving classic backtracking priority (later
// alternatives explored before earlier ones are exhausted).
//
// It implements neither LowPriorityRemover nor StepAware: plain DFS has
// no notion of a step boundary or of "currently executing" threads
// distinct from waiting ones.
type SpencerScheduler struct {
	active     Thread
	stack      []Thread
	inOrderIdx int
}

var _ Scheduler = (*SpencerScheduler)(nil)

// NewSpencerScheduler constructs a Spencer scheduler. opts may supply
// WithStackCapacity to pre-size the internal stack.
func NewSpencerScheduler(opts ...Option) *SpencerScheduler {
	o := newSchedulerOptions(opts...)
	return &SpencerScheduler{
		stack: make([]Thread, 0, o.stackCapacity),
	}
}

// Init resets the scheduler to hold no threads.
func (s *SpencerScheduler) Init() {
	s.inOrderIdx = 0
	s.active = nil
	s.stack = s.stack[:0]
}

// Schedule pushes thread onto the DFS stack (or claims it as active if
// there is no active thread yet), moving the in-order sentinel beyond
// the top of the stack so a subsequent ScheduleInOrder call starts a
// fresh run there.
func (s *SpencerScheduler) Schedule(thread Thread) bool {
	s.inOrderIdx = len(s.stack) + 1
	if s.active != nil {
		s.stack = append(s.stack, thread)
	} else {
		s.active = thread
	}
	return true
}

// ScheduleInOrder schedules thread such that consecutive
// ScheduleInOrder calls preserve relative order on the stack — it tracks
// the position of the last in-order insertion via inOrderIdx and inserts
// the next one immediately after it. An intervening Schedule or Next
// call resets inOrderIdx, so the following ScheduleInOrder call starts a
// fresh run on top of the stack.
func (s *SpencerScheduler) ScheduleInOrder(thread Thread) bool {
	length := len(s.stack)

	switch {
	case s.inOrderIdx > length:
		s.Schedule(thread)
		s.inOrderIdx = length
	case s.inOrderIdx == length:
		s.stack = append(s.stack, thread)
	default:
		s.stack = append(s.stack, nil)
		copy(s.stack[s.inOrderIdx+1:], s.stack[s.inOrderIdx:length])
		s.stack[s.inOrderIdx] = thread
	}

	return true
}

// HasNext reports whether there is an active thread or any thread left
// on the stack.
func (s *SpencerScheduler) HasNext() bool {
	return s.active != nil || len(s.stack) > 0
}

// Next returns the active thread if one is set, else pops the top of the
// stack (LIFO). Returns (nil, false) once both are empty.
func (s *SpencerScheduler) Next() (Thread, bool) {
	thread := s.active
	s.inOrderIdx = len(s.stack) + 1
	s.active = nil

	if thread == nil && len(s.stack) > 0 {
		last := len(s.stack) - 1
		thread = s.stack[last]
		s.stack[last] = nil
		s.stack = s.stack[:last]
	}

	if thread == nil {
		return nil, false
	}
	return thread, true
}

// Free releases the scheduler's internal stack. Threads still on the
// stack are not themselves released; the caller must drain first.
func (s *SpencerScheduler) Free() {
	s.stack = nil
	s.active = nil
}
