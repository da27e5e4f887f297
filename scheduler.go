// Package bru defines the thread-scheduling core of a regular-expression
// virtual machine: a pluggable Scheduler abstraction and three concrete
// scheduling policies (Spencer, Lockstep, LockstepAlt). The parser,
// bytecode compiler, VM instruction loop, and thread allocation/cloning
// that would surround this core are out of scope — Scheduler only
// decides the order in which already-existing Thread values run.
package bru

import "fmt"

// Opcode identifies the kind of VM instruction a Thread is currently
// positioned at. Schedulers that care about instruction kind (Lockstep,
// LockstepAlt) use it to decide whether a thread must wait for a
// synchronisation barrier; Spencer ignores it entirely.
type Opcode byte

const (
	Char Opcode = iota
	Pred
	Split
	Jump
	Match
	Save
	MemoOp
)

// Consumes reports whether o consumes an input character, i.e. whether a
// thread positioned at o must wait for the next lockstep barrier rather
// than run immediately.
func (o Opcode) Consumes() bool {
	return o == Char || o == Pred
}

func (o Opcode) String() string {
	switch o {
	case Char:
		return "Char"
	case Pred:
		return "Pred"
	case Split:
		return "Split"
	case Jump:
		return "Jump"
	case Match:
		return "Match"
	case Save:
		return "Save"
	case MemoOp:
		return "MemoOp"
	default:
		return fmt.Sprintf("Opcode(%d)", byte(o))
	}
}

// Thread is an opaque handle to a VM thread. Schedulers never inspect or
// construct one; they pass it back and forth and query ThreadManager for
// anything they need to know about it.
type Thread any

// ThreadManager is the collaborator a Scheduler queries for facts about a
// Thread it is holding. The thread allocator/cloner that produces and
// owns Thread values is out of scope here; ThreadManager is the seam.
type ThreadManager interface {
	// PC returns the opcode the thread is currently positioned at.
	PC(t Thread) Opcode

	// ThreadEq reports whether a and b are the same thread for
	// scheduling purposes (e.g. same program counter and capture
	// state) — the sole authority on thread identity, since Thread is
	// an opaque any and schedulers must not assume it is comparable or
	// hashable.
	ThreadEq(a, b Thread) bool

	// KillThread releases a thread a scheduler has decided will never
	// run (e.g. a duplicate suppressed at a lockstep barrier).
	KillThread(t Thread)
}

// Scheduler manipulates the execution order of threads. Concrete
// implementations (SpencerScheduler, LockstepScheduler,
// LockstepAltScheduler) give this same shape different DFS/BFS/hybrid
// semantics.
type Scheduler interface {
	// Init resets the scheduler's per-run state, ready for a fresh run.
	// Whether queued threads survive is policy-specific: Spencer drops
	// them, while Lockstep and LockstepAlt clear only counters/flags
	// (and, for LockstepAlt, the active thread) and keep their queues.
	Init()

	// Schedule enqueues thread for execution. The resulting order is
	// an implementation detail of the policy. Returns false if thread
	// was rejected (e.g. already scheduled this step).
	Schedule(t Thread) bool

	// ScheduleInOrder enqueues thread such that consecutive
	// ScheduleInOrder calls preserve relative order between the
	// threads they schedule. Whether that order also holds across
	// intervening Schedule calls depends on the policy (Spencer starts
	// a fresh in-order run after each Schedule).
	ScheduleInOrder(t Thread) bool

	// HasNext reports whether the scheduler holds any thread not yet
	// returned by Next.
	HasNext() bool

	// Next returns the next thread to execute. It returns (nil, false)
	// once the scheduler is drained — there is no sentinel Thread
	// value for "empty", unlike the C convention of a NULL pointer.
	Next() (Thread, bool)

	// Free releases resources held by the scheduler. Threads still
	// held by the scheduler at the time of the call are not released;
	// the caller must drain or otherwise dispose of them first.
	Free()
}

// LowPriorityRemover is implemented by schedulers that distinguish
// "currently executing" threads from lower-priority ones still waiting
// their turn (Lockstep, LockstepAlt). A caller type-asserts for it rather
// than every Scheduler carrying the method, since Spencer's plain DFS has
// no such distinction.
type LowPriorityRemover interface {
	// RemoveLowPriorityThreads removes and returns the threads the
	// scheduler was not about to execute next, in unspecified order.
	// Returns nil if there are none.
	RemoveLowPriorityThreads() []Thread
}

// StepAware is implemented by schedulers with a notion of a lockstep
// "step" boundary (Lockstep, LockstepAlt). Spencer has no step boundary
// and implements neither this nor LowPriorityRemover.
type StepAware interface {
	// DoneStep reports whether the scheduler has just completed a step
	// — every thread it holds has run at least once since the
	// previous step and is now positioned at a Char/Pred instruction.
	DoneStep() bool
}
