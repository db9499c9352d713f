package wizard

// State is the mutable part of a wizard, held as a value.
// Transitions never modify their input; they return the next State.
type State struct {
	// Index is the active step, 0 <= Index < len(steps).
	Index int
	// Completions counts how many times Advance fired completion.
	Completions int
}

// Action names a navigation request.
type Action string

const (
	// ActionAdvance moves to the next step or completes on the last one.
	ActionAdvance Action = "advance"
	// ActionRetreat moves to the previous step.
	ActionRetreat Action = "retreat"
	// ActionJump moves directly to a step index.
	ActionJump Action = "jump"
	// ActionSkip passes over an optional step without the gate.
	ActionSkip Action = "skip"
)

// Result describes how a navigation request was resolved.
type Result string

const (
	// ResultMoved means the active index changed.
	ResultMoved Result = "moved"
	// ResultCompleted means Advance was called on the last step.
	ResultCompleted Result = "completed"
	// ResultRejected means the request was not allowed and nothing changed.
	ResultRejected Result = "rejected"
	// ResultBlocked means the host's gate refused the move.
	ResultBlocked Result = "blocked"
)

// Outcome reports the effect of a single navigation request.
type Outcome struct {
	Action Action
	Result Result
	From   int
	To     int
	// Progress is the progress percentage after the request.
	Progress float64
	// Err is the gate error when Result is ResultBlocked.
	Err error
}

// Changed reports whether the active index moved.
func (o Outcome) Changed() bool {
	return o.From != o.To
}

func rejected(a Action, n int, st State) (State, Outcome) {
	return st, Outcome{
		Action:   a,
		Result:   ResultRejected,
		From:     st.Index,
		To:       st.Index,
		Progress: ProgressPercentage(n, st),
	}
}

func moved(a Action, n int, st State, to int) (State, Outcome) {
	next := State{Index: to, Completions: st.Completions}
	return next, Outcome{
		Action:   a,
		Result:   ResultMoved,
		From:     st.Index,
		To:       to,
		Progress: ProgressPercentage(n, next),
	}
}

// Advance moves to the next step of an n-step wizard. On the last step it
// completes instead: the index is unchanged and Completions is incremented
// exactly once.
func Advance(n int, st State) (State, Outcome) {
	if n <= 0 || st.Index < 0 || st.Index >= n {
		return rejected(ActionAdvance, n, st)
	}
	if st.Index == n-1 {
		next := State{Index: st.Index, Completions: st.Completions + 1}
		return next, Outcome{
			Action:   ActionAdvance,
			Result:   ResultCompleted,
			From:     st.Index,
			To:       st.Index,
			Progress: ProgressPercentage(n, next),
		}
	}
	return moved(ActionAdvance, n, st, st.Index+1)
}

// Retreat moves to the previous step. It is a no-op on the first step and
// when back navigation is disabled.
func Retreat(n int, opts Options, st State) (State, Outcome) {
	if !opts.AllowBackNavigation || st.Index <= 0 || st.Index >= n {
		return rejected(ActionRetreat, n, st)
	}
	return moved(ActionRetreat, n, st, st.Index-1)
}

// JumpTo moves directly to step k. Revisiting k <= Index is always allowed;
// forward jumps require AllowSkipSteps. Out-of-range k is rejected.
func JumpTo(n int, opts Options, st State, k int) (State, Outcome) {
	if !CanJumpTo(n, opts, st, k) {
		return rejected(ActionJump, n, st)
	}
	return moved(ActionJump, n, st, k)
}

// CanJumpTo reports whether JumpTo(k) would be accepted.
func CanJumpTo(n int, opts Options, st State, k int) bool {
	if k < 0 || k >= n {
		return false
	}
	return k <= st.Index || opts.AllowSkipSteps
}

// Skip passes over the active step when it is optional. It behaves like
// Advance, including completion on the last step.
func Skip(steps []Step, st State) (State, Outcome) {
	n := len(steps)
	if st.Index < 0 || st.Index >= n || !steps[st.Index].Optional {
		return rejected(ActionSkip, n, st)
	}
	next, out := Advance(n, st)
	out.Action = ActionSkip
	return next, out
}

// DerivedStatus returns the display status of step i. An explicit status on
// the step always wins; otherwise steps before the active index are
// completed, the active step is current and the rest are pending.
// Out-of-range indices yield the empty Status.
func DerivedStatus(steps []Step, st State, i int) Status {
	if i < 0 || i >= len(steps) {
		return ""
	}
	if steps[i].Status != "" {
		return steps[i].Status
	}
	switch {
	case i < st.Index:
		return StatusCompleted
	case i == st.Index:
		return StatusCurrent
	default:
		return StatusPending
	}
}

// ProgressPercentage returns Index/(n-1)*100 for an n-step wizard.
// A single-step wizard has no intermediate positions: it reports 0 until it
// has completed once and 100 afterwards.
func ProgressPercentage(n int, st State) float64 {
	if n <= 1 {
		if st.Completions > 0 {
			return 100
		}
		return 0
	}
	if st.Index <= 0 {
		return 0
	}
	if st.Index >= n-1 {
		return 100
	}
	return float64(st.Index) / float64(n-1) * 100
}
