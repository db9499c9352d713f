package wizard

import (
	"fmt"
	"math"

	"github.com/go-logr/logr"
)

// Gate is the host's go/no-go check for leaving step index forward.
// A non-nil error blocks the navigation.
type Gate func(index int) error

// Observer is notified of every navigation request handled by a Controller.
type Observer interface {
	Observe(Outcome)
}

// Controller owns the state of one rendered wizard. It is not safe for
// concurrent use.
type Controller struct {
	steps      []Step
	opts       Options
	state      State
	onComplete func()
	gate       Gate
	stepErrs   map[int]error
	observer   Observer
	log        logr.Logger
}

// New creates a controller positioned on the first step. onComplete may be
// nil; it is invoked once for every Advance on the last step.
func New(steps []Step, opts Options, onComplete func()) (*Controller, error) {
	if err := validateSteps(steps); err != nil {
		return nil, err
	}

	owned := make([]Step, len(steps))
	copy(owned, steps)

	return &Controller{
		steps:      owned,
		opts:       opts,
		onComplete: onComplete,
		stepErrs:   make(map[int]error),
		log:        logr.Discard(),
	}, nil
}

// SetGate installs the host's validation check.
func (c *Controller) SetGate(g Gate) { c.gate = g }

// SetObserver installs a navigation observer.
func (c *Controller) SetObserver(o Observer) { c.observer = o }

// SetLogger sets the logger used for navigation events.
func (c *Controller) SetLogger(l logr.Logger) { c.log = l }

// Advance moves forward or, on the last step, fires completion.
// The gate is consulted first; a gate error blocks both.
func (c *Controller) Advance() Outcome {
	if blocked, ok := c.checkGate(ActionAdvance); !ok {
		return c.record(blocked)
	}
	next, out := Advance(len(c.steps), c.state)
	return c.apply(next, out)
}

// Retreat moves back one step when allowed. It never consults the gate.
func (c *Controller) Retreat() Outcome {
	next, out := Retreat(len(c.steps), c.opts, c.state)
	return c.apply(next, out)
}

// JumpTo moves to step k. Backward jumps always succeed; forward jumps need
// AllowSkipSteps and pass the gate.
func (c *Controller) JumpTo(k int) Outcome {
	n := len(c.steps)
	if !CanJumpTo(n, c.opts, c.state, k) {
		_, out := rejected(ActionJump, n, c.state)
		return c.record(out)
	}
	if k > c.state.Index {
		if blocked, ok := c.checkGate(ActionJump); !ok {
			return c.record(blocked)
		}
	}
	next, out := JumpTo(n, c.opts, c.state, k)
	return c.apply(next, out)
}

// Skip passes over an optional active step without consulting the gate.
func (c *Controller) Skip() Outcome {
	next, out := Skip(c.steps, c.state)
	if out.Result != ResultRejected {
		delete(c.stepErrs, out.From)
	}
	return c.apply(next, out)
}

// Restore positions the wizard on step k, e.g. when resuming a saved draft.
func (c *Controller) Restore(k int) error {
	if k < 0 || k >= len(c.steps) {
		return fmt.Errorf("%w: %d (have %d steps)", ErrIndexOutOfRange, k, len(c.steps))
	}
	c.state.Index = k
	c.log.V(1).Info("wizard restored", "step", c.steps[k].ID, "index", k)
	return nil
}

func (c *Controller) checkGate(a Action) (Outcome, bool) {
	if c.gate == nil {
		return Outcome{}, true
	}
	idx := c.state.Index
	if err := c.gate(idx); err != nil {
		c.stepErrs[idx] = err
		return Outcome{
			Action:   a,
			Result:   ResultBlocked,
			From:     idx,
			To:       idx,
			Progress: c.ProgressPercentage(),
			Err:      err,
		}, false
	}
	delete(c.stepErrs, idx)
	return Outcome{}, true
}

func (c *Controller) apply(next State, out Outcome) Outcome {
	c.state = next
	if out.Result == ResultCompleted && c.onComplete != nil {
		c.onComplete()
	}
	return c.record(out)
}

func (c *Controller) record(out Outcome) Outcome {
	if out.Result == ResultBlocked {
		c.log.Info("navigation blocked", "action", out.Action, "step", c.steps[out.From].ID, "reason", out.Err.Error())
	} else {
		c.log.V(1).Info("navigation", "action", out.Action, "result", out.Result, "from", out.From, "to", out.To)
	}
	if c.observer != nil {
		c.observer.Observe(out)
	}
	return out
}

// State returns the current state value.
func (c *Controller) State() State { return c.state }

// Current returns the active step index.
func (c *Controller) Current() int { return c.state.Index }

// CurrentStep returns the active step.
func (c *Controller) CurrentStep() Step { return c.steps[c.state.Index] }

// Len returns the number of steps.
func (c *Controller) Len() int { return len(c.steps) }

// Options returns the controller's navigation options.
func (c *Controller) Options() Options { return c.opts }

// Steps returns a copy of the step list.
func (c *Controller) Steps() []Step {
	out := make([]Step, len(c.steps))
	copy(out, c.steps)
	return out
}

// IsFirst reports whether the first step is active.
func (c *Controller) IsFirst() bool { return c.state.Index == 0 }

// IsLast reports whether the last step is active.
func (c *Controller) IsLast() bool { return c.state.Index == len(c.steps)-1 }

// DerivedStatus returns the display status of step i.
func (c *Controller) DerivedStatus(i int) Status {
	return DerivedStatus(c.steps, c.state, i)
}

// ProgressPercentage returns the current progress in percent.
func (c *Controller) ProgressPercentage() float64 {
	return ProgressPercentage(len(c.steps), c.state)
}

// CanJumpTo reports whether step k is clickable.
func (c *Controller) CanJumpTo(k int) bool {
	return CanJumpTo(len(c.steps), c.opts, c.state, k)
}

// StepError returns the last gate error recorded for step i.
func (c *Controller) StepError(i int) error { return c.stepErrs[i] }

// ClearStepError forgets the gate error recorded for step i.
func (c *Controller) ClearStepError(i int) { delete(c.stepErrs, i) }

// StepView is the renderable state of a single step.
type StepView struct {
	Step
	Index     int
	Number    int
	Status    Status
	Clickable bool
	Err       error
}

// View is a snapshot of everything a renderer needs.
type View struct {
	Steps       []StepView
	Current     int
	Total       int
	First       bool
	Last        bool
	Percent     float64
	Completions int
	Options     Options
}

// Label returns the "Step X of N" caption.
func (v View) Label() string {
	return fmt.Sprintf("Step %d of %d", v.Current+1, v.Total)
}

// RoundedPercent returns Percent rounded to the nearest integer.
func (v View) RoundedPercent() int {
	return int(math.Round(v.Percent))
}

// Snapshot returns the current View.
func (c *Controller) Snapshot() View {
	v := View{
		Steps:       make([]StepView, len(c.steps)),
		Current:     c.state.Index,
		Total:       len(c.steps),
		First:       c.IsFirst(),
		Last:        c.IsLast(),
		Percent:     c.ProgressPercentage(),
		Completions: c.state.Completions,
		Options:     c.opts,
	}
	for i, s := range c.steps {
		v.Steps[i] = StepView{
			Step:      s,
			Index:     i,
			Number:    i + 1,
			Status:    c.DerivedStatus(i),
			Clickable: c.CanJumpTo(i),
			Err:       c.stepErrs[i],
		}
	}
	return v
}
