// Package wizard implements the multi-step wizard state machine used by
// admitwiz.
//
// A wizard is a fixed, ordered list of Steps and a State holding the index of
// the active step. Navigation is expressed as pure transition functions
// (Advance, Retreat, JumpTo, Skip) that return a new State together with an
// Outcome describing what happened. Per-step display status is never stored:
// DerivedStatus computes it from the step's position relative to the active
// index, unless the step declares an explicit override.
//
// Controller wraps the transitions for a single rendered wizard. It owns the
// State, fires the completion callback when Advance is called on the last
// step, and consults an optional Gate (the host's validation) before moving
// forward. The controller itself never validates step content.
package wizard
