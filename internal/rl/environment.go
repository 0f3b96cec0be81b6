// Package rl implements the tutoring recommendation policy: a simulated
// study environment plus a tabular Q-learning agent over its discretized
// state.
package rl

// Action is a tutoring recommendation the agent can issue.
type Action string

const (
	ActionContinue  Action = "continue"
	ActionTakeBreak Action = "take_break"
	ActionEncourage Action = "encourage"
)

// Actions is the fixed action set, in tie-break order.
var Actions = []Action{ActionContinue, ActionTakeBreak, ActionEncourage}

// State holds the continuous study-session metrics the agent acts on.
type State struct {
	AttentionLevel       float64
	TimeInSessionSeconds float64
	ProductiveRatio      float64
}

// StateUpdate overwrites a subset of environment state. Nil fields are
// left unchanged.
type StateUpdate struct {
	AttentionLevel       *float64
	TimeInSessionSeconds *float64
	ProductiveRatio      *float64
}

// Environment simulates study-session dynamics for the agent. There is no
// terminal state: recommendations are an unbounded cycle, so Step always
// reports done=false.
type Environment struct {
	state State
}

// NewEnvironment creates an environment with full attention and no
// elapsed session time.
func NewEnvironment() *Environment {
	return &Environment{state: State{AttentionLevel: 1.0}}
}

// State returns a snapshot of the current state. Later mutation of the
// environment does not propagate to the returned value.
func (e *Environment) State() State {
	return e.state
}

// SetState syncs the environment with externally measured session
// metrics. Fields left nil in the update keep their current value.
func (e *Environment) SetState(u StateUpdate) {
	if u.AttentionLevel != nil {
		e.state.AttentionLevel = *u.AttentionLevel
	}
	if u.TimeInSessionSeconds != nil {
		e.state.TimeInSessionSeconds = *u.TimeInSessionSeconds
	}
	if u.ProductiveRatio != nil {
		e.state.ProductiveRatio = *u.ProductiveRatio
	}
}

// Step simulates one transition for the given action and returns the next
// state, the reward, and whether the episode is done (always false).
//
// take_break resets attention to full, encourage nudges it up, continue
// lets it decay with session length.
func (e *Environment) Step(action Action) (State, float64, bool) {
	var reward float64
	switch action {
	case ActionTakeBreak:
		e.state.AttentionLevel = 1.0
		reward = 0.1
	case ActionEncourage:
		e.state.AttentionLevel = min(1.0, e.state.AttentionLevel+0.1)
		reward = 0.05
	case ActionContinue:
		decay := 0.001 * (e.state.TimeInSessionSeconds / 60.0)
		e.state.AttentionLevel = max(0.0, e.state.AttentionLevel-decay)
		if e.state.AttentionLevel > 0.5 {
			reward = 0.02
		} else {
			reward = -0.02
		}
	}
	return e.state, reward, false
}
