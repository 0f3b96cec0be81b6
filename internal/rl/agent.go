package rl

import "math/rand"

// Default Q-learning hyperparameters.
const (
	DefaultLearningRate = 0.1
	DefaultGamma        = 0.99
	DefaultEpsilon      = 0.1
)

// StateKey is the discretized form of a State, binning each dimension
// into 3 buckets. It indexes the tabular policy, so at most 27 distinct
// keys exist.
type StateKey struct {
	Attention int
	Time      int
	Ratio     int
}

// KeyFor discretizes a state. Attention and productive ratio bin at
// {0.33, 0.66}; session time, as a fraction of an hour, at {0.25, 0.5}.
func KeyFor(s State) StateKey {
	return StateKey{
		Attention: bin(s.AttentionLevel, 0.33, 0.66),
		Time:      bin(s.TimeInSessionSeconds/3600.0, 0.25, 0.5),
		Ratio:     bin(s.ProductiveRatio, 0.33, 0.66),
	}
}

func bin(v, low, high float64) int {
	if v < low {
		return 0
	}
	if v < high {
		return 1
	}
	return 2
}

// Agent is a tabular Q-learning agent with epsilon-greedy exploration.
// The Q-table lives in memory for the life of the process; it is never
// persisted or pruned.
type Agent struct {
	learningRate float64
	gamma        float64
	epsilon      float64
	q            map[StateKey]map[Action]float64
	rng          *rand.Rand
}

// NewAgent creates an agent with the default hyperparameters.
func NewAgent() *Agent {
	return NewAgentConfigured(DefaultLearningRate, DefaultGamma, DefaultEpsilon)
}

// NewAgentConfigured creates an agent with explicit hyperparameters.
// epsilon is the probability of exploring with a uniformly random action.
func NewAgentConfigured(learningRate, gamma, epsilon float64) *Agent {
	return &Agent{
		learningRate: learningRate,
		gamma:        gamma,
		epsilon:      epsilon,
		q:            make(map[StateKey]map[Action]float64),
		rng:          rand.New(rand.NewSource(rand.Int63())),
	}
}

// row returns the Q-row for key, inserting an all-zero row on first touch.
func (a *Agent) row(key StateKey) map[Action]float64 {
	r, ok := a.q[key]
	if !ok {
		r = make(map[Action]float64, len(Actions))
		for _, act := range Actions {
			r[act] = 0.0
		}
		a.q[key] = r
	}
	return r
}

// maxQ returns the best Q-value for key, or 0 for an unseen key.
func (a *Agent) maxQ(key StateKey) float64 {
	r, ok := a.q[key]
	if !ok {
		return 0.0
	}
	best := r[Actions[0]]
	for _, act := range Actions[1:] {
		if r[act] > best {
			best = r[act]
		}
	}
	return best
}

// SelectAction picks an action for the state via the epsilon-greedy
// policy and returns it with a confidence score. Ties between equal
// Q-values resolve to the earliest action in Actions. Confidence maps the
// selected Q-value onto [0,1], centered at 0.5.
func (a *Agent) SelectAction(s State) (Action, float64) {
	r := a.row(KeyFor(s))

	var action Action
	if a.rng.Float64() < a.epsilon {
		action = Actions[a.rng.Intn(len(Actions))]
	} else {
		action = Actions[0]
		for _, act := range Actions[1:] {
			if r[act] > r[action] {
				action = act
			}
		}
	}

	confidence := 0.5 + r[action]*0.1
	if confidence < 0.0 {
		confidence = 0.0
	}
	if confidence > 1.0 {
		confidence = 1.0
	}
	return action, confidence
}

// Update applies one Q-learning step:
//
//	Q(s,a) += lr * (target - Q(s,a))
//
// where target = reward + gamma * max_a' Q(next,a') when next is given,
// else target = reward.
func (a *Agent) Update(s State, action Action, reward float64, next *State) {
	r := a.row(KeyFor(s))
	target := reward
	if next != nil {
		target += a.gamma * a.maxQ(KeyFor(*next))
	}
	r[action] += a.learningRate * (target - r[action])
}
