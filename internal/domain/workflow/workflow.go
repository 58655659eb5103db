// Package workflow implements the per-project workflow graph aggregate:
// an ordered set of states plus a set of role-gated transitions between
// them. The aggregate is pure (no I/O) and is the unit of consistency for
// persistence; states and transitions are owned by value and can only be
// changed through the graph's mutators, which enforce every invariant:
//
//   - at most one initial state per graph
//   - state names unique within a graph
//   - at most one transition per (from, to) pair
//   - transition endpoints must exist in the graph
//   - final states have no outgoing transitions
//   - states referenced by transitions cannot be removed
//   - the initial state always keeps at least one outgoing transition
//
// Cycles are legal; there is no reachability or cycle analysis.
package workflow

import (
	"slices"

	"github.com/dkoleva/trackflow/internal/domain"
)

// Graph is the workflow definition for a single project. Exactly one graph
// exists per project; its lifetime is tied to the project's. Version is the
// optimistic concurrency token checked by the repository on save.
type Graph struct {
	id          string
	tenantID    string
	projectID   string
	version     uint64
	states      []State
	transitions []Transition
}

// New creates an empty graph for a project. A fresh graph carries version 0;
// the repository assigns subsequent versions on save.
func New(id, tenantID, projectID string) *Graph {
	return &Graph{
		id:        id,
		tenantID:  tenantID,
		projectID: projectID,
	}
}

// ID returns the graph's identifier.
func (g *Graph) ID() string { return g.id }

// TenantID returns the owning tenant.
func (g *Graph) TenantID() string { return g.tenantID }

// ProjectID returns the owning project.
func (g *Graph) ProjectID() string { return g.projectID }

// Version returns the optimistic concurrency token loaded with the graph.
func (g *Graph) Version() uint64 { return g.version }

// States returns the states in insertion order. The slice is a copy; states
// are values, so callers cannot reach into the aggregate through it.
func (g *Graph) States() []State {
	return slices.Clone(g.states)
}

// Transitions returns the transitions in insertion order, as a copy.
func (g *Graph) Transitions() []Transition {
	return slices.Clone(g.transitions)
}

// StateByID returns the state with the given id, if present.
func (g *Graph) StateByID(id string) (State, bool) {
	for _, s := range g.states {
		if s.id == id {
			return s, true
		}
	}
	return State{}, false
}

// StateByName returns the state with the given name, if present.
func (g *Graph) StateByName(name string) (State, bool) {
	for _, s := range g.states {
		if s.name == name {
			return s, true
		}
	}
	return State{}, false
}

// InitialState returns the graph's initial state, if one has been defined.
func (g *Graph) InitialState() (State, bool) {
	for _, s := range g.states {
		if s.initial {
			return s, true
		}
	}
	return State{}, false
}

// TransitionByID returns the transition with the given id, if present.
func (g *Graph) TransitionByID(id string) (Transition, bool) {
	for _, t := range g.transitions {
		if t.id == id {
			return t, true
		}
	}
	return Transition{}, false
}

// AddState appends a state to the graph.
// Fails with RuleDuplicateStateName when a same-named state exists, and
// RuleMultipleInitialStates when the state is initial and the graph already
// has an initial state.
func (g *Graph) AddState(s State) error {
	if _, exists := g.StateByName(s.name); exists {
		return domain.NewBusinessRuleError(domain.RuleDuplicateStateName,
			"state %q already exists in workflow", s.name)
	}
	if _, exists := g.StateByID(s.id); exists {
		return domain.NewBusinessRuleError(domain.RuleDuplicateStateName,
			"state id %q already exists in workflow", s.id)
	}
	if s.initial {
		if existing, ok := g.InitialState(); ok {
			return domain.NewBusinessRuleError(domain.RuleMultipleInitialStates,
				"state %q is already the initial state", existing.name)
		}
	}

	g.states = append(g.states, s)
	return nil
}

// AddTransition appends a transition to the graph.
// Fails with RuleUnknownEndpoint when either endpoint is not a state of this
// graph, RuleSourceStateFinal when the source is marked final, and
// RuleDuplicateTransition when a (from, to) edge already exists, regardless
// of its role set.
func (g *Graph) AddTransition(t Transition) error {
	from, ok := g.StateByID(t.from)
	if !ok {
		return domain.NewBusinessRuleError(domain.RuleUnknownEndpoint,
			"source state %q does not exist in workflow", t.from)
	}
	if _, ok := g.StateByID(t.to); !ok {
		return domain.NewBusinessRuleError(domain.RuleUnknownEndpoint,
			"target state %q does not exist in workflow", t.to)
	}
	if from.final {
		return domain.NewBusinessRuleError(domain.RuleSourceStateFinal,
			"state %q is final and cannot have outgoing transitions", from.name)
	}
	for _, existing := range g.transitions {
		if existing.from == t.from && existing.to == t.to {
			return domain.NewBusinessRuleError(domain.RuleDuplicateTransition,
				"transition %q -> %q already exists", from.name, t.to)
		}
	}

	g.transitions = append(g.transitions, t)
	return nil
}

// RemoveState removes the state with the given id.
// Fails with domain.ErrNotFound when absent, RuleInitialStateProtected when
// the state is initial, and RuleStateInUse when any transition still
// references it as source or target.
func (g *Graph) RemoveState(stateID string) error {
	s, ok := g.StateByID(stateID)
	if !ok {
		return domain.ErrNotFound
	}
	if s.initial {
		return domain.NewBusinessRuleError(domain.RuleInitialStateProtected,
			"initial state %q cannot be removed", s.name)
	}
	for _, t := range g.transitions {
		if t.from == stateID || t.to == stateID {
			return domain.NewBusinessRuleError(domain.RuleStateInUse,
				"state %q is referenced by transition %s", s.name, t.id)
		}
	}

	g.states = slices.DeleteFunc(g.states, func(st State) bool {
		return st.id == stateID
	})
	return nil
}

// RemoveTransition removes the transition with the given id.
// Fails with domain.ErrNotFound when absent, and RuleInitialStateStarved
// when the transition is the sole outgoing edge of the initial state: the
// entry point must always retain a way to progress.
func (g *Graph) RemoveTransition(transitionID string) error {
	t, ok := g.TransitionByID(transitionID)
	if !ok {
		return domain.ErrNotFound
	}

	if initial, hasInitial := g.InitialState(); hasInitial && t.from == initial.id {
		if g.outgoingCount(initial.id) == 1 {
			return domain.NewBusinessRuleError(domain.RuleInitialStateStarved,
				"transition is the only outgoing edge of initial state %q", initial.name)
		}
	}

	g.transitions = slices.DeleteFunc(g.transitions, func(tr Transition) bool {
		return tr.id == transitionID
	})
	return nil
}

// CanTransition reports whether an edge from fromStateID to toStateID exists
// whose role set contains role. Pure query; edges are directed, so the
// reverse direction is independent.
func (g *Graph) CanTransition(fromStateID, toStateID, role string) bool {
	for _, t := range g.transitions {
		if t.from == fromStateID && t.to == toStateID {
			return t.Allows(role)
		}
	}
	return false
}

// CanTransitionAny reports whether any of the given roles may traverse an
// edge from fromStateID to toStateID. Used by the task orchestration layer
// for actors holding several project roles.
func (g *Graph) CanTransitionAny(fromStateID, toStateID string, roles []string) bool {
	for _, role := range roles {
		if g.CanTransition(fromStateID, toStateID, role) {
			return true
		}
	}
	return false
}

func (g *Graph) outgoingCount(stateID string) int {
	n := 0
	for _, t := range g.transitions {
		if t.from == stateID {
			n++
		}
	}
	return n
}

// Snapshot is the persistence representation of a whole graph aggregate.
// Repositories persist and rehydrate graphs exclusively through snapshots so
// the unexported invariant-protected fields never leak.
type Snapshot struct {
	ID          string
	TenantID    string
	ProjectID   string
	Version     uint64
	States      []StateSnapshot
	Transitions []TransitionSnapshot
}

// Snapshot exports the full aggregate state.
func (g *Graph) Snapshot() Snapshot {
	states := make([]StateSnapshot, len(g.states))
	for i, s := range g.states {
		states[i] = s.Snapshot()
	}
	transitions := make([]TransitionSnapshot, len(g.transitions))
	for i, t := range g.transitions {
		transitions[i] = t.Snapshot()
	}
	return Snapshot{
		ID:          g.id,
		TenantID:    g.tenantID,
		ProjectID:   g.projectID,
		Version:     g.version,
		States:      states,
		Transitions: transitions,
	}
}

// FromSnapshot rehydrates a graph from its persisted form. The snapshot is
// trusted: invariants were enforced when the aggregate was built, so no
// checks are repeated here.
func FromSnapshot(s Snapshot) *Graph {
	g := &Graph{
		id:        s.ID,
		tenantID:  s.TenantID,
		projectID: s.ProjectID,
		version:   s.Version,
		states:    make([]State, len(s.States)),
	}
	for i, st := range s.States {
		g.states[i] = stateFromSnapshot(st)
	}
	if len(s.Transitions) > 0 {
		g.transitions = make([]Transition, len(s.Transitions))
		for i, tr := range s.Transitions {
			g.transitions[i] = transitionFromSnapshot(tr)
		}
	}
	return g
}
