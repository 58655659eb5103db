package workflow

import (
	"strings"

	"github.com/dkoleva/trackflow/internal/domain"
)

// msgRequired is the validation message for mandatory fields.
const msgRequired = "is required"

// State is a named node in a workflow graph. Fields are unexported so a
// state can only be shaped by NewState and the graph's own mutators; there
// is no setter that could bypass an invariant check.
type State struct {
	id      string
	name    string
	initial bool
	final   bool
}

// NewState creates a State ready to be added to a graph.
// Returns a *domain.ValidationError when id or name is blank.
func NewState(id, name string, initial, final bool) (State, error) {
	fields := make(map[string]string)

	if strings.TrimSpace(id) == "" {
		fields["id"] = msgRequired
	}
	if strings.TrimSpace(name) == "" {
		fields["name"] = msgRequired
	}

	if len(fields) > 0 {
		return State{}, &domain.ValidationError{Fields: fields}
	}

	return State{
		id:      id,
		name:    strings.TrimSpace(name),
		initial: initial,
		final:   final,
	}, nil
}

// ID returns the state's identifier.
func (s State) ID() string { return s.id }

// Name returns the state's name, unique within its graph.
func (s State) Name() string { return s.name }

// IsInitial reports whether tasks enter the workflow in this state.
func (s State) IsInitial() bool { return s.initial }

// IsFinal reports whether the state is marked terminal. The marker is
// advisory for UIs; the graph enforces it only by rejecting outgoing edges.
func (s State) IsFinal() bool { return s.final }

// StateSnapshot is the persistence/transport representation of a State.
type StateSnapshot struct {
	ID      string
	Name    string
	Initial bool
	Final   bool
}

// Snapshot exports the state for persistence.
func (s State) Snapshot() StateSnapshot {
	return StateSnapshot{ID: s.id, Name: s.name, Initial: s.initial, Final: s.final}
}

func stateFromSnapshot(s StateSnapshot) State {
	return State{id: s.ID, name: s.Name, initial: s.Initial, final: s.Final}
}
