package workflow

import (
	"slices"
	"strings"

	"github.com/dkoleva/trackflow/internal/domain"
)

// Transition is a directed, role-gated edge between two states of the same
// graph. Roles are free-form names, not a closed enum; the service layer
// validates them against the project's known role set before they reach the
// graph. Fields are unexported so edges cannot be rewired in place.
type Transition struct {
	id    string
	from  string
	to    string
	roles []string // sorted, deduplicated
}

// NewTransition creates a Transition from one state id to another,
// traversable by the given roles. Blank role names are rejected; duplicates
// are collapsed. Returns a *domain.ValidationError on malformed input.
func NewTransition(id, fromStateID, toStateID string, roles []string) (Transition, error) {
	fields := make(map[string]string)

	if strings.TrimSpace(id) == "" {
		fields["id"] = msgRequired
	}
	if strings.TrimSpace(fromStateID) == "" {
		fields["from_state_id"] = msgRequired
	}
	if strings.TrimSpace(toStateID) == "" {
		fields["to_state_id"] = msgRequired
	}
	if len(roles) == 0 {
		fields["roles"] = "at least one role is required"
	}
	for _, r := range roles {
		if strings.TrimSpace(r) == "" {
			fields["roles"] = "role names must not be blank"
		}
	}

	if len(fields) > 0 {
		return Transition{}, &domain.ValidationError{Fields: fields}
	}

	normalized := slices.Clone(roles)
	slices.Sort(normalized)
	normalized = slices.Compact(normalized)

	return Transition{
		id:    id,
		from:  fromStateID,
		to:    toStateID,
		roles: normalized,
	}, nil
}

// ID returns the transition's identifier.
func (t Transition) ID() string { return t.id }

// FromStateID returns the id of the source state.
func (t Transition) FromStateID() string { return t.from }

// ToStateID returns the id of the target state.
func (t Transition) ToStateID() string { return t.to }

// Roles returns a copy of the allowed role names, sorted.
func (t Transition) Roles() []string { return slices.Clone(t.roles) }

// Allows reports whether the given role may traverse this transition.
func (t Transition) Allows(role string) bool {
	_, found := slices.BinarySearch(t.roles, role)
	return found
}

// TransitionSnapshot is the persistence/transport representation of a Transition.
type TransitionSnapshot struct {
	ID          string
	FromStateID string
	ToStateID   string
	Roles       []string
}

// Snapshot exports the transition for persistence.
func (t Transition) Snapshot() TransitionSnapshot {
	return TransitionSnapshot{
		ID:          t.id,
		FromStateID: t.from,
		ToStateID:   t.to,
		Roles:       slices.Clone(t.roles),
	}
}

func transitionFromSnapshot(s TransitionSnapshot) Transition {
	roles := slices.Clone(s.Roles)
	slices.Sort(roles)
	roles = slices.Compact(roles)
	return Transition{id: s.ID, from: s.FromStateID, to: s.ToStateID, roles: roles}
}
