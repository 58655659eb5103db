// Package events defines the domain events emitted by the task lifecycle
// and the asynchronous dispatcher that delivers them to audit sinks.
package events

import "time"

// StatusChanged is emitted after a task's state change has been durably
// committed. Delivery happens strictly after the commit and never blocks or
// rolls back the state change.
type StatusChanged struct {
	TaskID        string    `json:"task_id"`
	TenantID      string    `json:"tenant_id"`
	ProjectID     string    `json:"project_id"`
	FromStateName string    `json:"from_state_name"`
	ToStateName   string    `json:"to_state_name"`
	ActorID       string    `json:"actor_id"`
	OccurredAt    time.Time `json:"occurred_at"` // UTC
}
