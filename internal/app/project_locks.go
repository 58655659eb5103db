package app

import "sync"

// ProjectLocks serializes writes that touch a project's workflow graph and
// its tasks together. Graph topology and task status live in separate
// aggregates with independent versions, so optimistic save conflicts alone
// cannot order a status change against a concurrent topology change. A
// single process-wide instance must be shared by every service that mutates
// either aggregate for the rule to hold.
type ProjectLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewProjectLocks creates an empty lock table.
func NewProjectLocks() *ProjectLocks {
	return &ProjectLocks{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the mutex for the given project, creating it on first use,
// and returns the matching unlock. Entries are never evicted; the table
// grows with the number of distinct projects mutated in-process.
func (p *ProjectLocks) Lock(tenantID, projectID string) (unlock func()) {
	key := tenantID + "/" + projectID

	p.mu.Lock()
	m, ok := p.locks[key]
	if !ok {
		m = &sync.Mutex{}
		p.locks[key] = m
	}
	p.mu.Unlock()

	m.Lock()
	return m.Unlock
}
