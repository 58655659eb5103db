package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/dkoleva/trackflow/internal/ports"
)

// AdminRole is the role name that grants project administration. Projects
// may define any further roles; this one is the only name the engine
// interprets itself.
const AdminRole = "admin"

// Compile-time check that Directory implements ports.ProjectDirectory.
var _ ports.ProjectDirectory = (*Directory)(nil)

// Directory is an in-memory project/membership registry implementing the
// authorization collaborator port. Production deployments replace it with
// an adapter over the identity service.
type Directory struct {
	mu       sync.RWMutex
	projects map[string]*directoryProject // key: tenantID + "/" + projectID
}

type directoryProject struct {
	roles   []string
	members map[string][]string // userID -> role names
}

// NewDirectory creates an empty directory.
func NewDirectory() *Directory {
	return &Directory{projects: make(map[string]*directoryProject)}
}

// AddProject registers a project with its known role set. The admin role is
// always part of the set.
func (d *Directory) AddProject(tenantID, projectID string, roles ...string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	known := slices.Clone(roles)
	if !slices.Contains(known, AdminRole) {
		known = append(known, AdminRole)
	}
	d.projects[graphKey(tenantID, projectID)] = &directoryProject{
		roles:   known,
		members: make(map[string][]string),
	}
}

// SetMember sets a user's roles on a project. Unknown projects are ignored.
func (d *Directory) SetMember(tenantID, projectID, userID string, roles ...string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if p, ok := d.projects[graphKey(tenantID, projectID)]; ok {
		p.members[userID] = slices.Clone(roles)
	}
}

// ProjectExists reports whether the project exists within the tenant.
func (d *Directory) ProjectExists(_ context.Context, tenantID, projectID string) (bool, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	_, ok := d.projects[graphKey(tenantID, projectID)]
	return ok, nil
}

// IsProjectAdmin reports whether the user holds the admin role.
func (d *Directory) IsProjectAdmin(ctx context.Context, tenantID, projectID, userID string) (bool, error) {
	roles, err := d.RolesOf(ctx, tenantID, projectID, userID)
	if err != nil {
		return false, err
	}
	return slices.Contains(roles, AdminRole), nil
}

// IsProjectMember reports whether the user has any role on the project.
func (d *Directory) IsProjectMember(ctx context.Context, tenantID, projectID, userID string) (bool, error) {
	roles, err := d.RolesOf(ctx, tenantID, projectID, userID)
	if err != nil {
		return false, err
	}
	return len(roles) > 0, nil
}

// RolesOf returns the user's role names on the project; empty when the user
// is not a member or the project is unknown.
func (d *Directory) RolesOf(_ context.Context, tenantID, projectID, userID string) ([]string, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	p, ok := d.projects[graphKey(tenantID, projectID)]
	if !ok {
		return nil, nil
	}
	return slices.Clone(p.members[userID]), nil
}

// KnownRoles returns the project's defined role names.
func (d *Directory) KnownRoles(_ context.Context, tenantID, projectID string) ([]string, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	p, ok := d.projects[graphKey(tenantID, projectID)]
	if !ok {
		return nil, nil
	}
	return slices.Clone(p.roles), nil
}
