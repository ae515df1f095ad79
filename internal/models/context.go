package models

import "github.com/google/uuid"

// ViewingContext is the immutable per-request snapshot of everything
// that influences which internships a viewer sees. It is built once by
// the handler and passed into the pure filter; toggles and search state
// never live anywhere else.
type ViewingContext struct {
	Role                 Role
	ShowAll              bool
	ShowExpired          bool
	SearchTerm           string
	AppliedInternshipIDs map[uuid.UUID]struct{}
}

// HasApplied reports whether the viewer already applied to the given
// internship. Safe on a nil map.
func (vc ViewingContext) HasApplied(id uuid.UUID) bool {
	_, ok := vc.AppliedInternshipIDs[id]
	return ok
}
