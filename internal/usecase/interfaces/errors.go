package interfaces

import (
	"errors"
	"fmt"
)

// ErrUniqueConflict is returned by repositories when a uniqueness guard
// (custom link, form link slug, one form link per user) rejects a write.
var ErrUniqueConflict = errors.New("unique key already taken")

// ErrPreconditionFailed is returned when a conditional write no longer
// matches the stored state (e.g. the status changed concurrently).
var ErrPreconditionFailed = errors.New("precondition failed")

// UniqueConflictError tells which guard rejected the write.
type UniqueConflictError struct {
	Scope string
	Value string
}

func (e *UniqueConflictError) Error() string {
	return fmt.Sprintf("%s %q already taken", e.Scope, e.Value)
}

func (e *UniqueConflictError) Is(target error) bool { return target == ErrUniqueConflict }

// Uniqueness scopes.
const (
	ScopeBudgetLink   = "budget_link"
	ScopeFormLinkSlug = "form_link_slug"
	ScopeFormLinkUser = "form_link_user"
)
