package domain

import (
	"fmt"

	"github.com/SscSPs/travel_request_app/internal/apperrors"
)

// Action is something a principal does to an existing travel request.
type Action string

const (
	ActionEdit          Action = "edit"
	ActionDelete        Action = "delete"
	ActionApprove       Action = "approve"
	ActionReject        Action = "reject"
	ActionRequestInfo   Action = "fi_request"
	ActionManagerUpdate Action = "manager_update"
	ActionClose         Action = "close"
	ActionAdminUpdate   Action = "admin_update"
)

// transitionRule describes who may perform an action, from which states, and
// which state results. A nil from list means any state; an empty to means unchanged.
type transitionRule struct {
	actor  Role
	from   []TravelRequestStatus
	to     TravelRequestStatus
	denied string
}

// Manager decisions carry no source-state guard: a closed request can be
// re-decided by its assigned manager. Employee edits/deletes and admin close are gated.
var lifecycleRules = map[Action]transitionRule{
	ActionEdit:          {actor: RoleEmployee, from: []TravelRequestStatus{StatusPending, StatusFIRequired}, denied: "Cannot update request"},
	ActionDelete:        {actor: RoleEmployee, from: []TravelRequestStatus{StatusPending, StatusFIRequired}, denied: "Cannot delete request"},
	ActionApprove:       {actor: RoleManager, to: StatusApproved},
	ActionReject:        {actor: RoleManager, to: StatusRejected},
	ActionRequestInfo:   {actor: RoleManager, to: StatusFIRequired},
	ActionManagerUpdate: {actor: RoleManager},
	ActionClose:         {actor: RoleAdmin, from: []TravelRequestStatus{StatusApproved}, to: StatusClosed, denied: "Request is not approved"},
	ActionAdminUpdate:   {actor: RoleAdmin},
}

func (r transitionRule) allows(s TravelRequestStatus) bool {
	if r.from == nil {
		return true
	}
	for _, allowed := range r.from {
		if s == allowed {
			return true
		}
	}
	return false
}

// ActionInput carries the optional payload of an action.
type ActionInput struct {
	Note  *string            // Manager note for approve / reject / fi_request
	Patch TravelRequestPatch // Field merge for edit / manager_update / admin_update
}

// ActorOf returns the role allowed to perform a.
func ActorOf(a Action) (Role, bool) {
	rule, ok := lifecycleRules[a]
	return rule.actor, ok
}

// CanPerform reports whether a is permitted on a request in state s.
func CanPerform(a Action, s TravelRequestStatus) bool {
	rule, ok := lifecycleRules[a]
	return ok && rule.allows(s)
}

// Perform applies a to tr on behalf of by, enforcing the actor and the state gate
// and applying the side effects. On error tr must be discarded.
func (tr *TravelRequest) Perform(a Action, by Principal, in ActionInput) error {
	rule, ok := lifecycleRules[a]
	if !ok {
		return fmt.Errorf("unknown travel request action %q", a)
	}
	if by.Role != rule.actor {
		return apperrors.ErrForbidden
	}
	if !rule.allows(tr.Status) {
		return apperrors.NewOperationNotAllowedError(rule.denied)
	}

	switch a {
	case ActionApprove, ActionReject, ActionRequestInfo:
		note := ""
		if in.Note != nil {
			note = *in.Note
		}
		tr.ManagerNote = &note
	case ActionClose:
		adminID := by.ID
		tr.ProcessedBy = &adminID
	case ActionEdit, ActionManagerUpdate, ActionAdminUpdate:
		if err := in.Patch.permittedFor(by.Role); err != nil {
			return err
		}
		in.Patch.applyTo(tr)
		if err := tr.Validate(); err != nil {
			return err
		}
	}

	if rule.to != "" {
		tr.Status = rule.to
	}
	tr.IsClosed = tr.Status == StatusClosed
	return nil
}
