// Package source provides access to the deployment service's event feed.
//
// The feed is best-effort: pages arrive most-recent-first, may overlap
// between polls, and carry no delivery guarantees. Callers that need
// chronological, exactly-once processing layer that on top (see
// internal/track).
package source

import "github.com/google/uuid"

// StackType is the pseudo resource type the service assigns to events
// emitted by the stack itself, as opposed to its member resources.
const StackType = "Deploy::Stack"

// Status is a deployment status token, consumed verbatim from the service.
type Status string

// Status tokens emitted by the deployment service. Member resources and
// the stack itself share this vocabulary. The set is open-ended: unknown
// tokens are passed through and rendered with a neutral style.
const (
	StatusCreateInProgress Status = "CREATE_IN_PROGRESS"
	StatusCreateComplete   Status = "CREATE_COMPLETE"
	StatusCreateFailed     Status = "CREATE_FAILED"

	StatusDeleteInProgress Status = "DELETE_IN_PROGRESS"
	StatusDeleteComplete   Status = "DELETE_COMPLETE"
	StatusDeleteFailed     Status = "DELETE_FAILED"

	StatusRollbackInProgress Status = "ROLLBACK_IN_PROGRESS"
	StatusRollbackComplete   Status = "ROLLBACK_COMPLETE"
	StatusRollbackFailed     Status = "ROLLBACK_FAILED"

	StatusUpdateInProgress Status = "UPDATE_IN_PROGRESS"
	StatusUpdateComplete   Status = "UPDATE_COMPLETE"

	StatusUpdateRollbackInProgress Status = "UPDATE_ROLLBACK_IN_PROGRESS"
	StatusUpdateRollbackComplete   Status = "UPDATE_ROLLBACK_COMPLETE"
	StatusUpdateRollbackFailed     Status = "UPDATE_ROLLBACK_FAILED"
)

// Event is a single status transition reported by the deployment service.
// Events are immutable once observed. IDs are opaque and globally unique.
type Event struct {
	ID        string `json:"id"`
	StackName string `json:"stack_name"`
	LogicalID string `json:"logical_id"`
	Type      string `json:"type"`
	Status    Status `json:"status"`
	Reason    string `json:"reason,omitempty"`
}

// Stack is the on-demand snapshot returned by Describe.
type Stack struct {
	Name   string `json:"name"`
	Status Status `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// NewEventID returns a fresh opaque event id. The service mints ids the
// same way; this is used by the mock source and test fixtures.
func NewEventID() string {
	return uuid.NewString()
}
