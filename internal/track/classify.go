package track

import "github.com/mfleet/stackwatch/internal/source"

// terminalStatuses are the tokens that, on the stack's own pseudo-type,
// signal the operation has finished one way or the other. Note that a
// plain update failure is not terminal: the service follows it with a
// rollback, which is what eventually terminates.
var terminalStatuses = map[source.Status]struct{}{
	source.StatusCreateComplete:         {},
	source.StatusCreateFailed:           {},
	source.StatusDeleteComplete:         {},
	source.StatusDeleteFailed:           {},
	source.StatusRollbackComplete:       {},
	source.StatusRollbackFailed:         {},
	source.StatusUpdateComplete:         {},
	source.StatusUpdateRollbackComplete: {},
	source.StatusUpdateRollbackFailed:   {},
}

// successStatuses are the terminal tokens that mean the operation
// achieved what it set out to do. A completed rollback or delete is
// terminal but not a success.
var successStatuses = map[source.Status]struct{}{
	source.StatusCreateComplete: {},
	source.StatusUpdateComplete: {},
}

// IsTerminal reports whether e carries a terminal status on the stack's
// own pseudo-type. Member resources share the status vocabulary, so the
// type check is load-bearing: a CREATE_COMPLETE on a member resource never
// signals operation completion. Callers tracking a specific stack must
// additionally match e.LogicalID against the stack name.
func IsTerminal(e source.Event) bool {
	if e.Type != source.StackType {
		return false
	}
	_, ok := terminalStatuses[e.Status]
	return ok
}

// IsSuccess reports whether e is terminal and the operation succeeded.
func IsSuccess(e source.Event) bool {
	if !IsTerminal(e) {
		return false
	}
	_, ok := successStatuses[e.Status]
	return ok
}
