package source

import (
	"context"
	"sync"
)

// Mock implements API for tests. Event pages and errors are scripted in
// poll order; once the script is exhausted the last page is replayed,
// which models the service re-returning the recent window on every poll.
type Mock struct {
	mu sync.Mutex

	pages []pollResult

	describeStack *Stack
	describeErr   error

	eventCalls    []string
	describeCalls []string
}

type pollResult struct {
	events []Event
	err    error
}

// NewMock creates an empty Mock. With no scripted pages, StackEvents
// returns an empty page.
func NewMock() *Mock {
	return &Mock{}
}

// QueuePage scripts the next StackEvents response, most-recent-first.
func (m *Mock) QueuePage(events ...Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pages = append(m.pages, pollResult{events: events})
}

// QueueError scripts the next StackEvents call to fail with err.
func (m *Mock) QueueError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pages = append(m.pages, pollResult{err: err})
}

// SetDescribe configures the Describe response.
func (m *Mock) SetDescribe(stack *Stack, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.describeStack = stack
	m.describeErr = err
}

// StackEvents pops the next scripted result. The final script entry is
// sticky so an indefinitely-polling caller keeps seeing the same window.
func (m *Mock) StackEvents(ctx context.Context, name string) ([]Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.eventCalls = append(m.eventCalls, name)

	if len(m.pages) == 0 {
		return nil, nil
	}
	next := m.pages[0]
	if len(m.pages) > 1 {
		m.pages = m.pages[1:]
	}
	if next.err != nil {
		return nil, next.err
	}
	// Copy so callers cannot mutate the script.
	page := make([]Event, len(next.events))
	copy(page, next.events)
	return page, nil
}

// Describe returns the configured snapshot.
func (m *Mock) Describe(ctx context.Context, name string) (*Stack, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.describeCalls = append(m.describeCalls, name)

	if m.describeErr != nil {
		return nil, m.describeErr
	}
	if m.describeStack == nil {
		return nil, &NotFoundError{Stack: name}
	}
	stack := *m.describeStack
	return &stack, nil
}

// EventCalls returns the stack names passed to StackEvents, in order.
func (m *Mock) EventCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	calls := make([]string, len(m.eventCalls))
	copy(calls, m.eventCalls)
	return calls
}

// DescribeCalls returns the stack names passed to Describe, in order.
func (m *Mock) DescribeCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	calls := make([]string, len(m.describeCalls))
	copy(calls, m.describeCalls)
	return calls
}

// Verify Mock implements the API interface.
var _ API = (*Mock)(nil)
