package order

import (
	"fmt"
	"sync"
)

// CustomerSequence is the session-scoped counter behind customer ids.
// It starts at 1, increments on every successful submission and is
// monotonic for the lifetime of the process; it is never persisted, so
// a restart resets it.
type CustomerSequence struct {
	mu sync.Mutex
	n  int
}

// NewCustomerSequence creates a sequence positioned at its initial value
func NewCustomerSequence() *CustomerSequence {
	return &CustomerSequence{n: 1}
}

// CurrentID returns the customer id for the current counter value
// without advancing it, e.g. "CUST-001"
func (s *CustomerSequence) CurrentID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return formatCustomerID(s.n)
}

// Next advances the counter and returns the new customer id
func (s *CustomerSequence) Next() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return formatCustomerID(s.n)
}

// Current returns the raw counter value
func (s *CustomerSequence) Current() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.n
}

// formatCustomerID zero-pads the counter to three digits
func formatCustomerID(n int) string {
	return fmt.Sprintf("CUST-%03d", n)
}
