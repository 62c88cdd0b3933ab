/*
Copyright © 2025 DumpPro Inc.

Released under MIT license.
*/

package storage

import (
	"context"
	"sync"
)

// Memory is an in-memory Store. It backs local development runs
// (no storage DSN configured) and tests.
type Memory struct {
	mu       sync.RWMutex
	quotes   map[string]*Quote
	contacts map[string]*ContactMessage
}

var _ Store = (*Memory)(nil)

// NewMemory creates a new in-memory store.
func NewMemory() *Memory {
	return &Memory{
		quotes:   make(map[string]*Quote),
		contacts: make(map[string]*ContactMessage),
	}
}

// CreateQuote stores a copy of the quote.
func (s *Memory) CreateQuote(_ context.Context, q *Quote) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *q
	s.quotes[q.ID] = &stored
	return nil
}

// CreateContactMessage stores a copy of the contact message.
func (s *Memory) CreateContactMessage(_ context.Context, m *ContactMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *m
	s.contacts[m.ID] = &stored
	return nil
}

// Ping implements Store.
func (s *Memory) Ping(_ context.Context) error {
	return nil
}

// Close implements Store.
func (s *Memory) Close() {}

// QuoteByID returns a stored quote. Intended for tests and local inspection.
func (s *Memory) QuoteByID(id string) (*Quote, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	q, ok := s.quotes[id]
	return q, ok
}

// ContactMessageByID returns a stored contact message.
func (s *Memory) ContactMessageByID(id string) (*ContactMessage, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.contacts[id]
	return m, ok
}

// QuotesCount returns the number of stored quotes.
func (s *Memory) QuotesCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.quotes)
}

// ContactMessagesCount returns the number of stored contact messages.
func (s *Memory) ContactMessagesCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.contacts)
}
