package mocks

import (
	"sync"

	"frs/infras/otel"
)

// Scope keeps what was traced on it in memory so tests can assert on it.
type Scope struct {
	mu         sync.Mutex
	Name       string
	Errors     []error
	Events     []string
	Attributes map[string]any
	Ended      bool
}

func (s *Scope) End() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Ended = true
}

func (s *Scope) Finish(err *error) {
	if err != nil && *err != nil {
		s.TraceError(*err)
	}

	s.End()
}

func (s *Scope) TraceError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Errors = append(s.Errors, err)
}

func (s *Scope) AddEvent(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Events = append(s.Events, name)
}

func (s *Scope) SetAttribute(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Attributes == nil {
		s.Attributes = map[string]any{}
	}

	s.Attributes[key] = value
}

func (s *Scope) SetAttributes(attributes map[string]any) {
	for key, value := range attributes {
		s.SetAttribute(key, value)
	}
}

func NewScope(name string) *Scope {
	return &Scope{Name: name}
}

var _ otel.Scope = (*Scope)(nil)
