// Package session carries the caller's identity and per-request state
// through a request context. A Session is created by Middleware for each
// request and is never shared between requests.
package session

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type Session struct {
	UserID    uuid.UUID
	Email     string
	RequestID string

	mu    sync.Mutex
	state map[string]any
}

func New(userID uuid.UUID, email string) *Session {
	return &Session{
		UserID:    userID,
		Email:     email,
		RequestID: uuid.NewString(),
		state:     make(map[string]any),
	}
}

func (s *Session) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == nil {
		s.state = make(map[string]any)
	}
	s.state[key] = value
}

func (s *Session) Get(key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.state[key]
	return v, ok
}

type contextKey struct{}

func NewContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(contextKey{}).(*Session)
	return s, ok && s != nil
}
