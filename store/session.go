package store

import "sync"

type Role string

const (
	RoleCliente   Role = "cliente"
	RolePrestador Role = "prestador"
)

type SessionUser struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Session holds the single optional logged-in user.
type Session struct {
	mu      sync.Mutex
	user    *SessionUser
	subs    map[int]func(*SessionUser)
	nextSub int
}

func NewSession() *Session {
	return &Session{subs: make(map[int]func(*SessionUser))}
}

// Login sets the hardcoded mock record for the given role.
func (s *Session) Login(role Role) SessionUser {
	mock := SessionUser{ID: 1, Role: role}
	if role == RoleCliente {
		mock.Name = "João Cliente"
		mock.Email = "cliente@email.com"
	} else {
		mock.Name = "Maria Prestadora"
		mock.Email = "prestador@email.com"
	}

	s.mu.Lock()
	s.user = &mock
	s.mu.Unlock()

	s.notify()
	return mock
}

// Logout clears the session.
func (s *Session) Logout() {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()

	s.notify()
}

// Current returns the logged-in user, if any.
func (s *Session) Current() (SessionUser, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return SessionUser{}, false
	}
	return *s.user, true
}

// Subscribe registers fn, calls it immediately with the current value and
// returns an unsubscribe function. A nil value means logged out.
func (s *Session) Subscribe(fn func(*SessionUser)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	current := s.snapshot()
	s.mu.Unlock()

	fn(current)
	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Session) snapshot() *SessionUser {
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Session) notify() {
	s.mu.Lock()
	current := s.snapshot()
	fns := make([]func(*SessionUser), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(current)
	}
}
