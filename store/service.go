package store

import "sync"

type Variation struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Duration int     `json:"duration"`
}

type Service struct {
	ID          int         `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Variations  []Variation `json:"variations"`
}

type ServiceStore struct {
	mu      sync.Mutex
	nextID  int
	items   []Service
	subs    map[int]func([]Service)
	nextSub int
}

func NewServiceStore() *ServiceStore {
	return &ServiceStore{
		nextID: 1,
		subs:   make(map[int]func([]Service)),
	}
}

// Add appends the service with the next sequential local id.
func (s *ServiceStore) Add(svc Service) Service {
	s.mu.Lock()
	svc.ID = s.nextID
	s.nextID++
	s.items = append(s.items, svc)
	s.mu.Unlock()

	s.notify()
	return svc
}

// Remove deletes the service with the given id. It reports whether an
// entry was removed.
func (s *ServiceStore) Remove(id int) bool {
	s.mu.Lock()
	removed := false
	kept := s.items[:0]
	for _, svc := range s.items {
		if svc.ID == id {
			removed = true
			continue
		}
		kept = append(kept, svc)
	}
	s.items = kept
	s.mu.Unlock()

	if removed {
		s.notify()
	}
	return removed
}

// List returns a copy of the services in insertion order.
func (s *ServiceStore) List() []Service {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Service(nil), s.items...)
}

// Subscribe registers fn, calls it immediately with the current value and
// returns an unsubscribe function.
func (s *ServiceStore) Subscribe(fn func([]Service)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	current := append([]Service(nil), s.items...)
	s.mu.Unlock()

	fn(current)
	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *ServiceStore) notify() {
	s.mu.Lock()
	current := append([]Service(nil), s.items...)
	fns := make([]func([]Service), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(current)
	}
}
