// Package store holds the client-side reactive collections: in-memory,
// process-local state with writable-style subscriptions. Ids here are minted
// locally and form a separate id space from the server's primary keys.
package store

import "sync"

type Booking struct {
	ID          int    `json:"id"`
	ServiceID   int    `json:"serviceId"`
	ServiceName string `json:"serviceName"`
	Variation   string `json:"variation"`
	ClientName  string `json:"clientName"`
	ClientID    int    `json:"clientId"`
	Date        string `json:"date"`
	Time        string `json:"time"`
}

type BookingStore struct {
	mu      sync.Mutex
	nextID  int
	items   []Booking
	subs    map[int]func([]Booking)
	nextSub int
}

func NewBookingStore() *BookingStore {
	return &BookingStore{
		nextID: 1,
		subs:   make(map[int]func([]Booking)),
	}
}

// Add appends the booking with the next sequential local id.
func (s *BookingStore) Add(b Booking) Booking {
	s.mu.Lock()
	b.ID = s.nextID
	s.nextID++
	s.items = append(s.items, b)
	s.mu.Unlock()

	s.notify()
	return b
}

// Cancel removes the booking with the given id. It reports whether an
// entry was removed.
func (s *BookingStore) Cancel(id int) bool {
	s.mu.Lock()
	removed := false
	kept := s.items[:0]
	for _, b := range s.items {
		if b.ID == id {
			removed = true
			continue
		}
		kept = append(kept, b)
	}
	s.items = kept
	s.mu.Unlock()

	if removed {
		s.notify()
	}
	return removed
}

// List returns a copy of the bookings in insertion order.
func (s *BookingStore) List() []Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Booking(nil), s.items...)
}

// Subscribe registers fn, calls it immediately with the current value and
// returns an unsubscribe function.
func (s *BookingStore) Subscribe(fn func([]Booking)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	current := append([]Booking(nil), s.items...)
	s.mu.Unlock()

	fn(current)
	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *BookingStore) notify() {
	s.mu.Lock()
	current := append([]Booking(nil), s.items...)
	fns := make([]func([]Booking), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(current)
	}
}
