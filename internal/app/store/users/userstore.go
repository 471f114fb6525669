package userstore

import (
	"errors"
	"sync"

	"github.com/dalemusser/bankadmin/internal/domain/models"
)

// ErrNotFound is returned when no record carries the requested id.
// The collection is left unchanged.
var ErrNotFound = errors.New("user not found")

// Store owns the ordered user collection.
//
// It performs no validation: callers are trusted to hand it well-formed
// records. The lock only exists because several browser sessions share one
// Store; each primitive is still a single synchronous edit.
type Store struct {
	mu     sync.RWMutex
	users  []models.User
	serial uint64 // last serial stamped
}

// New returns a Store holding a copy of seed, in order.
func New(seed []models.User) *Store {
	s := &Store{users: make([]models.User, 0, len(seed))}
	for _, u := range seed {
		s.insertLocked(u)
	}
	return s
}

// NextID returns 1 for an empty collection, else the highest live id plus one.
// It is recomputed on every call, so deleting the current maximum lets that
// id be issued again.
func (s *Store) NextID() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nextIDLocked()
}

func (s *Store) nextIDLocked() int {
	maxID := 0
	for _, u := range s.users {
		if u.ID > maxID {
			maxID = u.ID
		}
	}
	return maxID + 1
}

// Insert appends u, keeping its id, and returns the stored record.
func (s *Store) Insert(u models.User) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertLocked(u)
}

// Create assigns the next id to u, appends it, and returns the stored record.
// Id assignment and append happen under one lock so two sessions adding at
// once cannot receive the same id.
func (s *Store) Create(u models.User) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u.ID = s.nextIDLocked()
	return s.insertLocked(u)
}

// insertLocked stamps a fresh serial on u and appends it.
func (s *Store) insertLocked(u models.User) models.User {
	s.serial++
	u.Serial = s.serial
	s.users = append(s.users, u)
	return u
}

// Replace overwrites username, email, phone and role of the record ref names.
// ID, Status and Serial are never touched.
func (s *Store) Replace(ref models.Ref, f models.UserFields) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.refLocked(ref)
	if i < 0 {
		return ErrNotFound
	}
	u := &s.users[i]
	u.Username = f.Username
	u.Email = f.Email
	u.Phone = f.Phone
	u.Role = f.Role
	return nil
}

// Remove deletes the record ref names without reordering the rest.
func (s *Store) Remove(ref models.Ref) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.refLocked(ref)
	if i < 0 {
		return ErrNotFound
	}
	s.users = append(s.users[:i], s.users[i+1:]...)
	return nil
}

// ToggleStatus flips Active and Inactive on the record with the given id and
// returns the status it now has.
func (s *Store) ToggleStatus(id int) (models.Status, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexLocked(id)
	if i < 0 {
		return "", ErrNotFound
	}
	s.users[i].Status = s.users[i].Status.Flip()
	return s.users[i].Status, nil
}

// Get returns a copy of the record with the given id.
func (s *Store) Get(id int) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexLocked(id)
	if i < 0 {
		return models.User{}, ErrNotFound
	}
	return s.users[i], nil
}

// List returns a copy of the collection in order.
func (s *Store) List() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out
}

// Len returns the number of records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

// Counts summarizes the collection for the dashboard.
type Counts struct {
	Total    int
	Active   int
	Inactive int
	Admins   int
}

// Counts tallies records by status and role.
func (s *Store) Counts() Counts {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c := Counts{Total: len(s.users)}
	for _, u := range s.users {
		if u.Status == models.StatusActive {
			c.Active++
		} else {
			c.Inactive++
		}
		if u.Role == models.RoleAdmin {
			c.Admins++
		}
	}
	return c
}

func (s *Store) refLocked(ref models.Ref) int {
	i := s.indexLocked(ref.ID)
	if i < 0 || !ref.Matches(s.users[i]) {
		return -1
	}
	return i
}

func (s *Store) indexLocked(id int) int {
	for i, u := range s.users {
		if u.ID == id {
			return i
		}
	}
	return -1
}
