package user

// Set is an insertion-ordered collection of users keyed by ID. It holds the
// users known to the current session, independently of any service cache.
type Set struct {
	order []string
	byID  map[string]*User
}

// NewSet returns a Set holding users; later duplicates of an ID are ignored.
func NewSet(users ...*User) *Set {
	s := &Set{byID: make(map[string]*User, len(users))}
	for _, u := range users {
		s.Add(u)
	}
	return s
}

// Add inserts u and reports whether it was added. A user whose ID is
// already present is not added.
func (s *Set) Add(u *User) bool {
	if u == nil || s.Contains(u.ID) {
		return false
	}
	if s.byID == nil {
		s.byID = make(map[string]*User)
	}
	s.order = append(s.order, u.ID)
	s.byID[u.ID] = u
	return true
}

// Contains reports whether a user with id is present.
func (s *Set) Contains(id string) bool {
	_, ok := s.byID[id]
	return ok
}

// Get returns the user with id.
func (s *Set) Get(id string) (*User, bool) {
	u, ok := s.byID[id]
	return u, ok
}

// Remove deletes the user with id and reports whether it was present.
func (s *Set) Remove(id string) bool {
	if !s.Contains(id) {
		return false
	}
	delete(s.byID, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of users.
func (s *Set) Len() int {
	return len(s.order)
}

// All returns the users in insertion order.
func (s *Set) All() []*User {
	out := make([]*User, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}
