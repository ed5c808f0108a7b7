package users

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/roster-hq/roster/internal/platform/httpx"
)

// ErrEmailTaken signals the unique-email invariant would be violated.
var ErrEmailTaken = fmt.Errorf("email already registered: %w", httpx.ErrDuplicate)

// Registry is the in-memory user store: records keyed by identifier,
// listed in insertion order, with a monotonic next-identifier counter
// starting at 1. Identifiers are never reused, even after deletes.
//
// net/http serves requests concurrently, so Create and Update hold the
// write lock across the uniqueness scan and the mutation; the scan and
// the write are observed as a single atomic step.
type Registry struct {
	mu     sync.RWMutex
	users  map[int64]*User
	order  []int64
	nextID int64
}

// NewRegistry returns an empty registry with process-lifetime scope.
func NewRegistry() *Registry {
	return &Registry{
		users:  make(map[int64]*User),
		nextID: 1,
	}
}

// Create validates nothing itself (DTO validation happens at the HTTP
// boundary), scans for an email collision and inserts the record. On
// conflict the registry is left unchanged.
func (r *Registry) Create(ctx context.Context, req CreateUserRequest) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range r.order {
		if r.users[id].Email == req.Email {
			return nil, ErrEmailTaken
		}
	}

	user := &User{
		ID:        r.nextID,
		Name:      req.Name,
		Email:     req.Email,
		Age:       *req.Age,
		CreatedAt: time.Now(),
		IsActive:  true,
	}
	r.users[user.ID] = user
	r.order = append(r.order, user.ID)
	r.nextID++

	out := *user
	return &out, nil
}

// List returns at most limit records in insertion order, starting at
// offset skip. Out-of-range windows yield an empty slice; List never
// fails.
func (r *Registry) List(ctx context.Context, skip, limit int) ([]User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if skip < 0 {
		skip = 0
	}
	if skip > len(r.order) {
		skip = len(r.order)
	}
	end := skip + limit
	if limit < 0 || end > len(r.order) {
		end = len(r.order)
	}

	out := make([]User, 0, end-skip)
	for _, id := range r.order[skip:end] {
		out = append(out, *r.users[id])
	}
	return out, nil
}

// Get looks up a record by identifier.
func (r *Registry) Get(ctx context.Context, id int64) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("user %d: %w", id, httpx.ErrNotFound)
	}
	out := *user
	return &out, nil
}

// Update applies a merge patch. When the patch carries an email, the
// uniqueness scan runs against all other records before anything is
// written; on conflict the record is left untouched. An empty patch
// succeeds and returns the record unchanged.
func (r *Registry) Update(ctx context.Context, id int64, req UpdateUserRequest) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("user %d: %w", id, httpx.ErrNotFound)
	}

	if req.Email != nil {
		for _, otherID := range r.order {
			if otherID != id && r.users[otherID].Email == *req.Email {
				return nil, ErrEmailTaken
			}
		}
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Age != nil {
		user.Age = *req.Age
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	out := *user
	return &out, nil
}

// Delete removes a record. The identifier is never reassigned.
func (r *Registry) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return fmt.Errorf("user %d: %w", id, httpx.ErrNotFound)
	}
	delete(r.users, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// Len reports the number of records currently stored.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
