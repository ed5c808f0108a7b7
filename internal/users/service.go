package users

import (
	"context"
)

// defaultListLimit caps a listing when the caller omits the limit.
const defaultListLimit = 100

// RepositoryPort defines data access methods for users.
type RepositoryPort interface {
	Create(ctx context.Context, req CreateUserRequest) (*User, error)
	List(ctx context.Context, skip, limit int) ([]User, error)
	Get(ctx context.Context, id int64) (*User, error)
	Update(ctx context.Context, id int64, req UpdateUserRequest) (*User, error)
	Delete(ctx context.Context, id int64) error
}

// Service handles user business logic.
type Service struct {
	repo RepositoryPort
}

// NewService builds Service instance.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo}
}

// Create registers a new user.
func (s *Service) Create(ctx context.Context, req CreateUserRequest) (*User, error) {
	return s.repo.Create(ctx, req)
}

// List returns a window of users in creation order. Negative skip
// falls back to 0, non-positive limit to defaultListLimit.
func (s *Service) List(ctx context.Context, skip, limit int) ([]User, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	return s.repo.List(ctx, skip, limit)
}

// Get returns the user with the given identifier.
func (s *Service) Get(ctx context.Context, id int64) (*User, error) {
	return s.repo.Get(ctx, id)
}

// Update applies a merge patch to an existing user.
func (s *Service) Update(ctx context.Context, id int64, req UpdateUserRequest) (*User, error) {
	return s.repo.Update(ctx, id, req)
}

// Delete removes the user with the given identifier.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
