package users

// CreateUserRequest carries the caller-supplied fields for a new user.
// Age is a pointer so "age": 0 stays distinguishable from an absent
// field. Email is an opaque case-sensitive string; no format check.
type CreateUserRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Email string `json:"email" validate:"required"`
	Age   *int   `json:"age" validate:"required,gte=0,lte=150"`
}

// UpdateUserRequest is a merge patch: only non-nil fields are applied,
// everything else is left untouched.
type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Email    *string `json:"email,omitempty"`
	Age      *int    `json:"age,omitempty" validate:"omitempty,gte=0,lte=150"`
	IsActive *bool   `json:"is_active,omitempty"`
}
