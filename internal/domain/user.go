package domain

import (
	"time"
)

const DefaultUserRole = "Brand Manager"

type User struct {
	ID              int       `json:"id"`
	Username        string    `json:"username"`
	Email           *string   `json:"email"`
	PasswordHash    string    `json:"-"`
	Role            string    `json:"role"`
	FirstName       *string   `json:"firstName"`
	LastName        *string   `json:"lastName"`
	ProfileImageURL *string   `json:"profileImageUrl"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type CreateUserRequest struct {
	Username        string  `json:"username" validate:"required,min=3,max=64"`
	Email           *string `json:"email" validate:"omitempty,email"`
	Password        string  `json:"password" validate:"required,min=6"`
	Role            string  `json:"role"`
	FirstName       *string `json:"firstName"`
	LastName        *string `json:"lastName"`
	ProfileImageURL *string `json:"profileImageUrl" validate:"omitempty,url"`
}

// UpdateUserRequest contém apenas os campos que devem ser alterados
type UpdateUserRequest struct {
	Username        *string `json:"username" validate:"omitempty,min=3,max=64"`
	Email           *string `json:"email" validate:"omitempty,email"`
	Password        *string `json:"password" validate:"omitempty,min=6"`
	PasswordHash    *string `json:"-"`
	Role            *string `json:"role"`
	FirstName       *string `json:"firstName"`
	LastName        *string `json:"lastName"`
	ProfileImageURL *string `json:"profileImageUrl" validate:"omitempty,url"`
}

// Apply aplica o patch sobre o usuário. A senha já deve estar em PasswordHash.
func (r *UpdateUserRequest) Apply(user *User) {
	if r.Username != nil {
		user.Username = *r.Username
	}
	if r.Email != nil {
		user.Email = r.Email
	}
	if r.PasswordHash != nil {
		user.PasswordHash = *r.PasswordHash
	}
	if r.Role != nil {
		user.Role = *r.Role
	}
	if r.FirstName != nil {
		user.FirstName = r.FirstName
	}
	if r.LastName != nil {
		user.LastName = r.LastName
	}
	if r.ProfileImageURL != nil {
		user.ProfileImageURL = r.ProfileImageURL
	}
}
