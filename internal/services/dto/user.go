package dto

import "crm_backend/internal/models"

// CreateUserRequest - admin creates a staff account
type CreateUserRequest struct {
	Email    string          `json:"email" validate:"required,email"`
	Password string          `json:"password" validate:"required,min=8"`
	FullName string          `json:"full_name" validate:"required"`
	Role     models.UserRole `json:"role" validate:"omitempty,is-user-role"`
}

// UpdateUserRequest - partial update, nil means keep current value
type UpdateUserRequest struct {
	Email    *string `json:"email" validate:"omitempty,email"`
	FullName *string `json:"full_name"`
	Password *string `json:"password" validate:"omitempty,min=8"`
	IsActive *bool   `json:"is_active"`
}

// ChangeRoleRequest - admin reassigns a role
type ChangeRoleRequest struct {
	Role models.UserRole `json:"role" validate:"required,is-user-role"`
}
