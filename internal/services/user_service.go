package services

import (
	"crm_backend/internal/appErrors"
	"crm_backend/internal/auth"
	"crm_backend/internal/models"
	"crm_backend/internal/repositories"
	"crm_backend/internal/services/dto"
)

type UserService interface {
	Create(req *dto.CreateUserRequest) (*dto.UserResponse, error)
	GetByID(id string) (*dto.UserResponse, error)
	List(page, pageSize int) (*dto.PaginatedResponse, error)
	Update(id string, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	ChangeRole(id string, role models.UserRole) (*dto.UserResponse, error)
	SetActive(id string, active bool) error
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) Create(req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, appErrors.ErrWeakPassword
	}

	role := req.Role
	if role == "" {
		role = models.UserRoleDataOperator
	}
	if !models.IsValidRole(role) {
		return nil, appErrors.ErrInvalidUserRole
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		FullName:     req.FullName,
		Role:         role,
		IsActive:     true,
	}
	if err := s.userRepo.Create(user); err != nil {
		if appErrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, appErrors.ErrEmailAlreadyExists
		}
		return nil, appErrors.InternalError(err)
	}

	resp := dto.ToUserResponse(user)
	return &resp, nil
}

func (s *UserServiceImpl) GetByID(id string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, appErrors.InternalError(err)
	}
	resp := dto.ToUserResponse(user)
	return &resp, nil
}

func (s *UserServiceImpl) List(page, pageSize int) (*dto.PaginatedResponse, error) {
	total, err := s.userRepo.CountAll()
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	users, err := s.userRepo.FindAll(pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	items := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		items = append(items, dto.ToUserResponse(&users[i]))
	}
	return &dto.PaginatedResponse{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func (s *UserServiceImpl) Update(id string, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	if req.Email != nil && *req.Email != user.Email {
		taken, err := s.userRepo.EmailTaken(*req.Email, id)
		if err != nil {
			return nil, appErrors.InternalError(err)
		}
		if taken {
			return nil, appErrors.ErrEmailAlreadyExists
		}
		user.Email = *req.Email
	}
	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Password != nil {
		if err := auth.ValidatePassword(*req.Password); err != nil {
			return nil, appErrors.ErrWeakPassword
		}
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, appErrors.InternalError(err)
		}
		user.PasswordHash = hash
	}
	if req.IsActive != nil && *req.IsActive != user.IsActive {
		if !*req.IsActive {
			if err := s.guardLastAdmin(user); err != nil {
				return nil, err
			}
		}
		user.IsActive = *req.IsActive
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, appErrors.InternalError(err)
	}
	if req.Password != nil {
		// Update only writes profile columns; persist the hash separately.
		if err := s.userRepo.UpdatePassword(id, user.PasswordHash); err != nil {
			return nil, appErrors.InternalError(err)
		}
	}

	resp := dto.ToUserResponse(user)
	return &resp, nil
}

// ChangeRole reassigns a user's role. Demoting the last admin is
// rejected so the system cannot lock itself out of user management.
func (s *UserServiceImpl) ChangeRole(id string, role models.UserRole) (*dto.UserResponse, error) {
	if !models.IsValidRole(role) {
		return nil, appErrors.ErrInvalidUserRole
	}

	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	if user.Role == models.UserRoleAdmin && role != models.UserRoleAdmin {
		if err := s.guardLastAdmin(user); err != nil {
			return nil, err
		}
	}

	if err := s.userRepo.UpdateRole(id, role); err != nil {
		return nil, appErrors.InternalError(err)
	}
	user.Role = role

	resp := dto.ToUserResponse(user)
	return &resp, nil
}

func (s *UserServiceImpl) SetActive(id string, active bool) error {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return appErrors.ErrUserNotFound
		}
		return appErrors.InternalError(err)
	}

	if !active {
		if err := s.guardLastAdmin(user); err != nil {
			return err
		}
	}

	if err := s.userRepo.SetActive(id, active); err != nil {
		return appErrors.InternalError(err)
	}
	return nil
}

// guardLastAdmin rejects deactivating or demoting the last active
// admin. Inactive admins do not count: they cannot log in, so removing
// them cannot lock anyone out.
func (s *UserServiceImpl) guardLastAdmin(user *models.User) error {
	if user.Role != models.UserRoleAdmin || !user.IsActive {
		return nil
	}
	admins, err := s.userRepo.CountActiveByRole(models.UserRoleAdmin)
	if err != nil {
		return appErrors.InternalError(err)
	}
	if admins <= 1 {
		return appErrors.ErrLastAdmin
	}
	return nil
}
