package services

import (
	"crm_backend/internal/appErrors"
	"crm_backend/internal/auth"
	"crm_backend/internal/models"
	"crm_backend/internal/repositories"
	"crm_backend/internal/services/dto"
)

// ConnectionService manages the weak link between profiles or brands
// and billing records.
type ConnectionService interface {
	Connect(role models.UserRole, req *dto.ConnectBillingRequest) (*dto.ConnectionResponse, error)
	Disconnect(role models.UserRole, req *dto.DisconnectBillingRequest) (*dto.ConnectionResponse, error)
	BillingUsers(role models.UserRole, billingID string) (*dto.BillingUsersResponse, error)
	GetProfileBilling(userID string, role models.UserRole, profileID string) (*dto.BillingResponse, error)
	GetBrandBilling(userID string, role models.UserRole, brandID string) (*dto.BillingResponse, error)
}

type ConnectionServiceImpl struct {
	profileRepo repositories.ProfileRepository
	brandRepo   repositories.BrandRepository
	billingRepo repositories.BillingRepository
}

func NewConnectionService(
	profileRepo repositories.ProfileRepository,
	brandRepo repositories.BrandRepository,
	billingRepo repositories.BillingRepository,
) ConnectionService {
	return &ConnectionServiceImpl{
		profileRepo: profileRepo,
		brandRepo:   brandRepo,
		billingRepo: billingRepo,
	}
}

// Connect links an entity to a billing record. Linking to the billing
// record the entity already points at is a no-op reported with
// Changed=false. The existence check and the write are separate
// statements, so a concurrent billing delete between them can leave a
// dangling reference; reads resolve those lazily as not-found.
func (s *ConnectionServiceImpl) Connect(role models.UserRole, req *dto.ConnectBillingRequest) (*dto.ConnectionResponse, error) {
	resource, err := resourceFor(req.EntityType)
	if err != nil {
		return nil, err
	}
	if !auth.Can(role, auth.ActionLink, resource, false) {
		return nil, appErrors.ErrForbidden
	}

	exists, err := s.billingRepo.Exists(req.BillingID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	if !exists {
		return nil, appErrors.ErrBillingNotFound
	}

	current, err := s.currentRef(req.EntityType, req.EntityID)
	if err != nil {
		return nil, err
	}
	if current != nil && *current == req.BillingID {
		return &dto.ConnectionResponse{
			EntityType: req.EntityType,
			EntityID:   req.EntityID,
			BillingID:  current,
			Changed:    false,
			Message:    "Billing details already connected",
		}, nil
	}

	if err := s.updateRef(req.EntityType, req.EntityID, &req.BillingID); err != nil {
		return nil, err
	}
	return &dto.ConnectionResponse{
		EntityType: req.EntityType,
		EntityID:   req.EntityID,
		BillingID:  &req.BillingID,
		Changed:    true,
		Message:    "Billing details connected",
	}, nil
}

// Disconnect clears an entity's billing link. An entity with no link is
// reported with Changed=false rather than an error, so callers can tell
// a real disconnect from a no-op.
func (s *ConnectionServiceImpl) Disconnect(role models.UserRole, req *dto.DisconnectBillingRequest) (*dto.ConnectionResponse, error) {
	resource, err := resourceFor(req.EntityType)
	if err != nil {
		return nil, err
	}
	if !auth.Can(role, auth.ActionLink, resource, false) {
		return nil, appErrors.ErrForbidden
	}

	current, err := s.currentRef(req.EntityType, req.EntityID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return &dto.ConnectionResponse{
			EntityType: req.EntityType,
			EntityID:   req.EntityID,
			BillingID:  nil,
			Changed:    false,
			Message:    "No billing details to disconnect",
		}, nil
	}

	if err := s.updateRef(req.EntityType, req.EntityID, nil); err != nil {
		return nil, err
	}
	return &dto.ConnectionResponse{
		EntityType: req.EntityType,
		EntityID:   req.EntityID,
		BillingID:  nil,
		Changed:    true,
		Message:    "Billing details disconnected",
	}, nil
}

// BillingUsers lists every profile and brand pointing at the billing
// record. Gated on the link permission: this is the linking surface's
// reverse lookup, not a billing read.
func (s *ConnectionServiceImpl) BillingUsers(role models.UserRole, billingID string) (*dto.BillingUsersResponse, error) {
	if !auth.Can(role, auth.ActionLink, auth.ResourceBilling, false) {
		return nil, appErrors.ErrForbidden
	}

	exists, err := s.billingRepo.Exists(billingID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	if !exists {
		return nil, appErrors.ErrBillingNotFound
	}

	profiles, err := s.profileRepo.FindByBillingID(billingID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	brands, err := s.brandRepo.FindByBillingID(billingID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	resp := &dto.BillingUsersResponse{
		BillingID:     billingID,
		ProfilesInfo:  make([]dto.ProfileInfo, 0, len(profiles)),
		BrandsInfo:    make([]dto.BrandInfo, 0, len(brands)),
		TotalProfiles: len(profiles),
		TotalBrands:   len(brands),
	}
	for i := range profiles {
		resp.ProfilesInfo = append(resp.ProfilesInfo, dto.ProfileInfo{
			ID:        profiles[i].ID,
			Username:  profiles[i].Username,
			Platform:  profiles[i].Platform,
			CreatedAt: profiles[i].CreatedAt,
		})
	}
	for i := range brands {
		resp.BrandsInfo = append(resp.BrandsInfo, dto.BrandInfo{
			ID:        brands[i].ID,
			Name:      brands[i].DisplayName(),
			CreatedAt: brands[i].CreatedAt,
		})
	}
	return resp, nil
}

func (s *ConnectionServiceImpl) GetProfileBilling(userID string, role models.UserRole, profileID string) (*dto.BillingResponse, error) {
	profile, err := s.profileRepo.FindByID(profileID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, appErrors.ErrProfileNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	isOwner := profile.OwnerUserID == userID
	if !auth.CanReadEntityBilling(role, isOwner) {
		return nil, appErrors.ErrForbidden
	}
	return s.resolveBilling(profile.BillingDetailsID)
}

func (s *ConnectionServiceImpl) GetBrandBilling(userID string, role models.UserRole, brandID string) (*dto.BillingResponse, error) {
	brand, err := s.brandRepo.FindByID(brandID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrBrandNotFound) {
			return nil, appErrors.ErrBrandNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	isOwner := brand.OwnerUserID == userID
	if !auth.CanReadEntityBilling(role, isOwner) {
		return nil, appErrors.ErrForbidden
	}
	return s.resolveBilling(brand.BillingDetailsID)
}

// resolveBilling follows a weak reference. A nil reference means the
// entity was never linked; a dangling one means the billing record was
// deleted after linking. Both surface as not-found, with distinct codes.
func (s *ConnectionServiceImpl) resolveBilling(ref *string) (*dto.BillingResponse, error) {
	if ref == nil {
		return nil, appErrors.ErrBillingNotLinked
	}

	billing, err := s.billingRepo.FindByID(*ref)
	if err != nil {
		if appErrors.Is(err, repositories.ErrBillingNotFound) {
			return nil, appErrors.ErrBillingNotFound
		}
		return nil, appErrors.InternalError(err)
	}
	resp := dto.ToBillingResponse(billing)
	return &resp, nil
}

func (s *ConnectionServiceImpl) currentRef(entityType models.EntityType, entityID string) (*string, error) {
	switch entityType {
	case models.EntityTypeProfile:
		profile, err := s.profileRepo.FindByID(entityID)
		if err != nil {
			if appErrors.Is(err, repositories.ErrProfileNotFound) {
				return nil, appErrors.ErrProfileNotFound
			}
			return nil, appErrors.InternalError(err)
		}
		return profile.BillingDetailsID, nil
	case models.EntityTypeBrand:
		brand, err := s.brandRepo.FindByID(entityID)
		if err != nil {
			if appErrors.Is(err, repositories.ErrBrandNotFound) {
				return nil, appErrors.ErrBrandNotFound
			}
			return nil, appErrors.InternalError(err)
		}
		return brand.BillingDetailsID, nil
	}
	return nil, appErrors.ErrInvalidEntityType
}

func (s *ConnectionServiceImpl) updateRef(entityType models.EntityType, entityID string, billingID *string) error {
	var err error
	switch entityType {
	case models.EntityTypeProfile:
		err = s.profileRepo.UpdateBillingRef(entityID, billingID)
	case models.EntityTypeBrand:
		err = s.brandRepo.UpdateBillingRef(entityID, billingID)
	default:
		return appErrors.ErrInvalidEntityType
	}
	if err != nil {
		if appErrors.Is(err, repositories.ErrProfileNotFound) {
			return appErrors.ErrProfileNotFound
		}
		if appErrors.Is(err, repositories.ErrBrandNotFound) {
			return appErrors.ErrBrandNotFound
		}
		return appErrors.InternalError(err)
	}
	return nil
}

func resourceFor(entityType models.EntityType) (auth.Resource, error) {
	switch entityType {
	case models.EntityTypeProfile:
		return auth.ResourceProfile, nil
	case models.EntityTypeBrand:
		return auth.ResourceBrand, nil
	}
	return "", appErrors.ErrInvalidEntityType
}
