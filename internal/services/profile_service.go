package services

import (
	"encoding/json"

	"gorm.io/datatypes"

	"crm_backend/internal/appErrors"
	"crm_backend/internal/auth"
	"crm_backend/internal/models"
	"crm_backend/internal/repositories"
	"crm_backend/internal/services/dto"
)

type ProfileService interface {
	Create(userID string, role models.UserRole, req *dto.CreateProfileRequest) (map[string]interface{}, error)
	GetByID(userID string, role models.UserRole, id string) (map[string]interface{}, error)
	List(userID string, role models.UserRole, query *dto.ListProfilesQuery) (*dto.PaginatedResponse, error)
	Update(userID string, role models.UserRole, id string, req *dto.UpdateProfileRequest) (map[string]interface{}, error)
	Delete(userID string, role models.UserRole, id string) error
}

type ProfileServiceImpl struct {
	profileRepo repositories.ProfileRepository
	billingRepo repositories.BillingRepository
}

func NewProfileService(profileRepo repositories.ProfileRepository, billingRepo repositories.BillingRepository) ProfileService {
	return &ProfileServiceImpl{profileRepo: profileRepo, billingRepo: billingRepo}
}

func (s *ProfileServiceImpl) Create(userID string, role models.UserRole, req *dto.CreateProfileRequest) (map[string]interface{}, error) {
	if !auth.Can(role, auth.ActionCreate, auth.ResourceProfile, false) {
		return nil, appErrors.ErrForbidden
	}

	if req.BillingDetailsID != nil {
		if !auth.Can(role, auth.ActionLink, auth.ResourceBilling, false) {
			return nil, appErrors.ErrForbidden
		}
		if err := s.requireBillingExists(*req.BillingDetailsID); err != nil {
			return nil, err
		}
	}

	profile := &models.Profile{
		Platform:           req.Platform,
		ContentOrientation: req.ContentOrientation,
		Username:           req.Username,
		ProfileURL:         req.ProfileURL,
		Region:             req.Region,
		Language:           req.Language,
		Followers:          req.Followers,
		ERRate:             req.ERRate,
		IsBettingAllowed:   req.IsBettingAllowed,
		MaleAudience:       req.MaleAudience,
		BioPhone:           req.BioPhone,
		BioEmail:           req.BioEmail,
		BillingDetailsID:   req.BillingDetailsID,
		OwnerUserID:        userID,
	}
	profile.SetContactDetails(req.ContactDetails)
	profile.SetCosting(req.Costing)

	if err := s.profileRepo.Create(profile); err != nil {
		return nil, appErrors.InternalError(err)
	}

	fields := auth.OwnerVisibleFields(role, auth.ResourceProfile, true)
	return dto.ProjectProfile(profile, fields), nil
}

func (s *ProfileServiceImpl) GetByID(userID string, role models.UserRole, id string) (map[string]interface{}, error) {
	profile, err := s.profileRepo.FindByID(id)
	if err != nil {
		if appErrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, appErrors.ErrProfileNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	isOwner := profile.OwnerUserID == userID
	fields := auth.OwnerVisibleFields(role, auth.ResourceProfile, isOwner)
	return dto.ProjectProfile(profile, fields), nil
}

// List returns a filtered page of profiles. Data operators only see the
// profiles they created; every other role sees all of them, projected
// down to the fields their role allows.
func (s *ProfileServiceImpl) List(userID string, role models.UserRole, query *dto.ListProfilesQuery) (*dto.PaginatedResponse, error) {
	filter := repositories.ProfileFilter{
		Platform:           models.Platform(query.Platform),
		ContentOrientation: models.ContentOrientation(query.ContentOrientation),
		Region:             query.Region,
		Language:           query.Language,
		MinFollowers:       query.MinFollowers,
		MaxFollowers:       query.MaxFollowers,
		IsBettingAllowed:   query.IsBettingAllowed,
		Search:             query.Search,
		Page:               query.Page,
		PageSize:           query.PageSize,
	}
	if role == models.UserRoleDataOperator {
		filter.OwnerUserID = userID
	}

	profiles, total, err := s.profileRepo.FindWithFilter(filter)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	items := make([]map[string]interface{}, 0, len(profiles))
	for i := range profiles {
		isOwner := profiles[i].OwnerUserID == userID
		fields := auth.OwnerVisibleFields(role, auth.ResourceProfile, isOwner)
		items = append(items, dto.ProjectProfile(&profiles[i], fields))
	}

	return &dto.PaginatedResponse{
		Items:    items,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}

func (s *ProfileServiceImpl) Update(userID string, role models.UserRole, id string, req *dto.UpdateProfileRequest) (map[string]interface{}, error) {
	profile, err := s.profileRepo.FindByID(id)
	if err != nil {
		if appErrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, appErrors.ErrProfileNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	isOwner := profile.OwnerUserID == userID
	if !auth.Can(role, auth.ActionUpdate, auth.ResourceProfile, isOwner) {
		return nil, appErrors.ErrForbidden
	}

	updates := map[string]interface{}{}
	if req.Platform != nil {
		updates["platform"] = *req.Platform
	}
	if req.ContentOrientation != nil {
		updates["content_orientation"] = *req.ContentOrientation
	}
	if req.Username != nil {
		updates["username"] = *req.Username
	}
	if req.ProfileURL != nil {
		updates["profile_url"] = *req.ProfileURL
	}
	if req.Region != nil {
		updates["region"] = *req.Region
	}
	if req.Language != nil {
		updates["language"] = *req.Language
	}
	if req.Followers != nil {
		updates["followers"] = *req.Followers
	}
	if req.ERRate != nil {
		updates["er_rate"] = *req.ERRate
	}
	if req.IsBettingAllowed != nil {
		updates["is_betting_allowed"] = *req.IsBettingAllowed
	}
	if req.MaleAudience != nil {
		updates["male_audience"] = *req.MaleAudience
	}
	if req.BioPhone != nil {
		updates["bio_phone"] = *req.BioPhone
	}
	if req.BioEmail != nil {
		updates["bio_email"] = *req.BioEmail
	}
	if req.ContactDetails != nil {
		data, _ := json.Marshal(req.ContactDetails)
		updates["contact_details"] = datatypes.JSON(data)
	}
	if req.Costing != nil {
		data, _ := json.Marshal(req.Costing)
		updates["costing"] = datatypes.JSON(data)
	}

	if len(updates) > 0 {
		if err := s.profileRepo.Update(id, updates); err != nil {
			if appErrors.Is(err, repositories.ErrProfileNotFound) {
				return nil, appErrors.ErrProfileNotFound
			}
			return nil, appErrors.InternalError(err)
		}
	}

	updated, err := s.profileRepo.FindByID(id)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	fields := auth.OwnerVisibleFields(role, auth.ResourceProfile, isOwner)
	return dto.ProjectProfile(updated, fields), nil
}

func (s *ProfileServiceImpl) Delete(userID string, role models.UserRole, id string) error {
	if !auth.Can(role, auth.ActionDelete, auth.ResourceProfile, false) {
		return appErrors.ErrForbidden
	}

	if err := s.profileRepo.Delete(id); err != nil {
		if appErrors.Is(err, repositories.ErrProfileNotFound) {
			return appErrors.ErrProfileNotFound
		}
		return appErrors.InternalError(err)
	}
	return nil
}

func (s *ProfileServiceImpl) requireBillingExists(billingID string) error {
	exists, err := s.billingRepo.Exists(billingID)
	if err != nil {
		return appErrors.InternalError(err)
	}
	if !exists {
		return appErrors.ErrBillingNotFound
	}
	return nil
}
