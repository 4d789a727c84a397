package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"crm_backend/internal/models"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileFilter struct {
	Platform           models.Platform
	ContentOrientation models.ContentOrientation
	Region             string
	Language           string
	MinFollowers       *int64
	MaxFollowers       *int64
	IsBettingAllowed   *bool
	Search             string
	OwnerUserID        string // restricts the result to one creator
	Page               int
	PageSize           int
}

type ProfileRepository interface {
	FindByID(id string) (*models.Profile, error)
	Create(profile *models.Profile) error
	Update(id string, updates map[string]interface{}) error
	Delete(id string) error
	FindWithFilter(criteria ProfileFilter) ([]models.Profile, int64, error)
	FindByBillingID(billingID string) ([]models.Profile, error)
	UpdateBillingRef(id string, billingID *string) error
}

type ProfileRepositoryImpl struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &ProfileRepositoryImpl{db: db}
}

func (r *ProfileRepositoryImpl) FindByID(id string) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.First(&profile, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) Create(profile *models.Profile) error {
	return r.db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) Update(id string, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()
	result := r.db.Model(&models.Profile{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *ProfileRepositoryImpl) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Profile{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *ProfileRepositoryImpl) FindWithFilter(criteria ProfileFilter) ([]models.Profile, int64, error) {
	var profiles []models.Profile
	query := r.db.Model(&models.Profile{})

	if criteria.Platform != "" {
		query = query.Where("platform = ?", criteria.Platform)
	}
	if criteria.ContentOrientation != "" {
		query = query.Where("content_orientation = ?", criteria.ContentOrientation)
	}
	if criteria.Region != "" {
		query = query.Where("region = ?", criteria.Region)
	}
	if criteria.Language != "" {
		query = query.Where("language = ?", criteria.Language)
	}
	if criteria.MinFollowers != nil {
		query = query.Where("followers >= ?", *criteria.MinFollowers)
	}
	if criteria.MaxFollowers != nil {
		query = query.Where("followers <= ?", *criteria.MaxFollowers)
	}
	if criteria.IsBettingAllowed != nil {
		query = query.Where("is_betting_allowed = ?", *criteria.IsBettingAllowed)
	}
	if criteria.OwnerUserID != "" {
		query = query.Where("owner_user_id = ?", criteria.OwnerUserID)
	}
	if criteria.Search != "" {
		search := "%" + criteria.Search + "%"
		query = query.Where("username ILIKE ? OR region ILIKE ? OR language ILIKE ?", search, search, search)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := criteria.PageSize
	offset := (criteria.Page - 1) * criteria.PageSize

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&profiles).Error
	return profiles, total, err
}

func (r *ProfileRepositoryImpl) FindByBillingID(billingID string) ([]models.Profile, error) {
	var profiles []models.Profile
	err := r.db.Where("billing_details_id = ?", billingID).
		Order("created_at ASC").Find(&profiles).Error
	return profiles, err
}

func (r *ProfileRepositoryImpl) UpdateBillingRef(id string, billingID *string) error {
	result := r.db.Model(&models.Profile{}).Where("id = ?", id).Updates(map[string]interface{}{
		"billing_details_id": billingID,
		"updated_at":         time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}
