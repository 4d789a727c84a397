package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"crm_backend/internal/models"
)

var (
	ErrBrandNotFound = errors.New("brand not found")
	ErrPOCNotFound   = errors.New("poc not found")
)

type BrandRepository interface {
	FindByID(id string) (*models.Brand, error)
	Create(brand *models.Brand) error
	Update(id string, updates map[string]interface{}) error
	Delete(id string) error
	FindAll(limit, offset int) ([]models.Brand, int64, error)
	FindByBillingID(billingID string) ([]models.Brand, error)
	UpdateBillingRef(id string, billingID *string) error

	AddPOC(poc *models.POC) error
	UpdatePOC(brandID, pocID string, updates map[string]interface{}) error
	DeletePOC(brandID, pocID string) error
}

type BrandRepositoryImpl struct {
	db *gorm.DB
}

func NewBrandRepository(db *gorm.DB) BrandRepository {
	return &BrandRepositoryImpl{db: db}
}

func (r *BrandRepositoryImpl) FindByID(id string) (*models.Brand, error) {
	var brand models.Brand
	err := r.db.Preload("POCs").First(&brand, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBrandNotFound
		}
		return nil, err
	}
	return &brand, nil
}

func (r *BrandRepositoryImpl) Create(brand *models.Brand) error {
	return r.db.Create(brand).Error
}

func (r *BrandRepositoryImpl) Update(id string, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()
	result := r.db.Model(&models.Brand{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBrandNotFound
	}
	return nil
}

func (r *BrandRepositoryImpl) Delete(id string) error {
	// POCs go with the brand via the FK cascade.
	result := r.db.Where("id = ?", id).Delete(&models.Brand{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBrandNotFound
	}
	return nil
}

func (r *BrandRepositoryImpl) FindAll(limit, offset int) ([]models.Brand, int64, error) {
	var brands []models.Brand

	var total int64
	if err := r.db.Model(&models.Brand{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("POCs").Order("created_at DESC").
		Limit(limit).Offset(offset).Find(&brands).Error
	return brands, total, err
}

func (r *BrandRepositoryImpl) FindByBillingID(billingID string) ([]models.Brand, error) {
	var brands []models.Brand
	err := r.db.Where("billing_details_id = ?", billingID).
		Order("created_at ASC").Find(&brands).Error
	return brands, err
}

func (r *BrandRepositoryImpl) UpdateBillingRef(id string, billingID *string) error {
	result := r.db.Model(&models.Brand{}).Where("id = ?", id).Updates(map[string]interface{}{
		"billing_details_id": billingID,
		"updated_at":         time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBrandNotFound
	}
	return nil
}

func (r *BrandRepositoryImpl) AddPOC(poc *models.POC) error {
	return r.db.Create(poc).Error
}

func (r *BrandRepositoryImpl) UpdatePOC(brandID, pocID string, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()
	result := r.db.Model(&models.POC{}).
		Where("id = ? AND brand_id = ?", pocID, brandID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPOCNotFound
	}
	return nil
}

func (r *BrandRepositoryImpl) DeletePOC(brandID, pocID string) error {
	result := r.db.Where("id = ? AND brand_id = ?", pocID, brandID).Delete(&models.POC{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPOCNotFound
	}
	return nil
}
