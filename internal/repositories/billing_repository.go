package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"crm_backend/internal/models"
)

var (
	ErrBillingNotFound     = errors.New("billing details not found")
	ErrBankAccountNotFound = errors.New("bank account not found")
)

type BillingRepository interface {
	FindByID(id string) (*models.BillingDetails, error)
	Exists(id string) (bool, error)
	Create(billing *models.BillingDetails) error
	Update(id string, updates map[string]interface{}) error
	Delete(id string) error
	FindAll(limit, offset int) ([]models.BillingDetails, int64, error)

	FindBankAccount(billingID, accountID string) (*models.BankAccount, error)
	CountBankAccounts(billingID string) (int64, error)
	AddBankAccount(account *models.BankAccount, clearDefaults bool) error
	UpdateBankAccount(billingID, accountID string, updates map[string]interface{}, clearDefaults bool) error
	DeleteBankAccount(billingID, accountID string, promoteNewDefault bool) error
	SetDefaultBankAccount(billingID, accountID string) error
}

type BillingRepositoryImpl struct {
	db *gorm.DB
}

func NewBillingRepository(db *gorm.DB) BillingRepository {
	return &BillingRepositoryImpl{db: db}
}

func (r *BillingRepositoryImpl) FindByID(id string) (*models.BillingDetails, error) {
	var billing models.BillingDetails
	err := r.db.Preload("BankAccounts", func(db *gorm.DB) *gorm.DB {
		return db.Order("bank_accounts.created_at ASC")
	}).First(&billing, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBillingNotFound
		}
		return nil, err
	}
	return &billing, nil
}

func (r *BillingRepositoryImpl) Exists(id string) (bool, error) {
	var count int64
	err := r.db.Model(&models.BillingDetails{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *BillingRepositoryImpl) Create(billing *models.BillingDetails) error {
	return r.db.Create(billing).Error
}

func (r *BillingRepositoryImpl) Update(id string, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()
	result := r.db.Model(&models.BillingDetails{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBillingNotFound
	}
	return nil
}

func (r *BillingRepositoryImpl) Delete(id string) error {
	// Bank accounts go with the record via the FK cascade. Profiles and
	// brands referencing this id keep a dangling reference; the link is
	// weak and resolved lazily.
	result := r.db.Where("id = ?", id).Delete(&models.BillingDetails{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBillingNotFound
	}
	return nil
}

func (r *BillingRepositoryImpl) FindAll(limit, offset int) ([]models.BillingDetails, int64, error) {
	var billings []models.BillingDetails

	var total int64
	if err := r.db.Model(&models.BillingDetails{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("BankAccounts").Order("created_at DESC").
		Limit(limit).Offset(offset).Find(&billings).Error
	return billings, total, err
}

func (r *BillingRepositoryImpl) FindBankAccount(billingID, accountID string) (*models.BankAccount, error) {
	var account models.BankAccount
	err := r.db.First(&account, "id = ? AND billing_details_id = ?", accountID, billingID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBankAccountNotFound
		}
		return nil, err
	}
	return &account, nil
}

func (r *BillingRepositoryImpl) CountBankAccounts(billingID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.BankAccount{}).
		Where("billing_details_id = ?", billingID).Count(&count).Error
	return count, err
}

func (r *BillingRepositoryImpl) AddBankAccount(account *models.BankAccount, clearDefaults bool) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if clearDefaults {
			if err := tx.Model(&models.BankAccount{}).
				Where("billing_details_id = ?", account.BillingDetailsID).
				Update("is_default", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(account).Error
	})
}

func (r *BillingRepositoryImpl) UpdateBankAccount(billingID, accountID string, updates map[string]interface{}, clearDefaults bool) error {
	updates["updated_at"] = time.Now()
	return r.db.Transaction(func(tx *gorm.DB) error {
		if clearDefaults {
			if err := tx.Model(&models.BankAccount{}).
				Where("billing_details_id = ? AND id != ?", billingID, accountID).
				Update("is_default", false).Error; err != nil {
				return err
			}
		}

		result := tx.Model(&models.BankAccount{}).
			Where("id = ? AND billing_details_id = ?", accountID, billingID).
			Updates(updates)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrBankAccountNotFound
		}
		return nil
	})
}

func (r *BillingRepositoryImpl) DeleteBankAccount(billingID, accountID string, promoteNewDefault bool) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND billing_details_id = ?", accountID, billingID).
			Delete(&models.BankAccount{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrBankAccountNotFound
		}

		if promoteNewDefault {
			// The deleted account was the default; promote the oldest
			// remaining one so the record keeps exactly one default.
			var next models.BankAccount
			err := tx.Where("billing_details_id = ?", billingID).
				Order("created_at ASC").First(&next).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil
				}
				return err
			}
			return tx.Model(&next).Update("is_default", true).Error
		}
		return nil
	})
}

// SetDefaultBankAccount clears every default flag on the record and sets
// the given account, in one transaction, so the single-default invariant
// holds at commit.
func (r *BillingRepositoryImpl) SetDefaultBankAccount(billingID, accountID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.BankAccount{}).
			Where("billing_details_id = ?", billingID).
			Update("is_default", false).Error; err != nil {
			return err
		}

		result := tx.Model(&models.BankAccount{}).
			Where("id = ? AND billing_details_id = ?", accountID, billingID).
			Updates(map[string]interface{}{
				"is_default": true,
				"updated_at": time.Now(),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrBankAccountNotFound
		}
		return nil
	})
}
