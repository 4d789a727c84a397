package dto

import (
	"time"

	"crm_backend/internal/models"
)

// ConnectBillingRequest - link an entity to a billing record
type ConnectBillingRequest struct {
	EntityType models.EntityType `json:"entity_type" validate:"required,oneof=profile brand"`
	EntityID   string            `json:"entity_id" validate:"required,uuid"`
	BillingID  string            `json:"billing_id" validate:"required,uuid"`
}

// DisconnectBillingRequest - remove an entity's billing link
type DisconnectBillingRequest struct {
	EntityType models.EntityType `json:"entity_type" validate:"required,oneof=profile brand"`
	EntityID   string            `json:"entity_id" validate:"required,uuid"`
}

// ConnectionResponse reports the outcome of a connect or disconnect.
// Changed is false when the operation was a no-op, e.g. disconnecting
// an entity that had no link.
type ConnectionResponse struct {
	EntityType models.EntityType `json:"entity_type"`
	EntityID   string            `json:"entity_id"`
	BillingID  *string           `json:"billing_id"`
	Changed    bool              `json:"changed"`
	Message    string            `json:"message"`
}

// ProfileInfo - short profile view inside billing users listings
type ProfileInfo struct {
	ID        string          `json:"id"`
	Username  string          `json:"username"`
	Platform  models.Platform `json:"platform"`
	CreatedAt time.Time       `json:"created_at"`
}

// BrandInfo - short brand view inside billing users listings
type BrandInfo struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// BillingUsersResponse lists every entity linked to a billing record.
type BillingUsersResponse struct {
	BillingID     string        `json:"billing_id"`
	ProfilesInfo  []ProfileInfo `json:"profiles_info"`
	BrandsInfo    []BrandInfo   `json:"brands_info"`
	TotalProfiles int           `json:"total_profiles"`
	TotalBrands   int           `json:"total_brands"`
}
