package dto

import (
	"crm_backend/internal/auth"
	"crm_backend/internal/models"
)

// CreateProfileRequest - new influencer profile
type CreateProfileRequest struct {
	Platform           models.Platform           `json:"platform" validate:"required,is-platform"`
	ContentOrientation models.ContentOrientation `json:"content_orientation" validate:"omitempty,is-content-orientation"`
	Username           string                    `json:"username" validate:"required"`
	ProfileURL         string                    `json:"profile_url" validate:"required,url"`
	Region             string                    `json:"region"`
	Language           string                    `json:"language"`
	Followers          int64                     `json:"followers" validate:"omitempty,min=0"`
	ERRate             float64                   `json:"er_rate"`
	IsBettingAllowed   bool                      `json:"is_betting_allowed"`
	MaleAudience       float64                   `json:"male_audience" validate:"omitempty,min=0,max=100"`
	BioPhone           string                    `json:"bio_phone"`
	BioEmail           string                    `json:"bio_email" validate:"omitempty,email"`
	ContactDetails     []models.ContactDetail    `json:"contact_details"`
	Costing            []models.CostingDetail    `json:"costing"`
	BillingDetailsID   *string                   `json:"billing_details_id" validate:"omitempty,uuid"`
}

// UpdateProfileRequest - partial update, nil means keep current value
type UpdateProfileRequest struct {
	Platform           *models.Platform           `json:"platform" validate:"omitempty,is-platform"`
	ContentOrientation *models.ContentOrientation `json:"content_orientation" validate:"omitempty,is-content-orientation"`
	Username           *string                    `json:"username"`
	ProfileURL         *string                    `json:"profile_url" validate:"omitempty,url"`
	Region             *string                    `json:"region"`
	Language           *string                    `json:"language"`
	Followers          *int64                     `json:"followers" validate:"omitempty,min=0"`
	ERRate             *float64                   `json:"er_rate"`
	IsBettingAllowed   *bool                      `json:"is_betting_allowed"`
	MaleAudience       *float64                   `json:"male_audience" validate:"omitempty,min=0,max=100"`
	BioPhone           *string                    `json:"bio_phone"`
	BioEmail           *string                    `json:"bio_email" validate:"omitempty,email"`
	ContactDetails     []models.ContactDetail     `json:"contact_details"`
	Costing            []models.CostingDetail     `json:"costing"`
}

// ListProfilesQuery - filters for the profile listing
type ListProfilesQuery struct {
	Platform           string `form:"platform" validate:"omitempty,is-platform"`
	ContentOrientation string `form:"content_orientation" validate:"omitempty,is-content-orientation"`
	Region             string `form:"region"`
	Language           string `form:"language"`
	MinFollowers       *int64 `form:"min_followers" validate:"omitempty,min=0"`
	MaxFollowers       *int64 `form:"max_followers" validate:"omitempty,min=0"`
	IsBettingAllowed   *bool  `form:"is_betting_allowed"`
	Search             string `form:"search"`
	Page               int    `form:"page" validate:"omitempty,min=1"`
	PageSize           int    `form:"page_size" validate:"omitempty,min=1,max=100"`
}

// ProjectProfile builds the API view of a profile containing only the
// fields visible to the caller. The stored record is never modified;
// hidden fields are absent from the result, not nulled.
func ProjectProfile(p *models.Profile, fields auth.FieldSet) map[string]interface{} {
	out := make(map[string]interface{}, len(fields))
	add := func(name string, v interface{}) {
		if fields.Contains(name) {
			out[name] = v
		}
	}

	add("id", p.ID)
	add("platform", p.Platform)
	add("content_orientation", p.ContentOrientation)
	add("username", p.Username)
	add("profile_url", p.ProfileURL)
	add("region", p.Region)
	add("language", p.Language)
	add("followers", p.Followers)
	add("er_rate", p.ERRate)
	add("is_betting_allowed", p.IsBettingAllowed)
	add("male_audience", p.MaleAudience)
	add("bio_phone", p.BioPhone)
	add("bio_email", p.BioEmail)
	add("contact_details", p.GetContactDetails())
	add("costing", p.GetCosting())
	add("billing_details_id", p.BillingDetailsID)
	add("owner_user_id", p.OwnerUserID)
	add("created_at", p.CreatedAt)
	add("updated_at", p.UpdatedAt)
	return out
}
