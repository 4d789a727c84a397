package dto

import (
	"time"

	"crm_backend/internal/auth"
	"crm_backend/internal/models"
)

// CreateBrandRequest - new brand; either name or company_name must be set
type CreateBrandRequest struct {
	Name             string             `json:"name"`
	CompanyName      string             `json:"company_name" validate:"required_without=Name"`
	Website          string             `json:"website" validate:"omitempty,url"`
	Instagram        string             `json:"instagram"`
	Linkedin         string             `json:"linkedin"`
	LogoURL          string             `json:"logo_url" validate:"omitempty,url"`
	BillingDetailsID *string            `json:"billing_details_id" validate:"omitempty,uuid"`
	POCs             []CreatePOCRequest `json:"pocs" validate:"omitempty,dive"`
}

// UpdateBrandRequest - partial update, nil means keep current value
type UpdateBrandRequest struct {
	Name        *string `json:"name"`
	CompanyName *string `json:"company_name"`
	Website     *string `json:"website" validate:"omitempty,url"`
	Instagram   *string `json:"instagram"`
	Linkedin    *string `json:"linkedin"`
	LogoURL     *string `json:"logo_url" validate:"omitempty,url"`
}

// CreatePOCRequest - point of contact attached to a brand
type CreatePOCRequest struct {
	Name        string `json:"name" validate:"required"`
	Phone       string `json:"phone"`
	Email       string `json:"email" validate:"omitempty,email"`
	Designation string `json:"designation"`
}

// UpdatePOCRequest - partial POC update
type UpdatePOCRequest struct {
	Name        *string `json:"name"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Designation *string `json:"designation"`
}

// POCResponse - point of contact as exposed over the API
type POCResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	Designation string    `json:"designation"`
	CreatedAt   time.Time `json:"created_at"`
}

func ToPOCResponse(p *models.POC) POCResponse {
	return POCResponse{
		ID:          p.ID,
		Name:        p.Name,
		Phone:       p.Phone,
		Email:       p.Email,
		Designation: p.Designation,
		CreatedAt:   p.CreatedAt,
	}
}

// ProjectBrand builds the API view of a brand containing only the
// fields visible to the caller.
func ProjectBrand(b *models.Brand, fields auth.FieldSet) map[string]interface{} {
	out := make(map[string]interface{}, len(fields))
	add := func(name string, v interface{}) {
		if fields.Contains(name) {
			out[name] = v
		}
	}

	add("id", b.ID)
	add("name", b.Name)
	add("company_name", b.CompanyName)
	add("website", b.Website)
	add("instagram", b.Instagram)
	add("linkedin", b.Linkedin)
	add("logo_url", b.LogoURL)
	if fields.Contains("pocs") {
		pocs := make([]POCResponse, 0, len(b.POCs))
		for i := range b.POCs {
			pocs = append(pocs, ToPOCResponse(&b.POCs[i]))
		}
		out["pocs"] = pocs
	}
	add("billing_details_id", b.BillingDetailsID)
	add("owner_user_id", b.OwnerUserID)
	add("created_at", b.CreatedAt)
	add("updated_at", b.UpdatedAt)
	return out
}
