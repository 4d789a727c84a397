package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// ContactDetail is a point of contact stored inside a profile's
// contact_details JSON column.
type ContactDetail struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// CostingDetail is a single priced content type inside a profile's
// costing JSON column.
type CostingDetail struct {
	ContentType string  `json:"content_type"`
	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`
	Description string  `json:"description,omitempty"`
}

type Profile struct {
	BaseModel
	Platform           Platform           `gorm:"type:varchar(20);not null;index"`
	ContentOrientation ContentOrientation `gorm:"type:varchar(20);index"`
	Username           string             `gorm:"not null;index"`
	ProfileURL         string             `gorm:"not null"`
	Region             string             `gorm:"index"`
	Language           string             `gorm:"index"`
	Followers          int64              `gorm:"default:0;index"`
	ERRate             float64
	IsBettingAllowed   bool `gorm:"default:false"`
	MaleAudience       float64
	BioPhone           string
	BioEmail           string
	ContactDetails     datatypes.JSON `gorm:"type:jsonb"`
	Costing            datatypes.JSON `gorm:"type:jsonb"`

	// BillingDetailsID is a weak reference: existence of the target is
	// checked at write time, the store itself does not enforce it.
	BillingDetailsID *string `gorm:"type:uuid;index"`

	// OwnerUserID is the creating user; ownership checks for the
	// data_operator role match against it.
	OwnerUserID string `gorm:"type:uuid;not null;index"`
}

func (p *Profile) GetContactDetails() []ContactDetail {
	var contacts []ContactDetail
	if len(p.ContactDetails) > 0 {
		_ = json.Unmarshal(p.ContactDetails, &contacts)
	}
	return contacts
}

func (p *Profile) SetContactDetails(contacts []ContactDetail) {
	data, _ := json.Marshal(contacts)
	p.ContactDetails = datatypes.JSON(data)
}

func (p *Profile) GetCosting() []CostingDetail {
	var costing []CostingDetail
	if len(p.Costing) > 0 {
		_ = json.Unmarshal(p.Costing, &costing)
	}
	return costing
}

func (p *Profile) SetCosting(costing []CostingDetail) {
	data, _ := json.Marshal(costing)
	p.Costing = datatypes.JSON(data)
}
