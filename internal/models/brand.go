package models

type Brand struct {
	BaseModel
	Name        string `gorm:"not null;index"`
	CompanyName string
	Website     string
	Instagram   string
	Linkedin    string
	LogoURL     string

	// Same weak-reference semantics as Profile.BillingDetailsID.
	BillingDetailsID *string `gorm:"type:uuid;index"`

	OwnerUserID string `gorm:"type:uuid;not null;index"`

	POCs []POC `gorm:"foreignKey:BrandID;constraint:OnDelete:CASCADE"`
}

// POC is a brand point of contact.
type POC struct {
	BaseModel
	BrandID     string `gorm:"type:uuid;not null;index"`
	Name        string `gorm:"not null"`
	Phone       string `gorm:"not null"`
	Email       string `gorm:"not null"`
	Designation string `gorm:"not null"`
}

// DisplayName prefers the brand name, falling back to the legal company name.
func (b *Brand) DisplayName() string {
	if b.Name != "" {
		return b.Name
	}
	return b.CompanyName
}
