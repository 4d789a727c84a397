package models

type BillingDetails struct {
	BaseModel
	PartyLegalName  string `gorm:"not null;index"`
	IsGSTApplicable bool   `gorm:"default:false"`
	GSTIN           string `gorm:"index"`
	PANCard         string `gorm:"not null;index"`
	State           string `gorm:"not null"`
	City            string `gorm:"not null"`
	Address         string `gorm:"not null"`
	Pincode         string `gorm:"not null"`
	IsIndividual    bool   `gorm:"default:true"`
	IsPANVerified   bool   `gorm:"default:false"`
	IsGSTVerified   bool   `gorm:"default:false"`
	IsMSME          bool   `gorm:"default:false"`

	GSTCertificateURL  string
	MSMECertificateURL string
	PANCardURL         string

	OwnerUserID string `gorm:"type:uuid;not null;index"`

	BankAccounts []BankAccount `gorm:"foreignKey:BillingDetailsID;constraint:OnDelete:CASCADE"`
}

// BankAccount belongs to exactly one BillingDetails record. At most one
// account per record may have IsDefault=true.
type BankAccount struct {
	BaseModel
	BillingDetailsID   string `gorm:"type:uuid;not null;index"`
	AccountNumber      string `gorm:"not null"`
	IFSCCode           string `gorm:"not null"`
	AccountHolderName  string `gorm:"not null"`
	BankName           string `gorm:"not null"`
	BranchName         string
	IsDefault          bool `gorm:"default:false"`
	IsVerified         bool `gorm:"default:false"`
	CancelledChequeURL string
}

// DefaultBankAccount returns the account currently flagged default, or nil.
func (b *BillingDetails) DefaultBankAccount() *BankAccount {
	for i := range b.BankAccounts {
		if b.BankAccounts[i].IsDefault {
			return &b.BankAccounts[i]
		}
	}
	return nil
}
