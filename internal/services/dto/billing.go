package dto

import (
	"time"

	"crm_backend/internal/models"
)

// CreateBillingRequest - new billing details record
type CreateBillingRequest struct {
	PartyLegalName  string `json:"party_legal_name" validate:"required"`
	IsGSTApplicable bool   `json:"is_gst_applicable"`
	GSTIN           string `json:"gstin" validate:"omitempty,gstin"`
	PANCard         string `json:"pan_card" validate:"required,pan"`
	State           string `json:"state" validate:"required"`
	City            string `json:"city" validate:"required"`
	Address         string `json:"address" validate:"required"`
	Pincode         string `json:"pincode" validate:"required,len=6"`
	IsIndividual    *bool  `json:"is_individual"`

	GSTCertificateURL  string `json:"gst_certificate_url" validate:"omitempty,url"`
	MSMECertificateURL string `json:"msme_certificate_url" validate:"omitempty,url"`
	PANCardURL         string `json:"pan_card_url" validate:"omitempty,url"`

	BankAccounts []CreateBankAccountRequest `json:"bank_accounts" validate:"omitempty,dive"`
}

// UpdateBillingRequest - partial update, nil means keep current value
type UpdateBillingRequest struct {
	PartyLegalName  *string `json:"party_legal_name"`
	IsGSTApplicable *bool   `json:"is_gst_applicable"`
	GSTIN           *string `json:"gstin" validate:"omitempty,gstin"`
	PANCard         *string `json:"pan_card" validate:"omitempty,pan"`
	State           *string `json:"state"`
	City            *string `json:"city"`
	Address         *string `json:"address"`
	Pincode         *string `json:"pincode" validate:"omitempty,len=6"`
	IsIndividual    *bool   `json:"is_individual"`

	GSTCertificateURL  *string `json:"gst_certificate_url" validate:"omitempty,url"`
	MSMECertificateURL *string `json:"msme_certificate_url" validate:"omitempty,url"`
	PANCardURL         *string `json:"pan_card_url" validate:"omitempty,url"`
}

// SetMSMERequest - flip MSME status; enabling requires a certificate
type SetMSMERequest struct {
	IsMSME             bool   `json:"is_msme"`
	MSMECertificateURL string `json:"msme_certificate_url" validate:"omitempty,url"`
}

// CreateBankAccountRequest - bank account under a billing record
type CreateBankAccountRequest struct {
	AccountNumber      string `json:"account_number" validate:"required"`
	IFSCCode           string `json:"ifsc_code" validate:"required,ifsc"`
	AccountHolderName  string `json:"account_holder_name" validate:"required"`
	BankName           string `json:"bank_name" validate:"required"`
	BranchName         string `json:"branch_name"`
	IsDefault          bool   `json:"is_default"`
	CancelledChequeURL string `json:"cancelled_cheque_url" validate:"omitempty,url"`
}

// UpdateBankAccountRequest - partial bank account update
type UpdateBankAccountRequest struct {
	AccountNumber      *string `json:"account_number"`
	IFSCCode           *string `json:"ifsc_code" validate:"omitempty,ifsc"`
	AccountHolderName  *string `json:"account_holder_name"`
	BankName           *string `json:"bank_name"`
	BranchName         *string `json:"branch_name"`
	IsDefault          *bool   `json:"is_default"`
	CancelledChequeURL *string `json:"cancelled_cheque_url" validate:"omitempty,url"`
}

// BankAccountResponse - bank account as exposed over the API
type BankAccountResponse struct {
	ID                 string    `json:"id"`
	AccountNumber      string    `json:"account_number"`
	IFSCCode           string    `json:"ifsc_code"`
	AccountHolderName  string    `json:"account_holder_name"`
	BankName           string    `json:"bank_name"`
	BranchName         string    `json:"branch_name"`
	IsDefault          bool      `json:"is_default"`
	IsVerified         bool      `json:"is_verified"`
	CancelledChequeURL string    `json:"cancelled_cheque_url"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// BillingResponse - billing record with its bank accounts. Read access
// to billing is all or nothing, so there is no per-field projection.
type BillingResponse struct {
	ID              string `json:"id"`
	PartyLegalName  string `json:"party_legal_name"`
	IsGSTApplicable bool   `json:"is_gst_applicable"`
	GSTIN           string `json:"gstin"`
	PANCard         string `json:"pan_card"`
	State           string `json:"state"`
	City            string `json:"city"`
	Address         string `json:"address"`
	Pincode         string `json:"pincode"`
	IsIndividual    bool   `json:"is_individual"`
	IsPANVerified   bool   `json:"is_pancard_verified"`
	IsGSTVerified   bool   `json:"is_gst_verified"`
	IsMSME          bool   `json:"is_msme"`

	GSTCertificateURL  string `json:"gst_certificate_url"`
	MSMECertificateURL string `json:"msme_certificate_url"`
	PANCardURL         string `json:"pan_card_url"`

	OwnerUserID  string                `json:"owner_user_id"`
	BankAccounts []BankAccountResponse `json:"bank_accounts"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}

func ToBankAccountResponse(a *models.BankAccount) BankAccountResponse {
	return BankAccountResponse{
		ID:                 a.ID,
		AccountNumber:      a.AccountNumber,
		IFSCCode:           a.IFSCCode,
		AccountHolderName:  a.AccountHolderName,
		BankName:           a.BankName,
		BranchName:         a.BranchName,
		IsDefault:          a.IsDefault,
		IsVerified:         a.IsVerified,
		CancelledChequeURL: a.CancelledChequeURL,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}
}

func ToBillingResponse(b *models.BillingDetails) BillingResponse {
	accounts := make([]BankAccountResponse, 0, len(b.BankAccounts))
	for i := range b.BankAccounts {
		accounts = append(accounts, ToBankAccountResponse(&b.BankAccounts[i]))
	}
	return BillingResponse{
		ID:                 b.ID,
		PartyLegalName:     b.PartyLegalName,
		IsGSTApplicable:    b.IsGSTApplicable,
		GSTIN:              b.GSTIN,
		PANCard:            b.PANCard,
		State:              b.State,
		City:               b.City,
		Address:            b.Address,
		Pincode:            b.Pincode,
		IsIndividual:       b.IsIndividual,
		IsPANVerified:      b.IsPANVerified,
		IsGSTVerified:      b.IsGSTVerified,
		IsMSME:             b.IsMSME,
		GSTCertificateURL:  b.GSTCertificateURL,
		MSMECertificateURL: b.MSMECertificateURL,
		PANCardURL:         b.PANCardURL,
		OwnerUserID:        b.OwnerUserID,
		BankAccounts:       accounts,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}
