package services

import (
	"crm_backend/internal/appErrors"
	"crm_backend/internal/auth"
	"crm_backend/internal/models"
	"crm_backend/internal/repositories"
	"crm_backend/internal/services/dto"
)

type BillingService interface {
	Create(userID string, role models.UserRole, req *dto.CreateBillingRequest) (*dto.BillingResponse, error)
	GetByID(role models.UserRole, id string) (*dto.BillingResponse, error)
	List(role models.UserRole, page, pageSize int) (*dto.PaginatedResponse, error)
	Update(role models.UserRole, id string, req *dto.UpdateBillingRequest) (*dto.BillingResponse, error)
	Delete(role models.UserRole, id string) error

	AddBankAccount(role models.UserRole, billingID string, req *dto.CreateBankAccountRequest) (*dto.BankAccountResponse, error)
	UpdateBankAccount(role models.UserRole, billingID, accountID string, req *dto.UpdateBankAccountRequest) (*dto.BankAccountResponse, error)
	DeleteBankAccount(role models.UserRole, billingID, accountID string) error
	SetDefaultBankAccount(role models.UserRole, billingID, accountID string) (*dto.BillingResponse, error)

	VerifyBankAccount(role models.UserRole, billingID, accountID string) (*dto.BankAccountResponse, error)
	VerifyGST(role models.UserRole, id string) (*dto.BillingResponse, error)
	VerifyPAN(role models.UserRole, id string) (*dto.BillingResponse, error)
	SetMSME(role models.UserRole, id string, req *dto.SetMSMERequest) (*dto.BillingResponse, error)
}

type BillingServiceImpl struct {
	billingRepo repositories.BillingRepository
}

func NewBillingService(billingRepo repositories.BillingRepository) BillingService {
	return &BillingServiceImpl{billingRepo: billingRepo}
}

func (s *BillingServiceImpl) Create(userID string, role models.UserRole, req *dto.CreateBillingRequest) (*dto.BillingResponse, error) {
	if !auth.Can(role, auth.ActionCreate, auth.ResourceBilling, false) {
		return nil, appErrors.ErrForbidden
	}
	if !req.IsGSTApplicable && req.GSTIN != "" {
		return nil, appErrors.ErrGSTNotApplicable
	}

	isIndividual := true
	if req.IsIndividual != nil {
		isIndividual = *req.IsIndividual
	}

	billing := &models.BillingDetails{
		PartyLegalName:     req.PartyLegalName,
		IsGSTApplicable:    req.IsGSTApplicable,
		GSTIN:              req.GSTIN,
		PANCard:            req.PANCard,
		State:              req.State,
		City:               req.City,
		Address:            req.Address,
		Pincode:            req.Pincode,
		IsIndividual:       isIndividual,
		GSTCertificateURL:  req.GSTCertificateURL,
		MSMECertificateURL: req.MSMECertificateURL,
		PANCardURL:         req.PANCardURL,
		OwnerUserID:        userID,
	}

	// Exactly one default among the initial accounts: the first one
	// flagged wins, otherwise the first account becomes the default.
	defaultSeen := false
	for _, a := range req.BankAccounts {
		isDefault := a.IsDefault && !defaultSeen
		if isDefault {
			defaultSeen = true
		}
		billing.BankAccounts = append(billing.BankAccounts, models.BankAccount{
			AccountNumber:      a.AccountNumber,
			IFSCCode:           a.IFSCCode,
			AccountHolderName:  a.AccountHolderName,
			BankName:           a.BankName,
			BranchName:         a.BranchName,
			IsDefault:          isDefault,
			CancelledChequeURL: a.CancelledChequeURL,
		})
	}
	if !defaultSeen && len(billing.BankAccounts) > 0 {
		billing.BankAccounts[0].IsDefault = true
	}

	if err := s.billingRepo.Create(billing); err != nil {
		return nil, appErrors.InternalError(err)
	}

	resp := dto.ToBillingResponse(billing)
	return &resp, nil
}

func (s *BillingServiceImpl) GetByID(role models.UserRole, id string) (*dto.BillingResponse, error) {
	if !auth.Can(role, auth.ActionRead, auth.ResourceBilling, false) {
		return nil, appErrors.ErrForbidden
	}
	return s.fetch(id)
}

func (s *BillingServiceImpl) List(role models.UserRole, page, pageSize int) (*dto.PaginatedResponse, error) {
	if !auth.Can(role, auth.ActionRead, auth.ResourceBilling, false) {
		return nil, appErrors.ErrForbidden
	}

	billings, total, err := s.billingRepo.FindAll(pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	items := make([]dto.BillingResponse, 0, len(billings))
	for i := range billings {
		items = append(items, dto.ToBillingResponse(&billings[i]))
	}
	return &dto.PaginatedResponse{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func (s *BillingServiceImpl) Update(role models.UserRole, id string, req *dto.UpdateBillingRequest) (*dto.BillingResponse, error) {
	if !auth.Can(role, auth.ActionUpdate, auth.ResourceBilling, false) {
		return nil, appErrors.ErrForbidden
	}

	billing, err := s.billingRepo.FindByID(id)
	if err != nil {
		if appErrors.Is(err, repositories.ErrBillingNotFound) {
			return nil, appErrors.ErrBillingNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	// Evaluate the GST rule against the record as it would look after
	// the update.
	gstApplicable := billing.IsGSTApplicable
	if req.IsGSTApplicable != nil {
		gstApplicable = *req.IsGSTApplicable
	}
	gstin := billing.GSTIN
	if req.GSTIN != nil {
		gstin = *req.GSTIN
	}
	if !gstApplicable && gstin != "" {
		return nil, appErrors.ErrGSTNotApplicable
	}

	updates := map[string]interface{}{}
	if req.PartyLegalName != nil {
		updates["party_legal_name"] = *req.PartyLegalName
	}
	if req.IsGSTApplicable != nil {
		updates["is_gst_applicable"] = *req.IsGSTApplicable
		if !*req.IsGSTApplicable {
			updates["is_gst_verified"] = false
		}
	}
	if req.GSTIN != nil {
		updates["gstin"] = *req.GSTIN
		// A changed GSTIN needs re-verification.
		updates["is_gst_verified"] = false
	}
	if req.PANCard != nil {
		updates["pan_card"] = *req.PANCard
		updates["is_pan_verified"] = false
	}
	if req.State != nil {
		updates["state"] = *req.State
	}
	if req.City != nil {
		updates["city"] = *req.City
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.Pincode != nil {
		updates["pincode"] = *req.Pincode
	}
	if req.IsIndividual != nil {
		updates["is_individual"] = *req.IsIndividual
	}
	if req.GSTCertificateURL != nil {
		updates["gst_certificate_url"] = *req.GSTCertificateURL
	}
	if req.MSMECertificateURL != nil {
		updates["msme_certificate_url"] = *req.MSMECertificateURL
	}
	if req.PANCardURL != nil {
		updates["pan_card_url"] = *req.PANCardURL
	}

	if len(updates) > 0 {
		if err := s.billingRepo.Update(id, updates); err != nil {
			if appErrors.Is(err, repositories.ErrBillingNotFound) {
				return nil, appErrors.ErrBillingNotFound
			}
			return nil, appErrors.InternalError(err)
		}
	}
	return s.fetch(id)
}

func (s *BillingServiceImpl) Delete(role models.UserRole, id string) error {
	if !auth.Can(role, auth.ActionDelete, auth.ResourceBilling, false) {
		return appErrors.ErrForbidden
	}

	if err := s.billingRepo.Delete(id); err != nil {
		if appErrors.Is(err, repositories.ErrBillingNotFound) {
			return appErrors.ErrBillingNotFound
		}
		return appErrors.InternalError(err)
	}
	return nil
}

func (s *BillingServiceImpl) AddBankAccount(role models.UserRole, billingID string, req *dto.CreateBankAccountRequest) (*dto.BankAccountResponse, error) {
	if !auth.Can(role, auth.ActionUpdate, auth.ResourceBilling, false) {
		return nil, appErrors.ErrForbidden
	}
	if err := s.requireExists(billingID); err != nil {
		return nil, err
	}

	count, err := s.billingRepo.CountBankAccounts(billingID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	account := &models.BankAccount{
		BillingDetailsID:   billingID,
		AccountNumber:      req.AccountNumber,
		IFSCCode:           req.IFSCCode,
		AccountHolderName:  req.AccountHolderName,
		BankName:           req.BankName,
		BranchName:         req.BranchName,
		IsDefault:          req.IsDefault || count == 0,
		CancelledChequeURL: req.CancelledChequeURL,
	}

	clearDefaults := account.IsDefault && count > 0
	if err := s.billingRepo.AddBankAccount(account, clearDefaults); err != nil {
		return nil, appErrors.InternalError(err)
	}

	resp := dto.ToBankAccountResponse(account)
	return &resp, nil
}

func (s *BillingServiceImpl) UpdateBankAccount(role models.UserRole, billingID, accountID string, req *dto.UpdateBankAccountRequest) (*dto.BankAccountResponse, error) {
	if !auth.Can(role, auth.ActionUpdate, auth.ResourceBilling, false) {
		return nil, appErrors.ErrForbidden
	}

	updates := map[string]interface{}{}
	if req.AccountNumber != nil {
		updates["account_number"] = *req.AccountNumber
	}
	if req.IFSCCode != nil {
		updates["ifsc_code"] = *req.IFSCCode
	}
	if req.AccountHolderName != nil {
		updates["account_holder_name"] = *req.AccountHolderName
	}
	if req.BankName != nil {
		updates["bank_name"] = *req.BankName
	}
	if req.BranchName != nil {
		updates["branch_name"] = *req.BranchName
	}
	if req.CancelledChequeURL != nil {
		updates["cancelled_cheque_url"] = *req.CancelledChequeURL
	}

	// is_default can only be turned on here; switching it off would
	// leave the record without a default. Use set-default to move it.
	clearDefaults := false
	if req.IsDefault != nil && *req.IsDefault {
		updates["is_default"] = true
		clearDefaults = true
	}

	if len(updates) > 0 {
		if err := s.billingRepo.UpdateBankAccount(billingID, accountID, updates, clearDefaults); err != nil {
			if appErrors.Is(err, repositories.ErrBankAccountNotFound) {
				return nil, appErrors.ErrBankAccountNotFound
			}
			return nil, appErrors.InternalError(err)
		}
	}

	account, err := s.billingRepo.FindBankAccount(billingID, accountID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrBankAccountNotFound) {
			return nil, appErrors.ErrBankAccountNotFound
		}
		return nil, appErrors.InternalError(err)
	}
	resp := dto.ToBankAccountResponse(account)
	return &resp, nil
}

func (s *BillingServiceImpl) DeleteBankAccount(role models.UserRole, billingID, accountID string) error {
	if !auth.Can(role, auth.ActionUpdate, auth.ResourceBilling, false) {
		return appErrors.ErrForbidden
	}

	account, err := s.billingRepo.FindBankAccount(billingID, accountID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrBankAccountNotFound) {
			return appErrors.ErrBankAccountNotFound
		}
		return appErrors.InternalError(err)
	}

	count, err := s.billingRepo.CountBankAccounts(billingID)
	if err != nil {
		return appErrors.InternalError(err)
	}
	if count <= 1 {
		return appErrors.ErrOnlyBankAccount
	}

	if err := s.billingRepo.DeleteBankAccount(billingID, accountID, account.IsDefault); err != nil {
		if appErrors.Is(err, repositories.ErrBankAccountNotFound) {
			return appErrors.ErrBankAccountNotFound
		}
		return appErrors.InternalError(err)
	}
	return nil
}

func (s *BillingServiceImpl) SetDefaultBankAccount(role models.UserRole, billingID, accountID string) (*dto.BillingResponse, error) {
	if !auth.Can(role, auth.ActionUpdate, auth.ResourceBilling, false) {
		return nil, appErrors.ErrForbidden
	}
	if err := s.requireExists(billingID); err != nil {
		return nil, err
	}

	if err := s.billingRepo.SetDefaultBankAccount(billingID, accountID); err != nil {
		if appErrors.Is(err, repositories.ErrBankAccountNotFound) {
			return nil, appErrors.ErrBankAccountNotFound
		}
		return nil, appErrors.InternalError(err)
	}
	return s.fetch(billingID)
}

func (s *BillingServiceImpl) VerifyBankAccount(role models.UserRole, billingID, accountID string) (*dto.BankAccountResponse, error) {
	if !auth.Can(role, auth.ActionVerify, auth.ResourceBilling, false) {
		return nil, appErrors.ErrForbidden
	}

	if err := s.billingRepo.UpdateBankAccount(billingID, accountID, map[string]interface{}{"is_verified": true}, false); err != nil {
		if appErrors.Is(err, repositories.ErrBankAccountNotFound) {
			return nil, appErrors.ErrBankAccountNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	account, err := s.billingRepo.FindBankAccount(billingID, accountID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrBankAccountNotFound) {
			return nil, appErrors.ErrBankAccountNotFound
		}
		return nil, appErrors.InternalError(err)
	}
	resp := dto.ToBankAccountResponse(account)
	return &resp, nil
}

func (s *BillingServiceImpl) VerifyGST(role models.UserRole, id string) (*dto.BillingResponse, error) {
	if !auth.Can(role, auth.ActionVerify, auth.ResourceBilling, false) {
		return nil, appErrors.ErrForbidden
	}

	billing, err := s.billingRepo.FindByID(id)
	if err != nil {
		if appErrors.Is(err, repositories.ErrBillingNotFound) {
			return nil, appErrors.ErrBillingNotFound
		}
		return nil, appErrors.InternalError(err)
	}
	if billing.GSTIN == "" {
		return nil, appErrors.ErrNoGSTIN
	}

	if err := s.billingRepo.Update(id, map[string]interface{}{"is_gst_verified": true}); err != nil {
		return nil, appErrors.InternalError(err)
	}
	return s.fetch(id)
}

func (s *BillingServiceImpl) VerifyPAN(role models.UserRole, id string) (*dto.BillingResponse, error) {
	if !auth.Can(role, auth.ActionVerify, auth.ResourceBilling, false) {
		return nil, appErrors.ErrForbidden
	}

	billing, err := s.billingRepo.FindByID(id)
	if err != nil {
		if appErrors.Is(err, repositories.ErrBillingNotFound) {
			return nil, appErrors.ErrBillingNotFound
		}
		return nil, appErrors.InternalError(err)
	}
	if billing.PANCard == "" {
		return nil, appErrors.ErrNoPANCard
	}

	if err := s.billingRepo.Update(id, map[string]interface{}{"is_pan_verified": true}); err != nil {
		return nil, appErrors.InternalError(err)
	}
	return s.fetch(id)
}

func (s *BillingServiceImpl) SetMSME(role models.UserRole, id string, req *dto.SetMSMERequest) (*dto.BillingResponse, error) {
	if !auth.Can(role, auth.ActionVerify, auth.ResourceBilling, false) {
		return nil, appErrors.ErrForbidden
	}

	billing, err := s.billingRepo.FindByID(id)
	if err != nil {
		if appErrors.Is(err, repositories.ErrBillingNotFound) {
			return nil, appErrors.ErrBillingNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	updates := map[string]interface{}{"is_msme": req.IsMSME}
	if req.MSMECertificateURL != "" {
		updates["msme_certificate_url"] = req.MSMECertificateURL
	}
	if req.IsMSME && billing.MSMECertificateURL == "" && req.MSMECertificateURL == "" {
		return nil, appErrors.ErrNoMSMECertificate
	}

	if err := s.billingRepo.Update(id, updates); err != nil {
		return nil, appErrors.InternalError(err)
	}
	return s.fetch(id)
}

func (s *BillingServiceImpl) fetch(id string) (*dto.BillingResponse, error) {
	billing, err := s.billingRepo.FindByID(id)
	if err != nil {
		if appErrors.Is(err, repositories.ErrBillingNotFound) {
			return nil, appErrors.ErrBillingNotFound
		}
		return nil, appErrors.InternalError(err)
	}
	resp := dto.ToBillingResponse(billing)
	return &resp, nil
}

func (s *BillingServiceImpl) requireExists(id string) error {
	exists, err := s.billingRepo.Exists(id)
	if err != nil {
		return appErrors.InternalError(err)
	}
	if !exists {
		return appErrors.ErrBillingNotFound
	}
	return nil
}
