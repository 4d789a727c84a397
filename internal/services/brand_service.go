package services

import (
	"crm_backend/internal/appErrors"
	"crm_backend/internal/auth"
	"crm_backend/internal/models"
	"crm_backend/internal/repositories"
	"crm_backend/internal/services/dto"
)

type BrandService interface {
	Create(userID string, role models.UserRole, req *dto.CreateBrandRequest) (map[string]interface{}, error)
	GetByID(userID string, role models.UserRole, id string) (map[string]interface{}, error)
	List(userID string, role models.UserRole, page, pageSize int) (*dto.PaginatedResponse, error)
	Update(userID string, role models.UserRole, id string, req *dto.UpdateBrandRequest) (map[string]interface{}, error)
	Delete(userID string, role models.UserRole, id string) error

	AddPOC(userID string, role models.UserRole, brandID string, req *dto.CreatePOCRequest) (*dto.POCResponse, error)
	UpdatePOC(userID string, role models.UserRole, brandID, pocID string, req *dto.UpdatePOCRequest) (*dto.POCResponse, error)
	DeletePOC(userID string, role models.UserRole, brandID, pocID string) error
}

type BrandServiceImpl struct {
	brandRepo   repositories.BrandRepository
	billingRepo repositories.BillingRepository
}

func NewBrandService(brandRepo repositories.BrandRepository, billingRepo repositories.BillingRepository) BrandService {
	return &BrandServiceImpl{brandRepo: brandRepo, billingRepo: billingRepo}
}

func (s *BrandServiceImpl) Create(userID string, role models.UserRole, req *dto.CreateBrandRequest) (map[string]interface{}, error) {
	if !auth.Can(role, auth.ActionCreate, auth.ResourceBrand, false) {
		return nil, appErrors.ErrForbidden
	}

	if req.BillingDetailsID != nil {
		if !auth.Can(role, auth.ActionLink, auth.ResourceBilling, false) {
			return nil, appErrors.ErrForbidden
		}
		exists, err := s.billingRepo.Exists(*req.BillingDetailsID)
		if err != nil {
			return nil, appErrors.InternalError(err)
		}
		if !exists {
			return nil, appErrors.ErrBillingNotFound
		}
	}

	brand := &models.Brand{
		Name:             req.Name,
		CompanyName:      req.CompanyName,
		Website:          req.Website,
		Instagram:        req.Instagram,
		Linkedin:         req.Linkedin,
		LogoURL:          req.LogoURL,
		BillingDetailsID: req.BillingDetailsID,
		OwnerUserID:      userID,
	}
	for _, p := range req.POCs {
		brand.POCs = append(brand.POCs, models.POC{
			Name:        p.Name,
			Phone:       p.Phone,
			Email:       p.Email,
			Designation: p.Designation,
		})
	}

	if err := s.brandRepo.Create(brand); err != nil {
		return nil, appErrors.InternalError(err)
	}

	fields := auth.OwnerVisibleFields(role, auth.ResourceBrand, true)
	return dto.ProjectBrand(brand, fields), nil
}

func (s *BrandServiceImpl) GetByID(userID string, role models.UserRole, id string) (map[string]interface{}, error) {
	brand, err := s.findBrand(id)
	if err != nil {
		return nil, err
	}

	isOwner := brand.OwnerUserID == userID
	fields := auth.OwnerVisibleFields(role, auth.ResourceBrand, isOwner)
	return dto.ProjectBrand(brand, fields), nil
}

func (s *BrandServiceImpl) List(userID string, role models.UserRole, page, pageSize int) (*dto.PaginatedResponse, error) {
	brands, total, err := s.brandRepo.FindAll(pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	items := make([]map[string]interface{}, 0, len(brands))
	for i := range brands {
		isOwner := brands[i].OwnerUserID == userID
		fields := auth.OwnerVisibleFields(role, auth.ResourceBrand, isOwner)
		items = append(items, dto.ProjectBrand(&brands[i], fields))
	}

	return &dto.PaginatedResponse{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func (s *BrandServiceImpl) Update(userID string, role models.UserRole, id string, req *dto.UpdateBrandRequest) (map[string]interface{}, error) {
	brand, err := s.findBrand(id)
	if err != nil {
		return nil, err
	}

	isOwner := brand.OwnerUserID == userID
	if !auth.Can(role, auth.ActionUpdate, auth.ResourceBrand, isOwner) {
		return nil, appErrors.ErrForbidden
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.CompanyName != nil {
		updates["company_name"] = *req.CompanyName
	}
	if req.Website != nil {
		updates["website"] = *req.Website
	}
	if req.Instagram != nil {
		updates["instagram"] = *req.Instagram
	}
	if req.Linkedin != nil {
		updates["linkedin"] = *req.Linkedin
	}
	if req.LogoURL != nil {
		updates["logo_url"] = *req.LogoURL
	}

	if len(updates) > 0 {
		if err := s.brandRepo.Update(id, updates); err != nil {
			if appErrors.Is(err, repositories.ErrBrandNotFound) {
				return nil, appErrors.ErrBrandNotFound
			}
			return nil, appErrors.InternalError(err)
		}
	}

	updated, err := s.findBrand(id)
	if err != nil {
		return nil, err
	}
	fields := auth.OwnerVisibleFields(role, auth.ResourceBrand, isOwner)
	return dto.ProjectBrand(updated, fields), nil
}

func (s *BrandServiceImpl) Delete(userID string, role models.UserRole, id string) error {
	if !auth.Can(role, auth.ActionDelete, auth.ResourceBrand, false) {
		return appErrors.ErrForbidden
	}

	if err := s.brandRepo.Delete(id); err != nil {
		if appErrors.Is(err, repositories.ErrBrandNotFound) {
			return appErrors.ErrBrandNotFound
		}
		return appErrors.InternalError(err)
	}
	return nil
}

func (s *BrandServiceImpl) AddPOC(userID string, role models.UserRole, brandID string, req *dto.CreatePOCRequest) (*dto.POCResponse, error) {
	brand, err := s.findBrand(brandID)
	if err != nil {
		return nil, err
	}

	isOwner := brand.OwnerUserID == userID
	if !auth.Can(role, auth.ActionUpdate, auth.ResourceBrand, isOwner) {
		return nil, appErrors.ErrForbidden
	}

	poc := &models.POC{
		BrandID:     brandID,
		Name:        req.Name,
		Phone:       req.Phone,
		Email:       req.Email,
		Designation: req.Designation,
	}
	if err := s.brandRepo.AddPOC(poc); err != nil {
		return nil, appErrors.InternalError(err)
	}

	resp := dto.ToPOCResponse(poc)
	return &resp, nil
}

func (s *BrandServiceImpl) UpdatePOC(userID string, role models.UserRole, brandID, pocID string, req *dto.UpdatePOCRequest) (*dto.POCResponse, error) {
	brand, err := s.findBrand(brandID)
	if err != nil {
		return nil, err
	}

	isOwner := brand.OwnerUserID == userID
	if !auth.Can(role, auth.ActionUpdate, auth.ResourceBrand, isOwner) {
		return nil, appErrors.ErrForbidden
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Designation != nil {
		updates["designation"] = *req.Designation
	}

	if len(updates) > 0 {
		if err := s.brandRepo.UpdatePOC(brandID, pocID, updates); err != nil {
			if appErrors.Is(err, repositories.ErrPOCNotFound) {
				return nil, appErrors.ErrPOCNotFound
			}
			return nil, appErrors.InternalError(err)
		}
	}

	updated, err := s.findBrand(brandID)
	if err != nil {
		return nil, err
	}
	for i := range updated.POCs {
		if updated.POCs[i].ID == pocID {
			resp := dto.ToPOCResponse(&updated.POCs[i])
			return &resp, nil
		}
	}
	return nil, appErrors.ErrPOCNotFound
}

func (s *BrandServiceImpl) DeletePOC(userID string, role models.UserRole, brandID, pocID string) error {
	brand, err := s.findBrand(brandID)
	if err != nil {
		return err
	}

	isOwner := brand.OwnerUserID == userID
	if !auth.Can(role, auth.ActionUpdate, auth.ResourceBrand, isOwner) {
		return appErrors.ErrForbidden
	}

	if err := s.brandRepo.DeletePOC(brandID, pocID); err != nil {
		if appErrors.Is(err, repositories.ErrPOCNotFound) {
			return appErrors.ErrPOCNotFound
		}
		return appErrors.InternalError(err)
	}
	return nil
}

func (s *BrandServiceImpl) findBrand(id string) (*models.Brand, error) {
	brand, err := s.brandRepo.FindByID(id)
	if err != nil {
		if appErrors.Is(err, repositories.ErrBrandNotFound) {
			return nil, appErrors.ErrBrandNotFound
		}
		return nil, appErrors.InternalError(err)
	}
	return brand, nil
}
