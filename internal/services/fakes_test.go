package services

import (
	"sort"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"crm_backend/internal/models"
	"crm_backend/internal/repositories"
)

// In-memory repository fakes. They mirror the contract of the GORM
// implementations closely enough for service-level behavior: sentinel
// errors, partial updates and the bank account default handling.

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) FindByID(id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Create(user *models.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Update(user *models.User) error {
	stored, ok := r.users[user.ID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	stored.Email = user.Email
	stored.FullName = user.FullName
	stored.Role = user.Role
	stored.IsActive = user.IsActive
	return nil
}

func (r *fakeUserRepo) UpdateRole(userID string, role models.UserRole) error {
	u, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.Role = role
	return nil
}

func (r *fakeUserRepo) UpdatePassword(userID, passwordHash string) error {
	u, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

func (r *fakeUserRepo) SetActive(userID string, active bool) error {
	u, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.IsActive = active
	return nil
}

func (r *fakeUserRepo) FindAll(limit, offset int) ([]models.User, error) {
	var out []models.User
	for _, u := range r.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if offset > len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeUserRepo) CountAll() (int64, error) {
	return int64(len(r.users)), nil
}

func (r *fakeUserRepo) CountActiveByRole(role models.UserRole) (int64, error) {
	var n int64
	for _, u := range r.users {
		if u.Role == role && u.IsActive {
			n++
		}
	}
	return n, nil
}

func (r *fakeUserRepo) EmailTaken(email, excludeUserID string) (bool, error) {
	for _, u := range r.users {
		if u.Email == email && u.ID != excludeUserID {
			return true, nil
		}
	}
	return false, nil
}

type fakeProfileRepo struct {
	profiles map[string]*models.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[string]*models.Profile)}
}

func (r *fakeProfileRepo) FindByID(id string) (*models.Profile, error) {
	p, ok := r.profiles[id]
	if !ok {
		return nil, repositories.ErrProfileNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProfileRepo) Create(profile *models.Profile) error {
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	cp := *profile
	r.profiles[profile.ID] = &cp
	return nil
}

func (r *fakeProfileRepo) Update(id string, updates map[string]interface{}) error {
	p, ok := r.profiles[id]
	if !ok {
		return repositories.ErrProfileNotFound
	}
	for key, value := range updates {
		switch key {
		case "platform":
			p.Platform = value.(models.Platform)
		case "content_orientation":
			p.ContentOrientation = value.(models.ContentOrientation)
		case "username":
			p.Username = value.(string)
		case "profile_url":
			p.ProfileURL = value.(string)
		case "region":
			p.Region = value.(string)
		case "language":
			p.Language = value.(string)
		case "followers":
			p.Followers = value.(int64)
		case "er_rate":
			p.ERRate = value.(float64)
		case "is_betting_allowed":
			p.IsBettingAllowed = value.(bool)
		case "male_audience":
			p.MaleAudience = value.(float64)
		case "bio_phone":
			p.BioPhone = value.(string)
		case "bio_email":
			p.BioEmail = value.(string)
		case "contact_details":
			p.ContactDetails = value.(datatypes.JSON)
		case "costing":
			p.Costing = value.(datatypes.JSON)
		}
	}
	return nil
}

func (r *fakeProfileRepo) Delete(id string) error {
	if _, ok := r.profiles[id]; !ok {
		return repositories.ErrProfileNotFound
	}
	delete(r.profiles, id)
	return nil
}

func (r *fakeProfileRepo) FindWithFilter(criteria repositories.ProfileFilter) ([]models.Profile, int64, error) {
	var out []models.Profile
	for _, p := range r.profiles {
		if criteria.OwnerUserID != "" && p.OwnerUserID != criteria.OwnerUserID {
			continue
		}
		if criteria.Platform != "" && p.Platform != criteria.Platform {
			continue
		}
		if criteria.Region != "" && p.Region != criteria.Region {
			continue
		}
		if criteria.MinFollowers != nil && p.Followers < *criteria.MinFollowers {
			continue
		}
		if criteria.MaxFollowers != nil && p.Followers > *criteria.MaxFollowers {
			continue
		}
		if criteria.Search != "" {
			needle := strings.ToLower(criteria.Search)
			haystack := strings.ToLower(p.Username + " " + p.Region + " " + p.Language)
			if !strings.Contains(haystack, needle) {
				continue
			}
		}
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, int64(len(out)), nil
}

func (r *fakeProfileRepo) FindByBillingID(billingID string) ([]models.Profile, error) {
	var out []models.Profile
	for _, p := range r.profiles {
		if p.BillingDetailsID != nil && *p.BillingDetailsID == billingID {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeProfileRepo) UpdateBillingRef(id string, billingID *string) error {
	p, ok := r.profiles[id]
	if !ok {
		return repositories.ErrProfileNotFound
	}
	p.BillingDetailsID = billingID
	return nil
}

type fakeBrandRepo struct {
	brands map[string]*models.Brand
}

func newFakeBrandRepo() *fakeBrandRepo {
	return &fakeBrandRepo{brands: make(map[string]*models.Brand)}
}

func (r *fakeBrandRepo) FindByID(id string) (*models.Brand, error) {
	b, ok := r.brands[id]
	if !ok {
		return nil, repositories.ErrBrandNotFound
	}
	cp := *b
	cp.POCs = append([]models.POC(nil), b.POCs...)
	return &cp, nil
}

func (r *fakeBrandRepo) Create(brand *models.Brand) error {
	if brand.ID == "" {
		brand.ID = uuid.NewString()
	}
	for i := range brand.POCs {
		if brand.POCs[i].ID == "" {
			brand.POCs[i].ID = uuid.NewString()
		}
		brand.POCs[i].BrandID = brand.ID
	}
	cp := *brand
	cp.POCs = append([]models.POC(nil), brand.POCs...)
	r.brands[brand.ID] = &cp
	return nil
}

func (r *fakeBrandRepo) Update(id string, updates map[string]interface{}) error {
	b, ok := r.brands[id]
	if !ok {
		return repositories.ErrBrandNotFound
	}
	for key, value := range updates {
		switch key {
		case "name":
			b.Name = value.(string)
		case "company_name":
			b.CompanyName = value.(string)
		case "website":
			b.Website = value.(string)
		case "instagram":
			b.Instagram = value.(string)
		case "linkedin":
			b.Linkedin = value.(string)
		case "logo_url":
			b.LogoURL = value.(string)
		}
	}
	return nil
}

func (r *fakeBrandRepo) Delete(id string) error {
	if _, ok := r.brands[id]; !ok {
		return repositories.ErrBrandNotFound
	}
	delete(r.brands, id)
	return nil
}

func (r *fakeBrandRepo) FindAll(limit, offset int) ([]models.Brand, int64, error) {
	var out []models.Brand
	for _, b := range r.brands {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	total := int64(len(out))
	if offset > len(out) {
		return nil, total, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, total, nil
}

func (r *fakeBrandRepo) FindByBillingID(billingID string) ([]models.Brand, error) {
	var out []models.Brand
	for _, b := range r.brands {
		if b.BillingDetailsID != nil && *b.BillingDetailsID == billingID {
			out = append(out, *b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeBrandRepo) UpdateBillingRef(id string, billingID *string) error {
	b, ok := r.brands[id]
	if !ok {
		return repositories.ErrBrandNotFound
	}
	b.BillingDetailsID = billingID
	return nil
}

func (r *fakeBrandRepo) AddPOC(poc *models.POC) error {
	b, ok := r.brands[poc.BrandID]
	if !ok {
		return repositories.ErrBrandNotFound
	}
	if poc.ID == "" {
		poc.ID = uuid.NewString()
	}
	b.POCs = append(b.POCs, *poc)
	return nil
}

func (r *fakeBrandRepo) UpdatePOC(brandID, pocID string, updates map[string]interface{}) error {
	b, ok := r.brands[brandID]
	if !ok {
		return repositories.ErrPOCNotFound
	}
	for i := range b.POCs {
		if b.POCs[i].ID != pocID {
			continue
		}
		for key, value := range updates {
			switch key {
			case "name":
				b.POCs[i].Name = value.(string)
			case "phone":
				b.POCs[i].Phone = value.(string)
			case "email":
				b.POCs[i].Email = value.(string)
			case "designation":
				b.POCs[i].Designation = value.(string)
			}
		}
		return nil
	}
	return repositories.ErrPOCNotFound
}

func (r *fakeBrandRepo) DeletePOC(brandID, pocID string) error {
	b, ok := r.brands[brandID]
	if !ok {
		return repositories.ErrPOCNotFound
	}
	for i := range b.POCs {
		if b.POCs[i].ID == pocID {
			b.POCs = append(b.POCs[:i], b.POCs[i+1:]...)
			return nil
		}
	}
	return repositories.ErrPOCNotFound
}

type fakeBillingRepo struct {
	billings map[string]*models.BillingDetails
}

func newFakeBillingRepo() *fakeBillingRepo {
	return &fakeBillingRepo{billings: make(map[string]*models.BillingDetails)}
}

func (r *fakeBillingRepo) FindByID(id string) (*models.BillingDetails, error) {
	b, ok := r.billings[id]
	if !ok {
		return nil, repositories.ErrBillingNotFound
	}
	cp := *b
	cp.BankAccounts = append([]models.BankAccount(nil), b.BankAccounts...)
	return &cp, nil
}

func (r *fakeBillingRepo) Exists(id string) (bool, error) {
	_, ok := r.billings[id]
	return ok, nil
}

func (r *fakeBillingRepo) Create(billing *models.BillingDetails) error {
	if billing.ID == "" {
		billing.ID = uuid.NewString()
	}
	for i := range billing.BankAccounts {
		if billing.BankAccounts[i].ID == "" {
			billing.BankAccounts[i].ID = uuid.NewString()
		}
		billing.BankAccounts[i].BillingDetailsID = billing.ID
	}
	cp := *billing
	cp.BankAccounts = append([]models.BankAccount(nil), billing.BankAccounts...)
	r.billings[billing.ID] = &cp
	return nil
}

func (r *fakeBillingRepo) Update(id string, updates map[string]interface{}) error {
	b, ok := r.billings[id]
	if !ok {
		return repositories.ErrBillingNotFound
	}
	for key, value := range updates {
		switch key {
		case "party_legal_name":
			b.PartyLegalName = value.(string)
		case "is_gst_applicable":
			b.IsGSTApplicable = value.(bool)
		case "gstin":
			b.GSTIN = value.(string)
		case "pan_card":
			b.PANCard = value.(string)
		case "state":
			b.State = value.(string)
		case "city":
			b.City = value.(string)
		case "address":
			b.Address = value.(string)
		case "pincode":
			b.Pincode = value.(string)
		case "is_individual":
			b.IsIndividual = value.(bool)
		case "is_pan_verified":
			b.IsPANVerified = value.(bool)
		case "is_gst_verified":
			b.IsGSTVerified = value.(bool)
		case "is_msme":
			b.IsMSME = value.(bool)
		case "gst_certificate_url":
			b.GSTCertificateURL = value.(string)
		case "msme_certificate_url":
			b.MSMECertificateURL = value.(string)
		case "pan_card_url":
			b.PANCardURL = value.(string)
		}
	}
	return nil
}

func (r *fakeBillingRepo) Delete(id string) error {
	if _, ok := r.billings[id]; !ok {
		return repositories.ErrBillingNotFound
	}
	delete(r.billings, id)
	return nil
}

func (r *fakeBillingRepo) FindAll(limit, offset int) ([]models.BillingDetails, int64, error) {
	var out []models.BillingDetails
	for _, b := range r.billings {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	total := int64(len(out))
	if offset > len(out) {
		return nil, total, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, total, nil
}

func (r *fakeBillingRepo) FindBankAccount(billingID, accountID string) (*models.BankAccount, error) {
	b, ok := r.billings[billingID]
	if !ok {
		return nil, repositories.ErrBankAccountNotFound
	}
	for i := range b.BankAccounts {
		if b.BankAccounts[i].ID == accountID {
			cp := b.BankAccounts[i]
			return &cp, nil
		}
	}
	return nil, repositories.ErrBankAccountNotFound
}

func (r *fakeBillingRepo) CountBankAccounts(billingID string) (int64, error) {
	b, ok := r.billings[billingID]
	if !ok {
		return 0, nil
	}
	return int64(len(b.BankAccounts)), nil
}

func (r *fakeBillingRepo) AddBankAccount(account *models.BankAccount, clearDefaults bool) error {
	b, ok := r.billings[account.BillingDetailsID]
	if !ok {
		return repositories.ErrBillingNotFound
	}
	if clearDefaults {
		for i := range b.BankAccounts {
			b.BankAccounts[i].IsDefault = false
		}
	}
	if account.ID == "" {
		account.ID = uuid.NewString()
	}
	b.BankAccounts = append(b.BankAccounts, *account)
	return nil
}

func (r *fakeBillingRepo) UpdateBankAccount(billingID, accountID string, updates map[string]interface{}, clearDefaults bool) error {
	b, ok := r.billings[billingID]
	if !ok {
		return repositories.ErrBankAccountNotFound
	}
	if clearDefaults {
		for i := range b.BankAccounts {
			if b.BankAccounts[i].ID != accountID {
				b.BankAccounts[i].IsDefault = false
			}
		}
	}
	for i := range b.BankAccounts {
		if b.BankAccounts[i].ID != accountID {
			continue
		}
		for key, value := range updates {
			switch key {
			case "account_number":
				b.BankAccounts[i].AccountNumber = value.(string)
			case "ifsc_code":
				b.BankAccounts[i].IFSCCode = value.(string)
			case "account_holder_name":
				b.BankAccounts[i].AccountHolderName = value.(string)
			case "bank_name":
				b.BankAccounts[i].BankName = value.(string)
			case "branch_name":
				b.BankAccounts[i].BranchName = value.(string)
			case "is_default":
				b.BankAccounts[i].IsDefault = value.(bool)
			case "is_verified":
				b.BankAccounts[i].IsVerified = value.(bool)
			case "cancelled_cheque_url":
				b.BankAccounts[i].CancelledChequeURL = value.(string)
			}
		}
		return nil
	}
	return repositories.ErrBankAccountNotFound
}

func (r *fakeBillingRepo) DeleteBankAccount(billingID, accountID string, promoteNewDefault bool) error {
	b, ok := r.billings[billingID]
	if !ok {
		return repositories.ErrBankAccountNotFound
	}
	for i := range b.BankAccounts {
		if b.BankAccounts[i].ID != accountID {
			continue
		}
		b.BankAccounts = append(b.BankAccounts[:i], b.BankAccounts[i+1:]...)
		if promoteNewDefault && len(b.BankAccounts) > 0 {
			b.BankAccounts[0].IsDefault = true
		}
		return nil
	}
	return repositories.ErrBankAccountNotFound
}

func (r *fakeBillingRepo) SetDefaultBankAccount(billingID, accountID string) error {
	b, ok := r.billings[billingID]
	if !ok {
		return repositories.ErrBankAccountNotFound
	}
	found := false
	for i := range b.BankAccounts {
		if b.BankAccounts[i].ID == accountID {
			found = true
		}
	}
	if !found {
		return repositories.ErrBankAccountNotFound
	}
	for i := range b.BankAccounts {
		b.BankAccounts[i].IsDefault = b.BankAccounts[i].ID == accountID
	}
	return nil
}
