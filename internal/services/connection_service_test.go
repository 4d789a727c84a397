package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crm_backend/internal/appErrors"
	"crm_backend/internal/models"
	"crm_backend/internal/services/dto"
)

func newConnectionFixture(t *testing.T) (*fakeProfileRepo, *fakeBrandRepo, *fakeBillingRepo, ConnectionService) {
	t.Helper()
	profileRepo := newFakeProfileRepo()
	brandRepo := newFakeBrandRepo()
	billingRepo := newFakeBillingRepo()
	svc := NewConnectionService(profileRepo, brandRepo, billingRepo)
	return profileRepo, brandRepo, billingRepo, svc
}

func seedBilling(t *testing.T, repo *fakeBillingRepo) *models.BillingDetails {
	t.Helper()
	billing := &models.BillingDetails{
		PartyLegalName: "Acme Media LLP",
		PANCard:        "ABCDE1234F",
		State:          "Karnataka",
		City:           "Bengaluru",
		Address:        "1 MG Road",
		Pincode:        "560001",
		OwnerUserID:    "finance-user",
	}
	require.NoError(t, repo.Create(billing))
	return billing
}

func seedProfile(t *testing.T, repo *fakeProfileRepo, owner string) *models.Profile {
	t.Helper()
	profile := &models.Profile{
		Platform:    models.PlatformYoutube,
		Username:    "creator_one",
		ProfileURL:  "https://youtube.com/@creator_one",
		OwnerUserID: owner,
	}
	require.NoError(t, repo.Create(profile))
	return profile
}

func TestConnect_DisconnectRoundTrip(t *testing.T) {
	t.Parallel()
	profileRepo, _, billingRepo, svc := newConnectionFixture(t)
	billing := seedBilling(t, billingRepo)
	profile := seedProfile(t, profileRepo, "op-1")

	res, err := svc.Connect(models.UserRoleManager, &dto.ConnectBillingRequest{
		EntityType: models.EntityTypeProfile,
		EntityID:   profile.ID,
		BillingID:  billing.ID,
	})
	require.NoError(t, err)
	assert.True(t, res.Changed)
	require.NotNil(t, res.BillingID)
	assert.Equal(t, billing.ID, *res.BillingID)

	stored, err := profileRepo.FindByID(profile.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.BillingDetailsID)
	assert.Equal(t, billing.ID, *stored.BillingDetailsID)

	res, err = svc.Disconnect(models.UserRoleManager, &dto.DisconnectBillingRequest{
		EntityType: models.EntityTypeProfile,
		EntityID:   profile.ID,
	})
	require.NoError(t, err)
	assert.True(t, res.Changed)

	stored, err = profileRepo.FindByID(profile.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.BillingDetailsID)
}

func TestConnect_AlreadyLinkedIsNoOp(t *testing.T) {
	t.Parallel()
	profileRepo, _, billingRepo, svc := newConnectionFixture(t)
	billing := seedBilling(t, billingRepo)
	profile := seedProfile(t, profileRepo, "op-1")

	req := &dto.ConnectBillingRequest{
		EntityType: models.EntityTypeProfile,
		EntityID:   profile.ID,
		BillingID:  billing.ID,
	}
	_, err := svc.Connect(models.UserRoleAdmin, req)
	require.NoError(t, err)

	res, err := svc.Connect(models.UserRoleAdmin, req)
	require.NoError(t, err)
	assert.False(t, res.Changed)
}

func TestDisconnect_WithoutLinkIsDistinguishable(t *testing.T) {
	t.Parallel()
	profileRepo, _, _, svc := newConnectionFixture(t)
	profile := seedProfile(t, profileRepo, "op-1")

	res, err := svc.Disconnect(models.UserRoleManager, &dto.DisconnectBillingRequest{
		EntityType: models.EntityTypeProfile,
		EntityID:   profile.ID,
	})
	require.NoError(t, err)
	assert.False(t, res.Changed)
	assert.Nil(t, res.BillingID)
}

func TestConnect_UnknownBillingLeavesRefUntouched(t *testing.T) {
	t.Parallel()
	profileRepo, _, billingRepo, svc := newConnectionFixture(t)
	billing := seedBilling(t, billingRepo)
	profile := seedProfile(t, profileRepo, "op-1")

	_, err := svc.Connect(models.UserRoleAdmin, &dto.ConnectBillingRequest{
		EntityType: models.EntityTypeProfile,
		EntityID:   profile.ID,
		BillingID:  billing.ID,
	})
	require.NoError(t, err)

	_, err = svc.Connect(models.UserRoleAdmin, &dto.ConnectBillingRequest{
		EntityType: models.EntityTypeProfile,
		EntityID:   profile.ID,
		BillingID:  "00000000-0000-0000-0000-000000000000",
	})
	assert.ErrorIs(t, err, appErrors.ErrBillingNotFound)

	stored, err := profileRepo.FindByID(profile.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.BillingDetailsID)
	assert.Equal(t, billing.ID, *stored.BillingDetailsID)
}

func TestConnect_RoleGate(t *testing.T) {
	t.Parallel()
	profileRepo, _, billingRepo, svc := newConnectionFixture(t)
	billing := seedBilling(t, billingRepo)
	profile := seedProfile(t, profileRepo, "op-1")

	for _, role := range []models.UserRole{
		models.UserRoleIntern,
		models.UserRoleDataOperator,
		models.UserRoleFinance,
	} {
		_, err := svc.Connect(role, &dto.ConnectBillingRequest{
			EntityType: models.EntityTypeProfile,
			EntityID:   profile.ID,
			BillingID:  billing.ID,
		})
		assert.ErrorIs(t, err, appErrors.ErrForbidden, "role %s", role)
	}
}

func TestBillingUsers(t *testing.T) {
	t.Parallel()
	profileRepo, brandRepo, billingRepo, svc := newConnectionFixture(t)
	billing := seedBilling(t, billingRepo)

	linked := seedProfile(t, profileRepo, "op-1")
	unlinked := seedProfile(t, profileRepo, "op-1")
	_ = unlinked

	brand := &models.Brand{CompanyName: "Orbit Foods Pvt Ltd", OwnerUserID: "mgr-1"}
	require.NoError(t, brandRepo.Create(brand))

	require.NoError(t, profileRepo.UpdateBillingRef(linked.ID, &billing.ID))
	require.NoError(t, brandRepo.UpdateBillingRef(brand.ID, &billing.ID))

	res, err := svc.BillingUsers(models.UserRoleManager, billing.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, res.TotalProfiles)
	assert.Equal(t, 1, res.TotalBrands)
	require.Len(t, res.ProfilesInfo, 1)
	assert.Equal(t, linked.ID, res.ProfilesInfo[0].ID)
	require.Len(t, res.BrandsInfo, 1)
	assert.Equal(t, "Orbit Foods Pvt Ltd", res.BrandsInfo[0].Name)
}

func TestBillingUsers_LinkRolesOnly(t *testing.T) {
	t.Parallel()
	_, _, billingRepo, svc := newConnectionFixture(t)
	billing := seedBilling(t, billingRepo)

	for _, role := range []models.UserRole{
		models.UserRoleFinance,
		models.UserRoleIntern,
		models.UserRoleDataOperator,
	} {
		_, err := svc.BillingUsers(role, billing.ID)
		assert.ErrorIs(t, err, appErrors.ErrForbidden, "role %s", role)
	}

	_, err := svc.BillingUsers(models.UserRoleAdmin, billing.ID)
	assert.NoError(t, err)
}

func TestBillingUsers_UnknownBilling(t *testing.T) {
	t.Parallel()
	_, _, _, svc := newConnectionFixture(t)

	_, err := svc.BillingUsers(models.UserRoleAdmin, "missing")
	assert.ErrorIs(t, err, appErrors.ErrBillingNotFound)
}

func TestGetProfileBilling(t *testing.T) {
	t.Parallel()
	profileRepo, _, billingRepo, svc := newConnectionFixture(t)
	billing := seedBilling(t, billingRepo)
	profile := seedProfile(t, profileRepo, "op-1")
	require.NoError(t, profileRepo.UpdateBillingRef(profile.ID, &billing.ID))

	// Owning data operator resolves the link.
	res, err := svc.GetProfileBilling("op-1", models.UserRoleDataOperator, profile.ID)
	require.NoError(t, err)
	assert.Equal(t, billing.ID, res.ID)

	// A different data operator does not.
	_, err = svc.GetProfileBilling("op-2", models.UserRoleDataOperator, profile.ID)
	assert.ErrorIs(t, err, appErrors.ErrForbidden)

	// Interns can resolve any profile's billing.
	_, err = svc.GetProfileBilling("intern-1", models.UserRoleIntern, profile.ID)
	assert.NoError(t, err)
}

func TestGetProfileBilling_UnlinkedVsDangling(t *testing.T) {
	t.Parallel()
	profileRepo, _, billingRepo, svc := newConnectionFixture(t)
	billing := seedBilling(t, billingRepo)

	unlinked := seedProfile(t, profileRepo, "op-1")
	_, err := svc.GetProfileBilling("admin-1", models.UserRoleAdmin, unlinked.ID)
	assert.ErrorIs(t, err, appErrors.ErrBillingNotLinked)

	dangling := seedProfile(t, profileRepo, "op-1")
	require.NoError(t, profileRepo.UpdateBillingRef(dangling.ID, &billing.ID))
	require.NoError(t, billingRepo.Delete(billing.ID))

	_, err = svc.GetProfileBilling("admin-1", models.UserRoleAdmin, dangling.ID)
	assert.ErrorIs(t, err, appErrors.ErrBillingNotFound)
}

func TestGetBrandBilling(t *testing.T) {
	t.Parallel()
	_, brandRepo, billingRepo, svc := newConnectionFixture(t)
	billing := seedBilling(t, billingRepo)

	brand := &models.Brand{Name: "Orbit", OwnerUserID: "op-1"}
	require.NoError(t, brandRepo.Create(brand))
	require.NoError(t, brandRepo.UpdateBillingRef(brand.ID, &billing.ID))

	res, err := svc.GetBrandBilling("op-1", models.UserRoleDataOperator, brand.ID)
	require.NoError(t, err)
	assert.Equal(t, billing.ID, res.ID)

	_, err = svc.GetBrandBilling("op-2", models.UserRoleDataOperator, brand.ID)
	assert.ErrorIs(t, err, appErrors.ErrForbidden)
}
