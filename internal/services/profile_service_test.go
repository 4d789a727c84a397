package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crm_backend/internal/appErrors"
	"crm_backend/internal/models"
	"crm_backend/internal/services/dto"
)

func newProfileFixture(t *testing.T) (*fakeProfileRepo, *fakeBillingRepo, ProfileService) {
	t.Helper()
	profileRepo := newFakeProfileRepo()
	billingRepo := newFakeBillingRepo()
	svc := NewProfileService(profileRepo, billingRepo)
	return profileRepo, billingRepo, svc
}

func validProfileRequest() *dto.CreateProfileRequest {
	return &dto.CreateProfileRequest{
		Platform:   models.PlatformInstagram,
		Username:   "creator_two",
		ProfileURL: "https://instagram.com/creator_two",
		Region:     "South",
		Followers:  120000,
	}
}

func TestProfileCreate_SetsOwner(t *testing.T) {
	t.Parallel()
	profileRepo, _, svc := newProfileFixture(t)

	out, err := svc.Create("op-1", models.UserRoleDataOperator, validProfileRequest())
	require.NoError(t, err)
	assert.Equal(t, "op-1", out["owner_user_id"])

	stored, err := profileRepo.FindByID(out["id"].(string))
	require.NoError(t, err)
	assert.Equal(t, "op-1", stored.OwnerUserID)
}

func TestProfileCreate_UnknownBillingRejected(t *testing.T) {
	t.Parallel()
	_, _, svc := newProfileFixture(t)

	missing := "2b6f7f1e-0000-0000-0000-000000000000"
	req := validProfileRequest()
	req.BillingDetailsID = &missing

	_, err := svc.Create("mgr-1", models.UserRoleManager, req)
	assert.ErrorIs(t, err, appErrors.ErrBillingNotFound)
}

func TestProfileCreate_LinkRequiresLinkPermission(t *testing.T) {
	t.Parallel()
	_, billingRepo, svc := newProfileFixture(t)
	billing := seedBilling(t, billingRepo)

	req := validProfileRequest()
	req.BillingDetailsID = &billing.ID

	// Data operators may create profiles but not link billing to them.
	_, err := svc.Create("op-1", models.UserRoleDataOperator, req)
	assert.ErrorIs(t, err, appErrors.ErrForbidden)

	out, err := svc.Create("mgr-1", models.UserRoleManager, req)
	require.NoError(t, err)
	assert.Equal(t, &billing.ID, out["billing_details_id"])
}

func TestProfileGetByID_Projection(t *testing.T) {
	t.Parallel()
	profileRepo, _, svc := newProfileFixture(t)
	profile := seedProfile(t, profileRepo, "op-1")

	restricted, err := svc.GetByID("intern-1", models.UserRoleIntern, profile.ID)
	require.NoError(t, err)
	assert.Contains(t, restricted, "username")
	assert.NotContains(t, restricted, "costing")
	assert.NotContains(t, restricted, "contact_details")
	assert.NotContains(t, restricted, "owner_user_id")

	full, err := svc.GetByID("admin-1", models.UserRoleAdmin, profile.ID)
	require.NoError(t, err)
	assert.Contains(t, full, "costing")
	assert.Contains(t, full, "contact_details")

	// The creating operator sees their own record in full.
	owned, err := svc.GetByID("op-1", models.UserRoleDataOperator, profile.ID)
	require.NoError(t, err)
	assert.Contains(t, owned, "costing")

	foreign, err := svc.GetByID("op-2", models.UserRoleDataOperator, profile.ID)
	require.NoError(t, err)
	assert.NotContains(t, foreign, "costing")
}

func TestProfileList_DataOperatorScopedToOwn(t *testing.T) {
	t.Parallel()
	profileRepo, _, svc := newProfileFixture(t)
	mine := seedProfile(t, profileRepo, "op-1")
	seedProfile(t, profileRepo, "op-2")

	page, err := svc.List("op-1", models.UserRoleDataOperator, &dto.ListProfilesQuery{Page: 1, PageSize: 20})
	require.NoError(t, err)
	items := page.Items.([]map[string]interface{})
	require.Len(t, items, 1)
	assert.Equal(t, mine.ID, items[0]["id"])

	page, err = svc.List("mgr-1", models.UserRoleManager, &dto.ListProfilesQuery{Page: 1, PageSize: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)
}

func TestProfileList_PlatformFilter(t *testing.T) {
	t.Parallel()
	profileRepo, _, svc := newProfileFixture(t)
	seedProfile(t, profileRepo, "op-1")
	other := &models.Profile{
		Platform:    models.PlatformInstagram,
		Username:    "gram_only",
		ProfileURL:  "https://instagram.com/gram_only",
		OwnerUserID: "op-1",
	}
	require.NoError(t, profileRepo.Create(other))

	page, err := svc.List("mgr-1", models.UserRoleManager, &dto.ListProfilesQuery{
		Platform: string(models.PlatformInstagram),
		Page:     1,
		PageSize: 20,
	})
	require.NoError(t, err)
	items := page.Items.([]map[string]interface{})
	require.Len(t, items, 1)
	assert.Equal(t, other.ID, items[0]["id"])
}

func TestProfileUpdate_Ownership(t *testing.T) {
	t.Parallel()
	profileRepo, _, svc := newProfileFixture(t)
	profile := seedProfile(t, profileRepo, "op-1")

	region := "North"
	out, err := svc.Update("op-1", models.UserRoleDataOperator, profile.ID, &dto.UpdateProfileRequest{
		Region: &region,
	})
	require.NoError(t, err)
	assert.Equal(t, "North", out["region"])

	_, err = svc.Update("op-2", models.UserRoleDataOperator, profile.ID, &dto.UpdateProfileRequest{
		Region: &region,
	})
	assert.ErrorIs(t, err, appErrors.ErrForbidden)

	_, err = svc.Update("intern-1", models.UserRoleIntern, profile.ID, &dto.UpdateProfileRequest{
		Region: &region,
	})
	assert.ErrorIs(t, err, appErrors.ErrForbidden)
}

func TestProfileUpdate_ReplacesCosting(t *testing.T) {
	t.Parallel()
	profileRepo, _, svc := newProfileFixture(t)
	profile := seedProfile(t, profileRepo, "op-1")

	out, err := svc.Update("admin-1", models.UserRoleAdmin, profile.ID, &dto.UpdateProfileRequest{
		Costing: []models.CostingDetail{{ContentType: "reel", Price: 15000, Currency: "INR"}},
	})
	require.NoError(t, err)

	costing := out["costing"].([]models.CostingDetail)
	require.Len(t, costing, 1)
	assert.Equal(t, "reel", costing[0].ContentType)
}

func TestProfileDelete_AdminOnly(t *testing.T) {
	t.Parallel()
	profileRepo, _, svc := newProfileFixture(t)
	profile := seedProfile(t, profileRepo, "op-1")

	err := svc.Delete("mgr-1", models.UserRoleManager, profile.ID)
	assert.ErrorIs(t, err, appErrors.ErrForbidden)

	err = svc.Delete("op-1", models.UserRoleDataOperator, profile.ID)
	assert.ErrorIs(t, err, appErrors.ErrForbidden)

	require.NoError(t, svc.Delete("admin-1", models.UserRoleAdmin, profile.ID))

	_, err = svc.GetByID("admin-1", models.UserRoleAdmin, profile.ID)
	assert.ErrorIs(t, err, appErrors.ErrProfileNotFound)
}
