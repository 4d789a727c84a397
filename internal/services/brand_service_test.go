package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crm_backend/internal/appErrors"
	"crm_backend/internal/models"
	"crm_backend/internal/services/dto"
)

func newBrandFixture(t *testing.T) (*fakeBrandRepo, *fakeBillingRepo, BrandService) {
	t.Helper()
	brandRepo := newFakeBrandRepo()
	billingRepo := newFakeBillingRepo()
	svc := NewBrandService(brandRepo, billingRepo)
	return brandRepo, billingRepo, svc
}

func TestBrandCreate_RoleGate(t *testing.T) {
	t.Parallel()
	_, _, svc := newBrandFixture(t)

	req := &dto.CreateBrandRequest{CompanyName: "Northwind Traders Pvt Ltd"}

	_, err := svc.Create("intern-1", models.UserRoleIntern, req)
	assert.ErrorIs(t, err, appErrors.ErrForbidden)

	_, err = svc.Create("op-1", models.UserRoleDataOperator, req)
	assert.ErrorIs(t, err, appErrors.ErrForbidden)

	out, err := svc.Create("mgr-1", models.UserRoleManager, req)
	require.NoError(t, err)
	assert.Equal(t, "Northwind Traders Pvt Ltd", out["company_name"])
	assert.Equal(t, "mgr-1", out["owner_user_id"])
}

func TestBrandCreate_UnknownBillingRejected(t *testing.T) {
	t.Parallel()
	_, _, svc := newBrandFixture(t)

	missing := "9c1f7f1e-0000-0000-0000-000000000000"
	_, err := svc.Create("mgr-1", models.UserRoleManager, &dto.CreateBrandRequest{
		Name:             "Northwind",
		BillingDetailsID: &missing,
	})
	assert.ErrorIs(t, err, appErrors.ErrBillingNotFound)
}

func TestBrandGetByID_Projection(t *testing.T) {
	t.Parallel()
	_, _, svc := newBrandFixture(t)

	created, err := svc.Create("mgr-1", models.UserRoleManager, &dto.CreateBrandRequest{
		Name: "Northwind",
		POCs: []dto.CreatePOCRequest{{Name: "Asha", Email: "asha@northwind.example"}},
	})
	require.NoError(t, err)
	id := created["id"].(string)

	restricted, err := svc.GetByID("intern-1", models.UserRoleIntern, id)
	require.NoError(t, err)
	assert.Contains(t, restricted, "name")
	assert.NotContains(t, restricted, "pocs")
	assert.NotContains(t, restricted, "company_name")
	assert.NotContains(t, restricted, "billing_details_id")

	full, err := svc.GetByID("admin-1", models.UserRoleAdmin, id)
	require.NoError(t, err)
	pocs := full["pocs"].([]dto.POCResponse)
	require.Len(t, pocs, 1)
	assert.Equal(t, "Asha", pocs[0].Name)
}

func TestBrandUpdate_RoleGate(t *testing.T) {
	t.Parallel()
	_, _, svc := newBrandFixture(t)

	created, err := svc.Create("mgr-1", models.UserRoleManager, &dto.CreateBrandRequest{Name: "Northwind"})
	require.NoError(t, err)
	id := created["id"].(string)

	site := "https://northwind.example"
	_, err = svc.Update("intern-1", models.UserRoleIntern, id, &dto.UpdateBrandRequest{Website: &site})
	assert.ErrorIs(t, err, appErrors.ErrForbidden)

	out, err := svc.Update("mgr-2", models.UserRoleManager, id, &dto.UpdateBrandRequest{Website: &site})
	require.NoError(t, err)
	assert.Equal(t, site, out["website"])
}

func TestBrandPOCLifecycle(t *testing.T) {
	t.Parallel()
	_, _, svc := newBrandFixture(t)

	created, err := svc.Create("mgr-1", models.UserRoleManager, &dto.CreateBrandRequest{Name: "Northwind"})
	require.NoError(t, err)
	id := created["id"].(string)

	poc, err := svc.AddPOC("mgr-1", models.UserRoleManager, id, &dto.CreatePOCRequest{
		Name:        "Asha",
		Designation: "Marketing Lead",
	})
	require.NoError(t, err)
	require.NotEmpty(t, poc.ID)

	phone := "+91-9000000000"
	updated, err := svc.UpdatePOC("mgr-1", models.UserRoleManager, id, poc.ID, &dto.UpdatePOCRequest{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, phone, updated.Phone)
	assert.Equal(t, "Asha", updated.Name)

	err = svc.DeletePOC("intern-1", models.UserRoleIntern, id, poc.ID)
	assert.ErrorIs(t, err, appErrors.ErrForbidden)

	require.NoError(t, svc.DeletePOC("mgr-1", models.UserRoleManager, id, poc.ID))

	err = svc.DeletePOC("mgr-1", models.UserRoleManager, id, poc.ID)
	assert.ErrorIs(t, err, appErrors.ErrPOCNotFound)
}

func TestBrandDelete_AdminOnly(t *testing.T) {
	t.Parallel()
	_, _, svc := newBrandFixture(t)

	created, err := svc.Create("mgr-1", models.UserRoleManager, &dto.CreateBrandRequest{Name: "Northwind"})
	require.NoError(t, err)
	id := created["id"].(string)

	err = svc.Delete("mgr-1", models.UserRoleManager, id)
	assert.ErrorIs(t, err, appErrors.ErrForbidden)

	require.NoError(t, svc.Delete("admin-1", models.UserRoleAdmin, id))

	_, err = svc.GetByID("admin-1", models.UserRoleAdmin, id)
	assert.ErrorIs(t, err, appErrors.ErrBrandNotFound)
}
