package auth

import (
	"crm_backend/internal/models"
)

// FieldSet is the set of field names a role may see on a resource.
type FieldSet map[string]bool

// Contains reports whether the field is visible.
func (s FieldSet) Contains(field string) bool {
	return s[field]
}

func fieldSet(fields ...string) FieldSet {
	set := make(FieldSet, len(fields))
	for _, f := range fields {
		set[f] = true
	}
	return set
}

// clone returns an independent copy so callers can widen a set without
// touching the shared table.
func (s FieldSet) clone() FieldSet {
	out := make(FieldSet, len(s))
	for f := range s {
		out[f] = true
	}
	return out
}

// With returns a copy of the set extended with the given fields.
func (s FieldSet) With(fields ...string) FieldSet {
	out := s.clone()
	for _, f := range fields {
		out[f] = true
	}
	return out
}

var profileFieldsFull = fieldSet(
	"id", "platform", "content_orientation", "username", "profile_url",
	"region", "language", "followers", "er_rate", "is_betting_allowed",
	"male_audience", "bio_phone", "bio_email",
	"contact_details", "costing", "billing_details_id", "owner_user_id",
	"created_at", "updated_at",
)

// Public projection hides costing, contacts and billing linkage.
var profileFieldsPublic = fieldSet(
	"id", "platform", "content_orientation", "username", "profile_url",
	"region", "language", "followers", "er_rate", "is_betting_allowed",
	"male_audience", "bio_phone", "bio_email",
	"created_at", "updated_at",
)

var brandFieldsFull = fieldSet(
	"id", "name", "company_name", "website", "instagram", "linkedin",
	"logo_url", "pocs", "billing_details_id", "owner_user_id",
	"created_at", "updated_at",
)

var brandFieldsPublic = fieldSet(
	"id", "name", "website", "instagram", "linkedin", "logo_url",
	"created_at", "updated_at",
)

var billingFieldsFull = fieldSet(
	"id", "party_legal_name", "is_gst_applicable", "gstin", "pan_card",
	"state", "city", "address", "pincode", "is_individual",
	"is_pancard_verified", "is_gst_verified", "is_msme",
	"gst_certificate_url", "msme_certificate_url", "pan_card_url",
	"bank_accounts", "owner_user_id", "created_at", "updated_at",
)

var userFields = fieldSet(
	"id", "email", "full_name", "role", "is_active",
	"created_at", "updated_at",
)

// privilegedRoles see every field on profiles and brands.
var privilegedRoles = roles(
	models.UserRoleAdmin,
	models.UserRoleManager,
	models.UserRoleFinance,
)

// VisibleFields returns the set of fields the role may see on the
// resource type. Admin, manager and finance always get the full set;
// other roles get the public projection. For billing the set is all or
// nothing since read access itself is restricted.
func VisibleFields(role models.UserRole, resource Resource) FieldSet {
	switch resource {
	case ResourceProfile:
		if privilegedRoles[role] {
			return profileFieldsFull
		}
		return profileFieldsPublic
	case ResourceBrand:
		if privilegedRoles[role] {
			return brandFieldsFull
		}
		return brandFieldsPublic
	case ResourceBilling:
		if Can(role, ActionRead, ResourceBilling, false) {
			return billingFieldsFull
		}
		return fieldSet()
	case ResourceUser:
		if role == models.UserRoleAdmin {
			return userFields
		}
		return fieldSet()
	}
	return fieldSet()
}

// OwnerVisibleFields is VisibleFields widened for a data operator
// reading a record they created: they see the full set for that record.
func OwnerVisibleFields(role models.UserRole, resource Resource, isOwner bool) FieldSet {
	if role == models.UserRoleDataOperator && isOwner {
		switch resource {
		case ResourceProfile:
			return profileFieldsFull
		case ResourceBrand:
			return brandFieldsFull
		}
	}
	return VisibleFields(role, resource)
}
