package models

type UserRole string
type Platform string
type ContentOrientation string
type EntityType string

const (
	UserRoleAdmin             UserRole = "admin"
	UserRoleManager           UserRole = "manager"
	UserRoleFinance           UserRole = "finance"
	UserRoleOperationsManager UserRole = "operations_manager"
	UserRoleIntern            UserRole = "intern"
	UserRoleDataOperator      UserRole = "data_operator"

	PlatformYoutube   Platform = "youtube"
	PlatformInstagram Platform = "instagram"
	PlatformLinkedin  Platform = "linkedin"
	PlatformFacebook  Platform = "facebook"
	PlatformTwitter   Platform = "twitter"

	ContentOrientationShorts     ContentOrientation = "shorts"
	ContentOrientationLong       ContentOrientation = "long"
	ContentOrientationLongShorts ContentOrientation = "long_shorts"
	ContentOrientationReels      ContentOrientation = "reels"

	EntityTypeProfile EntityType = "profile"
	EntityTypeBrand   EntityType = "brand"
)

// AllRoles lists every valid role, used by validation and tests.
var AllRoles = []UserRole{
	UserRoleAdmin,
	UserRoleManager,
	UserRoleFinance,
	UserRoleOperationsManager,
	UserRoleIntern,
	UserRoleDataOperator,
}

func IsValidRole(r UserRole) bool {
	for _, role := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

func IsValidPlatform(p Platform) bool {
	switch p {
	case PlatformYoutube, PlatformInstagram, PlatformLinkedin, PlatformFacebook, PlatformTwitter:
		return true
	}
	return false
}

func IsValidContentOrientation(c ContentOrientation) bool {
	switch c {
	case ContentOrientationShorts, ContentOrientationLong, ContentOrientationLongShorts, ContentOrientationReels:
		return true
	}
	return false
}
