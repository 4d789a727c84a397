package appErrors

// Error codes grouped by domain.
const (
	// Authentication and authorization
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	CodeUserInactive       ErrorCode = "USER_INACTIVE"

	// Validation
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeWeakPassword     ErrorCode = "WEAK_PASSWORD"
	CodeInvalidUserRole  ErrorCode = "INVALID_USER_ROLE"

	// Resources
	CodeUserNotFound        ErrorCode = "USER_NOT_FOUND"
	CodeProfileNotFound     ErrorCode = "PROFILE_NOT_FOUND"
	CodeBrandNotFound       ErrorCode = "BRAND_NOT_FOUND"
	CodeBillingNotFound     ErrorCode = "BILLING_NOT_FOUND"
	CodePOCNotFound         ErrorCode = "POC_NOT_FOUND"
	CodeBankAccountNotFound ErrorCode = "BANK_ACCOUNT_NOT_FOUND"
	CodeNotFound            ErrorCode = "NOT_FOUND"

	// Business rules
	CodeEmailAlreadyExists ErrorCode = "EMAIL_ALREADY_EXISTS"
	CodeLastAdmin          ErrorCode = "LAST_ADMIN"
	CodeGSTNotApplicable   ErrorCode = "GST_NOT_APPLICABLE"
	CodeNoGSTIN            ErrorCode = "NO_GSTIN"
	CodeNoPANCard          ErrorCode = "NO_PAN_CARD"
	CodeNoMSMECertificate  ErrorCode = "NO_MSME_CERTIFICATE"
	CodeOnlyBankAccount    ErrorCode = "ONLY_BANK_ACCOUNT"
	CodeBillingNotLinked   ErrorCode = "BILLING_NOT_LINKED"
	CodeInvalidEntityType  ErrorCode = "INVALID_ENTITY_TYPE"

	// System
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError ErrorCode = "DATABASE_ERROR"
)
