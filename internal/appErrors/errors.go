package appErrors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode identifies an error class across the API.
type ErrorCode string

// AppError is the application error carried from services up to handlers.
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

func Wrap(err error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

func (e *AppError) MarshalJSON() ([]byte, error) {
	type alias struct {
		Code    ErrorCode   `json:"code"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}
	return json.Marshal(&alias{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	})
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Predefined errors
var (
	// Authentication
	ErrInvalidCredentials = New(CodeInvalidCredentials, "Incorrect email or password", http.StatusUnauthorized)
	ErrUnauthorized       = New(CodeUnauthorized, "Authentication required", http.StatusUnauthorized)
	ErrInvalidToken       = New(CodeInvalidToken, "Invalid or expired token", http.StatusUnauthorized)
	ErrUserInactive       = New(CodeUserInactive, "User account is inactive", http.StatusBadRequest)

	// Authorization
	ErrForbidden = New(CodeForbidden, "Not enough permissions", http.StatusForbidden)

	// Users
	ErrUserNotFound       = New(CodeUserNotFound, "User not found", http.StatusNotFound)
	ErrEmailAlreadyExists = New(CodeEmailAlreadyExists, "Email already registered", http.StatusBadRequest)
	ErrWeakPassword       = New(CodeWeakPassword, "Password must be at least 8 characters", http.StatusBadRequest)
	ErrInvalidUserRole    = New(CodeInvalidUserRole, "Invalid user role", http.StatusBadRequest)
	ErrLastAdmin          = New(CodeLastAdmin, "Cannot remove the last admin", http.StatusBadRequest)

	// Profiles, brands, billing
	ErrProfileNotFound     = New(CodeProfileNotFound, "Profile not found", http.StatusNotFound)
	ErrBrandNotFound       = New(CodeBrandNotFound, "Brand not found", http.StatusNotFound)
	ErrBillingNotFound     = New(CodeBillingNotFound, "Billing details not found", http.StatusNotFound)
	ErrPOCNotFound         = New(CodePOCNotFound, "POC not found", http.StatusNotFound)
	ErrBankAccountNotFound = New(CodeBankAccountNotFound, "Bank account not found", http.StatusNotFound)

	// Billing business rules
	ErrGSTNotApplicable  = New(CodeGSTNotApplicable, "Cannot provide GSTIN when GST is not applicable", http.StatusBadRequest)
	ErrNoGSTIN           = New(CodeNoGSTIN, "No GSTIN provided in billing details", http.StatusBadRequest)
	ErrNoPANCard         = New(CodeNoPANCard, "No PAN card provided in billing details", http.StatusBadRequest)
	ErrNoMSMECertificate = New(CodeNoMSMECertificate, "MSME certificate URL must be provided to set MSME status", http.StatusBadRequest)
	ErrOnlyBankAccount   = New(CodeOnlyBankAccount, "Cannot delete the only bank account", http.StatusBadRequest)
	ErrBillingNotLinked  = New(CodeBillingNotLinked, "No billing details associated with this record", http.StatusNotFound)
	ErrInvalidEntityType = New(CodeInvalidEntityType, "Unknown entity type", http.StatusBadRequest)

	// Validation
	ErrValidationFailed = New(CodeValidationFailed, "Validation failed", http.StatusBadRequest)
)

// Helpers for errors built on the fly

func ValidationError(details interface{}) *AppError {
	return ErrValidationFailed.WithDetails(details)
}

func NotFound(resource string) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s not found", resource), http.StatusNotFound)
}

func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "Internal server error", http.StatusInternalServerError)
}

func NewUnauthorizedError(message string) *AppError {
	return New(CodeUnauthorized, message, http.StatusUnauthorized)
}

func NewForbiddenError(message string) *AppError {
	return New(CodeForbidden, message, http.StatusForbidden)
}

func NewBadRequestError(message string) *AppError {
	return New(CodeValidationFailed, message, http.StatusBadRequest)
}
