package auth

import (
	errors "github.com/frahmantamala/recruitment-service/internal"
	"github.com/frahmantamala/recruitment-service/internal/core/validation"
)

// RegisterDTO is the transport shape for POST /auth/register.
type RegisterDTO struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	PersonNumber string `json:"personNumber"`
	Username     string `json:"username"`
	Password     string `json:"password"`
}

// LoginDTO is the transport shape for POST /auth/login.
type LoginDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AvailabilityQueryDTO mirrors the query parameters of GET /auth/availability.
type AvailabilityQueryDTO struct {
	Username string
	Email    string
}

// Validate accumulates field-level errors so the boundary can render the
// full list back to the caller.
func (d RegisterDTO) Validate() *errors.AppError {
	v := validation.NewValidator()

	v.Field("firstName", d.FirstName).Required().MaxLength(255)
	v.Field("lastName", d.LastName).Required().MaxLength(255)

	v.Field("email", d.Email).Required().Custom(func(val interface{}) *errors.AppError {
		if s, ok := val.(string); ok && s != "" && !validation.IsValidEmail(s) {
			return errors.NewValidationFieldError("email", "email must be a valid address", errors.ErrCodeInvalidEmail)
		}
		return nil
	})

	v.Field("personNumber", d.PersonNumber).Required().Custom(func(val interface{}) *errors.AppError {
		if s, ok := val.(string); ok && s != "" && !validation.IsValidPersonNumber(s) {
			return errors.NewValidationFieldError("personNumber", "person number must match YYYYMMDD-XXXX", errors.ErrCodeInvalidPersonNumber)
		}
		return nil
	})

	v.Field("username", d.Username).Required().Custom(func(val interface{}) *errors.AppError {
		if s, ok := val.(string); ok && s != "" && !validation.IsValidUsername(s) {
			return errors.NewValidationFieldError("username", "username must be 6-30 characters from letters, digits and .,_-", errors.ErrCodeInvalidUsername)
		}
		return nil
	})

	v.Field("password", d.Password).Required().Custom(func(val interface{}) *errors.AppError {
		if s, ok := val.(string); ok && s != "" && !validation.IsValidPassword(s) {
			return errors.NewValidationFieldError("password", "password must be at least 6 characters with uppercase, lowercase, digit and special character", errors.ErrCodeInvalidPassword)
		}
		return nil
	})

	return v.Validate()
}

func (d LoginDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("username", d.Username).Required()
	v.Field("password", d.Password).Required()
	return v.Validate()
}

func (d AvailabilityQueryDTO) Validate() *errors.AppError {
	if d.Username == "" && d.Email == "" {
		return errors.NewValidationFieldError("username", "at least one of username or email is required", errors.ErrCodeValidationFailed)
	}
	return nil
}
