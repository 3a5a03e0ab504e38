package validator

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/kartikay-28/lms-service/internal/models"
)

// ValidationError represents a single business validation failure.
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
	Rule    string      `json:"rule,omitempty"`
}

type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: %s", ve[0].Message)
}

// Message returns the human-readable message of the first failure.
// Validation is ordered, so the first failure is the one reported.
func (ve ValidationErrors) Message() string {
	if len(ve) == 0 {
		return "validation failed"
	}
	return ve[0].Message
}

// emailShapePattern matches the local@domain.tld shape. It is looser
// than RFC 5322 on purpose; anything with a local part, a host and a
// dot-separated TLD is accepted.
var emailShapePattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// BusinessValidator handles business rule validation
type BusinessValidator struct {
	validate *validator.Validate
}

// NewBusinessValidator creates a new business validator
func NewBusinessValidator() *BusinessValidator {
	validate := validator.New()

	bv := &BusinessValidator{validate: validate}
	bv.registerBusinessRules()

	return bv
}

func (bv *BusinessValidator) registerBusinessRules() {
	// Shape of local@domain.tld, applied after trimming.
	_ = bv.validate.RegisterValidation("email_shape", func(fl validator.FieldLevel) bool {
		return emailShapePattern.MatchString(strings.TrimSpace(fl.Field().String()))
	})

	_ = bv.validate.RegisterValidation("user_role", func(fl validator.FieldLevel) bool {
		return models.UserRole(fl.Field().String()).IsValid()
	})
}

// Validate validates business rules for any struct
func (bv *BusinessValidator) Validate(s interface{}) ValidationErrors {
	err := bv.validate.Struct(s)
	if err != nil {
		return ToValidationErrors(err)
	}
	return nil
}

// ValidateRegister validates a registration request. Checks run in a
// fixed order and the first failure wins: required fields, email
// shape, password length, role.
func (bv *BusinessValidator) ValidateRegister(req *RegisterRequest) ValidationErrors {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" ||
		req.Password == "" || req.Role == "" {
		return ValidationErrors{{
			Field:   "request",
			Message: "All fields are required",
			Rule:    "required",
		}}
	}

	if !emailShapePattern.MatchString(strings.TrimSpace(req.Email)) {
		return ValidationErrors{{
			Field:   "email",
			Message: "Please enter a valid email address",
			Value:   req.Email,
			Rule:    "email_shape",
		}}
	}

	if len(req.Password) < 6 {
		return ValidationErrors{{
			Field:   "password",
			Message: "Password must be at least 6 characters long",
			Rule:    "min",
		}}
	}

	if !req.Role.IsValid() {
		return ValidationErrors{{
			Field:   "role",
			Message: "Role must be either student or admin",
			Value:   req.Role,
			Rule:    "user_role",
		}}
	}

	return nil
}

// ValidateSignIn validates a sign-in request. Both fields must be
// present; everything else is the authenticator's concern.
func (bv *BusinessValidator) ValidateSignIn(req *SignInRequest) ValidationErrors {
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return ValidationErrors{{
			Field:   "request",
			Message: "Email and password are required",
			Rule:    "required",
		}}
	}
	return nil
}

// ValidateProfileUpdate validates a profile update request.
func (bv *BusinessValidator) ValidateProfileUpdate(req *ProfileUpdateRequest) ValidationErrors {
	if strings.TrimSpace(req.ID) == "" {
		return ValidationErrors{{
			Field:   "id",
			Message: "User ID is required",
			Rule:    "required",
		}}
	}

	if req.Email != nil && !emailShapePattern.MatchString(strings.TrimSpace(*req.Email)) {
		return ValidationErrors{{
			Field:   "email",
			Message: "Please enter a valid email address",
			Value:   *req.Email,
			Rule:    "email_shape",
		}}
	}

	return nil
}

// ToValidationErrors converts go-playground validator errors to the
// internal ValidationErrors type.
func ToValidationErrors(err error) ValidationErrors {
	var result ValidationErrors

	if fieldErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range fieldErrors {
			result = append(result, ValidationError{
				Field:   strings.ToLower(fe.Field()),
				Message: fmt.Sprintf("failed validation on '%s'", fe.Tag()),
				Value:   fe.Value(),
				Rule:    fe.Tag(),
			})
		}
		return result
	}

	return ValidationErrors{{Field: "request", Message: err.Error()}}
}
