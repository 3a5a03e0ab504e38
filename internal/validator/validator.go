package validator

// Validator bundles struct validation and business rules, constructed
// once at startup and shared by services and handlers.
type Validator struct {
	business *BusinessValidator
}

func New() *Validator {
	return &Validator{
		business: NewBusinessValidator(),
	}
}

func (v *Validator) GetBusinessValidator() *BusinessValidator {
	return v.business
}

// ValidateStruct runs tag-based validation on any request struct.
func (v *Validator) ValidateStruct(s interface{}) error {
	if errs := v.business.Validate(s); len(errs) > 0 {
		return errs
	}
	return nil
}
