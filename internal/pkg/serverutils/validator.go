package serverutils

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest runs struct tag validation on request DTOs.
// Validation failures surface as validator.ValidationErrors, which the
// error middleware translates to a 400 response.
func ValidateRequest(req interface{}) error {
	return validate.Struct(req)
}
