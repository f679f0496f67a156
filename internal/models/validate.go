package models

import (
	stderrors "errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/vytor/fergusquiz/internal/errors"
)

var validate = validator.New()

// validateParams runs struct validation and converts the first failure into a
// VALIDATION_ERROR naming the offending field.
func validateParams(params any) error {
	err := validate.Struct(params)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if stderrors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		reason := fe.Tag()
		if fe.Param() != "" {
			reason += "=" + fe.Param()
		}
		return errors.NewValidationError(strings.ToLower(fe.Field()), reason)
	}
	return errors.NewValidationError("params", err.Error())
}
