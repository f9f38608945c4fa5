package validator

import (
	"github.com/go-playground/validator/v10"

	"go-pos-kasir/internal/model"
)

type ErrorResponse struct {
	FailedField string
	Tag         string
	Value       string
}

var validate = validator.New()

func init() {
	// Register custom validation untuk satuan produk (closed set)
	validate.RegisterValidation("unit", func(fl validator.FieldLevel) bool {
		if unit, ok := fl.Field().Interface().(model.UnitType); ok {
			return unit.Valid()
		}
		return false
	})
}

func ValidateStruct(data interface{}) []*ErrorResponse {
	var errors []*ErrorResponse
	err := validate.Struct(data)
	if err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			var element ErrorResponse
			element.FailedField = err.StructNamespace()
			element.Tag = err.Tag()
			element.Value = err.Param()
			errors = append(errors, &element)
		}
	}
	return errors
}
