package utils

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidations registers custom validation rules on the gin validator.
func RegisterCustomValidations(v *validator.Validate, orderStatuses []string) {
	v.RegisterValidation("orderstatus", func(fl validator.FieldLevel) bool {
		status := fl.Field().String()
		for _, s := range orderStatuses {
			if s == status {
				return true
			}
		}
		return false
	})
	v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
}

func TranslateValidationError(err error) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		var messages []string
		for _, fe := range ve {
			field := fe.Field()
			switch fe.Tag() {
			case "required", "notblank":
				messages = append(messages, field+" is required")
			case "email":
				messages = append(messages, "invalid email format")
			case "min":
				messages = append(messages, field+" must be at least "+fe.Param())
			case "max":
				messages = append(messages, field+" must be at most "+fe.Param())
			case "gte":
				messages = append(messages, field+" must be greater than or equal to "+fe.Param())
			case "gt":
				messages = append(messages, field+" must be greater than "+fe.Param())
			case "uuid", "uuid4":
				messages = append(messages, field+" must be a valid id")
			case "orderstatus":
				messages = append(messages, field+" must be one of: Pending, In Progress, Delivered, Cancelled")
			default:
				messages = append(messages, field+" is invalid")
			}
		}
		return strings.Join(messages, ", ")
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return "malformed JSON body"
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return typeErr.Field + " has the wrong type"
	}
	if strings.HasPrefix(err.Error(), "json: unknown field") {
		return strings.TrimPrefix(err.Error(), "json: ")
	}
	return err.Error()
}
