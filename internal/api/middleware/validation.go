package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/nuworldagency/SpeechScribe/internal/api/errors"
)

// BindJSON binds the request body and converts binding failures into a
// validation error carrying per-field details. The message is what the
// dashboard displays; details tell API clients which field was wrong.
func BindJSON(c *gin.Context, req interface{}, message string) error {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return nil
	}

	details := make(map[string]string)
	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		for _, fieldError := range validationErrs {
			field := strings.ToLower(fieldError.Field())

			switch fieldError.Tag() {
			case "required":
				details[field] = "is required"
			case "gt":
				details[field] = "must be greater than " + fieldError.Param()
			case "min":
				details[field] = "is too short"
			case "max":
				details[field] = "is too long"
			case "oneof":
				details[field] = "must be one of the allowed values"
			default:
				details[field] = "is invalid"
			}
		}
	} else {
		details["request"] = "invalid JSON format"
	}

	return errors.NewValidationError(message, details)
}
