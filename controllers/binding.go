package controllers

import (
	"amazon-shop/logging"
	"amazon-shop/models"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var registerValidatorsOnce sync.Once

// RegisterValidators teaches gin's validator the notblank and unpadded
// rules and makes it report fields by their form name.
func RegisterValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})

		if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
			logging.Error().Err(err).Msg("failed to register notblank validator")
		}
		if err := v.RegisterValidation("unpadded", unpadded); err != nil {
			logging.Error().Err(err).Msg("failed to register unpadded validator")
		}
	})
}

// unpadded rejects strings with leading or trailing whitespace.
func unpadded(fl validator.FieldLevel) bool {
	v := fl.Field().String()
	return strings.TrimSpace(v) == v
}

// bindForm binds and validates the request body into obj. It returns nil
// when the request is valid.
func bindForm(c *gin.Context, obj any) models.FieldErrors {
	err := c.ShouldBind(obj)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fieldErrors := models.FieldErrors{}
		for _, fe := range verrs {
			if _, seen := fieldErrors[fe.Field()]; !seen {
				fieldErrors[fe.Field()] = fieldMessage(fe)
			}
		}
		return fieldErrors
	}

	logging.Debug().Err(err).Str("path", c.Request.URL.Path).Msg("malformed form")
	return models.FieldErrors{"form": "The form could not be read."}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "This field is required."
	case "unpadded":
		return "Remove spaces from the start and end."
	case "email":
		return "Enter a valid email address."
	case "max":
		return fmt.Sprintf("Must be at most %s characters.", fe.Param())
	case "gt":
		return fmt.Sprintf("Must be greater than %s.", fe.Param())
	case "lte":
		return fmt.Sprintf("Must be at most %s.", fe.Param())
	default:
		return "This value is not valid."
	}
}
