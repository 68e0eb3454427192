package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// SignupQuery represents query parameters for POST and DELETE /activities/:activity_name/signup.
type SignupQuery struct {
	Email string `form:"email" binding:"required"`
}

// validationMessage turns a binding error into a message for the client.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid request parameters"
	}

	fe := verrs[0]
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s parameter is required", field)
	default:
		return fmt.Sprintf("%s parameter is invalid", field)
	}
}
