package signup

import (
	"errors"
	"fmt"
	"podium/pkg/serrors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// normalize trims the free-text fields and lowercases the email.
func normalize(req Request) Request {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Name = strings.TrimSpace(req.Name)
	req.UserType = req.UserType.Normalize()
	req.PlanID = strings.TrimSpace(req.PlanID)
	req.PriceID = strings.TrimSpace(req.PriceID)

	return req
}

func (s *service) validate(req Request) error {
	if err := s.validator.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return serrors.Wrap(serrors.ErrBadRequest, err, "%s", fieldMessage(verrs[0]))
		}

		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request")
	}

	if err := s.validator.Var(req.Password, fmt.Sprintf("min=%d", s.options.MinPasswordLength)); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err,
			"Password must be at least %d characters", s.options.MinPasswordLength)
	}

	return nil
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "Email":
		if fe.Tag() == "required" {
			return "Email is required"
		}

		return "Invalid email address"
	case "Password":
		return "Password is required"
	case "Name":
		if fe.Tag() == "required" {
			return "Name is required"
		}

		return "Name is too long"
	case "UserType":
		return "User type must be speaker or organization"
	default:
		return fmt.Sprintf("Invalid %s", strings.ToLower(fe.Field()))
	}
}
