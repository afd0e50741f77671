package users

import (
	apperrors "github.com/mobidrive/carapi/pkg/errors"

	"github.com/mobidrive/carapi/internal/pkg/validator"
)

// ValidateUser applies the field rules shared by registration and
// update. requirePassword is false on update, where an empty password
// means "keep the current one".
func ValidateUser(req *UserRequest, requirePassword bool) error {
	if req.FirstName == "" || req.LastName == "" || req.Email == "" ||
		req.Birthday == "" || req.Login == "" || req.Phone == "" {
		return apperrors.BadRequest("Missing fields")
	}
	if requirePassword && req.Password == "" {
		return apperrors.BadRequest("Missing fields")
	}

	if !validator.IsValidEmail(req.Email) ||
		!validator.IsValidLogin(req.Login) ||
		!validator.IsValidPhone(req.Phone) ||
		!validator.IsValidBirthday(req.Birthday) {
		return apperrors.BadRequest("Invalid fields")
	}

	return nil
}
