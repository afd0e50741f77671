package cars

import (
	apperrors "github.com/mobidrive/carapi/pkg/errors"

	"github.com/mobidrive/carapi/internal/pkg/validator"
)

func ValidateCar(req *CarRequest) error {
	if req.LicensePlate == "" || req.Model == "" || req.Color == "" || req.Year == 0 {
		return apperrors.BadRequest("Missing fields")
	}

	if !validator.IsValidLicensePlate(req.LicensePlate) || !validator.IsValidCarYear(req.Year) {
		return apperrors.BadRequest("Invalid fields")
	}

	return nil
}
