// ================== internal/features/cars/service.go ==================
package cars

import (
	"context"

	"github.com/google/uuid"

	apperrors "github.com/mobidrive/carapi/pkg/errors"
)

// store is the persistence contract the service needs. Satisfied by
// *Repository in production and by an in-memory fake in tests.
type store interface {
	Insert(ctx context.Context, car *Car) error
	FindByIDAndOwner(ctx context.Context, id, ownerID string) (*Car, error)
	FindByOwner(ctx context.Context, ownerID string) ([]Car, error)
	FindByPlate(ctx context.Context, plate string) (*Car, error)
	Update(ctx context.Context, car *Car) error
	Delete(ctx context.Context, id string) error
	DeleteByOwner(ctx context.Context, ownerID string) error
}

// Service applies the ownership rules: every read and write is scoped
// to the principal that owns the car, and a car that exists under a
// different owner is indistinguishable from one that does not exist.
type Service struct {
	store store
}

func NewService(store store) *Service {
	return &Service{store: store}
}

// Register creates a car owned by the principal. Plate uniqueness is
// global, across all owners.
func (s *Service) Register(ctx context.Context, req *CarRequest, ownerID string) (*Car, error) {
	if err := ValidateCar(req); err != nil {
		return nil, err
	}

	existing, err := s.store.FindByPlate(ctx, req.LicensePlate)
	if err != nil {
		return nil, apperrors.Internal("Failed to check license plate", err)
	}
	if existing != nil {
		return nil, apperrors.BadRequest("License plate already exists")
	}

	car := &Car{
		ID:           uuid.NewString(),
		OwnerID:      ownerID,
		Year:         req.Year,
		LicensePlate: req.LicensePlate,
		Model:        req.Model,
		Color:        req.Color,
	}

	if err := s.store.Insert(ctx, car); err != nil {
		return nil, err
	}
	return car, nil
}

// ListByOwner returns every car of the principal; an empty list is a
// valid result, not an error.
func (s *Service) ListByOwner(ctx context.Context, ownerID string) ([]Car, error) {
	result, err := s.store.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, apperrors.Internal("Failed to list cars", err)
	}
	return result, nil
}

// GetOwned fetches a car only if the principal owns it.
func (s *Service) GetOwned(ctx context.Context, id, ownerID string) (*Car, error) {
	car, err := s.store.FindByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		return nil, apperrors.Internal("Failed to find car", err)
	}
	if car == nil {
		return nil, apperrors.NotFound("Car Not Found")
	}
	return car, nil
}

// Update overwrites a car the principal owns, re-checking that the new
// plate does not collide with a different car.
func (s *Service) Update(ctx context.Context, id string, req *CarRequest, ownerID string) (*Car, error) {
	if err := ValidateCar(req); err != nil {
		return nil, err
	}

	car, err := s.GetOwned(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	other, err := s.store.FindByPlate(ctx, req.LicensePlate)
	if err != nil {
		return nil, apperrors.Internal("Failed to check license plate", err)
	}
	if other != nil && other.ID != car.ID {
		return nil, apperrors.BadRequest("License plate already exists")
	}

	car.Year = req.Year
	car.LicensePlate = req.LicensePlate
	car.Model = req.Model
	car.Color = req.Color

	if err := s.store.Update(ctx, car); err != nil {
		return nil, err
	}
	return car, nil
}

// Delete removes a car the principal owns.
func (s *Service) Delete(ctx context.Context, id, ownerID string) error {
	car, err := s.GetOwned(ctx, id, ownerID)
	if err != nil {
		return err
	}
	if err := s.store.Delete(ctx, car.ID); err != nil {
		return apperrors.Internal("Failed to delete car", err)
	}
	return nil
}

// DeleteAllByOwner removes every car of an owner. Entry point for the
// account-deletion cascade; not reachable from the HTTP surface.
func (s *Service) DeleteAllByOwner(ctx context.Context, ownerID string) error {
	if err := s.store.DeleteByOwner(ctx, ownerID); err != nil {
		return apperrors.Internal("Failed to delete cars", err)
	}
	return nil
}
