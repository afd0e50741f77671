package cars

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/mobidrive/carapi/pkg/errors"
)

type fakeStore struct {
	cars map[string]*Car
}

func newFakeStore() *fakeStore {
	return &fakeStore{cars: map[string]*Car{}}
}

func (s *fakeStore) Insert(_ context.Context, car *Car) error {
	copied := *car
	s.cars[car.ID] = &copied
	return nil
}

func (s *fakeStore) FindByIDAndOwner(_ context.Context, id, ownerID string) (*Car, error) {
	car, ok := s.cars[id]
	if !ok || car.OwnerID != ownerID {
		return nil, nil
	}
	copied := *car
	return &copied, nil
}

func (s *fakeStore) FindByOwner(_ context.Context, ownerID string) ([]Car, error) {
	result := []Car{}
	for _, car := range s.cars {
		if car.OwnerID == ownerID {
			result = append(result, *car)
		}
	}
	return result, nil
}

func (s *fakeStore) FindByPlate(_ context.Context, plate string) (*Car, error) {
	for _, car := range s.cars {
		if car.LicensePlate == plate {
			copied := *car
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *fakeStore) Update(_ context.Context, car *Car) error {
	copied := *car
	s.cars[car.ID] = &copied
	return nil
}

func (s *fakeStore) Delete(_ context.Context, id string) error {
	delete(s.cars, id)
	return nil
}

func (s *fakeStore) DeleteByOwner(_ context.Context, ownerID string) error {
	for id, car := range s.cars {
		if car.OwnerID == ownerID {
			delete(s.cars, id)
		}
	}
	return nil
}

func validRequest() *CarRequest {
	return &CarRequest{Year: 2022, LicensePlate: "ABC-1234", Model: "Model X", Color: "Blue"}
}

func TestRegister(t *testing.T) {
	service := NewService(newFakeStore())
	ctx := context.Background()

	car, err := service.Register(ctx, validRequest(), "owner-a")
	require.NoError(t, err)
	require.NotEmpty(t, car.ID)
	require.Equal(t, "owner-a", car.OwnerID)
	require.Equal(t, "ABC-1234", car.LicensePlate)
}

func TestRegister_DuplicatePlateAcrossOwners(t *testing.T) {
	service := NewService(newFakeStore())
	ctx := context.Background()

	_, err := service.Register(ctx, validRequest(), "owner-a")
	require.NoError(t, err)

	// Plate uniqueness is global, the second owner loses too
	_, err = service.Register(ctx, validRequest(), "owner-b")
	require.Error(t, err)
	require.Equal(t, "License plate already exists", err.Error())
	require.Equal(t, apperrors.KindBadRequest, apperrors.KindOf(err))
}

func TestRegister_Validation(t *testing.T) {
	service := NewService(newFakeStore())
	ctx := context.Background()

	_, err := service.Register(ctx, &CarRequest{Model: "Model X"}, "owner-a")
	require.Error(t, err)
	require.Equal(t, "Missing fields", err.Error())

	_, err = service.Register(ctx, &CarRequest{Year: 2022, LicensePlate: "not-a-plate", Model: "Model X", Color: "Blue"}, "owner-a")
	require.Error(t, err)
	require.Equal(t, "Invalid fields", err.Error())

	_, err = service.Register(ctx, &CarRequest{Year: 1800, LicensePlate: "ABC-1234", Model: "Model X", Color: "Blue"}, "owner-a")
	require.Error(t, err)
	require.Equal(t, "Invalid fields", err.Error())
}

func TestGetOwned_NotOwnerLooksLikeNotFound(t *testing.T) {
	service := NewService(newFakeStore())
	ctx := context.Background()

	car, err := service.Register(ctx, validRequest(), "owner-a")
	require.NoError(t, err)

	// Existence under another owner must be indistinguishable from absence
	_, err = service.GetOwned(ctx, car.ID, "owner-b")
	require.Error(t, err)
	require.Equal(t, "Car Not Found", err.Error())
	require.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))

	_, err = service.GetOwned(ctx, "no-such-id", "owner-b")
	require.Error(t, err)
	require.Equal(t, "Car Not Found", err.Error())

	found, err := service.GetOwned(ctx, car.ID, "owner-a")
	require.NoError(t, err)
	require.Equal(t, car.ID, found.ID)
}

func TestListByOwner_EmptyIsNotAnError(t *testing.T) {
	service := NewService(newFakeStore())

	result, err := service.ListByOwner(context.Background(), "owner-a")
	require.NoError(t, err)
	require.NotNil(t, result)
	require.Empty(t, result)
}

func TestUpdate(t *testing.T) {
	service := NewService(newFakeStore())
	ctx := context.Background()

	car, err := service.Register(ctx, validRequest(), "owner-a")
	require.NoError(t, err)

	req := &CarRequest{Year: 2023, LicensePlate: "ABC-1234", Model: "Model Y", Color: "Red"}
	updated, err := service.Update(ctx, car.ID, req, "owner-a")
	require.NoError(t, err)
	require.Equal(t, "Model Y", updated.Model)
	require.Equal(t, 2023, updated.Year)
	// Keeping its own plate is not a collision
	require.Equal(t, "ABC-1234", updated.LicensePlate)
}

func TestUpdate_PlateCollision(t *testing.T) {
	service := NewService(newFakeStore())
	ctx := context.Background()

	first, err := service.Register(ctx, validRequest(), "owner-a")
	require.NoError(t, err)
	_, err = service.Register(ctx, &CarRequest{Year: 2021, LicensePlate: "XYZ-9999", Model: "Sedan", Color: "Black"}, "owner-a")
	require.NoError(t, err)

	req := &CarRequest{Year: 2022, LicensePlate: "XYZ-9999", Model: "Model X", Color: "Blue"}
	_, err = service.Update(ctx, first.ID, req, "owner-a")
	require.Error(t, err)
	require.Equal(t, "License plate already exists", err.Error())
}

func TestUpdate_NotOwner(t *testing.T) {
	service := NewService(newFakeStore())
	ctx := context.Background()

	car, err := service.Register(ctx, validRequest(), "owner-a")
	require.NoError(t, err)

	_, err = service.Update(ctx, car.ID, validRequest(), "owner-b")
	require.Error(t, err)
	require.Equal(t, "Car Not Found", err.Error())
	require.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestDelete(t *testing.T) {
	store := newFakeStore()
	service := NewService(store)
	ctx := context.Background()

	car, err := service.Register(ctx, validRequest(), "owner-a")
	require.NoError(t, err)

	require.Error(t, service.Delete(ctx, car.ID, "owner-b"))
	require.NoError(t, service.Delete(ctx, car.ID, "owner-a"))

	_, err = service.GetOwned(ctx, car.ID, "owner-a")
	require.Error(t, err)
}

func TestDeleteAllByOwner(t *testing.T) {
	service := NewService(newFakeStore())
	ctx := context.Background()

	_, err := service.Register(ctx, validRequest(), "owner-a")
	require.NoError(t, err)
	_, err = service.Register(ctx, &CarRequest{Year: 2021, LicensePlate: "XYZ-9999", Model: "Sedan", Color: "Black"}, "owner-a")
	require.NoError(t, err)
	keep, err := service.Register(ctx, &CarRequest{Year: 2020, LicensePlate: "QWE-1111", Model: "Hatch", Color: "White"}, "owner-b")
	require.NoError(t, err)

	require.NoError(t, service.DeleteAllByOwner(ctx, "owner-a"))

	gone, err := service.ListByOwner(ctx, "owner-a")
	require.NoError(t, err)
	require.Empty(t, gone)

	still, err := service.ListByOwner(ctx, "owner-b")
	require.NoError(t, err)
	require.Len(t, still, 1)
	require.Equal(t, keep.ID, still[0].ID)
}
