// ================== internal/features/users/service.go ==================
package users

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/mobidrive/carapi/pkg/errors"
)

// store is the persistence contract the service needs. Satisfied by
// *Repository in production and by an in-memory fake in tests.
type store interface {
	Insert(ctx context.Context, user *User) error
	FindByID(ctx context.Context, id string) (*User, error)
	FindByLogin(ctx context.Context, login string) (*User, error)
	FindAll(ctx context.Context) ([]User, error)
	ExistsByLogin(ctx context.Context, login string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id string) error
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
}

// CarService is what the user service needs from the cars feature:
// embedding owned cars into profiles, and the delete cascade. Wired
// through an adapter in internal/routes to avoid a package cycle.
type CarService interface {
	ListByOwner(ctx context.Context, ownerID string) ([]CarInfo, error)
	DeleteAllByOwner(ctx context.Context, ownerID string) error
}

type Service struct {
	store store
	cars  CarService
}

func NewService(store store, cars CarService) *Service {
	return &Service{store: store, cars: cars}
}

// Register creates a new account after the login/email uniqueness
// checks, hashing the password before it is stored.
func (s *Service) Register(ctx context.Context, req *UserRequest) (*User, error) {
	if err := ValidateUser(req, true); err != nil {
		return nil, err
	}

	exists, err := s.store.ExistsByLogin(ctx, req.Login)
	if err != nil {
		return nil, apperrors.Internal("Failed to check login", err)
	}
	if exists {
		return nil, apperrors.BadRequest("Login already exists")
	}

	exists, err = s.store.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperrors.Internal("Failed to check email", err)
	}
	if exists {
		return nil, apperrors.BadRequest("Email already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Internal("Failed to process password", err)
	}

	birthday, _ := time.Parse("2006-01-02", req.Birthday)
	user := &User{
		ID:        uuid.NewString(),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Birthday:  birthday,
		Login:     req.Login,
		Password:  string(hashed),
		Phone:     req.Phone,
		Cars:      []CarInfo{},
	}

	if err := s.store.Insert(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// FindByLogin returns the raw account record, password hash included.
// Only the sign-in flow consumes it; everything else goes through the
// profile projections below.
func (s *Service) FindByLogin(ctx context.Context, login string) (*User, error) {
	user, err := s.store.FindByLogin(ctx, login)
	if err != nil {
		return nil, apperrors.Internal("Failed to find user", err)
	}
	return user, nil
}

// FindByMe resolves the profile of the current principal.
func (s *Service) FindByMe(ctx context.Context, login string) (*User, error) {
	user, err := s.FindByLogin(ctx, login)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.Unauthorized("Invalid session")
	}
	return s.withCars(ctx, user)
}

func (s *Service) FindByID(ctx context.Context, id string) (*User, error) {
	user, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.Internal("Failed to find user", err)
	}
	if user == nil {
		return nil, apperrors.Unauthorized("Invalid Id")
	}
	return s.withCars(ctx, user)
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	all, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, apperrors.Internal("Failed to list users", err)
	}
	for i := range all {
		cars, err := s.cars.ListByOwner(ctx, all[i].ID)
		if err != nil {
			return nil, apperrors.Internal("Failed to load cars", err)
		}
		all[i].Cars = cars
	}
	return all, nil
}

// Update overwrites the mutable profile fields. An empty password in
// the request keeps the stored hash.
func (s *Service) Update(ctx context.Context, id string, req *UserRequest) (*User, error) {
	if err := ValidateUser(req, false); err != nil {
		return nil, err
	}

	user, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.Internal("Failed to find user", err)
	}
	if user == nil {
		return nil, apperrors.Unauthorized("Invalid Id")
	}

	birthday, _ := time.Parse("2006-01-02", req.Birthday)
	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Email = req.Email
	user.Birthday = birthday
	user.Login = req.Login
	user.Phone = req.Phone
	if req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, apperrors.Internal("Failed to process password", err)
		}
		user.Password = string(hashed)
	}

	if err := s.store.Update(ctx, user); err != nil {
		return nil, err
	}
	return s.withCars(ctx, user)
}

// Delete removes the account and cascades deletion of every owned car.
// Cars go first so a failed cascade never leaves orphans behind a
// deleted owner.
func (s *Service) Delete(ctx context.Context, id string) error {
	user, err := s.store.FindByID(ctx, id)
	if err != nil {
		return apperrors.Internal("Failed to find user", err)
	}
	if user == nil {
		return apperrors.Unauthorized("Invalid Id")
	}

	if err := s.cars.DeleteAllByOwner(ctx, id); err != nil {
		return apperrors.Internal("Failed to delete cars", err)
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return apperrors.Internal("Failed to delete user", err)
	}
	return nil
}

// UpdateLastLogin refreshes the sign-in timestamp. Called only by the
// sign-in flow after credential verification.
func (s *Service) UpdateLastLogin(ctx context.Context, user *User) error {
	now := time.Now()
	if err := s.store.UpdateLastLogin(ctx, user.ID, now); err != nil {
		return apperrors.Internal("Failed to update last login", err)
	}
	user.LastLogin = &now
	return nil
}

func (s *Service) withCars(ctx context.Context, user *User) (*User, error) {
	cars, err := s.cars.ListByOwner(ctx, user.ID)
	if err != nil {
		return nil, apperrors.Internal("Failed to load cars", err)
	}
	user.Cars = cars
	return user, nil
}
