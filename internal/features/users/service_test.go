package users

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/mobidrive/carapi/pkg/errors"
)

type fakeStore struct {
	users map[string]*User
}

func newFakeStore() *fakeStore {
	return &fakeStore{users: map[string]*User{}}
}

func (s *fakeStore) Insert(_ context.Context, user *User) error {
	copied := *user
	s.users[user.ID] = &copied
	return nil
}

func (s *fakeStore) FindByID(_ context.Context, id string) (*User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (s *fakeStore) FindByLogin(_ context.Context, login string) (*User, error) {
	for _, user := range s.users {
		if user.Login == login {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *fakeStore) FindAll(_ context.Context) ([]User, error) {
	result := []User{}
	for _, user := range s.users {
		result = append(result, *user)
	}
	return result, nil
}

func (s *fakeStore) ExistsByLogin(ctx context.Context, login string) (bool, error) {
	user, _ := s.FindByLogin(ctx, login)
	return user != nil, nil
}

func (s *fakeStore) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, user := range s.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeStore) Update(_ context.Context, user *User) error {
	copied := *user
	s.users[user.ID] = &copied
	return nil
}

func (s *fakeStore) Delete(_ context.Context, id string) error {
	delete(s.users, id)
	return nil
}

func (s *fakeStore) UpdateLastLogin(_ context.Context, id string, at time.Time) error {
	if user, ok := s.users[id]; ok {
		user.LastLogin = &at
	}
	return nil
}

// fakeCarService records cascade calls and serves canned car lists.
type fakeCarService struct {
	carsByOwner map[string][]CarInfo
	deletedFor  []string
}

func newFakeCarService() *fakeCarService {
	return &fakeCarService{carsByOwner: map[string][]CarInfo{}}
}

func (f *fakeCarService) ListByOwner(_ context.Context, ownerID string) ([]CarInfo, error) {
	cars := f.carsByOwner[ownerID]
	if cars == nil {
		cars = []CarInfo{}
	}
	return cars, nil
}

func (f *fakeCarService) DeleteAllByOwner(_ context.Context, ownerID string) error {
	f.deletedFor = append(f.deletedFor, ownerID)
	delete(f.carsByOwner, ownerID)
	return nil
}

func validRequest() *UserRequest {
	return &UserRequest{
		FirstName: "Alice",
		LastName:  "Souza",
		Email:     "alice@example.com",
		Birthday:  "1990-05-01",
		Login:     "alice",
		Password:  "s3cret",
		Phone:     "988888888",
	}
}

func TestRegister(t *testing.T) {
	service := NewService(newFakeStore(), newFakeCarService())
	ctx := context.Background()

	user, err := service.Register(ctx, validRequest())
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	require.Equal(t, "alice", user.Login)
	require.Equal(t, 1990, user.Birthday.Year())

	// Stored as a bcrypt hash, never the raw password
	require.NotEqual(t, "s3cret", user.Password)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("s3cret")))
}

func TestRegister_DuplicateLogin(t *testing.T) {
	service := NewService(newFakeStore(), newFakeCarService())
	ctx := context.Background()

	_, err := service.Register(ctx, validRequest())
	require.NoError(t, err)

	second := validRequest()
	second.Email = "other@example.com"
	_, err = service.Register(ctx, second)
	require.Error(t, err)
	require.Equal(t, "Login already exists", err.Error())
	require.Equal(t, apperrors.KindBadRequest, apperrors.KindOf(err))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	service := NewService(newFakeStore(), newFakeCarService())
	ctx := context.Background()

	_, err := service.Register(ctx, validRequest())
	require.NoError(t, err)

	second := validRequest()
	second.Login = "alice2"
	_, err = service.Register(ctx, second)
	require.Error(t, err)
	require.Equal(t, "Email already exists", err.Error())
}

func TestRegister_Validation(t *testing.T) {
	service := NewService(newFakeStore(), newFakeCarService())
	ctx := context.Background()

	missing := validRequest()
	missing.Login = ""
	_, err := service.Register(ctx, missing)
	require.Error(t, err)
	require.Equal(t, "Missing fields", err.Error())

	invalid := validRequest()
	invalid.Email = "not-an-email"
	_, err = service.Register(ctx, invalid)
	require.Error(t, err)
	require.Equal(t, "Invalid fields", err.Error())

	future := validRequest()
	future.Birthday = time.Now().AddDate(1, 0, 0).Format("2006-01-02")
	_, err = service.Register(ctx, future)
	require.Error(t, err)
	require.Equal(t, "Invalid fields", err.Error())
}

func TestFindByMe(t *testing.T) {
	carService := newFakeCarService()
	service := NewService(newFakeStore(), carService)
	ctx := context.Background()

	user, err := service.Register(ctx, validRequest())
	require.NoError(t, err)
	carService.carsByOwner[user.ID] = []CarInfo{{ID: "c1", LicensePlate: "ABC-1234"}}

	me, err := service.FindByMe(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, user.ID, me.ID)
	require.Len(t, me.Cars, 1)

	_, err = service.FindByMe(ctx, "nobody")
	require.Error(t, err)
	require.Equal(t, apperrors.KindUnauthorized, apperrors.KindOf(err))
}

func TestFindByID_Absent(t *testing.T) {
	service := NewService(newFakeStore(), newFakeCarService())

	_, err := service.FindByID(context.Background(), "no-such-id")
	require.Error(t, err)
	require.Equal(t, "Invalid Id", err.Error())
}

func TestUpdate(t *testing.T) {
	service := NewService(newFakeStore(), newFakeCarService())
	ctx := context.Background()

	user, err := service.Register(ctx, validRequest())
	require.NoError(t, err)
	originalHash := user.Password

	req := validRequest()
	req.FirstName = "Alicia"
	req.Password = ""
	updated, err := service.Update(ctx, user.ID, req)
	require.NoError(t, err)
	require.Equal(t, "Alicia", updated.FirstName)
	// Empty password keeps the stored hash
	require.Equal(t, originalHash, updated.Password)

	_, err = service.Update(ctx, "no-such-id", validRequest())
	require.Error(t, err)
	require.Equal(t, "Invalid Id", err.Error())
}

func TestDelete_CascadesCars(t *testing.T) {
	carService := newFakeCarService()
	service := NewService(newFakeStore(), carService)
	ctx := context.Background()

	user, err := service.Register(ctx, validRequest())
	require.NoError(t, err)
	carService.carsByOwner[user.ID] = []CarInfo{{ID: "c1"}, {ID: "c2"}}

	require.NoError(t, service.Delete(ctx, user.ID))
	require.Equal(t, []string{user.ID}, carService.deletedFor)

	_, err = service.FindByID(ctx, user.ID)
	require.Error(t, err)
}

func TestDelete_Absent(t *testing.T) {
	service := NewService(newFakeStore(), newFakeCarService())

	err := service.Delete(context.Background(), "no-such-id")
	require.Error(t, err)
	require.Equal(t, "Invalid Id", err.Error())
}

func TestUpdateLastLogin(t *testing.T) {
	service := NewService(newFakeStore(), newFakeCarService())
	ctx := context.Background()

	user, err := service.Register(ctx, validRequest())
	require.NoError(t, err)
	require.Nil(t, user.LastLogin)

	require.NoError(t, service.UpdateLastLogin(ctx, user))
	require.NotNil(t, user.LastLogin)

	stored, err := service.FindByMe(ctx, user.Login)
	require.NoError(t, err)
	require.NotNil(t, stored.LastLogin)
}
