package routes

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mobidrive/carapi/internal/config"
	"github.com/mobidrive/carapi/internal/features/auth"
	"github.com/mobidrive/carapi/internal/features/cars"
	"github.com/mobidrive/carapi/internal/features/users"
	"github.com/mobidrive/carapi/internal/middleware"
	"github.com/mobidrive/carapi/internal/pkg/token"
)

// principalDirectoryAdapter adapts users.Repository to the
// middleware.UserDirectory interface
type principalDirectoryAdapter struct {
	repo *users.Repository
}

func (a *principalDirectoryAdapter) FindByLogin(ctx context.Context, login string) (*middleware.Principal, error) {
	user, err := a.repo.FindByLogin(ctx, login)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return &middleware.Principal{UserID: user.ID, Login: user.Login}, nil
}

// carServiceAdapter adapts cars.Service to the users.CarService
// interface used for profile embedding and the delete cascade
type carServiceAdapter struct {
	service *cars.Service
}

func (a *carServiceAdapter) ListByOwner(ctx context.Context, ownerID string) ([]users.CarInfo, error) {
	owned, err := a.service.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	result := make([]users.CarInfo, 0, len(owned))
	for _, car := range owned {
		result = append(result, users.CarInfo{
			ID:           car.ID,
			Year:         car.Year,
			LicensePlate: car.LicensePlate,
			Model:        car.Model,
			Color:        car.Color,
		})
	}
	return result, nil
}

func (a *carServiceAdapter) DeleteAllByOwner(ctx context.Context, ownerID string) error {
	return a.service.DeleteAllByOwner(ctx, ownerID)
}

func SetupRoutes(router *gin.Engine, db *mongo.Database, cfg *config.Config) {
	codec := token.NewCodec(cfg.JWTSecret, time.Duration(cfg.JWTExpireHours)*time.Hour)

	usersRepo := users.NewRepository(db)
	carsRepo := cars.NewRepository(db)

	carsService := cars.NewService(carsRepo)
	usersService := users.NewService(usersRepo, &carServiceAdapter{service: carsService})

	// Every route registered below runs behind the auth middleware;
	// health and swagger are mounted earlier in main and stay outside.
	router.Use(middleware.Auth(codec, &principalDirectoryAdapter{repo: usersRepo}))

	auth.RegisterRoutes(router, usersService, codec)
	users.RegisterRoutes(router, usersService)
	cars.RegisterRoutes(router, carsService)
}
