package cars

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	apperrors "github.com/mobidrive/carapi/pkg/errors"
)

type Repository struct {
	collection *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	collection := db.Collection("cars")

	// The unique plate index is the authoritative guard under
	// concurrent registrations; the service pre-check only produces
	// the friendlier error first.
	collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{Keys: bson.D{{Key: "licensePlate", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userId", Value: 1}}},
	})

	return &Repository{collection: collection}
}

func (r *Repository) Insert(ctx context.Context, car *Car) error {
	car.CreatedAt = time.Now()
	car.UpdatedAt = car.CreatedAt

	_, err := r.collection.InsertOne(ctx, car)
	if mongo.IsDuplicateKeyError(err) {
		return apperrors.BadRequest("License plate already exists")
	}
	return err
}

// FindByIDAndOwner looks a car up by id scoped to its owner. A car
// owned by someone else decodes to (nil, nil), same as a missing one.
func (r *Repository) FindByIDAndOwner(ctx context.Context, id, ownerID string) (*Car, error) {
	var car Car
	err := r.collection.FindOne(ctx, bson.M{
		"_id":    id,
		"userId": ownerID,
	}).Decode(&car)

	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &car, nil
}

func (r *Repository) FindByOwner(ctx context.Context, ownerID string) ([]Car, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"userId": ownerID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var result []Car
	if err := cursor.All(ctx, &result); err != nil {
		return nil, err
	}
	if result == nil {
		result = []Car{}
	}
	return result, nil
}

func (r *Repository) FindByPlate(ctx context.Context, plate string) (*Car, error) {
	var car Car
	err := r.collection.FindOne(ctx, bson.M{"licensePlate": plate}).Decode(&car)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &car, nil
}

func (r *Repository) Update(ctx context.Context, car *Car) error {
	car.UpdatedAt = time.Now()

	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": car.ID}, car)
	if mongo.IsDuplicateKeyError(err) {
		return apperrors.BadRequest("License plate already exists")
	}
	return err
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *Repository) DeleteByOwner(ctx context.Context, ownerID string) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"userId": ownerID})
	return err
}
