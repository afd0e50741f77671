package users

import (
	"context"
	"strings"
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
	collection := db.Collection("users")

	// Unique indexes are the authoritative guard against concurrent
	// duplicate registrations; the service-level checks only exist to
	// produce a friendlier error first.
	collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{Keys: bson.D{{Key: "login", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	})

	return &Repository{collection: collection}
}

func (r *Repository) Insert(ctx context.Context, user *User) error {
	user.CreatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return translateDuplicate(err)
	}
	return err
}

func (r *Repository) FindByID(ctx context.Context, id string) (*User, error) {
	var user User
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *Repository) FindByLogin(ctx context.Context, login string) (*User, error) {
	var user User
	err := r.collection.FindOne(ctx, bson.M{"login": login}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *Repository) FindAll(ctx context.Context) ([]User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var result []User
	if err := cursor.All(ctx, &result); err != nil {
		return nil, err
	}
	if result == nil {
		result = []User{}
	}
	return result, nil
}

func (r *Repository) ExistsByLogin(ctx context.Context, login string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"login": login})
	return count > 0, err
}

func (r *Repository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"email": email})
	return count > 0, err
}

func (r *Repository) Update(ctx context.Context, user *User) error {
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": user.ID}, user)
	if mongo.IsDuplicateKeyError(err) {
		return translateDuplicate(err)
	}
	return err
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *Repository) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{"lastLogin": at}})
	return err
}

// translateDuplicate maps a unique-index violation to the business
// message of the field that collided.
func translateDuplicate(err error) error {
	if strings.Contains(err.Error(), "email") {
		return apperrors.BadRequest("Email already exists")
	}
	return apperrors.BadRequest("Login already exists")
}
