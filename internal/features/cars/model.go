// ================== internal/features/cars/model.go ==================
package cars

import "time"

// Car is a vehicle record tied to its owner. OwnerID is an
// authorization back-reference, never serialized outward.
type Car struct {
	ID           string    `bson:"_id,omitempty" json:"id" example:"0d6a9c1e-3f5b-47a8-9e2d-8b1c4f7a6d3e"`
	OwnerID      string    `bson:"userId" json:"-"`
	Year         int       `bson:"year" json:"year" example:"2022"`
	LicensePlate string    `bson:"licensePlate" json:"licensePlate" example:"ABC-1234"`
	Model        string    `bson:"model" json:"model" example:"Model X"`
	Color        string    `bson:"color" json:"color" example:"Blue"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// CarRequest carries the mutable car fields for registration and
// update.
type CarRequest struct {
	Year         int    `json:"year" example:"2022"`
	LicensePlate string `json:"licensePlate" example:"ABC-1234"`
	Model        string `json:"model" example:"Model X"`
	Color        string `json:"color" example:"Blue"`
}
