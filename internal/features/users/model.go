// ================== internal/features/users/model.go ==================
package users

import "time"

// User represents a registered account. The password hash never leaves
// the service: it is excluded from every JSON projection.
type User struct {
	ID        string     `bson:"_id,omitempty" json:"id" example:"e4b9a1f0-6c1d-4f7a-9b1e-2f0c6d8a3b5c"`
	FirstName string     `bson:"firstName" json:"firstName" example:"Alice"`
	LastName  string     `bson:"lastName" json:"lastName" example:"Souza"`
	Email     string     `bson:"email" json:"email" example:"alice@example.com"`
	Birthday  time.Time  `bson:"birthday" json:"birthday" example:"1990-05-01T00:00:00Z"`
	Login     string     `bson:"login" json:"login" example:"alice"`
	Password  string     `bson:"password" json:"-"`
	Phone     string     `bson:"phone" json:"phone" example:"988888888"`
	Cars      []CarInfo  `bson:"-" json:"cars"`
	CreatedAt time.Time  `bson:"createdAt" json:"createdAt"`
	LastLogin *time.Time `bson:"lastLogin,omitempty" json:"lastLogin,omitempty"`
}

// CarInfo is the projection of an owned car embedded in user
// responses. Kept local so this package does not import the cars
// feature; the adapter in internal/routes maps between the two.
type CarInfo struct {
	ID           string `json:"id"`
	Year         int    `json:"year"`
	LicensePlate string `json:"licensePlate"`
	Model        string `json:"model"`
	Color        string `json:"color"`
}

// UserRequest carries the mutable profile fields for registration and
// update. Birthday travels as YYYY-MM-DD.
type UserRequest struct {
	FirstName string `json:"firstName" example:"Alice"`
	LastName  string `json:"lastName" example:"Souza"`
	Email     string `json:"email" example:"alice@example.com"`
	Birthday  string `json:"birthday" example:"1990-05-01"`
	Login     string `json:"login" example:"alice"`
	Password  string `json:"password" example:"s3cret"`
	Phone     string `json:"phone" example:"988888888"`
}
