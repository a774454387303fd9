package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Author is the persisted author record. Timestamps are maintained by the
// repository, never by clients.
type Author struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName string             `bson:"firstName" json:"firstName"`
	LastName  string             `bson:"lastName" json:"lastName"`
	Bio       *string            `bson:"bio,omitempty" json:"bio,omitempty"`
	BirthDate *time.Time         `bson:"birthDate,omitempty" json:"birthDate,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// FullName is the display name used in log fields.
func (a *Author) FullName() string {
	return a.FirstName + " " + a.LastName
}
