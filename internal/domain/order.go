package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderItem references one lesson by id with a requested quantity.
// Quantity is stored as sent: the API does not check it for positivity or
// against the lesson's remaining space.
type OrderItem struct {
	LessonID primitive.ObjectID `bson:"lessonId" json:"lessonId"`
	Quantity int                `bson:"quantity" json:"quantity"`
}

// Order is a customer purchase record. Immutable after creation; CreatedAt is
// assigned server-side at insert time.
type Order struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Phone     string             `bson:"phone" json:"phone"`
	Items     []OrderItem        `bson:"items" json:"items"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
