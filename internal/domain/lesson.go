package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Lesson is a bookable offering. Documents are seeded out-of-band; the API
// only reads them and patches individual fields (typically "space").
type Lesson struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Topic    string             `bson:"topic" json:"topic"`
	Location string             `bson:"location" json:"location"`
	Price    float64            `bson:"price" json:"price"`
	Space    int                `bson:"space" json:"space"`
}
