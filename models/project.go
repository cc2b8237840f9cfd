package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MaxProjectsPerUser is the soft cap checked at creation time. Concurrent
// creates at the boundary can momentarily exceed it; the count check is not
// transactional.
const MaxProjectsPerUser = 4

type Project struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	UserID      primitive.ObjectID `bson:"user" json:"user"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
