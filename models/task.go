package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in progress"
	StatusCompleted  TaskStatus = "completed"
)

// Valid reports whether s is one of the three known statuses.
func (s TaskStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

type Task struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Status      TaskStatus         `bson:"status" json:"status"`
	ProjectID   primitive.ObjectID `bson:"project" json:"project"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	CompletedAt *time.Time         `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
}

// TaskUpdate carries a partial update. Empty fields mean "leave unchanged";
// an update cannot clear a field back to the empty string.
type TaskUpdate struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
}

// Apply merges the non-empty fields of u into t. When the merge moves the
// status to completed from some other status, CompletedAt is stamped with
// now. It is never cleared, even if the status later leaves completed.
func (u TaskUpdate) Apply(t *Task, now time.Time) {
	if u.Title != "" {
		t.Title = u.Title
	}
	if u.Description != "" {
		t.Description = u.Description
	}
	if u.Status != "" {
		if u.Status == StatusCompleted && t.Status != StatusCompleted {
			completed := now
			t.CompletedAt = &completed
		}
		t.Status = u.Status
	}
}
