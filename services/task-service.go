package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dipankar049/task-tracker-lite/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type TaskService struct {
	TasksCollection    *mongo.Collection
	ProjectsCollection *mongo.Collection
}

func NewTaskService(tasksCollection, projectsCollection *mongo.Collection) *TaskService {
	return &TaskService{
		TasksCollection:    tasksCollection,
		ProjectsCollection: projectsCollection,
	}
}

// requireProjectOwner loads the project and verifies the requester owns it.
// Every task operation goes through this check; a task can never be reached
// through a project that belongs to someone else.
func (s *TaskService) requireProjectOwner(ctx context.Context, projectID primitive.ObjectID, requesterID string) error {
	requesterObjectID, err := primitive.ObjectIDFromHex(requesterID)
	if err != nil {
		return models.ErrInvalidID
	}

	var project models.Project
	err = s.ProjectsCollection.FindOne(ctx, bson.M{"_id": projectID}).Decode(&project)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.ErrProjectNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to fetch project: %w", err)
	}

	if project.UserID != requesterObjectID {
		return models.ErrForbidden
	}
	return nil
}

// CreateTask creates a task under the given project. The status defaults to
// pending when not provided.
func (s *TaskService) CreateTask(ctx context.Context, requesterID, projectID, title, description string, status models.TaskStatus) (*models.Task, error) {
	if projectID == "" || title == "" {
		return nil, models.ErrMissingFields
	}

	projectObjectID, err := primitive.ObjectIDFromHex(projectID)
	if err != nil {
		return nil, models.ErrInvalidID
	}

	if status == "" {
		status = models.StatusPending
	}
	if !status.Valid() {
		return nil, models.ErrInvalidStatus
	}

	if err := s.requireProjectOwner(ctx, projectObjectID, requesterID); err != nil {
		return nil, err
	}

	task := &models.Task{
		ID:          primitive.NewObjectID(),
		Title:       title,
		Description: description,
		Status:      status,
		ProjectID:   projectObjectID,
		CreatedAt:   time.Now(),
	}

	if _, err := s.TasksCollection.InsertOne(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// GetTasksByProject lists the tasks of a project the requester owns.
func (s *TaskService) GetTasksByProject(ctx context.Context, requesterID, projectID string) ([]models.Task, error) {
	projectObjectID, err := primitive.ObjectIDFromHex(projectID)
	if err != nil {
		return nil, models.ErrInvalidID
	}

	if err := s.requireProjectOwner(ctx, projectObjectID, requesterID); err != nil {
		return nil, err
	}

	cursor, err := s.TasksCollection.Find(ctx, bson.M{"project": projectObjectID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve tasks: %w", err)
	}
	defer cursor.Close(ctx)

	tasks := []models.Task{}
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, fmt.Errorf("failed to decode tasks: %w", err)
	}

	return tasks, nil
}

func (s *TaskService) getOwnedTask(ctx context.Context, requesterID, taskID string) (*models.Task, error) {
	taskObjectID, err := primitive.ObjectIDFromHex(taskID)
	if err != nil {
		return nil, models.ErrInvalidID
	}

	var task models.Task
	err = s.TasksCollection.FindOne(ctx, bson.M{"_id": taskObjectID}).Decode(&task)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrTaskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch task: %w", err)
	}

	if err := s.requireProjectOwner(ctx, task.ProjectID, requesterID); err != nil {
		// A task whose project was cascade-deleted is unreachable.
		if errors.Is(err, models.ErrProjectNotFound) {
			return nil, models.ErrTaskNotFound
		}
		return nil, err
	}

	return &task, nil
}

// UpdateTask merges the provided fields into the task. Empty fields are left
// unchanged, so an update cannot clear a field to the empty string. Moving
// the status to completed stamps completedAt; moving it away does not clear
// it. Concurrent updates are last-write-wins.
func (s *TaskService) UpdateTask(ctx context.Context, requesterID, taskID string, upd models.TaskUpdate) (*models.Task, error) {
	if upd.Status != "" && !upd.Status.Valid() {
		return nil, models.ErrInvalidStatus
	}

	task, err := s.getOwnedTask(ctx, requesterID, taskID)
	if err != nil {
		return nil, err
	}

	upd.Apply(task, time.Now())

	if _, err := s.TasksCollection.ReplaceOne(ctx, bson.M{"_id": task.ID}, task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return task, nil
}

// DeleteTask removes a single task without touching its project.
func (s *TaskService) DeleteTask(ctx context.Context, requesterID, taskID string) error {
	task, err := s.getOwnedTask(ctx, requesterID, taskID)
	if err != nil {
		return err
	}

	if _, err := s.TasksCollection.DeleteOne(ctx, bson.M{"_id": task.ID}); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return nil
}
