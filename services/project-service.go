package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dipankar049/task-tracker-lite/logging"
	"github.com/dipankar049/task-tracker-lite/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ProjectService struct {
	ProjectsCollection *mongo.Collection
	TasksCollection    *mongo.Collection
}

func NewProjectService(projectsCollection, tasksCollection *mongo.Collection) *ProjectService {
	return &ProjectService{
		ProjectsCollection: projectsCollection,
		TasksCollection:    tasksCollection,
	}
}

// CreateProject creates a project for the owner, subject to the per-user cap.
// The count check and the insert are separate operations, so concurrent
// creates at the boundary can both pass; the cap is a soft limit.
func (s *ProjectService) CreateProject(ctx context.Context, ownerID, title, description string) (*models.Project, error) {
	if title == "" {
		return nil, models.ErrMissingFields
	}

	ownerObjectID, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return nil, models.ErrInvalidID
	}

	count, err := s.ProjectsCollection.CountDocuments(ctx, bson.M{"user": ownerObjectID})
	if err != nil {
		return nil, fmt.Errorf("failed to count projects: %w", err)
	}
	if count >= models.MaxProjectsPerUser {
		return nil, models.ErrProjectLimit
	}

	project := &models.Project{
		ID:          primitive.NewObjectID(),
		Title:       title,
		Description: description,
		UserID:      ownerObjectID,
		CreatedAt:   time.Now(),
	}

	if _, err := s.ProjectsCollection.InsertOne(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return project, nil
}

// GetProjectsByOwner lists the owner's projects. Other users' projects are
// never included.
func (s *ProjectService) GetProjectsByOwner(ctx context.Context, ownerID string) ([]models.Project, error) {
	ownerObjectID, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return nil, models.ErrInvalidID
	}

	cursor, err := s.ProjectsCollection.Find(ctx, bson.M{"user": ownerObjectID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve projects: %w", err)
	}
	defer cursor.Close(ctx)

	projects := []models.Project{}
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, fmt.Errorf("failed to decode projects: %w", err)
	}

	return projects, nil
}

// GetProjectByID returns the project only to its owner: not-found and
// not-yours are reported as distinct errors.
func (s *ProjectService) GetProjectByID(ctx context.Context, id, requesterID string) (*models.Project, error) {
	projectObjectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrInvalidID
	}
	requesterObjectID, err := primitive.ObjectIDFromHex(requesterID)
	if err != nil {
		return nil, models.ErrInvalidID
	}

	var project models.Project
	err = s.ProjectsCollection.FindOne(ctx, bson.M{"_id": projectObjectID}).Decode(&project)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrProjectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch project: %w", err)
	}

	if project.UserID != requesterObjectID {
		return nil, models.ErrForbidden
	}

	return &project, nil
}

// DeleteProject removes the project and everything under it. Tasks go first;
// if the project delete then fails, the tasks stay gone and the caller sees
// an error. There is no compensating transaction at this scale.
func (s *ProjectService) DeleteProject(ctx context.Context, id, requesterID string) error {
	project, err := s.GetProjectByID(ctx, id, requesterID)
	if err != nil {
		return err
	}

	result, err := s.TasksCollection.DeleteMany(ctx, bson.M{"project": project.ID})
	if err != nil {
		return fmt.Errorf("failed to delete project tasks: %w", err)
	}
	logging.Logger.Infof("Event ID: PROJECT_CASCADE_DELETE, Description: Deleted %d tasks for project %s", result.DeletedCount, project.ID.Hex())

	if _, err := s.ProjectsCollection.DeleteOne(ctx, bson.M{"_id": project.ID}); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	return nil
}
