package task

import (
	"context"

	"family-hub-backend/entities"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type (
	TaskRepository interface {
		AddTask(ctx context.Context, task *entities.Task) error
		GetTaskByID(ctx context.Context, familyID, id string) (*entities.Task, error)
		GetTasks(ctx context.Context, familyID string) ([]*entities.Task, error)
		UpdateTask(ctx context.Context, task *entities.Task) error
		DeleteTask(ctx context.Context, familyID, id string) error
	}

	taskRepository struct {
		tasks *mongo.Collection
	}
)

func NewTaskRepository(db *mongo.Database) TaskRepository {
	return &taskRepository{tasks: db.Collection("tasks")}
}

func (r *taskRepository) AddTask(ctx context.Context, task *entities.Task) error {
	_, err := r.tasks.InsertOne(ctx, task)
	return err
}

func (r *taskRepository) GetTaskByID(ctx context.Context, familyID, id string) (*entities.Task, error) {
	var task entities.Task
	if err := r.tasks.FindOne(ctx, bson.M{"_id": id, "family_id": familyID}).Decode(&task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *taskRepository) GetTasks(ctx context.Context, familyID string) ([]*entities.Task, error) {
	cursor, err := r.tasks.Find(ctx, bson.M{"family_id": familyID}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tasks []*entities.Task
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *taskRepository) UpdateTask(ctx context.Context, task *entities.Task) error {
	res, err := r.tasks.ReplaceOne(ctx, bson.M{"_id": task.ID, "family_id": task.FamilyID}, task)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *taskRepository) DeleteTask(ctx context.Context, familyID, id string) error {
	res, err := r.tasks.DeleteOne(ctx, bson.M{"_id": id, "family_id": familyID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
