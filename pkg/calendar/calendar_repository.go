package calendar

import (
	"context"
	"errors"
	"time"

	"family-hub-backend/entities"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type (
	CalendarRepository interface {
		AddEvent(ctx context.Context, event *entities.CalendarEvent) error
		GetEventByID(ctx context.Context, familyID, id string) (*entities.CalendarEvent, error)
		GetEvents(ctx context.Context, familyID, eventType string) ([]*entities.CalendarEvent, error)
		UpdateEvent(ctx context.Context, event *entities.CalendarEvent) error
		UpdateEventsBySource(ctx context.Context, familyID, sourceID, title string, start, end time.Time) (int64, error)
		DeleteEvent(ctx context.Context, familyID, id string) error
		DeleteEventsBySource(ctx context.Context, familyID, sourceID string) error
	}

	calendarRepository struct {
		events *mongo.Collection
	}
)

func NewCalendarRepository(db *mongo.Database) CalendarRepository {
	return &calendarRepository{events: db.Collection("events")}
}

func (r *calendarRepository) AddEvent(ctx context.Context, event *entities.CalendarEvent) error {
	_, err := r.events.InsertOne(ctx, event)
	return err
}

func (r *calendarRepository) GetEventByID(ctx context.Context, familyID, id string) (*entities.CalendarEvent, error) {
	var event entities.CalendarEvent
	err := r.events.FindOne(ctx, bson.M{"_id": id, "family_id": familyID}).Decode(&event)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, err
		}
		return nil, err
	}
	return &event, nil
}

func (r *calendarRepository) GetEvents(ctx context.Context, familyID, eventType string) ([]*entities.CalendarEvent, error) {
	filter := bson.M{"family_id": familyID}
	if eventType != "" && eventType != "all" {
		filter["type"] = eventType
	}

	cursor, err := r.events.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "start", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []*entities.CalendarEvent
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *calendarRepository) UpdateEvent(ctx context.Context, event *entities.CalendarEvent) error {
	event.UpdatedAt = time.Now()
	_, err := r.events.ReplaceOne(ctx, bson.M{"_id": event.ID, "family_id": event.FamilyID}, event)
	return err
}

func (r *calendarRepository) UpdateEventsBySource(ctx context.Context, familyID, sourceID, title string, start, end time.Time) (int64, error) {
	res, err := r.events.UpdateMany(ctx,
		bson.M{"family_id": familyID, "source_id": sourceID},
		bson.M{"$set": bson.M{
			"title":      title,
			"start":      start,
			"end":        end,
			"updated_at": time.Now(),
		}},
	)
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

func (r *calendarRepository) DeleteEvent(ctx context.Context, familyID, id string) error {
	res, err := r.events.DeleteOne(ctx, bson.M{"_id": id, "family_id": familyID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *calendarRepository) DeleteEventsBySource(ctx context.Context, familyID, sourceID string) error {
	_, err := r.events.DeleteMany(ctx, bson.M{"family_id": familyID, "source_id": sourceID})
	return err
}
