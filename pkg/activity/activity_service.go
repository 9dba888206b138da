package activity

import (
	"context"
	"errors"
	"mime/multipart"
	"time"

	"family-hub-backend/domain"
	"family-hub-backend/entities"
	"family-hub-backend/internal/utils/storage"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

type (
	ActivityService interface {
		AddEvent(ctx context.Context, req domain.AddEventActivityRequest, familyID string) (domain.ActivityResponse, error)
		AddVacation(ctx context.Context, req domain.AddVacationRequest, familyID string) (domain.ActivityResponse, error)
		AddBucketListItem(ctx context.Context, req domain.AddBucketListItemRequest, familyID string) (domain.ActivityResponse, error)
		GetActivities(ctx context.Context, familyID, activityType string) ([]domain.ActivityResponse, error)
		UpdateActivityStatus(ctx context.Context, id string, req domain.UpdateActivityStatusRequest, familyID string) (domain.ActivityResponse, error)
		DeleteActivity(ctx context.Context, id string, familyID string) error
		UploadActivityPhoto(ctx context.Context, id string, file *multipart.FileHeader, familyID string) (domain.ActivityResponse, error)
	}

	activityService struct {
		activityRepository ActivityRepository
		awsS3              storage.AwsS3
	}
)

func NewActivityService(activityRepository ActivityRepository, awsS3 storage.AwsS3) ActivityService {
	return &activityService{
		activityRepository: activityRepository,
		awsS3:              awsS3,
	}
}

func (s *activityService) AddEvent(ctx context.Context, req domain.AddEventActivityRequest, familyID string) (domain.ActivityResponse, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return domain.ActivityResponse{}, domain.ErrInvalidDateRange
	}

	activity := newActivity(familyID, entities.ActivityTypeEvent, req.Title, "planned")
	activity.Date = date
	activity.Description = req.Description

	if err := s.activityRepository.AddActivity(ctx, activity); err != nil {
		return domain.ActivityResponse{}, err
	}
	return toActivityResponse(activity), nil
}

func (s *activityService) AddVacation(ctx context.Context, req domain.AddVacationRequest, familyID string) (domain.ActivityResponse, error) {
	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return domain.ActivityResponse{}, domain.ErrInvalidDateRange
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return domain.ActivityResponse{}, domain.ErrInvalidDateRange
	}
	if end.Before(start) {
		return domain.ActivityResponse{}, domain.ErrInvalidDateRange
	}

	activity := newActivity(familyID, entities.ActivityTypeVacation, req.Title, "planned")
	activity.StartDate = start
	activity.EndDate = end
	activity.Destination = req.Destination
	activity.Budget = req.Budget
	activity.Activities = req.Activities
	activity.PackingList = req.PackingList

	if err := s.activityRepository.AddActivity(ctx, activity); err != nil {
		return domain.ActivityResponse{}, err
	}
	return toActivityResponse(activity), nil
}

func (s *activityService) AddBucketListItem(ctx context.Context, req domain.AddBucketListItemRequest, familyID string) (domain.ActivityResponse, error) {
	activity := newActivity(familyID, entities.ActivityTypeBucketList, req.Title, "Not Started")
	activity.Description = req.Description

	if req.TargetDate != "" {
		target, err := time.Parse("2006-01-02", req.TargetDate)
		if err != nil {
			return domain.ActivityResponse{}, domain.ErrInvalidDateRange
		}
		activity.TargetDate = target
	}

	if err := s.activityRepository.AddActivity(ctx, activity); err != nil {
		return domain.ActivityResponse{}, err
	}
	return toActivityResponse(activity), nil
}

func (s *activityService) GetActivities(ctx context.Context, familyID, activityType string) ([]domain.ActivityResponse, error) {
	if activityType != "" &&
		activityType != entities.ActivityTypeEvent &&
		activityType != entities.ActivityTypeVacation &&
		activityType != entities.ActivityTypeBucketList {
		return nil, domain.ErrInvalidActivityKind
	}

	activities, err := s.activityRepository.GetActivities(ctx, familyID, activityType)
	if err != nil {
		return nil, err
	}

	result := make([]domain.ActivityResponse, 0, len(activities))
	for _, activity := range activities {
		result = append(result, toActivityResponse(activity))
	}
	return result, nil
}

func (s *activityService) UpdateActivityStatus(ctx context.Context, id string, req domain.UpdateActivityStatusRequest, familyID string) (domain.ActivityResponse, error) {
	activity, err := s.activityRepository.GetActivityByID(ctx, familyID, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.ActivityResponse{}, domain.ErrActivityNotFound
		}
		return domain.ActivityResponse{}, err
	}

	activity.Status = req.Status
	activity.UpdatedAt = time.Now()

	if err := s.activityRepository.UpdateActivity(ctx, activity); err != nil {
		return domain.ActivityResponse{}, err
	}
	return toActivityResponse(activity), nil
}

func (s *activityService) DeleteActivity(ctx context.Context, id string, familyID string) error {
	if err := s.activityRepository.DeleteActivity(ctx, familyID, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.ErrActivityNotFound
		}
		return err
	}
	return nil
}

func (s *activityService) UploadActivityPhoto(ctx context.Context, id string, file *multipart.FileHeader, familyID string) (domain.ActivityResponse, error) {
	activity, err := s.activityRepository.GetActivityByID(ctx, familyID, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.ActivityResponse{}, domain.ErrActivityNotFound
		}
		return domain.ActivityResponse{}, err
	}

	photoURL, err := s.awsS3.UploadFile(ctx, file, "activities")
	if err != nil {
		return domain.ActivityResponse{}, err
	}

	activity.PhotoURL = photoURL
	activity.UpdatedAt = time.Now()

	if err := s.activityRepository.UpdateActivity(ctx, activity); err != nil {
		return domain.ActivityResponse{}, err
	}
	return toActivityResponse(activity), nil
}

func newActivity(familyID, activityType, title, status string) *entities.FamilyActivity {
	now := time.Now()
	return &entities.FamilyActivity{
		ID:        uuid.New().String(),
		FamilyID:  familyID,
		Type:      activityType,
		Title:     title,
		Status:    status,
		Timestamp: entities.Timestamp{CreatedAt: now, UpdatedAt: now},
	}
}

func toActivityResponse(activity *entities.FamilyActivity) domain.ActivityResponse {
	formatDate := func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("2006-01-02")
	}

	return domain.ActivityResponse{
		ID:          activity.ID,
		Type:        activity.Type,
		Title:       activity.Title,
		Status:      activity.Status,
		PhotoURL:    activity.PhotoURL,
		Date:        formatDate(activity.Date),
		Description: activity.Description,
		StartDate:   formatDate(activity.StartDate),
		EndDate:     formatDate(activity.EndDate),
		Destination: activity.Destination,
		Budget:      activity.Budget,
		Activities:  activity.Activities,
		PackingList: activity.PackingList,
		TargetDate:  formatDate(activity.TargetDate),
	}
}
