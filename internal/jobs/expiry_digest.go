package jobs

import (
	"context"
	"fmt"
	"time"

	"family-hub-backend/internal/utils/logging"
	"family-hub-backend/internal/utils/mailing"
	"family-hub-backend/pkg/pantry"
	"family-hub-backend/pkg/user"

	"github.com/robfig/cron/v3"
)

const expiryDigestSchedule = "0 7 * * *"

const expiryWindowDays = 3

type ExpiryDigestJob struct {
	pantryRepository pantry.PantryRepository
	userRepository   user.UserRepository
}

func NewExpiryDigestJob(pantryRepository pantry.PantryRepository, userRepository user.UserRepository) *ExpiryDigestJob {
	return &ExpiryDigestJob{
		pantryRepository: pantryRepository,
		userRepository:   userRepository,
	}
}

// Start schedules the daily digest and returns the running scheduler so the
// caller can Stop it on shutdown.
func (j *ExpiryDigestJob) Start() (*cron.Cron, error) {
	c := cron.New()
	if _, err := c.AddFunc(expiryDigestSchedule, j.Run); err != nil {
		return nil, err
	}
	c.Start()
	logging.Logger.Infof("expiry digest scheduled: %s", expiryDigestSchedule)
	return c, nil
}

// Run mails every family owner a digest of pantry items expiring within the
// window. One family failing does not stop the rest.
func (j *ExpiryDigestJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	familyIDs, err := j.pantryRepository.GetFamilyIDs(ctx)
	if err != nil {
		logging.Logger.Errorf("expiry digest: listing families failed: %v", err)
		return
	}

	before := time.Now().AddDate(0, 0, expiryWindowDays)
	for _, familyID := range familyIDs {
		if err := j.runFamily(ctx, familyID, before); err != nil {
			logging.Logger.Warnf("expiry digest for family %s failed: %v", familyID, err)
		}
	}
}

func (j *ExpiryDigestJob) runFamily(ctx context.Context, familyID string, before time.Time) error {
	items, err := j.pantryRepository.GetExpiringItems(ctx, familyID, before)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}

	family, err := j.userRepository.GetFamilyByID(ctx, familyID)
	if err != nil {
		return err
	}
	owner, err := j.userRepository.GetUserByID(ctx, family.OwnerID)
	if err != nil {
		return err
	}

	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, fmt.Sprintf(
			"%s (%.2g %s) expires %s",
			item.Name, item.Quantity, item.Unit, item.ExpirationDate.Format("2006-01-02"),
		))
	}

	if err := mailing.SendExpiryDigestMail(owner.Email, lines); err != nil {
		return err
	}
	logging.Logger.Infof("expiry digest sent to %s (%d items)", owner.Email, len(items))
	return nil
}
