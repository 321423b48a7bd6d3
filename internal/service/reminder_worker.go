// internal/service/reminder_worker.go
package service

import (
	"log"
	"time"

	appErrors "github.com/heartielabs/heartie-backend/internal/errors"
	"github.com/heartielabs/heartie-backend/internal/model"
	"github.com/heartielabs/heartie-backend/internal/repository"
	"github.com/heartielabs/heartie-backend/internal/schedule"
)

// ReminderWorker delivers reminders for activity ids. The RabbitMQ consumer
// in cmd/worker calls Process per message so it can ack or nack on the
// result.
type ReminderWorker struct {
	ActivityRepo repository.ActivityRepositoryInterface
	Notify       func(a *model.Activity) error
}

func NewReminderWorker(repo repository.ActivityRepositoryInterface, notify func(a *model.Activity) error) *ReminderWorker {
	return &ReminderWorker{
		ActivityRepo: repo,
		Notify:       notify,
	}
}

// Process delivers one reminder. A scheduled activity whose day has arrived
// flips to running once its reminder goes out. A deleted activity is not an
// error; any other failure is returned so the consumer can nack and retry.
func (w *ReminderWorker) Process(id int) error {
	activity, err := w.ActivityRepo.GetByID(id)
	if err != nil {
		if appErrors.IsNotFound(err) {
			log.Println("activity gone, dropping reminder:", id)
			return nil
		}
		return err
	}

	if err := w.Notify(activity); err != nil {
		return err
	}

	if activity.Status == model.StatusScheduled && !schedule.Midnight(activity.Date).After(schedule.Midnight(time.Now())) {
		if err := w.ActivityRepo.UpdateStatus(id, model.StatusRunning); err != nil {
			return err
		}
	}
	return nil
}
