package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/heartielabs/heartie-backend/internal/model"
	"github.com/heartielabs/heartie-backend/internal/service"
)

func TestReminderWorkerFlipsDueActivityToRunning(t *testing.T) {
	repo := newMockActivityRepo()
	yesterday := time.Now().AddDate(0, 0, -1)
	due := model.Activity{UserID: 1, Title: "Launch post", Date: yesterday, Status: model.StatusScheduled}
	if err := repo.Create(&due); err != nil {
		t.Fatal(err)
	}

	var notified []int
	worker := service.NewReminderWorker(repo, func(a *model.Activity) error {
		notified = append(notified, a.ID)
		return nil
	})

	if err := worker.Process(due.ID); err != nil {
		t.Fatal(err)
	}
	if len(notified) != 1 || notified[0] != due.ID {
		t.Errorf("notified = %v, want [%d]", notified, due.ID)
	}
	got, _ := repo.GetByID(due.ID)
	if got.Status != model.StatusRunning {
		t.Errorf("status = %q, want %q", got.Status, model.StatusRunning)
	}
}

func TestReminderWorkerLeavesFutureActivityScheduled(t *testing.T) {
	repo := newMockActivityRepo()
	nextWeek := time.Now().AddDate(0, 0, 7)
	future := model.Activity{UserID: 1, Title: "Teaser", Date: nextWeek, Status: model.StatusScheduled}
	if err := repo.Create(&future); err != nil {
		t.Fatal(err)
	}

	worker := service.NewReminderWorker(repo, func(a *model.Activity) error { return nil })
	if err := worker.Process(future.ID); err != nil {
		t.Fatal(err)
	}

	got, _ := repo.GetByID(future.ID)
	if got.Status != model.StatusScheduled {
		t.Errorf("status = %q, want %q", got.Status, model.StatusScheduled)
	}
}

func TestReminderWorkerNotifyFailureIsRetriable(t *testing.T) {
	repo := newMockActivityRepo()
	yesterday := time.Now().AddDate(0, 0, -1)
	due := model.Activity{UserID: 1, Title: "Newsletter", Date: yesterday, Status: model.StatusScheduled}
	if err := repo.Create(&due); err != nil {
		t.Fatal(err)
	}

	worker := service.NewReminderWorker(repo, func(a *model.Activity) error {
		return errors.New("smtp unavailable")
	})

	// The consumer nacks and requeues on error, so the failure must surface
	// and the status must stay untouched for the retry.
	if err := worker.Process(due.ID); err == nil {
		t.Fatal("expected error from failed delivery")
	}
	got, _ := repo.GetByID(due.ID)
	if got.Status != model.StatusScheduled {
		t.Errorf("status = %q, want %q after failed delivery", got.Status, model.StatusScheduled)
	}
}

func TestReminderWorkerDropsDeletedActivity(t *testing.T) {
	repo := newMockActivityRepo()
	worker := service.NewReminderWorker(repo, func(a *model.Activity) error {
		t.Error("notify called for a missing activity")
		return nil
	})

	if err := worker.Process(404); err != nil {
		t.Errorf("missing activity must be dropped, got %v", err)
	}
}
