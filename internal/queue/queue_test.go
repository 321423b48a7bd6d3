package queue_test

import (
	"testing"
	"time"

	appErrors "github.com/heartielabs/heartie-backend/internal/errors"
	"github.com/heartielabs/heartie-backend/internal/model"
	"github.com/heartielabs/heartie-backend/internal/queue"
)

type fakeDirectory struct {
	activities map[int]model.Activity
	marked     chan int
}

func (f *fakeDirectory) GetByID(id int) (*model.Activity, error) {
	a, ok := f.activities[id]
	if !ok {
		return nil, appErrors.NewActivityNotFound(id)
	}
	return &a, nil
}

func (f *fakeDirectory) MarkRunning(id int) error {
	f.marked <- id
	return nil
}

// publishReminder retries until the subscriber goroutine has registered.
func publishReminder(t *testing.T, q queue.Queue, id int) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for {
		if err := q.Publish(queue.TopicActivityReminders, id); err == nil {
			return
		}
		if time.Now().After(deadline) {
			t.Fatal("subscriber never registered")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestReminderSubscriberMarksDueActivityRunning(t *testing.T) {
	q := queue.NewInMemoryQueue()
	dir := &fakeDirectory{
		activities: map[int]model.Activity{
			7: {ID: 7, UserID: 1, Title: "Newsletter", Date: time.Now().AddDate(0, 0, -1), Status: model.StatusScheduled},
		},
		marked: make(chan int, 1),
	}
	notified := make(chan int, 1)
	queue.StartReminderSubscriber(q, dir, func(a *model.Activity) error {
		notified <- a.ID
		return nil
	})

	publishReminder(t, q, 7)

	select {
	case id := <-notified:
		if id != 7 {
			t.Errorf("notified about %d, want 7", id)
		}
	case <-time.After(time.Second):
		t.Fatal("reminder never delivered")
	}
	select {
	case id := <-dir.marked:
		if id != 7 {
			t.Errorf("marked %d running, want 7", id)
		}
	case <-time.After(time.Second):
		t.Fatal("due activity never flipped to running")
	}
}

func TestReminderSubscriberLeavesFutureActivityScheduled(t *testing.T) {
	q := queue.NewInMemoryQueue()
	dir := &fakeDirectory{
		activities: map[int]model.Activity{
			8: {ID: 8, UserID: 1, Title: "Teaser", Date: time.Now().AddDate(0, 0, 7), Status: model.StatusScheduled},
		},
		marked: make(chan int, 1),
	}
	notified := make(chan int, 1)
	queue.StartReminderSubscriber(q, dir, func(a *model.Activity) error {
		notified <- a.ID
		return nil
	})

	publishReminder(t, q, 8)

	select {
	case <-notified:
	case <-time.After(time.Second):
		t.Fatal("reminder never delivered")
	}
	select {
	case id := <-dir.marked:
		t.Errorf("future activity %d flipped to running", id)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestReminderSubscriberDropsDeletedActivity(t *testing.T) {
	q := queue.NewInMemoryQueue()
	dir := &fakeDirectory{activities: map[int]model.Activity{}, marked: make(chan int, 1)}
	queue.StartReminderSubscriber(q, dir, func(a *model.Activity) error {
		t.Error("notify called for a missing activity")
		return nil
	})

	publishReminder(t, q, 404)

	select {
	case id := <-dir.marked:
		t.Errorf("missing activity %d flipped to running", id)
	case <-time.After(100 * time.Millisecond):
	}
}
