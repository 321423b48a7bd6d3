package queue

import (
	"fmt"
	"log"
	"sync"
	"time"

	appErrors "github.com/heartielabs/heartie-backend/internal/errors"
	"github.com/heartielabs/heartie-backend/internal/model"
	"github.com/heartielabs/heartie-backend/internal/schedule"
)

// TopicActivityReminders carries activity ids whose reminder is due.
const TopicActivityReminders = "activity_reminders"

// Queue interface
type Queue interface {
	Publish(topic string, payload any) error
	Subscribe(topic string, handler func(payload any) error) error
}

// InMemoryQueue is the single-binary queue with retry; deployments with a
// broker use cmd/worker against RabbitMQ instead.
type InMemoryQueue struct {
	mu       sync.Mutex
	handlers map[string][]func(payload any) error
}

func NewInMemoryQueue() *InMemoryQueue {
	return &InMemoryQueue{
		handlers: make(map[string][]func(payload any) error),
	}
}

// JobPayload wraps a message payload with retry info
type JobPayload struct {
	Payload    any
	RetryCount int
	MaxRetries int
}

// Publish sends a message to all subscribers
func (q *InMemoryQueue) Publish(topic string, payload any) error {
	q.mu.Lock()
	handlers := q.handlers[topic]
	q.mu.Unlock()

	if len(handlers) == 0 {
		return fmt.Errorf("no subscribers for topic %s", topic)
	}

	job := JobPayload{
		Payload:    payload,
		RetryCount: 0,
		MaxRetries: 3,
	}

	for _, handler := range handlers {
		go q.processJob(handler, job)
	}

	return nil
}

// processJob handles retries and errors
func (q *InMemoryQueue) processJob(handler func(payload any) error, job JobPayload) {
	for job.RetryCount <= job.MaxRetries {
		err := handler(job.Payload)
		if err == nil {
			return // ACK
		}

		job.RetryCount++
		log.Printf("Job failed (attempt %d/%d): %+v, error: %v\n", job.RetryCount, job.MaxRetries, job.Payload, err)

		if job.RetryCount > job.MaxRetries {
			log.Printf("Job permanently failed after %d attempts: %+v\n", job.MaxRetries, job.Payload)
			return // No requeue
		}

		// Exponential backoff before retry
		time.Sleep(time.Duration(job.RetryCount*500) * time.Millisecond)
	}
}

// Subscribe adds a handler for a topic
func (q *InMemoryQueue) Subscribe(topic string, handler func(payload any) error) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.handlers[topic] = append(q.handlers[topic], handler)
	return nil
}

// Notifier delivers a reminder for a due activity. Swapped for a real
// email/push sender in production; LogNotifier just records it.
type Notifier func(a *model.Activity) error

func LogNotifier(a *model.Activity) error {
	log.Printf("reminder: %q is due on %s (%s)", a.Title, schedule.DayKey(a.Date), a.Channel)
	return nil
}

// ActivityDirectory is what the reminder subscriber needs from the activity
// layer: a lookup and a status flip that both go through the owner's board,
// so the flip is never clobbered by the board's cached state.
type ActivityDirectory interface {
	GetByID(id int) (*model.Activity, error)
	MarkRunning(id int) error
}

// StartReminderSubscriber consumes activity_reminders. A scheduled activity
// whose day has arrived flips to running once the reminder goes out.
func StartReminderSubscriber(q Queue, activities ActivityDirectory, notify Notifier) {
	if notify == nil {
		notify = LogNotifier
	}
	go func() {
		err := q.Subscribe(TopicActivityReminders, func(payload any) error {
			activityID, ok := payload.(int)
			if !ok {
				log.Println("invalid payload type, expected int")
				return nil // drop, retrying will not fix it
			}

			activity, err := activities.GetByID(activityID)
			if err != nil {
				if appErrors.IsNotFound(err) {
					log.Println("activity gone, dropping reminder:", activityID)
					return nil // no retry
				}
				log.Println("failed to fetch activity:", err)
				return err
			}

			if err := notify(activity); err != nil {
				log.Println("failed to deliver reminder:", err)
				return err // triggers retry in queue
			}

			if activity.Status == model.StatusScheduled && !schedule.Midnight(activity.Date).After(schedule.Midnight(time.Now())) {
				if err := activities.MarkRunning(activityID); err != nil {
					log.Println("failed to update activity status:", err)
					return err
				}
			}
			return nil
		})

		if err != nil {
			log.Println("failed to start subscriber for", TopicActivityReminders, ":", err)
		}
	}()
}
