// cmd/worker/main.go
package main

import (
	"encoding/json"
	"log"

	"github.com/joho/godotenv"
	"github.com/streadway/amqp"

	"github.com/heartielabs/heartie-backend/internal/config"
	"github.com/heartielabs/heartie-backend/internal/db"
	"github.com/heartielabs/heartie-backend/internal/queue"
	"github.com/heartielabs/heartie-backend/internal/repository"
	"github.com/heartielabs/heartie-backend/internal/service"
)

type reminderJob struct {
	ActivityID int `json:"activity_id"`
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on OS environment variables")
	}
	cfg := config.Load()

	conn, err := db.Connect(cfg)
	if err != nil {
		log.Fatal("failed to connect to DB:", err)
	}
	defer conn.Close()

	activityRepo := &repository.ActivityRepository{DB: conn}

	amqpConn, err := amqp.Dial(cfg.AMQPURL)
	if err != nil {
		log.Fatal("failed to connect to RabbitMQ:", err)
	}
	defer amqpConn.Close()

	ch, err := amqpConn.Channel()
	if err != nil {
		log.Fatal("failed to open a channel:", err)
	}
	defer ch.Close()

	qd, err := ch.QueueDeclare(
		queue.TopicActivityReminders, // name
		true,                         // durable
		false,                        // delete when unused
		false,                        // exclusive
		false,                        // no-wait
		nil,                          // arguments
	)
	if err != nil {
		log.Fatal("failed to declare queue:", err)
	}

	msgs, err := ch.Consume(
		qd.Name,
		"",
		false, // manual ack for reliability
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		log.Fatal("failed to register consumer:", err)
	}

	worker := service.NewReminderWorker(activityRepo, queue.LogNotifier)

	go func() {
		for d := range msgs {
			var job reminderJob
			if err := json.Unmarshal(d.Body, &job); err != nil {
				log.Println("invalid job:", err)
				d.Ack(false)
				continue
			}

			if err := worker.Process(job.ActivityID); err != nil {
				log.Println("failed to process reminder:", err)
				// Retry logic: requeue up to 3 times
				var retryCount int
				if d.Headers["x-retry-count"] != nil {
					retryCount, _ = d.Headers["x-retry-count"].(int)
				}
				if retryCount < 3 {
					d.Nack(false, true) // requeue
					continue
				}
			}

			d.Ack(false)
		}
	}()

	log.Println("reminder worker running, waiting for messages...")
	select {}
}
