package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"barberbook/config"
	"barberbook/database/repository"
	"barberbook/models"
	"barberbook/services/notification"
	"barberbook/services/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// InitReminderWorker runs the async worker in background.
func InitReminderWorker(appts repository.AppointmentRepository, notifSvc notification.NotificationService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeReminderSend, handleReminderTask(appts, notifSvc))

	go monitorRedisConnection()

	go func() {
		log.Println("[ReminderWorker] 🚀 Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] ❌ Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] ❗ Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(appts repository.AppointmentRepository, notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] 🔴 Invalid payload: %v", err)
			return err
		}

		appt, err := appts.GetByID(p.AppointmentID)
		if err != nil {
			log.Printf("[ReminderHandler] ❌ Failed to load appointment %d: %v", p.AppointmentID, err)
			return err
		}
		if appt.Status == models.AppointmentStatusCancelled {
			log.Printf("[ReminderHandler] ⏭️ Appointment %d is cancelled, skipping reminder", appt.ID)
			return nil
		}

		log.Printf("[ReminderHandler] ⏰ Sending reminder for appointment %d (%s at %s)",
			appt.ID, appt.ServiceID, appt.ScheduledAt.Format(time.RFC3339))

		if err := notifSvc.NotifyAppointmentReminder(ctx, appt); err != nil {
			log.Printf("[ReminderHandler] ❌ Failed to send notification: %v", err)
			return err
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[ReminderWorker] ⚠️ Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
