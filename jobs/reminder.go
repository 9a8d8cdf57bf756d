package jobs

import (
	"context"
	"fmt"
	"log"
	"time"

	"quizmaster/models"
	"quizmaster/utils"

	"github.com/hibiken/asynq"
	"gorm.io/gorm"
)

func (m *Manager) handleDailyReminder(ctx context.Context, t *asynq.Task) error {
	res := RunDailyReminder(m.db, m.mailer)
	log.Printf("[REMINDER] %s (%d failures)", res.Message, len(res.Failures))
	return writeResult(t, res)
}

// RunDailyReminder emails every user with no quiz attempt in the trailing
// 7 days. Per-recipient send failures are recorded in the result and never
// abort the batch.
func RunDailyReminder(db *gorm.DB, mailer utils.MailSender) JobResult {
	cutoff := time.Now().In(models.IST).AddDate(0, 0, -7)

	activeUsers := db.Model(&models.Score{}).
		Select("user_id").
		Where("timestamp_of_attempt > ?", cutoff)

	var inactive []models.User
	if err := db.Where("id NOT IN (?)", activeUsers).Find(&inactive).Error; err != nil {
		return JobResult{Status: StatusFailed, Error: err.Error()}
	}

	var failures []RecipientError
	for _, u := range inactive {
		subject, text := utils.ReminderEmail(u.FullName)
		if err := mailer.Send([]string{u.Email}, subject, text, ""); err != nil {
			failures = append(failures, RecipientError{Email: u.Email, Error: err.Error()})
		}
	}

	return JobResult{
		Status:   StatusCompleted,
		Message:  fmt.Sprintf("Reminders sent to %d inactive users.", len(inactive)),
		Sent:     len(inactive) - len(failures),
		Failures: failures,
	}
}
