package jobs

import (
	"log"

	"quizmaster/models"

	"github.com/robfig/cron/v3"
)

// startScheduler wires the cron entries that feed the notification jobs into
// the queue: daily reminders every evening, the monthly report on the first
// of each month. Times are IST.
func (m *Manager) startScheduler() {
	c := cron.New(cron.WithLocation(models.IST))

	c.AddFunc("0 18 * * *", func() {
		log.Println("[SCHEDULER] enqueueing daily reminder job...")
		if _, err := m.EnqueueDailyReminder(); err != nil {
			log.Printf("[SCHEDULER] Error enqueueing daily reminder: %v", err)
		}
	})

	c.AddFunc("0 8 1 * *", func() {
		log.Println("[SCHEDULER] enqueueing monthly report job...")
		if _, err := m.EnqueueMonthlyReport(); err != nil {
			log.Printf("[SCHEDULER] Error enqueueing monthly report: %v", err)
		}
	})

	c.Start()
	m.cron = c
	log.Println("[SCHEDULER] started - reminders daily at 6 PM IST, reports monthly on day 1 at 8 AM IST")
}
