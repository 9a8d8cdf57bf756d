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

func (m *Manager) handleMonthlyReport(ctx context.Context, t *asynq.Task) error {
	res := RunMonthlyReport(m.db, m.mailer, time.Now())
	log.Printf("[MONTHLY] %s (%d failures)", res.Message, len(res.Failures))
	return writeResult(t, res)
}

// PreviousMonthWindow returns the [start, end) instants of the calendar month
// before now, in IST.
func PreviousMonthWindow(now time.Time) (start, end time.Time) {
	now = now.In(models.IST)
	end = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, models.IST)
	start = end.AddDate(0, -1, 0)
	return start, end
}

// RunMonthlyReport groups the previous month's scores by user and emails each
// user an HTML+text summary of the quizzes they attempted. Per-recipient
// failures are collected in the result; the batch always completes.
func RunMonthlyReport(db *gorm.DB, mailer utils.MailSender, now time.Time) JobResult {
	start, end := PreviousMonthWindow(now)

	var scores []models.Score
	err := db.Preload("User").Preload("Quiz").
		Where("timestamp_of_attempt >= ? AND timestamp_of_attempt < ?", start, end).
		Order("user_id").
		Find(&scores).Error
	if err != nil {
		return JobResult{Status: StatusFailed, Error: err.Error()}
	}

	if len(scores) == 0 {
		return JobResult{
			Status:  StatusCompleted,
			Message: "No user activity in the last month. No reports sent.",
		}
	}

	monthName := start.Format("January 2006")
	sent := 0
	var failures []RecipientError

	// Scores are ordered by user; walk the runs.
	for i := 0; i < len(scores); {
		j := i
		for j < len(scores) && scores[j].UserID == scores[i].UserID {
			j++
		}
		group := scores[i:j]
		user := group[0].User
		i = j

		if user.ID == 0 {
			continue
		}

		total := 0
		lines := make([]utils.QuizScoreLine, 0, len(group))
		for _, s := range group {
			title := s.Quiz.Remarks
			if title == "" {
				title = "Unknown Quiz"
			}
			lines = append(lines, utils.QuizScoreLine{QuizName: title, Score: s.TotalScore})
			total += s.TotalScore
		}
		avg := float64(total) / float64(len(group))

		subject, text, html := utils.MonthlyReportEmail(user.FullName, monthName, lines, avg)
		if err := mailer.Send([]string{user.Email}, subject, text, html); err != nil {
			failures = append(failures, RecipientError{Email: user.Email, Error: err.Error()})
			continue
		}
		sent++
	}

	return JobResult{
		Status:   StatusCompleted,
		Message:  fmt.Sprintf("Monthly reports sent to %d users.", sent),
		Sent:     sent,
		Failures: failures,
	}
}
