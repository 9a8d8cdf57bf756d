package jobs

import (
	"testing"
	"time"

	"quizmaster/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createScoreAt(t *testing.T, db *gorm.DB, userID, quizID uint, totalScore int, at time.Time) {
	t.Helper()
	score := models.Score{
		UserID:             userID,
		QuizID:             quizID,
		TimestampOfAttempt: at,
		TotalScore:         totalScore,
		Status:             "completed",
	}
	require.NoError(t, db.Create(&score).Error)
}

func TestRunDailyReminder(t *testing.T) {
	db := setupTestDB(t)
	now := time.Now().In(models.IST)

	active := createUser(t, db, "active@quizz.com", "Active User")
	stale := createUser(t, db, "stale@quizz.com", "Stale User")
	createUser(t, db, "fresh@quizz.com", "Never Attempted")

	createScoreAt(t, db, active.ID, 1, 80, now.AddDate(0, 0, -2))
	createScoreAt(t, db, stale.ID, 1, 40, now.AddDate(0, 0, -30))

	mailer := &fakeMailer{}
	res := RunDailyReminder(db, mailer)

	assert.Equal(t, StatusCompleted, res.Status)
	assert.Equal(t, "Reminders sent to 2 inactive users.", res.Message)
	assert.Equal(t, 2, res.Sent)
	assert.Empty(t, res.Failures)

	recipients := mailer.recipients()
	assert.ElementsMatch(t, []string{"stale@quizz.com", "fresh@quizz.com"}, recipients)
	assert.NotContains(t, recipients, "active@quizz.com")
}

func TestRunDailyReminderRecipientFailure(t *testing.T) {
	db := setupTestDB(t)

	createUser(t, db, "one@quizz.com", "User One")
	createUser(t, db, "two@quizz.com", "User Two")

	mailer := &fakeMailer{failFor: map[string]error{"one@quizz.com": errSMTPDown}}
	res := RunDailyReminder(db, mailer)

	// A bad recipient never aborts the batch.
	assert.Equal(t, StatusCompleted, res.Status)
	assert.Equal(t, 1, res.Sent)
	require.Len(t, res.Failures, 1)
	assert.Equal(t, "one@quizz.com", res.Failures[0].Email)
	assert.Equal(t, errSMTPDown.Error(), res.Failures[0].Error)
	assert.Equal(t, []string{"two@quizz.com"}, mailer.recipients())
}

func TestRunDailyReminderNoUsers(t *testing.T) {
	db := setupTestDB(t)

	mailer := &fakeMailer{}
	res := RunDailyReminder(db, mailer)

	assert.Equal(t, StatusCompleted, res.Status)
	assert.Zero(t, res.Sent)
	assert.Empty(t, mailer.sent)
}
