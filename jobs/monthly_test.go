package jobs

import (
	"testing"
	"time"

	"quizmaster/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createQuiz(t *testing.T, db *gorm.DB, remarks string) models.Quiz {
	t.Helper()
	subject := models.Subject{Name: "Science", NameSearchTerm: "science"}
	require.NoError(t, db.Create(&subject).Error)
	chapter := models.Chapter{Name: "Physics", NameSearchTerm: "physics", SubjectID: subject.ID}
	require.NoError(t, db.Create(&chapter).Error)
	quiz := models.Quiz{
		ChapterID:      chapter.ID,
		SubjectID:      subject.ID,
		DateOfQuiz:     time.Now().In(models.IST),
		DurationOfQuiz: 15,
		Remarks:        remarks,
	}
	require.NoError(t, db.Create(&quiz).Error)
	return quiz
}

func TestPreviousMonthWindow(t *testing.T) {
	t.Run("mid month", func(t *testing.T) {
		now := time.Date(2025, time.March, 15, 10, 30, 0, 0, models.IST)
		start, end := PreviousMonthWindow(now)
		assert.Equal(t, time.Date(2025, time.February, 1, 0, 0, 0, 0, models.IST), start)
		assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, models.IST), end)
	})

	t.Run("january rolls into previous year", func(t *testing.T) {
		now := time.Date(2025, time.January, 2, 0, 0, 0, 0, models.IST)
		start, end := PreviousMonthWindow(now)
		assert.Equal(t, time.Date(2024, time.December, 1, 0, 0, 0, 0, models.IST), start)
		assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, models.IST), end)
	})

	t.Run("normalizes to IST", func(t *testing.T) {
		// 2025-02-28 20:00 UTC is already March 1st in IST.
		now := time.Date(2025, time.February, 28, 20, 0, 0, 0, time.UTC)
		start, _ := PreviousMonthWindow(now)
		assert.Equal(t, time.February, start.Month())
	})
}

func TestRunMonthlyReport(t *testing.T) {
	db := setupTestDB(t)
	now := time.Date(2025, time.March, 1, 8, 0, 0, 0, models.IST)
	inMonth := time.Date(2025, time.February, 10, 12, 0, 0, 0, models.IST)
	beforeMonth := time.Date(2025, time.January, 20, 12, 0, 0, 0, models.IST)

	alice := createUser(t, db, "alice@quizz.com", "Alice")
	bob := createUser(t, db, "bob@quizz.com", "Bob")

	quizA := createQuiz(t, db, "Mechanics Basics")
	quizB := createQuiz(t, db, "")

	createScoreAt(t, db, alice.ID, quizA.ID, 80, inMonth)
	createScoreAt(t, db, alice.ID, quizB.ID, 40, inMonth.AddDate(0, 0, 3))
	createScoreAt(t, db, bob.ID, quizA.ID, 90, beforeMonth)

	mailer := &fakeMailer{}
	res := RunMonthlyReport(db, mailer, now)

	assert.Equal(t, StatusCompleted, res.Status)
	assert.Equal(t, "Monthly reports sent to 1 users.", res.Message)
	assert.Equal(t, 1, res.Sent)
	assert.Empty(t, res.Failures)

	require.Len(t, mailer.sent, 1)
	mail := mailer.sent[0]
	assert.Equal(t, "alice@quizz.com", mail.to)
	assert.Contains(t, mail.subject, "February 2025")
	assert.Contains(t, mail.text, "Mechanics Basics")
	assert.Contains(t, mail.text, "Unknown Quiz")
	assert.Contains(t, mail.text, "60.00")
	assert.NotEmpty(t, mail.html)
}

func TestRunMonthlyReportNoActivity(t *testing.T) {
	db := setupTestDB(t)
	createUser(t, db, "idle@quizz.com", "Idle User")

	mailer := &fakeMailer{}
	res := RunMonthlyReport(db, mailer, time.Date(2025, time.March, 1, 8, 0, 0, 0, models.IST))

	assert.Equal(t, StatusCompleted, res.Status)
	assert.Equal(t, "No user activity in the last month. No reports sent.", res.Message)
	assert.Empty(t, mailer.sent)
}

func TestRunMonthlyReportRecipientFailure(t *testing.T) {
	db := setupTestDB(t)
	now := time.Date(2025, time.March, 1, 8, 0, 0, 0, models.IST)
	inMonth := time.Date(2025, time.February, 5, 9, 0, 0, 0, models.IST)

	alice := createUser(t, db, "alice@quizz.com", "Alice")
	bob := createUser(t, db, "bob@quizz.com", "Bob")
	quiz := createQuiz(t, db, "Mechanics Basics")
	createScoreAt(t, db, alice.ID, quiz.ID, 70, inMonth)
	createScoreAt(t, db, bob.ID, quiz.ID, 50, inMonth)

	mailer := &fakeMailer{failFor: map[string]error{"alice@quizz.com": errSMTPDown}}
	res := RunMonthlyReport(db, mailer, now)

	assert.Equal(t, StatusCompleted, res.Status)
	assert.Equal(t, 1, res.Sent)
	require.Len(t, res.Failures, 1)
	assert.Equal(t, "alice@quizz.com", res.Failures[0].Email)
	assert.Equal(t, []string{"bob@quizz.com"}, mailer.recipients())
}
