package jobs

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"quizmaster/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateUserPerformanceCSV(t *testing.T) {
	db := setupTestDB(t)
	now := time.Now().In(models.IST)

	createUser(t, db, "idle@quizz.com", "Idle User")
	busy := createUser(t, db, "busy@quizz.com", "Busy User")
	quiz := createQuiz(t, db, "Mechanics Basics")

	createScoreAt(t, db, busy.ID, quiz.ID, 60, now.AddDate(0, 0, -3))
	createScoreAt(t, db, busy.ID, quiz.ID, 90, now.AddDate(0, 0, -1))

	dir := t.TempDir()
	path, err := GenerateUserPerformanceCSV(db, dir)
	require.NoError(t, err)

	name := filepath.Base(path)
	assert.True(t, strings.HasPrefix(name, "user_performance_"))
	assert.True(t, strings.HasSuffix(name, ".csv"))

	f, err := os.Open(filepath.Join(dir, name))
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3) // header + one row per user

	assert.Equal(t, []string{"USER ID", "FULL NAME", "EMAIL", "TOTAL ATTEMPTS", "AVG SCORE", "MAX SCORE"}, records[0])

	rows := make(map[string][]string)
	for _, r := range records[1:] {
		rows[r[2]] = r
	}

	// A user with no attempts still gets a row, with zeroed stats.
	idleRow := rows["idle@quizz.com"]
	require.NotNil(t, idleRow)
	assert.Equal(t, "Idle User", idleRow[1])
	assert.Equal(t, "0", idleRow[3])
	assert.Equal(t, "0", idleRow[4])
	assert.Equal(t, "0", idleRow[5])

	busyRow := rows["busy@quizz.com"]
	require.NotNil(t, busyRow)
	assert.Equal(t, "2", busyRow[3])
	assert.Equal(t, "75", busyRow[4])
	assert.Equal(t, "90", busyRow[5])
}

func TestGenerateUserPerformanceCSVIgnoresDeletedScores(t *testing.T) {
	db := setupTestDB(t)
	now := time.Now().In(models.IST)

	user := createUser(t, db, "user@quizz.com", "User")
	quiz := createQuiz(t, db, "Mechanics Basics")
	createScoreAt(t, db, user.ID, quiz.ID, 40, now)
	require.NoError(t, db.Where("user_id = ?", user.ID).Delete(&models.Score{}).Error)

	dir := t.TempDir()
	path, err := GenerateUserPerformanceCSV(db, dir)
	require.NoError(t, err)

	f, err := os.Open(filepath.Join(dir, filepath.Base(path)))
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "0", records[1][3])
}
