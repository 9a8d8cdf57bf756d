package jobs

import (
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"quizmaster/models"

	"github.com/hibiken/asynq"
	"gorm.io/gorm"
)

func (m *Manager) handleExportUsersCSV(ctx context.Context, t *asynq.Task) error {
	log.Println("[EXPORT] generating user performance CSV...")

	relPath, err := GenerateUserPerformanceCSV(m.db, m.exportsDir)
	if err != nil {
		log.Printf("[EXPORT] failed: %v", err)
		return writeResult(t, JobResult{Status: StatusFailed, Error: err.Error()})
	}

	log.Printf("[EXPORT] wrote %s", relPath)
	return writeResult(t, JobResult{Status: StatusCompleted, URL: "/" + relPath})
}

type userStat struct {
	ID       uint
	FullName string
	Email    string
	Attempts int64
	AvgScore *float64
	MaxScore *int
}

// GenerateUserPerformanceCSV aggregates per-user score statistics and writes
// them to a timestamped CSV under dir. Users with no scores appear with
// zeroed averages. Returns the file path relative to the working directory.
func GenerateUserPerformanceCSV(db *gorm.DB, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	var stats []userStat
	err := db.Model(&models.User{}).
		Select("users.id, users.full_name, users.email, COUNT(scores.id) AS attempts, AVG(scores.total_score) AS avg_score, MAX(scores.total_score) AS max_score").
		Joins("LEFT JOIN scores ON scores.user_id = users.id AND scores.deleted_at IS NULL").
		Group("users.id, users.full_name, users.email").
		Order("users.id").
		Scan(&stats).Error
	if err != nil {
		return "", err
	}

	filename := fmt.Sprintf("user_performance_%s.csv", time.Now().Format("20060102150405"))
	path := filepath.Join(dir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"USER ID", "FULL NAME", "EMAIL", "TOTAL ATTEMPTS", "AVG SCORE", "MAX SCORE"}); err != nil {
		return "", err
	}

	for _, s := range stats {
		avg := 0.0
		if s.AvgScore != nil {
			avg = *s.AvgScore
		}
		max := 0
		if s.MaxScore != nil {
			max = *s.MaxScore
		}
		record := []string{
			strconv.FormatUint(uint64(s.ID), 10),
			s.FullName,
			s.Email,
			strconv.FormatInt(s.Attempts, 10),
			strconv.FormatFloat(avg, 'f', -1, 64),
			strconv.Itoa(max),
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	return filepath.ToSlash(path), nil
}
