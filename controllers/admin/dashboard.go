package adminController

import (
	"fmt"
	"log"
	"strings"
	"time"

	"quizmaster/models"

	"github.com/gofiber/fiber/v2"
)

const (
	summaryCacheKey   = "admin:summary"
	chartDataCacheKey = "admin:chart-data"
	aggregateCacheTTL = 60 * time.Second
)

// invalidateAggregates drops the cached dashboard aggregates after a write.
func (ctrl *Controller) invalidateAggregates() {
	if ctrl.Cache == nil {
		return
	}
	if err := ctrl.Cache.Delete(summaryCacheKey, chartDataCacheKey); err != nil {
		log.Printf("[CACHE] failed to invalidate aggregates: %v", err)
	}
}

type summaryData struct {
	Subjects int64 `json:"subjects"`
	Quizzes  int64 `json:"quizzes"`
	Users    int64 `json:"users"`
}

func (ctrl *Controller) Summary(c *fiber.Ctx) error {
	if ctrl.Cache != nil {
		var cached summaryData
		if found, err := ctrl.Cache.GetJSON(summaryCacheKey, &cached); err == nil && found {
			return c.Status(fiber.StatusOK).JSON(cached)
		}
	}

	var data summaryData
	ctrl.DB.Model(&models.Subject{}).Count(&data.Subjects)
	ctrl.DB.Model(&models.Quiz{}).Count(&data.Quizzes)
	ctrl.DB.Model(&models.User{}).Count(&data.Users)

	if ctrl.Cache != nil {
		if err := ctrl.Cache.SetJSON(summaryCacheKey, data, aggregateCacheTTL); err != nil {
			log.Printf("[CACHE] failed to store summary: %v", err)
		}
	}
	return c.Status(fiber.StatusOK).JSON(data)
}

type chartData struct {
	QuizData  []quizAttempts `json:"quizData"`
	ScoreData [4]int         `json:"scoreData"` // 0-30, 30-60, 60-90, 90-100
}

type quizAttempts struct {
	QuizName string `json:"quiz_name"`
	Attempts int64  `json:"attempts"`
}

func (ctrl *Controller) ChartData(c *fiber.Ctx) error {
	if ctrl.Cache != nil {
		var cached chartData
		if found, err := ctrl.Cache.GetJSON(chartDataCacheKey, &cached); err == nil && found {
			return c.Status(fiber.StatusOK).JSON(cached)
		}
	}

	// Top 5 quizzes by attempts
	var stats []struct {
		ID       uint
		Remarks  string
		Attempts int64
	}
	err := ctrl.DB.Model(&models.Quiz{}).
		Select("quizzes.id, quizzes.remarks, COUNT(results.id) AS attempts").
		Joins("JOIN results ON results.quiz_id = quizzes.id AND results.deleted_at IS NULL").
		Group("quizzes.id, quizzes.remarks").
		Order("attempts DESC").
		Limit(5).
		Scan(&stats).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error fetching chart data", "error": err.Error()})
	}

	data := chartData{QuizData: make([]quizAttempts, 0, len(stats))}
	for _, s := range stats {
		name := s.Remarks
		if name == "" {
			name = fmt.Sprintf("Quiz %d", s.ID)
		}
		data.QuizData = append(data.QuizData, quizAttempts{QuizName: name, Attempts: s.Attempts})
	}

	// Score distribution
	var scores []float64
	if err := ctrl.DB.Model(&models.Result{}).Pluck("score", &scores).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error fetching chart data", "error": err.Error()})
	}
	for _, s := range scores {
		switch {
		case s < 30:
			data.ScoreData[0]++
		case s < 60:
			data.ScoreData[1]++
		case s < 90:
			data.ScoreData[2]++
		default:
			data.ScoreData[3]++
		}
	}

	if ctrl.Cache != nil {
		if err := ctrl.Cache.SetJSON(chartDataCacheKey, data, aggregateCacheTTL); err != nil {
			log.Printf("[CACHE] failed to store chart data: %v", err)
		}
	}
	return c.Status(fiber.StatusOK).JSON(data)
}

func (ctrl *Controller) ListUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := ctrl.DB.Find(&users).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error fetching users"})
	}

	out := make([]fiber.Map, 0, len(users))
	for _, u := range users {
		out = append(out, fiber.Map{
			"id":       u.ID,
			"username": u.Email,
			"fullname": u.FullName,
			"email":    u.Email,
		})
	}
	return c.Status(fiber.StatusOK).JSON(out)
}

func (ctrl *Controller) Search(c *fiber.Ctx) error {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"users": []fiber.Map{}, "quizzes": []fiber.Map{}, "subjects": []fiber.Map{}, "chapters": []fiber.Map{},
		})
	}
	pattern := "%" + strings.ToLower(query) + "%"

	var users []models.User
	ctrl.DB.Where("LOWER(full_name) LIKE ?", pattern).Find(&users)
	var quizzes []models.Quiz
	ctrl.DB.Where("LOWER(remarks) LIKE ?", pattern).Find(&quizzes)
	var subjects []models.Subject
	ctrl.DB.Where("LOWER(name) LIKE ?", pattern).Find(&subjects)
	var chapters []models.Chapter
	ctrl.DB.Where("LOWER(name) LIKE ?", pattern).Find(&chapters)

	userOut := make([]fiber.Map, 0, len(users))
	for _, u := range users {
		userOut = append(userOut, fiber.Map{"id": u.ID, "username": u.Email, "fullname": u.FullName})
	}
	quizOut := make([]fiber.Map, 0, len(quizzes))
	for _, q := range quizzes {
		quizOut = append(quizOut, fiber.Map{"id": q.ID, "name": q.Remarks})
	}
	subjectOut := make([]fiber.Map, 0, len(subjects))
	for _, s := range subjects {
		subjectOut = append(subjectOut, fiber.Map{"id": s.ID, "name": s.Name})
	}
	chapterOut := make([]fiber.Map, 0, len(chapters))
	for _, ch := range chapters {
		chapterOut = append(chapterOut, fiber.Map{"id": ch.ID, "name": ch.Name})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"users":    userOut,
		"quizzes":  quizOut,
		"subjects": subjectOut,
		"chapters": chapterOut,
	})
}
