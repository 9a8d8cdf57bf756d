package quizController

import (
	"log"
	"time"

	"quizmaster/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Controller struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Controller {
	return &Controller{DB: db}
}

func (ctrl *Controller) Subjects(c *fiber.Ctx) error {
	var subjects []models.Subject
	if err := ctrl.DB.Find(&subjects).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error fetching subjects"})
	}

	out := make([]fiber.Map, 0, len(subjects))
	for _, s := range subjects {
		out = append(out, fiber.Map{"id": s.ID, "name": s.Name, "description": s.Description})
	}
	return c.Status(fiber.StatusOK).JSON(out)
}

func (ctrl *Controller) QuizzesBySubject(c *fiber.Ctx) error {
	subjectID, err := c.ParamsInt("subject_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid subject id"})
	}

	var quizzes []models.Quiz
	if err := ctrl.DB.Where("subject_id = ?", subjectID).Find(&quizzes).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error fetching quizzes"})
	}

	out := make([]fiber.Map, 0, len(quizzes))
	for _, q := range quizzes {
		out = append(out, fiber.Map{
			"id":               q.ID,
			"chapterid":        q.ChapterID,
			"subjectid":        q.SubjectID,
			"date_of_quiz":     q.DateOfQuiz.Format("2006-01-02"),
			"duration_of_quiz": q.DurationOfQuiz,
			"remarks":          q.Remarks,
		})
	}
	return c.Status(fiber.StatusOK).JSON(out)
}

func (ctrl *Controller) QuizQuestions(c *fiber.Ctx) error {
	quizID, err := c.ParamsInt("quiz_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid quiz id"})
	}

	var quiz models.Quiz
	if err := ctrl.DB.First(&quiz, quizID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Quiz not found"})
	}

	var questions []models.Question
	if err := ctrl.DB.Where("quiz_id = ?", quizID).Find(&questions).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error fetching questions"})
	}

	out := make([]fiber.Map, 0, len(questions))
	for _, q := range questions {
		out = append(out, fiber.Map{
			"id":                 q.ID,
			"question_statement": q.QuestionStatement,
			"option1":            q.Option1,
			"option2":            q.Option2,
			"option3":            q.Option3,
			"option4":            q.Option4,
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"duration_of_quiz": quiz.DurationOfQuiz * 60, // seconds
		"questions":        out,
	})
}

// QuizDetail returns the quiz with its questions, but only on the quiz's
// scheduled calendar day (IST). Any other day is restricted, not not-found.
func (ctrl *Controller) QuizDetail(c *fiber.Ctx) error {
	quizID, err := c.ParamsInt("quiz_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid quiz id"})
	}

	var quiz models.Quiz
	if err := ctrl.DB.First(&quiz, quizID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Quiz not found"})
	}

	now := time.Now().In(models.IST)
	quizDate := quiz.DateOfQuiz.In(models.IST)
	if now.Year() != quizDate.Year() || now.YearDay() != quizDate.YearDay() {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "You can only attempt the quiz on its scheduled date.",
			"status":  "restricted",
		})
	}

	var questions []models.Question
	if err := ctrl.DB.Where("quiz_id = ?", quizID).Find(&questions).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error loading quiz"})
	}

	out := make([]fiber.Map, 0, len(questions))
	for _, q := range questions {
		out = append(out, fiber.Map{
			"id":       q.ID,
			"question": q.QuestionStatement,
			"options":  []string{q.Option1, q.Option2, q.Option3, q.Option4},
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"id":        quiz.ID,
		"name":      quiz.Remarks,
		"date":      quiz.DateOfQuiz.Format("2006-01-02"),
		"duration":  quiz.DurationOfQuiz * 60, // seconds
		"questions": out,
	})
}

// Submit scores a submission and persists the attempt. The per-question
// responses, the Result and the Score are created in one transaction; any
// failure rolls the whole attempt back.
func (ctrl *Controller) Submit(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
	}

	var user models.User
	if err := ctrl.DB.First(&user, userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "User not found"})
	}

	quizID, err := c.ParamsInt("quiz_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid quiz id"})
	}

	answers, ok := c.Locals("validatedAnswers").(map[string]int)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "No data provided"})
	}

	var questions []models.Question
	if err := ctrl.DB.Where("quiz_id = ?", quizID).Find(&questions).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error submitting quiz"})
	}
	if len(questions) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Quiz not found or has no questions"})
	}

	ev := EvaluateSubmission(userID, uint(quizID), questions, answers)
	now := time.Now().In(models.IST)

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&ev.Responses).Error; err != nil {
			return err
		}

		result := models.Result{
			UserID:         userID,
			QuizID:         uint(quizID),
			Score:          ev.Score,
			CorrectAnswers: ev.Correct,
			TotalQuestions: len(questions),
			AttemptedOn:    now,
		}
		if err := tx.Create(&result).Error; err != nil {
			return err
		}

		score := models.Score{
			QuizID:             uint(quizID),
			UserID:             userID,
			TimestampOfAttempt: now,
			Correct:            ev.Correct,
			Wrong:              ev.Wrong,
			Unattempted:        ev.Unattempted,
			TotalScore:         int(ev.Score),
			Status:             "completed",
		}
		return tx.Create(&score).Error
	})
	if err != nil {
		log.Printf("Error submitting quiz %d for user %d: %v", quizID, userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error submitting quiz", "error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Quiz submitted successfully",
		"score":   ev.Score,
	})
}

func (ctrl *Controller) Results(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
	}

	var results []models.Result
	if err := ctrl.DB.Where("user_id = ?", userID).Find(&results).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error fetching results"})
	}

	out := make([]fiber.Map, 0, len(results))
	for _, r := range results {
		out = append(out, fiber.Map{
			"quiz_id":         r.QuizID,
			"score":           r.Score,
			"correct_answers": r.CorrectAnswers,
			"total_questions": r.TotalQuestions,
			"attempted_on":    r.AttemptedOn.Format("2006-01-02 15:04:05"),
		})
	}
	return c.Status(fiber.StatusOK).JSON(out)
}
