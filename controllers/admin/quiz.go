package adminController

import (
	"strings"
	"time"

	"quizmaster/models"

	"github.com/gofiber/fiber/v2"
)

func (ctrl *Controller) ListQuizzes(c *fiber.Ctx) error {
	var quizzes []models.Quiz
	if err := ctrl.DB.Find(&quizzes).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error managing quiz"})
	}

	out := make([]fiber.Map, 0, len(quizzes))
	for _, q := range quizzes {
		var chapterName, subjectName *string
		var chapter models.Chapter
		if err := ctrl.DB.First(&chapter, q.ChapterID).Error; err == nil {
			chapterName = &chapter.Name
		}
		var subject models.Subject
		if err := ctrl.DB.First(&subject, q.SubjectID).Error; err == nil {
			subjectName = &subject.Name
		}

		out = append(out, fiber.Map{
			"id":               q.ID,
			"chapterid":        q.ChapterID,
			"chapter_name":     chapterName,
			"subjectid":        q.SubjectID,
			"subject_name":     subjectName,
			"date_of_quiz":     q.DateOfQuiz.Format("2006-01-02"),
			"duration_of_quiz": q.DurationOfQuiz,
			"remarks":          q.Remarks,
		})
	}
	return c.Status(fiber.StatusOK).JSON(out)
}

func (ctrl *Controller) CreateQuiz(c *fiber.Ctx) error {
	reqData := new(struct {
		ChapterID      uint   `json:"chapterid"`
		SubjectID      uint   `json:"subjectid"`
		DateOfQuiz     string `json:"date_of_quiz"`
		DurationOfQuiz int    `json:"duration_of_quiz"` // minutes
		Remarks        string `json:"remarks"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid date or duration format", "error": err.Error()})
	}

	var missing []string
	if reqData.ChapterID == 0 {
		missing = append(missing, "chapterid")
	}
	if reqData.SubjectID == 0 {
		missing = append(missing, "subjectid")
	}
	if reqData.DateOfQuiz == "" {
		missing = append(missing, "date_of_quiz")
	}
	if reqData.DurationOfQuiz == 0 {
		missing = append(missing, "duration_of_quiz")
	}
	if len(missing) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Missing fields: " + strings.Join(missing, ", ")})
	}

	var chapter models.Chapter
	var subject models.Subject
	if ctrl.DB.First(&chapter, reqData.ChapterID).Error != nil ||
		ctrl.DB.First(&subject, reqData.SubjectID).Error != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Chapter or Subject not found"})
	}

	date, err := time.ParseInLocation("2006-01-02", reqData.DateOfQuiz, models.IST)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid date or duration format", "error": err.Error()})
	}

	quiz := models.Quiz{
		ChapterID:             reqData.ChapterID,
		ChapterNameSearchTerm: strings.ToLower(chapter.Name),
		SubjectID:             reqData.SubjectID,
		SubjectNameSearchTerm: strings.ToLower(subject.Name),
		DateOfQuiz:            date,
		DurationOfQuiz:        reqData.DurationOfQuiz,
		Remarks:               reqData.Remarks,
	}
	if err := ctrl.DB.Create(&quiz).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error managing quiz", "error": err.Error()})
	}

	ctrl.invalidateAggregates()
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Quiz operation successful"})
}

func (ctrl *Controller) UpdateQuiz(c *fiber.Ctx) error {
	reqData := new(struct {
		ID             uint   `json:"id"`
		DateOfQuiz     string `json:"date_of_quiz"`
		DurationOfQuiz int    `json:"duration_of_quiz"`
		Remarks        string `json:"remarks"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "No data provided"})
	}
	if reqData.ID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "ID is required for update"})
	}

	var quiz models.Quiz
	if err := ctrl.DB.First(&quiz, reqData.ID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Quiz not found"})
	}

	if reqData.Remarks != "" {
		quiz.Remarks = reqData.Remarks
	}
	if reqData.DateOfQuiz != "" {
		date, err := time.ParseInLocation("2006-01-02", reqData.DateOfQuiz, models.IST)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid date or duration format", "error": err.Error()})
		}
		quiz.DateOfQuiz = date
	}
	if reqData.DurationOfQuiz != 0 {
		quiz.DurationOfQuiz = reqData.DurationOfQuiz
	}

	if err := ctrl.DB.Save(&quiz).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error managing quiz", "error": err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Quiz operation successful"})
}

func (ctrl *Controller) DeleteQuiz(c *fiber.Ctx) error {
	reqData := new(struct {
		ID uint `json:"id"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "No data provided"})
	}
	if reqData.ID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "ID is required for deletion"})
	}

	var quiz models.Quiz
	if err := ctrl.DB.First(&quiz, reqData.ID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Quiz not found"})
	}

	if err := ctrl.DB.Unscoped().Delete(&quiz).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error managing quiz", "error": err.Error()})
	}

	ctrl.invalidateAggregates()
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Quiz operation successful"})
}
