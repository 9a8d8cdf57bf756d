package adminController

import (
	"strings"

	"quizmaster/models"

	"github.com/gofiber/fiber/v2"
)

func (ctrl *Controller) ListQuestions(c *fiber.Ctx) error {
	quizID := c.Query("quiz_id")
	if quizID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "quiz_id is required in query params"})
	}

	var questions []models.Question
	if err := ctrl.DB.Where("quiz_id = ?", quizID).Find(&questions).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error managing question"})
	}

	out := make([]fiber.Map, 0, len(questions))
	for _, q := range questions {
		out = append(out, fiber.Map{
			"id":                 q.ID,
			"quiz_id":            q.QuizID,
			"question_statement": q.QuestionStatement,
			"option1":            q.Option1,
			"option2":            q.Option2,
			"option3":            q.Option3,
			"option4":            q.Option4,
			"correct_option_id":  q.CorrectOptionID,
		})
	}
	return c.Status(fiber.StatusOK).JSON(out)
}

type questionPayload struct {
	ID                uint   `json:"id"`
	QuizID            uint   `json:"quiz_id"`
	QuestionStatement string `json:"question_statement"`
	Option1           string `json:"option1"`
	Option2           string `json:"option2"`
	Option3           string `json:"option3"`
	Option4           string `json:"option4"`
	CorrectOptionID   int    `json:"correct_option_id"`
}

func (ctrl *Controller) CreateQuestion(c *fiber.Ctx) error {
	reqData := new(questionPayload)
	if err := c.BodyParser(reqData); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "No data provided"})
	}

	var missing []string
	for field, empty := range map[string]bool{
		"quiz_id":            reqData.QuizID == 0,
		"question_statement": reqData.QuestionStatement == "",
		"option1":            reqData.Option1 == "",
		"option2":            reqData.Option2 == "",
		"option3":            reqData.Option3 == "",
		"option4":            reqData.Option4 == "",
		"correct_option_id":  reqData.CorrectOptionID == 0,
	} {
		if empty {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Missing fields: " + strings.Join(missing, ", ")})
	}

	// correct_option_id must reference one of the four option slots
	if reqData.CorrectOptionID < 1 || reqData.CorrectOptionID > 4 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "correct_option_id must be between 1 and 4"})
	}

	if err := ctrl.DB.First(&models.Quiz{}, reqData.QuizID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Quiz not found"})
	}

	question := models.Question{
		QuizID:             reqData.QuizID,
		QuestionStatement:  reqData.QuestionStatement,
		QuestionSearchTerm: strings.ToLower(reqData.QuestionStatement),
		Option1:            reqData.Option1,
		Option2:            reqData.Option2,
		Option3:            reqData.Option3,
		Option4:            reqData.Option4,
		CorrectOptionID:    reqData.CorrectOptionID,
	}
	if err := ctrl.DB.Create(&question).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error managing question", "error": err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Question operation successful"})
}

func (ctrl *Controller) UpdateQuestion(c *fiber.Ctx) error {
	reqData := new(questionPayload)
	if err := c.BodyParser(reqData); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "No data provided"})
	}
	if reqData.ID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "ID is required for update"})
	}

	var question models.Question
	if err := ctrl.DB.First(&question, reqData.ID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Question not found"})
	}

	if reqData.QuestionStatement != "" {
		question.QuestionStatement = reqData.QuestionStatement
		question.QuestionSearchTerm = strings.ToLower(reqData.QuestionStatement)
	}
	if reqData.Option1 != "" {
		question.Option1 = reqData.Option1
	}
	if reqData.Option2 != "" {
		question.Option2 = reqData.Option2
	}
	if reqData.Option3 != "" {
		question.Option3 = reqData.Option3
	}
	if reqData.Option4 != "" {
		question.Option4 = reqData.Option4
	}
	if reqData.CorrectOptionID != 0 {
		if reqData.CorrectOptionID < 1 || reqData.CorrectOptionID > 4 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "correct_option_id must be between 1 and 4"})
		}
		question.CorrectOptionID = reqData.CorrectOptionID
	}

	if err := ctrl.DB.Save(&question).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error managing question", "error": err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Question operation successful"})
}

func (ctrl *Controller) DeleteQuestion(c *fiber.Ctx) error {
	reqData := new(struct {
		ID uint `json:"id"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "No data provided"})
	}
	if reqData.ID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "ID is required for deletion"})
	}

	var question models.Question
	if err := ctrl.DB.First(&question, reqData.ID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Question not found"})
	}

	if err := ctrl.DB.Unscoped().Delete(&question).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error managing question", "error": err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Question operation successful"})
}
