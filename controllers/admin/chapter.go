package adminController

import (
	"strings"

	"quizmaster/models"

	"github.com/gofiber/fiber/v2"
)

func (ctrl *Controller) ListChapters(c *fiber.Ctx) error {
	var chapters []models.Chapter
	if err := ctrl.DB.Find(&chapters).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error managing chapter"})
	}

	out := make([]fiber.Map, 0, len(chapters))
	for _, ch := range chapters {
		out = append(out, fiber.Map{
			"id":          ch.ID,
			"name":        ch.Name,
			"description": ch.Description,
			"subjectid":   ch.SubjectID,
		})
	}
	return c.Status(fiber.StatusOK).JSON(out)
}

func (ctrl *Controller) CreateChapter(c *fiber.Ctx) error {
	reqData := new(struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		SubjectID   uint   `json:"subjectid"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "No data provided"})
	}

	var missing []string
	if reqData.Name == "" {
		missing = append(missing, "name")
	}
	if reqData.SubjectID == 0 {
		missing = append(missing, "subjectid")
	}
	if len(missing) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Missing fields: " + strings.Join(missing, ", ")})
	}

	chapter := models.Chapter{
		Name:           reqData.Name,
		NameSearchTerm: strings.ToLower(reqData.Name),
		Description:    reqData.Description,
		SubjectID:      reqData.SubjectID,
	}
	if err := ctrl.DB.Create(&chapter).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error managing chapter", "error": err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Chapter operation successful"})
}

func (ctrl *Controller) UpdateChapter(c *fiber.Ctx) error {
	reqData := new(struct {
		ID          uint   `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "No data provided"})
	}
	if reqData.ID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "ID is required for update"})
	}

	var chapter models.Chapter
	if err := ctrl.DB.First(&chapter, reqData.ID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Chapter not found"})
	}

	if reqData.Name != "" {
		chapter.Name = reqData.Name
		chapter.NameSearchTerm = strings.ToLower(reqData.Name)
	}
	if reqData.Description != "" {
		chapter.Description = reqData.Description
	}

	if err := ctrl.DB.Save(&chapter).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error managing chapter", "error": err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Chapter operation successful"})
}

func (ctrl *Controller) DeleteChapter(c *fiber.Ctx) error {
	reqData := new(struct {
		ID uint `json:"id"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "No data provided"})
	}
	if reqData.ID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "ID is required for deletion"})
	}

	var chapter models.Chapter
	if err := ctrl.DB.First(&chapter, reqData.ID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Chapter not found"})
	}

	if err := ctrl.DB.Unscoped().Delete(&chapter).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error managing chapter", "error": err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Chapter operation successful"})
}
