package adminController

import (
	"strings"

	"quizmaster/models"

	"github.com/gofiber/fiber/v2"
)

func (ctrl *Controller) ListSubjects(c *fiber.Ctx) error {
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

func (ctrl *Controller) CreateSubject(c *fiber.Ctx) error {
	reqData := new(struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "No data provided"})
	}
	if reqData.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Subject name is required"})
	}

	if err := ctrl.DB.Where("name = ?", reqData.Name).First(&models.Subject{}).Error; err == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "Subject already exists"})
	}

	subject := models.Subject{
		Name:           reqData.Name,
		NameSearchTerm: strings.ToLower(reqData.Name),
		Description:    reqData.Description,
	}
	if err := ctrl.DB.Create(&subject).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error managing subject", "error": err.Error()})
	}

	ctrl.invalidateAggregates()
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Subject created successfully"})
}

func (ctrl *Controller) UpdateSubject(c *fiber.Ctx) error {
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

	var subject models.Subject
	if err := ctrl.DB.First(&subject, reqData.ID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Subject not found"})
	}

	if reqData.Name != "" {
		subject.Name = reqData.Name
		subject.NameSearchTerm = strings.ToLower(reqData.Name)
	}
	if reqData.Description != "" {
		subject.Description = reqData.Description
	}

	if err := ctrl.DB.Save(&subject).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error managing subject", "error": err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Subject updated successfully"})
}

func (ctrl *Controller) DeleteSubject(c *fiber.Ctx) error {
	reqData := new(struct {
		ID uint `json:"id"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "No data provided"})
	}
	if reqData.ID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "ID is required for deletion"})
	}

	var subject models.Subject
	if err := ctrl.DB.First(&subject, reqData.ID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Subject not found"})
	}

	// Hard delete so the FK cascades remove dependent chapters/quizzes.
	if err := ctrl.DB.Unscoped().Delete(&subject).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error managing subject", "error": err.Error()})
	}

	ctrl.invalidateAggregates()
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Subject deleted successfully"})
}
