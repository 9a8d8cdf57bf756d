package adminController

import (
	"errors"
	"path/filepath"
	"strings"

	"quizmaster/jobs"

	"github.com/gofiber/fiber/v2"
)

// ExportUsersCSV submits the CSV report job and returns its task handle
// immediately; the caller polls Download with it.
func (ctrl *Controller) ExportUsersCSV(c *fiber.Ctx) error {
	taskID, err := ctrl.Jobs.EnqueueExportUsersCSV()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to start export", "error": err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"task_id": taskID})
}

// Download maps task state to {pending status} / file stream / FAILURE.
func (ctrl *Controller) Download(c *fiber.Ctx) error {
	taskID := c.Params("task_id")

	status, err := ctrl.Jobs.TaskStatus(taskID)
	if err != nil {
		if errors.Is(err, jobs.ErrTaskNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Task not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error checking task", "error": err.Error()})
	}

	switch {
	case status.Result != nil && status.Result.Status == jobs.StatusCompleted && status.Result.URL != "":
		filename := filepath.Base(status.Result.URL)
		return c.Download(filepath.Join(ctrl.ExportsDir, filename), filename)

	case status.Result != nil && status.Result.Status == jobs.StatusFailed:
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "FAILURE", "message": status.Result.Error})

	case status.State == "archived":
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "FAILURE", "message": "task failed"})

	default:
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": strings.ToUpper(status.State)})
	}
}
