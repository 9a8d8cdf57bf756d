package adminController

import (
	"quizmaster/cache"
	"quizmaster/jobs"

	"gorm.io/gorm"
)

// Controller carries the admin handlers' dependencies: the datastore, the
// aggregate cache and the task queue.
type Controller struct {
	DB         *gorm.DB
	Cache      *cache.Client
	Jobs       *jobs.Manager
	ExportsDir string
}

func New(db *gorm.DB, cacheClient *cache.Client, manager *jobs.Manager, exportsDir string) *Controller {
	return &Controller{DB: db, Cache: cacheClient, Jobs: manager, ExportsDir: exportsDir}
}
