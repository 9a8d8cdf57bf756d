package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"quizmaster/config"
	"quizmaster/utils"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

const (
	TypeExportUsersCSV = "report:export_users_csv"
	TypeDailyReminder  = "report:daily_reminder"
	TypeMonthlyReport  = "report:monthly_report"
)

const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Results stay readable through the inspector for this long after completion.
const resultRetention = 24 * time.Hour

var ErrTaskNotFound = errors.New("task not found")

// JobResult is the structured outcome every job writes instead of returning
// an error, so the queue never sees a business failure as an unhandled one.
type JobResult struct {
	Status   string           `json:"status"`
	Message  string           `json:"message,omitempty"`
	URL      string           `json:"url,omitempty"`
	Sent     int              `json:"sent,omitempty"`
	Failures []RecipientError `json:"failures,omitempty"`
	Error    string           `json:"error,omitempty"`
}

// RecipientError records a single swallowed per-recipient send failure.
type RecipientError struct {
	Email string `json:"email"`
	Error string `json:"error"`
}

// TaskStatus is what the polling endpoint sees for a task handle.
type TaskStatus struct {
	State  string
	Result *JobResult
}

// Manager owns the asynq client/worker pair and the cron schedule that feeds
// the notification jobs. Dependencies are passed in at construction time.
type Manager struct {
	client    *asynq.Client
	server    *asynq.Server
	mux       *asynq.ServeMux
	inspector *asynq.Inspector
	cron      *cron.Cron

	db         *gorm.DB
	mailer     utils.MailSender
	exportsDir string
}

func NewManager(db *gorm.DB, mailer utils.MailSender, cfg *config.Config) *Manager {
	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}

	server := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 5,
		Queues: map[string]int{
			"default": 1,
		},
		ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
			log.Printf("[JOBS] task failed: type=%s error=%v", task.Type(), err)
		}),
	})

	m := &Manager{
		client:     asynq.NewClient(redisOpt),
		server:     server,
		mux:        asynq.NewServeMux(),
		inspector:  asynq.NewInspector(redisOpt),
		db:         db,
		mailer:     mailer,
		exportsDir: cfg.ExportsDir,
	}

	m.mux.HandleFunc(TypeExportUsersCSV, m.handleExportUsersCSV)
	m.mux.HandleFunc(TypeDailyReminder, m.handleDailyReminder)
	m.mux.HandleFunc(TypeMonthlyReport, m.handleMonthlyReport)

	return m
}

// Start launches the worker pool and the cron schedule.
func (m *Manager) Start() error {
	log.Println("[JOBS] starting worker pool...")
	if err := m.server.Start(m.mux); err != nil {
		return err
	}
	m.startScheduler()
	return nil
}

func (m *Manager) Stop() {
	log.Println("[JOBS] stopping...")
	if m.cron != nil {
		m.cron.Stop()
	}
	m.server.Shutdown()
	m.client.Close()
	m.inspector.Close()
}

// enqueue submits a fire-and-forget task and returns its handle. Jobs report
// failures through their result, so the queue itself never retries them.
func (m *Manager) enqueue(taskType string) (string, error) {
	id := uuid.NewString()
	task := asynq.NewTask(taskType, nil)
	_, err := m.client.Enqueue(task,
		asynq.TaskID(id),
		asynq.Queue("default"),
		asynq.MaxRetry(0),
		asynq.Retention(resultRetention),
	)
	if err != nil {
		return "", fmt.Errorf("failed to enqueue %s: %w", taskType, err)
	}
	return id, nil
}

func (m *Manager) EnqueueExportUsersCSV() (string, error) { return m.enqueue(TypeExportUsersCSV) }
func (m *Manager) EnqueueDailyReminder() (string, error)  { return m.enqueue(TypeDailyReminder) }
func (m *Manager) EnqueueMonthlyReport() (string, error)  { return m.enqueue(TypeMonthlyReport) }

// TaskStatus resolves a task handle to its current state and, once the task
// has run, its structured result.
func (m *Manager) TaskStatus(id string) (*TaskStatus, error) {
	info, err := m.inspector.GetTaskInfo("default", id)
	if err != nil {
		if errors.Is(err, asynq.ErrTaskNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}

	status := &TaskStatus{State: info.State.String()}
	if len(info.Result) > 0 {
		var res JobResult
		if err := json.Unmarshal(info.Result, &res); err != nil {
			return nil, fmt.Errorf("malformed task result: %w", err)
		}
		status.Result = &res
	}
	return status, nil
}

// writeResult persists a job's structured outcome on the task itself.
func writeResult(t *asynq.Task, res JobResult) error {
	data, err := json.Marshal(res)
	if err != nil {
		return err
	}
	_, err = t.ResultWriter().Write(data)
	return err
}
