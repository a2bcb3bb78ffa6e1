package storage

import "time"

// TaskRunModel is the GORM model for the task_runs table
type TaskRunModel struct {
	Command     string    `gorm:"not null;default:''"`
	CreatedAt   time.Time
	DurationMs  int64     `gorm:"not null;default:0"`
	ExecutionID string    `gorm:"not null;index:idx_execution_id"`
	ExitCode    int       `gorm:"not null;default:0"`
	ID          string    `gorm:"primaryKey"`
	StartedAt   time.Time `gorm:"not null;index:idx_started_at"`
	TaskName    string    `gorm:"not null;index:idx_task_name"`
	TimedOut    bool      `gorm:"not null;default:false"`
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (TaskRunModel) TableName() string { return "task_runs" }
