package storage

import (
	"weft/internal/domain"
)

// runModelToDomain converts a TaskRunModel (GORM) to domain.TaskRun
func runModelToDomain(m TaskRunModel) domain.TaskRun {
	return domain.TaskRun{
		Command:     m.Command,
		DurationMs:  m.DurationMs,
		ExecutionID: m.ExecutionID,
		ExitCode:    m.ExitCode,
		ID:          m.ID,
		StartedAt:   m.StartedAt,
		TaskName:    m.TaskName,
		TimedOut:    m.TimedOut,
	}
}

// domainToRunModel converts a domain.TaskRun to TaskRunModel (GORM)
func domainToRunModel(r domain.TaskRun) TaskRunModel {
	return TaskRunModel{
		Command:     r.Command,
		DurationMs:  r.DurationMs,
		ExecutionID: r.ExecutionID,
		ExitCode:    r.ExitCode,
		ID:          r.ID,
		StartedAt:   r.StartedAt,
		TaskName:    r.TaskName,
		TimedOut:    r.TimedOut,
	}
}
