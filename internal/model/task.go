package model

import (
	"time"

	"github.com/dukerupert/togethertracker/internal/recurrence"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
	TaskCancelled  TaskStatus = "cancelled"
)

type Task struct {
	ID               string          `json:"id"`
	HouseholdID      string          `json:"household_id"`
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	Priority         Priority        `json:"priority"`
	Status           TaskStatus      `json:"status"`
	AssignedTo       string          `json:"assigned_to"`
	CreatedBy        string          `json:"created_by"`
	DueAt            time.Time       `json:"due_at"`
	EstimatedMinutes int             `json:"estimated_minutes"`
	Points           int             `json:"points"`
	Category         string          `json:"category"`
	Recurrence       recurrence.Rule `json:"recurrence"`
	Location         string          `json:"location,omitempty"`
	Attachments      []string        `json:"attachments,omitempty"`
	ParentTaskID     string          `json:"parent_task_id,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	CompletedAt      *time.Time      `json:"completed_at,omitempty"`
}
