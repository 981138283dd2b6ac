package handlers

import (
	"time"

	"taskKeeper/internal/models/task"
	"taskKeeper/internal/service"
)

type CreateTaskRequest struct {
	Title              string           `json:"title"`
	Notes              string           `json:"notes"`
	Tags               []string         `json:"tags"`
	Category           task.Category    `json:"category"`
	Priority           task.Priority    `json:"priority"`
	DueDate            *time.Time       `json:"dueDate"`
	Recurrence         task.Recurrence  `json:"recurrence"`
	RecurrenceInterval *string          `json:"recurrenceInterval"`
	ReminderTime       *time.Time       `json:"reminderTime"`
	ReminderEnabled    bool             `json:"reminderEnabled"`
	Attachment         *task.Attachment `json:"attachment"`
	Links              []task.Link      `json:"links"`
}

func (r *CreateTaskRequest) ToInput() service.CreateTaskInput {
	recurrence := r.Recurrence
	if recurrence == "" {
		recurrence = task.RecurrenceNone
	}
	return service.CreateTaskInput{
		Title:              r.Title,
		Notes:              r.Notes,
		Tags:               r.Tags,
		Category:           r.Category,
		Priority:           r.Priority,
		DueDate:            r.DueDate,
		Recurrence:         recurrence,
		RecurrenceInterval: r.RecurrenceInterval,
		ReminderTime:       r.ReminderTime,
		ReminderEnabled:    r.ReminderEnabled,
		Attachment:         r.Attachment,
		Links:              r.Links,
	}
}

// UpdateTaskRequest — частичное обновление: учитываются только переданные поля
type UpdateTaskRequest struct {
	Title              *string          `json:"title,omitempty"`
	Notes              *string          `json:"notes,omitempty"`
	Tags               []string         `json:"tags,omitempty"`
	Category           *task.Category   `json:"category,omitempty"`
	Priority           *task.Priority   `json:"priority,omitempty"`
	Status             *task.Status     `json:"status,omitempty"`
	DueDate            *time.Time       `json:"dueDate,omitempty"`
	Recurrence         *task.Recurrence `json:"recurrence,omitempty"`
	RecurrenceInterval *string          `json:"recurrenceInterval,omitempty"`
	Completed          *bool            `json:"completed,omitempty"`
	ReminderTime       *time.Time       `json:"reminderTime,omitempty"`
	ReminderEnabled    *bool            `json:"reminderEnabled,omitempty"`
	Attachment         *task.Attachment `json:"attachment,omitempty"`
	Links              []task.Link      `json:"links,omitempty"`
}

// BuildOptions собирает опции обновления из непустых полей запроса
func (r *UpdateTaskRequest) BuildOptions() []task.TaskOption {
	var options []task.TaskOption

	if r.Title != nil {
		options = append(options, task.WithTitle(*r.Title))
	}
	if r.Notes != nil {
		options = append(options, task.WithNotes(*r.Notes))
	}
	if r.Tags != nil {
		options = append(options, task.WithTags(r.Tags))
	}
	if r.Category != nil {
		options = append(options, task.WithCategory(*r.Category))
	}
	if r.Priority != nil {
		options = append(options, task.WithPriority(*r.Priority))
	}
	if r.Status != nil {
		options = append(options, task.WithStatus(*r.Status))
	}
	if r.DueDate != nil {
		options = append(options, task.WithDueDate(r.DueDate))
	}
	if r.Recurrence != nil {
		options = append(options, task.WithRecurrence(*r.Recurrence))
	}
	if r.RecurrenceInterval != nil {
		options = append(options, task.WithRecurrenceInterval(r.RecurrenceInterval))
	}
	if r.Completed != nil {
		options = append(options, task.WithCompleted(*r.Completed))
	}
	if r.ReminderTime != nil {
		options = append(options, task.WithReminderTime(r.ReminderTime))
	}
	if r.ReminderEnabled != nil {
		options = append(options, task.WithReminderEnabled(*r.ReminderEnabled))
	}
	if r.Attachment != nil {
		options = append(options, task.WithAttachment(r.Attachment))
	}
	if r.Links != nil {
		options = append(options, task.WithLinks(r.Links))
	}

	return options
}

type AddTimeRequest struct {
	Seconds int64 `json:"seconds"`
}

type AwardXPRequest struct {
	Points int64 `json:"points"`
}
