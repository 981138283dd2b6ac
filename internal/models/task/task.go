package task

import (
	"time"
)

type Category string
type Priority string
type Status string
type Recurrence string

const CategoryWork Category = "work"
const CategoryPersonal Category = "personal"
const CategoryStudy Category = "study"
const CategoryShopping Category = "shopping"
const CategoryHealth Category = "health"
const CategoryOther Category = "other"

const PriorityLow Priority = "low"
const PriorityMedium Priority = "medium"
const PriorityHigh Priority = "high"

const StatusTodo Status = "todo"
const StatusInProgress Status = "in_progress"
const StatusDone Status = "done"

const RecurrenceNone Recurrence = "none"
const RecurrenceDaily Recurrence = "daily"
const RecurrenceWeekly Recurrence = "weekly"
const RecurrenceMonthly Recurrence = "monthly"
const RecurrenceCustom Recurrence = "custom"

// MaxTitleLen — максимальная длина названия задачи
const MaxTitleLen = 100

func (c Category) Valid() bool {
	switch c {
	case CategoryWork, CategoryPersonal, CategoryStudy, CategoryShopping, CategoryHealth, CategoryOther:
		return true
	}
	return false
}

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

func (r Recurrence) Valid() bool {
	switch r {
	case RecurrenceNone, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly, RecurrenceCustom:
		return true
	}
	return false
}

type Attachment struct {
	URL  string `json:"url"`
	Name string `json:"name"`
}

type Link struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}

type Task struct {
	ID                 int64       `json:"id"`
	Title              string      `json:"title"`
	Notes              string      `json:"notes,omitempty"`
	Tags               []string    `json:"tags"`
	Category           Category    `json:"category"`
	Priority           Priority    `json:"priority"`
	Status             Status      `json:"status"`
	Recurrence         Recurrence  `json:"recurrence"`
	RecurrenceInterval *string     `json:"recurrenceInterval"`
	Completed          bool        `json:"completed"`
	CreatedAt          time.Time   `json:"createdAt"`
	DueDate            *time.Time  `json:"dueDate"`
	LastCompleted      *time.Time  `json:"lastCompleted"`
	NextDue            *time.Time  `json:"nextDue"`
	ReminderTime       *time.Time  `json:"reminderTime,omitempty"`
	ReminderEnabled    bool        `json:"reminderEnabled"`
	TimeSpent          int64       `json:"timeSpent"`
	XPEarned           int64       `json:"xpEarned"`
	Attachment         *Attachment `json:"attachment"`
	Links              []Link      `json:"links,omitempty"`
}

// DeletedTask — задача в корзине: все поля Task плюс момент удаления
type DeletedTask struct {
	Task
	DeletedAt time.Time `json:"deletedAt"`
}

// Clone возвращает глубокую копию задачи.
// Наружу всегда отдаются копии — хранимое состояние меняется только через менеджер.
func (t *Task) Clone() *Task {
	if t == nil {
		return nil
	}

	clone := *t

	if t.Tags != nil {
		clone.Tags = make([]string, len(t.Tags))
		copy(clone.Tags, t.Tags)
	}
	if t.Links != nil {
		clone.Links = make([]Link, len(t.Links))
		copy(clone.Links, t.Links)
	}
	clone.RecurrenceInterval = cloneStr(t.RecurrenceInterval)
	clone.DueDate = cloneTime(t.DueDate)
	clone.LastCompleted = cloneTime(t.LastCompleted)
	clone.NextDue = cloneTime(t.NextDue)
	clone.ReminderTime = cloneTime(t.ReminderTime)
	if t.Attachment != nil {
		att := *t.Attachment
		clone.Attachment = &att
	}

	return &clone
}

func (d *DeletedTask) Clone() *DeletedTask {
	if d == nil {
		return nil
	}
	return &DeletedTask{
		Task:      *d.Task.Clone(),
		DeletedAt: d.DeletedAt,
	}
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func cloneStr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
