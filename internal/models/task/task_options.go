package task

import (
	"time"
)

// TaskOption — функция частичного обновления задачи.
// Обработчик собирает список опций из непустых полей запроса,
// менеджер применяет их к копии задачи и проверяет результат.
type TaskOption func(*Task)

func WithTitle(title string) TaskOption {
	return func(t *Task) {
		t.Title = title
	}
}

func WithNotes(notes string) TaskOption {
	return func(t *Task) {
		t.Notes = notes
	}
}

func WithTags(tags []string) TaskOption {
	return func(t *Task) {
		if tags == nil {
			tags = []string{}
		}
		t.Tags = tags
	}
}

func WithCategory(category Category) TaskOption {
	return func(t *Task) {
		t.Category = category
	}
}

func WithPriority(priority Priority) TaskOption {
	return func(t *Task) {
		t.Priority = priority
	}
}

func WithStatus(status Status) TaskOption {
	return func(t *Task) {
		t.Status = status
	}
}

func WithDueDate(dueDate *time.Time) TaskOption {
	return func(t *Task) {
		t.DueDate = dueDate
	}
}

func WithRecurrence(recurrence Recurrence) TaskOption {
	return func(t *Task) {
		t.Recurrence = recurrence
	}
}

func WithRecurrenceInterval(interval *string) TaskOption {
	return func(t *Task) {
		t.RecurrenceInterval = interval
	}
}

func WithCompleted(completed bool) TaskOption {
	return func(t *Task) {
		t.Completed = completed
	}
}

func WithReminderTime(reminderTime *time.Time) TaskOption {
	return func(t *Task) {
		t.ReminderTime = reminderTime
	}
}

func WithReminderEnabled(enabled bool) TaskOption {
	return func(t *Task) {
		t.ReminderEnabled = enabled
	}
}

func WithAttachment(attachment *Attachment) TaskOption {
	return func(t *Task) {
		t.Attachment = attachment
	}
}

func WithLinks(links []Link) TaskOption {
	return func(t *Task) {
		t.Links = links
	}
}

// AddTimeSpent накапливает секунды таймера, счётчик только растёт
func AddTimeSpent(seconds int64) TaskOption {
	return func(t *Task) {
		if seconds > 0 {
			t.TimeSpent += seconds
		}
	}
}

// AddXP начисляет очки геймификации
func AddXP(points int64) TaskOption {
	return func(t *Task) {
		if points > 0 {
			t.XPEarned += points
		}
	}
}
