package model

import "time"

// Record represents a single logged task.
type Record struct {
	ID           string    `json:"id" yaml:"id"`
	EmployeeName string    `json:"employee_name" yaml:"employee_name"`
	TaskName     string    `json:"task_name" yaml:"task_name"`
	MinutesSpent int       `json:"minutes_spent" yaml:"minutes_spent"`
	TaskDate     Date      `json:"task_date" yaml:"task_date"`
	Notes        string    `json:"notes" yaml:"notes"`
	CreatedAt    time.Time `json:"created_at" yaml:"created_at"`
}

// Fields holds the user-supplied part of a Record, before the store assigns
// an ID and creation time.
type Fields struct {
	EmployeeName string
	TaskName     string
	MinutesSpent int
	TaskDate     Date
	Notes        string
}

// Fields returns the user-supplied part of r.
func (r Record) Fields() Fields {
	return Fields{
		EmployeeName: r.EmployeeName,
		TaskName:     r.TaskName,
		MinutesSpent: r.MinutesSpent,
		TaskDate:     r.TaskDate,
		Notes:        r.Notes,
	}
}

// Validate checks the invariants every stored record must satisfy.
func (f Fields) Validate() error {
	if _, err := RequireText(FieldEmployee, f.EmployeeName); err != nil {
		return err
	}
	if _, err := RequireText(FieldTask, f.TaskName); err != nil {
		return err
	}
	if f.MinutesSpent < 0 {
		return &ValidationError{Field: FieldMinutes, Reason: "must not be negative"}
	}
	if f.TaskDate.IsZero() {
		return &ValidationError{Field: FieldDate, Reason: "is required"}
	}
	return nil
}
