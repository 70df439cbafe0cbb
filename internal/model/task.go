package model

import "time"

// Task priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Task is a unit of work within a column, optionally assigned to a user.
type Task struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"size:150;not null"`
	Description string    `json:"description" gorm:"type:text"`
	ColumnID    uint      `json:"column_id" gorm:"not null;index"`
	AssigneeID  *uint     `json:"assignee_id" gorm:"index"`
	Priority    string    `json:"priority" gorm:"size:10;not null;default:'medium'"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Column   *Column `json:"column,omitempty" gorm:"foreignKey:ColumnID"`
	Assignee *User   `json:"assignee,omitempty" gorm:"foreignKey:AssigneeID"`
}
