package model

import "time"

// Comment is authored on a task. UserID is always set from the authenticated
// session, never from client input.
type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	TaskID    uint      `json:"task_id" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Task *Task `json:"task,omitempty" gorm:"foreignKey:TaskID"`
}
