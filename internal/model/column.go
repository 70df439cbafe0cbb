package model

import "time"

// Column is an ordered stage within a board containing tasks.
type Column struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Name       string    `json:"name" gorm:"size:255;not null"`
	BoardID    uint      `json:"board_id" gorm:"not null;index"`
	OrderIndex int       `json:"order_index" gorm:"not null;default:0"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Board *Board `json:"board,omitempty" gorm:"foreignKey:BoardID"`
	Tasks []Task `json:"tasks,omitempty" gorm:"foreignKey:ColumnID"`
}
