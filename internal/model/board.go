package model

import "time"

// Board is a Kanban workspace owned by one user and shared with collaborators.
type Board struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"size:255;not null"`
	OwnerID   uint      `json:"owner_id" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Owner         *User    `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Collaborators []User   `json:"collaborators,omitempty" gorm:"many2many:board_users;joinForeignKey:BoardID;joinReferences:UserID"`
	Columns       []Column `json:"columns,omitempty" gorm:"foreignKey:BoardID"`
}
