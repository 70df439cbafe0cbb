package model

// BoardUser links a collaborator to a board. The composite unique index is
// the backstop for concurrent duplicate inserts; the service layer still
// pre-checks the pair so the API can answer with a deterministic conflict.
type BoardUser struct {
	ID      uint `json:"id" gorm:"primaryKey"`
	UserID  uint `json:"user_id" gorm:"not null;uniqueIndex:idx_board_users_pair"`
	BoardID uint `json:"board_id" gorm:"not null;uniqueIndex:idx_board_users_pair"`
}

// TableName keeps the join table shared with Board.Collaborators.
func (BoardUser) TableName() string {
	return "board_users"
}
