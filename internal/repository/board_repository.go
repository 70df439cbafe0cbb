package repository

import (
	"context"

	"gorm.io/gorm"

	"taskboard/internal/model"
)

// BoardRepository defines board persistence operations, collaborator links
// included.
type BoardRepository interface {
	Create(ctx context.Context, board *model.Board) error
	Update(ctx context.Context, board *model.Board) error
	FindByID(ctx context.Context, id uint) (*model.Board, error)
	List(ctx context.Context) ([]model.Board, error)
	Delete(ctx context.Context, id uint) error

	CreateCollaborator(ctx context.Context, link *model.BoardUser) error
	FindCollaborator(ctx context.Context, boardID, userID uint) (*model.BoardUser, error)
	DeleteCollaborator(ctx context.Context, boardID, userID uint) error
}

type boardRepository struct {
	db *gorm.DB
}

// NewBoardRepository builds a GORM-backed board repository.
func NewBoardRepository(db *gorm.DB) BoardRepository {
	return &boardRepository{db: db}
}

func (r *boardRepository) Create(ctx context.Context, board *model.Board) error {
	return r.db.WithContext(ctx).Create(board).Error
}

func (r *boardRepository) Update(ctx context.Context, board *model.Board) error {
	return r.db.WithContext(ctx).Save(board).Error
}

func (r *boardRepository) FindByID(ctx context.Context, id uint) (*model.Board, error) {
	var board model.Board
	err := r.db.WithContext(ctx).
		Preload("Owner").
		Preload("Collaborators").
		First(&board, id).Error
	if err != nil {
		return nil, err
	}
	return &board, nil
}

func (r *boardRepository) List(ctx context.Context) ([]model.Board, error) {
	var boards []model.Board
	err := r.db.WithContext(ctx).
		Preload("Owner").
		Preload("Collaborators").
		Find(&boards).Error
	if err != nil {
		return nil, err
	}
	return boards, nil
}

func (r *boardRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Board{}, id).Error
}

func (r *boardRepository) CreateCollaborator(ctx context.Context, link *model.BoardUser) error {
	return r.db.WithContext(ctx).Create(link).Error
}

func (r *boardRepository) FindCollaborator(ctx context.Context, boardID, userID uint) (*model.BoardUser, error) {
	var link model.BoardUser
	err := r.db.WithContext(ctx).
		Where("board_id = ? AND user_id = ?", boardID, userID).
		First(&link).Error
	if err != nil {
		return nil, err
	}
	return &link, nil
}

func (r *boardRepository) DeleteCollaborator(ctx context.Context, boardID, userID uint) error {
	return r.db.WithContext(ctx).
		Where("board_id = ? AND user_id = ?", boardID, userID).
		Delete(&model.BoardUser{}).Error
}
