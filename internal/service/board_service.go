package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"taskboard/internal/cache"
	apperrors "taskboard/internal/errors"
	"taskboard/internal/model"
	"taskboard/internal/repository"
)

const boardCacheTTL = 5 * time.Minute

// BoardService exposes board and collaborator operations. Boards are returned
// with their owner and collaborators loaded.
type BoardService interface {
	GetBoard(ctx context.Context, id uint) (*model.Board, error)
	ListBoards(ctx context.Context) ([]model.Board, error)
	CreateBoard(ctx context.Context, title string, ownerID uint) (*model.Board, error)
	UpdateBoard(ctx context.Context, id uint, title string) (*model.Board, error)
	DeleteBoard(ctx context.Context, id uint) error

	AddCollaborator(ctx context.Context, boardID, userID uint) (*model.BoardUser, error)
	RemoveCollaborator(ctx context.Context, boardID, userID uint) error
}

type boardService struct {
	repo  repository.BoardRepository
	cache *cache.Client
}

// NewBoardService builds a BoardService with repository and cache.
func NewBoardService(repo repository.BoardRepository, cache *cache.Client) BoardService {
	return &boardService{repo: repo, cache: cache}
}

func (s *boardService) cacheKey(id uint) string {
	return fmt.Sprintf("board:%d", id)
}

// GetBoard returns the board or nil when absent.
func (s *boardService) GetBoard(ctx context.Context, id uint) (*model.Board, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Board
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	board, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if payload, err := json.Marshal(board); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, boardCacheTTL)
	}
	return board, nil
}

func (s *boardService) ListBoards(ctx context.Context) ([]model.Board, error) {
	return s.repo.List(ctx)
}

func (s *boardService) CreateBoard(ctx context.Context, title string, ownerID uint) (*model.Board, error) {
	board := &model.Board{
		Title:   title,
		OwnerID: ownerID,
	}
	if err := s.repo.Create(ctx, board); err != nil {
		return nil, err
	}
	return board, nil
}

// UpdateBoard renames the board. Returns nil when it does not exist.
func (s *boardService) UpdateBoard(ctx context.Context, id uint, title string) (*model.Board, error) {
	board, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	board.Title = title
	if err := s.repo.Update(ctx, board); err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return board, nil
}

// DeleteBoard hard-deletes the board row. Columns, tasks and comments under
// it are left in place; see the integrity note in DESIGN.md.
func (s *boardService) DeleteBoard(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}

// AddCollaborator links a user to a board. The pre-check answers the common
// duplicate with a conflict; a concurrent insert loses against the unique
// index and is mapped to the same conflict.
func (s *boardService) AddCollaborator(ctx context.Context, boardID, userID uint) (*model.BoardUser, error) {
	existing, err := s.repo.FindCollaborator(ctx, boardID, userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check collaborator: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrCollaboratorExists
	}

	link := &model.BoardUser{BoardID: boardID, UserID: userID}
	if err := s.repo.CreateCollaborator(ctx, link); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrCollaboratorExists
		}
		return nil, err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(boardID))
	return link, nil
}

// RemoveCollaborator unlinks a user from a board; absent links are reported
// as not found.
func (s *boardService) RemoveCollaborator(ctx context.Context, boardID, userID uint) error {
	_, err := s.repo.FindCollaborator(ctx, boardID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCollaboratorNotFound
		}
		return fmt.Errorf("check collaborator: %w", err)
	}

	if err := s.repo.DeleteCollaborator(ctx, boardID, userID); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(boardID))
	return nil
}
