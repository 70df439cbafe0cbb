package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"taskboard/internal/model"
	"taskboard/internal/repository"
)

// CommentService exposes comment operations. The author is always the
// authenticated user; handlers never accept a user id from the body.
type CommentService interface {
	GetComment(ctx context.Context, id uint) (*model.Comment, error)
	ListComments(ctx context.Context) ([]model.Comment, error)
	ListCommentsByTask(ctx context.Context, taskID uint) ([]model.Comment, error)
	CreateComment(ctx context.Context, comment *model.Comment) (*model.Comment, error)
	UpdateComment(ctx context.Context, id uint, content string) (*model.Comment, error)
	DeleteComment(ctx context.Context, id uint) error
}

type commentService struct {
	repo repository.CommentRepository
}

// NewCommentService builds a CommentService.
func NewCommentService(repo repository.CommentRepository) CommentService {
	return &commentService{repo: repo}
}

func (s *commentService) GetComment(ctx context.Context, id uint) (*model.Comment, error) {
	comment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return comment, nil
}

func (s *commentService) ListComments(ctx context.Context) ([]model.Comment, error) {
	return s.repo.List(ctx)
}

// ListCommentsByTask returns the task's comments, newest first.
func (s *commentService) ListCommentsByTask(ctx context.Context, taskID uint) ([]model.Comment, error) {
	return s.repo.ListByTask(ctx, taskID)
}

func (s *commentService) CreateComment(ctx context.Context, comment *model.Comment) (*model.Comment, error) {
	if err := s.repo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// UpdateComment replaces the content. Returns nil when the comment does not
// exist.
func (s *commentService) UpdateComment(ctx context.Context, id uint, content string) (*model.Comment, error) {
	comment, err := s.GetComment(ctx, id)
	if err != nil || comment == nil {
		return nil, err
	}

	comment.Content = content
	if err := s.repo.Update(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *commentService) DeleteComment(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
