package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"taskboard/internal/model"
	"taskboard/internal/repository"
)

// ColumnUpdate carries the optional fields of a partial column update.
type ColumnUpdate struct {
	Name       *string
	OrderIndex *int
}

// ColumnService exposes column operations.
type ColumnService interface {
	GetColumn(ctx context.Context, id uint) (*model.Column, error)
	ListColumns(ctx context.Context) ([]model.Column, error)
	CreateColumn(ctx context.Context, column *model.Column) (*model.Column, error)
	UpdateColumn(ctx context.Context, id uint, update ColumnUpdate) (*model.Column, error)
	DeleteColumn(ctx context.Context, id uint) error
}

type columnService struct {
	repo repository.ColumnRepository
}

// NewColumnService builds a ColumnService.
func NewColumnService(repo repository.ColumnRepository) ColumnService {
	return &columnService{repo: repo}
}

func (s *columnService) GetColumn(ctx context.Context, id uint) (*model.Column, error) {
	column, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return column, nil
}

func (s *columnService) ListColumns(ctx context.Context) ([]model.Column, error) {
	return s.repo.List(ctx)
}

func (s *columnService) CreateColumn(ctx context.Context, column *model.Column) (*model.Column, error) {
	if err := s.repo.Create(ctx, column); err != nil {
		return nil, err
	}
	return column, nil
}

// UpdateColumn applies the provided fields. Returns nil when the column does
// not exist.
func (s *columnService) UpdateColumn(ctx context.Context, id uint, update ColumnUpdate) (*model.Column, error) {
	column, err := s.GetColumn(ctx, id)
	if err != nil || column == nil {
		return nil, err
	}

	if update.Name != nil {
		column.Name = *update.Name
	}
	if update.OrderIndex != nil {
		column.OrderIndex = *update.OrderIndex
	}

	if err := s.repo.Update(ctx, column); err != nil {
		return nil, err
	}
	return column, nil
}

func (s *columnService) DeleteColumn(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
