package repository

import (
	"context"

	"gorm.io/gorm"

	"taskboard/internal/model"
)

// ColumnRepository defines column persistence operations.
type ColumnRepository interface {
	Create(ctx context.Context, column *model.Column) error
	Update(ctx context.Context, column *model.Column) error
	FindByID(ctx context.Context, id uint) (*model.Column, error)
	List(ctx context.Context) ([]model.Column, error)
	Delete(ctx context.Context, id uint) error
}

type columnRepository struct {
	db *gorm.DB
}

// NewColumnRepository builds a GORM-backed column repository.
func NewColumnRepository(db *gorm.DB) ColumnRepository {
	return &columnRepository{db: db}
}

func (r *columnRepository) Create(ctx context.Context, column *model.Column) error {
	return r.db.WithContext(ctx).Create(column).Error
}

func (r *columnRepository) Update(ctx context.Context, column *model.Column) error {
	return r.db.WithContext(ctx).Save(column).Error
}

func (r *columnRepository) FindByID(ctx context.Context, id uint) (*model.Column, error) {
	var column model.Column
	if err := r.db.WithContext(ctx).First(&column, id).Error; err != nil {
		return nil, err
	}
	return &column, nil
}

func (r *columnRepository) List(ctx context.Context) ([]model.Column, error) {
	var columns []model.Column
	err := r.db.WithContext(ctx).
		Order("board_id, order_index").
		Find(&columns).Error
	if err != nil {
		return nil, err
	}
	return columns, nil
}

func (r *columnRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Column{}, id).Error
}
