package repository

import (
	"context"

	"github.com/supermanager/interview-eval/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CheckpointResultRepository interface {
	Create(ctx context.Context, result *model.CheckpointResult) error
	FindByPair(ctx context.Context, evaluationID, checkpointID string) (*model.CheckpointResult, error)
	Update(ctx context.Context, result *model.CheckpointResult) error
}

type checkpointResultRepository struct {
	db *gorm.DB
}

func NewCheckpointResultRepository(db *gorm.DB) CheckpointResultRepository {
	return &checkpointResultRepository{db: db}
}

func (r *checkpointResultRepository) Create(ctx context.Context, result *model.CheckpointResult) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Create(result).Error)
}

func (r *checkpointResultRepository) FindByPair(ctx context.Context, evaluationID, checkpointID string) (*model.CheckpointResult, error) {
	var result model.CheckpointResult
	err := r.db.WithContext(ctx).
		Where("evaluation_id = ? AND checkpoint_id = ?", evaluationID, checkpointID).
		First(&result).Error
	if err != nil {
		return nil, translate(err)
	}
	return &result, nil
}

func (r *checkpointResultRepository) Update(ctx context.Context, result *model.CheckpointResult) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Save(result).Error)
}
