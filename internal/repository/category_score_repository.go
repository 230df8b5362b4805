package repository

import (
	"context"

	"github.com/supermanager/interview-eval/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CategoryScoreRepository interface {
	Create(ctx context.Context, score *model.CategoryScore) error
	FindByPair(ctx context.Context, evaluationID, categoryID string) (*model.CategoryScore, error)
	ListByEvaluation(ctx context.Context, evaluationID string) ([]model.CategoryScore, error)
	Update(ctx context.Context, score *model.CategoryScore) error
}

type categoryScoreRepository struct {
	db *gorm.DB
}

func NewCategoryScoreRepository(db *gorm.DB) CategoryScoreRepository {
	return &categoryScoreRepository{db: db}
}

func (r *categoryScoreRepository) Create(ctx context.Context, score *model.CategoryScore) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Create(score).Error)
}

func (r *categoryScoreRepository) FindByPair(ctx context.Context, evaluationID, categoryID string) (*model.CategoryScore, error) {
	var score model.CategoryScore
	err := r.db.WithContext(ctx).
		Where("evaluation_id = ? AND category_id = ?", evaluationID, categoryID).
		First(&score).Error
	if err != nil {
		return nil, translate(err)
	}
	return &score, nil
}

func (r *categoryScoreRepository) ListByEvaluation(ctx context.Context, evaluationID string) ([]model.CategoryScore, error) {
	var scores []model.CategoryScore
	err := r.db.WithContext(ctx).Where("evaluation_id = ?", evaluationID).Find(&scores).Error
	return scores, err
}

func (r *categoryScoreRepository) Update(ctx context.Context, score *model.CategoryScore) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Save(score).Error)
}
