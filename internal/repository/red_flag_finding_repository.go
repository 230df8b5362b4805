package repository

import (
	"context"

	"github.com/supermanager/interview-eval/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RedFlagFindingRepository interface {
	Create(ctx context.Context, finding *model.RedFlagFinding) error
	FindByPair(ctx context.Context, evaluationID, redFlagID string) (*model.RedFlagFinding, error)
	Update(ctx context.Context, finding *model.RedFlagFinding) error
}

type redFlagFindingRepository struct {
	db *gorm.DB
}

func NewRedFlagFindingRepository(db *gorm.DB) RedFlagFindingRepository {
	return &redFlagFindingRepository{db: db}
}

func (r *redFlagFindingRepository) Create(ctx context.Context, finding *model.RedFlagFinding) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Create(finding).Error)
}

func (r *redFlagFindingRepository) FindByPair(ctx context.Context, evaluationID, redFlagID string) (*model.RedFlagFinding, error) {
	var finding model.RedFlagFinding
	err := r.db.WithContext(ctx).
		Where("evaluation_id = ? AND red_flag_id = ?", evaluationID, redFlagID).
		First(&finding).Error
	if err != nil {
		return nil, translate(err)
	}
	return &finding, nil
}

func (r *redFlagFindingRepository) Update(ctx context.Context, finding *model.RedFlagFinding) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Save(finding).Error)
}
