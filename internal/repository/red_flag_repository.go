package repository

import (
	"context"

	"github.com/supermanager/interview-eval/internal/model"
	"gorm.io/gorm"
)

type RedFlagRepository interface {
	Create(ctx context.Context, redFlag *model.RedFlag) error
	FindByID(ctx context.Context, id string) (*model.RedFlag, error)
	ListByCategory(ctx context.Context, categoryID string, page Page) ([]model.RedFlag, int64, error)
	Update(ctx context.Context, redFlag *model.RedFlag) error
	DeletionImpact(ctx context.Context, id string) (DeletionImpact, error)
	Delete(ctx context.Context, id string) error
}

type redFlagRepository struct {
	db *gorm.DB
}

func NewRedFlagRepository(db *gorm.DB) RedFlagRepository {
	return &redFlagRepository{db: db}
}

func (r *redFlagRepository) Create(ctx context.Context, redFlag *model.RedFlag) error {
	return translate(r.db.WithContext(ctx).Create(redFlag).Error)
}

func (r *redFlagRepository) FindByID(ctx context.Context, id string) (*model.RedFlag, error) {
	var redFlag model.RedFlag
	if err := r.db.WithContext(ctx).First(&redFlag, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &redFlag, nil
}

func (r *redFlagRepository) ListByCategory(ctx context.Context, categoryID string, page Page) ([]model.RedFlag, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.RedFlag{}).Where("category_id = ?", categoryID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var redFlags []model.RedFlag
	err := query.Order("sort_order ASC").Order("id").Scopes(paginate(page)).Find(&redFlags).Error
	return redFlags, total, err
}

func (r *redFlagRepository) Update(ctx context.Context, redFlag *model.RedFlag) error {
	return translate(r.db.WithContext(ctx).Save(redFlag).Error)
}

func (r *redFlagRepository) DeletionImpact(ctx context.Context, id string) (DeletionImpact, error) {
	var impact DeletionImpact
	err := r.db.WithContext(ctx).Model(&model.RedFlagFinding{}).
		Where("red_flag_id = ?", id).
		Count(&impact.RedFlagFindings).Error
	if err != nil {
		return DeletionImpact{}, err
	}
	impact.RedFlags = 1
	return impact, nil
}

// Delete removes the red flag and every finding recorded against it, in any
// evaluation. Run it inside a transaction.
func (r *redFlagRepository) Delete(ctx context.Context, id string) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("red_flag_id = ?", id).Delete(&model.RedFlagFinding{}).Error; err != nil {
		return err
	}
	res := db.Where("id = ?", id).Delete(&model.RedFlag{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
