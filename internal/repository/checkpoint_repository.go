package repository

import (
	"context"

	"github.com/supermanager/interview-eval/internal/model"
	"gorm.io/gorm"
)

type CheckpointRepository interface {
	Create(ctx context.Context, checkpoint *model.Checkpoint) error
	FindByID(ctx context.Context, id string) (*model.Checkpoint, error)
	ListByCategory(ctx context.Context, categoryID string, page Page) ([]model.Checkpoint, int64, error)
	Update(ctx context.Context, checkpoint *model.Checkpoint) error
	DeletionImpact(ctx context.Context, id string) (DeletionImpact, error)
	Delete(ctx context.Context, id string) error
}

type checkpointRepository struct {
	db *gorm.DB
}

func NewCheckpointRepository(db *gorm.DB) CheckpointRepository {
	return &checkpointRepository{db: db}
}

func (r *checkpointRepository) Create(ctx context.Context, checkpoint *model.Checkpoint) error {
	return translate(r.db.WithContext(ctx).Create(checkpoint).Error)
}

func (r *checkpointRepository) FindByID(ctx context.Context, id string) (*model.Checkpoint, error) {
	var checkpoint model.Checkpoint
	if err := r.db.WithContext(ctx).First(&checkpoint, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &checkpoint, nil
}

func (r *checkpointRepository) ListByCategory(ctx context.Context, categoryID string, page Page) ([]model.Checkpoint, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Checkpoint{}).Where("category_id = ?", categoryID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var checkpoints []model.Checkpoint
	err := query.Order("sort_order ASC").Order("id").Scopes(paginate(page)).Find(&checkpoints).Error
	return checkpoints, total, err
}

func (r *checkpointRepository) Update(ctx context.Context, checkpoint *model.Checkpoint) error {
	return translate(r.db.WithContext(ctx).Save(checkpoint).Error)
}

func (r *checkpointRepository) DeletionImpact(ctx context.Context, id string) (DeletionImpact, error) {
	var impact DeletionImpact
	err := r.db.WithContext(ctx).Model(&model.CheckpointResult{}).
		Where("checkpoint_id = ?", id).
		Count(&impact.CheckpointResults).Error
	if err != nil {
		return DeletionImpact{}, err
	}
	impact.Checkpoints = 1
	return impact, nil
}

// Delete removes the checkpoint and every result recorded against it, in any
// evaluation. Run it inside a transaction.
func (r *checkpointRepository) Delete(ctx context.Context, id string) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("checkpoint_id = ?", id).Delete(&model.CheckpointResult{}).Error; err != nil {
		return err
	}
	res := db.Where("id = ?", id).Delete(&model.Checkpoint{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
