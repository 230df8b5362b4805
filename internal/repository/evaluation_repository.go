package repository

import (
	"context"

	"github.com/supermanager/interview-eval/internal/model"
	"github.com/supermanager/interview-eval/internal/scoring"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EvaluationListQuery filters and orders an evaluation listing. Nil filters
// are ignored.
type EvaluationListQuery struct {
	Page
	FreelancerID   string
	Recommendation *scoring.Recommendation
	MinScore       *float64
	SortBy         string
	SortOrder      string
}

type EvaluationRepository interface {
	Create(ctx context.Context, evaluation *model.Evaluation) error
	FindByID(ctx context.Context, id string) (*model.Evaluation, error)
	FindByIDWithDetails(ctx context.Context, id string) (*model.Evaluation, error)
	List(ctx context.Context, q EvaluationListQuery) ([]model.Evaluation, int64, error)
	Update(ctx context.Context, evaluation *model.Evaluation) error
	Delete(ctx context.Context, id string) error
}

type evaluationRepository struct {
	db *gorm.DB
}

func NewEvaluationRepository(db *gorm.DB) EvaluationRepository {
	return &evaluationRepository{db: db}
}

var evaluationSortColumns = map[string]string{
	"evaluated_at":     "evaluated_at",
	"evaluatedAt":      "evaluated_at",
	"total_score":      "total_score",
	"totalScore":       "total_score",
	"created_at":       "created_at",
	"createdAt":        "created_at",
	"updated_at":       "updated_at",
	"interviewer_name": "interviewer_name",
}

func (r *evaluationRepository) Create(ctx context.Context, evaluation *model.Evaluation) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Create(evaluation).Error)
}

func (r *evaluationRepository) FindByID(ctx context.Context, id string) (*model.Evaluation, error) {
	var evaluation model.Evaluation
	if err := r.db.WithContext(ctx).First(&evaluation, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &evaluation, nil
}

// FindByIDWithDetails loads the evaluation with its children and the rubric
// rows they point at, so callers can show names and texts without extra
// lookups.
func (r *evaluationRepository) FindByIDWithDetails(ctx context.Context, id string) (*model.Evaluation, error) {
	var evaluation model.Evaluation
	err := r.db.WithContext(ctx).
		Preload("CategoryScores", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Preload("CategoryScores.Category").
		Preload("CheckpointResults", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Preload("CheckpointResults.Checkpoint").
		Preload("RedFlagFindings", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Preload("RedFlagFindings.RedFlag").
		First(&evaluation, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &evaluation, nil
}

func (r *evaluationRepository) List(ctx context.Context, q EvaluationListQuery) ([]model.Evaluation, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Evaluation{})
	if q.FreelancerID != "" {
		query = query.Where("freelancer_id = ?", q.FreelancerID)
	}
	if q.Recommendation != nil {
		query = query.Where("recommendation = ?", *q.Recommendation)
	}
	if q.MinScore != nil {
		query = query.Where("total_score >= ?", *q.MinScore)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var evaluations []model.Evaluation
	err := query.
		Order(orderBy(evaluationSortColumns, q.SortBy, "evaluated_at", q.SortOrder, "desc")).
		Order("id").
		Scopes(paginate(q.Page)).
		Find(&evaluations).Error
	return evaluations, total, err
}

func (r *evaluationRepository) Update(ctx context.Context, evaluation *model.Evaluation) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Save(evaluation).Error)
}

// Delete removes the evaluation and all three child collections. Run it inside
// a transaction.
func (r *evaluationRepository) Delete(ctx context.Context, id string) error {
	db := r.db.WithContext(ctx)
	for _, child := range []any{&model.CategoryScore{}, &model.CheckpointResult{}, &model.RedFlagFinding{}} {
		if err := db.Where("evaluation_id = ?", id).Delete(child).Error; err != nil {
			return err
		}
	}
	res := db.Where("id = ?", id).Delete(&model.Evaluation{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
