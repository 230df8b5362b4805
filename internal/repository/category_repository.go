package repository

import (
	"context"
	"strings"

	"github.com/supermanager/interview-eval/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CategoryListQuery filters and orders a category listing.
type CategoryListQuery struct {
	Page
	Search    string
	SortBy    string
	SortOrder string
}

// DeletionImpact counts the rows a cascading rubric delete removes.
type DeletionImpact struct {
	Questions         int64
	Checkpoints       int64
	RedFlags          int64
	CategoryScores    int64
	CheckpointResults int64
	RedFlagFindings   int64
}

type CategoryRepository interface {
	Create(ctx context.Context, category *model.Category) error
	FindByID(ctx context.Context, id string) (*model.Category, error)
	FindByName(ctx context.Context, name string) (*model.Category, error)
	List(ctx context.Context, q CategoryListQuery) ([]model.Category, int64, error)
	FindAllWithItems(ctx context.Context) ([]model.Category, error)
	Update(ctx context.Context, category *model.Category) error
	DeletionImpact(ctx context.Context, id string) (DeletionImpact, error)
	Delete(ctx context.Context, id string) error
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

var categorySortColumns = map[string]string{
	"name":       "name",
	"order":      "sort_order",
	"weight":     "weight",
	"max_score":  "max_score",
	"maxScore":   "max_score",
	"created_at": "created_at",
	"createdAt":  "created_at",
}

func (r *categoryRepository) Create(ctx context.Context, category *model.Category) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Create(category).Error)
}

func (r *categoryRepository) FindByID(ctx context.Context, id string) (*model.Category, error) {
	var category model.Category
	if err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &category, nil
}

func (r *categoryRepository) FindByName(ctx context.Context, name string) (*model.Category, error) {
	var category model.Category
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&category).Error; err != nil {
		return nil, translate(err)
	}
	return &category, nil
}

func (r *categoryRepository) List(ctx context.Context, q CategoryListQuery) ([]model.Category, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Category{})
	if s := strings.TrimSpace(q.Search); s != "" {
		pattern := "%" + strings.ToLower(s) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(COALESCE(description, '')) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var categories []model.Category
	err := query.
		Order(orderBy(categorySortColumns, q.SortBy, "sort_order", q.SortOrder, "asc")).
		Order("id").
		Scopes(paginate(q.Page)).
		Find(&categories).Error
	return categories, total, err
}

func (r *categoryRepository) FindAllWithItems(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	err := r.db.WithContext(ctx).
		Preload("Questions", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		Preload("Checkpoints", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		Preload("RedFlags", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		Order("sort_order ASC").
		Find(&categories).Error
	return categories, err
}

func (r *categoryRepository) Update(ctx context.Context, category *model.Category) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Save(category).Error)
}

func (r *categoryRepository) DeletionImpact(ctx context.Context, id string) (DeletionImpact, error) {
	db := r.db.WithContext(ctx)
	checkpointIDs := db.Model(&model.Checkpoint{}).Select("id").Where("category_id = ?", id)
	redFlagIDs := db.Model(&model.RedFlag{}).Select("id").Where("category_id = ?", id)

	var impact DeletionImpact
	counts := []struct {
		dst   *int64
		query *gorm.DB
	}{
		{&impact.Questions, db.Model(&model.Question{}).Where("category_id = ?", id)},
		{&impact.Checkpoints, db.Model(&model.Checkpoint{}).Where("category_id = ?", id)},
		{&impact.RedFlags, db.Model(&model.RedFlag{}).Where("category_id = ?", id)},
		{&impact.CategoryScores, db.Model(&model.CategoryScore{}).Where("category_id = ?", id)},
		{&impact.CheckpointResults, db.Model(&model.CheckpointResult{}).Where("checkpoint_id IN (?)", checkpointIDs)},
		{&impact.RedFlagFindings, db.Model(&model.RedFlagFinding{}).Where("red_flag_id IN (?)", redFlagIDs)},
	}
	for _, c := range counts {
		if err := c.query.Count(c.dst).Error; err != nil {
			return DeletionImpact{}, err
		}
	}
	return impact, nil
}

// Delete removes the category together with everything hanging off it,
// including evaluation rows in other aggregates that point at its checkpoints
// and red flags. Callers run it inside a transaction so the cascade is all or
// nothing; the explicit deletes keep that true on drivers where foreign key
// enforcement is off.
func (r *categoryRepository) Delete(ctx context.Context, id string) error {
	db := r.db.WithContext(ctx)
	checkpointIDs := db.Model(&model.Checkpoint{}).Select("id").Where("category_id = ?", id)
	redFlagIDs := db.Model(&model.RedFlag{}).Select("id").Where("category_id = ?", id)

	steps := []func() error{
		func() error { return db.Where("checkpoint_id IN (?)", checkpointIDs).Delete(&model.CheckpointResult{}).Error },
		func() error { return db.Where("red_flag_id IN (?)", redFlagIDs).Delete(&model.RedFlagFinding{}).Error },
		func() error { return db.Where("category_id = ?", id).Delete(&model.CategoryScore{}).Error },
		func() error { return db.Where("category_id = ?", id).Delete(&model.Question{}).Error },
		func() error { return db.Where("category_id = ?", id).Delete(&model.Checkpoint{}).Error },
		func() error { return db.Where("category_id = ?", id).Delete(&model.RedFlag{}).Error },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}

	res := db.Where("id = ?", id).Delete(&model.Category{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
