package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/supermanager/interview-eval/internal/cache"
	"github.com/supermanager/interview-eval/internal/dto"
	"github.com/supermanager/interview-eval/internal/metrics"
	"github.com/supermanager/interview-eval/internal/model"
	"github.com/supermanager/interview-eval/internal/repository"
	"github.com/supermanager/interview-eval/internal/scoring"
)

const (
	defaultCategoryWeight = 1
	defaultCategoryOrder  = 0
)

// RubricService manages the rubric master data: categories and the
// questions, checkpoints and red flags under them.
type RubricService interface {
	GetRubric(ctx context.Context) (*dto.RubricResponse, error)

	ListCategories(ctx context.Context, q dto.CategoryListQuery) (*dto.PageResponse[dto.CategoryResponse], error)
	GetCategory(ctx context.Context, id string) (*dto.CategoryResponse, error)
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
	UpdateCategory(ctx context.Context, id string, req dto.UpdateCategoryRequest) (*dto.CategoryResponse, error)
	DeleteCategory(ctx context.Context, id string, confirm bool) (*dto.DeletionImpactResponse, error)

	ListQuestions(ctx context.Context, categoryID string, q dto.PageQuery) (*dto.PageResponse[dto.QuestionResponse], error)
	CreateQuestion(ctx context.Context, req dto.CreateQuestionRequest) (*dto.QuestionResponse, error)
	UpdateQuestion(ctx context.Context, id string, req dto.UpdateQuestionRequest) (*dto.QuestionResponse, error)
	DeleteQuestion(ctx context.Context, id string) error

	ListCheckpoints(ctx context.Context, categoryID string, q dto.PageQuery) (*dto.PageResponse[dto.CheckpointResponse], error)
	CreateCheckpoint(ctx context.Context, req dto.CreateCheckpointRequest) (*dto.CheckpointResponse, error)
	UpdateCheckpoint(ctx context.Context, id string, req dto.UpdateCheckpointRequest) (*dto.CheckpointResponse, error)
	DeleteCheckpoint(ctx context.Context, id string, confirm bool) (*dto.DeletionImpactResponse, error)

	ListRedFlags(ctx context.Context, categoryID string, q dto.PageQuery) (*dto.PageResponse[dto.RedFlagResponse], error)
	CreateRedFlag(ctx context.Context, req dto.CreateRedFlagRequest) (*dto.RedFlagResponse, error)
	UpdateRedFlag(ctx context.Context, id string, req dto.UpdateRedFlagRequest) (*dto.RedFlagResponse, error)
	DeleteRedFlag(ctx context.Context, id string, confirm bool) (*dto.DeletionImpactResponse, error)
}

type rubricService struct {
	store   *repository.Store
	cache   cache.RubricCache
	metrics *metrics.Metrics
}

// NewRubricService builds the rubric service. A nil cache disables caching;
// a nil metrics value disables instrumentation.
func NewRubricService(store *repository.Store, rubricCache cache.RubricCache, m *metrics.Metrics) RubricService {
	if rubricCache == nil {
		rubricCache = cache.NopRubricCache{}
	}
	return &rubricService{store: store, cache: rubricCache, metrics: m}
}

func (s *rubricService) GetRubric(ctx context.Context) (*dto.RubricResponse, error) {
	snap, cacheErr := s.cache.Get(ctx)
	switch {
	case cacheErr != nil:
		log.Warn().Err(cacheErr).Msg("Rubric cache read failed, loading from database")
		s.metrics.IncrementCacheLookup("error")
	case snap.Rubric != nil:
		s.metrics.IncrementCacheLookup("hit")
		return snap.Rubric, nil
	default:
		s.metrics.IncrementCacheLookup("miss")
	}

	categories, err := s.store.Categories.FindAllWithItems(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load rubric")
		return nil, err
	}
	rubric := &dto.RubricResponse{Categories: make([]dto.RubricCategoryResponse, 0, len(categories))}
	for i := range categories {
		rubric.Categories = append(rubric.Categories, toRubricCategory(&categories[i]))
	}

	// Without a generation from a successful read there is nothing to guard
	// the write with.
	if cacheErr != nil {
		return rubric, nil
	}
	stored, err := s.cache.Set(ctx, snap.Generation, rubric)
	switch {
	case err != nil:
		log.Warn().Err(err).Msg("Rubric cache write failed")
	case !stored:
		log.Debug().Int64("generation", snap.Generation).Msg("Rubric changed while loading, not cached")
	}
	return rubric, nil
}

// invalidate drops the cached rubric after a committed mutation. A failure
// only delays visibility until the TTL expires, so it is logged, not returned.
func (s *rubricService) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		log.Warn().Err(err).Msg("Rubric cache invalidation failed")
	}
}

func (s *rubricService) ListCategories(ctx context.Context, q dto.CategoryListQuery) (*dto.PageResponse[dto.CategoryResponse], error) {
	page := toPage(q.PageQuery)
	categories, total, err := s.store.Categories.List(ctx, repository.CategoryListQuery{
		Page:      page,
		Search:    q.Search,
		SortBy:    q.SortBy,
		SortOrder: q.SortOrder,
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to list categories")
		return nil, err
	}
	data := make([]dto.CategoryResponse, 0, len(categories))
	for i := range categories {
		data = append(data, toCategoryResponse(&categories[i]))
	}
	return dto.NewPageResponse(data, total, page.Page, page.Limit), nil
}

func (s *rubricService) GetCategory(ctx context.Context, id string) (*dto.CategoryResponse, error) {
	category, err := s.store.Categories.FindByID(ctx, id)
	if err != nil {
		return nil, lookup(err, "category", id)
	}
	resp := toCategoryResponse(category)
	return &resp, nil
}

func (s *rubricService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: category name is required", ErrValidation)
	}
	category := &model.Category{
		ID:          uuid.NewString(),
		Name:        name,
		Description: req.Description,
		Weight:      defaultCategoryWeight,
		MaxScore:    scoring.MaxCategoryScore,
		Order:       defaultCategoryOrder,
	}
	if req.Weight != nil {
		category.Weight = *req.Weight
	}
	if req.MaxScore != nil {
		if *req.MaxScore <= 0 {
			return nil, fmt.Errorf("%w: maxScore must be positive", ErrValidation)
		}
		category.MaxScore = *req.MaxScore
	}
	if req.Order != nil {
		category.Order = *req.Order
	}

	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		if _, err := tx.Categories.FindByName(ctx, name); err == nil {
			return fmt.Errorf("%w: category %q", ErrDuplicateName, name)
		} else if !errors.Is(err, repository.ErrNotFound) {
			return err
		}
		return duplicateName(tx.Categories.Create(ctx, category), name)
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	log.Info().Str("categoryID", category.ID).Str("name", name).Msg("Category created")
	resp := toCategoryResponse(category)
	return &resp, nil
}

func (s *rubricService) UpdateCategory(ctx context.Context, id string, req dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	var category *model.Category
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		var err error
		category, err = tx.Categories.FindByID(ctx, id)
		if err != nil {
			return lookup(err, "category", id)
		}

		if req.Name != nil {
			name := strings.TrimSpace(*req.Name)
			if name == "" {
				return fmt.Errorf("%w: category name cannot be empty", ErrValidation)
			}
			if name != category.Name {
				other, err := tx.Categories.FindByName(ctx, name)
				switch {
				case err == nil && other.ID != id:
					return fmt.Errorf("%w: category %q", ErrDuplicateName, name)
				case err != nil && !errors.Is(err, repository.ErrNotFound):
					return err
				}
			}
			category.Name = name
		}
		if req.Description != nil {
			category.Description = req.Description
		}
		if req.Weight != nil {
			category.Weight = *req.Weight
		}
		if req.MaxScore != nil {
			if *req.MaxScore <= 0 {
				return fmt.Errorf("%w: maxScore must be positive", ErrValidation)
			}
			category.MaxScore = *req.MaxScore
		}
		if req.Order != nil {
			category.Order = *req.Order
		}
		return duplicateName(tx.Categories.Update(ctx, category), category.Name)
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	resp := toCategoryResponse(category)
	return &resp, nil
}

// DeleteCategory reports the cascade a delete would cause and, only when
// confirm is set, performs it.
func (s *rubricService) DeleteCategory(ctx context.Context, id string, confirm bool) (*dto.DeletionImpactResponse, error) {
	var impact repository.DeletionImpact
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		if _, err := tx.Categories.FindByID(ctx, id); err != nil {
			return lookup(err, "category", id)
		}
		var err error
		if impact, err = tx.Categories.DeletionImpact(ctx, id); err != nil {
			return err
		}
		if !confirm {
			return nil
		}
		return lookup(tx.Categories.Delete(ctx, id), "category", id)
	})
	if err != nil {
		return nil, err
	}
	if confirm {
		s.invalidate(ctx)
		s.metrics.IncrementRubricDelete("category")
		log.Info().Str("categoryID", id).Interface("impact", impact).Msg("Category deleted with cascade")
	}
	return toImpactResponse(confirm, impact), nil
}

// duplicateName turns a unique-index violation on the category name into
// ErrDuplicateName.
func duplicateName(err error, name string) error {
	if errors.Is(err, repository.ErrDuplicate) {
		return fmt.Errorf("%w: category %q", ErrDuplicateName, name)
	}
	return err
}

func toPage(q dto.PageQuery) repository.Page {
	return repository.Page{Page: q.Page, Limit: q.Limit}.Normalize()
}
