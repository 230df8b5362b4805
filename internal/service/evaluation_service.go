package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/supermanager/interview-eval/internal/dto"
	"github.com/supermanager/interview-eval/internal/metrics"
	"github.com/supermanager/interview-eval/internal/model"
	"github.com/supermanager/interview-eval/internal/repository"
	"github.com/supermanager/interview-eval/internal/scoring"
)

// EvaluationService owns the evaluation aggregate: the header row, its
// category scores, checkpoint results and red flag findings, and the derived
// total score and recommendation.
type EvaluationService interface {
	ListEvaluations(ctx context.Context, q dto.EvaluationListQuery) (*dto.PageResponse[dto.EvaluationResponse], error)
	GetEvaluation(ctx context.Context, id string) (*dto.EvaluationResponse, error)
	GetEvaluationDetails(ctx context.Context, id string) (*dto.EvaluationDetailResponse, error)
	CreateEvaluation(ctx context.Context, req dto.CreateEvaluationRequest) (*dto.EvaluationResponse, error)
	UpdateEvaluation(ctx context.Context, id string, req dto.UpdateEvaluationRequest) (*dto.EvaluationResponse, error)
	DeleteEvaluation(ctx context.Context, id string) error

	AddCategoryScore(ctx context.Context, evaluationID string, req dto.AddCategoryScoreRequest) (*dto.CategoryScoreResponse, error)
	UpsertCategoryScore(ctx context.Context, evaluationID, categoryID string, req dto.UpsertCategoryScoreRequest) (*dto.CategoryScoreResponse, error)
	AddCheckpointResult(ctx context.Context, evaluationID string, req dto.AddCheckpointResultRequest) (*dto.CheckpointResultResponse, error)
	UpsertCheckpointResult(ctx context.Context, evaluationID, checkpointID string, req dto.UpsertCheckpointResultRequest) (*dto.CheckpointResultResponse, error)
	AddRedFlagFinding(ctx context.Context, evaluationID string, req dto.AddRedFlagFindingRequest) (*dto.RedFlagFindingResponse, error)
	UpsertRedFlagFinding(ctx context.Context, evaluationID, redFlagID string, req dto.UpsertRedFlagFindingRequest) (*dto.RedFlagFindingResponse, error)

	CalculateTotalScore(ctx context.Context, evaluationID string) (float64, error)
	SetRecommendation(ctx context.Context, evaluationID string, req dto.SetRecommendationRequest) (*dto.EvaluationResponse, error)
}

type evaluationService struct {
	store   *repository.Store
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewEvaluationService(store *repository.Store, m *metrics.Metrics) EvaluationService {
	return &evaluationService{store: store, metrics: m, now: time.Now}
}

func parseRecommendation(raw string) (scoring.Recommendation, error) {
	rec := scoring.Recommendation(raw)
	if !rec.Valid() {
		return "", fmt.Errorf("%w: recommendation %q", ErrInvalidEnum, raw)
	}
	return rec, nil
}

func (s *evaluationService) ListEvaluations(ctx context.Context, q dto.EvaluationListQuery) (*dto.PageResponse[dto.EvaluationResponse], error) {
	page := toPage(q.PageQuery)
	query := repository.EvaluationListQuery{
		Page:         page,
		FreelancerID: q.FreelancerID,
		MinScore:     q.MinScore,
		SortBy:       q.SortBy,
		SortOrder:    q.SortOrder,
	}
	if q.Recommendation != "" {
		rec, err := parseRecommendation(q.Recommendation)
		if err != nil {
			return nil, err
		}
		query.Recommendation = &rec
	}

	evaluations, total, err := s.store.Evaluations.List(ctx, query)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list evaluations")
		return nil, err
	}
	data := make([]dto.EvaluationResponse, 0, len(evaluations))
	for i := range evaluations {
		data = append(data, *toEvaluationResponse(&evaluations[i]))
	}
	return dto.NewPageResponse(data, total, page.Page, page.Limit), nil
}

func (s *evaluationService) GetEvaluation(ctx context.Context, id string) (*dto.EvaluationResponse, error) {
	evaluation, err := s.store.Evaluations.FindByID(ctx, id)
	if err != nil {
		return nil, lookup(err, "evaluation", id)
	}
	return toEvaluationResponse(evaluation), nil
}

func (s *evaluationService) GetEvaluationDetails(ctx context.Context, id string) (*dto.EvaluationDetailResponse, error) {
	evaluation, err := s.store.Evaluations.FindByIDWithDetails(ctx, id)
	if err != nil {
		return nil, lookup(err, "evaluation", id)
	}
	return toEvaluationDetails(evaluation), nil
}

func (s *evaluationService) CreateEvaluation(ctx context.Context, req dto.CreateEvaluationRequest) (*dto.EvaluationResponse, error) {
	evaluation := &model.Evaluation{
		ID:              uuid.NewString(),
		FreelancerID:    req.FreelancerID,
		InterviewerName: req.InterviewerName,
		ProjectName:     req.ProjectName,
		Notes:           req.Notes,
		EvaluatedAt:     s.now().UTC(),
	}
	if req.EvaluatedAt != nil {
		evaluation.EvaluatedAt = req.EvaluatedAt.UTC()
	}

	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		if _, err := tx.Freelancers.FindByID(ctx, req.FreelancerID); err != nil {
			return lookup(err, "freelancer", req.FreelancerID)
		}
		return tx.Evaluations.Create(ctx, evaluation)
	})
	if err != nil {
		return nil, err
	}

	s.metrics.IncrementEvaluationEvent("created")
	log.Info().Str("evaluationID", evaluation.ID).Str("freelancerID", evaluation.FreelancerID).Msg("Evaluation created")
	return toEvaluationResponse(evaluation), nil
}

func (s *evaluationService) UpdateEvaluation(ctx context.Context, id string, req dto.UpdateEvaluationRequest) (*dto.EvaluationResponse, error) {
	var evaluation *model.Evaluation
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		var err error
		if evaluation, err = tx.Evaluations.FindByID(ctx, id); err != nil {
			return lookup(err, "evaluation", id)
		}
		if req.InterviewerName != nil {
			evaluation.InterviewerName = req.InterviewerName
		}
		if req.ProjectName != nil {
			evaluation.ProjectName = req.ProjectName
		}
		if req.Notes != nil {
			evaluation.Notes = req.Notes
		}
		if req.EvaluatedAt != nil {
			evaluation.EvaluatedAt = req.EvaluatedAt.UTC()
		}
		if req.Recommendation != nil {
			rec, err := parseRecommendation(*req.Recommendation)
			if err != nil {
				return err
			}
			evaluation.Recommendation = &rec
		}
		return tx.Evaluations.Update(ctx, evaluation)
	})
	if err != nil {
		return nil, err
	}
	return toEvaluationResponse(evaluation), nil
}

func (s *evaluationService) DeleteEvaluation(ctx context.Context, id string) error {
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		return lookup(tx.Evaluations.Delete(ctx, id), "evaluation", id)
	})
	if err != nil {
		return err
	}
	s.metrics.IncrementEvaluationEvent("deleted")
	log.Info().Str("evaluationID", id).Msg("Evaluation deleted")
	return nil
}

// CalculateTotalScore recomputes the total from the stored category scores and
// persists it. Running it again without changes yields the same value.
func (s *evaluationService) CalculateTotalScore(ctx context.Context, evaluationID string) (float64, error) {
	var total float64
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		evaluation, err := tx.Evaluations.FindByID(ctx, evaluationID)
		if err != nil {
			return lookup(err, "evaluation", evaluationID)
		}
		rows, err := tx.CategoryScores.ListByEvaluation(ctx, evaluationID)
		if err != nil {
			return err
		}
		scores := make([]float64, 0, len(rows))
		for _, row := range rows {
			scores = append(scores, row.Score)
		}
		total = scoring.TotalScore(scores)
		evaluation.TotalScore = &total
		return tx.Evaluations.Update(ctx, evaluation)
	})
	if err != nil {
		return 0, err
	}

	s.metrics.IncrementEvaluationEvent("scored")
	s.metrics.ObserveTotalScore(total)
	log.Info().Str("evaluationID", evaluationID).Float64("totalScore", total).Msg("Total score calculated")
	return total, nil
}

// SetRecommendation records the hiring outcome. Any of recommend,
// not_recommend and pending may replace any other at any time, including a
// previous final decision. It does not look at the total score; notes are
// replaced only when provided.
func (s *evaluationService) SetRecommendation(ctx context.Context, evaluationID string, req dto.SetRecommendationRequest) (*dto.EvaluationResponse, error) {
	rec, err := parseRecommendation(req.Recommendation)
	if err != nil {
		return nil, err
	}

	var evaluation *model.Evaluation
	err = s.store.Transaction(ctx, func(tx *repository.Store) error {
		var err error
		if evaluation, err = tx.Evaluations.FindByID(ctx, evaluationID); err != nil {
			return lookup(err, "evaluation", evaluationID)
		}
		evaluation.Recommendation = &rec
		if req.Notes != nil {
			evaluation.Notes = req.Notes
		}
		return tx.Evaluations.Update(ctx, evaluation)
	})
	if err != nil {
		return nil, err
	}

	s.metrics.IncrementRecommendation(string(rec))
	return toEvaluationResponse(evaluation), nil
}
