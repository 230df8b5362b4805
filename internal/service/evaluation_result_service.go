package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/supermanager/interview-eval/internal/dto"
	"github.com/supermanager/interview-eval/internal/model"
	"github.com/supermanager/interview-eval/internal/repository"
	"github.com/supermanager/interview-eval/internal/scoring"
)

// Each child kind has a strict Add, which fails with ErrAlreadyExists when the
// (evaluation, rubric item) pair is taken, and an Upsert, which creates the
// row through the same path as Add when absent and edits it in place
// otherwise. The unique index decides races: a violation surfacing from the
// insert is reported as ErrAlreadyExists like the pre-check.

func alreadyExists(err error, kind, evaluationID, itemID string) error {
	if errors.Is(err, repository.ErrDuplicate) {
		return fmt.Errorf("%w: %s for evaluation %s and %s", ErrAlreadyExists, kind, evaluationID, itemID)
	}
	return err
}

func validateScore(score float64) error {
	if !scoring.ValidScore(score) {
		return fmt.Errorf("%w: %v (allowed: 1, 3, 5)", ErrInvalidScore, score)
	}
	return nil
}

func validateCheckedCount(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: checkedCount cannot be negative", ErrValidation)
	}
	return nil
}

// --- Category scores ---

func (s *evaluationService) AddCategoryScore(ctx context.Context, evaluationID string, req dto.AddCategoryScoreRequest) (*dto.CategoryScoreResponse, error) {
	var score *model.CategoryScore
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		var err error
		score, err = s.addCategoryScore(ctx, tx, evaluationID, req.CategoryID, req.Score, req.ScoreLabel, req.CheckedCount)
		return err
	})
	if err != nil {
		return nil, err
	}
	return toCategoryScoreResponse(score), nil
}

func (s *evaluationService) addCategoryScore(ctx context.Context, tx *repository.Store, evaluationID, categoryID string, value float64, label string, checkedCount int) (*model.CategoryScore, error) {
	if _, err := tx.Evaluations.FindByID(ctx, evaluationID); err != nil {
		return nil, lookup(err, "evaluation", evaluationID)
	}
	category, err := tx.Categories.FindByID(ctx, categoryID)
	if err != nil {
		return nil, lookup(err, "category", categoryID)
	}
	if err := validateScore(value); err != nil {
		return nil, err
	}
	if expected, _ := scoring.LabelFor(value); label != expected {
		return nil, fmt.Errorf("%w: %q for score %v, expected %q", ErrInvalidLabel, label, value, expected)
	}
	if err := validateCheckedCount(checkedCount); err != nil {
		return nil, err
	}

	if _, err := tx.CategoryScores.FindByPair(ctx, evaluationID, categoryID); err == nil {
		return nil, alreadyExists(repository.ErrDuplicate, "category score", evaluationID, categoryID)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	score := &model.CategoryScore{
		ID:           uuid.NewString(),
		EvaluationID: evaluationID,
		CategoryID:   categoryID,
		Score:        value,
		ScoreLabel:   label,
		CheckedCount: checkedCount,
	}
	if err := tx.CategoryScores.Create(ctx, score); err != nil {
		return nil, alreadyExists(err, "category score", evaluationID, categoryID)
	}
	score.Category = category
	return score, nil
}

func (s *evaluationService) UpsertCategoryScore(ctx context.Context, evaluationID, categoryID string, req dto.UpsertCategoryScoreRequest) (*dto.CategoryScoreResponse, error) {
	var score *model.CategoryScore
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		existing, err := tx.CategoryScores.FindByPair(ctx, evaluationID, categoryID)
		if errors.Is(err, repository.ErrNotFound) {
			score, err = s.addCategoryScore(ctx, tx, evaluationID, categoryID, req.Score, req.ScoreLabel, req.CheckedCount)
			return err
		}
		if err != nil {
			return err
		}

		if err := validateScore(req.Score); err != nil {
			return err
		}
		if !scoring.ValidLabel(req.ScoreLabel) {
			return fmt.Errorf("%w: %q", ErrInvalidLabel, req.ScoreLabel)
		}
		if err := validateCheckedCount(req.CheckedCount); err != nil {
			return err
		}
		existing.Score = req.Score
		existing.ScoreLabel = req.ScoreLabel
		existing.CheckedCount = req.CheckedCount
		if err := tx.CategoryScores.Update(ctx, existing); err != nil {
			return err
		}
		if existing.Category, err = tx.Categories.FindByID(ctx, categoryID); err != nil {
			return lookup(err, "category", categoryID)
		}
		score = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toCategoryScoreResponse(score), nil
}

// --- Checkpoint results ---

func (s *evaluationService) AddCheckpointResult(ctx context.Context, evaluationID string, req dto.AddCheckpointResultRequest) (*dto.CheckpointResultResponse, error) {
	var result *model.CheckpointResult
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		var err error
		result, err = s.addCheckpointResult(ctx, tx, evaluationID, req.CheckpointID, req.IsChecked, req.Notes)
		return err
	})
	if err != nil {
		return nil, err
	}
	return toCheckpointResultResponse(result), nil
}

// addCheckpointResult creates the row; a nil isChecked is stored as false.
func (s *evaluationService) addCheckpointResult(ctx context.Context, tx *repository.Store, evaluationID, checkpointID string, isChecked *bool, notes *string) (*model.CheckpointResult, error) {
	if _, err := tx.Evaluations.FindByID(ctx, evaluationID); err != nil {
		return nil, lookup(err, "evaluation", evaluationID)
	}
	checkpoint, err := tx.Checkpoints.FindByID(ctx, checkpointID)
	if err != nil {
		return nil, lookup(err, "checkpoint", checkpointID)
	}

	if _, err := tx.CheckpointResults.FindByPair(ctx, evaluationID, checkpointID); err == nil {
		return nil, alreadyExists(repository.ErrDuplicate, "checkpoint result", evaluationID, checkpointID)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	result := &model.CheckpointResult{
		ID:           uuid.NewString(),
		EvaluationID: evaluationID,
		CheckpointID: checkpointID,
		Notes:        notes,
	}
	if isChecked != nil {
		result.IsChecked = *isChecked
	}
	if err := tx.CheckpointResults.Create(ctx, result); err != nil {
		return nil, alreadyExists(err, "checkpoint result", evaluationID, checkpointID)
	}
	result.Checkpoint = checkpoint
	return result, nil
}

func (s *evaluationService) UpsertCheckpointResult(ctx context.Context, evaluationID, checkpointID string, req dto.UpsertCheckpointResultRequest) (*dto.CheckpointResultResponse, error) {
	var result *model.CheckpointResult
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		existing, err := tx.CheckpointResults.FindByPair(ctx, evaluationID, checkpointID)
		if errors.Is(err, repository.ErrNotFound) {
			result, err = s.addCheckpointResult(ctx, tx, evaluationID, checkpointID, req.IsChecked, req.Notes)
			return err
		}
		if err != nil {
			return err
		}

		if req.IsChecked != nil {
			existing.IsChecked = *req.IsChecked
		}
		if req.Notes != nil {
			existing.Notes = req.Notes
		}
		if err := tx.CheckpointResults.Update(ctx, existing); err != nil {
			return err
		}
		if existing.Checkpoint, err = tx.Checkpoints.FindByID(ctx, checkpointID); err != nil {
			return lookup(err, "checkpoint", checkpointID)
		}
		result = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toCheckpointResultResponse(result), nil
}

// --- Red flag findings ---

func parseSeverityActual(raw *string) (*scoring.Severity, error) {
	if raw == nil {
		return nil, nil
	}
	severity, err := parseSeverity(*raw)
	if err != nil {
		return nil, err
	}
	return &severity, nil
}

func (s *evaluationService) AddRedFlagFinding(ctx context.Context, evaluationID string, req dto.AddRedFlagFindingRequest) (*dto.RedFlagFindingResponse, error) {
	var finding *model.RedFlagFinding
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		var err error
		finding, err = s.addRedFlagFinding(ctx, tx, evaluationID, req.RedFlagID, req.IsFound, req.SeverityActual, req.Evidence)
		return err
	})
	if err != nil {
		return nil, err
	}
	return toRedFlagFindingResponse(finding), nil
}

func (s *evaluationService) addRedFlagFinding(ctx context.Context, tx *repository.Store, evaluationID, redFlagID string, isFound *bool, severityActual, evidence *string) (*model.RedFlagFinding, error) {
	if _, err := tx.Evaluations.FindByID(ctx, evaluationID); err != nil {
		return nil, lookup(err, "evaluation", evaluationID)
	}
	redFlag, err := tx.RedFlags.FindByID(ctx, redFlagID)
	if err != nil {
		return nil, lookup(err, "red flag", redFlagID)
	}
	severity, err := parseSeverityActual(severityActual)
	if err != nil {
		return nil, err
	}

	if _, err := tx.RedFlagFindings.FindByPair(ctx, evaluationID, redFlagID); err == nil {
		return nil, alreadyExists(repository.ErrDuplicate, "red flag finding", evaluationID, redFlagID)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	finding := &model.RedFlagFinding{
		ID:             uuid.NewString(),
		EvaluationID:   evaluationID,
		RedFlagID:      redFlagID,
		SeverityActual: severity,
		Evidence:       evidence,
	}
	if isFound != nil {
		finding.IsFound = *isFound
	}
	if err := tx.RedFlagFindings.Create(ctx, finding); err != nil {
		return nil, alreadyExists(err, "red flag finding", evaluationID, redFlagID)
	}
	finding.RedFlag = redFlag
	return finding, nil
}

func (s *evaluationService) UpsertRedFlagFinding(ctx context.Context, evaluationID, redFlagID string, req dto.UpsertRedFlagFindingRequest) (*dto.RedFlagFindingResponse, error) {
	var finding *model.RedFlagFinding
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		existing, err := tx.RedFlagFindings.FindByPair(ctx, evaluationID, redFlagID)
		if errors.Is(err, repository.ErrNotFound) {
			finding, err = s.addRedFlagFinding(ctx, tx, evaluationID, redFlagID, req.IsFound, req.SeverityActual, req.Evidence)
			return err
		}
		if err != nil {
			return err
		}

		severity, err := parseSeverityActual(req.SeverityActual)
		if err != nil {
			return err
		}
		if req.IsFound != nil {
			existing.IsFound = *req.IsFound
		}
		if severity != nil {
			existing.SeverityActual = severity
		}
		if req.Evidence != nil {
			existing.Evidence = req.Evidence
		}
		if err := tx.RedFlagFindings.Update(ctx, existing); err != nil {
			return err
		}
		if existing.RedFlag, err = tx.RedFlags.FindByID(ctx, redFlagID); err != nil {
			return lookup(err, "red flag", redFlagID)
		}
		finding = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toRedFlagFindingResponse(finding), nil
}
