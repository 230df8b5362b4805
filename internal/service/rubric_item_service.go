package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/supermanager/interview-eval/internal/dto"
	"github.com/supermanager/interview-eval/internal/model"
	"github.com/supermanager/interview-eval/internal/repository"
	"github.com/supermanager/interview-eval/internal/scoring"
)

// requireText trims a rubric text and rejects it when empty.
func requireText(field, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("%w: %s is required", ErrValidation, field)
	}
	return text, nil
}

func parseSeverity(raw string) (scoring.Severity, error) {
	severity := scoring.Severity(raw)
	if !severity.Valid() {
		return "", fmt.Errorf("%w: severity %q", ErrInvalidEnum, raw)
	}
	return severity, nil
}

// --- Questions ---

func (s *rubricService) ListQuestions(ctx context.Context, categoryID string, q dto.PageQuery) (*dto.PageResponse[dto.QuestionResponse], error) {
	if _, err := s.store.Categories.FindByID(ctx, categoryID); err != nil {
		return nil, lookup(err, "category", categoryID)
	}
	page := toPage(q)
	questions, total, err := s.store.Questions.ListByCategory(ctx, categoryID, page)
	if err != nil {
		log.Error().Err(err).Str("categoryID", categoryID).Msg("Failed to list questions")
		return nil, err
	}
	return dto.NewPageResponse(toQuestionResponses(questions), total, page.Page, page.Limit), nil
}

func (s *rubricService) CreateQuestion(ctx context.Context, req dto.CreateQuestionRequest) (*dto.QuestionResponse, error) {
	text, err := requireText("questionText", req.QuestionText)
	if err != nil {
		return nil, err
	}
	question := &model.Question{
		ID:           uuid.NewString(),
		CategoryID:   req.CategoryID,
		QuestionText: text,
		Order:        req.Order,
	}
	err = s.store.Transaction(ctx, func(tx *repository.Store) error {
		if _, err := tx.Categories.FindByID(ctx, req.CategoryID); err != nil {
			return lookup(err, "category", req.CategoryID)
		}
		return tx.Questions.Create(ctx, question)
	})
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)

	var resp dto.QuestionResponse
	_ = copier.Copy(&resp, question)
	return &resp, nil
}

func (s *rubricService) UpdateQuestion(ctx context.Context, id string, req dto.UpdateQuestionRequest) (*dto.QuestionResponse, error) {
	var question *model.Question
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		var err error
		if question, err = tx.Questions.FindByID(ctx, id); err != nil {
			return lookup(err, "question", id)
		}
		if req.QuestionText != nil {
			if question.QuestionText, err = requireText("questionText", *req.QuestionText); err != nil {
				return err
			}
		}
		if req.Order != nil {
			question.Order = *req.Order
		}
		return tx.Questions.Update(ctx, question)
	})
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)

	var resp dto.QuestionResponse
	_ = copier.Copy(&resp, question)
	return &resp, nil
}

// DeleteQuestion needs no confirmation: no evaluation row references a
// question.
func (s *rubricService) DeleteQuestion(ctx context.Context, id string) error {
	if err := s.store.Questions.Delete(ctx, id); err != nil {
		return lookup(err, "question", id)
	}
	s.invalidate(ctx)
	return nil
}

// --- Checkpoints ---

func (s *rubricService) ListCheckpoints(ctx context.Context, categoryID string, q dto.PageQuery) (*dto.PageResponse[dto.CheckpointResponse], error) {
	if _, err := s.store.Categories.FindByID(ctx, categoryID); err != nil {
		return nil, lookup(err, "category", categoryID)
	}
	page := toPage(q)
	checkpoints, total, err := s.store.Checkpoints.ListByCategory(ctx, categoryID, page)
	if err != nil {
		log.Error().Err(err).Str("categoryID", categoryID).Msg("Failed to list checkpoints")
		return nil, err
	}
	return dto.NewPageResponse(toCheckpointResponses(checkpoints), total, page.Page, page.Limit), nil
}

func (s *rubricService) CreateCheckpoint(ctx context.Context, req dto.CreateCheckpointRequest) (*dto.CheckpointResponse, error) {
	text, err := requireText("checkpointText", req.CheckpointText)
	if err != nil {
		return nil, err
	}
	checkpoint := &model.Checkpoint{
		ID:             uuid.NewString(),
		CategoryID:     req.CategoryID,
		CheckpointText: text,
		Order:          req.Order,
	}
	err = s.store.Transaction(ctx, func(tx *repository.Store) error {
		if _, err := tx.Categories.FindByID(ctx, req.CategoryID); err != nil {
			return lookup(err, "category", req.CategoryID)
		}
		return tx.Checkpoints.Create(ctx, checkpoint)
	})
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)

	var resp dto.CheckpointResponse
	_ = copier.Copy(&resp, checkpoint)
	return &resp, nil
}

func (s *rubricService) UpdateCheckpoint(ctx context.Context, id string, req dto.UpdateCheckpointRequest) (*dto.CheckpointResponse, error) {
	var checkpoint *model.Checkpoint
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		var err error
		if checkpoint, err = tx.Checkpoints.FindByID(ctx, id); err != nil {
			return lookup(err, "checkpoint", id)
		}
		if req.CheckpointText != nil {
			if checkpoint.CheckpointText, err = requireText("checkpointText", *req.CheckpointText); err != nil {
				return err
			}
		}
		if req.Order != nil {
			checkpoint.Order = *req.Order
		}
		return tx.Checkpoints.Update(ctx, checkpoint)
	})
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)

	var resp dto.CheckpointResponse
	_ = copier.Copy(&resp, checkpoint)
	return &resp, nil
}

func (s *rubricService) DeleteCheckpoint(ctx context.Context, id string, confirm bool) (*dto.DeletionImpactResponse, error) {
	var impact repository.DeletionImpact
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		if _, err := tx.Checkpoints.FindByID(ctx, id); err != nil {
			return lookup(err, "checkpoint", id)
		}
		var err error
		if impact, err = tx.Checkpoints.DeletionImpact(ctx, id); err != nil {
			return err
		}
		if !confirm {
			return nil
		}
		return lookup(tx.Checkpoints.Delete(ctx, id), "checkpoint", id)
	})
	if err != nil {
		return nil, err
	}
	if confirm {
		s.invalidate(ctx)
		s.metrics.IncrementRubricDelete("checkpoint")
		log.Info().Str("checkpointID", id).Int64("results", impact.CheckpointResults).Msg("Checkpoint deleted with cascade")
	}
	return toImpactResponse(confirm, impact), nil
}

// --- Red flags ---

func (s *rubricService) ListRedFlags(ctx context.Context, categoryID string, q dto.PageQuery) (*dto.PageResponse[dto.RedFlagResponse], error) {
	if _, err := s.store.Categories.FindByID(ctx, categoryID); err != nil {
		return nil, lookup(err, "category", categoryID)
	}
	page := toPage(q)
	redFlags, total, err := s.store.RedFlags.ListByCategory(ctx, categoryID, page)
	if err != nil {
		log.Error().Err(err).Str("categoryID", categoryID).Msg("Failed to list red flags")
		return nil, err
	}
	return dto.NewPageResponse(toRedFlagResponses(redFlags), total, page.Page, page.Limit), nil
}

func (s *rubricService) CreateRedFlag(ctx context.Context, req dto.CreateRedFlagRequest) (*dto.RedFlagResponse, error) {
	text, err := requireText("flagText", req.FlagText)
	if err != nil {
		return nil, err
	}
	severity := scoring.SeverityMedium
	if req.Severity != nil {
		if severity, err = parseSeverity(*req.Severity); err != nil {
			return nil, err
		}
	}
	redFlag := &model.RedFlag{
		ID:         uuid.NewString(),
		CategoryID: req.CategoryID,
		FlagText:   text,
		Severity:   severity,
		Order:      req.Order,
	}
	err = s.store.Transaction(ctx, func(tx *repository.Store) error {
		if _, err := tx.Categories.FindByID(ctx, req.CategoryID); err != nil {
			return lookup(err, "category", req.CategoryID)
		}
		return tx.RedFlags.Create(ctx, redFlag)
	})
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)

	var resp dto.RedFlagResponse
	_ = copier.Copy(&resp, redFlag)
	return &resp, nil
}

func (s *rubricService) UpdateRedFlag(ctx context.Context, id string, req dto.UpdateRedFlagRequest) (*dto.RedFlagResponse, error) {
	var redFlag *model.RedFlag
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		var err error
		if redFlag, err = tx.RedFlags.FindByID(ctx, id); err != nil {
			return lookup(err, "red flag", id)
		}
		if req.FlagText != nil {
			if redFlag.FlagText, err = requireText("flagText", *req.FlagText); err != nil {
				return err
			}
		}
		if req.Severity != nil {
			if redFlag.Severity, err = parseSeverity(*req.Severity); err != nil {
				return err
			}
		}
		if req.Order != nil {
			redFlag.Order = *req.Order
		}
		return tx.RedFlags.Update(ctx, redFlag)
	})
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)

	var resp dto.RedFlagResponse
	_ = copier.Copy(&resp, redFlag)
	return &resp, nil
}

func (s *rubricService) DeleteRedFlag(ctx context.Context, id string, confirm bool) (*dto.DeletionImpactResponse, error) {
	var impact repository.DeletionImpact
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		if _, err := tx.RedFlags.FindByID(ctx, id); err != nil {
			return lookup(err, "red flag", id)
		}
		var err error
		if impact, err = tx.RedFlags.DeletionImpact(ctx, id); err != nil {
			return err
		}
		if !confirm {
			return nil
		}
		return lookup(tx.RedFlags.Delete(ctx, id), "red flag", id)
	})
	if err != nil {
		return nil, err
	}
	if confirm {
		s.invalidate(ctx)
		s.metrics.IncrementRubricDelete("red_flag")
		log.Info().Str("redFlagID", id).Int64("findings", impact.RedFlagFindings).Msg("Red flag deleted with cascade")
	}
	return toImpactResponse(confirm, impact), nil
}
