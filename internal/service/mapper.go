package service

import (
	"github.com/jinzhu/copier"
	"github.com/supermanager/interview-eval/internal/dto"
	"github.com/supermanager/interview-eval/internal/model"
	"github.com/supermanager/interview-eval/internal/repository"
)

func toCategoryResponse(c *model.Category) dto.CategoryResponse {
	var resp dto.CategoryResponse
	_ = copier.Copy(&resp, c)
	return resp
}

func toQuestionResponses(questions []model.Question) []dto.QuestionResponse {
	resp := make([]dto.QuestionResponse, 0, len(questions))
	_ = copier.Copy(&resp, &questions)
	return resp
}

func toCheckpointResponses(checkpoints []model.Checkpoint) []dto.CheckpointResponse {
	resp := make([]dto.CheckpointResponse, 0, len(checkpoints))
	_ = copier.Copy(&resp, &checkpoints)
	return resp
}

func toRedFlagResponses(redFlags []model.RedFlag) []dto.RedFlagResponse {
	resp := make([]dto.RedFlagResponse, 0, len(redFlags))
	_ = copier.Copy(&resp, &redFlags)
	return resp
}

func toRubricCategory(c *model.Category) dto.RubricCategoryResponse {
	return dto.RubricCategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Weight:      c.Weight,
		MaxScore:    c.MaxScore,
		Order:       c.Order,
		Questions:   toQuestionResponses(c.Questions),
		Checkpoints: toCheckpointResponses(c.Checkpoints),
		RedFlags:    toRedFlagResponses(c.RedFlags),
	}
}

func toFreelancerResponse(f *model.Freelancer) *dto.FreelancerResponse {
	var resp dto.FreelancerResponse
	_ = copier.Copy(&resp, f)
	return &resp
}

func toCategoryScoreResponse(cs *model.CategoryScore) *dto.CategoryScoreResponse {
	var resp dto.CategoryScoreResponse
	_ = copier.Copy(&resp, cs)
	if cs.Category != nil {
		resp.CategoryName = &cs.Category.Name
	}
	return &resp
}

func toCheckpointResultResponse(r *model.CheckpointResult) *dto.CheckpointResultResponse {
	var resp dto.CheckpointResultResponse
	_ = copier.Copy(&resp, r)
	if r.Checkpoint != nil {
		resp.CheckpointText = &r.Checkpoint.CheckpointText
	}
	return &resp
}

func toRedFlagFindingResponse(f *model.RedFlagFinding) *dto.RedFlagFindingResponse {
	var resp dto.RedFlagFindingResponse
	_ = copier.Copy(&resp, f)
	if f.RedFlag != nil {
		resp.FlagText = &f.RedFlag.FlagText
	}
	return &resp
}

// toEvaluationDetails maps the header plus the three child collections with
// the rubric texts they point at.
func toEvaluationDetails(e *model.Evaluation) *dto.EvaluationDetailResponse {
	resp := &dto.EvaluationDetailResponse{
		EvaluationResponse: *toEvaluationResponse(e),
		CategoryScores:     make([]dto.CategoryScoreResponse, 0, len(e.CategoryScores)),
		CheckpointResults:  make([]dto.CheckpointResultResponse, 0, len(e.CheckpointResults)),
		RedFlagFindings:    make([]dto.RedFlagFindingResponse, 0, len(e.RedFlagFindings)),
	}
	for i := range e.CategoryScores {
		resp.CategoryScores = append(resp.CategoryScores, *toCategoryScoreResponse(&e.CategoryScores[i]))
	}
	for i := range e.CheckpointResults {
		resp.CheckpointResults = append(resp.CheckpointResults, *toCheckpointResultResponse(&e.CheckpointResults[i]))
	}
	for i := range e.RedFlagFindings {
		resp.RedFlagFindings = append(resp.RedFlagFindings, *toRedFlagFindingResponse(&e.RedFlagFindings[i]))
	}
	return resp
}

func toEvaluationResponse(e *model.Evaluation) *dto.EvaluationResponse {
	var resp dto.EvaluationResponse
	_ = copier.Copy(&resp, e)
	return &resp
}

func toImpactResponse(deleted bool, counts repository.DeletionImpact) *dto.DeletionImpactResponse {
	return &dto.DeletionImpactResponse{
		Deleted:           deleted,
		Questions:         counts.Questions,
		Checkpoints:       counts.Checkpoints,
		RedFlags:          counts.RedFlags,
		CategoryScores:    counts.CategoryScores,
		CheckpointResults: counts.CheckpointResults,
		RedFlagFindings:   counts.RedFlagFindings,
	}
}
