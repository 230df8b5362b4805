package interviewer

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/supermanager/interview-eval/internal/controller"
	"github.com/supermanager/interview-eval/internal/dto"
	"github.com/supermanager/interview-eval/internal/service"
)

type EvaluationController struct {
	evaluationService service.EvaluationService
}

func NewEvaluationController(evaluationService service.EvaluationService) *EvaluationController {
	return &EvaluationController{evaluationService: evaluationService}
}

// ListEvaluations godoc
// @Summary List evaluations
// @Description Paginated list of evaluation headers, newest first unless sortBy/sortOrder say otherwise.
// @Tags Evaluations
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size (max 100)" default(20)
// @Param freelancerId query string false "Only this freelancer's evaluations"
// @Param recommendation query string false "recommend, not_recommend or pending"
// @Param minScore query number false "Minimum total score"
// @Param sortBy query string false "evaluatedAt, totalScore, createdAt" default(evaluatedAt)
// @Param sortOrder query string false "asc or desc" default(desc)
// @Success 200 {object} dto.PageResponse[dto.EvaluationResponse]
// @Failure 400 {object} dto.ErrorResponse "Invalid query"
// @Router /evaluations [get]
func (e *EvaluationController) ListEvaluations(ctx *gin.Context) {
	var q dto.EvaluationListQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	page, err := e.evaluationService.ListEvaluations(ctx.Request.Context(), q)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, page)
}

// GetEvaluation godoc
// @Summary Get an evaluation
// @Description Returns the evaluation with its category scores, checkpoint results and red flag findings. Pass details=false for the header only.
// @Tags Evaluations
// @Produce json
// @Param id path string true "Evaluation ID"
// @Param details query bool false "Include child rows" default(true)
// @Success 200 {object} dto.EvaluationDetailResponse
// @Failure 404 {object} dto.ErrorResponse "Evaluation not found"
// @Router /evaluations/{id} [get]
func (e *EvaluationController) GetEvaluation(ctx *gin.Context) {
	id := ctx.Param("id")
	if !controller.BoolQuery(ctx, "details", true) {
		evaluation, err := e.evaluationService.GetEvaluation(ctx.Request.Context(), id)
		if err != nil {
			controller.RespondError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, evaluation)
		return
	}

	evaluation, err := e.evaluationService.GetEvaluationDetails(ctx.Request.Context(), id)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, evaluation)
}

// CreateEvaluation godoc
// @Summary Start an evaluation
// @Description Creates an empty evaluation for a freelancer. evaluatedAt defaults to now.
// @Tags Evaluations
// @Accept json
// @Produce json
// @Param evaluation body dto.CreateEvaluationRequest true "Evaluation data"
// @Success 201 {object} dto.EvaluationResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Freelancer not found"
// @Router /evaluations [post]
func (e *EvaluationController) CreateEvaluation(ctx *gin.Context) {
	var req dto.CreateEvaluationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	evaluation, err := e.evaluationService.CreateEvaluation(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, evaluation)
}

// UpdateEvaluation godoc
// @Summary Update an evaluation header
// @Tags Evaluations
// @Accept json
// @Produce json
// @Param id path string true "Evaluation ID"
// @Param evaluation body dto.UpdateEvaluationRequest true "Fields to change"
// @Success 200 {object} dto.EvaluationResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Evaluation not found"
// @Router /evaluations/{id} [put]
func (e *EvaluationController) UpdateEvaluation(ctx *gin.Context) {
	var req dto.UpdateEvaluationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	evaluation, err := e.evaluationService.UpdateEvaluation(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, evaluation)
}

// DeleteEvaluation godoc
// @Summary Delete an evaluation
// @Description Removes the evaluation and all of its scores, results and findings.
// @Tags Evaluations
// @Param id path string true "Evaluation ID"
// @Success 204 "Deleted"
// @Failure 404 {object} dto.ErrorResponse "Evaluation not found"
// @Router /evaluations/{id} [delete]
func (e *EvaluationController) DeleteEvaluation(ctx *gin.Context) {
	if err := e.evaluationService.DeleteEvaluation(ctx.Request.Context(), ctx.Param("id")); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// AddCategoryScore godoc
// @Summary Score a category
// @Description Score must be 1, 3 or 5 and scoreLabel must name the same level.
// @Tags Evaluations - Results
// @Accept json
// @Produce json
// @Param id path string true "Evaluation ID"
// @Param score body dto.AddCategoryScoreRequest true "Category score"
// @Success 201 {object} dto.CategoryScoreResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid score or label"
// @Failure 404 {object} dto.ErrorResponse "Evaluation or category not found"
// @Failure 409 {object} dto.ErrorResponse "Category already scored"
// @Router /evaluations/{id}/category-scores [post]
func (e *EvaluationController) AddCategoryScore(ctx *gin.Context) {
	var req dto.AddCategoryScoreRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	score, err := e.evaluationService.AddCategoryScore(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, score)
}

// UpsertCategoryScore godoc
// @Summary Create or replace a category score
// @Tags Evaluations - Results
// @Accept json
// @Produce json
// @Param id path string true "Evaluation ID"
// @Param category_id path string true "Category ID"
// @Param score body dto.UpsertCategoryScoreRequest true "Category score"
// @Success 200 {object} dto.CategoryScoreResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid score or label"
// @Failure 404 {object} dto.ErrorResponse "Evaluation or category not found"
// @Router /evaluations/{id}/category-scores/{category_id} [put]
func (e *EvaluationController) UpsertCategoryScore(ctx *gin.Context) {
	var req dto.UpsertCategoryScoreRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	score, err := e.evaluationService.UpsertCategoryScore(ctx.Request.Context(), ctx.Param("id"), ctx.Param("category_id"), req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, score)
}

// AddCheckpointResult godoc
// @Summary Record a checkpoint result
// @Tags Evaluations - Results
// @Accept json
// @Produce json
// @Param id path string true "Evaluation ID"
// @Param result body dto.AddCheckpointResultRequest true "Checkpoint result"
// @Success 201 {object} dto.CheckpointResultResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Evaluation or checkpoint not found"
// @Failure 409 {object} dto.ErrorResponse "Checkpoint already recorded"
// @Router /evaluations/{id}/checkpoint-results [post]
func (e *EvaluationController) AddCheckpointResult(ctx *gin.Context) {
	var req dto.AddCheckpointResultRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	result, err := e.evaluationService.AddCheckpointResult(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, result)
}

// UpsertCheckpointResult godoc
// @Summary Create or patch a checkpoint result
// @Description Fields left out of the body keep their stored value.
// @Tags Evaluations - Results
// @Accept json
// @Produce json
// @Param id path string true "Evaluation ID"
// @Param checkpoint_id path string true "Checkpoint ID"
// @Param result body dto.UpsertCheckpointResultRequest true "Checkpoint result"
// @Success 200 {object} dto.CheckpointResultResponse
// @Failure 404 {object} dto.ErrorResponse "Evaluation or checkpoint not found"
// @Router /evaluations/{id}/checkpoint-results/{checkpoint_id} [put]
func (e *EvaluationController) UpsertCheckpointResult(ctx *gin.Context) {
	var req dto.UpsertCheckpointResultRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	result, err := e.evaluationService.UpsertCheckpointResult(ctx.Request.Context(), ctx.Param("id"), ctx.Param("checkpoint_id"), req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// AddRedFlagFinding godoc
// @Summary Record a red flag finding
// @Tags Evaluations - Results
// @Accept json
// @Produce json
// @Param id path string true "Evaluation ID"
// @Param finding body dto.AddRedFlagFindingRequest true "Red flag finding"
// @Success 201 {object} dto.RedFlagFindingResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input or severity"
// @Failure 404 {object} dto.ErrorResponse "Evaluation or red flag not found"
// @Failure 409 {object} dto.ErrorResponse "Red flag already recorded"
// @Router /evaluations/{id}/red-flag-findings [post]
func (e *EvaluationController) AddRedFlagFinding(ctx *gin.Context) {
	var req dto.AddRedFlagFindingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	finding, err := e.evaluationService.AddRedFlagFinding(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, finding)
}

// UpsertRedFlagFinding godoc
// @Summary Create or patch a red flag finding
// @Description Fields left out of the body keep their stored value.
// @Tags Evaluations - Results
// @Accept json
// @Produce json
// @Param id path string true "Evaluation ID"
// @Param red_flag_id path string true "Red flag ID"
// @Param finding body dto.UpsertRedFlagFindingRequest true "Red flag finding"
// @Success 200 {object} dto.RedFlagFindingResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid severity"
// @Failure 404 {object} dto.ErrorResponse "Evaluation or red flag not found"
// @Router /evaluations/{id}/red-flag-findings/{red_flag_id} [put]
func (e *EvaluationController) UpsertRedFlagFinding(ctx *gin.Context) {
	var req dto.UpsertRedFlagFindingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	finding, err := e.evaluationService.UpsertRedFlagFinding(ctx.Request.Context(), ctx.Param("id"), ctx.Param("red_flag_id"), req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, finding)
}

// CalculateTotalScore godoc
// @Summary Recalculate the total score
// @Description Averages the evaluation's category scores as a percentage of 5, stores the result and returns it. Running it again without changes returns the same value.
// @Tags Evaluations
// @Produce json
// @Param id path string true "Evaluation ID"
// @Success 200 {object} dto.TotalScoreResponse
// @Failure 404 {object} dto.ErrorResponse "Evaluation not found"
// @Router /evaluations/{id}/calculate-score [post]
func (e *EvaluationController) CalculateTotalScore(ctx *gin.Context) {
	total, err := e.evaluationService.CalculateTotalScore(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.TotalScoreResponse{TotalScore: total})
}

// SetRecommendation godoc
// @Summary Set the hiring recommendation
// @Tags Evaluations
// @Accept json
// @Produce json
// @Param id path string true "Evaluation ID"
// @Param recommendation body dto.SetRecommendationRequest true "Recommendation"
// @Success 200 {object} dto.EvaluationResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid recommendation"
// @Failure 404 {object} dto.ErrorResponse "Evaluation not found"
// @Router /evaluations/{id}/set-recommendation [post]
func (e *EvaluationController) SetRecommendation(ctx *gin.Context) {
	var req dto.SetRecommendationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	evaluation, err := e.evaluationService.SetRecommendation(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, evaluation)
}
