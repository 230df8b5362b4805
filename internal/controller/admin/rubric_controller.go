package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/supermanager/interview-eval/internal/controller"
	"github.com/supermanager/interview-eval/internal/dto"
	"github.com/supermanager/interview-eval/internal/service"
)

type RubricController struct {
	rubricService service.RubricService
}

func NewRubricController(rubricService service.RubricService) *RubricController {
	return &RubricController{rubricService: rubricService}
}

// GetRubric godoc
// @Summary Get the full interview rubric
// @Description Every category with its questions, checkpoints and red flags, in display order. This is the form an interviewer fills in.
// @Tags Rubric
// @Produce json
// @Success 200 {object} dto.RubricResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /rubric [get]
func (r *RubricController) GetRubric(ctx *gin.Context) {
	rubric, err := r.rubricService.GetRubric(ctx.Request.Context())
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, rubric)
}

// ListCategories godoc
// @Summary List rubric categories
// @Description Paginated list with an optional case-insensitive search over name and description. Unknown sortBy values fall back to order.
// @Tags Rubric - Categories
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size (max 100)" default(20)
// @Param search query string false "Substring of name or description"
// @Param sortBy query string false "name, order, weight, maxScore, createdAt" default(order)
// @Param sortOrder query string false "asc or desc" default(asc)
// @Success 200 {object} dto.PageResponse[dto.CategoryResponse]
// @Failure 400 {object} dto.ErrorResponse "Invalid query"
// @Router /categories [get]
func (r *RubricController) ListCategories(ctx *gin.Context) {
	var q dto.CategoryListQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	page, err := r.rubricService.ListCategories(ctx.Request.Context(), q)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, page)
}

// GetCategory godoc
// @Summary Get a category
// @Tags Rubric - Categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} dto.CategoryResponse
// @Failure 404 {object} dto.ErrorResponse "Category not found"
// @Router /categories/{id} [get]
func (r *RubricController) GetCategory(ctx *gin.Context) {
	category, err := r.rubricService.GetCategory(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, category)
}

// CreateCategory godoc
// @Summary Create a category
// @Description Weight defaults to 1, maxScore to 5.0 and order to 0.
// @Tags Rubric - Categories
// @Accept json
// @Produce json
// @Param category body dto.CreateCategoryRequest true "Category data"
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 409 {object} dto.ErrorResponse "Name already in use"
// @Router /categories [post]
func (r *RubricController) CreateCategory(ctx *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	category, err := r.rubricService.CreateCategory(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, category)
}

// UpdateCategory godoc
// @Summary Update a category
// @Description Only fields present in the body are changed.
// @Tags Rubric - Categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param category body dto.UpdateCategoryRequest true "Fields to change"
// @Success 200 {object} dto.CategoryResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Category not found"
// @Failure 409 {object} dto.ErrorResponse "Name already in use"
// @Router /categories/{id} [put]
func (r *RubricController) UpdateCategory(ctx *gin.Context) {
	var req dto.UpdateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	category, err := r.rubricService.UpdateCategory(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, category)
}

// DeleteCategory godoc
// @Summary Delete a category
// @Description Deleting a category removes its questions, checkpoints and red flags and every score, result and finding recorded against them in any evaluation. Without confirm=true nothing is deleted and the impact is returned with 409.
// @Tags Rubric - Categories
// @Produce json
// @Param id path string true "Category ID"
// @Param confirm query bool false "Perform the cascading delete"
// @Success 200 {object} dto.DeletionImpactResponse "Deleted"
// @Failure 404 {object} dto.ErrorResponse "Category not found"
// @Failure 409 {object} dto.DeletionImpactResponse "Confirmation required"
// @Router /categories/{id} [delete]
func (r *RubricController) DeleteCategory(ctx *gin.Context) {
	impact, err := r.rubricService.DeleteCategory(ctx.Request.Context(), ctx.Param("id"), controller.BoolQuery(ctx, "confirm", false))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	controller.RespondDeletion(ctx, impact)
}

// ListQuestions godoc
// @Summary List a category's questions
// @Tags Rubric - Questions
// @Produce json
// @Param id path string true "Category ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size (max 100)" default(20)
// @Success 200 {object} dto.PageResponse[dto.QuestionResponse]
// @Failure 404 {object} dto.ErrorResponse "Category not found"
// @Router /categories/{id}/questions [get]
func (r *RubricController) ListQuestions(ctx *gin.Context) {
	var q dto.PageQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	page, err := r.rubricService.ListQuestions(ctx.Request.Context(), ctx.Param("id"), q)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, page)
}

// CreateQuestion godoc
// @Summary Create a question
// @Tags Rubric - Questions
// @Accept json
// @Produce json
// @Param question body dto.CreateQuestionRequest true "Question data"
// @Success 201 {object} dto.QuestionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Category not found"
// @Router /questions [post]
func (r *RubricController) CreateQuestion(ctx *gin.Context) {
	var req dto.CreateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	question, err := r.rubricService.CreateQuestion(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, question)
}

// UpdateQuestion godoc
// @Summary Update a question
// @Tags Rubric - Questions
// @Accept json
// @Produce json
// @Param id path string true "Question ID"
// @Param question body dto.UpdateQuestionRequest true "Fields to change"
// @Success 200 {object} dto.QuestionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /questions/{id} [put]
func (r *RubricController) UpdateQuestion(ctx *gin.Context) {
	var req dto.UpdateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	question, err := r.rubricService.UpdateQuestion(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, question)
}

// DeleteQuestion godoc
// @Summary Delete a question
// @Tags Rubric - Questions
// @Param id path string true "Question ID"
// @Success 204 "Deleted"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /questions/{id} [delete]
func (r *RubricController) DeleteQuestion(ctx *gin.Context) {
	if err := r.rubricService.DeleteQuestion(ctx.Request.Context(), ctx.Param("id")); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// ListCheckpoints godoc
// @Summary List a category's checkpoints
// @Tags Rubric - Checkpoints
// @Produce json
// @Param id path string true "Category ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size (max 100)" default(20)
// @Success 200 {object} dto.PageResponse[dto.CheckpointResponse]
// @Failure 404 {object} dto.ErrorResponse "Category not found"
// @Router /categories/{id}/checkpoints [get]
func (r *RubricController) ListCheckpoints(ctx *gin.Context) {
	var q dto.PageQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	page, err := r.rubricService.ListCheckpoints(ctx.Request.Context(), ctx.Param("id"), q)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, page)
}

// CreateCheckpoint godoc
// @Summary Create a checkpoint
// @Tags Rubric - Checkpoints
// @Accept json
// @Produce json
// @Param checkpoint body dto.CreateCheckpointRequest true "Checkpoint data"
// @Success 201 {object} dto.CheckpointResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Category not found"
// @Router /checkpoints [post]
func (r *RubricController) CreateCheckpoint(ctx *gin.Context) {
	var req dto.CreateCheckpointRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	checkpoint, err := r.rubricService.CreateCheckpoint(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, checkpoint)
}

// UpdateCheckpoint godoc
// @Summary Update a checkpoint
// @Tags Rubric - Checkpoints
// @Accept json
// @Produce json
// @Param id path string true "Checkpoint ID"
// @Param checkpoint body dto.UpdateCheckpointRequest true "Fields to change"
// @Success 200 {object} dto.CheckpointResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Checkpoint not found"
// @Router /checkpoints/{id} [put]
func (r *RubricController) UpdateCheckpoint(ctx *gin.Context) {
	var req dto.UpdateCheckpointRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	checkpoint, err := r.rubricService.UpdateCheckpoint(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, checkpoint)
}

// DeleteCheckpoint godoc
// @Summary Delete a checkpoint
// @Description Also removes every checkpoint result recorded against it. Without confirm=true nothing is deleted and the impact is returned with 409.
// @Tags Rubric - Checkpoints
// @Produce json
// @Param id path string true "Checkpoint ID"
// @Param confirm query bool false "Perform the cascading delete"
// @Success 200 {object} dto.DeletionImpactResponse "Deleted"
// @Failure 404 {object} dto.ErrorResponse "Checkpoint not found"
// @Failure 409 {object} dto.DeletionImpactResponse "Confirmation required"
// @Router /checkpoints/{id} [delete]
func (r *RubricController) DeleteCheckpoint(ctx *gin.Context) {
	impact, err := r.rubricService.DeleteCheckpoint(ctx.Request.Context(), ctx.Param("id"), controller.BoolQuery(ctx, "confirm", false))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	controller.RespondDeletion(ctx, impact)
}

// ListRedFlags godoc
// @Summary List a category's red flags
// @Tags Rubric - Red Flags
// @Produce json
// @Param id path string true "Category ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size (max 100)" default(20)
// @Success 200 {object} dto.PageResponse[dto.RedFlagResponse]
// @Failure 404 {object} dto.ErrorResponse "Category not found"
// @Router /categories/{id}/red-flags [get]
func (r *RubricController) ListRedFlags(ctx *gin.Context) {
	var q dto.PageQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	page, err := r.rubricService.ListRedFlags(ctx.Request.Context(), ctx.Param("id"), q)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, page)
}

// CreateRedFlag godoc
// @Summary Create a red flag
// @Description Severity is one of low, medium, high, critical and defaults to medium.
// @Tags Rubric - Red Flags
// @Accept json
// @Produce json
// @Param redFlag body dto.CreateRedFlagRequest true "Red flag data"
// @Success 201 {object} dto.RedFlagResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input or severity"
// @Failure 404 {object} dto.ErrorResponse "Category not found"
// @Router /red-flags [post]
func (r *RubricController) CreateRedFlag(ctx *gin.Context) {
	var req dto.CreateRedFlagRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	redFlag, err := r.rubricService.CreateRedFlag(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, redFlag)
}

// UpdateRedFlag godoc
// @Summary Update a red flag
// @Tags Rubric - Red Flags
// @Accept json
// @Produce json
// @Param id path string true "Red flag ID"
// @Param redFlag body dto.UpdateRedFlagRequest true "Fields to change"
// @Success 200 {object} dto.RedFlagResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input or severity"
// @Failure 404 {object} dto.ErrorResponse "Red flag not found"
// @Router /red-flags/{id} [put]
func (r *RubricController) UpdateRedFlag(ctx *gin.Context) {
	var req dto.UpdateRedFlagRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	redFlag, err := r.rubricService.UpdateRedFlag(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, redFlag)
}

// DeleteRedFlag godoc
// @Summary Delete a red flag
// @Description Also removes every finding recorded against it. Without confirm=true nothing is deleted and the impact is returned with 409.
// @Tags Rubric - Red Flags
// @Produce json
// @Param id path string true "Red flag ID"
// @Param confirm query bool false "Perform the cascading delete"
// @Success 200 {object} dto.DeletionImpactResponse "Deleted"
// @Failure 404 {object} dto.ErrorResponse "Red flag not found"
// @Failure 409 {object} dto.DeletionImpactResponse "Confirmation required"
// @Router /red-flags/{id} [delete]
func (r *RubricController) DeleteRedFlag(ctx *gin.Context) {
	impact, err := r.rubricService.DeleteRedFlag(ctx.Request.Context(), ctx.Param("id"), controller.BoolQuery(ctx, "confirm", false))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	controller.RespondDeletion(ctx, impact)
}
