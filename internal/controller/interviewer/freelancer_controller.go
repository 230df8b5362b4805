package interviewer

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/supermanager/interview-eval/internal/controller"
	"github.com/supermanager/interview-eval/internal/dto"
	"github.com/supermanager/interview-eval/internal/service"
)

type FreelancerController struct {
	freelancerService service.FreelancerService
}

func NewFreelancerController(freelancerService service.FreelancerService) *FreelancerController {
	return &FreelancerController{freelancerService: freelancerService}
}

// CreateFreelancer godoc
// @Summary Register a freelancer
// @Tags Freelancers
// @Accept json
// @Produce json
// @Param freelancer body dto.CreateFreelancerRequest true "Freelancer data"
// @Success 201 {object} dto.FreelancerResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Router /freelancers [post]
func (f *FreelancerController) CreateFreelancer(ctx *gin.Context) {
	var req dto.CreateFreelancerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	freelancer, err := f.freelancerService.CreateFreelancer(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, freelancer)
}

// GetFreelancer godoc
// @Summary Get a freelancer
// @Tags Freelancers
// @Produce json
// @Param id path string true "Freelancer ID"
// @Success 200 {object} dto.FreelancerResponse
// @Failure 404 {object} dto.ErrorResponse "Freelancer not found"
// @Router /freelancers/{id} [get]
func (f *FreelancerController) GetFreelancer(ctx *gin.Context) {
	freelancer, err := f.freelancerService.GetFreelancer(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, freelancer)
}
