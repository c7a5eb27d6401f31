package controller

import (
	"errors"

	"mvcc_assessment_backend/internal/catalog"
	"mvcc_assessment_backend/internal/service"
	"mvcc_assessment_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AssessmentController struct {
	Service *service.AssessmentService
}

func NewAssessmentController(svc *service.AssessmentService) *AssessmentController {
	return &AssessmentController{Service: svc}
}

// @Summary Get the questionnaire
// @Description Returns the full question catalog in presentation order
// @Tags Assessment
// @Produce json
// @Success 200 {object} util.Response
// @Router /questions [get]
func (c *AssessmentController) GetQuestions(ctx *gin.Context) {
	util.Success(ctx, catalog.Questions)
}

// @Summary Get the attribute catalogs
// @Description Returns the selectable life experiences and skills/passions
// @Tags Assessment
// @Produce json
// @Success 200 {object} util.Response
// @Router /attributes [get]
func (c *AssessmentController) GetAttributes(ctx *gin.Context) {
	util.Success(ctx, gin.H{
		"experiences": catalog.Experiences,
		"skills":      catalog.Skills,
	})
}

// @Summary Submit an assessment
// @Description Scores the responses, generates recommendations, and persists the assessment. When generation fails the assessment is still saved and recommendationsAvailable is false.
// @Tags Assessment
// @Accept json
// @Produce json
// @Param body body service.SubmitAssessmentRequest true "Submission"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /submit [post]
func (c *AssessmentController) Submit(ctx *gin.Context) {
	var req service.SubmitAssessmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.Service.Submit(ctx.Request.Context(), req)
	if err != nil {
		if errors.Is(err, util.ErrDuplicateResponse) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, result)
}

// @Summary Get assessment results
// @Description Returns stage, stage summary, and recommendations grouped by category sorted by ascending priority
// @Tags Assessment
// @Produce json
// @Param id path string true "Assessment ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /results/{id} [get]
func (c *AssessmentController) GetResults(ctx *gin.Context) {
	id := ctx.Param("id")

	view, err := c.Service.GetResults(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, util.ErrAssessmentNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, view)
}
