package controller

import (
	"errors"
	"time"

	"mvcc_assessment_backend/internal/model"
	"mvcc_assessment_backend/internal/repository"
	"mvcc_assessment_backend/internal/service"
	"mvcc_assessment_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	Service *service.AssessmentService
}

func NewAdminController(svc *service.AssessmentService) *AdminController {
	return &AdminController{Service: svc}
}

func parseListFilter(ctx *gin.Context) (repository.AssessmentFilter, error) {
	var filter repository.AssessmentFilter

	if stage := ctx.Query("stage"); stage != "" && stage != "all" {
		s := model.Stage(stage)
		if !s.Valid() {
			return filter, errors.New("invalid stage: " + stage)
		}
		filter.Stage = s
	}

	filter.Search = ctx.Query("search")

	if raw := ctx.Query("startDate"); raw != "" {
		start, err := time.Parse(util.DateFormat, raw)
		if err != nil {
			return filter, errors.New("invalid startDate, expected YYYY-MM-DD")
		}
		filter.StartDate = &start
	}

	if raw := ctx.Query("endDate"); raw != "" {
		end, err := time.Parse(util.DateFormat, raw)
		if err != nil {
			return filter, errors.New("invalid endDate, expected YYYY-MM-DD")
		}
		// Inclusive upper bound: extend to the end of the day.
		end = end.AddDate(0, 0, 1).Add(-time.Nanosecond)
		filter.EndDate = &end
	}

	return filter, nil
}

// @Summary List assessments
// @Description Returns assessment summaries sorted by creation time descending
// @Tags Admin
// @Produce json
// @Param stage query string false "Stage filter (Seeking, Beginning, Growing, Multiplying, or all)"
// @Param search query string false "Case-insensitive email substring"
// @Param startDate query string false "Inclusive lower bound (YYYY-MM-DD)"
// @Param endDate query string false "Inclusive upper bound (YYYY-MM-DD)"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /admin/assessments [get]
func (c *AdminController) ListAssessments(ctx *gin.Context) {
	filter, err := parseListFilter(ctx)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	assessments, err := c.Service.ListAssessments(filter)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, assessments)
}

// @Summary Export assessments as CSV
// @Description Renders the filtered listing as email,date,stage,total_score,seeker_override rows
// @Tags Admin
// @Produce text/csv
// @Param stage query string false "Stage filter"
// @Param search query string false "Case-insensitive email substring"
// @Param startDate query string false "Inclusive lower bound (YYYY-MM-DD)"
// @Param endDate query string false "Inclusive upper bound (YYYY-MM-DD)"
// @Success 200 {string} string "CSV payload"
// @Failure 400 {object} util.Response
// @Router /admin/assessments/export [get]
func (c *AdminController) ExportAssessments(ctx *gin.Context) {
	filter, err := parseListFilter(ctx)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	assessments, err := c.Service.ListAssessments(filter)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	payload, err := service.ExportAssessmentsCSV(assessments)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="assessments.csv"`)
	ctx.Data(200, "text/csv", payload)
}

// @Summary Get assessment detail
// @Description Returns the full assessment with its responses, attributes, and recommendation
// @Tags Admin
// @Produce json
// @Param id path string true "Assessment ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /admin/assessments/{id} [get]
func (c *AdminController) GetAssessmentDetail(ctx *gin.Context) {
	id := ctx.Param("id")

	detail, err := c.Service.GetAssessmentDetail(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, util.ErrAssessmentNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, detail)
}
