package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yigit/acadplan/internal/app/models/dto"
	"github.com/yigit/acadplan/internal/app/services"
	"github.com/yigit/acadplan/internal/middleware"
)

// PlanningController handles eligibility and degree-plan operations
type PlanningController struct {
	planningService services.PlanningService
}

// NewPlanningController creates a new PlanningController
func NewPlanningController(planningService services.PlanningService) *PlanningController {
	return &PlanningController{
		planningService: planningService,
	}
}

// CheckEligibilityForStudent answers "can this student take this course"
// @Summary Check course eligibility for a stored student
// @Description Evaluates a course's prerequisite rule against the student's stored course history
// @Tags planning
// @Produce json
// @Param code path string true "Course code"
// @Param studentId query string true "Student ID"
// @Success 200 {object} dto.APIResponse{data=planner.EligibilityResult} "Eligibility evaluated"
// @Failure 400 {object} dto.ErrorResponse "Missing student ID"
// @Failure 404 {object} dto.ErrorResponse "Course or student not found"
// @Failure 422 {object} dto.ErrorResponse "Cyclic prerequisite rule"
// @Router /courses/{code}/eligibility [get]
func (c *PlanningController) CheckEligibilityForStudent(ctx *gin.Context) {
	code := ctx.Param("code")
	studentID := ctx.Query("studentId")
	if studentID == "" {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "studentId query parameter is required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	result, err := c.planningService.EvaluateForStudent(ctx, code, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      result,
		Timestamp: time.Now(),
	})
}

// CheckEligibility answers an eligibility question over an inline ledger
// @Summary Check course eligibility
// @Description Evaluates a course's prerequisite rule against the course records supplied in the request body
// @Tags planning
// @Accept json
// @Produce json
// @Param request body dto.EligibilityRequest true "Target course and course records"
// @Success 200 {object} dto.APIResponse{data=planner.EligibilityResult} "Eligibility evaluated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 422 {object} dto.ErrorResponse "Cyclic prerequisite rule"
// @Router /eligibility [post]
func (c *PlanningController) CheckEligibility(ctx *gin.Context) {
	var request dto.EligibilityRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	result, err := c.planningService.Evaluate(request.Course, dto.ToRecords(request.Records))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      result,
		Timestamp: time.Now(),
	})
}

// PlanForStudent composes a degree plan from a stored ledger
// @Summary Plan for a stored student
// @Description Composes eligible courses, priority ranking, timeline estimate and risk assessment for a student
// @Tags planning
// @Produce json
// @Param id path string true "Student ID"
// @Param major query string true "Major code"
// @Param track query string false "Track within the major"
// @Success 200 {object} dto.APIResponse{data=planner.RecommendationSet} "Plan composed"
// @Failure 400 {object} dto.ErrorResponse "Missing major"
// @Failure 404 {object} dto.ErrorResponse "Student or major not found"
// @Failure 422 {object} dto.ErrorResponse "Cyclic prerequisite rule"
// @Router /students/{id}/plan [get]
func (c *PlanningController) PlanForStudent(ctx *gin.Context) {
	studentID := ctx.Param("id")
	major := ctx.Query("major")
	if major == "" {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "major query parameter is required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	set, err := c.planningService.PlanForStudent(ctx, studentID, major, ctx.Query("track"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      set,
		Timestamp: time.Now(),
	})
}

// Plan composes a degree plan from an inline ledger
// @Summary Plan over inline course records
// @Description Composes a full recommendation set from the course records supplied in the request body
// @Tags planning
// @Accept json
// @Produce json
// @Param request body dto.PlanRequest true "Major, track and course records"
// @Success 200 {object} dto.APIResponse{data=planner.RecommendationSet} "Plan composed"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Major not configured"
// @Failure 422 {object} dto.ErrorResponse "Cyclic prerequisite rule"
// @Router /plan [post]
func (c *PlanningController) Plan(ctx *gin.Context) {
	var request dto.PlanRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	set, err := c.planningService.Plan(dto.ToRecords(request.Records), request.Major, request.Track)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      set,
		Timestamp: time.Now(),
	})
}
