package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yigit/acadplan/internal/app/models/dto"
	"github.com/yigit/acadplan/internal/app/services"
	"github.com/yigit/acadplan/internal/middleware"
)

// CatalogController handles course catalog operations
type CatalogController struct {
	catalogService  *services.CatalogService
	planningService services.PlanningService
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(catalogService *services.CatalogService, planningService services.PlanningService) *CatalogController {
	return &CatalogController{
		catalogService:  catalogService,
		planningService: planningService,
	}
}

// GetAllCourses retrieves the full course catalog
// @Summary Get all courses
// @Description Retrieves the course catalog of the current planning session
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]planner.Course} "Courses retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [get]
func (c *CatalogController) GetAllCourses(ctx *gin.Context) {
	courses := c.catalogService.GetAllCourses()

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      courses,
		Timestamp: time.Now(),
	})
}

// GetCourseByCode retrieves one course by its code
// @Summary Get course by code
// @Description Retrieves a specific catalog course
// @Tags catalog
// @Produce json
// @Param code path string true "Course code"
// @Success 200 {object} dto.APIResponse{data=planner.Course} "Course retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{code} [get]
func (c *CatalogController) GetCourseByCode(ctx *gin.Context) {
	code := ctx.Param("code")

	course, err := c.catalogService.GetCourseByCode(code)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      course,
		Timestamp: time.Now(),
	})
}

// GetBlockingFactor retrieves the dependency analysis for one course
// @Summary Get course blocking factor
// @Description Retrieves which courses a given course unlocks, directly and transitively, and its prerequisite chain length
// @Tags catalog
// @Produce json
// @Param code path string true "Course code"
// @Success 200 {object} dto.APIResponse{data=planner.BlockingFactor} "Blocking factor retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 422 {object} dto.ErrorResponse "Cyclic prerequisite rule"
// @Router /courses/{code}/blocking [get]
func (c *CatalogController) GetBlockingFactor(ctx *gin.Context) {
	code := ctx.Param("code")

	factor, err := c.planningService.BlockingFactor(code)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      factor,
		Timestamp: time.Now(),
	})
}
