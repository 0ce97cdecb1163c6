package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/yigit/acadplan/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	catalogController *controllers.CatalogController,
	planningController *controllers.PlanningController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Catalog routes
	courses := v1.Group("/courses")
	{
		courses.GET("", catalogController.GetAllCourses)
		courses.GET("/:code", catalogController.GetCourseByCode)
		courses.GET("/:code/blocking", catalogController.GetBlockingFactor)
		courses.GET("/:code/eligibility", planningController.CheckEligibilityForStudent)
	}

	// Planning routes over inline ledgers
	v1.POST("/eligibility", planningController.CheckEligibility)
	v1.POST("/plan", planningController.Plan)

	// Planning routes over stored student ledgers
	students := v1.Group("/students")
	{
		students.GET("/:id/plan", planningController.PlanForStudent)
	}
}
