package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/yigit/acadplan/internal/app/models/dto"
	"github.com/yigit/acadplan/internal/pkg/apperrors"
	"github.com/yigit/acadplan/internal/planner"
)

// HandleAPIError maps domain errors to HTTP responses in one place so
// controllers stay thin. Planning data errors (unknown reference, cycle) are
// reported as unprocessable data, never disguised as an eligibility answer.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, planner.ErrUnknownCourseReference):
		c.JSON(422, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeUnknownCourseReference, err.Error()),
		})
	case errors.Is(err, planner.ErrCyclicRule):
		c.JSON(422, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeCyclicRule, err.Error()),
		})
	case errors.Is(err, planner.ErrNoRequirementGroups):
		c.JSON(404, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeMajorNotConfigured, err.Error()),
		})
	case apperrors.Is(err, apperrors.ErrCourseNotFound, planner.ErrCourseNotFound):
		c.JSON(404, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeCourseNotFound, "Course not found"),
		})
	case errors.Is(err, apperrors.ErrStudentNotFound):
		c.JSON(404, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeStudentNotFound, "Student not found"),
		})
	default:
		c.JSON(500, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
		})
	}
}
