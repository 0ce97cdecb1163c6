package services

import (
	"github.com/yigit/acadplan/internal/pkg/apperrors"
	"github.com/yigit/acadplan/internal/planner"
)

// Common catalog errors
var (
	ErrCourseNotFound = apperrors.ErrCourseNotFound
)

// CatalogService handles read-only course catalog lookups. The catalog is
// immutable for the lifetime of the planning session, so lookups never touch
// the database.
type CatalogService struct {
	session *planner.Session
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(session *planner.Session) *CatalogService {
	return &CatalogService{
		session: session,
	}
}

// GetAllCourses returns the full catalog ordered by course code
func (s *CatalogService) GetAllCourses() []planner.Course {
	return s.session.Catalog().Courses()
}

// GetCourseByCode returns one course
func (s *CatalogService) GetCourseByCode(code string) (planner.Course, error) {
	course, ok := s.session.Catalog().Get(code)
	if !ok {
		return planner.Course{}, ErrCourseNotFound
	}
	return course, nil
}
