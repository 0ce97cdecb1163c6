package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	CourseRepository           *CourseRepository
	RuleRepository             *RuleRepository
	RequirementGroupRepository *RequirementGroupRepository
	StudentRecordRepository    *StudentRecordRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		CourseRepository:           NewCourseRepository(db),
		RuleRepository:             NewRuleRepository(db),
		RequirementGroupRepository: NewRequirementGroupRepository(db),
		StudentRecordRepository:    NewStudentRecordRepository(db),
	}
}
