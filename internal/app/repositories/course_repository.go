package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yigit/acadplan/internal/pkg/apperrors"
	"github.com/yigit/acadplan/internal/planner"
)

// Course error types
var (
	ErrCourseNotFound      = apperrors.ErrCourseNotFound
	ErrCourseAlreadyExists = apperrors.NewCustomError(apperrors.ErrConflict, "course with this code already exists")
)

// CourseRepository handles database operations for catalog courses
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

// Create inserts a new catalog course
func (r *CourseRepository) Create(ctx context.Context, course *planner.Course) error {
	query := `
		INSERT INTO courses (code, title, department, credits, difficulty, success_rate, offered_terms, foundation)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (code) DO NOTHING
	`

	tag, err := r.db.Exec(ctx, query,
		course.Code,
		course.Title,
		course.Department,
		course.Credits,
		course.Difficulty,
		course.SuccessRate,
		course.OfferedTerms,
		course.Foundation,
	)
	if err != nil {
		return fmt.Errorf("error creating course: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrCourseAlreadyExists
	}

	return nil
}

// GetByCode retrieves a course by course code
func (r *CourseRepository) GetByCode(ctx context.Context, code string) (*planner.Course, error) {
	query := `
		SELECT code, title, department, credits, difficulty, success_rate, offered_terms, foundation
		FROM courses
		WHERE code = $1
	`

	var course planner.Course
	err := r.db.QueryRow(ctx, query, code).Scan(
		&course.Code,
		&course.Title,
		&course.Department,
		&course.Credits,
		&course.Difficulty,
		&course.SuccessRate,
		&course.OfferedTerms,
		&course.Foundation,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return &course, nil
}

// GetAll retrieves the full catalog ordered by course code
func (r *CourseRepository) GetAll(ctx context.Context) ([]planner.Course, error) {
	query := `
		SELECT code, title, department, credits, difficulty, success_rate, offered_terms, foundation
		FROM courses
		ORDER BY code
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []planner.Course
	for rows.Next() {
		var course planner.Course
		if err := rows.Scan(
			&course.Code,
			&course.Title,
			&course.Department,
			&course.Credits,
			&course.Difficulty,
			&course.SuccessRate,
			&course.OfferedTerms,
			&course.Foundation,
		); err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}
