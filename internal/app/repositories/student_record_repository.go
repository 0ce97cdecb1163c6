package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yigit/acadplan/internal/pkg/apperrors"
	"github.com/yigit/acadplan/internal/planner"
)

// Student record error types
var (
	ErrStudentNotFound = apperrors.ErrStudentNotFound
)

// StudentRecordRepository handles database operations for student course history
type StudentRecordRepository struct {
	db *pgxpool.Pool
}

// NewStudentRecordRepository creates a new student record repository
func NewStudentRecordRepository(db *pgxpool.Pool) *StudentRecordRepository {
	return &StudentRecordRepository{
		db: db,
	}
}

// Create inserts one course record for a student
func (r *StudentRecordRepository) Create(ctx context.Context, studentID string, record *planner.CourseRecord) error {
	query := `
		INSERT INTO student_records (student_id, course_code, grade, term, credits_earned, status)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		studentID,
		record.Course,
		string(record.Grade),
		record.Term,
		record.CreditsEarned,
		string(record.Status),
	)
	if err != nil {
		return fmt.Errorf("error creating student record: %w", err)
	}

	return nil
}

// GetByStudentID retrieves a student's complete course history. Records come
// back in term order so retakes keep their chronology.
func (r *StudentRecordRepository) GetByStudentID(ctx context.Context, studentID string) ([]planner.CourseRecord, error) {
	query := `
		SELECT course_code, grade, term, credits_earned, status
		FROM student_records
		WHERE student_id = $1
		ORDER BY term, course_code
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []planner.CourseRecord
	for rows.Next() {
		var record planner.CourseRecord
		var grade, status string
		if err := rows.Scan(
			&record.Course,
			&grade,
			&record.Term,
			&record.CreditsEarned,
			&status,
		); err != nil {
			return nil, err
		}
		record.Grade = planner.Grade(grade)
		record.Status = planner.RecordStatus(status)
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, ErrStudentNotFound
	}

	return records, nil
}
