package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yigit/acadplan/internal/planner"
)

// RequirementGroupRepository handles database operations for requirement groups
type RequirementGroupRepository struct {
	db *pgxpool.Pool
}

// NewRequirementGroupRepository creates a new requirement group repository
func NewRequirementGroupRepository(db *pgxpool.Pool) *RequirementGroupRepository {
	return &RequirementGroupRepository{
		db: db,
	}
}

// Create inserts a requirement group
func (r *RequirementGroupRepository) Create(ctx context.Context, group *planner.RequirementGroup) error {
	query := `
		INSERT INTO requirement_groups (major, track, group_key, requirement_type, need_count, courses, priority)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (major, track, group_key) DO UPDATE
		SET requirement_type = EXCLUDED.requirement_type,
		    need_count = EXCLUDED.need_count,
		    courses = EXCLUDED.courses,
		    priority = EXCLUDED.priority
	`

	_, err := r.db.Exec(ctx, query,
		group.Major,
		group.Track,
		group.Key,
		string(group.Type),
		group.NeedCount,
		group.Courses,
		group.Priority,
	)
	if err != nil {
		return fmt.Errorf("error storing requirement group %s: %w", group.Key, err)
	}

	return nil
}

// GetAll retrieves every requirement group ordered by major, track and priority
func (r *RequirementGroupRepository) GetAll(ctx context.Context) ([]planner.RequirementGroup, error) {
	query := `
		SELECT major, track, group_key, requirement_type, need_count, courses, priority
		FROM requirement_groups
		ORDER BY major, track, priority, group_key
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []planner.RequirementGroup
	for rows.Next() {
		var group planner.RequirementGroup
		var reqType string
		if err := rows.Scan(
			&group.Major,
			&group.Track,
			&group.Key,
			&reqType,
			&group.NeedCount,
			&group.Courses,
			&group.Priority,
		); err != nil {
			return nil, err
		}
		group.Type = planner.RequirementType(reqType)
		groups = append(groups, group)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return groups, nil
}
