package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yigit/acadplan/internal/planner"
)

// RuleRepository handles database operations for prerequisite rules. Rule
// trees are stored as JSONB in the encoding defined by the planner package.
type RuleRepository struct {
	db *pgxpool.Pool
}

// NewRuleRepository creates a new rule repository
func NewRuleRepository(db *pgxpool.Pool) *RuleRepository {
	return &RuleRepository{
		db: db,
	}
}

// Upsert stores the prerequisite rule of a target course
func (r *RuleRepository) Upsert(ctx context.Context, courseCode string, rule planner.Rule) error {
	encoded, err := planner.EncodeRule(rule)
	if err != nil {
		return fmt.Errorf("error encoding rule for %s: %w", courseCode, err)
	}

	query := `
		INSERT INTO prerequisite_rules (course_code, rule)
		VALUES ($1, $2)
		ON CONFLICT (course_code) DO UPDATE SET rule = EXCLUDED.rule
	`

	if _, err := r.db.Exec(ctx, query, courseCode, encoded); err != nil {
		return fmt.Errorf("error storing rule for %s: %w", courseCode, err)
	}

	return nil
}

// GetAll retrieves every prerequisite rule keyed by target course code
func (r *RuleRepository) GetAll(ctx context.Context) (map[string]planner.Rule, error) {
	query := `
		SELECT course_code, rule
		FROM prerequisite_rules
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rules := make(map[string]planner.Rule)
	for rows.Next() {
		var courseCode string
		var encoded []byte
		if err := rows.Scan(&courseCode, &encoded); err != nil {
			return nil, err
		}

		rule, err := planner.DecodeRule(encoded)
		if err != nil {
			return nil, fmt.Errorf("invalid rule stored for %s: %w", courseCode, err)
		}
		rules[courseCode] = rule
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return rules, nil
}
