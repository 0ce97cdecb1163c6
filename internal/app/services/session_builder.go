package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/yigit/acadplan/internal/app/repositories"
	"github.com/yigit/acadplan/internal/pkg/apperrors"
	"github.com/yigit/acadplan/internal/planner"
)

// BuildSession loads catalog, prerequisite rules and requirement groups from
// the database and builds the shared planning session. A dangling course
// reference anywhere in the data refuses to build rather than producing a
// session that would silently mis-evaluate.
func BuildSession(ctx context.Context, repos *repositories.Repositories, policy planner.Policy, lgr zerolog.Logger) (*planner.Session, error) {
	courses, err := repos.CourseRepository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading course catalog: %w", err)
	}
	if len(courses) == 0 {
		return nil, apperrors.ErrEmptyCatalog
	}

	catalog, err := planner.NewCatalog(courses)
	if err != nil {
		return nil, fmt.Errorf("invalid course catalog: %w", err)
	}

	rules, err := repos.RuleRepository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading prerequisite rules: %w", err)
	}

	groups, err := repos.RequirementGroupRepository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading requirement groups: %w", err)
	}

	session, err := planner.NewSession(catalog, planner.NewRuleSet(rules), groups, policy, lgr)
	if err != nil {
		return nil, fmt.Errorf("error building planning session: %w", err)
	}

	return session, nil
}
