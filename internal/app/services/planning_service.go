package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/yigit/acadplan/internal/app/repositories"
	"github.com/yigit/acadplan/internal/pkg/apperrors"
	"github.com/yigit/acadplan/internal/planner"
)

// Common planning errors
var (
	ErrStudentNotFound = apperrors.ErrStudentNotFound
	ErrEmptyLedger     = apperrors.ErrEmptyLedger
)

// PlanningService answers eligibility and degree-plan queries
type PlanningService interface {
	EvaluateForStudent(ctx context.Context, courseCode, studentID string) (planner.EligibilityResult, error)
	Evaluate(courseCode string, records []planner.CourseRecord) (planner.EligibilityResult, error)
	PlanForStudent(ctx context.Context, studentID, major, track string) (*planner.RecommendationSet, error)
	Plan(records []planner.CourseRecord, major, track string) (*planner.RecommendationSet, error)
	BlockingFactor(courseCode string) (planner.BlockingFactor, error)
}

// planningService wraps the shared planner session; per-request state is the
// student ledger only.
type planningService struct {
	session     *planner.Session
	studentRepo *repositories.StudentRecordRepository
	logger      zerolog.Logger
}

// NewPlanningService creates a new planning service instance
func NewPlanningService(session *planner.Session, studentRepo *repositories.StudentRecordRepository, logger zerolog.Logger) PlanningService {
	return &planningService{
		session:     session,
		studentRepo: studentRepo,
		logger:      logger,
	}
}

// EvaluateForStudent checks one course against a student's stored ledger
func (s *planningService) EvaluateForStudent(ctx context.Context, courseCode, studentID string) (planner.EligibilityResult, error) {
	records, err := s.loadRecords(ctx, studentID)
	if err != nil {
		return planner.EligibilityResult{}, err
	}
	return s.Evaluate(courseCode, records)
}

// Evaluate checks one course against an inline ledger
func (s *planningService) Evaluate(courseCode string, records []planner.CourseRecord) (planner.EligibilityResult, error) {
	ledger := planner.NewLedger(records)

	result, err := s.session.Evaluate(courseCode, ledger)
	if err != nil {
		return planner.EligibilityResult{}, err
	}

	s.logger.Debug().
		Str("course", courseCode).
		Str("ledger", ledger.SnapshotID()).
		Bool("eligible", result.Eligible).
		Int("unmet", len(result.Unmet)).
		Msg("Eligibility evaluated")

	return result, nil
}

// PlanForStudent composes a full recommendation set from a stored ledger
func (s *planningService) PlanForStudent(ctx context.Context, studentID, major, track string) (*planner.RecommendationSet, error) {
	records, err := s.loadRecords(ctx, studentID)
	if err != nil {
		return nil, err
	}
	return s.Plan(records, major, track)
}

// Plan composes a full recommendation set from an inline ledger
func (s *planningService) Plan(records []planner.CourseRecord, major, track string) (*planner.RecommendationSet, error) {
	ledger := planner.NewLedger(records)

	set, err := s.session.Plan(ledger, major, track)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().
		Str("major", major).
		Str("track", track).
		Str("ledger", ledger.SnapshotID()).
		Int("eligible", len(set.Eligible)).
		Int("notYetEligible", len(set.NotYetEligible)).
		Int("estimatedTerms", set.Timeline.EstimatedTerms).
		Msg("Plan composed")

	return set, nil
}

// BlockingFactor exposes the dependency analysis for one course
func (s *planningService) BlockingFactor(courseCode string) (planner.BlockingFactor, error) {
	return s.session.BlockingFactor(courseCode)
}

// loadRecords fetches a student's ledger rows from the database
func (s *planningService) loadRecords(ctx context.Context, studentID string) ([]planner.CourseRecord, error) {
	records, err := s.studentRepo.GetByStudentID(ctx, studentID)
	if err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("error loading student records: %w", err)
	}
	return records, nil
}
