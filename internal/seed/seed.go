package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appRepos "github.com/yigit/acadplan/internal/app/repositories"
	"github.com/yigit/acadplan/internal/planner"
)

// CreateDefaultData loads a small computer-science curriculum if the catalog
// is empty: courses, their prerequisite rules, the CS requirement groups and
// one sample student. Every insert is idempotent, so reruns are harmless.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	courseRepo := appRepos.NewCourseRepository(dbPool)
	ruleRepo := appRepos.NewRuleRepository(dbPool)
	groupRepo := appRepos.NewRequirementGroupRepository(dbPool)
	studentRepo := appRepos.NewStudentRecordRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (courses/rules/requirement groups)...")
	var finalErr error

	courses := []planner.Course{
		{Code: "CS18000", Title: "Problem Solving and Object-Oriented Programming", Department: "CS", Credits: 4, Difficulty: 3.4, SuccessRate: 0.78, OfferedTerms: []string{"fall", "spring"}, Foundation: true},
		{Code: "CS18200", Title: "Foundations of Computer Science", Department: "CS", Credits: 3, Difficulty: 3.6, SuccessRate: 0.74, OfferedTerms: []string{"fall", "spring"}, Foundation: true},
		{Code: "CS24000", Title: "Programming in C", Department: "CS", Credits: 3, Difficulty: 3.2, SuccessRate: 0.8, OfferedTerms: []string{"fall", "spring"}, Foundation: true},
		{Code: "CS25000", Title: "Computer Architecture", Department: "CS", Credits: 4, Difficulty: 3.5, SuccessRate: 0.76, OfferedTerms: []string{"fall", "spring"}},
		{Code: "CS25100", Title: "Data Structures and Algorithms", Department: "CS", Credits: 3, Difficulty: 4.1, SuccessRate: 0.68, OfferedTerms: []string{"fall", "spring"}},
		{Code: "CS25200", Title: "Systems Programming", Department: "CS", Credits: 4, Difficulty: 4.3, SuccessRate: 0.66, OfferedTerms: []string{"fall", "spring"}},
		{Code: "CS35200", Title: "Compilers", Department: "CS", Credits: 3, Difficulty: 4.4, SuccessRate: 0.71, OfferedTerms: []string{"fall"}},
		{Code: "CS38100", Title: "Introduction to the Analysis of Algorithms", Department: "CS", Credits: 3, Difficulty: 4.2, SuccessRate: 0.7, OfferedTerms: []string{"fall", "spring"}},
		{Code: "CS40800", Title: "Software Testing", Department: "CS", Credits: 3, Difficulty: 3.0, SuccessRate: 0.85, OfferedTerms: []string{"spring"}},
		{Code: "CS49700", Title: "Senior Project", Department: "CS", Credits: 3, Difficulty: 3.3, SuccessRate: 0.9, OfferedTerms: []string{"fall", "spring"}},
		{Code: "MA16100", Title: "Plane Analytic Geometry and Calculus I", Department: "MA", Credits: 5, Difficulty: 3.1, SuccessRate: 0.79, OfferedTerms: []string{"fall", "spring", "summer"}, Foundation: true},
		{Code: "MA16200", Title: "Plane Analytic Geometry and Calculus II", Department: "MA", Credits: 5, Difficulty: 3.3, SuccessRate: 0.75, OfferedTerms: []string{"fall", "spring", "summer"}},
		{Code: "STAT35000", Title: "Introduction to Statistics", Department: "STAT", Credits: 3, Difficulty: 2.8, SuccessRate: 0.82, OfferedTerms: []string{"fall", "spring"}},
	}

	for i := range courses {
		if err := courseRepo.Create(ctx, &courses[i]); err != nil && !errors.Is(err, appRepos.ErrCourseAlreadyExists) {
			lgr.Error().Err(err).Str("course", courses[i].Code).Msg("Error creating seed course")
			finalErr = errors.Join(finalErr, err)
		}
	}

	rules := map[string]planner.Rule{
		"CS18200": planner.Leaf{Course: "CS18000", MinGrade: "C"},
		"CS24000": planner.Leaf{Course: "CS18000", MinGrade: "C"},
		"CS25000": planner.AllOf{Children: []planner.Rule{
			planner.Leaf{Course: "CS18200", MinGrade: "C"},
			planner.Leaf{Course: "CS24000", MinGrade: "C"},
		}},
		"CS25100": planner.AllOf{Children: []planner.Rule{
			planner.Leaf{Course: "CS18200", MinGrade: "C"},
			planner.Leaf{Course: "CS24000", MinGrade: "C"},
		}},
		"CS25200": planner.AllOf{Children: []planner.Rule{
			planner.Leaf{Course: "CS25000", MinGrade: "C"},
			planner.Leaf{Course: "CS25100", MinGrade: "C"},
		}},
		"CS35200": planner.Leaf{Course: "CS25200", MinGrade: "C"},
		"CS38100": planner.AllOf{Children: []planner.Rule{
			planner.Leaf{Course: "CS25100", MinGrade: "C"},
			planner.Leaf{Course: "MA16200", MinGrade: "C"},
		}},
		"CS40800": planner.Leaf{Course: "CS25200", MinGrade: "C"},
		"CS49700": planner.OneOf{Children: []planner.Rule{
			planner.Leaf{Course: "CS35200", MinGrade: "C"},
			planner.Leaf{Course: "CS38100", MinGrade: "C"},
		}},
		"MA16200":   planner.Leaf{Course: "MA16100", MinGrade: "C"},
		"STAT35000": planner.Leaf{Course: "MA16200", MinGrade: "C-"},
	}

	for course, rule := range rules {
		if err := ruleRepo.Upsert(ctx, course, rule); err != nil {
			lgr.Error().Err(err).Str("course", course).Msg("Error creating seed prerequisite rule")
			finalErr = errors.Join(finalErr, err)
		}
	}

	groups := []planner.RequirementGroup{
		{Major: "CS", Key: "cs-foundation", Type: planner.RequirementFoundation, NeedCount: 4, Courses: []string{"CS18000", "CS18200", "CS24000", "MA16100"}, Priority: 1},
		{Major: "CS", Key: "cs-core", Type: planner.RequirementCore, NeedCount: 5, Courses: []string{"CS25000", "CS25100", "CS25200", "CS38100", "MA16200"}, Priority: 2},
		{Major: "CS", Track: "software-engineering", Key: "cs-se-track", Type: planner.RequirementCore, NeedCount: 2, Courses: []string{"CS35200", "CS40800"}, Priority: 3},
		{Major: "CS", Key: "cs-electives", Type: planner.RequirementElective, NeedCount: 1, Courses: []string{"STAT35000", "CS35200", "CS40800"}, Priority: 4},
		{Major: "CS", Key: "cs-capstone", Type: planner.RequirementCapstone, NeedCount: 1, Courses: []string{"CS49700"}, Priority: 5},
	}

	for i := range groups {
		if err := groupRepo.Create(ctx, &groups[i]); err != nil {
			lgr.Error().Err(err).Str("group", groups[i].Key).Msg("Error creating seed requirement group")
			finalErr = errors.Join(finalErr, err)
		}
	}

	// One sample student partway through the foundation sequence.
	sampleRecords := []planner.CourseRecord{
		{Course: "CS18000", Grade: "B", Term: "2025-fall", CreditsEarned: 4, Status: planner.StatusCompleted},
		{Course: "MA16100", Grade: "A", Term: "2025-fall", CreditsEarned: 5, Status: planner.StatusCompleted},
		{Course: "CS18200", Grade: "C-", Term: "2026-spring", CreditsEarned: 3, Status: planner.StatusCompleted},
		{Course: "CS24000", Term: "2026-fall", Status: planner.StatusInProgress},
	}

	if _, err := studentRepo.GetByStudentID(ctx, "demo-student"); errors.Is(err, appRepos.ErrStudentNotFound) {
		for i := range sampleRecords {
			if err := studentRepo.Create(ctx, "demo-student", &sampleRecords[i]); err != nil {
				lgr.Error().Err(err).Str("course", sampleRecords[i].Course).Msg("Error creating sample student record")
				finalErr = errors.Join(finalErr, err)
			}
		}
	} else if err != nil {
		lgr.Error().Err(err).Msg("Error checking sample student")
		finalErr = errors.Join(finalErr, err)
	}

	if finalErr == nil {
		lgr.Info().Msg("Default data check/creation complete.")
	}
	return finalErr
}
