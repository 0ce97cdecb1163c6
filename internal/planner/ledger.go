package planner

import "github.com/google/uuid"

// RecordStatus is the lifecycle state of one ledger entry.
type RecordStatus string

const (
	StatusCompleted  RecordStatus = "completed"
	StatusInProgress RecordStatus = "in_progress"
	StatusFailed     RecordStatus = "failed"
	StatusWithdrawn  RecordStatus = "withdrawn"
)

// CourseRecord is one row of a student's academic history.
type CourseRecord struct {
	Course        string       `json:"course"`
	Grade         Grade        `json:"grade,omitempty"`
	Term          string       `json:"term,omitempty"`
	CreditsEarned int          `json:"creditsEarned"`
	Status        RecordStatus `json:"status"`
}

// Ledger is one student's course history. It is owned exclusively by the
// request that supplied it, is never mutated by the engine, and carries a
// snapshot ID used to key the evaluator's memoization cache.
type Ledger struct {
	snapshotID string
	records    []CourseRecord

	// completed holds the best completed grade per course. Only completed
	// records satisfy Leaf conditions; retakes keep the highest grade.
	completed  map[string]Grade
	inProgress map[string]bool
}

// NewLedger builds a ledger from a student's course records and assigns it a
// fresh snapshot ID.
func NewLedger(records []CourseRecord) *Ledger {
	l := &Ledger{
		snapshotID: uuid.NewString(),
		records:    append([]CourseRecord(nil), records...),
		completed:  make(map[string]Grade),
		inProgress: make(map[string]bool),
	}
	for _, record := range l.records {
		switch record.Status {
		case StatusCompleted:
			best, seen := l.completed[record.Course]
			if !seen || record.Grade.Points() > best.Points() {
				l.completed[record.Course] = record.Grade
			}
		case StatusInProgress:
			l.inProgress[record.Course] = true
		}
	}
	return l
}

// SnapshotID identifies this exact ledger state.
func (l *Ledger) SnapshotID() string {
	return l.snapshotID
}

// Records returns a copy of the underlying course records.
func (l *Ledger) Records() []CourseRecord {
	return append([]CourseRecord(nil), l.records...)
}

// CompletedGrade returns the best completed grade for a course, if any.
func (l *Ledger) CompletedGrade(code string) (Grade, bool) {
	grade, ok := l.completed[code]
	return grade, ok
}

// Completed reports whether the course has a completed record.
func (l *Ledger) Completed(code string) bool {
	_, ok := l.completed[code]
	return ok
}

// InProgress reports whether the course is currently being taken.
func (l *Ledger) InProgress(code string) bool {
	return l.inProgress[code]
}

// CountsTowardCredit reports whether the course contributes to credit totals
// for timeline purposes. In-progress work counts toward credits but never
// toward prerequisite satisfaction.
func (l *Ledger) CountsTowardCredit(code string) bool {
	return l.Completed(code) || l.InProgress(code)
}
