package dto

import "github.com/yigit/acadplan/internal/planner"

// CourseRecordRequest is one inline ledger row supplied by the caller
type CourseRecordRequest struct {
	Course        string `json:"course" binding:"required" example:"CS18000"`
	Grade         string `json:"grade" example:"B"`
	Term          string `json:"term" example:"Fall 2024"`
	CreditsEarned int    `json:"creditsEarned" binding:"gte=0" example:"4"`
	Status        string `json:"status" binding:"required,oneof=completed in_progress failed withdrawn" example:"completed"`
}

// EligibilityRequest asks whether the inline ledger satisfies one course's
// prerequisites
type EligibilityRequest struct {
	Course  string                `json:"course" binding:"required" example:"CS25100"`
	Records []CourseRecordRequest `json:"records" binding:"dive"`
}

// PlanRequest asks for a full degree plan over an inline ledger
type PlanRequest struct {
	Major   string                `json:"major" binding:"required" example:"CS"`
	Track   string                `json:"track" example:"systems"`
	Records []CourseRecordRequest `json:"records" binding:"dive"`
}

// ToRecord converts the request row to the engine's ledger record
func (r CourseRecordRequest) ToRecord() planner.CourseRecord {
	return planner.CourseRecord{
		Course:        r.Course,
		Grade:         planner.Grade(r.Grade),
		Term:          r.Term,
		CreditsEarned: r.CreditsEarned,
		Status:        planner.RecordStatus(r.Status),
	}
}

// ToRecords converts an inline ledger to engine records
func ToRecords(rows []CourseRecordRequest) []planner.CourseRecord {
	records := make([]planner.CourseRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.ToRecord())
	}
	return records
}
