package dto

import "time"

// PlacementRequirementsRequest mirrors the requirements block of a drive.
type PlacementRequirementsRequest struct {
	MinimumCGPA         *float64 `json:"minimumCGPA" binding:"omitempty,min=0,max=10"`
	EligibleDepartments []string `json:"eligibleDepartments"`
	SkillsRequired      []string `json:"skillsRequired"`
}

// PlacementJobDetailsRequest mirrors the job details block of a drive.
type PlacementJobDetailsRequest struct {
	Position string `json:"position"`
	CTC      string `json:"ctc"`
	Location string `json:"location"`
	WorkMode string `json:"workMode"`
}

// CreatePlacementRequest represents a placement drive creation payload.
// The drive goes live only if the owning company is already verified.
type CreatePlacementRequest struct {
	Title               string                       `json:"title" binding:"required"`
	CompanyID           int64                        `json:"companyId" binding:"required,min=1"`
	Description         string                       `json:"description"`
	Requirements        PlacementRequirementsRequest `json:"requirements"`
	JobDetails          PlacementJobDetailsRequest   `json:"jobDetails"`
	SelectionRounds     []string                     `json:"selectionRounds"`
	ApplicationDeadline *time.Time                   `json:"applicationDeadline"`
	DriveDate           *time.Time                   `json:"driveDate"`
}
