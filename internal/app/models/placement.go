package models

import "time"

// PlacementRequirements captures the eligibility rules a drive declares.
type PlacementRequirements struct {
	MinimumCGPA         *float64 `json:"minimumCGPA,omitempty" db:"minimum_cgpa"` // nil means no CGPA bar
	EligibleDepartments []string `json:"eligibleDepartments,omitempty" db:"eligible_departments"`
	SkillsRequired      []string `json:"skillsRequired,omitempty" db:"skills_required"`
}

// PlacementJobDetails describes the offered position.
type PlacementJobDetails struct {
	Position string `json:"position,omitempty" db:"position"`
	CTC      string `json:"ctc,omitempty" db:"ctc" example:"12 LPA"`
	Location string `json:"location,omitempty" db:"job_location"`
	WorkMode string `json:"workMode,omitempty" db:"work_mode"`
}

// Placement defines a placement drive posted by a company.
// CompanyName is copied from the company at creation time and is not
// re-synchronized afterwards.
type Placement struct {
	ID                  int64                 `json:"id" db:"id" example:"1"`
	Title               string                `json:"title" db:"title" example:"Graduate Software Engineer"`
	CompanyID           int64                 `json:"companyId" db:"company_id"`
	CompanyName         string                `json:"companyName" db:"company_name"` // denormalized copy
	Description         string                `json:"description,omitempty" db:"description"`
	Requirements        PlacementRequirements `json:"requirements"`
	JobDetails          PlacementJobDetails   `json:"jobDetails"`
	SelectionRounds     []string              `json:"selectionRounds,omitempty" db:"selection_rounds"`
	ApplicationDeadline *time.Time            `json:"applicationDeadline,omitempty" db:"application_deadline"`
	DriveDate           *time.Time            `json:"driveDate,omitempty" db:"drive_date"`
	Status              string                `json:"status" db:"status" example:"active"`
	PostedDate          time.Time             `json:"postedDate" db:"posted_date"`
	ApplicationsCount   int                   `json:"applicationsCount" db:"applications_count"`
}
