package models

import "time"

// Application defines a student's candidacy for one placement drive.
// The student/placement/company display fields are copied once at creation
// and frozen thereafter.
type Application struct {
	ID              int64     `json:"id" db:"id" example:"1"`
	StudentID       int64     `json:"studentId" db:"student_id"`
	StudentName     string    `json:"studentName" db:"student_name"` // denormalized copy
	PlacementID     int64     `json:"placementId" db:"placement_id"`
	PlacementTitle  string    `json:"placementTitle" db:"placement_title"` // denormalized copy
	CompanyID       int64     `json:"companyId" db:"company_id"`
	CompanyName     string    `json:"companyName" db:"company_name"` // denormalized copy
	ApplicationDate time.Time `json:"applicationDate" db:"application_date"`
	Status          string    `json:"status" db:"status" example:"applied"`
	CurrentRound    string    `json:"currentRound" db:"current_round" example:"Application Review"`
	RoundsCompleted []string  `json:"roundsCompleted" db:"rounds_completed"`
	Resume          string    `json:"resume,omitempty" db:"resume"` // documents.resume, seeded from the student record
	Feedback        string    `json:"feedback,omitempty" db:"feedback"`
	LastUpdated     time.Time `json:"lastUpdated" db:"last_updated"`
}
