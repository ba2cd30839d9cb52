package models

import "time"

// Student defines the student model based on the 'students' table
type Student struct {
	ID                    int64     `json:"id" db:"id" example:"1"`                                  // Unique identifier for the student record
	Name                  string    `json:"name" db:"name" example:"Priya Sharma"`                   // Full name
	Email                 string    `json:"email" db:"email" example:"priya@college.edu"`            // Unique within the student collection
	Password              string    `json:"-" db:"password"`                                         // Bcrypt hash (excluded from JSON)
	StudentNo             string    `json:"studentId" db:"student_no" example:"CS2021045"`           // Caller-supplied roll number, unique
	Department            string    `json:"department" db:"department" example:"Computer Science"`   // Department name
	Year                  string    `json:"year" db:"year" example:"4th Year"`                       // Current year of study
	CGPA                  float64   `json:"cgpa" db:"cgpa" example:"8.2"`                            // Cumulative grade point average
	Skills                []string  `json:"skills" db:"skills"`                                      // Self-reported skills
	Phone                 string    `json:"phone,omitempty" db:"phone"`                              // Contact number
	Resume                string    `json:"resume,omitempty" db:"resume"`                            // Stored resume reference
	Status                string    `json:"status" db:"status" example:"active"`                     // Account status
	EligibleForPlacements bool      `json:"eligibleForPlacements" db:"eligible_for_placements"`      // Placement eligibility flag
	RegistrationDate      time.Time `json:"registrationDate" db:"registration_date"`                 // Stamped at creation
}
