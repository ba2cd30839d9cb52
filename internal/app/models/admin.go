package models

import "time"

// Admin defines the admin model based on the 'admins' table. Coordinators
// live in the same table with role set accordingly.
type Admin struct {
	ID               int64      `json:"id" db:"id" example:"1"`
	Name             string     `json:"name" db:"name" example:"Placement Cell"`
	Email            string     `json:"email" db:"email" example:"placement@college.edu"`
	Password         string     `json:"-" db:"password"` // Bcrypt hash (excluded from JSON)
	Role             string     `json:"role" db:"role" example:"admin"`
	Designation      string     `json:"designation,omitempty" db:"designation"`
	Department       string     `json:"department,omitempty" db:"department"`
	Phone            string     `json:"phone,omitempty" db:"phone"`
	Permissions      []string   `json:"permissions" db:"permissions"`
	RegistrationDate time.Time  `json:"registrationDate" db:"registration_date"`
	LastLogin        *time.Time `json:"lastLogin,omitempty" db:"last_login"`
}
