package models

import "time"

// Company defines the company model based on the 'companies' table
type Company struct {
	ID               int64     `json:"id" db:"id" example:"1"`
	Name             string    `json:"name" db:"name" example:"TechNova Solutions"`
	Email            string    `json:"email" db:"email" example:"hr@technova.com"` // Unique within the company collection
	Password         string    `json:"-" db:"password"`                            // Bcrypt hash (excluded from JSON)
	Website          string    `json:"website,omitempty" db:"website"`
	Industry         string    `json:"industry,omitempty" db:"industry" example:"Information Technology"`
	Location         string    `json:"location,omitempty" db:"location"`
	CompanySize      string    `json:"companySize,omitempty" db:"company_size"`
	Description      string    `json:"description,omitempty" db:"description"`
	Phone            string    `json:"phone,omitempty" db:"phone"`
	HRContactPerson  string    `json:"hrContactPerson,omitempty" db:"hr_contact_person"`
	HREmail          string    `json:"hrEmail,omitempty" db:"hr_email"`
	HRPhone          string    `json:"hrPhone,omitempty" db:"hr_phone"`
	Status           string    `json:"status" db:"status" example:"pending"` // pending until an admin verifies
	RegistrationDate time.Time `json:"registrationDate" db:"registration_date"`
}
