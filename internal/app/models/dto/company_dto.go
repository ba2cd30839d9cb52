package dto

// RegisterCompanyRequest represents a company registration payload.
type RegisterCompanyRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=8"`
	Website         string `json:"website"`
	Industry        string `json:"industry"`
	Location        string `json:"location"`
	CompanySize     string `json:"companySize"`
	Description     string `json:"description"`
	Phone           string `json:"phone"`
	HRContactPerson string `json:"hrContactPerson"`
	HREmail         string `json:"hrEmail" binding:"omitempty,email"`
	HRPhone         string `json:"hrPhone"`
}
