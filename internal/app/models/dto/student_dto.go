package dto

// RegisterStudentRequest represents the field bag a student registration
// accepts. Name and email are the only hard requirements; everything else
// mirrors the profile the portal stores.
type RegisterStudentRequest struct {
	Name       string   `json:"name" binding:"required"`
	Email      string   `json:"email" binding:"required,email"`
	Password   string   `json:"password" binding:"required,min=8"`
	StudentNo  string   `json:"studentId" binding:"required"`
	Department string   `json:"department"`
	Year       string   `json:"year"`
	CGPA       float64  `json:"cgpa" binding:"omitempty,min=0,max=10"`
	Skills     []string `json:"skills"`
	Phone      string   `json:"phone"`
	Resume     string   `json:"resume"`
}

// UpdateStudentRequest carries the mutable profile fields for a partial
// update. Nil pointers leave the stored value untouched.
type UpdateStudentRequest struct {
	Name       *string  `json:"name"`
	Department *string  `json:"department"`
	Year       *string  `json:"year"`
	CGPA       *float64 `json:"cgpa" binding:"omitempty,min=0,max=10"`
	Skills     []string `json:"skills"`
	Phone      *string  `json:"phone"`
	Resume     *string  `json:"resume"`
	Status     *string  `json:"status" binding:"omitempty,oneof=active inactive"`
}
