package dto

// SubmitApplicationRequest represents an application submission.
// StudentID may be omitted by student callers; it is filled from the token.
type SubmitApplicationRequest struct {
	StudentID   int64 `json:"studentId" binding:"omitempty,min=1"`
	PlacementID int64 `json:"placementId" binding:"required,min=1"`
}

// ApplicationFilter holds the optional equality filters the listing
// endpoint accepts. Zero values mean "no filter".
type ApplicationFilter struct {
	StudentID   int64 `form:"studentId"`
	CompanyID   int64 `form:"companyId"`
	PlacementID int64 `form:"placementId"`
}
