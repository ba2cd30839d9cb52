package dto

// DashboardStats aggregates the counts the portal landing page renders.
// Every call recomputes from the live tables; there is no maintained counter.
type DashboardStats struct {
	TotalStudents       int64 `json:"totalStudents"`
	TotalCompanies      int64 `json:"totalCompanies"`
	ActivePlacements    int64 `json:"activePlacements"`
	TotalApplications   int64 `json:"totalApplications"`
	PendingApplications int64 `json:"pendingApplications"`
	SelectedStudents    int64 `json:"selectedStudents"`
	CompaniesVerified   int64 `json:"companiesVerified"`
	CompaniesPending    int64 `json:"companiesPending"`
}
