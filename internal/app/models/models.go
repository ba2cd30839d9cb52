package models

// Role identifies which collection an authenticated account belongs to.
type Role string

const (
	RoleStudent     Role = "student"
	RoleCompany     Role = "company"
	RoleAdmin       Role = "admin"
	RoleCoordinator Role = "coordinator" // resolves to the admin collection
)

// Student account statuses
const (
	StudentStatusActive   = "active"
	StudentStatusInactive = "inactive"
)

// Company verification statuses
const (
	CompanyStatusPending  = "pending"
	CompanyStatusVerified = "verified"
)

// Placement drive statuses
const (
	PlacementStatusPendingApproval = "pending_approval"
	PlacementStatusActive          = "active"
	PlacementStatusClosed          = "closed"
)

// Application statuses
const (
	ApplicationStatusApplied     = "applied"
	ApplicationStatusShortlisted = "shortlisted"
	ApplicationStatusSelected    = "selected"
	ApplicationStatusRejected    = "rejected"
)

// InitialApplicationRound is the round every new application starts in.
const InitialApplicationRound = "Application Review"
