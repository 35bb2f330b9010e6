package models

type OrganizationStatus string

const (
	OrganizationStatusDraft     OrganizationStatus = "draft"
	OrganizationStatusSubmitted OrganizationStatus = "submitted"
	OrganizationStatusApproved  OrganizationStatus = "approved"
	OrganizationStatusRejected  OrganizationStatus = "rejected"
)

type UserRole string

const (
	UserRoleAdmin  UserRole = "A"
	UserRoleOwner  UserRole = "O"
	UserRoleCommon UserRole = "C"
)

type CalibrationStatus string

const (
	CalibrationStatusScheduled CalibrationStatus = "scheduled"
	CalibrationStatusCompleted CalibrationStatus = "completed"
	CalibrationStatusOverdue   CalibrationStatus = "overdue"
)

type AuditStatus string

const (
	AuditStatusPlanned    AuditStatus = "planned"
	AuditStatusInProgress AuditStatus = "in_progress"
	AuditStatusClosed     AuditStatus = "closed"
)

type NCRSeverity string

const (
	NCRSeverityMinor    NCRSeverity = "minor"
	NCRSeverityMajor    NCRSeverity = "major"
	NCRSeverityCritical NCRSeverity = "critical"
)

type NCRStatus string

const (
	NCRStatusOpen       NCRStatus = "open"
	NCRStatusInProgress NCRStatus = "in_progress"
	NCRStatusResolved   NCRStatus = "resolved"
	NCRStatusClosed     NCRStatus = "closed"
)
