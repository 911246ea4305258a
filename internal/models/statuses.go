package models

type UserRole string
type RequestStatus string
type ApplicationStatus string

const (
	UserRoleAdmin   UserRole = "admin"
	UserRoleCompany UserRole = "company"
	UserRoleUser    UserRole = "user"

	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"

	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusReviewed ApplicationStatus = "reviewed"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)
